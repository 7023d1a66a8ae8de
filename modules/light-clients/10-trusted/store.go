package trusted

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/gogo/protobuf/proto"

	host "github.com/cosmos/ibc-handshake/modules/core/24-host"
	"github.com/cosmos/ibc-handshake/modules/core/exported"
)

// setClientState stores the client state
func setClientState(clientStore sdk.KVStore, clientState *ClientState) {
	bz, err := proto.Marshal(clientState)
	if err != nil {
		panic(fmt.Errorf("failed to encode client state: %w", err))
	}
	clientStore.Set(host.ClientStateKey(), bz)
}

// getClientState retrieves the client state from the store. It returns false if no client
// state is stored.
func getClientState(clientStore sdk.KVStore) (*ClientState, bool) {
	bz := clientStore.Get(host.ClientStateKey())
	if len(bz) == 0 {
		return nil, false
	}

	clientState := &ClientState{}
	if err := proto.Unmarshal(bz, clientState); err != nil {
		panic(fmt.Errorf("failed to decode client state: %w", err))
	}
	return clientState, true
}

// setConsensusState stores the consensus state at the given height.
func setConsensusState(clientStore sdk.KVStore, consensusState *ConsensusState, height exported.Height) {
	bz, err := proto.Marshal(consensusState)
	if err != nil {
		panic(fmt.Errorf("failed to encode consensus state: %w", err))
	}
	clientStore.Set(host.ConsensusStateKey(height), bz)
}

// getConsensusState retrieves the consensus state from the client prefixed store.
// If the ConsensusState does not exist in state for the provided height, false is returned.
func getConsensusState(clientStore sdk.KVStore, height exported.Height) (*ConsensusState, bool) {
	bz := clientStore.Get(host.ConsensusStateKey(height))
	if len(bz) == 0 {
		return nil, false
	}

	consensusState := &ConsensusState{}
	if err := proto.Unmarshal(bz, consensusState); err != nil {
		panic(fmt.Errorf("failed to decode consensus state: %w", err))
	}
	return consensusState, true
}
