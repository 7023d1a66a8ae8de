package host

import (
	"fmt"

	"github.com/cosmos/ibc-handshake/modules/core/exported"
)

// KeyClientStorePrefix is the store prefix under which every light client keeps its state.
var KeyClientStorePrefix = []byte("clients")

const (
	KeyClientState          = "clientState"
	KeyConsensusStatePrefix = "consensusStates"
)

// FullClientPath returns "clients/{clientID}/{path}".
func FullClientPath(clientID string, path string) string {
	return fmt.Sprintf("%s/%s/%s", KeyClientStorePrefix, clientID, path)
}

// FullClientKey is the byte form of FullClientPath.
func FullClientKey(clientID string, path []byte) []byte {
	return []byte(FullClientPath(clientID, string(path)))
}

// FullClientStatePath is the ICS-24 path of a client state as seen by a counterparty.
func FullClientStatePath(clientID string) string {
	return FullClientPath(clientID, KeyClientState)
}

// FullConsensusStatePath is the ICS-24 path of the consensus state a client stored at height.
func FullConsensusStatePath(clientID string, height exported.Height) string {
	return FullClientPath(clientID, ConsensusStatePath(height))
}

// ClientStateKey and ConsensusStateKey address entries inside a client-prefixed store.
func ClientStateKey() []byte {
	return []byte(KeyClientState)
}

func ConsensusStatePath(height exported.Height) string {
	return fmt.Sprintf("%s/%s", KeyConsensusStatePrefix, height)
}

func ConsensusStateKey(height exported.Height) []byte {
	return []byte(ConsensusStatePath(height))
}
