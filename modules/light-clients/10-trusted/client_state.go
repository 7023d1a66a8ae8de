package trusted

import (
	"strings"
	"time"

	ics23 "github.com/confio/ics23/go"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	yaml "gopkg.in/yaml.v2"

	clienttypes "github.com/cosmos/ibc-handshake/modules/core/02-client/types"
	"github.com/cosmos/ibc-handshake/modules/core/exported"
)

// ClientState tracks a counterparty chain through consensus states submitted by Authority.
type ClientState struct {
	ChainId        string             `protobuf:"bytes,1,opt,name=chain_id,json=chainId,proto3" json:"chain_id,omitempty" yaml:"chain_id"`
	TrustingPeriod time.Duration      `protobuf:"bytes,2,opt,name=trusting_period,json=trustingPeriod,proto3,stdduration" json:"trusting_period" yaml:"trusting_period"`
	LatestHeight   clienttypes.Height `protobuf:"bytes,3,opt,name=latest_height,json=latestHeight,proto3" json:"latest_height" yaml:"latest_height"`
	FrozenHeight   clienttypes.Height `protobuf:"bytes,4,opt,name=frozen_height,json=frozenHeight,proto3" json:"frozen_height" yaml:"frozen_height"`
	Authority      string             `protobuf:"bytes,5,opt,name=authority,proto3" json:"authority,omitempty" yaml:"authority"`
	ProofSpecs     []*ics23.ProofSpec `protobuf:"bytes,6,rep,name=proof_specs,json=proofSpecs,proto3" json:"proof_specs,omitempty" yaml:"proof_specs"`
}

// NewClientState creates a new ClientState instance
func NewClientState(
	chainID string, trustingPeriod time.Duration, latestHeight clienttypes.Height,
	authority string, specs []*ics23.ProofSpec,
) *ClientState {
	return &ClientState{
		ChainId:        chainID,
		TrustingPeriod: trustingPeriod,
		LatestHeight:   latestHeight,
		FrozenHeight:   clienttypes.ZeroHeight(),
		Authority:      authority,
		ProofSpecs:     specs,
	}
}

// ClientType is trusted.
func (ClientState) ClientType() string {
	return exported.Trusted
}

// GetChainID returns the chain-id
func (cs ClientState) GetChainID() string {
	return cs.ChainId
}

// status returns the status of the client. The client is Frozen once a conflicting header
// was submitted and Expired once the trusting period elapsed since the latest consensus
// state.
func (cs ClientState) status(ctx sdk.Context, clientStore sdk.KVStore) exported.Status {
	if !cs.FrozenHeight.IsZero() {
		return exported.Frozen
	}

	// get latest consensus state from clientStore to check for expiry
	consState, found := getConsensusState(clientStore, cs.LatestHeight)
	if !found {
		// if the client state does not have an associated consensus state for its latest height
		// then it must be expired
		return exported.Expired
	}

	if cs.IsExpired(consState.GetTime(), ctx.BlockTime()) {
		return exported.Expired
	}

	return exported.Active
}

// IsExpired returns whether or not the client has passed the trusting period since the last
// update (in which case no headers are considered valid).
func (cs ClientState) IsExpired(latestTimestamp, now time.Time) bool {
	expirationTime := latestTimestamp.Add(cs.TrustingPeriod)
	return !expirationTime.After(now)
}

// Validate performs a basic validation of the client state fields.
func (cs ClientState) Validate() error {
	if strings.TrimSpace(cs.ChainId) == "" {
		return sdkerrors.Wrap(ErrInvalidChainID, "chain id cannot be empty string")
	}
	if cs.TrustingPeriod <= 0 {
		return sdkerrors.Wrap(ErrInvalidTrustingPeriod, "trusting period must be greater than zero")
	}
	if cs.LatestHeight.RevisionHeight == 0 {
		return sdkerrors.Wrap(clienttypes.ErrInvalidHeight, "latest revision height cannot be zero")
	}
	if strings.TrimSpace(cs.Authority) == "" {
		return sdkerrors.Wrap(ErrInvalidAuthority, "authority cannot be empty")
	}
	if len(cs.ProofSpecs) == 0 {
		return sdkerrors.Wrap(ErrInvalidProofSpecs, "proof specs cannot be empty")
	}
	for i, spec := range cs.ProofSpecs {
		if spec == nil {
			return sdkerrors.Wrapf(ErrInvalidProofSpecs, "proof spec cannot be nil at index: %d", i)
		}
	}

	return nil
}

// Reset implements proto.Message.
func (cs *ClientState) Reset() { *cs = ClientState{} }

// String implements proto.Message.
func (cs *ClientState) String() string {
	out, _ := yaml.Marshal(cs)
	return string(out)
}

// ProtoMessage implements proto.Message.
func (*ClientState) ProtoMessage() {}
