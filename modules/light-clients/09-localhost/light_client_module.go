package localhost

import (
	"bytes"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	clienttypes "github.com/cosmos/ibc-handshake/modules/core/02-client/types"
	commitmenttypes "github.com/cosmos/ibc-handshake/modules/core/23-commitment/types"
	ibcerrors "github.com/cosmos/ibc-handshake/modules/core/errors"
	"github.com/cosmos/ibc-handshake/modules/core/exported"
)

// SentinelProof defines the 09-localhost sentinel proof.
// Submission of nil or empty proofs is disallowed in core IBC messaging.
// This serves as a placeholder value for relayers to leverage as the proof field in various message types.
// Localhost client state verification will fail if the sentinel proof value is not provided.
var SentinelProof = []byte{0x01}

var _ exported.LightClientModule = (*LightClientModule)(nil)

// LightClientModule implements the core IBC exported.LightClientModule interface.
type LightClientModule struct {
	key sdk.StoreKey
}

// NewLightClientModule creates and returns a new 09-localhost LightClientModule reading the
// IBC store of key.
func NewLightClientModule(key sdk.StoreKey) *LightClientModule {
	return &LightClientModule{
		key: key,
	}
}

// Initialize returns an error because it is stateless.
//
// CONTRACT: clientID is validated in 02-client router, thus clientID is assumed here to be 09-localhost.
func (LightClientModule) Initialize(_ sdk.Context, _ string, _, _ []byte) error {
	return sdkerrors.Wrap(clienttypes.ErrClientExists, "localhost is stateless and cannot be initialized")
}

// UpdateState performs a no-op and returns the context height in the updated heights return value.
//
// CONTRACT: clientID is validated in 02-client router, thus clientID is assumed here to be 09-localhost.
func (LightClientModule) UpdateState(ctx sdk.Context, _ string, _ []byte) ([]exported.Height, error) {
	return []exported.Height{clienttypes.GetSelfHeight(ctx)}, nil
}

// Status always returns Active. The 09-localhost status cannot be changed.
func (LightClientModule) Status(_ sdk.Context, _ string) exported.Status {
	return exported.Active
}

// LatestHeight returns the context height.
//
// CONTRACT: clientID is validated in 02-client router, thus clientID is assumed here to be 09-localhost.
func (LightClientModule) LatestHeight(ctx sdk.Context, _ string) exported.Height {
	return clienttypes.GetSelfHeight(ctx)
}

// ValidateProofHeight returns an error if the proof height is greater than the context height.
func (LightClientModule) ValidateProofHeight(ctx sdk.Context, _ string, proofHeight exported.Height) error {
	selfHeight := clienttypes.GetSelfHeight(ctx)
	if selfHeight.LT(proofHeight) {
		return sdkerrors.Wrapf(ibcerrors.ErrInvalidHeight, "proof height %s is greater than self height %s", proofHeight, selfHeight)
	}
	return nil
}

// ConsensusState returns the sentinel consensus state carrying the current block time. The
// localhost client does not store consensus states.
func (LightClientModule) ConsensusState(ctx sdk.Context, _ string, _ exported.Height) (exported.ConsensusState, bool) {
	return ConsensusState{Timestamp: uint64(ctx.BlockTime().UnixNano())}, true
}

// VerifyMembership is a generic proof verification method which verifies the existence of a given key and value within the IBC store.
// The commitment prefix (eg: "ibc") is omitted when operating on the core IBC store.
//
// CONTRACT: clientID is validated in 02-client router, thus clientID is assumed here to be 09-localhost.
func (l LightClientModule) VerifyMembership(
	ctx sdk.Context,
	_ string,
	_ exported.Prefix,
	proof []byte,
	_ exported.Root,
	path exported.Path,
	value []byte,
) error {
	ibcStore := ctx.KVStore(l.key)

	// ensure the proof provided is the expected sentinel localhost client proof
	if !bytes.Equal(proof, SentinelProof) {
		return sdkerrors.Wrapf(commitmenttypes.ErrInvalidProof, "expected %s, got %s", string(SentinelProof), string(proof))
	}

	bz := ibcStore.Get(path.Bytes())
	if bz == nil {
		return sdkerrors.Wrapf(clienttypes.ErrFailedMembershipVerification, "value not found for path %s", path)
	}

	if !bytes.Equal(bz, value) {
		return sdkerrors.Wrapf(clienttypes.ErrFailedMembershipVerification, "value provided does not equal value stored at path: %s", path)
	}

	return nil
}
