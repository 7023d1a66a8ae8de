package trusted

import (
	"bytes"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/gogo/protobuf/proto"

	clienttypes "github.com/cosmos/ibc-handshake/modules/core/02-client/types"
	commitmenttypes "github.com/cosmos/ibc-handshake/modules/core/23-commitment/types"
	ibcerrors "github.com/cosmos/ibc-handshake/modules/core/errors"
	"github.com/cosmos/ibc-handshake/modules/core/exported"
)

var _ exported.LightClientModule = (*LightClientModule)(nil)

// LightClientModule implements the core IBC exported.LightClientModule interface.
type LightClientModule struct {
	storeProvider exported.ClientStoreProvider
}

// NewLightClientModule creates and returns a new 10-trusted LightClientModule.
func NewLightClientModule(storeProvider exported.ClientStoreProvider) LightClientModule {
	return LightClientModule{
		storeProvider: storeProvider,
	}
}

// Initialize unmarshals the provided client and consensus states and performs basic validation.
// The consensus state is stored at the latest height of the client state.
func (l LightClientModule) Initialize(ctx sdk.Context, clientID string, clientStateBz, consensusStateBz []byte) error {
	var clientState ClientState
	if err := proto.Unmarshal(clientStateBz, &clientState); err != nil {
		return sdkerrors.Wrapf(clienttypes.ErrInvalidClient, "failed to unmarshal client state bytes into client state: %s", err)
	}

	if err := clientState.Validate(); err != nil {
		return err
	}

	var consensusState ConsensusState
	if err := proto.Unmarshal(consensusStateBz, &consensusState); err != nil {
		return sdkerrors.Wrapf(clienttypes.ErrInvalidConsensus, "failed to unmarshal consensus state bytes into consensus state: %s", err)
	}

	if err := consensusState.ValidateBasic(); err != nil {
		return err
	}

	clientStore := l.storeProvider.ClientStore(ctx, clientID)
	if _, found := getClientState(clientStore); found {
		return sdkerrors.Wrap(clienttypes.ErrClientExists, clientID)
	}

	setConsensusState(clientStore, &consensusState, clientState.LatestHeight)
	setClientState(clientStore, &clientState)

	return nil
}

// UpdateState verifies that the encoded header was submitted by the client authority and
// stores the consensus state it commits. A header conflicting with an already stored
// consensus state freezes the client and no consensus state is stored.
func (l LightClientModule) UpdateState(ctx sdk.Context, clientID string, clientMsgBz []byte) ([]exported.Height, error) {
	clientStore := l.storeProvider.ClientStore(ctx, clientID)
	clientState, found := getClientState(clientStore)
	if !found {
		return nil, sdkerrors.Wrap(clienttypes.ErrClientNotFound, clientID)
	}

	var header Header
	if err := proto.Unmarshal(clientMsgBz, &header); err != nil {
		return nil, sdkerrors.Wrapf(clienttypes.ErrInvalidHeader, "failed to unmarshal header: %s", err)
	}

	if err := header.ValidateBasic(); err != nil {
		return nil, err
	}

	if header.Signer != clientState.Authority {
		return nil, sdkerrors.Wrapf(ibcerrors.ErrUnauthorized, "expected %s, got %s", clientState.Authority, header.Signer)
	}

	if header.Height.RevisionNumber != clientState.LatestHeight.RevisionNumber {
		return nil, sdkerrors.Wrapf(ErrInvalidHeaderHeight, "header revision number %d does not match client revision number %d",
			header.Height.RevisionNumber, clientState.LatestHeight.RevisionNumber)
	}

	if existing, found := getConsensusState(clientStore, header.Height); found {
		if !bytes.Equal(existing.Root.GetHash(), header.Root.GetHash()) || existing.Timestamp != header.Timestamp {
			clientState.FrozenHeight = clienttypes.NewHeight(0, 1)
			setClientState(clientStore, clientState)
			ctx.Logger().Info("client frozen due to conflicting header", "client-id", clientID, "height", header.Height.String())
			return []exported.Height{}, nil
		}

		// a duplicate header is a no-op
		return []exported.Height{header.Height}, nil
	}

	setConsensusState(clientStore, header.ConsensusState(), header.Height)
	if header.Height.GT(clientState.LatestHeight) {
		clientState.LatestHeight = header.Height
		setClientState(clientStore, clientState)
	}

	return []exported.Height{header.Height}, nil
}

// Status returns the status of the client. Only Active clients may verify proofs.
func (l LightClientModule) Status(ctx sdk.Context, clientID string) exported.Status {
	clientStore := l.storeProvider.ClientStore(ctx, clientID)
	clientState, found := getClientState(clientStore)
	if !found {
		return exported.Unknown
	}

	return clientState.status(ctx, clientStore)
}

// LatestHeight returns the latest height of the client. A zero height is returned if the
// client does not exist.
func (l LightClientModule) LatestHeight(ctx sdk.Context, clientID string) exported.Height {
	clientStore := l.storeProvider.ClientStore(ctx, clientID)
	clientState, found := getClientState(clientStore)
	if !found {
		return clienttypes.ZeroHeight()
	}

	return clientState.LatestHeight
}

// ValidateProofHeight returns an error if the proof height is greater than the latest
// height of the client.
func (l LightClientModule) ValidateProofHeight(ctx sdk.Context, clientID string, proofHeight exported.Height) error {
	clientStore := l.storeProvider.ClientStore(ctx, clientID)
	clientState, found := getClientState(clientStore)
	if !found {
		return sdkerrors.Wrap(clienttypes.ErrClientNotFound, clientID)
	}

	if clientState.LatestHeight.LT(proofHeight) {
		return sdkerrors.Wrapf(
			ibcerrors.ErrInvalidHeight,
			"client state height < proof height (%s < %s), please ensure the client has been updated", clientState.LatestHeight, proofHeight,
		)
	}

	return nil
}

// ConsensusState returns the consensus state stored at height.
func (l LightClientModule) ConsensusState(ctx sdk.Context, clientID string, height exported.Height) (exported.ConsensusState, bool) {
	clientStore := l.storeProvider.ClientStore(ctx, clientID)
	consensusState, found := getConsensusState(clientStore, height)
	if !found {
		return nil, false
	}
	return consensusState, true
}

// VerifyMembership decodes the proof as a MerkleProof and verifies it against root for
// the path obtained by applying prefix to path.
func (l LightClientModule) VerifyMembership(
	ctx sdk.Context,
	clientID string,
	prefix exported.Prefix,
	proof []byte,
	root exported.Root,
	path exported.Path,
	value []byte,
) error {
	clientStore := l.storeProvider.ClientStore(ctx, clientID)
	clientState, found := getClientState(clientStore)
	if !found {
		return sdkerrors.Wrap(clienttypes.ErrClientNotFound, clientID)
	}

	var merkleProof commitmenttypes.MerkleProof
	if err := proto.Unmarshal(proof, &merkleProof); err != nil {
		return sdkerrors.Wrapf(commitmenttypes.ErrInvalidProof, "failed to unmarshal proof into ICS 23 commitment merkle proof: %s", err)
	}

	merklePath, err := commitmenttypes.ApplyPrefix(prefix, commitmenttypes.NewMerklePath(path.Bytes()))
	if err != nil {
		return err
	}

	return merkleProof.VerifyMembership(clientState.ProofSpecs, root, merklePath, value)
}
