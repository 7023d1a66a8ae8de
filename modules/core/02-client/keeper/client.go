package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/cosmos/ibc-handshake/modules/core/02-client/types"
	"github.com/cosmos/ibc-handshake/modules/core/internal/telemetry"
)

// CreateClient generates a new client identifier and isolated prefix store for the provided client state.
// The client state is responsible for setting any client-specific data in the store via the Initialize method.
// This includes the client state, initial consensus state and any associated metadata.
func (k *Keeper) CreateClient(
	ctx sdk.Context, clientType string, clientState []byte, consensusState []byte,
) (string, error) {
	params := k.GetParams(ctx)
	if !params.IsAllowedClient(clientType) {
		return "", sdkerrors.Wrapf(
			types.ErrInvalidClientType,
			"client state type %s is not registered in the allowlist", clientType,
		)
	}

	lightClientModule, found := k.router.GetRoute(clientType)
	if !found {
		return "", sdkerrors.Wrap(types.ErrRouteNotFound, clientType)
	}

	clientID := k.GenerateClientIdentifier(ctx, clientType)

	if err := lightClientModule.Initialize(ctx, clientID, clientState, consensusState); err != nil {
		return "", err
	}

	if status := k.GetClientStatus(ctx, clientID); !status.IsActive() {
		return "", sdkerrors.Wrapf(types.ErrClientNotActive, "cannot create client (%s) with status %s", clientID, status)
	}

	latestHeight := lightClientModule.LatestHeight(ctx, clientID)
	k.Logger(ctx).Info("client created at height", "client-id", clientID, "height", latestHeight.String())

	defer telemetry.ReportCreateClient(clientType)

	emitCreateClientEvent(ctx, clientID, clientType, latestHeight)

	return clientID, nil
}

// UpdateClient verifies the encoded client message with the light client module of the
// client and stores the consensus states it produces.
func (k *Keeper) UpdateClient(ctx sdk.Context, clientID string, clientMsg []byte) error {
	if status := k.GetClientStatus(ctx, clientID); !status.IsActive() {
		return sdkerrors.Wrapf(types.ErrClientNotActive, "cannot update client (%s) with status %s", clientID, status)
	}

	clientType, _, err := types.ParseClientIdentifier(clientID)
	if err != nil {
		return sdkerrors.Wrapf(types.ErrClientNotFound, "clientID (%s)", clientID)
	}

	lightClientModule, err := k.Route(clientID)
	if err != nil {
		return err
	}

	consensusHeights, err := lightClientModule.UpdateState(ctx, clientID, clientMsg)
	if err != nil {
		return sdkerrors.Wrapf(types.ErrUpdateClientFailed, "client (%s): %s", clientID, err)
	}

	k.Logger(ctx).Info("client state updated", "client-id", clientID, "heights", consensusHeights)

	defer telemetry.ReportUpdateClient(clientType, clientID)

	emitUpdateClientEvent(ctx, clientID, clientType, consensusHeights)

	return nil
}
