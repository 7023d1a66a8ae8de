package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/cosmos/ibc-handshake/modules/core/02-client/types"
	"github.com/cosmos/ibc-handshake/modules/core/exported"
)

var _ exported.LightClient = (*boundLightClient)(nil)

// boundLightClient binds a light client module to a client identifier and the context of
// the current invocation.
type boundLightClient struct {
	ctx      sdk.Context
	keeper   *Keeper
	clientID string
	module   exported.LightClientModule
}

// LightClient returns the light client capability of an existing client. The status it
// reports honours the allowed clients parameter.
func (k *Keeper) LightClient(ctx sdk.Context, clientID string) (exported.LightClient, error) {
	module, err := k.Route(clientID)
	if err != nil {
		return nil, sdkerrors.Wrapf(types.ErrClientNotFound, "client (%s): %s", clientID, err)
	}

	if module.LatestHeight(ctx, clientID).IsZero() {
		return nil, sdkerrors.Wrap(types.ErrClientNotFound, clientID)
	}

	return boundLightClient{
		ctx:      ctx,
		keeper:   k,
		clientID: clientID,
		module:   module,
	}, nil
}

func (c boundLightClient) ClientID() string {
	return c.clientID
}

func (c boundLightClient) Status() exported.Status {
	return c.keeper.GetClientStatus(c.ctx, c.clientID)
}

func (c boundLightClient) ValidateProofHeight(proofHeight exported.Height) error {
	return c.module.ValidateProofHeight(c.ctx, c.clientID, proofHeight)
}

func (c boundLightClient) VerifyMembership(prefix exported.Prefix, proof []byte, root exported.Root, path exported.Path, value []byte) error {
	return c.module.VerifyMembership(c.ctx, c.clientID, prefix, proof, root, path, value)
}
