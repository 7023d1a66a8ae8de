package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/gogo/protobuf/proto"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/cosmos/ibc-handshake/modules/core/02-client/types"
	"github.com/cosmos/ibc-handshake/modules/core/exported"
)

// Keeper represents a type that grants read and write permissions to any client
// state information
type Keeper struct {
	storeKey sdk.StoreKey
	router   *types.Router
}

// NewKeeper creates a new NewKeeper instance
func NewKeeper(key sdk.StoreKey) *Keeper {
	return &Keeper{
		storeKey: key,
		router:   types.NewRouter(key),
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+exported.ModuleName+"/"+types.SubModuleName)
}

// GetRouter returns the light client module router.
func (k *Keeper) GetRouter() *types.Router {
	return k.router
}

// AddRoute adds a new route to the underlying router.
func (k *Keeper) AddRoute(clientType string, module exported.LightClientModule) {
	k.router.AddRoute(clientType, module)
}

// GetStoreProvider returns the light client store provider.
func (k *Keeper) GetStoreProvider() exported.ClientStoreProvider {
	return k.router.StoreProvider()
}

// ClientStore returns isolated prefix store for each client so they can read/write in separate
// namespace without being able to read/write other client's data
func (k Keeper) ClientStore(ctx sdk.Context, clientID string) sdk.KVStore {
	return k.router.StoreProvider().ClientStore(ctx, clientID)
}

// Route returns the light client module for the given client identifier.
func (k *Keeper) Route(clientID string) (exported.LightClientModule, error) {
	clientType, _, err := types.ParseClientIdentifier(clientID)
	if err != nil {
		return nil, sdkerrors.Wrapf(err, "unable to parse client identifier %s", clientID)
	}

	lightClientModule, found := k.router.GetRoute(clientType)
	if !found {
		return nil, sdkerrors.Wrap(types.ErrRouteNotFound, clientType)
	}

	return lightClientModule, nil
}

// GenerateClientIdentifier returns the next client identifier.
func (k Keeper) GenerateClientIdentifier(ctx sdk.Context, clientType string) string {
	nextClientSeq := k.GetNextClientSequence(ctx)
	clientID := types.FormatClientIdentifier(clientType, nextClientSeq)

	nextClientSeq++
	k.SetNextClientSequence(ctx, nextClientSeq)
	return clientID
}

// GetNextClientSequence gets the next client sequence from the store.
func (k Keeper) GetNextClientSequence(ctx sdk.Context) uint64 {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get([]byte(types.KeyNextClientSequence))
	if len(bz) == 0 {
		return 0
	}

	return sdk.BigEndianToUint64(bz)
}

// SetNextClientSequence sets the next client sequence to the store.
func (k Keeper) SetNextClientSequence(ctx sdk.Context, sequence uint64) {
	store := ctx.KVStore(k.storeKey)
	bz := sdk.Uint64ToBigEndian(sequence)
	store.Set([]byte(types.KeyNextClientSequence), bz)
}

// GetClientConsensusState gets the stored consensus state from a client at a given height.
func (k *Keeper) GetClientConsensusState(ctx sdk.Context, clientID string, height exported.Height) (exported.ConsensusState, bool) {
	clientModule, err := k.Route(clientID)
	if err != nil {
		return nil, false
	}

	return clientModule.ConsensusState(ctx, clientID, height)
}

// GetClientStatus returns the status for a client state  given a client identifier. If the client type is not in the allowed
// clients param field, Unauthorized is returned, otherwise the client state status is returned.
func (k *Keeper) GetClientStatus(ctx sdk.Context, clientID string) exported.Status {
	clientType, _, err := types.ParseClientIdentifier(clientID)
	if err != nil {
		return exported.Unauthorized
	}

	if !k.GetParams(ctx).IsAllowedClient(clientType) {
		return exported.Unauthorized
	}

	clientModule, err := k.Route(clientID)
	if err != nil {
		return exported.Unauthorized
	}

	return clientModule.Status(ctx, clientID)
}

// GetClientLatestHeight returns the latest height of a client state for a given client identifier. If the client type is not in the allowed
// clients param field, a zero value height is returned, otherwise the client state latest height is returned.
func (k *Keeper) GetClientLatestHeight(ctx sdk.Context, clientID string) types.Height {
	clientType, _, err := types.ParseClientIdentifier(clientID)
	if err != nil {
		return types.ZeroHeight()
	}

	if !k.GetParams(ctx).IsAllowedClient(clientType) {
		return types.ZeroHeight()
	}

	clientModule, err := k.Route(clientID)
	if err != nil {
		return types.ZeroHeight()
	}

	latestHeight, ok := clientModule.LatestHeight(ctx, clientID).(types.Height)
	if !ok {
		panic(fmt.Errorf("light client module of %s returned a height that is not %T", clientID, types.Height{}))
	}
	return latestHeight
}

// GetParams returns the total set of ibc-client parameters. The default parameters are
// returned if none were set.
func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get([]byte(types.KeyParams))
	if len(bz) == 0 {
		return types.DefaultParams()
	}

	var params types.Params
	if err := proto.Unmarshal(bz, &params); err != nil {
		panic(err)
	}
	return params
}

// SetParams sets the total set of ibc-client parameters.
func (k Keeper) SetParams(ctx sdk.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return sdkerrors.Wrap(types.ErrInvalidParams, err.Error())
	}

	bz, err := proto.Marshal(&params)
	if err != nil {
		return err
	}

	ctx.KVStore(k.storeKey).Set([]byte(types.KeyParams), bz)
	return nil
}
