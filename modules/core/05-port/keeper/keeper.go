package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/cosmos/ibc-handshake/modules/core/05-port/types"
	host "github.com/cosmos/ibc-handshake/modules/core/24-host"
	"github.com/cosmos/ibc-handshake/modules/core/exported"
)

// Keeper defines the IBC port keeper. Ports are bound to the name of the application
// module owning them; the module name selects the callbacks in the Router.
type Keeper struct {
	storeKey sdk.StoreKey
	Router   *types.Router
}

// NewKeeper creates a new IBC port Keeper instance
func NewKeeper(key sdk.StoreKey) *Keeper {
	return &Keeper{
		storeKey: key,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s/%s", exported.ModuleName, types.SubModuleName))
}

// SetRouter sets the Router of the port keeper and seals it.
func (k *Keeper) SetRouter(rtr *types.Router) {
	if k.Router != nil && k.Router.Sealed() {
		panic("cannot reset a sealed router")
	}
	rtr.Seal()
	k.Router = rtr
}

// IsBound checks a given port ID is already bound.
func (k Keeper) IsBound(ctx sdk.Context, portID string) bool {
	return ctx.KVStore(k.storeKey).Has(host.PortKey(portID))
}

// BindPort binds to a port and records the name of the module owning it. The port must
// be a valid identifier and must not be bound already.
func (k Keeper) BindPort(ctx sdk.Context, portID, module string) error {
	if err := host.PortIdentifierValidator(portID); err != nil {
		return sdkerrors.Wrap(types.ErrInvalidPort, err.Error())
	}
	if k.IsBound(ctx, portID) {
		return sdkerrors.Wrapf(types.ErrPortExists, "port %s is already bound", portID)
	}
	if k.Router == nil || !k.Router.HasRoute(module) {
		return sdkerrors.Wrapf(types.ErrInvalidRoute, "no route registered for module %s", module)
	}

	ctx.KVStore(k.storeKey).Set(host.PortKey(portID), []byte(module))
	k.Logger(ctx).Info("port bound", "port-id", portID, "module", module)
	return nil
}

// LookupModuleByPort returns the name of the module bound to the given port.
func (k Keeper) LookupModuleByPort(ctx sdk.Context, portID string) (string, bool) {
	bz := ctx.KVStore(k.storeKey).Get(host.PortKey(portID))
	if len(bz) == 0 {
		return "", false
	}
	return string(bz), true
}

// Route returns the callbacks of the module bound to portID.
func (k Keeper) Route(ctx sdk.Context, portID string) (types.IBCModule, error) {
	module, found := k.LookupModuleByPort(ctx, portID)
	if !found {
		return nil, sdkerrors.Wrapf(types.ErrPortNotFound, "could not retrieve module from port-id: %s", portID)
	}

	cbs, ok := k.Router.GetRoute(module)
	if !ok {
		return nil, sdkerrors.Wrapf(types.ErrInvalidRoute, "route not found to module: %s", module)
	}
	return cbs, nil
}
