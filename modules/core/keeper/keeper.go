package keeper

import (
	"errors"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/tendermint/tendermint/libs/log"

	clientkeeper "github.com/cosmos/ibc-handshake/modules/core/02-client/keeper"
	connectionkeeper "github.com/cosmos/ibc-handshake/modules/core/03-connection/keeper"
	channelkeeper "github.com/cosmos/ibc-handshake/modules/core/04-channel/keeper"
	portkeeper "github.com/cosmos/ibc-handshake/modules/core/05-port/keeper"
	porttypes "github.com/cosmos/ibc-handshake/modules/core/05-port/types"
	"github.com/cosmos/ibc-handshake/modules/core/exported"
)

// Keeper defines each ICS keeper for IBC
type Keeper struct {
	ClientKeeper     *clientkeeper.Keeper
	ConnectionKeeper connectionkeeper.Keeper
	ChannelKeeper    channelkeeper.Keeper
	PortKeeper       *portkeeper.Keeper

	bech32Prefix string
}

// NewKeeper creates a new ibc Keeper. All submodules share the store of storeKey.
// Message signers must be bech32 account addresses with the human readable part bech32Prefix.
func NewKeeper(storeKey sdk.StoreKey, commitmentPrefix, bech32Prefix string) *Keeper {
	if strings.TrimSpace(bech32Prefix) == "" {
		panic(errors.New("cannot initialize IBC keeper: empty bech32 prefix"))
	}

	return &Keeper{
		ClientKeeper:     clientkeeper.NewKeeper(storeKey),
		ConnectionKeeper: connectionkeeper.NewKeeper(storeKey, commitmentPrefix),
		ChannelKeeper:    channelkeeper.NewKeeper(storeKey),
		PortKeeper:       portkeeper.NewKeeper(storeKey),
		bech32Prefix:     bech32Prefix,
	}
}

// Logger returns a module-specific logger.
func (k *Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+exported.ModuleName)
}

// SetRouter sets the Router in IBC Keeper and seals it. The method panics if
// there is an existing router that's already sealed.
func (k *Keeper) SetRouter(rtr *porttypes.Router) {
	if k.PortKeeper.Router != nil && k.PortKeeper.Router.Sealed() {
		panic(errors.New("cannot reset a sealed router"))
	}

	k.PortKeeper.SetRouter(rtr)
}

// GetBech32Prefix returns the human readable part accepted for message signers.
func (k *Keeper) GetBech32Prefix() string {
	return k.bech32Prefix
}
