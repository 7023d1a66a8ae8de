package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/bech32"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	clienttypes "github.com/cosmos/ibc-handshake/modules/core/02-client/types"
	connectiontypes "github.com/cosmos/ibc-handshake/modules/core/03-connection/types"
	channeltypes "github.com/cosmos/ibc-handshake/modules/core/04-channel/types"
	host "github.com/cosmos/ibc-handshake/modules/core/24-host"
	ibcerrors "github.com/cosmos/ibc-handshake/modules/core/errors"
	"github.com/cosmos/ibc-handshake/modules/core/exported"
)

var _ channeltypes.ExecutionContext = (*Context)(nil)

// Context is the host view of a single message invocation. Reads and writes go through the
// store of the wrapped sdk.Context; events and log lines are recorded in invocation order.
type Context struct {
	ctx    sdk.Context
	keeper *Keeper

	events []sdk.Event
	logs   []string
}

// NewContext returns the handshake context of ctx.
func (k *Keeper) NewContext(ctx sdk.Context) *Context {
	return &Context{ctx: ctx, keeper: k}
}

// SDKContext returns the wrapped sdk.Context.
func (c *Context) SDKContext() sdk.Context {
	return c.ctx
}

// Events returns the events emitted so far.
func (c *Context) Events() []sdk.Event {
	return c.events
}

// Logs returns the log lines recorded so far.
func (c *Context) Logs() []string {
	return c.logs
}

func (c *Context) ChannelEnd(path host.ChannelEndPath) (channeltypes.Channel, error) {
	channel, found := c.keeper.ChannelKeeper.GetChannel(c.ctx, path.PortID, path.ChannelID)
	if !found {
		return channeltypes.Channel{}, sdkerrors.Wrapf(channeltypes.ErrChannelNotFound, "port ID (%s) channel ID (%s)", path.PortID, path.ChannelID)
	}
	return channel, nil
}

func (c *Context) ConnectionEnd(connectionID string) (connectiontypes.ConnectionEnd, error) {
	connection, found := c.keeper.ConnectionKeeper.GetConnection(c.ctx, connectionID)
	if !found {
		return connectiontypes.ConnectionEnd{}, sdkerrors.Wrap(connectiontypes.ErrConnectionNotFound, connectionID)
	}
	return connection, nil
}

func (c *Context) LightClient(clientID string) (exported.LightClient, error) {
	return c.keeper.ClientKeeper.LightClient(c.ctx, clientID)
}

func (c *Context) ConsensusState(path host.ClientConsensusStatePath) (exported.ConsensusState, error) {
	if path.Empty() {
		return nil, sdkerrors.Wrapf(clienttypes.ErrInvalidHeight, "invalid consensus state path %s", path)
	}

	consensusState, found := c.keeper.ClientKeeper.GetClientConsensusState(c.ctx, path.ClientID, path.Height)
	if !found {
		return nil, sdkerrors.Wrapf(clienttypes.ErrConsensusStateNotFound, "client (%s) height (%s)", path.ClientID, path.Height)
	}
	return consensusState, nil
}

func (c *Context) ChannelCounter() (uint64, error) {
	return c.keeper.ChannelKeeper.GetNextChannelSequence(c.ctx), nil
}

// ValidateMessageSigner accepts bech32 account addresses carrying the configured human
// readable part.
func (c *Context) ValidateMessageSigner(signer string) error {
	hrp, bz, err := bech32.DecodeAndConvert(signer)
	if err != nil {
		return sdkerrors.Wrapf(ibcerrors.ErrInvalidAddress, "string could not be parsed as address: %v", err)
	}

	if hrp != c.keeper.bech32Prefix {
		return sdkerrors.Wrapf(ibcerrors.ErrInvalidAddress, "invalid bech32 prefix; expected %s, got %s", c.keeper.bech32Prefix, hrp)
	}

	if err := sdk.VerifyAddressFormat(bz); err != nil {
		return sdkerrors.Wrap(ibcerrors.ErrInvalidAddress, err.Error())
	}
	return nil
}

func (c *Context) GoContext() context.Context {
	return sdk.WrapSDKContext(c.ctx)
}

func (c *Context) StoreChannel(path host.ChannelEndPath, channel channeltypes.Channel) error {
	c.keeper.ChannelKeeper.SetChannel(c.ctx, path.PortID, path.ChannelID, channel)
	return nil
}

func (c *Context) IncreaseChannelCounter() error {
	next := c.keeper.ChannelKeeper.GetNextChannelSequence(c.ctx)
	c.keeper.ChannelKeeper.SetNextChannelSequence(c.ctx, next+1)
	return nil
}

func (c *Context) StoreNextSequenceSend(portID, channelID string, sequence uint64) error {
	c.keeper.ChannelKeeper.SetNextSequenceSend(c.ctx, portID, channelID, sequence)
	return nil
}

func (c *Context) StoreNextSequenceRecv(portID, channelID string, sequence uint64) error {
	c.keeper.ChannelKeeper.SetNextSequenceRecv(c.ctx, portID, channelID, sequence)
	return nil
}

func (c *Context) StoreNextSequenceAck(portID, channelID string, sequence uint64) error {
	c.keeper.ChannelKeeper.SetNextSequenceAck(c.ctx, portID, channelID, sequence)
	return nil
}

func (c *Context) EmitIBCEvent(event sdk.Event) {
	c.events = append(c.events, event)
	c.ctx.EventManager().EmitEvent(event)
}

func (c *Context) LogMessage(msg string) {
	c.logs = append(c.logs, msg)
	c.keeper.Logger(c.ctx).Info(msg)
}
