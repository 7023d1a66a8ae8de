package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	channel "github.com/cosmos/ibc-handshake/modules/core/04-channel"
	channeltypes "github.com/cosmos/ibc-handshake/modules/core/04-channel/types"
	porttypes "github.com/cosmos/ibc-handshake/modules/core/05-port/types"
	"github.com/cosmos/ibc-handshake/modules/core/internal/telemetry"
)

// ChannelOpenInit defines a rpc handler method for MsgChannelOpenInit.
// ChannelOpenInit will perform 04-channel checks, route to the application
// callback, and write an OpenInit channel into state upon successful execution.
func (k *Keeper) ChannelOpenInit(goCtx context.Context, msg *channeltypes.MsgChannelOpenInit) (*channeltypes.MsgChannelOpenInitResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	module, err := k.route(ctx, msg, msg.PortId)
	if err != nil {
		return nil, err
	}

	if err := channel.ChanOpenInitValidate(k.NewContext(ctx), module, msg); err != nil {
		ctx.Logger().Error("channel open init failed", "port-id", msg.PortId, "error", err.Error())
		return nil, sdkerrors.Wrap(err, "channel handshake open init failed")
	}

	var channelID, version string
	if err := k.execute(ctx, func(execCtx *Context) (err error) {
		channelID, version, err = channel.ChanOpenInitExecute(execCtx, module, msg)
		return err
	}); err != nil {
		ctx.Logger().Error("channel open init failed", "port-id", msg.PortId, "error", err.Error())
		return nil, sdkerrors.Wrap(err, "channel handshake open init failed")
	}

	ctx.Logger().Info("channel open init succeeded", "channel-id", channelID, "version", version)
	defer telemetry.ReportChannelHandshake("open_init", msg.PortId, channelID)

	return &channeltypes.MsgChannelOpenInitResponse{
		ChannelId: channelID,
		Version:   version,
	}, nil
}

// ChannelOpenTry defines a rpc handler method for MsgChannelOpenTry.
// ChannelOpenTry will perform 04-channel checks, route to the application
// callback, and write an OpenTry channel into state upon successful execution.
func (k *Keeper) ChannelOpenTry(goCtx context.Context, msg *channeltypes.MsgChannelOpenTry) (*channeltypes.MsgChannelOpenTryResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	module, err := k.route(ctx, msg, msg.PortId)
	if err != nil {
		return nil, err
	}

	if err := channel.ChanOpenTryValidate(k.NewContext(ctx), module, msg); err != nil {
		ctx.Logger().Error("channel open try failed", "port-id", msg.PortId, "error", err.Error())
		return nil, sdkerrors.Wrap(err, "channel handshake open try failed")
	}

	var channelID, version string
	if err := k.execute(ctx, func(execCtx *Context) (err error) {
		channelID, version, err = channel.ChanOpenTryExecute(execCtx, module, msg)
		return err
	}); err != nil {
		ctx.Logger().Error("channel open try failed", "port-id", msg.PortId, "error", err.Error())
		return nil, sdkerrors.Wrap(err, "channel handshake open try failed")
	}

	ctx.Logger().Info("channel open try succeeded", "channel-id", channelID, "port-id", msg.PortId, "version", version)
	defer telemetry.ReportChannelHandshake("open_try", msg.PortId, channelID)

	return &channeltypes.MsgChannelOpenTryResponse{
		ChannelId: channelID,
		Version:   version,
	}, nil
}

// ChannelOpenAck defines a rpc handler method for MsgChannelOpenAck.
// ChannelOpenAck will perform 04-channel checks, route to the application
// callback, and write an OpenAck channel into state upon successful execution.
func (k *Keeper) ChannelOpenAck(goCtx context.Context, msg *channeltypes.MsgChannelOpenAck) (*channeltypes.MsgChannelOpenAckResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	module, err := k.route(ctx, msg, msg.PortId)
	if err != nil {
		return nil, err
	}

	if err := channel.ChanOpenAckValidate(k.NewContext(ctx), module, msg); err != nil {
		ctx.Logger().Error("channel open ack failed", "port-id", msg.PortId, "channel-id", msg.ChannelId, "error", err.Error())
		return nil, sdkerrors.Wrap(err, "channel handshake open ack failed")
	}

	if err := k.execute(ctx, func(execCtx *Context) error {
		return channel.ChanOpenAckExecute(execCtx, module, msg)
	}); err != nil {
		ctx.Logger().Error("channel open ack failed", "port-id", msg.PortId, "channel-id", msg.ChannelId, "error", err.Error())
		return nil, sdkerrors.Wrap(err, "channel handshake open ack failed")
	}

	ctx.Logger().Info("channel open ack succeeded", "channel-id", msg.ChannelId, "port-id", msg.PortId)
	defer telemetry.ReportChannelHandshake("open_ack", msg.PortId, msg.ChannelId)

	return &channeltypes.MsgChannelOpenAckResponse{}, nil
}

// ChannelOpenConfirm defines a rpc handler method for MsgChannelOpenConfirm.
// ChannelOpenConfirm will perform 04-channel checks, route to the application
// callback, and write an OpenConfirm channel into state upon successful execution.
func (k *Keeper) ChannelOpenConfirm(goCtx context.Context, msg *channeltypes.MsgChannelOpenConfirm) (*channeltypes.MsgChannelOpenConfirmResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	module, err := k.route(ctx, msg, msg.PortId)
	if err != nil {
		return nil, err
	}

	if err := channel.ChanOpenConfirmValidate(k.NewContext(ctx), module, msg); err != nil {
		ctx.Logger().Error("channel open confirm failed", "port-id", msg.PortId, "channel-id", msg.ChannelId, "error", err.Error())
		return nil, sdkerrors.Wrap(err, "channel handshake open confirm failed")
	}

	if err := k.execute(ctx, func(execCtx *Context) error {
		return channel.ChanOpenConfirmExecute(execCtx, module, msg)
	}); err != nil {
		ctx.Logger().Error("channel open confirm failed", "port-id", msg.PortId, "channel-id", msg.ChannelId, "error", err.Error())
		return nil, sdkerrors.Wrap(err, "channel handshake open confirm failed")
	}

	ctx.Logger().Info("channel open confirm succeeded", "channel-id", msg.ChannelId, "port-id", msg.PortId)
	defer telemetry.ReportChannelHandshake("open_confirm", msg.PortId, msg.ChannelId)

	return &channeltypes.MsgChannelOpenConfirmResponse{}, nil
}

// ChannelCloseInit defines a rpc handler method for MsgChannelCloseInit.
func (k *Keeper) ChannelCloseInit(goCtx context.Context, msg *channeltypes.MsgChannelCloseInit) (*channeltypes.MsgChannelCloseInitResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	module, err := k.route(ctx, msg, msg.PortId)
	if err != nil {
		return nil, err
	}

	if err := channel.ChanCloseInitValidate(k.NewContext(ctx), module, msg); err != nil {
		ctx.Logger().Error("channel close init failed", "port-id", msg.PortId, "channel-id", msg.ChannelId, "error", err.Error())
		return nil, sdkerrors.Wrap(err, "channel handshake close init failed")
	}

	if err := k.execute(ctx, func(execCtx *Context) error {
		return channel.ChanCloseInitExecute(execCtx, module, msg)
	}); err != nil {
		ctx.Logger().Error("channel close init failed", "port-id", msg.PortId, "channel-id", msg.ChannelId, "error", err.Error())
		return nil, sdkerrors.Wrap(err, "channel handshake close init failed")
	}

	ctx.Logger().Info("channel close init succeeded", "channel-id", msg.ChannelId, "port-id", msg.PortId)
	defer telemetry.ReportChannelHandshake("close_init", msg.PortId, msg.ChannelId)

	return &channeltypes.MsgChannelCloseInitResponse{}, nil
}

// ChannelCloseConfirm defines a rpc handler method for MsgChannelCloseConfirm.
func (k *Keeper) ChannelCloseConfirm(goCtx context.Context, msg *channeltypes.MsgChannelCloseConfirm) (*channeltypes.MsgChannelCloseConfirmResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	module, err := k.route(ctx, msg, msg.PortId)
	if err != nil {
		return nil, err
	}

	if err := channel.ChanCloseConfirmValidate(k.NewContext(ctx), module, msg); err != nil {
		ctx.Logger().Error("channel close confirm failed", "port-id", msg.PortId, "channel-id", msg.ChannelId, "error", err.Error())
		return nil, sdkerrors.Wrap(err, "channel handshake close confirm failed")
	}

	if err := k.execute(ctx, func(execCtx *Context) error {
		return channel.ChanCloseConfirmExecute(execCtx, module, msg)
	}); err != nil {
		ctx.Logger().Error("channel close confirm failed", "port-id", msg.PortId, "channel-id", msg.ChannelId, "error", err.Error())
		return nil, sdkerrors.Wrap(err, "channel handshake close confirm failed")
	}

	ctx.Logger().Info("channel close confirm succeeded", "channel-id", msg.ChannelId, "port-id", msg.PortId)
	defer telemetry.ReportChannelHandshake("close_confirm", msg.PortId, msg.ChannelId)

	return &channeltypes.MsgChannelCloseConfirmResponse{}, nil
}

type validatable interface {
	ValidateBasic() error
}

// route performs the stateless checks of msg and returns the application bound to portID.
func (k *Keeper) route(ctx sdk.Context, msg validatable, portID string) (porttypes.IBCModule, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	module, err := k.PortKeeper.Route(ctx, portID)
	if err != nil {
		ctx.Logger().Error("channel handshake failed", "port-id", portID, "error", err.Error())
		return nil, sdkerrors.Wrap(err, "could not retrieve module from port-id")
	}
	return module, nil
}

// execute runs fn against a cached branch of ctx. The writes and events of fn reach ctx
// only if fn succeeds.
func (k *Keeper) execute(ctx sdk.Context, fn func(*Context) error) error {
	cacheCtx, writeFn := ctx.CacheContext()
	cacheCtx = cacheCtx.WithEventManager(sdk.NewEventManager())

	execCtx := k.NewContext(cacheCtx)
	if err := fn(execCtx); err != nil {
		return err
	}

	writeFn()
	ctx.EventManager().EmitEvents(cacheCtx.EventManager().Events())
	return nil
}
