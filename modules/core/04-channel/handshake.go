package channel

import (
	"errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	connectiontypes "github.com/cosmos/ibc-handshake/modules/core/03-connection/types"
	"github.com/cosmos/ibc-handshake/modules/core/04-channel/types"
	porttypes "github.com/cosmos/ibc-handshake/modules/core/05-port/types"
	host "github.com/cosmos/ibc-handshake/modules/core/24-host"
	ibcerrors "github.com/cosmos/ibc-handshake/modules/core/errors"
)

// ChanOpenInitValidate checks a MsgChannelOpenInit against the host state and the
// application bound to the port. It performs no writes.
func ChanOpenInitValidate(ctx types.ValidationContext, module porttypes.IBCModule, msg *types.MsgChannelOpenInit) error {
	if err := ctx.ValidateMessageSigner(msg.Signer); err != nil {
		return err
	}

	channelID, err := nextChannelID(ctx)
	if err != nil {
		return err
	}

	if err := verifyChannelAbsent(ctx, msg.PortId, channelID); err != nil {
		return err
	}

	if err := verifyChannelConnection(ctx, msg.Channel); err != nil {
		return err
	}

	return module.OnChanOpenInitValidate(
		ctx.GoContext(), msg.Channel.Ordering, msg.Channel.ConnectionHops,
		msg.PortId, channelID, msg.Channel.Counterparty, msg.Channel.Version,
	)
}

// ChanOpenInitExecute allocates a channel identifier and stores a new channel end in INIT.
// The stored version is the one selected by the application. The identifier and version
// are returned.
func ChanOpenInitExecute(ctx types.ExecutionContext, module porttypes.IBCModule, msg *types.MsgChannelOpenInit) (string, string, error) {
	channelID, err := nextChannelID(ctx)
	if err != nil {
		return "", "", err
	}

	extras, version, err := module.OnChanOpenInitExecute(
		ctx.GoContext(), msg.Channel.Ordering, msg.Channel.ConnectionHops,
		msg.PortId, channelID, msg.Channel.Counterparty, msg.Channel.Version,
	)
	if err != nil {
		return "", "", sdkerrors.Wrapf(err, "channel open init callback failed for port ID: %s, channel ID: %s", msg.PortId, channelID)
	}

	channel := types.NewChannel(types.INIT, msg.Channel.Ordering, msg.Channel.Counterparty, msg.Channel.ConnectionHops, version)
	if err := createChannel(ctx, msg.PortId, channelID, channel); err != nil {
		return "", "", err
	}

	ctx.LogMessage("success: channel open init")
	emitEvents(ctx, types.NewChannelEvent(
		types.EventTypeChannelOpenInit,
		msg.PortId, channelID,
		channel.Counterparty.PortId, channel.Counterparty.ChannelId,
		channel.ConnectionHops[0], version,
	), extras)

	return channelID, version, nil
}

// ChanOpenTryValidate checks a MsgChannelOpenTry. The counterparty must have stored a
// channel end in INIT whose counterparty is the local port with no channel identifier yet.
func ChanOpenTryValidate(ctx types.ValidationContext, module porttypes.IBCModule, msg *types.MsgChannelOpenTry) error {
	if err := ctx.ValidateMessageSigner(msg.Signer); err != nil {
		return err
	}

	channelID, err := nextChannelID(ctx)
	if err != nil {
		return err
	}

	if err := verifyChannelAbsent(ctx, msg.PortId, channelID); err != nil {
		return err
	}

	if err := verifyChannelConnection(ctx, msg.Channel); err != nil {
		return err
	}

	connection, err := ctx.ConnectionEnd(msg.Channel.ConnectionHops[0])
	if err != nil {
		return err
	}

	expected, err := expectedCounterpartyChannel(
		types.INIT, msg.Channel.Ordering, msg.PortId, "", connection, msg.CounterpartyVersion,
	)
	if err != nil {
		return err
	}

	if err := verifyChannelState(
		ctx, connection, msg.ProofHeight, msg.ProofInit,
		msg.Channel.Counterparty.PortId, msg.Channel.Counterparty.ChannelId, expected,
	); err != nil {
		return err
	}

	return module.OnChanOpenTryValidate(
		ctx.GoContext(), msg.Channel.Ordering, msg.Channel.ConnectionHops,
		msg.PortId, channelID, msg.Channel.Counterparty, msg.CounterpartyVersion,
	)
}

// ChanOpenTryExecute allocates a channel identifier and stores a new channel end in
// TRYOPEN with the version selected by the application. The identifier and version are
// returned.
func ChanOpenTryExecute(ctx types.ExecutionContext, module porttypes.IBCModule, msg *types.MsgChannelOpenTry) (string, string, error) {
	channelID, err := nextChannelID(ctx)
	if err != nil {
		return "", "", err
	}

	extras, version, err := module.OnChanOpenTryExecute(
		ctx.GoContext(), msg.Channel.Ordering, msg.Channel.ConnectionHops,
		msg.PortId, channelID, msg.Channel.Counterparty, msg.CounterpartyVersion,
	)
	if err != nil {
		return "", "", sdkerrors.Wrapf(err, "channel open try callback failed for port ID: %s, channel ID: %s", msg.PortId, channelID)
	}

	channel := types.NewChannel(types.TRYOPEN, msg.Channel.Ordering, msg.Channel.Counterparty, msg.Channel.ConnectionHops, version)
	if err := createChannel(ctx, msg.PortId, channelID, channel); err != nil {
		return "", "", err
	}

	ctx.LogMessage("success: channel open try")
	emitEvents(ctx, types.NewChannelEvent(
		types.EventTypeChannelOpenTry,
		msg.PortId, channelID,
		channel.Counterparty.PortId, channel.Counterparty.ChannelId,
		channel.ConnectionHops[0], version,
	), extras)

	return channelID, version, nil
}

// ChanOpenAckValidate checks a MsgChannelOpenAck. The local channel end must be in INIT
// and the counterparty must have stored a TRYOPEN channel end pointing back at it.
func ChanOpenAckValidate(ctx types.ValidationContext, module porttypes.IBCModule, msg *types.MsgChannelOpenAck) error {
	if err := ctx.ValidateMessageSigner(msg.Signer); err != nil {
		return err
	}

	channel, connection, err := loadChannelAndConnection(ctx, msg.PortId, msg.ChannelId, types.INIT)
	if err != nil {
		return err
	}

	if err := checkClientActive(ctx, connection); err != nil {
		return err
	}

	expected, err := expectedCounterpartyChannel(
		types.TRYOPEN, channel.Ordering, msg.PortId, msg.ChannelId, connection, msg.CounterpartyVersion,
	)
	if err != nil {
		return err
	}

	if err := verifyChannelState(
		ctx, connection, msg.ProofHeight, msg.ProofTry,
		channel.Counterparty.PortId, msg.CounterpartyChannelId, expected,
	); err != nil {
		return err
	}

	return module.OnChanOpenAckValidate(ctx.GoContext(), msg.PortId, msg.ChannelId, msg.CounterpartyChannelId, msg.CounterpartyVersion)
}

// ChanOpenAckExecute moves the channel end to OPEN and records the counterparty channel
// identifier and the version negotiated by the counterparty.
func ChanOpenAckExecute(ctx types.ExecutionContext, module porttypes.IBCModule, msg *types.MsgChannelOpenAck) error {
	extras, err := module.OnChanOpenAckExecute(ctx.GoContext(), msg.PortId, msg.ChannelId, msg.CounterpartyChannelId, msg.CounterpartyVersion)
	if err != nil {
		return sdkerrors.Wrapf(err, "channel open ack callback failed for port ID: %s, channel ID: %s", msg.PortId, msg.ChannelId)
	}

	path := host.NewChannelEndPath(msg.PortId, msg.ChannelId)
	channel, err := ctx.ChannelEnd(path)
	if err != nil {
		return err
	}

	connectionID, err := firstHop(channel)
	if err != nil {
		return err
	}

	channel.State = types.OPEN
	channel.Version = msg.CounterpartyVersion
	channel.Counterparty.ChannelId = msg.CounterpartyChannelId
	if err := ctx.StoreChannel(path, channel); err != nil {
		return err
	}

	ctx.LogMessage("success: channel open ack")
	emitEvents(ctx, types.NewChannelEvent(
		types.EventTypeChannelOpenAck,
		msg.PortId, msg.ChannelId,
		channel.Counterparty.PortId, channel.Counterparty.ChannelId,
		connectionID, "",
	), extras)

	return nil
}

// ChanOpenConfirmValidate checks a MsgChannelOpenConfirm. The local channel end must be in
// TRYOPEN and the counterparty must have stored an OPEN channel end pointing back at it.
func ChanOpenConfirmValidate(ctx types.ValidationContext, module porttypes.IBCModule, msg *types.MsgChannelOpenConfirm) error {
	if err := ctx.ValidateMessageSigner(msg.Signer); err != nil {
		return err
	}

	channel, connection, err := loadChannelAndConnection(ctx, msg.PortId, msg.ChannelId, types.TRYOPEN)
	if err != nil {
		return err
	}

	if err := checkClientActive(ctx, connection); err != nil {
		return err
	}

	if channel.Counterparty.ChannelId == "" {
		return sdkerrors.Wrapf(types.ErrMissingCounterparty, "port ID: %s, channel ID: %s", msg.PortId, msg.ChannelId)
	}

	expected, err := expectedCounterpartyChannel(
		types.OPEN, channel.Ordering, msg.PortId, msg.ChannelId, connection, channel.Version,
	)
	if err != nil {
		return err
	}

	if err := verifyChannelState(
		ctx, connection, msg.ProofHeight, msg.ProofAck,
		channel.Counterparty.PortId, channel.Counterparty.ChannelId, expected,
	); err != nil {
		return err
	}

	return module.OnChanOpenConfirmValidate(ctx.GoContext(), msg.PortId, msg.ChannelId)
}

// ChanOpenConfirmExecute moves the channel end to OPEN. All other fields of the channel
// end are left unchanged.
func ChanOpenConfirmExecute(ctx types.ExecutionContext, module porttypes.IBCModule, msg *types.MsgChannelOpenConfirm) error {
	extras, err := module.OnChanOpenConfirmExecute(ctx.GoContext(), msg.PortId, msg.ChannelId)
	if err != nil {
		return sdkerrors.Wrapf(err, "channel open confirm callback failed for port ID: %s, channel ID: %s", msg.PortId, msg.ChannelId)
	}

	return transitionChannel(ctx, msg.PortId, msg.ChannelId, types.OPEN, types.EventTypeChannelOpenConfirm, "success: channel open confirm", extras)
}

// ChanCloseInitValidate checks a MsgChannelCloseInit. Any channel end that is not CLOSED
// may be closed as long as its connection is OPEN.
func ChanCloseInitValidate(ctx types.ValidationContext, module porttypes.IBCModule, msg *types.MsgChannelCloseInit) error {
	if err := ctx.ValidateMessageSigner(msg.Signer); err != nil {
		return err
	}

	if _, _, err := loadOpenableChannel(ctx, msg.PortId, msg.ChannelId); err != nil {
		return err
	}

	return module.OnChanCloseInitValidate(ctx.GoContext(), msg.PortId, msg.ChannelId)
}

// ChanCloseInitExecute moves the channel end to CLOSED.
func ChanCloseInitExecute(ctx types.ExecutionContext, module porttypes.IBCModule, msg *types.MsgChannelCloseInit) error {
	extras, err := module.OnChanCloseInitExecute(ctx.GoContext(), msg.PortId, msg.ChannelId)
	if err != nil {
		return sdkerrors.Wrapf(err, "channel close init callback failed for port ID: %s, channel ID: %s", msg.PortId, msg.ChannelId)
	}

	path := host.NewChannelEndPath(msg.PortId, msg.ChannelId)
	channel, err := ctx.ChannelEnd(path)
	if err != nil {
		return err
	}

	connectionID, err := firstHop(channel)
	if err != nil {
		return err
	}

	channel.State = types.CLOSED
	if err := ctx.StoreChannel(path, channel); err != nil {
		return err
	}

	ctx.LogMessage("success: channel close init")
	emitEvents(ctx, types.NewChannelEvent(
		types.EventTypeChannelCloseInit,
		msg.PortId, msg.ChannelId,
		channel.Counterparty.PortId, channel.Counterparty.ChannelId,
		connectionID, "",
	), extras)

	return nil
}

// ChanCloseConfirmValidate checks a MsgChannelCloseConfirm. The counterparty must have
// stored a CLOSED channel end pointing back at the local end.
func ChanCloseConfirmValidate(ctx types.ValidationContext, module porttypes.IBCModule, msg *types.MsgChannelCloseConfirm) error {
	if err := ctx.ValidateMessageSigner(msg.Signer); err != nil {
		return err
	}

	channel, connection, err := loadOpenableChannel(ctx, msg.PortId, msg.ChannelId)
	if err != nil {
		return err
	}

	if channel.Counterparty.ChannelId == "" {
		return sdkerrors.Wrapf(types.ErrMissingCounterparty, "port ID: %s, channel ID: %s", msg.PortId, msg.ChannelId)
	}

	expected, err := expectedCounterpartyChannel(
		types.CLOSED, channel.Ordering, msg.PortId, msg.ChannelId, connection, channel.Version,
	)
	if err != nil {
		return err
	}

	if err := verifyChannelState(
		ctx, connection, msg.ProofHeight, msg.ProofInit,
		channel.Counterparty.PortId, channel.Counterparty.ChannelId, expected,
	); err != nil {
		return err
	}

	return module.OnChanCloseConfirmValidate(ctx.GoContext(), msg.PortId, msg.ChannelId)
}

// ChanCloseConfirmExecute moves the channel end to CLOSED.
func ChanCloseConfirmExecute(ctx types.ExecutionContext, module porttypes.IBCModule, msg *types.MsgChannelCloseConfirm) error {
	extras, err := module.OnChanCloseConfirmExecute(ctx.GoContext(), msg.PortId, msg.ChannelId)
	if err != nil {
		return sdkerrors.Wrapf(err, "channel close confirm callback failed for port ID: %s, channel ID: %s", msg.PortId, msg.ChannelId)
	}

	return transitionChannel(ctx, msg.PortId, msg.ChannelId, types.CLOSED, types.EventTypeChannelCloseConfirm, "success: channel close confirm", extras)
}

// nextChannelID returns the identifier the next created channel end is stored under.
func nextChannelID(ctx types.ValidationContext) (string, error) {
	counter, err := ctx.ChannelCounter()
	if err != nil {
		return "", err
	}
	return types.FormatChannelIdentifier(counter), nil
}

// verifyChannelAbsent returns ErrChannelExists if a channel end is stored at the given
// identifiers.
func verifyChannelAbsent(ctx types.ValidationContext, portID, channelID string) error {
	_, err := ctx.ChannelEnd(host.NewChannelEndPath(portID, channelID))
	switch {
	case err == nil:
		return sdkerrors.Wrapf(types.ErrChannelExists, "port ID: %s, channel ID: %s", portID, channelID)
	case errors.Is(err, types.ErrChannelNotFound):
		return nil
	default:
		return err
	}
}

// verifyChannelConnection checks that a channel end about to be created runs over a
// single OPEN connection whose version supports the channel ordering, and that the light
// client of that connection is active.
func verifyChannelConnection(ctx types.ValidationContext, channel types.Channel) error {
	if err := channel.VerifyConnectionHopsLength(); err != nil {
		return err
	}

	connection, err := ctx.ConnectionEnd(channel.ConnectionHops[0])
	if err != nil {
		return err
	}

	if err := connection.VerifyStateMatches(connectiontypes.OPEN); err != nil {
		return err
	}

	versions := connection.GetVersions()
	if len(versions) != 1 {
		return sdkerrors.Wrapf(
			connectiontypes.ErrInvalidVersion,
			"single version must be negotiated on connection before opening channel, got: %v",
			versions,
		)
	}

	if !connectiontypes.VerifySupportedFeature(versions[0], channel.Ordering.String()) {
		return sdkerrors.Wrapf(
			connectiontypes.ErrInvalidVersion,
			"connection version %s does not support channel ordering: %s",
			versions[0].GetIdentifier(), channel.Ordering.String(),
		)
	}

	return checkClientActive(ctx, connection)
}

// loadChannelAndConnection loads the channel end, checks it is in the expected state, runs
// over a single connection and that the connection is OPEN.
func loadChannelAndConnection(ctx types.ValidationContext, portID, channelID string, expected types.State) (types.Channel, connectiontypes.ConnectionEnd, error) {
	channel, err := ctx.ChannelEnd(host.NewChannelEndPath(portID, channelID))
	if err != nil {
		return types.Channel{}, connectiontypes.ConnectionEnd{}, err
	}

	if err := channel.VerifyStateMatches(expected); err != nil {
		return types.Channel{}, connectiontypes.ConnectionEnd{}, err
	}

	connection, err := openConnection(ctx, channel)
	if err != nil {
		return types.Channel{}, connectiontypes.ConnectionEnd{}, err
	}
	return channel, connection, nil
}

// loadOpenableChannel loads a channel end that may still be closed and its OPEN connection.
func loadOpenableChannel(ctx types.ValidationContext, portID, channelID string) (types.Channel, connectiontypes.ConnectionEnd, error) {
	channel, err := ctx.ChannelEnd(host.NewChannelEndPath(portID, channelID))
	if err != nil {
		return types.Channel{}, connectiontypes.ConnectionEnd{}, err
	}

	if channel.State == types.CLOSED {
		return types.Channel{}, connectiontypes.ConnectionEnd{}, sdkerrors.Wrap(types.ErrInvalidChannelState, "channel is already CLOSED")
	}

	connection, err := openConnection(ctx, channel)
	if err != nil {
		return types.Channel{}, connectiontypes.ConnectionEnd{}, err
	}

	if err := checkClientActive(ctx, connection); err != nil {
		return types.Channel{}, connectiontypes.ConnectionEnd{}, err
	}
	return channel, connection, nil
}

func openConnection(ctx types.ValidationContext, channel types.Channel) (connectiontypes.ConnectionEnd, error) {
	if err := channel.VerifyConnectionHopsLength(); err != nil {
		return connectiontypes.ConnectionEnd{}, err
	}

	connection, err := ctx.ConnectionEnd(channel.ConnectionHops[0])
	if err != nil {
		return connectiontypes.ConnectionEnd{}, err
	}

	if err := connection.VerifyStateMatches(connectiontypes.OPEN); err != nil {
		return connectiontypes.ConnectionEnd{}, err
	}
	return connection, nil
}

// createChannel stores a new channel end, records the allocation of its identifier and
// initialises its packet sequences.
func createChannel(ctx types.ExecutionContext, portID, channelID string, channel types.Channel) error {
	if err := ctx.StoreChannel(host.NewChannelEndPath(portID, channelID), channel); err != nil {
		return err
	}
	if err := ctx.IncreaseChannelCounter(); err != nil {
		return err
	}
	if err := ctx.StoreNextSequenceSend(portID, channelID, 1); err != nil {
		return err
	}
	if err := ctx.StoreNextSequenceRecv(portID, channelID, 1); err != nil {
		return err
	}
	return ctx.StoreNextSequenceAck(portID, channelID, 1)
}

// transitionChannel sets the state of a stored channel end whose counterparty is fully
// known and emits the step events.
func transitionChannel(
	ctx types.ExecutionContext, portID, channelID string, state types.State,
	eventType, logMsg string, extras porttypes.ModuleExtras,
) error {
	path := host.NewChannelEndPath(portID, channelID)
	channel, err := ctx.ChannelEnd(path)
	if err != nil {
		return err
	}

	connectionID, err := firstHop(channel)
	if err != nil {
		return err
	}

	// validation required the counterparty channel identifier
	if channel.Counterparty.ChannelId == "" {
		return sdkerrors.Wrapf(ibcerrors.ErrInvariantViolation,
			"channel end (%s, %s) has no counterparty channel identifier in %s",
			portID, channelID, eventType,
		)
	}

	channel.State = state
	if err := ctx.StoreChannel(path, channel); err != nil {
		return err
	}

	ctx.LogMessage(logMsg)
	emitEvents(ctx, types.NewChannelEvent(
		eventType,
		portID, channelID,
		channel.Counterparty.PortId, channel.Counterparty.ChannelId,
		connectionID, "",
	), extras)

	return nil
}

func firstHop(channel types.Channel) (string, error) {
	if len(channel.ConnectionHops) == 0 {
		return "", sdkerrors.Wrap(ibcerrors.ErrInvariantViolation, "stored channel end has no connection hops")
	}
	return channel.ConnectionHops[0], nil
}

// emitEvents emits the routing event, the step event and the application extras, in that
// order.
func emitEvents(ctx types.ExecutionContext, stepEvent sdk.Event, extras porttypes.ModuleExtras) {
	ctx.EmitIBCEvent(types.NewMessageEvent())
	ctx.EmitIBCEvent(stepEvent)

	for _, event := range extras.Events {
		ctx.EmitIBCEvent(event)
	}
	for _, msg := range extras.Log {
		ctx.LogMessage(msg)
	}
}
