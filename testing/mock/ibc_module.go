package mock

import (
	"context"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"

	channeltypes "github.com/cosmos/ibc-handshake/modules/core/04-channel/types"
	porttypes "github.com/cosmos/ibc-handshake/modules/core/05-port/types"
)

var _ porttypes.IBCModule = (*IBCModule)(nil)

// IBCModule implements the ICS26 callbacks for testing/mock.
type IBCModule struct {
	IBCApp *IBCApp
}

// NewIBCModule creates a new IBCModule given the underlying mock IBC application.
func NewIBCModule(app *IBCApp) IBCModule {
	return IBCModule{
		IBCApp: app,
	}
}

func defaultExtras(step, portID, channelID string) porttypes.ModuleExtras {
	return porttypes.ModuleExtras{
		Events: []sdk.Event{NewMockChannelEvent(step, portID, channelID)},
		Log:    []string{LogMessage(step, portID, channelID)},
	}
}

// OnChanOpenInitValidate implements the IBCModule interface.
func (im IBCModule) OnChanOpenInitValidate(
	ctx context.Context, order channeltypes.Order, connectionHops []string, portID string,
	channelID string, counterparty channeltypes.Counterparty, version string,
) error {
	if im.IBCApp.OnChanOpenInitValidate != nil {
		return im.IBCApp.OnChanOpenInitValidate(ctx, order, connectionHops, portID, channelID, counterparty, version)
	}

	return nil
}

// OnChanOpenInitExecute implements the IBCModule interface. An empty version selects the
// default mock version.
func (im IBCModule) OnChanOpenInitExecute(
	ctx context.Context, order channeltypes.Order, connectionHops []string, portID string,
	channelID string, counterparty channeltypes.Counterparty, version string,
) (porttypes.ModuleExtras, string, error) {
	if strings.TrimSpace(version) == "" {
		version = Version
	}

	if im.IBCApp.OnChanOpenInitExecute != nil {
		return im.IBCApp.OnChanOpenInitExecute(ctx, order, connectionHops, portID, channelID, counterparty, version)
	}

	return defaultExtras("open_init", portID, channelID), version, nil
}

// OnChanOpenTryValidate implements the IBCModule interface.
func (im IBCModule) OnChanOpenTryValidate(
	ctx context.Context, order channeltypes.Order, connectionHops []string, portID string,
	channelID string, counterparty channeltypes.Counterparty, counterpartyVersion string,
) error {
	if im.IBCApp.OnChanOpenTryValidate != nil {
		return im.IBCApp.OnChanOpenTryValidate(ctx, order, connectionHops, portID, channelID, counterparty, counterpartyVersion)
	}

	return nil
}

// OnChanOpenTryExecute implements the IBCModule interface. The counterparty version is
// accepted as is.
func (im IBCModule) OnChanOpenTryExecute(
	ctx context.Context, order channeltypes.Order, connectionHops []string, portID string,
	channelID string, counterparty channeltypes.Counterparty, counterpartyVersion string,
) (porttypes.ModuleExtras, string, error) {
	if im.IBCApp.OnChanOpenTryExecute != nil {
		return im.IBCApp.OnChanOpenTryExecute(ctx, order, connectionHops, portID, channelID, counterparty, counterpartyVersion)
	}

	version := counterpartyVersion
	if strings.TrimSpace(version) == "" {
		version = Version
	}
	return defaultExtras("open_try", portID, channelID), version, nil
}

// OnChanOpenAckValidate implements the IBCModule interface.
func (im IBCModule) OnChanOpenAckValidate(ctx context.Context, portID, channelID, counterpartyChannelID, counterpartyVersion string) error {
	if im.IBCApp.OnChanOpenAckValidate != nil {
		return im.IBCApp.OnChanOpenAckValidate(ctx, portID, channelID, counterpartyChannelID, counterpartyVersion)
	}

	return nil
}

// OnChanOpenAckExecute implements the IBCModule interface.
func (im IBCModule) OnChanOpenAckExecute(ctx context.Context, portID, channelID, counterpartyChannelID, counterpartyVersion string) (porttypes.ModuleExtras, error) {
	if im.IBCApp.OnChanOpenAckExecute != nil {
		return im.IBCApp.OnChanOpenAckExecute(ctx, portID, channelID, counterpartyChannelID, counterpartyVersion)
	}

	return defaultExtras("open_ack", portID, channelID), nil
}

// OnChanOpenConfirmValidate implements the IBCModule interface.
func (im IBCModule) OnChanOpenConfirmValidate(ctx context.Context, portID, channelID string) error {
	if im.IBCApp.OnChanOpenConfirmValidate != nil {
		return im.IBCApp.OnChanOpenConfirmValidate(ctx, portID, channelID)
	}

	return nil
}

// OnChanOpenConfirmExecute implements the IBCModule interface.
func (im IBCModule) OnChanOpenConfirmExecute(ctx context.Context, portID, channelID string) (porttypes.ModuleExtras, error) {
	if im.IBCApp.OnChanOpenConfirmExecute != nil {
		return im.IBCApp.OnChanOpenConfirmExecute(ctx, portID, channelID)
	}

	return defaultExtras("open_confirm", portID, channelID), nil
}

// OnChanCloseInitValidate implements the IBCModule interface.
func (im IBCModule) OnChanCloseInitValidate(ctx context.Context, portID, channelID string) error {
	if im.IBCApp.OnChanCloseInitValidate != nil {
		return im.IBCApp.OnChanCloseInitValidate(ctx, portID, channelID)
	}

	return nil
}

// OnChanCloseInitExecute implements the IBCModule interface.
func (im IBCModule) OnChanCloseInitExecute(ctx context.Context, portID, channelID string) (porttypes.ModuleExtras, error) {
	if im.IBCApp.OnChanCloseInitExecute != nil {
		return im.IBCApp.OnChanCloseInitExecute(ctx, portID, channelID)
	}

	return defaultExtras("close_init", portID, channelID), nil
}

// OnChanCloseConfirmValidate implements the IBCModule interface.
func (im IBCModule) OnChanCloseConfirmValidate(ctx context.Context, portID, channelID string) error {
	if im.IBCApp.OnChanCloseConfirmValidate != nil {
		return im.IBCApp.OnChanCloseConfirmValidate(ctx, portID, channelID)
	}

	return nil
}

// OnChanCloseConfirmExecute implements the IBCModule interface.
func (im IBCModule) OnChanCloseConfirmExecute(ctx context.Context, portID, channelID string) (porttypes.ModuleExtras, error) {
	if im.IBCApp.OnChanCloseConfirmExecute != nil {
		return im.IBCApp.OnChanCloseConfirmExecute(ctx, portID, channelID)
	}

	return defaultExtras("close_confirm", portID, channelID), nil
}
