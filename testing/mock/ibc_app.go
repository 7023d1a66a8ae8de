package mock

import (
	"context"

	channeltypes "github.com/cosmos/ibc-handshake/modules/core/04-channel/types"
	porttypes "github.com/cosmos/ibc-handshake/modules/core/05-port/types"
)

// IBCApp contains IBC application module callbacks as defined in 05-port. A nil callback
// falls back to the default behaviour of IBCModule.
type IBCApp struct {
	PortID string

	OnChanOpenInitValidate func(
		ctx context.Context,
		order channeltypes.Order,
		connectionHops []string,
		portID string,
		channelID string,
		counterparty channeltypes.Counterparty,
		version string,
	) error

	OnChanOpenInitExecute func(
		ctx context.Context,
		order channeltypes.Order,
		connectionHops []string,
		portID string,
		channelID string,
		counterparty channeltypes.Counterparty,
		version string,
	) (porttypes.ModuleExtras, string, error)

	OnChanOpenTryValidate func(
		ctx context.Context,
		order channeltypes.Order,
		connectionHops []string,
		portID,
		channelID string,
		counterparty channeltypes.Counterparty,
		counterpartyVersion string,
	) error

	OnChanOpenTryExecute func(
		ctx context.Context,
		order channeltypes.Order,
		connectionHops []string,
		portID,
		channelID string,
		counterparty channeltypes.Counterparty,
		counterpartyVersion string,
	) (porttypes.ModuleExtras, string, error)

	OnChanOpenAckValidate func(
		ctx context.Context,
		portID,
		channelID string,
		counterpartyChannelID string,
		counterpartyVersion string,
	) error

	OnChanOpenAckExecute func(
		ctx context.Context,
		portID,
		channelID string,
		counterpartyChannelID string,
		counterpartyVersion string,
	) (porttypes.ModuleExtras, error)

	OnChanOpenConfirmValidate func(ctx context.Context, portID, channelID string) error

	OnChanOpenConfirmExecute func(ctx context.Context, portID, channelID string) (porttypes.ModuleExtras, error)

	OnChanCloseInitValidate func(ctx context.Context, portID, channelID string) error

	OnChanCloseInitExecute func(ctx context.Context, portID, channelID string) (porttypes.ModuleExtras, error)

	OnChanCloseConfirmValidate func(ctx context.Context, portID, channelID string) error

	OnChanCloseConfirmExecute func(ctx context.Context, portID, channelID string) (porttypes.ModuleExtras, error)
}

// NewIBCApp returns a IBCApp. An empty PortID indicates the mock app doesn't bind/claim ports.
func NewIBCApp(portID string) *IBCApp {
	return &IBCApp{
		PortID: portID,
	}
}
