package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/ibc-handshake/modules/core/exported"
)

// IBC channel events
const (
	AttributeKeyConnectionID       = "connection_id"
	AttributeKeyPortID             = "port_id"
	AttributeKeyChannelID          = "channel_id"
	AttributeVersion               = "version"
	AttributeCounterpartyPortID    = "counterparty_port_id"
	AttributeCounterpartyChannelID = "counterparty_channel_id"
)

// IBC channel events vars
var (
	EventTypeChannelOpenInit     = "channel_open_init"
	EventTypeChannelOpenTry      = "channel_open_try"
	EventTypeChannelOpenAck      = "channel_open_ack"
	EventTypeChannelOpenConfirm  = "channel_open_confirm"
	EventTypeChannelCloseInit    = "channel_close_init"
	EventTypeChannelCloseConfirm = "channel_close_confirm"

	AttributeValueCategory = fmt.Sprintf("%s_%s", exported.ModuleName, SubModuleName)
)

// NewMessageEvent returns the routing event emitted first by every channel handshake step.
func NewMessageEvent() sdk.Event {
	return sdk.NewEvent(
		sdk.EventTypeMessage,
		sdk.NewAttribute(sdk.AttributeKeyModule, AttributeValueCategory),
	)
}

// NewChannelEvent returns the step specific event of a channel handshake step. The version
// attribute is only attached when it is not empty.
func NewChannelEvent(eventType, portID, channelID, counterpartyPortID, counterpartyChannelID, connectionID, version string) sdk.Event {
	attributes := []sdk.Attribute{
		sdk.NewAttribute(AttributeKeyPortID, portID),
		sdk.NewAttribute(AttributeKeyChannelID, channelID),
		sdk.NewAttribute(AttributeCounterpartyPortID, counterpartyPortID),
		sdk.NewAttribute(AttributeCounterpartyChannelID, counterpartyChannelID),
		sdk.NewAttribute(AttributeKeyConnectionID, connectionID),
	}
	if version != "" {
		attributes = append(attributes, sdk.NewAttribute(AttributeVersion, version))
	}
	return sdk.NewEvent(eventType, attributes...)
}
