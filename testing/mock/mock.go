package mock

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	ModuleName = "mock"

	PortID = ModuleName

	Version = "mock-version"
)

var (
	// MockApplicationCallbackError should be returned when an application callback should fail. It is possible to
	// test that this error was returned using ErrorIs.
	MockApplicationCallbackError error = &applicationCallbackError{}

	UpgradeVersion = fmt.Sprintf("%s-v2", Version)
)

const (
	EventTypeMockChannel = "mock-channel"

	AttributeKeyStep      = "step"
	AttributeKeyPortID    = "port_id"
	AttributeKeyChannelID = "channel_id"
)

// NewMockChannelEvent returns the event emitted by the mock application on every execute
// callback.
func NewMockChannelEvent(step, portID, channelID string) sdk.Event {
	return sdk.NewEvent(
		EventTypeMockChannel,
		sdk.NewAttribute(AttributeKeyStep, step),
		sdk.NewAttribute(AttributeKeyPortID, portID),
		sdk.NewAttribute(AttributeKeyChannelID, channelID),
	)
}

// LogMessage returns the log line recorded by the mock application on every execute
// callback.
func LogMessage(step, portID, channelID string) string {
	return fmt.Sprintf("mock: %s on port %s channel %s", step, portID, channelID)
}

// applicationCallbackError is a custom error type that will be unique for testing purposes.
type applicationCallbackError struct{}

func (applicationCallbackError) Error() string {
	return "mock application callback failed"
}
