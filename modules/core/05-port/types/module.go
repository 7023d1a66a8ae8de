package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	channeltypes "github.com/cosmos/ibc-handshake/modules/core/04-channel/types"
)

// ModuleExtras are the events and log lines an application returns from an execute
// callback. Core IBC emits them, in order, after its own events.
type ModuleExtras struct {
	Events []sdk.Event
	Log    []string
}

// NewModuleExtras returns ModuleExtras carrying the given events and no log lines.
func NewModuleExtras(events ...sdk.Event) ModuleExtras {
	return ModuleExtras{Events: events}
}

// IBCModule defines an interface that implements all the callbacks
// that modules must define as specified in ICS-26.
//
// Every handshake step has a validate callback, which must not write state, and an
// execute callback invoked only after core IBC and the validate callback accepted the
// message. An error returned by an execute callback aborts the step and all of its writes
// are discarded.
type IBCModule interface {
	// OnChanOpenInitValidate will verify that the relayer-chosen parameters
	// are valid. It may return an error if the chosen parameters are invalid
	// in which case the handshake is aborted.
	OnChanOpenInitValidate(
		ctx context.Context,
		order channeltypes.Order,
		connectionHops []string,
		portID string,
		channelID string,
		counterparty channeltypes.Counterparty,
		version string,
	) error

	// OnChanOpenInitExecute performs any custom INIT logic.
	// If the provided version string is non-empty, OnChanOpenInitExecute should return
	// the version string if valid or an error if the provided version is invalid.
	// If the version string is empty, OnChanOpenInitExecute is expected to
	// return a default version string representing the version(s) it supports.
	OnChanOpenInitExecute(
		ctx context.Context,
		order channeltypes.Order,
		connectionHops []string,
		portID string,
		channelID string,
		counterparty channeltypes.Counterparty,
		version string,
	) (ModuleExtras, string, error)

	// OnChanOpenTryValidate will verify the relayer-chosen parameters along with the
	// counterparty-chosen version string. If the counterparty-chosen version is not
	// compatible with this modules supported versions, the callback must return
	// an error to abort the handshake.
	OnChanOpenTryValidate(
		ctx context.Context,
		order channeltypes.Order,
		connectionHops []string,
		portID,
		channelID string,
		counterparty channeltypes.Counterparty,
		counterpartyVersion string,
	) error

	// OnChanOpenTryExecute must select the final version string and return it to core IBC.
	// It may also perform custom initialization logic.
	OnChanOpenTryExecute(
		ctx context.Context,
		order channeltypes.Order,
		connectionHops []string,
		portID,
		channelID string,
		counterparty channeltypes.Counterparty,
		counterpartyVersion string,
	) (ModuleExtras, string, error)

	// OnChanOpenAckValidate will error if the counterparty selected version string
	// is invalid to abort the handshake.
	OnChanOpenAckValidate(
		ctx context.Context,
		portID,
		channelID string,
		counterpartyChannelID string,
		counterpartyVersion string,
	) error

	// OnChanOpenAckExecute performs custom ACK logic.
	OnChanOpenAckExecute(
		ctx context.Context,
		portID,
		channelID string,
		counterpartyChannelID string,
		counterpartyVersion string,
	) (ModuleExtras, error)

	OnChanOpenConfirmValidate(
		ctx context.Context,
		portID,
		channelID string,
	) error

	// OnChanOpenConfirmExecute will perform custom CONFIRM logic.
	OnChanOpenConfirmExecute(
		ctx context.Context,
		portID,
		channelID string,
	) (ModuleExtras, error)

	OnChanCloseInitValidate(
		ctx context.Context,
		portID,
		channelID string,
	) error

	OnChanCloseInitExecute(
		ctx context.Context,
		portID,
		channelID string,
	) (ModuleExtras, error)

	OnChanCloseConfirmValidate(
		ctx context.Context,
		portID,
		channelID string,
	) error

	OnChanCloseConfirmExecute(
		ctx context.Context,
		portID,
		channelID string,
	) (ModuleExtras, error)
}
