package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	connectiontypes "github.com/cosmos/ibc-handshake/modules/core/03-connection/types"
	host "github.com/cosmos/ibc-handshake/modules/core/24-host"
	"github.com/cosmos/ibc-handshake/modules/core/exported"
)

// ValidationContext is the read-only view of the host state used by the validate phase of
// a handshake step. Implementations must not mutate state through it.
type ValidationContext interface {
	// ChannelEnd returns the channel end stored at path or an error wrapping
	// ErrChannelNotFound.
	ChannelEnd(path host.ChannelEndPath) (Channel, error)

	// ConnectionEnd returns the connection end with the given identifier or an error
	// wrapping connectiontypes.ErrConnectionNotFound.
	ConnectionEnd(connectionID string) (connectiontypes.ConnectionEnd, error)

	// LightClient returns the light client capability bound to clientID.
	LightClient(clientID string) (exported.LightClient, error)

	// ConsensusState returns the consensus state of the counterparty recorded by a light
	// client at the height of path.
	ConsensusState(path host.ClientConsensusStatePath) (exported.ConsensusState, error)

	// ChannelCounter returns the number of channel identifiers allocated so far.
	ChannelCounter() (uint64, error)

	// ValidateMessageSigner returns an error if the host does not accept messages signed
	// by signer.
	ValidateMessageSigner(signer string) error

	// GoContext returns the context passed to application hooks.
	GoContext() context.Context
}

// ExecutionContext extends ValidationContext with the writes performed by the execute phase.
// All writes become durable only when the caller commits the surrounding transaction.
type ExecutionContext interface {
	ValidationContext

	// StoreChannel writes channel at path.
	StoreChannel(path host.ChannelEndPath, channel Channel) error

	// IncreaseChannelCounter records the allocation of a channel identifier.
	IncreaseChannelCounter() error

	// StoreNextSequenceSend sets the next send sequence of a channel.
	StoreNextSequenceSend(portID, channelID string, sequence uint64) error

	// StoreNextSequenceRecv sets the next receive sequence of a channel.
	StoreNextSequenceRecv(portID, channelID string, sequence uint64) error

	// StoreNextSequenceAck sets the next acknowledgement sequence of a channel.
	StoreNextSequenceAck(portID, channelID string, sequence uint64) error

	// EmitIBCEvent appends event to the events of the current invocation.
	EmitIBCEvent(event sdk.Event)

	// LogMessage appends msg to the log lines of the current invocation.
	LogMessage(msg string)
}
