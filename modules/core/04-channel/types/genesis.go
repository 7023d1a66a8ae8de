package types

import (
	"errors"
	"fmt"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	host "github.com/cosmos/ibc-handshake/modules/core/24-host"
)

// PacketSequence is a sequence counter of a channel end.
type PacketSequence struct {
	PortId    string `json:"port_id,omitempty" yaml:"port_id"`
	ChannelId string `json:"channel_id,omitempty" yaml:"channel_id"`
	Sequence  uint64 `json:"sequence,omitempty" yaml:"sequence"`
}

// NewPacketSequence creates a new PacketSequence instance.
func NewPacketSequence(portID, channelID string, seq uint64) PacketSequence {
	return PacketSequence{
		PortId:    portID,
		ChannelId: channelID,
		Sequence:  seq,
	}
}

// Validate performs basic validation of fields returning an error upon any
// failure.
func (ps PacketSequence) Validate() error {
	if err := host.PortIdentifierValidator(ps.PortId); err != nil {
		return sdkerrors.Wrap(err, "invalid port ID")
	}
	if err := host.ChannelIdentifierValidator(ps.ChannelId); err != nil {
		return sdkerrors.Wrap(err, "invalid channel ID")
	}
	if ps.Sequence == 0 {
		return errors.New("sequence cannot be 0")
	}
	return nil
}

// GenesisState is the handshake state of the channel submodule: the channel ends, their
// sequence counters and the next channel sequence.
type GenesisState struct {
	Channels            []IdentifiedChannel `json:"channels" yaml:"channels"`
	SendSequences       []PacketSequence    `json:"send_sequences" yaml:"send_sequences"`
	RecvSequences       []PacketSequence    `json:"recv_sequences" yaml:"recv_sequences"`
	AckSequences        []PacketSequence    `json:"ack_sequences" yaml:"ack_sequences"`
	NextChannelSequence uint64              `json:"next_channel_sequence" yaml:"next_channel_sequence"`
}

// NewGenesisState creates a GenesisState instance.
func NewGenesisState(
	channels []IdentifiedChannel, sendSeqs, recvSeqs, ackSeqs []PacketSequence, nextChannelSequence uint64,
) GenesisState {
	return GenesisState{
		Channels:            channels,
		SendSequences:       sendSeqs,
		RecvSequences:       recvSeqs,
		AckSequences:        ackSeqs,
		NextChannelSequence: nextChannelSequence,
	}
}

// DefaultGenesisState returns the ibc channel submodule's default genesis state.
func DefaultGenesisState() GenesisState {
	return GenesisState{
		Channels:            []IdentifiedChannel{},
		SendSequences:       []PacketSequence{},
		RecvSequences:       []PacketSequence{},
		AckSequences:        []PacketSequence{},
		NextChannelSequence: 0,
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	// keep track of the max sequence to ensure it is less than
	// the next sequence used in creating channel identifiers.
	var maxSequence uint64

	seen := make(map[string]bool)
	for i, channel := range gs.Channels {
		sequence, err := ParseChannelSequence(channel.ChannelId)
		if err != nil {
			return err
		}

		if sequence > maxSequence {
			maxSequence = sequence
		}

		if err := channel.ValidateBasic(); err != nil {
			return fmt.Errorf("invalid channel %s/%s channel index %d: %w", channel.PortId, channel.ChannelId, i, err)
		}

		key := channel.PortId + "/" + channel.ChannelId
		if seen[key] {
			return fmt.Errorf("duplicate channel %s at index %d", key, i)
		}
		seen[key] = true
	}

	for _, seqs := range []struct {
		name string
		seqs []PacketSequence
	}{
		{"send", gs.SendSequences},
		{"recv", gs.RecvSequences},
		{"ack", gs.AckSequences},
	} {
		for i, ps := range seqs.seqs {
			if err := ps.Validate(); err != nil {
				return fmt.Errorf("invalid %s sequence %d: %w", seqs.name, i, err)
			}
		}
	}

	if len(gs.Channels) != 0 && maxSequence >= gs.NextChannelSequence {
		return fmt.Errorf("next channel sequence %d must be greater than maximum sequence used in channel identifier %d", gs.NextChannelSequence, maxSequence)
	}

	return nil
}
