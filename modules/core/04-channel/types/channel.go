package types

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	yaml "gopkg.in/yaml.v2"

	host "github.com/cosmos/ibc-handshake/modules/core/24-host"
	"github.com/cosmos/ibc-handshake/modules/core/exported"
)

// State defines if a channel is in one of the following states:
// CLOSED, INIT, TRYOPEN, OPEN or UNINITIALIZED.
type State int32

const (
	// Default State
	UNINITIALIZED State = 0
	// A channel has just started the opening handshake.
	INIT State = 1
	// A channel has acknowledged the handshake step on the counterparty chain.
	TRYOPEN State = 2
	// A channel has completed the handshake. Open channels are
	// ready to send and receive packets.
	OPEN State = 3
	// A channel has been closed and can no longer be used to send or receive
	// packets.
	CLOSED State = 4
)

var stateNames = map[State]string{
	UNINITIALIZED: "STATE_UNINITIALIZED_UNSPECIFIED",
	INIT:          "STATE_INIT",
	TRYOPEN:       "STATE_TRYOPEN",
	OPEN:          "STATE_OPEN",
	CLOSED:        "STATE_CLOSED",
}

// String returns the proto enum name of the state.
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "STATE_UNKNOWN"
}

// Order defines if a channel is ORDERED or UNORDERED
type Order int32

const (
	// zero-value for channel ordering
	NONE Order = 0
	// packets can be delivered in any order, which may differ from the order in
	// which they were sent.
	UNORDERED Order = 1
	// packets are delivered exactly in the order which they were sent
	ORDERED Order = 2
)

var orderNames = map[Order]string{
	NONE:      "ORDER_NONE_UNSPECIFIED",
	UNORDERED: "ORDER_UNORDERED",
	ORDERED:   "ORDER_ORDERED",
}

// String returns the proto enum name of the ordering. The name doubles as the connection
// version feature advertising support for the ordering.
func (o Order) String() string {
	if name, ok := orderNames[o]; ok {
		return name
	}
	return "ORDER_UNKNOWN"
}

var (
	_ exported.ChannelI             = (*Channel)(nil)
	_ exported.CounterpartyChannelI = (*Counterparty)(nil)
)

// Channel defines pipeline for exactly-once packet delivery between specific
// modules on separate blockchains, which has at least one end capable of
// sending packets and one end capable of receiving packets.
type Channel struct {
	// current state of the channel end
	State State `protobuf:"varint,1,opt,name=state,proto3,enum=ibc.core.channel.v1.State" json:"state,omitempty" yaml:"state"`
	// whether the channel is ordered or unordered
	Ordering Order `protobuf:"varint,2,opt,name=ordering,proto3,enum=ibc.core.channel.v1.Order" json:"ordering,omitempty" yaml:"ordering"`
	// counterparty channel end
	Counterparty Counterparty `protobuf:"bytes,3,opt,name=counterparty,proto3" json:"counterparty" yaml:"counterparty"`
	// list of connection identifiers, in order, along which packets sent on
	// this channel will travel
	ConnectionHops []string `protobuf:"bytes,4,rep,name=connection_hops,json=connectionHops,proto3" json:"connection_hops,omitempty" yaml:"connection_hops"`
	// opaque channel version, which is agreed upon during the handshake
	Version string `protobuf:"bytes,5,opt,name=version,proto3" json:"version,omitempty" yaml:"version"`
}

// NewChannel creates a new Channel instance
func NewChannel(
	state State, ordering Order, counterparty Counterparty,
	hops []string, version string,
) Channel {
	return Channel{
		State:          state,
		Ordering:       ordering,
		Counterparty:   counterparty,
		ConnectionHops: hops,
		Version:        version,
	}
}

// GetState implements Channel interface.
func (ch Channel) GetState() int32 {
	return int32(ch.State)
}

// GetOrdering implements Channel interface.
func (ch Channel) GetOrdering() int32 {
	return int32(ch.Ordering)
}

// GetCounterparty implements Channel interface.
func (ch Channel) GetCounterparty() exported.CounterpartyChannelI {
	return ch.Counterparty
}

// GetConnectionHops implements Channel interface.
func (ch Channel) GetConnectionHops() []string {
	return ch.ConnectionHops
}

// GetVersion implements Channel interface.
func (ch Channel) GetVersion() string {
	return ch.Version
}

// VerifyStateMatches returns an error carrying the observed state if the channel is not in
// the expected state.
func (ch Channel) VerifyStateMatches(expected State) error {
	if ch.State != expected {
		return sdkerrors.Wrapf(ErrInvalidChannelState, "channel state is not %s (got %s)", expected, ch.State)
	}
	return nil
}

// VerifyConnectionHopsLength returns an error if the channel does not run over exactly one
// connection.
func (ch Channel) VerifyConnectionHopsLength() error {
	if len(ch.ConnectionHops) != 1 {
		return sdkerrors.Wrapf(ErrTooManyConnectionHops, "current IBC version only supports one connection hop, got %d", len(ch.ConnectionHops))
	}
	return nil
}

// ValidateBasic performs a basic validation of the channel fields
func (ch Channel) ValidateBasic() error {
	if ch.State == UNINITIALIZED {
		return ErrInvalidChannelState
	}
	if !(ch.Ordering == ORDERED || ch.Ordering == UNORDERED) {
		return sdkerrors.Wrap(ErrInvalidChannelOrdering, ch.Ordering.String())
	}
	if err := ch.VerifyConnectionHopsLength(); err != nil {
		return err
	}
	if err := host.ConnectionIdentifierValidator(ch.ConnectionHops[0]); err != nil {
		return sdkerrors.Wrap(
			ErrInvalidChannel,
			err.Error(),
		)
	}
	return ch.Counterparty.ValidateBasic()
}

// Reset implements proto.Message.
func (ch *Channel) Reset() { *ch = Channel{} }

// String implements proto.Message.
func (ch *Channel) String() string {
	out, _ := yaml.Marshal(ch)
	return string(out)
}

// ProtoMessage implements proto.Message.
func (*Channel) ProtoMessage() {}

// Counterparty defines a channel end counterparty
type Counterparty struct {
	// port on the counterparty chain which owns the other end of the channel.
	PortId string `protobuf:"bytes,1,opt,name=port_id,json=portId,proto3" json:"port_id,omitempty" yaml:"port_id"`
	// channel end on the counterparty chain
	ChannelId string `protobuf:"bytes,2,opt,name=channel_id,json=channelId,proto3" json:"channel_id,omitempty" yaml:"channel_id"`
}

// NewCounterparty returns a new Counterparty instance
func NewCounterparty(portID, channelID string) Counterparty {
	return Counterparty{
		PortId:    portID,
		ChannelId: channelID,
	}
}

// GetPortID implements CounterpartyChannelI interface
func (c Counterparty) GetPortID() string {
	return c.PortId
}

// GetChannelID implements CounterpartyChannelI interface
func (c Counterparty) GetChannelID() string {
	return c.ChannelId
}

// ValidateBasic performs a basic validation check of the identifiers
func (c Counterparty) ValidateBasic() error {
	if err := host.PortIdentifierValidator(c.PortId); err != nil {
		return sdkerrors.Wrap(err, "invalid counterparty port ID")
	}
	if c.ChannelId != "" {
		if err := host.ChannelIdentifierValidator(c.ChannelId); err != nil {
			return sdkerrors.Wrap(err, "invalid counterparty channel ID")
		}
	}
	return nil
}

// IdentifiedChannel defines a channel with additional port and channel
// identifier fields.
type IdentifiedChannel struct {
	Channel `yaml:",inline"`
	// port identifier
	PortId string `json:"port_id,omitempty" yaml:"port_id"`
	// channel identifier
	ChannelId string `json:"channel_id,omitempty" yaml:"channel_id"`
}

// NewIdentifiedChannel creates a new IdentifiedChannel instance
func NewIdentifiedChannel(portID, channelID string, ch Channel) IdentifiedChannel {
	return IdentifiedChannel{
		Channel:   ch,
		PortId:    portID,
		ChannelId: channelID,
	}
}

// ValidateBasic performs a basic validation of the identifiers and the channel.
func (ic IdentifiedChannel) ValidateBasic() error {
	if err := host.PortIdentifierValidator(ic.PortId); err != nil {
		return sdkerrors.Wrap(err, "invalid port ID")
	}
	if err := host.ChannelIdentifierValidator(ic.ChannelId); err != nil {
		return sdkerrors.Wrap(err, "invalid channel ID")
	}
	return ic.Channel.ValidateBasic()
}
