package types

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	yaml "gopkg.in/yaml.v2"

	commitmenttypes "github.com/cosmos/ibc-handshake/modules/core/23-commitment/types"
	host "github.com/cosmos/ibc-handshake/modules/core/24-host"
	"github.com/cosmos/ibc-handshake/modules/core/exported"
)

// State defines if a connection is in one of the following states:
// INIT, TRYOPEN, OPEN or UNINITIALIZED.
type State int32

const (
	// Default State
	UNINITIALIZED State = 0
	// A connection end has just started the opening handshake.
	INIT State = 1
	// A connection end has acknowledged the handshake step on the counterparty
	// chain.
	TRYOPEN State = 2
	// A connection end has completed the handshake.
	OPEN State = 3
)

var stateNames = map[State]string{
	UNINITIALIZED: "STATE_UNINITIALIZED_UNSPECIFIED",
	INIT:          "STATE_INIT",
	TRYOPEN:       "STATE_TRYOPEN",
	OPEN:          "STATE_OPEN",
}

// String returns the proto enum name of the state.
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "STATE_UNKNOWN"
}

var (
	_ exported.ConnectionI             = (*ConnectionEnd)(nil)
	_ exported.CounterpartyConnectionI = (*Counterparty)(nil)
)

// ConnectionEnd defines a stateful object on a chain connected to another
// separate one.
type ConnectionEnd struct {
	// client associated with this connection.
	ClientId string `protobuf:"bytes,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty" yaml:"client_id"`
	// IBC version which can be utilised to determine encodings or protocols for
	// channels or packets utilising this connection.
	Versions []*Version `protobuf:"bytes,2,rep,name=versions,proto3" json:"versions,omitempty" yaml:"versions"`
	// current state of the connection end.
	State State `protobuf:"varint,3,opt,name=state,proto3,enum=ibc.core.connection.v1.State" json:"state,omitempty" yaml:"state"`
	// counterparty chain associated with this connection.
	Counterparty Counterparty `protobuf:"bytes,4,opt,name=counterparty,proto3" json:"counterparty" yaml:"counterparty"`
	// delay period that must pass before a consensus state can be used for
	// packet-verification NOTE: delay period logic is only implemented by some
	// clients.
	DelayPeriod uint64 `protobuf:"varint,5,opt,name=delay_period,json=delayPeriod,proto3" json:"delay_period,omitempty" yaml:"delay_period"`
}

// NewConnectionEnd creates a new ConnectionEnd instance.
func NewConnectionEnd(state State, clientID string, counterparty Counterparty, versions []*Version, delayPeriod uint64) ConnectionEnd {
	return ConnectionEnd{
		ClientId:     clientID,
		Versions:     versions,
		State:        state,
		Counterparty: counterparty,
		DelayPeriod:  delayPeriod,
	}
}

// GetState implements the Connection interface
func (c ConnectionEnd) GetState() int32 {
	return int32(c.State)
}

// GetClientID implements the Connection interface
func (c ConnectionEnd) GetClientID() string {
	return c.ClientId
}

// GetCounterparty implements the Connection interface
func (c ConnectionEnd) GetCounterparty() exported.CounterpartyConnectionI {
	return c.Counterparty
}

// GetVersions returns the versions negotiated on the connection.
func (c ConnectionEnd) GetVersions() []*Version {
	return c.Versions
}

// GetDelayPeriod implements the Connection interface
func (c ConnectionEnd) GetDelayPeriod() uint64 {
	return c.DelayPeriod
}

// VerifyStateMatches returns an error carrying the observed state if the connection is
// not in the expected state.
func (c ConnectionEnd) VerifyStateMatches(expected State) error {
	if c.State != expected {
		return sdkerrors.Wrapf(ErrInvalidConnectionState, "connection state is not %s (got %s)", expected, c.State)
	}
	return nil
}

// ValidateBasic implements the Connection interface.
// NOTE: the protocol supports that the connection and client IDs match the
// counterparty's.
func (c ConnectionEnd) ValidateBasic() error {
	if err := host.ClientIdentifierValidator(c.ClientId); err != nil {
		return sdkerrors.Wrap(err, "invalid client ID")
	}
	if len(c.Versions) == 0 {
		return sdkerrors.Wrap(ErrInvalidVersion, "empty connection versions")
	}
	for _, version := range c.Versions {
		if err := ValidateVersion(version); err != nil {
			return err
		}
	}
	return c.Counterparty.ValidateBasic()
}

// Reset implements proto.Message.
func (c *ConnectionEnd) Reset() { *c = ConnectionEnd{} }

// String implements proto.Message.
func (c *ConnectionEnd) String() string {
	out, _ := yaml.Marshal(c)
	return string(out)
}

// ProtoMessage implements proto.Message.
func (*ConnectionEnd) ProtoMessage() {}

// Counterparty defines the counterparty chain associated with a connection end.
type Counterparty struct {
	// identifies the client on the counterparty chain associated with a given
	// connection.
	ClientId string `protobuf:"bytes,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty" yaml:"client_id"`
	// identifies the connection end on the counterparty chain associated with a
	// given connection.
	ConnectionId string `protobuf:"bytes,2,opt,name=connection_id,json=connectionId,proto3" json:"connection_id,omitempty" yaml:"connection_id"`
	// commitment merkle prefix of the counterparty chain.
	Prefix commitmenttypes.MerklePrefix `protobuf:"bytes,3,opt,name=prefix,proto3" json:"prefix" yaml:"prefix"`
}

// NewCounterparty creates a new Counterparty instance.
func NewCounterparty(clientID, connectionID string, prefix commitmenttypes.MerklePrefix) Counterparty {
	return Counterparty{
		ClientId:     clientID,
		ConnectionId: connectionID,
		Prefix:       prefix,
	}
}

// GetClientID implements the CounterpartyConnectionI interface
func (c Counterparty) GetClientID() string {
	return c.ClientId
}

// GetConnectionID implements the CounterpartyConnectionI interface
func (c Counterparty) GetConnectionID() string {
	return c.ConnectionId
}

// GetPrefix implements the CounterpartyConnectionI interface
func (c Counterparty) GetPrefix() exported.Prefix {
	return &c.Prefix
}

// ValidateBasic performs a basic validation check of the identifiers and prefix
func (c Counterparty) ValidateBasic() error {
	if c.ConnectionId != "" {
		if err := host.ConnectionIdentifierValidator(c.ConnectionId); err != nil {
			return sdkerrors.Wrap(err, "invalid counterparty connection ID")
		}
	}
	if err := host.ClientIdentifierValidator(c.ClientId); err != nil {
		return sdkerrors.Wrap(err, "invalid counterparty client ID")
	}
	if c.Prefix.Empty() {
		return sdkerrors.Wrap(ErrInvalidCounterparty, "counterparty prefix cannot be empty")
	}
	return nil
}

// IdentifiedConnection defines a connection with additional connection
// identifier field.
type IdentifiedConnection struct {
	// connection identifier.
	Id string `json:"id,omitempty" yaml:"id"`
	ConnectionEnd
}

// NewIdentifiedConnection creates a new IdentifiedConnection instance
func NewIdentifiedConnection(connectionID string, conn ConnectionEnd) IdentifiedConnection {
	return IdentifiedConnection{
		Id:            connectionID,
		ConnectionEnd: conn,
	}
}
