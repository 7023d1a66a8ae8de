package host

import (
	"github.com/cosmos/ibc-handshake/modules/core/exported"
)

var (
	_ exported.Path = ChannelEndPath{}
	_ exported.Path = ConnectionEndPath{}
	_ exported.Path = ClientStatePath{}
	_ exported.Path = ClientConsensusStatePath{}
)

// ChannelEndPath addresses the channel end bound to a port.
type ChannelEndPath struct {
	PortID    string
	ChannelID string
}

// NewChannelEndPath returns the path of the channel end identified by portID and channelID.
func NewChannelEndPath(portID, channelID string) ChannelEndPath {
	return ChannelEndPath{PortID: portID, ChannelID: channelID}
}

func (p ChannelEndPath) String() string { return ChannelPath(p.PortID, p.ChannelID) }
func (p ChannelEndPath) Bytes() []byte  { return []byte(p.String()) }

// Empty returns true if either identifier is unset.
func (p ChannelEndPath) Empty() bool { return p.PortID == "" || p.ChannelID == "" }

// ConnectionEndPath addresses a connection end.
type ConnectionEndPath struct {
	ConnectionID string
}

// NewConnectionEndPath returns the path of the connection end identified by connectionID.
func NewConnectionEndPath(connectionID string) ConnectionEndPath {
	return ConnectionEndPath{ConnectionID: connectionID}
}

func (p ConnectionEndPath) String() string { return ConnectionPath(p.ConnectionID) }
func (p ConnectionEndPath) Bytes() []byte  { return []byte(p.String()) }
func (p ConnectionEndPath) Empty() bool    { return p.ConnectionID == "" }

// ClientStatePath addresses the client state of a client.
type ClientStatePath struct {
	ClientID string
}

// NewClientStatePath returns the path of the client state of clientID.
func NewClientStatePath(clientID string) ClientStatePath {
	return ClientStatePath{ClientID: clientID}
}

func (p ClientStatePath) String() string { return FullClientStatePath(p.ClientID) }
func (p ClientStatePath) Bytes() []byte  { return []byte(p.String()) }
func (p ClientStatePath) Empty() bool    { return p.ClientID == "" }

// ClientConsensusStatePath addresses the consensus state a client stored at a height.
type ClientConsensusStatePath struct {
	ClientID string
	Height   exported.Height
}

// NewClientConsensusStatePath returns the path of the consensus state of clientID at height.
func NewClientConsensusStatePath(clientID string, height exported.Height) ClientConsensusStatePath {
	return ClientConsensusStatePath{ClientID: clientID, Height: height}
}

func (p ClientConsensusStatePath) String() string {
	return FullConsensusStatePath(p.ClientID, p.Height)
}
func (p ClientConsensusStatePath) Bytes() []byte { return []byte(p.String()) }

// Empty returns true if the client identifier or the height is unset.
func (p ClientConsensusStatePath) Empty() bool {
	return p.ClientID == "" || p.Height == nil || p.Height.IsZero()
}
