package ibctesting

import (
	"github.com/stretchr/testify/require"

	channeltypes "github.com/cosmos/ibc-handshake/modules/core/04-channel/types"
)

// Path contains two endpoints representing two chains connected over IBC
type Path struct {
	EndpointA *Endpoint
	EndpointB *Endpoint
}

// NewPath constructs an endpoint for each chain using the default values
// for the endpoints. Each endpoint is updated to have a pointer to the
// counterparty endpoint.
func NewPath(chainA, chainB *TestChain) *Path {
	endpointA := NewDefaultEndpoint(chainA)
	endpointB := NewDefaultEndpoint(chainB)

	endpointA.Counterparty = endpointB
	endpointB.Counterparty = endpointA

	return &Path{
		EndpointA: endpointA,
		EndpointB: endpointB,
	}
}

// NewLocalhostPath constructs a path whose two endpoints live on the same chain and use the
// 09-localhost client.
func NewLocalhostPath(chain *TestChain) *Path {
	path := NewPath(chain, chain)
	path.EndpointA.ClientConfig = &LocalhostConfig{}
	path.EndpointB.ClientConfig = &LocalhostConfig{}

	return path
}

// SetChannelOrdered sets the channel order for both endpoints to ORDERED.
func (path *Path) SetChannelOrdered() {
	path.EndpointA.ChannelConfig.Order = channeltypes.ORDERED
	path.EndpointB.ChannelConfig.Order = channeltypes.ORDERED
}

// Setup constructs a client, connection, and channel on both chains provided. It will
// fail if any error occurs.
func (path *Path) Setup() {
	path.SetupConnections()

	// channels can also be referenced through the returned connections
	path.CreateChannels()
}

// SetupClients is a helper function to create clients on both chains. It assumes the
// caller does not anticipate any errors.
func (path *Path) SetupClients() {
	err := path.EndpointA.CreateClient()
	require.NoError(path.EndpointA.Chain.TB, err)

	err = path.EndpointB.CreateClient()
	require.NoError(path.EndpointB.Chain.TB, err)
}

// SetupConnections is a helper function to create clients and the appropriate
// connections on both the source and counterparty chain. It assumes the caller does not
// anticipate any errors.
func (path *Path) SetupConnections() {
	path.SetupClients()

	path.CreateConnections()
}

// CreateConnections writes OPEN connection ends on chainA and chainB, each bound to the
// client of its endpoint and naming the other end as counterparty. Connections are
// committed to state before the function returns.
func (path *Path) CreateConnections() {
	path.EndpointA.GenerateConnectionID()
	path.EndpointB.GenerateConnectionID()

	path.EndpointA.SetConnectionOpen()
	path.EndpointB.SetConnectionOpen()

	path.EndpointA.Chain.NextBlock()
	if path.EndpointB.Chain != path.EndpointA.Chain {
		path.EndpointB.Chain.NextBlock()
	}

	err := path.EndpointA.UpdateClient()
	require.NoError(path.EndpointA.Chain.TB, err)

	err = path.EndpointB.UpdateClient()
	require.NoError(path.EndpointB.Chain.TB, err)
}

// CreateChannels constructs and executes channel handshake messages in order to create
// OPEN channels on chainA and chainB. The function expects the channels to be
// successfully opened otherwise testing will fail.
func (path *Path) CreateChannels() {
	err := path.EndpointA.ChanOpenInit()
	require.NoError(path.EndpointA.Chain.TB, err)

	err = path.EndpointB.ChanOpenTry()
	require.NoError(path.EndpointB.Chain.TB, err)

	err = path.EndpointA.ChanOpenAck()
	require.NoError(path.EndpointA.Chain.TB, err)

	err = path.EndpointB.ChanOpenConfirm()
	require.NoError(path.EndpointB.Chain.TB, err)
}
