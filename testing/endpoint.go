package ibctesting

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/gogo/protobuf/proto"
	"github.com/stretchr/testify/require"

	clienttypes "github.com/cosmos/ibc-handshake/modules/core/02-client/types"
	connectiontypes "github.com/cosmos/ibc-handshake/modules/core/03-connection/types"
	channeltypes "github.com/cosmos/ibc-handshake/modules/core/04-channel/types"
	commitmenttypes "github.com/cosmos/ibc-handshake/modules/core/23-commitment/types"
	host "github.com/cosmos/ibc-handshake/modules/core/24-host"
	"github.com/cosmos/ibc-handshake/modules/core/exported"
	localhost "github.com/cosmos/ibc-handshake/modules/light-clients/09-localhost"
	trusted "github.com/cosmos/ibc-handshake/modules/light-clients/10-trusted"
)

// Endpoint is a which represents a channel endpoint and its associated
// client and connections. It contains client, connection, and channel
// configuration parameters. Endpoint functions will utilize the parameters
// set in the configuration structs when executing IBC messages.
type Endpoint struct {
	Chain        *TestChain
	Counterparty *Endpoint
	ClientID     string
	ConnectionID string
	ChannelID    string

	ClientConfig     ClientConfig
	ConnectionConfig *ConnectionConfig
	ChannelConfig    *ChannelConfig
}

// NewEndpoint constructs a new endpoint without the counterparty.
// CONTRACT: the counterparty endpoint must be set by the caller.
func NewEndpoint(
	chain *TestChain, clientConfig ClientConfig,
	connectionConfig *ConnectionConfig, channelConfig *ChannelConfig,
) *Endpoint {
	return &Endpoint{
		Chain:            chain,
		ClientConfig:     clientConfig,
		ConnectionConfig: connectionConfig,
		ChannelConfig:    channelConfig,
	}
}

// NewDefaultEndpoint constructs a new endpoint using default values.
// CONTRACT: the counterparty endpoint must be set by the caller.
func NewDefaultEndpoint(chain *TestChain) *Endpoint {
	return &Endpoint{
		Chain:            chain,
		ClientConfig:     NewTrustedConfig(),
		ConnectionConfig: NewConnectionConfig(),
		ChannelConfig:    NewChannelConfig(),
	}
}

// QueryProof queries proof associated with this endpoint using the latest client state
// height on the counterparty chain.
func (endpoint *Endpoint) QueryProof(key []byte) ([]byte, clienttypes.Height) {
	if endpoint.ClientConfig.GetClientType() == exported.Localhost {
		return localhost.SentinelProof, clienttypes.GetSelfHeight(endpoint.Chain.GetContext())
	}

	// obtain the counterparty client representing the chain associated with the endpoint
	latestHeight := endpoint.Counterparty.Chain.GetClientLatestHeight(endpoint.Counterparty.ClientID)

	// query proof on the counterparty using the latest height of the IBC client
	return endpoint.QueryProofAtHeight(key, latestHeight.GetRevisionHeight())
}

// QueryProofAtHeight queries proof associated with this endpoint using the proof height
// provided
func (endpoint *Endpoint) QueryProofAtHeight(key []byte, height uint64) ([]byte, clienttypes.Height) {
	return endpoint.Chain.QueryProofAtHeight(key, int64(height))
}

// CreateClient creates an IBC client on the endpoint. It will update the
// clientID for the endpoint if the message is successfully executed.
// The localhost client is never created; its single identifier is used instead.
func (endpoint *Endpoint) CreateClient() error {
	switch endpoint.ClientConfig.GetClientType() {
	case exported.Trusted:
		trustedConfig, ok := endpoint.ClientConfig.(*TrustedConfig)
		require.True(endpoint.Chain.TB, ok)

		// ensure counterparty has committed state
		endpoint.Counterparty.Chain.NextBlock()

		clientState := trusted.NewClientState(
			endpoint.Counterparty.Chain.ChainID, trustedConfig.TrustingPeriod,
			endpoint.Counterparty.Chain.LastHeight(), endpoint.Chain.SenderAccount,
			commitmenttypes.GetSDKSpecs(),
		)
		clientStateBz, err := proto.Marshal(clientState)
		require.NoError(endpoint.Chain.TB, err)

		consensusStateBz, err := proto.Marshal(endpoint.Counterparty.Chain.LastConsensusState())
		require.NoError(endpoint.Chain.TB, err)

		var clientID string
		if err := endpoint.Chain.DeliverMsg(func(goCtx context.Context) (err error) {
			clientID, err = endpoint.Chain.IBCKeeper.ClientKeeper.CreateClient(
				sdk.UnwrapSDKContext(goCtx), exported.Trusted, clientStateBz, consensusStateBz,
			)
			return err
		}); err != nil {
			return err
		}

		endpoint.ClientID = clientID
	case exported.Localhost:
		endpoint.ClientID = exported.LocalhostClientID
	default:
		return fmt.Errorf("client type %s is not supported", endpoint.ClientConfig.GetClientType())
	}

	return nil
}

// UpdateClient updates the IBC client associated with the endpoint with the last block
// committed by the counterparty chain.
func (endpoint *Endpoint) UpdateClient() error {
	switch endpoint.ClientConfig.GetClientType() {
	case exported.Trusted:
		header := endpoint.Counterparty.Chain.LastTrustedHeader(endpoint.Chain.SenderAccount)
		headerBz, err := proto.Marshal(header)
		require.NoError(endpoint.Chain.TB, err)

		return endpoint.Chain.DeliverMsg(func(goCtx context.Context) error {
			return endpoint.Chain.IBCKeeper.ClientKeeper.UpdateClient(sdk.UnwrapSDKContext(goCtx), endpoint.ClientID, headerBz)
		})
	case exported.Localhost:
		return nil
	default:
		return fmt.Errorf("client type %s is not supported", endpoint.ClientConfig.GetClientType())
	}
}

// SetConnectionOpen writes an OPEN connection end between the client of the endpoint and
// the counterparty endpoint. Both connection identifiers must have been allocated.
func (endpoint *Endpoint) SetConnectionOpen() {
	require.NotEmpty(endpoint.Chain.TB, endpoint.ConnectionID)

	prefix := endpoint.Counterparty.Chain.IBCKeeper.ConnectionKeeper.GetCommitmentPrefix()
	counterparty := connectiontypes.NewCounterparty(
		endpoint.Counterparty.ClientID, endpoint.Counterparty.ConnectionID,
		commitmenttypes.NewMerklePrefix(prefix.Bytes()),
	)
	connection := connectiontypes.NewConnectionEnd(
		connectiontypes.OPEN, endpoint.ClientID, counterparty,
		[]*connectiontypes.Version{endpoint.ConnectionConfig.Version}, endpoint.ConnectionConfig.DelayPeriod,
	)

	endpoint.SetConnection(connection)
}

// GenerateConnectionID allocates the connection identifier of the endpoint.
func (endpoint *Endpoint) GenerateConnectionID() {
	endpoint.ConnectionID = endpoint.Chain.IBCKeeper.ConnectionKeeper.GenerateConnectionIdentifier(endpoint.Chain.GetContext())
}

// ChanOpenInit will construct and execute a MsgChannelOpenInit on the associated endpoint.
func (endpoint *Endpoint) ChanOpenInit() error {
	msg := channeltypes.NewMsgChannelOpenInit(
		endpoint.ChannelConfig.PortID,
		endpoint.ChannelConfig.Version, endpoint.ChannelConfig.Order, []string{endpoint.ConnectionID},
		endpoint.Counterparty.ChannelConfig.PortID,
		endpoint.Chain.SenderAccount,
	)

	var res *channeltypes.MsgChannelOpenInitResponse
	if err := endpoint.Chain.DeliverMsg(func(ctx context.Context) (err error) {
		res, err = endpoint.Chain.IBCKeeper.ChannelOpenInit(ctx, msg)
		return err
	}); err != nil {
		return err
	}

	endpoint.ChannelID = res.ChannelId
	// update version to selected app version
	// NOTE: this update must be performed after SendMsgs()
	endpoint.ChannelConfig.Version = res.Version

	return nil
}

// ChanOpenTry will construct and execute a MsgChannelOpenTry on the associated endpoint.
func (endpoint *Endpoint) ChanOpenTry() error {
	if err := endpoint.UpdateClient(); err != nil {
		return err
	}

	channelKey := host.ChannelKey(endpoint.Counterparty.ChannelConfig.PortID, endpoint.Counterparty.ChannelID)
	proof, height := endpoint.Counterparty.QueryProof(channelKey)

	msg := channeltypes.NewMsgChannelOpenTry(
		endpoint.ChannelConfig.PortID,
		endpoint.ChannelConfig.Version, endpoint.ChannelConfig.Order, []string{endpoint.ConnectionID},
		endpoint.Counterparty.ChannelConfig.PortID, endpoint.Counterparty.ChannelID, endpoint.Counterparty.ChannelConfig.Version,
		proof, height,
		endpoint.Chain.SenderAccount,
	)

	var res *channeltypes.MsgChannelOpenTryResponse
	if err := endpoint.Chain.DeliverMsg(func(ctx context.Context) (err error) {
		res, err = endpoint.Chain.IBCKeeper.ChannelOpenTry(ctx, msg)
		return err
	}); err != nil {
		return err
	}

	endpoint.ChannelID = res.ChannelId
	// update version to selected app version
	endpoint.ChannelConfig.Version = res.Version

	return nil
}

// ChanOpenAck will construct and execute a MsgChannelOpenAck on the associated endpoint.
func (endpoint *Endpoint) ChanOpenAck() error {
	if err := endpoint.UpdateClient(); err != nil {
		return err
	}

	channelKey := host.ChannelKey(endpoint.Counterparty.ChannelConfig.PortID, endpoint.Counterparty.ChannelID)
	proof, height := endpoint.Counterparty.QueryProof(channelKey)

	msg := channeltypes.NewMsgChannelOpenAck(
		endpoint.ChannelConfig.PortID, endpoint.ChannelID,
		endpoint.Counterparty.ChannelID, endpoint.Counterparty.ChannelConfig.Version, // testing doesn't use flexible selection
		proof, height,
		endpoint.Chain.SenderAccount,
	)

	if err := endpoint.Chain.DeliverMsg(func(ctx context.Context) error {
		_, err := endpoint.Chain.IBCKeeper.ChannelOpenAck(ctx, msg)
		return err
	}); err != nil {
		return err
	}

	endpoint.ChannelConfig.Version = endpoint.GetChannel().Version
	return nil
}

// ChanOpenConfirm will construct and execute a MsgChannelOpenConfirm on the associated endpoint.
func (endpoint *Endpoint) ChanOpenConfirm() error {
	if err := endpoint.UpdateClient(); err != nil {
		return err
	}

	channelKey := host.ChannelKey(endpoint.Counterparty.ChannelConfig.PortID, endpoint.Counterparty.ChannelID)
	proof, height := endpoint.Counterparty.QueryProof(channelKey)

	msg := channeltypes.NewMsgChannelOpenConfirm(
		endpoint.ChannelConfig.PortID, endpoint.ChannelID,
		proof, height,
		endpoint.Chain.SenderAccount,
	)

	return endpoint.Chain.DeliverMsg(func(ctx context.Context) error {
		_, err := endpoint.Chain.IBCKeeper.ChannelOpenConfirm(ctx, msg)
		return err
	})
}

// ChanCloseInit will construct and execute a MsgChannelCloseInit on the associated endpoint.
func (endpoint *Endpoint) ChanCloseInit() error {
	msg := channeltypes.NewMsgChannelCloseInit(
		endpoint.ChannelConfig.PortID, endpoint.ChannelID,
		endpoint.Chain.SenderAccount,
	)

	return endpoint.Chain.DeliverMsg(func(ctx context.Context) error {
		_, err := endpoint.Chain.IBCKeeper.ChannelCloseInit(ctx, msg)
		return err
	})
}

// ChanCloseConfirm will construct and execute a MsgChannelCloseConfirm on the associated endpoint.
func (endpoint *Endpoint) ChanCloseConfirm() error {
	if err := endpoint.UpdateClient(); err != nil {
		return err
	}

	channelKey := host.ChannelKey(endpoint.Counterparty.ChannelConfig.PortID, endpoint.Counterparty.ChannelID)
	proof, height := endpoint.Counterparty.QueryProof(channelKey)

	msg := channeltypes.NewMsgChannelCloseConfirm(
		endpoint.ChannelConfig.PortID, endpoint.ChannelID,
		proof, height,
		endpoint.Chain.SenderAccount,
	)

	return endpoint.Chain.DeliverMsg(func(ctx context.Context) error {
		_, err := endpoint.Chain.IBCKeeper.ChannelCloseConfirm(ctx, msg)
		return err
	})
}

// GetConnection retrieves an IBC Connection for the endpoint. The
// connection is expected to exist otherwise testing will fail.
func (endpoint *Endpoint) GetConnection() connectiontypes.ConnectionEnd {
	return endpoint.Chain.GetConnection(endpoint.ConnectionID)
}

// SetConnection sets the connection for this endpoint.
func (endpoint *Endpoint) SetConnection(connection connectiontypes.ConnectionEnd) {
	endpoint.Chain.IBCKeeper.ConnectionKeeper.SetConnection(endpoint.Chain.GetContext(), endpoint.ConnectionID, connection)
}

// GetChannel retrieves an IBC Channel for the endpoint. The channel
// is expected to exist otherwise testing will fail.
func (endpoint *Endpoint) GetChannel() channeltypes.Channel {
	return endpoint.Chain.GetChannel(endpoint.ChannelConfig.PortID, endpoint.ChannelID)
}

// SetChannel sets the channel for this endpoint.
func (endpoint *Endpoint) SetChannel(channel channeltypes.Channel) {
	endpoint.Chain.IBCKeeper.ChannelKeeper.SetChannel(endpoint.Chain.GetContext(), endpoint.ChannelConfig.PortID, endpoint.ChannelID, channel)
}

// GetClientLatestHeight returns the latest height of the client of the endpoint.
func (endpoint *Endpoint) GetClientLatestHeight() clienttypes.Height {
	return endpoint.Chain.GetClientLatestHeight(endpoint.ClientID)
}
