package channel_test

import (
	"context"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/gogo/protobuf/proto"
	testifysuite "github.com/stretchr/testify/suite"

	clienttypes "github.com/cosmos/ibc-handshake/modules/core/02-client/types"
	connectiontypes "github.com/cosmos/ibc-handshake/modules/core/03-connection/types"
	channel "github.com/cosmos/ibc-handshake/modules/core/04-channel"
	"github.com/cosmos/ibc-handshake/modules/core/04-channel/types"
	porttypes "github.com/cosmos/ibc-handshake/modules/core/05-port/types"
	commitmenttypes "github.com/cosmos/ibc-handshake/modules/core/23-commitment/types"
	host "github.com/cosmos/ibc-handshake/modules/core/24-host"
	ibcerrors "github.com/cosmos/ibc-handshake/modules/core/errors"
	"github.com/cosmos/ibc-handshake/modules/core/exported"
	ibctesting "github.com/cosmos/ibc-handshake/testing"
	"github.com/cosmos/ibc-handshake/testing/mock"
)

type HandshakeTestSuite struct {
	testifysuite.Suite

	coordinator *ibctesting.Coordinator

	// testing chains used for convenience and readability
	chainA *ibctesting.TestChain
	chainB *ibctesting.TestChain
}

func (s *HandshakeTestSuite) SetupTest() {
	s.coordinator = ibctesting.NewCoordinator(s.T(), 2)
	s.chainA = s.coordinator.GetChain(ibctesting.GetChainID(1))
	s.chainB = s.coordinator.GetChain(ibctesting.GetChainID(2))
}

func TestHandshakeTestSuite(t *testing.T) {
	testifysuite.Run(t, new(HandshakeTestSuite))
}

func module(chain *ibctesting.TestChain) porttypes.IBCModule {
	return mock.NewIBCModule(chain.MockApp)
}

// storeSnapshot returns every key/value pair of the IBC store of chain.
func storeSnapshot(chain *ibctesting.TestChain) map[string]string {
	store := chain.GetContext().KVStore(chain.StoreKey)
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	snapshot := make(map[string]string)
	for ; iterator.Valid(); iterator.Next() {
		snapshot[string(iterator.Key())] = string(iterator.Value())
	}
	return snapshot
}

func openInitMsg(endpoint *ibctesting.Endpoint) *types.MsgChannelOpenInit {
	return types.NewMsgChannelOpenInit(
		endpoint.ChannelConfig.PortID, endpoint.ChannelConfig.Version, endpoint.ChannelConfig.Order,
		[]string{endpoint.ConnectionID}, endpoint.Counterparty.ChannelConfig.PortID, endpoint.Chain.SenderAccount,
	)
}

func (s *HandshakeTestSuite) TestChanOpenInit() {
	var (
		path *ibctesting.Path
		msg  *types.MsgChannelOpenInit
	)

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success", func() {}, nil,
		},
		{
			"success: empty version selects the application default", func() {
				msg.Channel.Version = ""
			}, nil,
		},
		{
			"invalid signer", func() {
				msg.Signer = "cosmos1invalid"
			}, ibcerrors.ErrInvalidAddress,
		},
		{
			"signer with foreign prefix", func() {
				msg.Signer = "osmo1qqqsyqcyq5rqwzqfpg9scrgwpugpzysn6j4npq"
			}, ibcerrors.ErrInvalidAddress,
		},
		{
			"channel already exists", func() {
				path.EndpointA.ChannelID = ibctesting.FirstChannelID
				path.EndpointA.SetChannel(types.NewChannel(types.INIT, types.UNORDERED, types.NewCounterparty(ibctesting.MockPort, ""), []string{path.EndpointA.ConnectionID}, mock.Version))
			}, types.ErrChannelExists,
		},
		{
			"connection does not exist", func() {
				msg.Channel.ConnectionHops = []string{"connection-10"}
			}, connectiontypes.ErrConnectionNotFound,
		},
		{
			"too many connection hops", func() {
				msg.Channel.ConnectionHops = []string{path.EndpointA.ConnectionID, "connection-10"}
			}, types.ErrTooManyConnectionHops,
		},
		{
			"connection is not OPEN", func() {
				connection := path.EndpointA.GetConnection()
				connection.State = connectiontypes.INIT
				path.EndpointA.SetConnection(connection)
			}, connectiontypes.ErrInvalidConnectionState,
		},
		{
			"connection version does not support the ordering", func() {
				connection := path.EndpointA.GetConnection()
				connection.Versions = []*connectiontypes.Version{connectiontypes.NewVersion("1", []string{"ORDER_UNORDERED"})}
				path.EndpointA.SetConnection(connection)

				msg.Channel.Ordering = types.ORDERED
			}, connectiontypes.ErrInvalidVersion,
		},
		{
			"connection has more than one version", func() {
				connection := path.EndpointA.GetConnection()
				connection.Versions = append(connection.Versions, connectiontypes.NewVersion("2", []string{"ORDER_UNORDERED"}))
				path.EndpointA.SetConnection(connection)
			}, connectiontypes.ErrInvalidVersion,
		},
		{
			"client type is not allowed", func() {
				err := s.chainA.IBCKeeper.ClientKeeper.SetParams(s.chainA.GetContext(), clienttypes.NewParams(exported.Localhost))
				s.Require().NoError(err)
			}, clienttypes.ErrClientNotActive,
		},
		{
			"application rejects the channel", func() {
				s.chainA.MockApp.OnChanOpenInitValidate = func(
					context.Context, types.Order, []string, string, string, types.Counterparty, string,
				) error {
					return mock.MockApplicationCallbackError
				}
			}, mock.MockApplicationCallbackError,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest() // reset

			path = ibctesting.NewPath(s.chainA, s.chainB)
			path.SetupConnections()
			msg = openInitMsg(path.EndpointA)

			tc.malleate()

			before := storeSnapshot(s.chainA)
			err := channel.ChanOpenInitValidate(s.chainA.IBCKeeper.NewContext(s.chainA.GetContext()), module(s.chainA), msg)
			s.Require().Equal(before, storeSnapshot(s.chainA), "validation must not write state")

			if tc.expErr != nil {
				s.Require().ErrorIs(err, tc.expErr)
				return
			}
			s.Require().NoError(err)

			ctx := s.chainA.GetContext()
			execCtx := s.chainA.IBCKeeper.NewContext(ctx)
			channelID, version, err := channel.ChanOpenInitExecute(execCtx, module(s.chainA), msg)
			s.Require().NoError(err)
			s.Require().Equal(ibctesting.FirstChannelID, channelID)
			s.Require().Equal(mock.Version, version)

			stored := s.chainA.GetChannel(ibctesting.MockPort, channelID)
			s.Require().Equal(types.INIT, stored.State)
			s.Require().Equal(version, stored.Version)
			s.Require().Equal(types.NewCounterparty(ibctesting.MockPort, ""), stored.Counterparty)
			s.Require().Equal(uint64(1), s.chainA.IBCKeeper.ChannelKeeper.GetNextChannelSequence(ctx))

			for _, getter := range []func(sdk.Context, string, string) (uint64, bool){
				s.chainA.IBCKeeper.ChannelKeeper.GetNextSequenceSend,
				s.chainA.IBCKeeper.ChannelKeeper.GetNextSequenceRecv,
				s.chainA.IBCKeeper.ChannelKeeper.GetNextSequenceAck,
			} {
				seq, found := getter(ctx, ibctesting.MockPort, channelID)
				s.Require().True(found)
				s.Require().Equal(uint64(1), seq)
			}

			expEvents := []sdk.Event{
				types.NewMessageEvent(),
				types.NewChannelEvent(types.EventTypeChannelOpenInit, ibctesting.MockPort, channelID, ibctesting.MockPort, "", path.EndpointA.ConnectionID, version),
				mock.NewMockChannelEvent("open_init", ibctesting.MockPort, channelID),
			}
			s.Require().Equal(expEvents, execCtx.Events())
			s.Require().Equal([]string{
				"success: channel open init",
				mock.LogMessage("open_init", ibctesting.MockPort, channelID),
			}, execCtx.Logs())
		})
	}
}

func (s *HandshakeTestSuite) TestChanOpenInitAllocatesSequentialIdentifiers() {
	path := ibctesting.NewPath(s.chainA, s.chainB)
	path.SetupConnections()

	for i, expChannelID := range []string{"channel-0", "channel-1", "channel-2"} {
		ctx := s.chainA.GetContext()
		channelID, _, err := channel.ChanOpenInitExecute(s.chainA.IBCKeeper.NewContext(ctx), module(s.chainA), openInitMsg(path.EndpointA))
		s.Require().NoError(err)
		s.Require().Equal(expChannelID, channelID)
		s.Require().Equal(uint64(i+1), s.chainA.IBCKeeper.ChannelKeeper.GetNextChannelSequence(ctx))
	}
}

func (s *HandshakeTestSuite) TestChanOpenTry() {
	var (
		path        *ibctesting.Path
		msg         *types.MsgChannelOpenTry
		proof       []byte
		proofHeight clienttypes.Height
	)

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success", func() {}, nil,
		},
		{
			"invalid signer", func() {
				msg.Signer = ""
			}, ibcerrors.ErrInvalidAddress,
		},
		{
			"connection does not exist", func() {
				msg.Channel.ConnectionHops = []string{"connection-10"}
			}, connectiontypes.ErrConnectionNotFound,
		},
		{
			"connection is not OPEN", func() {
				connection := path.EndpointB.GetConnection()
				connection.State = connectiontypes.TRYOPEN
				path.EndpointB.SetConnection(connection)
			}, connectiontypes.ErrInvalidConnectionState,
		},
		{
			"connection has no counterparty connection identifier", func() {
				connection := path.EndpointB.GetConnection()
				connection.Counterparty.ConnectionId = ""
				path.EndpointB.SetConnection(connection)
			}, types.ErrUndefinedConnectionCounterparty,
		},
		{
			"proof height is beyond the latest client height", func() {
				msg.ProofHeight = path.EndpointB.GetClientLatestHeight().Increment().(clienttypes.Height)
			}, ibcerrors.ErrInvalidHeight,
		},
		{
			"counterparty version does not match", func() {
				msg.CounterpartyVersion = "other-version"
			}, types.ErrVerifyChannelFailed,
		},
		{
			"counterparty ordering does not match", func() {
				msg.Channel.Ordering = types.ORDERED
			}, types.ErrVerifyChannelFailed,
		},
		{
			"invalid proof", func() {
				msg.ProofInit = ibctesting.MockCommitmentProof
			}, types.ErrVerifyChannelFailed,
		},
		{
			"application rejects the channel", func() {
				s.chainB.MockApp.OnChanOpenTryValidate = func(
					context.Context, types.Order, []string, string, string, types.Counterparty, string,
				) error {
					return mock.MockApplicationCallbackError
				}
			}, mock.MockApplicationCallbackError,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest() // reset

			path = ibctesting.NewPath(s.chainA, s.chainB)
			path.SetupConnections()
			s.Require().NoError(path.EndpointA.ChanOpenInit())
			s.Require().NoError(path.EndpointB.UpdateClient())

			proof, proofHeight = path.EndpointA.QueryProof(host.ChannelKey(path.EndpointA.ChannelConfig.PortID, path.EndpointA.ChannelID))
			msg = types.NewMsgChannelOpenTry(
				path.EndpointB.ChannelConfig.PortID, path.EndpointB.ChannelConfig.Version, path.EndpointB.ChannelConfig.Order,
				[]string{path.EndpointB.ConnectionID}, path.EndpointA.ChannelConfig.PortID, path.EndpointA.ChannelID,
				path.EndpointA.ChannelConfig.Version, proof, proofHeight, s.chainB.SenderAccount,
			)

			tc.malleate()

			before := storeSnapshot(s.chainB)
			err := channel.ChanOpenTryValidate(s.chainB.IBCKeeper.NewContext(s.chainB.GetContext()), module(s.chainB), msg)
			s.Require().Equal(before, storeSnapshot(s.chainB), "validation must not write state")

			if tc.expErr != nil {
				s.Require().ErrorIs(err, tc.expErr)
				return
			}
			s.Require().NoError(err)

			execCtx := s.chainB.IBCKeeper.NewContext(s.chainB.GetContext())
			channelID, version, err := channel.ChanOpenTryExecute(execCtx, module(s.chainB), msg)
			s.Require().NoError(err)
			s.Require().Equal(ibctesting.FirstChannelID, channelID)
			s.Require().Equal(path.EndpointA.ChannelConfig.Version, version)

			stored := s.chainB.GetChannel(ibctesting.MockPort, channelID)
			s.Require().Equal(types.TRYOPEN, stored.State)
			s.Require().Equal(types.NewCounterparty(ibctesting.MockPort, path.EndpointA.ChannelID), stored.Counterparty)

			s.Require().Len(execCtx.Events(), 3)
			s.Require().Equal(types.NewChannelEvent(
				types.EventTypeChannelOpenTry, ibctesting.MockPort, channelID,
				ibctesting.MockPort, path.EndpointA.ChannelID, path.EndpointB.ConnectionID, version,
			), execCtx.Events()[1])
		})
	}
}

func (s *HandshakeTestSuite) TestChanOpenAck() {
	var (
		path *ibctesting.Path
		msg  *types.MsgChannelOpenAck
	)

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success", func() {}, nil,
		},
		{
			"channel does not exist", func() {
				msg.ChannelId = "channel-10"
			}, types.ErrChannelNotFound,
		},
		{
			"channel is not INIT", func() {
				ch := path.EndpointA.GetChannel()
				ch.State = types.TRYOPEN
				path.EndpointA.SetChannel(ch)
			}, types.ErrInvalidChannelState,
		},
		{
			"connection is not OPEN", func() {
				connection := path.EndpointA.GetConnection()
				connection.State = connectiontypes.INIT
				path.EndpointA.SetConnection(connection)
			}, connectiontypes.ErrInvalidConnectionState,
		},
		{
			"client is not active", func() {
				err := s.chainA.IBCKeeper.ClientKeeper.SetParams(s.chainA.GetContext(), clienttypes.NewParams(exported.Localhost))
				s.Require().NoError(err)
			}, clienttypes.ErrClientNotActive,
		},
		{
			"wrong counterparty channel identifier", func() {
				msg.CounterpartyChannelId = "channel-10"
			}, types.ErrVerifyChannelFailed,
		},
		{
			"counterparty version does not match", func() {
				msg.CounterpartyVersion = "other-version"
			}, types.ErrVerifyChannelFailed,
		},
		{
			"consensus state not found at proof height", func() {
				msg.ProofHeight = clienttypes.NewHeight(1, 1)
			}, clienttypes.ErrConsensusStateNotFound,
		},
		{
			"application rejects the counterparty version", func() {
				s.chainA.MockApp.OnChanOpenAckValidate = func(context.Context, string, string, string, string) error {
					return mock.MockApplicationCallbackError
				}
			}, mock.MockApplicationCallbackError,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest() // reset

			path = ibctesting.NewPath(s.chainA, s.chainB)
			path.SetupConnections()
			s.Require().NoError(path.EndpointA.ChanOpenInit())
			s.Require().NoError(path.EndpointB.ChanOpenTry())
			s.Require().NoError(path.EndpointA.UpdateClient())

			proof, proofHeight := path.EndpointB.QueryProof(host.ChannelKey(path.EndpointB.ChannelConfig.PortID, path.EndpointB.ChannelID))
			msg = types.NewMsgChannelOpenAck(
				path.EndpointA.ChannelConfig.PortID, path.EndpointA.ChannelID,
				path.EndpointB.ChannelID, path.EndpointB.ChannelConfig.Version,
				proof, proofHeight, s.chainA.SenderAccount,
			)

			tc.malleate()

			before := storeSnapshot(s.chainA)
			err := channel.ChanOpenAckValidate(s.chainA.IBCKeeper.NewContext(s.chainA.GetContext()), module(s.chainA), msg)
			s.Require().Equal(before, storeSnapshot(s.chainA), "validation must not write state")

			if tc.expErr != nil {
				s.Require().ErrorIs(err, tc.expErr)
				return
			}
			s.Require().NoError(err)

			execCtx := s.chainA.IBCKeeper.NewContext(s.chainA.GetContext())
			s.Require().NoError(channel.ChanOpenAckExecute(execCtx, module(s.chainA), msg))

			stored := path.EndpointA.GetChannel()
			s.Require().Equal(types.OPEN, stored.State)
			s.Require().Equal(path.EndpointB.ChannelID, stored.Counterparty.ChannelId)
			s.Require().Equal(path.EndpointB.ChannelConfig.Version, stored.Version)

			s.Require().Equal([]sdk.Event{
				types.NewMessageEvent(),
				types.NewChannelEvent(types.EventTypeChannelOpenAck, ibctesting.MockPort, path.EndpointA.ChannelID, ibctesting.MockPort, path.EndpointB.ChannelID, path.EndpointA.ConnectionID, ""),
				mock.NewMockChannelEvent("open_ack", ibctesting.MockPort, path.EndpointA.ChannelID),
			}, execCtx.Events())
		})
	}
}

func (s *HandshakeTestSuite) TestChanOpenConfirm() {
	var (
		path *ibctesting.Path
		msg  *types.MsgChannelOpenConfirm
	)

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success", func() {}, nil,
		},
		{
			"channel does not exist", func() {
				msg.ChannelId = "channel-10"
			}, types.ErrChannelNotFound,
		},
		{
			"channel is not TRYOPEN", func() {
				ch := path.EndpointB.GetChannel()
				ch.State = types.OPEN
				path.EndpointB.SetChannel(ch)
			}, types.ErrInvalidChannelState,
		},
		{
			"channel has no counterparty channel identifier", func() {
				ch := path.EndpointB.GetChannel()
				ch.Counterparty.ChannelId = ""
				path.EndpointB.SetChannel(ch)
			}, types.ErrMissingCounterparty,
		},
		{
			"proof of a channel that is not OPEN", func() {
				ch := path.EndpointA.GetChannel()
				ch.State = types.INIT
				path.EndpointA.SetChannel(ch)
				s.coordinator.CommitBlock(s.chainA)
				s.Require().NoError(path.EndpointB.UpdateClient())

				msg.ProofAck, msg.ProofHeight = path.EndpointA.QueryProof(host.ChannelKey(path.EndpointA.ChannelConfig.PortID, path.EndpointA.ChannelID))
			}, types.ErrVerifyChannelFailed,
		},
		{
			"application rejects the confirmation", func() {
				s.chainB.MockApp.OnChanOpenConfirmValidate = func(context.Context, string, string) error {
					return mock.MockApplicationCallbackError
				}
			}, mock.MockApplicationCallbackError,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest() // reset

			path = ibctesting.NewPath(s.chainA, s.chainB)
			path.SetupConnections()
			s.Require().NoError(path.EndpointA.ChanOpenInit())
			s.Require().NoError(path.EndpointB.ChanOpenTry())
			s.Require().NoError(path.EndpointA.ChanOpenAck())
			s.Require().NoError(path.EndpointB.UpdateClient())

			proof, proofHeight := path.EndpointA.QueryProof(host.ChannelKey(path.EndpointA.ChannelConfig.PortID, path.EndpointA.ChannelID))
			msg = types.NewMsgChannelOpenConfirm(path.EndpointB.ChannelConfig.PortID, path.EndpointB.ChannelID, proof, proofHeight, s.chainB.SenderAccount)

			tc.malleate()

			before := storeSnapshot(s.chainB)
			err := channel.ChanOpenConfirmValidate(s.chainB.IBCKeeper.NewContext(s.chainB.GetContext()), module(s.chainB), msg)
			s.Require().Equal(before, storeSnapshot(s.chainB), "validation must not write state")

			if tc.expErr != nil {
				s.Require().ErrorIs(err, tc.expErr)
				return
			}
			s.Require().NoError(err)

			previous := path.EndpointB.GetChannel()
			execCtx := s.chainB.IBCKeeper.NewContext(s.chainB.GetContext())
			s.Require().NoError(channel.ChanOpenConfirmExecute(execCtx, module(s.chainB), msg))

			previous.State = types.OPEN
			s.Require().Equal(previous, path.EndpointB.GetChannel())
			s.Require().Equal([]string{
				"success: channel open confirm",
				mock.LogMessage("open_confirm", ibctesting.MockPort, path.EndpointB.ChannelID),
			}, execCtx.Logs())
		})
	}
}

func (s *HandshakeTestSuite) TestChanOpenConfirmExecuteWithoutCounterparty() {
	path := ibctesting.NewPath(s.chainA, s.chainB)
	path.SetupConnections()

	path.EndpointB.ChannelID = ibctesting.FirstChannelID
	path.EndpointB.SetChannel(types.NewChannel(
		types.TRYOPEN, types.UNORDERED, types.NewCounterparty(ibctesting.MockPort, ""),
		[]string{path.EndpointB.ConnectionID}, mock.Version,
	))

	msg := types.NewMsgChannelOpenConfirm(ibctesting.MockPort, path.EndpointB.ChannelID, ibctesting.MockCommitmentProof, clienttypes.NewHeight(1, 1), s.chainB.SenderAccount)
	execCtx := s.chainB.IBCKeeper.NewContext(s.chainB.GetContext())

	err := channel.ChanOpenConfirmExecute(execCtx, module(s.chainB), msg)
	s.Require().ErrorIs(err, ibcerrors.ErrInvariantViolation)
	s.Require().Empty(execCtx.Events())

	stored, found := s.chainB.IBCKeeper.ChannelKeeper.GetChannel(s.chainB.GetContext(), ibctesting.MockPort, path.EndpointB.ChannelID)
	s.Require().True(found)
	s.Require().Equal(types.TRYOPEN, stored.State)
	s.Require().Empty(stored.Counterparty.ChannelId)
}

func (s *HandshakeTestSuite) TestChanCloseInit() {
	var (
		path *ibctesting.Path
		msg  *types.MsgChannelCloseInit
	)

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success", func() {}, nil,
		},
		{
			"success: channel in INIT can be closed", func() {
				ch := path.EndpointA.GetChannel()
				ch.State = types.INIT
				path.EndpointA.SetChannel(ch)
			}, nil,
		},
		{
			"channel does not exist", func() {
				msg.ChannelId = "channel-10"
			}, types.ErrChannelNotFound,
		},
		{
			"channel is already CLOSED", func() {
				ch := path.EndpointA.GetChannel()
				ch.State = types.CLOSED
				path.EndpointA.SetChannel(ch)
			}, types.ErrInvalidChannelState,
		},
		{
			"connection is not OPEN", func() {
				connection := path.EndpointA.GetConnection()
				connection.State = connectiontypes.INIT
				path.EndpointA.SetConnection(connection)
			}, connectiontypes.ErrInvalidConnectionState,
		},
		{
			"client is not active", func() {
				err := s.chainA.IBCKeeper.ClientKeeper.SetParams(s.chainA.GetContext(), clienttypes.NewParams(exported.Localhost))
				s.Require().NoError(err)
			}, clienttypes.ErrClientNotActive,
		},
		{
			"application refuses to close", func() {
				s.chainA.MockApp.OnChanCloseInitValidate = func(context.Context, string, string) error {
					return mock.MockApplicationCallbackError
				}
			}, mock.MockApplicationCallbackError,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest() // reset

			path = ibctesting.NewPath(s.chainA, s.chainB)
			path.Setup()
			msg = types.NewMsgChannelCloseInit(path.EndpointA.ChannelConfig.PortID, path.EndpointA.ChannelID, s.chainA.SenderAccount)

			tc.malleate()

			before := storeSnapshot(s.chainA)
			err := channel.ChanCloseInitValidate(s.chainA.IBCKeeper.NewContext(s.chainA.GetContext()), module(s.chainA), msg)
			s.Require().Equal(before, storeSnapshot(s.chainA), "validation must not write state")

			if tc.expErr != nil {
				s.Require().ErrorIs(err, tc.expErr)
				return
			}
			s.Require().NoError(err)

			execCtx := s.chainA.IBCKeeper.NewContext(s.chainA.GetContext())
			s.Require().NoError(channel.ChanCloseInitExecute(execCtx, module(s.chainA), msg))
			s.Require().Equal(types.CLOSED, path.EndpointA.GetChannel().State)
			s.Require().Len(execCtx.Events(), 3)
			s.Require().Equal(types.EventTypeChannelCloseInit, execCtx.Events()[1].Type)
		})
	}
}

func (s *HandshakeTestSuite) TestChanCloseConfirm() {
	var (
		path *ibctesting.Path
		msg  *types.MsgChannelCloseConfirm

		// client height of chainB at which the channel end of chainA was last OPEN
		openHeight clienttypes.Height
	)

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success", func() {}, nil,
		},
		{
			"channel does not exist", func() {
				msg.ChannelId = "channel-10"
			}, types.ErrChannelNotFound,
		},
		{
			"channel is already CLOSED", func() {
				ch := path.EndpointB.GetChannel()
				ch.State = types.CLOSED
				path.EndpointB.SetChannel(ch)
			}, types.ErrInvalidChannelState,
		},
		{
			"channel has no counterparty channel identifier", func() {
				ch := path.EndpointB.GetChannel()
				ch.Counterparty.ChannelId = ""
				path.EndpointB.SetChannel(ch)
			}, types.ErrMissingCounterparty,
		},
		{
			"proof of a channel that is still OPEN", func() {
				msg.ProofInit, msg.ProofHeight = path.EndpointA.QueryProofAtHeight(
					host.ChannelKey(path.EndpointA.ChannelConfig.PortID, path.EndpointA.ChannelID),
					openHeight.GetRevisionHeight(),
				)
			}, types.ErrVerifyChannelFailed,
		},
		{
			"application refuses to close", func() {
				s.chainB.MockApp.OnChanCloseConfirmValidate = func(context.Context, string, string) error {
					return mock.MockApplicationCallbackError
				}
			}, mock.MockApplicationCallbackError,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest() // reset

			path = ibctesting.NewPath(s.chainA, s.chainB)
			path.Setup()
			s.Require().NoError(path.EndpointB.UpdateClient())
			openHeight = path.EndpointB.GetClientLatestHeight()

			s.Require().NoError(path.EndpointA.ChanCloseInit())
			s.Require().NoError(path.EndpointB.UpdateClient())

			proof, proofHeight := path.EndpointA.QueryProof(host.ChannelKey(path.EndpointA.ChannelConfig.PortID, path.EndpointA.ChannelID))
			msg = types.NewMsgChannelCloseConfirm(path.EndpointB.ChannelConfig.PortID, path.EndpointB.ChannelID, proof, proofHeight, s.chainB.SenderAccount)

			tc.malleate()

			before := storeSnapshot(s.chainB)
			err := channel.ChanCloseConfirmValidate(s.chainB.IBCKeeper.NewContext(s.chainB.GetContext()), module(s.chainB), msg)
			s.Require().Equal(before, storeSnapshot(s.chainB), "validation must not write state")

			if tc.expErr != nil {
				s.Require().ErrorIs(err, tc.expErr)
				return
			}
			s.Require().NoError(err)

			execCtx := s.chainB.IBCKeeper.NewContext(s.chainB.GetContext())
			s.Require().NoError(channel.ChanCloseConfirmExecute(execCtx, module(s.chainB), msg))
			s.Require().Equal(types.CLOSED, path.EndpointB.GetChannel().State)
			s.Require().Equal(types.NewChannelEvent(
				types.EventTypeChannelCloseConfirm, ibctesting.MockPort, path.EndpointB.ChannelID,
				ibctesting.MockPort, path.EndpointA.ChannelID, path.EndpointB.ConnectionID, "",
			), execCtx.Events()[1])
		})
	}
}

// setupConfirm brings the channel end of chainB to TRYOPEN and the one of chainA to OPEN,
// then returns a MsgChannelOpenConfirm carrying a valid proof of the chainA end.
func (s *HandshakeTestSuite) setupConfirm() (*ibctesting.Path, *types.MsgChannelOpenConfirm) {
	path := ibctesting.NewPath(s.chainA, s.chainB)
	path.SetupConnections()
	s.Require().NoError(path.EndpointA.ChanOpenInit())
	s.Require().NoError(path.EndpointB.ChanOpenTry())
	s.Require().NoError(path.EndpointA.ChanOpenAck())
	s.Require().NoError(path.EndpointB.UpdateClient())

	proof, proofHeight := path.EndpointA.QueryProof(host.ChannelKey(path.EndpointA.ChannelConfig.PortID, path.EndpointA.ChannelID))
	msg := types.NewMsgChannelOpenConfirm(path.EndpointB.ChannelConfig.PortID, path.EndpointB.ChannelID, proof, proofHeight, s.chainB.SenderAccount)
	return path, msg
}

func (s *HandshakeTestSuite) TestChanOpenConfirmChannelAbsent() {
	_, msg := s.setupConfirm()
	msg.ChannelId = "channel-99"

	err := channel.ChanOpenConfirmValidate(s.chainB.IBCKeeper.NewContext(s.chainB.GetContext()), module(s.chainB), msg)
	s.Require().ErrorIs(err, types.ErrChannelNotFound)
}

func (s *HandshakeTestSuite) TestChanOpenConfirmWrongState() {
	for _, state := range []types.State{types.INIT, types.OPEN, types.CLOSED} {
		s.SetupTest() // reset

		path, msg := s.setupConfirm()
		ch := path.EndpointB.GetChannel()
		ch.State = state
		path.EndpointB.SetChannel(ch)

		err := channel.ChanOpenConfirmValidate(s.chainB.IBCKeeper.NewContext(s.chainB.GetContext()), module(s.chainB), msg)
		s.Require().ErrorIs(err, types.ErrInvalidChannelState)
		s.Require().Contains(err.Error(), state.String())
	}
}

func (s *HandshakeTestSuite) TestChanOpenConfirmFrozenClient() {
	path, msg := s.setupConfirm()

	// a second header at the latest height with a different root freezes the client
	latest := path.EndpointB.GetClientLatestHeight()
	header := s.chainA.LastTrustedHeader(s.chainB.SenderAccount)
	header.Height = latest
	header.Root = commitmenttypes.NewMerkleRoot([]byte("conflicting root"))
	bz, err := proto.Marshal(header)
	s.Require().NoError(err)
	s.Require().NoError(s.chainB.IBCKeeper.ClientKeeper.UpdateClient(s.chainB.GetContext(), path.EndpointB.ClientID, bz))

	err = channel.ChanOpenConfirmValidate(s.chainB.IBCKeeper.NewContext(s.chainB.GetContext()), module(s.chainB), msg)
	s.Require().ErrorIs(err, clienttypes.ErrClientNotActive)
	s.Require().Contains(err.Error(), exported.Frozen.String())
}

func (s *HandshakeTestSuite) TestChanOpenConfirmWithoutModuleEvents() {
	path, msg := s.setupConfirm()
	s.chainB.MockApp.OnChanOpenConfirmExecute = func(context.Context, string, string) (porttypes.ModuleExtras, error) {
		return porttypes.ModuleExtras{}, nil
	}

	s.Require().NoError(channel.ChanOpenConfirmValidate(s.chainB.IBCKeeper.NewContext(s.chainB.GetContext()), module(s.chainB), msg))

	execCtx := s.chainB.IBCKeeper.NewContext(s.chainB.GetContext())
	s.Require().NoError(channel.ChanOpenConfirmExecute(execCtx, module(s.chainB), msg))

	s.Require().Equal(types.OPEN, path.EndpointB.GetChannel().State)
	s.Require().Equal([]sdk.Event{
		types.NewMessageEvent(),
		types.NewChannelEvent(
			types.EventTypeChannelOpenConfirm, ibctesting.MockPort, path.EndpointB.ChannelID,
			ibctesting.MockPort, path.EndpointA.ChannelID, path.EndpointB.ConnectionID, "",
		),
	}, execCtx.Events())
}

func (s *HandshakeTestSuite) TestChanOpenConfirmProofDoesNotVerify() {
	_, msg := s.setupConfirm()

	executed := false
	s.chainB.MockApp.OnChanOpenConfirmExecute = func(context.Context, string, string) (porttypes.ModuleExtras, error) {
		executed = true
		return porttypes.ModuleExtras{}, nil
	}

	// proof of a different key under the same root
	msg.ProofAck, _ = nextChannelSequenceProof(s.chainA, msg.ProofHeight)

	_, err := s.chainB.IBCKeeper.ChannelOpenConfirm(sdk.WrapSDKContext(s.chainB.GetContext()), msg)
	s.Require().ErrorIs(err, types.ErrVerifyChannelFailed)
	s.Require().False(executed)
}

// nextChannelSequenceProof returns a proof of the next channel sequence of chain at height.
func nextChannelSequenceProof(chain *ibctesting.TestChain, height clienttypes.Height) ([]byte, clienttypes.Height) {
	return chain.QueryProofAtHeight([]byte(host.KeyNextChannelSequence), int64(height.GetRevisionHeight()))
}
