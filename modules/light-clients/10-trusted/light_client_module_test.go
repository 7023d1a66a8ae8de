package trusted_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/gogo/protobuf/proto"
	testifysuite "github.com/stretchr/testify/suite"

	clienttypes "github.com/cosmos/ibc-handshake/modules/core/02-client/types"
	commitmenttypes "github.com/cosmos/ibc-handshake/modules/core/23-commitment/types"
	host "github.com/cosmos/ibc-handshake/modules/core/24-host"
	ibcerrors "github.com/cosmos/ibc-handshake/modules/core/errors"
	"github.com/cosmos/ibc-handshake/modules/core/exported"
	trusted "github.com/cosmos/ibc-handshake/modules/light-clients/10-trusted"
	ibctesting "github.com/cosmos/ibc-handshake/testing"
)

type TrustedTestSuite struct {
	testifysuite.Suite

	coordinator *ibctesting.Coordinator

	chainA *ibctesting.TestChain
	chainB *ibctesting.TestChain

	path   *ibctesting.Path
	module exported.LightClientModule
}

func (suite *TrustedTestSuite) SetupTest() {
	suite.coordinator = ibctesting.NewCoordinator(suite.T(), 2)
	suite.chainA = suite.coordinator.GetChain(ibctesting.GetChainID(1))
	suite.chainB = suite.coordinator.GetChain(ibctesting.GetChainID(2))

	suite.path = ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.path.SetupClients()

	module, err := suite.chainA.IBCKeeper.ClientKeeper.Route(suite.path.EndpointA.ClientID)
	suite.Require().NoError(err)
	suite.module = module
}

func TestTrustedTestSuite(t *testing.T) {
	testifysuite.Run(t, new(TrustedTestSuite))
}

func (suite *TrustedTestSuite) clientID() string {
	return suite.path.EndpointA.ClientID
}

func (suite *TrustedTestSuite) updateState(ctx sdk.Context, header *trusted.Header) ([]exported.Height, error) {
	bz, err := proto.Marshal(header)
	suite.Require().NoError(err)
	return suite.module.UpdateState(ctx, suite.clientID(), bz)
}

func (suite *TrustedTestSuite) TestInitialize() {
	var (
		clientState    *trusted.ClientState
		consensusState *trusted.ConsensusState
		clientID       string
		clientStateBz  []byte
		consensusBz    []byte
	)

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{"success", func() {}, nil},
		{
			"client state cannot be decoded",
			func() { clientStateBz = []byte{0xff} },
			clienttypes.ErrInvalidClient,
		},
		{
			"empty chain id",
			func() { clientState.ChainId = "" },
			trusted.ErrInvalidChainID,
		},
		{
			"zero trusting period",
			func() { clientState.TrustingPeriod = 0 },
			trusted.ErrInvalidTrustingPeriod,
		},
		{
			"zero latest height",
			func() { clientState.LatestHeight = clienttypes.ZeroHeight() },
			clienttypes.ErrInvalidHeight,
		},
		{
			"empty authority",
			func() { clientState.Authority = "" },
			trusted.ErrInvalidAuthority,
		},
		{
			"no proof specs",
			func() { clientState.ProofSpecs = nil },
			trusted.ErrInvalidProofSpecs,
		},
		{
			"consensus state cannot be decoded",
			func() { consensusBz = []byte{0xff} },
			clienttypes.ErrInvalidConsensus,
		},
		{
			"consensus state with empty root",
			func() { consensusState.Root = commitmenttypes.MerkleRoot{} },
			clienttypes.ErrInvalidConsensus,
		},
		{
			"client already exists",
			func() { clientID = suite.clientID() },
			clienttypes.ErrClientExists,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()

			clientID = clienttypes.FormatClientIdentifier(exported.Trusted, 100)
			clientState = trusted.NewClientState(
				suite.chainB.ChainID, ibctesting.TrustingPeriod, suite.chainB.LastHeight(),
				suite.chainA.SenderAccount, commitmenttypes.GetSDKSpecs(),
			)
			consensusState = suite.chainB.LastConsensusState()
			clientStateBz, consensusBz = nil, nil

			tc.malleate()

			var err error
			if clientStateBz == nil {
				clientStateBz, err = proto.Marshal(clientState)
				suite.Require().NoError(err)
			}
			if consensusBz == nil {
				consensusBz, err = proto.Marshal(consensusState)
				suite.Require().NoError(err)
			}

			ctx := suite.chainA.GetContext()
			err = suite.module.Initialize(ctx, clientID, clientStateBz, consensusBz)

			if tc.expErr == nil {
				suite.Require().NoError(err)
				suite.Require().Equal(exported.Active, suite.module.Status(ctx, clientID))
				suite.Require().Equal(suite.chainB.LastHeight(), suite.module.LatestHeight(ctx, clientID))

				stored, found := suite.module.ConsensusState(ctx, clientID, suite.chainB.LastHeight())
				suite.Require().True(found)
				suite.Require().Equal(consensusState.Root.GetHash(), stored.GetRoot().GetHash())
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
			}
		})
	}
}

func (suite *TrustedTestSuite) TestUpdateState() {
	suite.Run("unauthorized signer", func() {
		suite.SetupTest()
		suite.chainB.NextBlock()

		_, err := suite.updateState(suite.chainA.GetContext(), suite.chainB.LastTrustedHeader(suite.chainB.SenderAccount))
		suite.Require().ErrorIs(err, ibcerrors.ErrUnauthorized)
	})

	suite.Run("revision number mismatch", func() {
		suite.SetupTest()
		suite.chainB.NextBlock()

		header := suite.chainB.LastTrustedHeader(suite.chainA.SenderAccount)
		header.Height = clienttypes.NewHeight(header.Height.RevisionNumber+1, header.Height.RevisionHeight)

		_, err := suite.updateState(suite.chainA.GetContext(), header)
		suite.Require().ErrorIs(err, trusted.ErrInvalidHeaderHeight)
	})

	suite.Run("header with zero height", func() {
		suite.SetupTest()

		header := suite.chainB.LastTrustedHeader(suite.chainA.SenderAccount)
		header.Height = clienttypes.ZeroHeight()

		_, err := suite.updateState(suite.chainA.GetContext(), header)
		suite.Require().ErrorIs(err, trusted.ErrInvalidHeaderHeight)
	})

	suite.Run("header cannot be decoded", func() {
		suite.SetupTest()

		_, err := suite.module.UpdateState(suite.chainA.GetContext(), suite.clientID(), []byte{0xff})
		suite.Require().ErrorIs(err, clienttypes.ErrInvalidHeader)
	})

	suite.Run("client not found", func() {
		suite.SetupTest()

		_, err := suite.module.UpdateState(suite.chainA.GetContext(), clienttypes.FormatClientIdentifier(exported.Trusted, 99), nil)
		suite.Require().ErrorIs(err, clienttypes.ErrClientNotFound)
	})

	suite.Run("new height advances the client", func() {
		suite.SetupTest()
		suite.chainB.NextBlock()

		ctx := suite.chainA.GetContext()
		header := suite.chainB.LastTrustedHeader(suite.chainA.SenderAccount)

		heights, err := suite.updateState(ctx, header)
		suite.Require().NoError(err)
		suite.Require().Equal([]exported.Height{header.Height}, heights)
		suite.Require().Equal(header.Height, suite.module.LatestHeight(ctx, suite.clientID()))

		consensusState, found := suite.module.ConsensusState(ctx, suite.clientID(), header.Height)
		suite.Require().True(found)
		suite.Require().Equal(suite.chainB.LastAppHash, consensusState.GetRoot().GetHash())
	})

	suite.Run("duplicate header is a no-op", func() {
		suite.SetupTest()
		suite.Require().NoError(suite.path.EndpointA.UpdateClient())

		ctx := suite.chainA.GetContext()
		header := suite.chainB.LastTrustedHeader(suite.chainA.SenderAccount)
		suite.Require().Equal(header.Height, suite.module.LatestHeight(ctx, suite.clientID()))

		heights, err := suite.updateState(ctx, header)
		suite.Require().NoError(err)
		suite.Require().Equal([]exported.Height{header.Height}, heights)
		suite.Require().Equal(exported.Active, suite.module.Status(ctx, suite.clientID()))
	})

	suite.Run("conflicting header freezes the client", func() {
		suite.SetupTest()
		suite.Require().NoError(suite.path.EndpointA.UpdateClient())

		ctx := suite.chainA.GetContext()
		header := suite.chainB.LastTrustedHeader(suite.chainA.SenderAccount)
		header.Root = commitmenttypes.NewMerkleRoot([]byte("conflicting root"))

		heights, err := suite.updateState(ctx, header)
		suite.Require().NoError(err)
		suite.Require().Empty(heights)
		suite.Require().Equal(exported.Frozen, suite.module.Status(ctx, suite.clientID()))
	})
}

func (suite *TrustedTestSuite) TestStatus() {
	ctx := suite.chainA.GetContext()
	suite.Require().Equal(exported.Active, suite.module.Status(ctx, suite.clientID()))
	suite.Require().Equal(exported.Unknown, suite.module.Status(ctx, clienttypes.FormatClientIdentifier(exported.Trusted, 99)))

	latestHeight := suite.module.LatestHeight(ctx, suite.clientID())
	consensusState, found := suite.module.ConsensusState(ctx, suite.clientID(), latestHeight)
	suite.Require().True(found)

	expiry := consensusState.(*trusted.ConsensusState).GetTime().Add(ibctesting.TrustingPeriod)
	suite.Require().Equal(exported.Active, suite.module.Status(ctx.WithBlockTime(expiry.Add(-1)), suite.clientID()))
	suite.Require().Equal(exported.Expired, suite.module.Status(ctx.WithBlockTime(expiry), suite.clientID()))
}

func (suite *TrustedTestSuite) TestValidateProofHeight() {
	ctx := suite.chainA.GetContext()
	latestHeight := suite.module.LatestHeight(ctx, suite.clientID())

	suite.Require().NoError(suite.module.ValidateProofHeight(ctx, suite.clientID(), latestHeight))

	err := suite.module.ValidateProofHeight(ctx, suite.clientID(), latestHeight.Increment())
	suite.Require().ErrorIs(err, ibcerrors.ErrInvalidHeight)

	err = suite.module.ValidateProofHeight(ctx, clienttypes.FormatClientIdentifier(exported.Trusted, 99), latestHeight)
	suite.Require().ErrorIs(err, clienttypes.ErrClientNotFound)
}

func (suite *TrustedTestSuite) TestVerifyMembership() {
	var (
		proof []byte
		value []byte
		path  exported.Path
	)

	channelPath := host.NewChannelEndPath(ibctesting.MockPort, "channel-9")
	storedValue := []byte("stored value")

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{"success", func() {}, nil},
		{
			"proof cannot be decoded",
			func() { proof = []byte{0xff} },
			commitmenttypes.ErrInvalidProof,
		},
		{
			"value does not match",
			func() { value = []byte("other value") },
			commitmenttypes.ErrInvalidProof,
		},
		{
			"path does not match",
			func() { path = host.NewChannelEndPath(ibctesting.MockPort, "channel-8") },
			commitmenttypes.ErrInvalidProof,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()

			suite.chainB.GetContext().KVStore(suite.chainB.StoreKey).Set(channelPath.Bytes(), storedValue)
			suite.chainB.NextBlock()
			suite.Require().NoError(suite.path.EndpointA.UpdateClient())

			var height clienttypes.Height
			proof, height = suite.chainB.QueryProof(channelPath.Bytes())
			value = storedValue
			path = channelPath

			tc.malleate()

			ctx := suite.chainA.GetContext()
			consensusState, found := suite.module.ConsensusState(ctx, suite.clientID(), height)
			suite.Require().True(found)

			err := suite.module.VerifyMembership(
				ctx, suite.clientID(),
				suite.chainB.IBCKeeper.ConnectionKeeper.GetCommitmentPrefix(),
				proof, consensusState.GetRoot(), path, value,
			)

			if tc.expErr == nil {
				suite.Require().NoError(err)
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
			}
		})
	}
}
