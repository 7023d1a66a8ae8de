package localhost_test

import (
	"testing"

	testifysuite "github.com/stretchr/testify/suite"

	clienttypes "github.com/cosmos/ibc-handshake/modules/core/02-client/types"
	commitmenttypes "github.com/cosmos/ibc-handshake/modules/core/23-commitment/types"
	host "github.com/cosmos/ibc-handshake/modules/core/24-host"
	ibcerrors "github.com/cosmos/ibc-handshake/modules/core/errors"
	"github.com/cosmos/ibc-handshake/modules/core/exported"
	localhost "github.com/cosmos/ibc-handshake/modules/light-clients/09-localhost"
	ibctesting "github.com/cosmos/ibc-handshake/testing"
)

type LocalhostTestSuite struct {
	testifysuite.Suite

	coordinator *ibctesting.Coordinator
	chain       *ibctesting.TestChain
	module      exported.LightClientModule
}

func (suite *LocalhostTestSuite) SetupTest() {
	suite.coordinator = ibctesting.NewCoordinator(suite.T(), 1)
	suite.chain = suite.coordinator.GetChain(ibctesting.GetChainID(1))

	module, err := suite.chain.IBCKeeper.ClientKeeper.Route(exported.LocalhostClientID)
	suite.Require().NoError(err)
	suite.module = module
}

func TestLocalhostTestSuite(t *testing.T) {
	testifysuite.Run(t, new(LocalhostTestSuite))
}

func (suite *LocalhostTestSuite) TestInitialize() {
	err := suite.module.Initialize(suite.chain.GetContext(), exported.LocalhostClientID, nil, nil)
	suite.Require().ErrorIs(err, clienttypes.ErrClientExists)
}

func (suite *LocalhostTestSuite) TestSelfHeight() {
	ctx := suite.chain.GetContext()
	selfHeight := clienttypes.GetSelfHeight(ctx)

	suite.Require().Equal(exported.Active, suite.module.Status(ctx, exported.LocalhostClientID))
	suite.Require().Equal(selfHeight, suite.module.LatestHeight(ctx, exported.LocalhostClientID))

	heights, err := suite.module.UpdateState(ctx, exported.LocalhostClientID, nil)
	suite.Require().NoError(err)
	suite.Require().Equal([]exported.Height{selfHeight}, heights)

	suite.Require().NoError(suite.module.ValidateProofHeight(ctx, exported.LocalhostClientID, selfHeight))
	err = suite.module.ValidateProofHeight(ctx, exported.LocalhostClientID, selfHeight.Increment())
	suite.Require().ErrorIs(err, ibcerrors.ErrInvalidHeight)

	consensusState, found := suite.module.ConsensusState(ctx, exported.LocalhostClientID, selfHeight)
	suite.Require().True(found)
	suite.Require().Equal(uint64(ctx.BlockTime().UnixNano()), consensusState.GetTimestamp())
	suite.Require().True(consensusState.GetRoot().Empty())
}

func (suite *LocalhostTestSuite) TestVerifyMembership() {
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
			"proof is not the sentinel proof",
			func() { proof = ibctesting.MockCommitmentProof },
			commitmenttypes.ErrInvalidProof,
		},
		{
			"value does not match",
			func() { value = []byte("other value") },
			clienttypes.ErrFailedMembershipVerification,
		},
		{
			"nothing stored at path",
			func() { path = host.NewChannelEndPath(ibctesting.MockPort, "channel-8") },
			clienttypes.ErrFailedMembershipVerification,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()

			ctx := suite.chain.GetContext()
			ctx.KVStore(suite.chain.StoreKey).Set(channelPath.Bytes(), storedValue)

			proof = localhost.SentinelProof
			value = storedValue
			path = channelPath

			tc.malleate()

			err := suite.module.VerifyMembership(
				ctx, exported.LocalhostClientID,
				suite.chain.IBCKeeper.ConnectionKeeper.GetCommitmentPrefix(),
				proof, commitmenttypes.MerkleRoot{}, path, value,
			)

			if tc.expErr == nil {
				suite.Require().NoError(err)
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
			}
		})
	}
}
