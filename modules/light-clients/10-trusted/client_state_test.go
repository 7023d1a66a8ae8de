package trusted_test

import (
	"time"

	"github.com/gogo/protobuf/proto"

	clienttypes "github.com/cosmos/ibc-handshake/modules/core/02-client/types"
	commitmenttypes "github.com/cosmos/ibc-handshake/modules/core/23-commitment/types"
	trusted "github.com/cosmos/ibc-handshake/modules/light-clients/10-trusted"
)

func (suite *TrustedTestSuite) TestClientStateEncoding() {
	clientState := trusted.NewClientState(
		"testchain2-1", 90*time.Minute, clienttypes.NewHeight(1, 42),
		suite.chainA.SenderAccount, commitmenttypes.GetSDKSpecs(),
	)
	clientState.FrozenHeight = clienttypes.NewHeight(0, 1)

	bz, err := proto.Marshal(clientState)
	suite.Require().NoError(err)

	decoded := &trusted.ClientState{}
	suite.Require().NoError(proto.Unmarshal(bz, decoded))
	suite.Require().Equal(clientState.ChainId, decoded.ChainId)
	suite.Require().Equal(90*time.Minute, decoded.TrustingPeriod)
	suite.Require().Equal(clientState.LatestHeight, decoded.LatestHeight)
	suite.Require().Equal(clientState.FrozenHeight, decoded.FrozenHeight)
	suite.Require().Equal(clientState.Authority, decoded.Authority)
	suite.Require().Len(decoded.ProofSpecs, 2)
	suite.Require().NoError(decoded.Validate())

	reencoded, err := proto.Marshal(decoded)
	suite.Require().NoError(err)
	suite.Require().Equal(bz, reencoded)
}

func (suite *TrustedTestSuite) TestConsensusStateAndHeaderEncoding() {
	header := suite.chainB.LastTrustedHeader(suite.chainA.SenderAccount)

	bz, err := proto.Marshal(header)
	suite.Require().NoError(err)

	// an unknown fixed32 field (15) is skipped
	bz = append(bz, 0x7d, 0xde, 0xad, 0xbe, 0xef)

	decoded := &trusted.Header{}
	suite.Require().NoError(proto.Unmarshal(bz, decoded))
	suite.Require().Equal(header, decoded)

	consensusBz, err := proto.Marshal(header.ConsensusState())
	suite.Require().NoError(err)

	consensusState := &trusted.ConsensusState{}
	suite.Require().NoError(proto.Unmarshal(consensusBz, consensusState))
	suite.Require().Equal(header.ConsensusState(), consensusState)
	suite.Require().Equal(suite.chainB.LastHeader.Time.UnixNano(), consensusState.GetTime().UnixNano())
}
