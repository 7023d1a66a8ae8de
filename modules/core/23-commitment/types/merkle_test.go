package types_test

import (
	"fmt"
	"testing"

	"github.com/cosmos/cosmos-sdk/store/iavl"
	"github.com/cosmos/cosmos-sdk/store/rootmulti"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	"github.com/gogo/protobuf/proto"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	abci "github.com/tendermint/tendermint/abci/types"
	dbm "github.com/tendermint/tm-db"

	"github.com/cosmos/ibc-handshake/modules/core/23-commitment/types"
)

type MerkleTestSuite struct {
	suite.Suite

	store     *rootmulti.Store
	storeKey  *storetypes.KVStoreKey
	iavlStore *iavl.Store
}

func (suite *MerkleTestSuite) SetupTest() {
	db := dbm.NewMemDB()
	suite.store = rootmulti.NewStore(db)

	suite.storeKey = storetypes.NewKVStoreKey("iavlStoreKey")

	suite.store.MountStoreWithDB(suite.storeKey, storetypes.StoreTypeIAVL, nil)
	suite.Require().NoError(suite.store.LoadVersion(0))

	suite.iavlStore = suite.store.GetCommitStore(suite.storeKey).(*iavl.Store)
}

func TestMerkleTestSuite(t *testing.T) {
	suite.Run(t, new(MerkleTestSuite))
}

func (suite *MerkleTestSuite) queryProof(key []byte) types.MerkleProof {
	res := suite.store.Query(abci.RequestQuery{
		Path:  fmt.Sprintf("/%s/key", suite.storeKey.Name()), // required path to get key/value+proof
		Data:  key,
		Prove: true,
	})
	require.NotNil(suite.T(), res.ProofOps)

	proof, err := types.ConvertProofs(res.ProofOps)
	require.NoError(suite.T(), err)
	return proof
}

func (suite *MerkleTestSuite) TestVerifyMembership() {
	suite.iavlStore.Set([]byte("MYKEY"), []byte("MYVALUE"))
	cid := suite.store.Commit()

	proof := suite.queryProof([]byte("MYKEY"))

	suite.Require().NoError(proof.ValidateBasic())
	suite.Require().Error(types.MerkleProof{}.ValidateBasic())

	cases := []struct {
		name       string
		root       []byte
		pathArr    [][]byte
		value      []byte
		malleate   func()
		shouldPass bool
	}{
		{"valid proof", cid.Hash, [][]byte{[]byte(suite.storeKey.Name()), []byte("MYKEY")}, []byte("MYVALUE"), func() {}, true},
		{"wrong value", cid.Hash, [][]byte{[]byte(suite.storeKey.Name()), []byte("MYKEY")}, []byte("WRONGVALUE"), func() {}, false},
		{"nil value", cid.Hash, [][]byte{[]byte(suite.storeKey.Name()), []byte("MYKEY")}, []byte(nil), func() {}, false},
		{"empty value", cid.Hash, [][]byte{[]byte(suite.storeKey.Name()), []byte("MYKEY")}, []byte{}, func() {}, false},
		{"wrong key", cid.Hash, [][]byte{[]byte(suite.storeKey.Name()), []byte("NOTMYKEY")}, []byte("MYVALUE"), func() {}, false},
		{"wrong path 1", cid.Hash, [][]byte{[]byte(suite.storeKey.Name()), []byte("MYKEY"), []byte("MYKEY")}, []byte("MYVALUE"), func() {}, false},
		{"wrong path 2", cid.Hash, [][]byte{[]byte(suite.storeKey.Name())}, []byte("MYVALUE"), func() {}, false},
		{"wrong path 3", cid.Hash, [][]byte{[]byte("MYKEY")}, []byte("MYVALUE"), func() {}, false},
		{"wrong storekey", cid.Hash, [][]byte{[]byte("otherStoreKey"), []byte("MYKEY")}, []byte("MYVALUE"), func() {}, false},
		{"wrong root", []byte("WRONGROOT"), [][]byte{[]byte(suite.storeKey.Name()), []byte("MYKEY")}, []byte("MYVALUE"), func() {}, false},
		{"nil root", []byte(nil), [][]byte{[]byte(suite.storeKey.Name()), []byte("MYKEY")}, []byte("MYVALUE"), func() {}, false},
	}

	for i, tc := range cases {
		tc := tc
		suite.Run(tc.name, func() {
			tc.malleate()

			root := types.NewMerkleRoot(tc.root)
			path := types.NewMerklePath(tc.pathArr...)

			err := proof.VerifyMembership(types.GetSDKSpecs(), &root, path, tc.value)

			if tc.shouldPass {
				suite.Require().NoError(err, "test case %d should have passed", i)
			} else {
				suite.Require().Error(err, "test case %d should have failed", i)
			}
		})
	}
}

func (suite *MerkleTestSuite) TestVerifyMembershipWithPrefix() {
	prefix := types.NewMerklePrefix([]byte(suite.storeKey.Name()))

	suite.iavlStore.Set([]byte("channelEnds/ports/transfer/channels/channel-0"), []byte("END"))
	cid := suite.store.Commit()

	proof := suite.queryProof([]byte("channelEnds/ports/transfer/channels/channel-0"))

	path, err := types.ApplyPrefix(&prefix, types.NewMerklePath([]byte("channelEnds/ports/transfer/channels/channel-0")))
	suite.Require().NoError(err)
	suite.Require().Equal(suite.storeKey.Name()+"/channelEnds/ports/transfer/channels/channel-0", path.String())

	root := types.NewMerkleRoot(cid.Hash)
	suite.Require().NoError(proof.VerifyMembership(types.GetSDKSpecs(), &root, path, []byte("END")))

	// a proof for one height does not verify against the root of a later height
	suite.iavlStore.Set([]byte("other"), []byte("value"))
	next := suite.store.Commit()
	nextRoot := types.NewMerkleRoot(next.Hash)
	err = proof.VerifyMembership(types.GetSDKSpecs(), &nextRoot, path, []byte("END"))
	suite.Require().ErrorIs(err, types.ErrInvalidProof)
}

func (suite *MerkleTestSuite) TestMerkleProofEncoding() {
	suite.iavlStore.Set([]byte("MYKEY"), []byte("MYVALUE"))
	cid := suite.store.Commit()

	proof := suite.queryProof([]byte("MYKEY"))
	bz, err := proto.Marshal(&proof)
	suite.Require().NoError(err)

	var decoded types.MerkleProof
	suite.Require().NoError(proto.Unmarshal(bz, &decoded))
	suite.Require().Len(decoded.Proofs, len(proof.Proofs))

	root := types.NewMerkleRoot(cid.Hash)
	path := types.NewMerklePath([]byte(suite.storeKey.Name()), []byte("MYKEY"))
	suite.Require().NoError(decoded.VerifyMembership(types.GetSDKSpecs(), &root, path, []byte("MYVALUE")))

	// unknown fixed64 (field 2) and fixed32 (field 3) fields are skipped
	extended := append(append([]byte{}, bz...), 0x11, 1, 2, 3, 4, 5, 6, 7, 8, 0x1d, 1, 2, 3, 4)
	var withUnknown types.MerkleProof
	suite.Require().NoError(proto.Unmarshal(extended, &withUnknown))
	suite.Require().Len(withUnknown.Proofs, len(proof.Proofs))
	suite.Require().NoError(withUnknown.VerifyMembership(types.GetSDKSpecs(), &root, path, []byte("MYVALUE")))

	suite.Require().Error(proto.Unmarshal([]byte{0x0a, 0x05, 0x01}, &decoded))
}

func TestApplyPrefix(t *testing.T) {
	prefix := types.NewMerklePrefix([]byte("storePrefixKey"))

	pathStr := "pathone/pathtwo/paththree/key"
	path := types.NewMerklePath([]byte(pathStr))

	prefixedPath, err := types.ApplyPrefix(&prefix, path)
	require.NoError(t, err)
	require.Len(t, prefixedPath.KeyPath, 2)
	require.Equal(t, "storePrefixKey/"+pathStr, prefixedPath.String())

	empty := types.NewMerklePrefix(nil)
	_, err = types.ApplyPrefix(&empty, path)
	require.ErrorIs(t, err, types.ErrInvalidPrefix)

	_, err = types.ApplyPrefix(nil, path)
	require.ErrorIs(t, err, types.ErrInvalidPrefix)
}

func TestMerklePath(t *testing.T) {
	path := types.NewMerklePath([]byte("a"), []byte("b"))

	key, err := path.GetKey(1)
	require.NoError(t, err)
	require.Equal(t, []byte("b"), key)

	_, err = path.GetKey(2)
	require.Error(t, err)

	require.True(t, types.NewMerklePath().Empty())
}
