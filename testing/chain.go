package ibctesting

import (
	"context"
	"fmt"
	"testing"

	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	"github.com/cosmos/cosmos-sdk/store/rootmulti"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/bech32"
	"github.com/gogo/protobuf/proto"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"
	dbm "github.com/tendermint/tm-db"

	"github.com/cosmos/ibc-handshake/internal/config"
	clienttypes "github.com/cosmos/ibc-handshake/modules/core/02-client/types"
	connectiontypes "github.com/cosmos/ibc-handshake/modules/core/03-connection/types"
	channeltypes "github.com/cosmos/ibc-handshake/modules/core/04-channel/types"
	porttypes "github.com/cosmos/ibc-handshake/modules/core/05-port/types"
	commitmenttypes "github.com/cosmos/ibc-handshake/modules/core/23-commitment/types"
	"github.com/cosmos/ibc-handshake/modules/core/exported"
	"github.com/cosmos/ibc-handshake/modules/core/keeper"
	localhost "github.com/cosmos/ibc-handshake/modules/light-clients/09-localhost"
	trusted "github.com/cosmos/ibc-handshake/modules/light-clients/10-trusted"
	"github.com/cosmos/ibc-handshake/testing/mock"
)

// TestChain is a testing struct that wraps the IBC keepers of a simulated chain. The IBC
// state lives in an IAVL store of a commit multistore so that committed state can be
// proven to a counterparty with ICS-23 proofs.
//
// A new block is committed by calling NextBlock. All reads and writes between two commits
// belong to the block at CurrentHeader.
type TestChain struct {
	TB testing.TB

	Coordinator   *Coordinator
	ChainID       string
	Config        config.Config
	LastHeader    tmproto.Header // header for last block height committed
	LastAppHash   []byte         // root of the state committed at LastHeader
	CurrentHeader tmproto.Header // header for current block height

	StoreKey    *storetypes.KVStoreKey
	CommitStore *rootmulti.Store
	IBCKeeper   *keeper.Keeper
	MockApp     *mock.IBCApp
	Logger      log.Logger

	// SenderAccount is the bech32 address signing messages delivered to this chain.
	SenderAccount string

	// LastEvents holds the events emitted by the last delivered message.
	LastEvents sdk.Events
}

// NewTestChain initializes a new test chain with the given chainID. The remaining host
// configuration is the default one with IBC_ environment overrides applied. The mock
// application is bound to MockPort.
func NewTestChain(tb testing.TB, coord *Coordinator, chainID string) *TestChain {
	tb.Helper()

	cfg, err := config.Load("")
	require.NoError(tb, err)
	cfg.ChainID = chainID
	return NewCustomTestChain(tb, coord, cfg)
}

// NewCustomTestChain initializes a new test chain from cfg. The first block is committed
// before the chain is returned.
func NewCustomTestChain(tb testing.TB, coord *Coordinator, cfg config.Config) *TestChain {
	tb.Helper()
	require.NoError(tb, cfg.Validate())

	// proofs are queried by store name, so the store is named after the commitment prefix
	storeKey := storetypes.NewKVStoreKey(cfg.CommitmentPrefix)
	commitStore := rootmulti.NewStore(dbm.NewMemDB())
	commitStore.SetPruning(storetypes.PruneNothing)
	commitStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, nil)
	require.NoError(tb, commitStore.LoadLatestVersion())

	ibcKeeper := keeper.NewKeeper(storeKey, cfg.CommitmentPrefix, cfg.Bech32Prefix)
	ibcKeeper.ClientKeeper.AddRoute(exported.Trusted, trusted.NewLightClientModule(ibcKeeper.ClientKeeper.GetStoreProvider()))
	ibcKeeper.ClientKeeper.AddRoute(exported.Localhost, localhost.NewLightClientModule(storeKey))

	mockApp := mock.NewIBCApp(MockPort)
	router := porttypes.NewRouter()
	router.AddRoute(mock.ModuleName, mock.NewIBCModule(mockApp))
	ibcKeeper.SetRouter(router)

	sender, err := bech32.ConvertAndEncode(cfg.Bech32Prefix, secp256k1.GenPrivKey().PubKey().Address())
	require.NoError(tb, err)

	chain := &TestChain{
		TB:            tb,
		Coordinator:   coord,
		ChainID:       cfg.ChainID,
		Config:        cfg,
		StoreKey:      storeKey,
		CommitStore:   commitStore,
		IBCKeeper:     ibcKeeper,
		MockApp:       mockApp,
		Logger:        log.TestingLogger(),
		SenderAccount: sender,
		CurrentHeader: tmproto.Header{
			ChainID: cfg.ChainID,
			Height:  1,
			Time:    coord.CurrentTime.UTC(),
		},
	}

	ctx := chain.GetContext()
	require.NoError(tb, ibcKeeper.ClientKeeper.SetParams(ctx, cfg.ClientParams()))
	require.NoError(tb, ibcKeeper.PortKeeper.BindPort(ctx, MockPort, mock.ModuleName))

	chain.NextBlock()

	return chain
}

// GetContext returns the current context for the application.
func (chain *TestChain) GetContext() sdk.Context {
	return sdk.NewContext(chain.CommitStore, chain.CurrentHeader, false, chain.Logger)
}

// NextBlock commits the current block and starts a new one. The header time of the new
// block is the current time of the coordinator.
func (chain *TestChain) NextBlock() {
	commitID := chain.CommitStore.Commit()

	chain.LastHeader = chain.CurrentHeader
	chain.LastHeader.Height = commitID.Version
	chain.LastAppHash = commitID.Hash

	chain.CurrentHeader = tmproto.Header{
		ChainID: chain.ChainID,
		Height:  commitID.Version + 1,
		Time:    chain.CurrentHeader.Time,
	}
}

// LastHeight returns the height of the last committed block as an IBC height.
func (chain *TestChain) LastHeight() clienttypes.Height {
	return clienttypes.NewHeight(clienttypes.ParseChainID(chain.ChainID), uint64(chain.LastHeader.Height))
}

// LastConsensusState returns the consensus state a 10-trusted client of this chain stores
// for the last committed block.
func (chain *TestChain) LastConsensusState() *trusted.ConsensusState {
	return trusted.NewConsensusState(chain.LastHeader.Time, commitmenttypes.NewMerkleRoot(chain.LastAppHash))
}

// LastTrustedHeader returns a 10-trusted header for the last committed block signed by
// signer.
func (chain *TestChain) LastTrustedHeader(signer string) *trusted.Header {
	return trusted.NewHeader(chain.LastHeight(), chain.LastHeader.Time, chain.LastAppHash, signer)
}

// QueryProof performs an abci query with the given key and returns the proto encoded merkle proof
// for the query and the height at which the proof will succeed on a tendermint verifier.
func (chain *TestChain) QueryProof(key []byte) ([]byte, clienttypes.Height) {
	return chain.QueryProofAtHeight(key, chain.LastHeader.Height)
}

// QueryProofAtHeight performs an abci query with the given key and returns the proto encoded merkle proof
// for the query and the height at which the proof will succeed against the root committed
// at that height.
func (chain *TestChain) QueryProofAtHeight(key []byte, height int64) ([]byte, clienttypes.Height) {
	res := chain.CommitStore.Query(abci.RequestQuery{
		Path:   fmt.Sprintf("/%s/key", chain.StoreKey.Name()),
		Height: height,
		Data:   key,
		Prove:  true,
	})
	require.Zero(chain.TB, res.Code, res.Log)

	merkleProof, err := commitmenttypes.ConvertProofs(res.ProofOps)
	require.NoError(chain.TB, err)

	proof, err := proto.Marshal(&merkleProof)
	require.NoError(chain.TB, err)

	revision := clienttypes.ParseChainID(chain.ChainID)
	return proof, clienttypes.NewHeight(revision, uint64(res.Height))
}

// DeliverMsg runs handler against the context of the current block and records the events
// it emits. The block is committed if the handler succeeds.
func (chain *TestChain) DeliverMsg(handler func(ctx context.Context) error) error {
	ctx := chain.GetContext()
	err := handler(sdk.WrapSDKContext(ctx))

	chain.LastEvents = ctx.EventManager().Events()
	if err != nil {
		return err
	}

	chain.NextBlock()
	chain.Coordinator.IncrementTime()
	return nil
}

// GetClientLatestHeight returns the latest height of the client with clientID.
func (chain *TestChain) GetClientLatestHeight(clientID string) clienttypes.Height {
	return chain.IBCKeeper.ClientKeeper.GetClientLatestHeight(chain.GetContext(), clientID)
}

// GetConnection retrieves an IBC Connection for the provided TestChain. The
// connection is expected to exist otherwise testing will fail.
func (chain *TestChain) GetConnection(connectionID string) connectiontypes.ConnectionEnd {
	connection, found := chain.IBCKeeper.ConnectionKeeper.GetConnection(chain.GetContext(), connectionID)
	require.True(chain.TB, found)

	return connection
}

// GetChannel retrieves an IBC Channel for the provided TestChain. The channel
// is expected to exist otherwise testing will fail.
func (chain *TestChain) GetChannel(portID, channelID string) channeltypes.Channel {
	channel, found := chain.IBCKeeper.ChannelKeeper.GetChannel(chain.GetContext(), portID, channelID)
	require.True(chain.TB, found)

	return channel
}
