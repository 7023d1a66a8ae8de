package ibctesting_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	channeltypes "github.com/cosmos/ibc-handshake/modules/core/04-channel/types"
	ibctesting "github.com/cosmos/ibc-handshake/testing"
)

func TestNewTestChainEnvOverrides(t *testing.T) {
	t.Setenv("IBC_BECH32_PREFIX", "osmo")
	t.Setenv("IBC_COMMITMENT_PREFIX", "store")

	coord := ibctesting.NewCoordinator(t, 2)
	chainA := coord.GetChain(ibctesting.GetChainID(1))
	chainB := coord.GetChain(ibctesting.GetChainID(2))

	for _, chain := range []*ibctesting.TestChain{chainA, chainB} {
		require.Equal(t, "osmo", chain.Config.Bech32Prefix)
		require.True(t, strings.HasPrefix(chain.SenderAccount, "osmo1"))
		require.Equal(t, []byte("store"), chain.IBCKeeper.ConnectionKeeper.GetCommitmentPrefix().Bytes())
	}
	// the chain id always comes from the coordinator
	require.Equal(t, ibctesting.GetChainID(1), chainA.ChainID)

	// proofs against the overridden prefix still verify across the full handshake
	path := ibctesting.NewPath(chainA, chainB)
	path.Setup()
	require.Equal(t, channeltypes.OPEN, path.EndpointA.GetChannel().State)
	require.Equal(t, channeltypes.OPEN, path.EndpointB.GetChannel().State)
}
