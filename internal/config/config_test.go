package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cosmos/ibc-handshake/internal/config"
	"github.com/cosmos/ibc-handshake/modules/core/exported"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.DefaultConfig(), cfg)
	require.True(t, cfg.ClientParams().IsAllowedClient(exported.Trusted))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ibc.yaml")
	contents := []byte(`
chain_id: chainA-2
commitment_prefix: store
allowed_clients:
  - 10-trusted
bech32_prefix: osmo
`)
	require.NoError(t, os.WriteFile(path, contents, 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "chainA-2", cfg.ChainID)
	require.Equal(t, "store", cfg.CommitmentPrefix)
	require.Equal(t, []string{exported.Trusted}, cfg.AllowedClients)
	require.Equal(t, "osmo", cfg.Bech32Prefix)
	require.False(t, cfg.ClientParams().IsAllowedClient(exported.Localhost))
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("IBC_CHAIN_ID", "chainB-7")
	t.Setenv("IBC_BECH32_PREFIX", "juno")

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, "chainB-7", cfg.ChainID)
	require.Equal(t, "juno", cfg.Bech32Prefix)
	require.Equal(t, "ibc", cfg.CommitmentPrefix)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, config.ErrReadConfig)

	t.Setenv("IBC_COMMITMENT_PREFIX", " ")
	_, err = config.Load("")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name     string
		malleate func(*config.Config)
		expPass  bool
	}{
		{"default", func(*config.Config) {}, true},
		{"blank chain id", func(cfg *config.Config) { cfg.ChainID = "" }, false},
		{"blank commitment prefix", func(cfg *config.Config) { cfg.CommitmentPrefix = "" }, false},
		{"blank bech32 prefix", func(cfg *config.Config) { cfg.Bech32Prefix = "" }, false},
		{"blank allowed client", func(cfg *config.Config) { cfg.AllowedClients = []string{exported.Trusted, " "} }, false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tc.malleate(&cfg)

			err := cfg.Validate()
			if tc.expPass {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, config.ErrInvalidConfig)
			}
		})
	}
}
