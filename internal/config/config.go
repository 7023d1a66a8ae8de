// Package config loads the host configuration of the IBC handshake core.
package config

import (
	"strings"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/spf13/viper"

	clienttypes "github.com/cosmos/ibc-handshake/modules/core/02-client/types"
)

// EnvPrefix is the prefix of the environment variables overriding configuration keys.
const EnvPrefix = "IBC"

const (
	keyChainID          = "chain_id"
	keyCommitmentPrefix = "commitment_prefix"
	keyAllowedClients   = "allowed_clients"
	keyBech32Prefix     = "bech32_prefix"
)

// Config is the host configuration.
type Config struct {
	ChainID          string   `mapstructure:"chain_id"`
	CommitmentPrefix string   `mapstructure:"commitment_prefix"`
	AllowedClients   []string `mapstructure:"allowed_clients"`
	Bech32Prefix     string   `mapstructure:"bech32_prefix"`
}

// DefaultConfig returns the default host configuration.
func DefaultConfig() Config {
	return Config{
		ChainID:          "testchain-1",
		CommitmentPrefix: "ibc",
		AllowedClients:   clienttypes.DefaultAllowedClients,
		Bech32Prefix:     "cosmos",
	}
}

// Load reads the configuration file at path, if path is not empty, and applies IBC_
// environment overrides on top of the defaults.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, sdkerrors.Wrapf(ErrReadConfig, "%s: %s", path, err)
		}
	}

	cfg := Config{
		ChainID:          v.GetString(keyChainID),
		CommitmentPrefix: v.GetString(keyCommitmentPrefix),
		AllowedClients:   v.GetStringSlice(keyAllowedClients),
		Bech32Prefix:     v.GetString(keyBech32Prefix),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault(keyChainID, cfg.ChainID)
	v.SetDefault(keyCommitmentPrefix, cfg.CommitmentPrefix)
	v.SetDefault(keyAllowedClients, cfg.AllowedClients)
	v.SetDefault(keyBech32Prefix, cfg.Bech32Prefix)
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	if strings.TrimSpace(c.ChainID) == "" {
		return sdkerrors.Wrapf(ErrInvalidConfig, "%s cannot be blank", keyChainID)
	}
	if strings.TrimSpace(c.CommitmentPrefix) == "" {
		return sdkerrors.Wrapf(ErrInvalidConfig, "%s cannot be blank", keyCommitmentPrefix)
	}
	if strings.TrimSpace(c.Bech32Prefix) == "" {
		return sdkerrors.Wrapf(ErrInvalidConfig, "%s cannot be blank", keyBech32Prefix)
	}
	if err := c.ClientParams().Validate(); err != nil {
		return sdkerrors.Wrap(ErrInvalidConfig, err.Error())
	}
	return nil
}

// ClientParams returns the 02-client parameters of the configuration.
func (c Config) ClientParams() clienttypes.Params {
	return clienttypes.NewParams(c.AllowedClients...)
}
