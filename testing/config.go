package ibctesting

import (
	"time"

	connectiontypes "github.com/cosmos/ibc-handshake/modules/core/03-connection/types"
	channeltypes "github.com/cosmos/ibc-handshake/modules/core/04-channel/types"
	"github.com/cosmos/ibc-handshake/modules/core/exported"
	"github.com/cosmos/ibc-handshake/testing/mock"
)

type ClientConfig interface {
	GetClientType() string
}

// TrustedConfig configures the 10-trusted clients created by an endpoint.
type TrustedConfig struct {
	TrustingPeriod time.Duration
}

func NewTrustedConfig() *TrustedConfig {
	return &TrustedConfig{
		TrustingPeriod: TrustingPeriod,
	}
}

func (*TrustedConfig) GetClientType() string {
	return exported.Trusted
}

// LocalhostConfig configures an endpoint using the 09-localhost client of its own chain.
type LocalhostConfig struct{}

func (*LocalhostConfig) GetClientType() string {
	return exported.Localhost
}

type ConnectionConfig struct {
	DelayPeriod uint64
	Version     *connectiontypes.Version
}

func NewConnectionConfig() *ConnectionConfig {
	return &ConnectionConfig{
		DelayPeriod: DefaultDelayPeriod,
		Version:     ConnectionVersion,
	}
}

type ChannelConfig struct {
	PortID  string
	Version string
	Order   channeltypes.Order
}

func NewChannelConfig() *ChannelConfig {
	return &ChannelConfig{
		PortID:  mock.PortID,
		Version: DefaultChannelVersion,
		Order:   channeltypes.UNORDERED,
	}
}
