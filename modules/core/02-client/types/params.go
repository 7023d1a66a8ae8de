package types

import (
	"fmt"
	"strings"

	yaml "gopkg.in/yaml.v2"

	"github.com/cosmos/ibc-handshake/internal/collections"
	"github.com/cosmos/ibc-handshake/modules/core/exported"
)

// DefaultAllowedClients are the default clients for the AllowedClients parameter.
var DefaultAllowedClients = []string{exported.Trusted, exported.Localhost}

// Params defines the set of IBC light client parameters.
type Params struct {
	// allowed_clients defines the list of allowed client state types.
	AllowedClients []string `protobuf:"bytes,1,rep,name=allowed_clients,json=allowedClients,proto3" json:"allowed_clients" yaml:"allowed_clients"`
}

// NewParams creates a new parameter configuration for the ibc client module
func NewParams(allowedClients ...string) Params {
	return Params{
		AllowedClients: allowedClients,
	}
}

// DefaultParams is the default parameter configuration for the ibc-client module.
func DefaultParams() Params {
	return NewParams(DefaultAllowedClients...)
}

// Validate all ibc-client module parameters
func (p Params) Validate() error {
	return validateClients(p.AllowedClients)
}

// IsAllowedClient checks if the given client type is registered on the allowlist.
func (p Params) IsAllowedClient(clientType string) bool {
	return collections.Contains(clientType, p.AllowedClients)
}

// String implements the Stringer interface.
func (p Params) String() string {
	out, _ := yaml.Marshal(p)
	return string(out)
}

func (p *Params) Reset()      { *p = Params{} }
func (*Params) ProtoMessage() {}

// validateClients checks that the given clients are not blank.
func validateClients(clients []string) error {
	for i, clientType := range clients {
		if strings.TrimSpace(clientType) == "" {
			return fmt.Errorf("client type %d cannot be blank", i)
		}
	}

	return nil
}
