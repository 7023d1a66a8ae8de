package types

import (
	clienttypes "github.com/cosmos/ibc-handshake/modules/core/02-client/types"
	connectiontypes "github.com/cosmos/ibc-handshake/modules/core/03-connection/types"
	channeltypes "github.com/cosmos/ibc-handshake/modules/core/04-channel/types"
)

// GenesisState defines the ibc module's genesis state.
type GenesisState struct {
	// client parameters; light client states are owned by their light client modules
	ClientParams clienttypes.Params `json:"client_params" yaml:"client_params"`
	// ICS003 - Connections genesis state
	ConnectionGenesis connectiontypes.GenesisState `json:"connection_genesis" yaml:"connection_genesis"`
	// ICS004 - Channel genesis state
	ChannelGenesis channeltypes.GenesisState `json:"channel_genesis" yaml:"channel_genesis"`
}

// DefaultGenesisState returns the ibc module's default genesis state.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		ClientParams:      clienttypes.DefaultParams(),
		ConnectionGenesis: connectiontypes.DefaultGenesisState(),
		ChannelGenesis:    channeltypes.DefaultGenesisState(),
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs *GenesisState) Validate() error {
	if err := gs.ClientParams.Validate(); err != nil {
		return err
	}

	if err := gs.ConnectionGenesis.Validate(); err != nil {
		return err
	}

	return gs.ChannelGenesis.Validate()
}
