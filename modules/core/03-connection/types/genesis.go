package types

import (
	"fmt"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	host "github.com/cosmos/ibc-handshake/modules/core/24-host"
)

// GenesisState is the state of the connection submodule: the connection ends and the
// next connection sequence.
type GenesisState struct {
	Connections            []IdentifiedConnection `json:"connections" yaml:"connections"`
	NextConnectionSequence uint64                 `json:"next_connection_sequence" yaml:"next_connection_sequence"`
}

// NewGenesisState creates a GenesisState instance.
func NewGenesisState(connections []IdentifiedConnection, nextConnectionSequence uint64) GenesisState {
	return GenesisState{
		Connections:            connections,
		NextConnectionSequence: nextConnectionSequence,
	}
}

// DefaultGenesisState returns the ibc connection submodule's default genesis state.
func DefaultGenesisState() GenesisState {
	return GenesisState{
		Connections:            []IdentifiedConnection{},
		NextConnectionSequence: 0,
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	// keep track of the max sequence to ensure it is less than
	// the next sequence used in creating connection identifiers.
	var maxSequence uint64

	for i, conn := range gs.Connections {
		sequence, err := ParseConnectionSequence(conn.Id)
		if err != nil {
			return err
		}

		if sequence > maxSequence {
			maxSequence = sequence
		}

		if err := host.ConnectionIdentifierValidator(conn.Id); err != nil {
			return sdkerrors.Wrapf(err, "invalid connection index %d", i)
		}

		if err := conn.ValidateBasic(); err != nil {
			return fmt.Errorf("invalid connection %s index %d: %w", conn.Id, i, err)
		}
	}

	if len(gs.Connections) != 0 && maxSequence >= gs.NextConnectionSequence {
		return fmt.Errorf("next connection sequence %d must be greater than maximum sequence used in connection identifier %d", gs.NextConnectionSequence, maxSequence)
	}

	return nil
}
