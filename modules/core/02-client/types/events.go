package types

import (
	"fmt"

	ibcexported "github.com/cosmos/ibc-handshake/modules/core/exported"
)

// IBC client events
const (
	AttributeKeyClientID         = "client_id"
	AttributeKeyClientType       = "client_type"
	AttributeKeyConsensusHeight  = "consensus_height"
	AttributeKeyConsensusHeights = "consensus_heights"
)

// IBC client events vars
var (
	EventTypeCreateClient = "create_client"
	EventTypeUpdateClient = "update_client"

	AttributeValueCategory = fmt.Sprintf("%s_%s", ibcexported.ModuleName, SubModuleName)
)
