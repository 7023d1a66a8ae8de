/*
This file contains the variables, constants, and default values
used in the testing package and commonly defined in tests.
*/
package ibctesting

import (
	"time"

	connectiontypes "github.com/cosmos/ibc-handshake/modules/core/03-connection/types"
	"github.com/cosmos/ibc-handshake/testing/mock"
)

const (
	FirstChannelID    = "channel-0"
	FirstConnectionID = "connection-0"

	// Default params constants used to create a trusted client
	TrustingPeriod time.Duration = time.Hour * 24 * 7 * 2

	DefaultDelayPeriod uint64 = 0

	DefaultChannelVersion = mock.Version

	// Application Ports
	MockPort = mock.ModuleName
)

var (
	// ConnectionVersion is the version used by test connection ends.
	ConnectionVersion = connectiontypes.DefaultIBCVersion

	// MockCommitmentProof is a proof which is not a valid merkle proof.
	MockCommitmentProof = []byte("mock commitment proof")
)
