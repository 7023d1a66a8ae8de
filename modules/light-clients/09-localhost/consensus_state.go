package localhost

import (
	commitmenttypes "github.com/cosmos/ibc-handshake/modules/core/23-commitment/types"
	"github.com/cosmos/ibc-handshake/modules/core/exported"
)

var _ exported.ConsensusState = (*ConsensusState)(nil)

// ConsensusState is the sentinel consensus state of the localhost client. It carries the
// block time of the host and an empty root.
type ConsensusState struct {
	Timestamp uint64
}

func (ConsensusState) ClientType() string { return exported.Localhost }

// GetRoot returns an empty root. Membership is checked against the host store.
func (ConsensusState) GetRoot() exported.Root { return commitmenttypes.MerkleRoot{} }

func (cs ConsensusState) GetTimestamp() uint64 { return cs.Timestamp }

func (ConsensusState) ValidateBasic() error { return nil }
