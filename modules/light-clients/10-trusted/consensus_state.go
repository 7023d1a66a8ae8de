package trusted

import (
	"time"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	yaml "gopkg.in/yaml.v2"

	clienttypes "github.com/cosmos/ibc-handshake/modules/core/02-client/types"
	commitmenttypes "github.com/cosmos/ibc-handshake/modules/core/23-commitment/types"
	"github.com/cosmos/ibc-handshake/modules/core/exported"
)

var _ exported.ConsensusState = (*ConsensusState)(nil)

// ConsensusState is the commitment root and time of the counterparty at a height.
type ConsensusState struct {
	// Timestamp in nanoseconds since the unix epoch.
	Timestamp uint64                     `protobuf:"varint,1,opt,name=timestamp,proto3" json:"timestamp" yaml:"timestamp"`
	Root      commitmenttypes.MerkleRoot `protobuf:"bytes,2,opt,name=root,proto3" json:"root" yaml:"root"`
}

// NewConsensusState creates a new ConsensusState instance.
func NewConsensusState(timestamp time.Time, root commitmenttypes.MerkleRoot) *ConsensusState {
	return &ConsensusState{
		Timestamp: uint64(timestamp.UnixNano()),
		Root:      root,
	}
}

// ClientType returns trusted
func (ConsensusState) ClientType() string {
	return exported.Trusted
}

// GetRoot returns the commitment Root for the specific
func (cs ConsensusState) GetRoot() exported.Root {
	return cs.Root
}

// GetTimestamp returns block time in nanoseconds of the header that created consensus state
func (cs ConsensusState) GetTimestamp() uint64 {
	return cs.Timestamp
}

// GetTime returns the timestamp as a time.Time.
func (cs ConsensusState) GetTime() time.Time {
	return time.Unix(0, int64(cs.Timestamp))
}

// ValidateBasic defines a basic validation for the trusted consensus state.
func (cs ConsensusState) ValidateBasic() error {
	if cs.Root.Empty() {
		return sdkerrors.Wrap(clienttypes.ErrInvalidConsensus, "root cannot be empty")
	}
	if cs.Timestamp == 0 {
		return sdkerrors.Wrap(clienttypes.ErrInvalidConsensus, "timestamp cannot be zero")
	}
	return nil
}

// Reset implements proto.Message.
func (cs *ConsensusState) Reset() { *cs = ConsensusState{} }

// String implements proto.Message.
func (cs *ConsensusState) String() string {
	out, _ := yaml.Marshal(cs)
	return string(out)
}

// ProtoMessage implements proto.Message.
func (*ConsensusState) ProtoMessage() {}
