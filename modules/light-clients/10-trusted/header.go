package trusted

import (
	"strings"
	"time"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	yaml "gopkg.in/yaml.v2"

	clienttypes "github.com/cosmos/ibc-handshake/modules/core/02-client/types"
	commitmenttypes "github.com/cosmos/ibc-handshake/modules/core/23-commitment/types"
)

// Header is the client message of the trusted client. It commits the counterparty root at
// Height and must be signed off by the authority of the client.
type Header struct {
	Height    clienttypes.Height         `protobuf:"bytes,1,opt,name=height,proto3" json:"height" yaml:"height"`
	Timestamp uint64                     `protobuf:"varint,2,opt,name=timestamp,proto3" json:"timestamp" yaml:"timestamp"`
	Root      commitmenttypes.MerkleRoot `protobuf:"bytes,3,opt,name=root,proto3" json:"root" yaml:"root"`
	Signer    string                     `protobuf:"bytes,4,opt,name=signer,proto3" json:"signer,omitempty" yaml:"signer"`
}

// NewHeader creates a new Header instance.
func NewHeader(height clienttypes.Height, timestamp time.Time, root []byte, signer string) *Header {
	return &Header{
		Height:    height,
		Timestamp: uint64(timestamp.UnixNano()),
		Root:      commitmenttypes.NewMerkleRoot(root),
		Signer:    signer,
	}
}

// ConsensusState returns the consensus state committed by the header.
func (h Header) ConsensusState() *ConsensusState {
	return &ConsensusState{
		Timestamp: h.Timestamp,
		Root:      h.Root,
	}
}

// ValidateBasic performs the stateless checks of a header.
func (h Header) ValidateBasic() error {
	if h.Height.RevisionHeight == 0 {
		return sdkerrors.Wrap(ErrInvalidHeaderHeight, "revision height cannot be zero")
	}
	if strings.TrimSpace(h.Signer) == "" {
		return sdkerrors.Wrap(ErrInvalidAuthority, "header signer cannot be empty")
	}
	return h.ConsensusState().ValidateBasic()
}

// Reset implements proto.Message.
func (h *Header) Reset() { *h = Header{} }

// String implements proto.Message.
func (h *Header) String() string {
	out, _ := yaml.Marshal(h)
	return string(out)
}

// ProtoMessage implements proto.Message.
func (*Header) ProtoMessage() {}
