package exported

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Status represents the status of a client
type Status string

const (
	// ModuleName is the IBC module name, also used as the root of every error codespace.
	ModuleName = "ibc"

	// Localhost is the client type for a localhost client.
	Localhost string = "09-localhost"

	// LocalhostClientID is the only client identifier of the localhost client type.
	LocalhostClientID string = Localhost

	// Trusted is the client type for the ICS-23 merkle client whose consensus states are
	// submitted by a configured authority.
	Trusted string = "10-trusted"

	// Active is a status type of a client. An active client is allowed to be used.
	Active Status = "Active"

	// Frozen is a status type of a client. A frozen client is not allowed to be used.
	Frozen Status = "Frozen"

	// Expired is a status type of a client. An expired client is not allowed to be used.
	Expired Status = "Expired"

	// Unknown indicates there was an error in determining the status of a client.
	Unknown Status = "Unknown"

	// Unauthorized indicates that the client type is not registered as an allowed client type.
	Unauthorized Status = "Unauthorized"
)

// String returns the string representation of a client status.
func (s Status) String() string {
	return string(s)
}

// IsActive returns true if the client may be used for proof verification.
func (s Status) IsActive() bool {
	return s == Active
}

// LightClient is the light-client capability the channel handshake consumes. It is bound to
// a single client identifier by the host; the consensus algorithm behind it is opaque.
type LightClient interface {
	// ClientID returns the identifier this capability is bound to.
	ClientID() string

	// Status must return the status of the client. Only Active clients are allowed to verify proofs.
	Status() Status

	// ValidateProofHeight returns an error if no proof can be verified at the provided height.
	ValidateProofHeight(proofHeight Height) error

	// VerifyMembership verifies that value is committed under path in the counterparty
	// state identified by root. The proof bytes are passed through unmodified.
	VerifyMembership(prefix Prefix, proof []byte, root Root, path Path, value []byte) error
}

// LightClientModule is the per client type implementation registered with the client router.
// All methods address a client instance by its identifier.
type LightClientModule interface {
	// Initialize is called upon client creation. The encoded client and consensus states are
	// decoded, validated and stored in the client store.
	Initialize(ctx sdk.Context, clientID string, clientStateBz, consensusStateBz []byte) error

	// UpdateState verifies the encoded client message and stores the resulting consensus
	// state. The heights of the newly stored consensus states are returned.
	UpdateState(ctx sdk.Context, clientID string, clientMsgBz []byte) ([]Height, error)

	// Status must return the status of the client.
	Status(ctx sdk.Context, clientID string) Status

	// LatestHeight returns the latest height of the client. A zero value height is returned
	// if the client does not exist.
	LatestHeight(ctx sdk.Context, clientID string) Height

	// ValidateProofHeight returns an error if proofs at the given height cannot be verified.
	ValidateProofHeight(ctx sdk.Context, clientID string, proofHeight Height) error

	// ConsensusState returns the consensus state stored at the given height.
	ConsensusState(ctx sdk.Context, clientID string, height Height) (ConsensusState, bool)

	// VerifyMembership is a generic proof verification method which verifies a proof of the
	// existence of a value at the path obtained by applying prefix to path, against root.
	VerifyMembership(
		ctx sdk.Context,
		clientID string,
		prefix Prefix,
		proof []byte,
		root Root,
		path Path,
		value []byte,
	) error
}

// ClientStoreProvider provides the client-prefixed store of a client identifier.
type ClientStoreProvider interface {
	ClientStore(ctx sdk.Context, clientID string) sdk.KVStore
}

// ConsensusState is the state of the consensus process
type ConsensusState interface {
	ClientType() string // Consensus kind

	// GetRoot returns the commitment root of the consensus state,
	// which is used for key-value pair verification.
	GetRoot() Root

	// GetTimestamp returns the timestamp (in nanoseconds) of the consensus state
	GetTimestamp() uint64

	ValidateBasic() error
}

// Height is a wrapper interface over clienttypes.Height
// all clients must use the concrete implementation in types
type Height interface {
	IsZero() bool
	LT(Height) bool
	LTE(Height) bool
	EQ(Height) bool
	GT(Height) bool
	GTE(Height) bool
	GetRevisionNumber() uint64
	GetRevisionHeight() uint64
	Increment() Height
	Decrement() (Height, bool)
	String() string
}
