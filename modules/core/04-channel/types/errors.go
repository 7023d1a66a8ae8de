package types

import (
	"fmt"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// IBC channel sentinel errors
var (
	ErrChannelExists                   = sdkerrors.Register(SubModuleName, 2, "channel already exists")
	ErrChannelNotFound                 = sdkerrors.Register(SubModuleName, 3, "channel not found")
	ErrInvalidChannel                  = sdkerrors.Register(SubModuleName, 4, "invalid channel")
	ErrInvalidChannelState             = sdkerrors.Register(SubModuleName, 5, "invalid channel state")
	ErrInvalidChannelOrdering          = sdkerrors.Register(SubModuleName, 6, "invalid channel ordering")
	ErrInvalidCounterparty             = sdkerrors.Register(SubModuleName, 7, "invalid counterparty channel")
	ErrSequenceSendNotFound            = sdkerrors.Register(SubModuleName, 8, "sequence send not found")
	ErrSequenceReceiveNotFound         = sdkerrors.Register(SubModuleName, 9, "sequence receive not found")
	ErrSequenceAckNotFound             = sdkerrors.Register(SubModuleName, 10, "sequence acknowledgement not found")
	ErrInvalidChannelVersion           = sdkerrors.Register(SubModuleName, 11, "invalid channel version")
	ErrTooManyConnectionHops           = sdkerrors.Register(SubModuleName, 12, "too many connection hops")
	ErrInvalidChannelIdentifier        = sdkerrors.Register(SubModuleName, 13, "invalid channel identifier")
	ErrVerifyChannelFailed             = sdkerrors.Register(SubModuleName, 14, "channel verification failed")
	ErrMissingCounterparty             = sdkerrors.Register(SubModuleName, 15, "counterparty channel identifier is not set")
	ErrUndefinedConnectionCounterparty = sdkerrors.Register(SubModuleName, 16, "counterparty connection identifier is not set")
)

// VerifyChannelError reports a failed membership check of a counterparty channel end. It
// matches ErrVerifyChannelFailed and unwraps to the error returned by the light client, so
// both kinds can be asserted with errors.Is.
type VerifyChannelError struct {
	ClientID string
	Path     string
	Err      error
}

// Error implements error.
func (e *VerifyChannelError) Error() string {
	return fmt.Sprintf("%s: failed channel state verification of %s for client (%s): %s", ErrVerifyChannelFailed, e.Path, e.ClientID, e.Err)
}

// Unwrap returns the light client error.
func (e *VerifyChannelError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrVerifyChannelFailed.
func (e *VerifyChannelError) Is(target error) bool {
	return target == ErrVerifyChannelFailed
}

// Codespace returns the codespace of ErrVerifyChannelFailed.
func (e *VerifyChannelError) Codespace() string {
	return ErrVerifyChannelFailed.Codespace()
}

// ABCICode returns the code of ErrVerifyChannelFailed.
func (e *VerifyChannelError) ABCICode() uint32 {
	return ErrVerifyChannelFailed.ABCICode()
}
