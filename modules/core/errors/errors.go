package errors

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/cosmos/ibc-handshake/modules/core/exported"
)

const codespace = exported.ModuleName

var (
	// ErrUnauthorized is used whenever a request without sufficient
	// authorization is handled.
	ErrUnauthorized = sdkerrors.Register(codespace, 2, "unauthorized")

	// ErrInvalidAddress is used when an address is found to be invalid.
	ErrInvalidAddress = sdkerrors.Register(codespace, 3, "invalid address")

	// ErrInvalidHeight defines an error for an invalid height
	ErrInvalidHeight = sdkerrors.Register(codespace, 4, "invalid height")

	// ErrInvalidType defines an error an invalid type.
	ErrInvalidType = sdkerrors.Register(codespace, 5, "invalid type")

	// ErrNotFound defines an error when requested entity doesn't exist in the state.
	ErrNotFound = sdkerrors.Register(codespace, 6, "not found")

	// ErrInvariantViolation is returned when a guarantee of the handshake protocol is found
	// broken at execution time, e.g. state mutated between validation and execution. It
	// signals a bug in the caller's transaction isolation or message construction, never a
	// malicious proof.
	ErrInvariantViolation = sdkerrors.Register(codespace, 7, "protocol invariant violated")

	// ErrLogic defines an internal logic error, e.g. an invariant or assertion
	// that is violated. It is a programmer error, not a user-facing error.
	ErrLogic = sdkerrors.Register(codespace, 8, "internal logic error")

	// ErrInvalidRequest defines an error where the request contains invalid data.
	ErrInvalidRequest = sdkerrors.Register(codespace, 9, "invalid request")
)
