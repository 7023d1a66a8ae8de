package trusted

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

const (
	SubModuleName = "trusted-client"
)

// IBC trusted client sentinel errors
var (
	ErrInvalidChainID        = sdkerrors.Register(SubModuleName, 2, "invalid chain-id")
	ErrInvalidTrustingPeriod = sdkerrors.Register(SubModuleName, 3, "invalid trusting period")
	ErrInvalidHeaderHeight   = sdkerrors.Register(SubModuleName, 4, "invalid header height")
	ErrInvalidAuthority      = sdkerrors.Register(SubModuleName, 5, "invalid authority")
	ErrInvalidProofSpecs     = sdkerrors.Register(SubModuleName, 6, "invalid proof specs")
)
