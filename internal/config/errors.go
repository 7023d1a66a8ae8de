package config

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

const codespace = "ibc-config"

var (
	ErrReadConfig    = sdkerrors.Register(codespace, 2, "failed to read configuration file")
	ErrInvalidConfig = sdkerrors.Register(codespace, 3, "invalid configuration")
)
