package validate

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	host "github.com/cosmos/ibc-handshake/modules/core/24-host"
)

// PortChannel validates that portID and channelID are valid identifiers of a channel end.
func PortChannel(portID, channelID string) error {
	if err := host.PortIdentifierValidator(portID); err != nil {
		return sdkerrors.Wrap(err, "invalid port ID")
	}

	if err := host.ChannelIdentifierValidator(channelID); err != nil {
		return sdkerrors.Wrap(err, "invalid channel ID")
	}

	return nil
}
