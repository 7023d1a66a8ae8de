package channel

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/gogo/protobuf/proto"

	clienttypes "github.com/cosmos/ibc-handshake/modules/core/02-client/types"
	connectiontypes "github.com/cosmos/ibc-handshake/modules/core/03-connection/types"
	"github.com/cosmos/ibc-handshake/modules/core/04-channel/types"
	host "github.com/cosmos/ibc-handshake/modules/core/24-host"
)

// expectedCounterpartyChannel builds the channel end the counterparty must have stored for
// the local end to advance. Only locally trusted data is used: the ordering and version of
// the local end, the local identifiers and the counterparty connection recorded on the
// local connection end.
func expectedCounterpartyChannel(
	state types.State, ordering types.Order, portID, channelID string,
	connection connectiontypes.ConnectionEnd, version string,
) (types.Channel, error) {
	counterpartyConnectionID := connection.Counterparty.ConnectionId
	if counterpartyConnectionID == "" {
		return types.Channel{}, sdkerrors.Wrapf(types.ErrUndefinedConnectionCounterparty,
			"connection with client (%s) has no counterparty connection identifier", connection.ClientId,
		)
	}

	counterparty := types.NewCounterparty(portID, channelID)
	return types.NewChannel(state, ordering, counterparty, []string{counterpartyConnectionID}, version), nil
}

// verifyChannelState verifies a proof of the channel state of the specified
// channel end, under the specified port, stored on the counterparty chain. The client of
// the connection must already be known to be active.
func verifyChannelState(
	ctx types.ValidationContext,
	connection connectiontypes.ConnectionEnd,
	proofHeight clienttypes.Height,
	proof []byte,
	portID,
	channelID string,
	expected types.Channel,
) error {
	clientID := connection.GetClientID()
	client, err := ctx.LightClient(clientID)
	if err != nil {
		return err
	}

	if err := client.ValidateProofHeight(proofHeight); err != nil {
		return err
	}

	consensusState, err := ctx.ConsensusState(host.NewClientConsensusStatePath(clientID, proofHeight))
	if err != nil {
		return err
	}

	bz, err := proto.Marshal(&expected)
	if err != nil {
		return err
	}

	path := host.NewChannelEndPath(portID, channelID)
	if err := client.VerifyMembership(
		connection.GetCounterparty().GetPrefix(),
		proof,
		consensusState.GetRoot(),
		path,
		bz,
	); err != nil {
		return &types.VerifyChannelError{ClientID: clientID, Path: path.String(), Err: err}
	}

	return nil
}

// checkClientActive returns an error carrying the observed status if the client of the
// connection cannot be used.
func checkClientActive(ctx types.ValidationContext, connection connectiontypes.ConnectionEnd) error {
	clientID := connection.GetClientID()
	client, err := ctx.LightClient(clientID)
	if err != nil {
		return err
	}

	if status := client.Status(); !status.IsActive() {
		return sdkerrors.Wrapf(clienttypes.ErrClientNotActive, "client (%s) status is %s", clientID, status)
	}
	return nil
}
