package types

import (
	"strings"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/cosmos/ibc-handshake/internal/validate"
	clienttypes "github.com/cosmos/ibc-handshake/modules/core/02-client/types"
	commitmenttypes "github.com/cosmos/ibc-handshake/modules/core/23-commitment/types"
	host "github.com/cosmos/ibc-handshake/modules/core/24-host"
	ibcerrors "github.com/cosmos/ibc-handshake/modules/core/errors"
)

// MsgChannelOpenInit defines an sdk.Msg to initialize a channel handshake. It
// is called by a relayer on Chain A.
type MsgChannelOpenInit struct {
	PortId  string  `json:"port_id,omitempty" yaml:"port_id"`
	Channel Channel `json:"channel" yaml:"channel"`
	Signer  string  `json:"signer,omitempty" yaml:"signer"`
}

// MsgChannelOpenInitResponse defines the Msg/ChannelOpenInit response type.
type MsgChannelOpenInitResponse struct {
	ChannelId string `json:"channel_id,omitempty" yaml:"channel_id"`
	Version   string `json:"version,omitempty" yaml:"version"`
}

// MsgChannelOpenTry defines a msg sent by a Relayer to try to open a channel
// on Chain B.
type MsgChannelOpenTry struct {
	PortId              string             `json:"port_id,omitempty" yaml:"port_id"`
	Channel             Channel            `json:"channel" yaml:"channel"`
	CounterpartyVersion string             `json:"counterparty_version,omitempty" yaml:"counterparty_version"`
	ProofInit           []byte             `json:"proof_init,omitempty" yaml:"proof_init"`
	ProofHeight         clienttypes.Height `json:"proof_height" yaml:"proof_height"`
	Signer              string             `json:"signer,omitempty" yaml:"signer"`
}

// MsgChannelOpenTryResponse defines the Msg/ChannelOpenTry response type.
type MsgChannelOpenTryResponse struct {
	ChannelId string `json:"channel_id,omitempty" yaml:"channel_id"`
	Version   string `json:"version,omitempty" yaml:"version"`
}

// MsgChannelOpenAck defines a msg sent by a Relayer to Chain A to acknowledge
// the change of channel state to TRYOPEN on Chain B.
type MsgChannelOpenAck struct {
	PortId                string             `json:"port_id,omitempty" yaml:"port_id"`
	ChannelId             string             `json:"channel_id,omitempty" yaml:"channel_id"`
	CounterpartyChannelId string             `json:"counterparty_channel_id,omitempty" yaml:"counterparty_channel_id"`
	CounterpartyVersion   string             `json:"counterparty_version,omitempty" yaml:"counterparty_version"`
	ProofTry              []byte             `json:"proof_try,omitempty" yaml:"proof_try"`
	ProofHeight           clienttypes.Height `json:"proof_height" yaml:"proof_height"`
	Signer                string             `json:"signer,omitempty" yaml:"signer"`
}

// MsgChannelOpenAckResponse defines the Msg/ChannelOpenAck response type.
type MsgChannelOpenAckResponse struct{}

// MsgChannelOpenConfirm defines a msg sent by a Relayer to Chain B to
// acknowledge the change of channel state to OPEN on Chain A.
type MsgChannelOpenConfirm struct {
	PortId      string             `json:"port_id,omitempty" yaml:"port_id"`
	ChannelId   string             `json:"channel_id,omitempty" yaml:"channel_id"`
	ProofAck    []byte             `json:"proof_ack,omitempty" yaml:"proof_ack"`
	ProofHeight clienttypes.Height `json:"proof_height" yaml:"proof_height"`
	Signer      string             `json:"signer,omitempty" yaml:"signer"`
}

// MsgChannelOpenConfirmResponse defines the Msg/ChannelOpenConfirm response
// type.
type MsgChannelOpenConfirmResponse struct{}

// MsgChannelCloseInit defines a msg sent by a Relayer to Chain A
// to close a channel with Chain B.
type MsgChannelCloseInit struct {
	PortId    string `json:"port_id,omitempty" yaml:"port_id"`
	ChannelId string `json:"channel_id,omitempty" yaml:"channel_id"`
	Signer    string `json:"signer,omitempty" yaml:"signer"`
}

// MsgChannelCloseInitResponse defines the Msg/ChannelCloseInit response type.
type MsgChannelCloseInitResponse struct{}

// MsgChannelCloseConfirm defines a msg sent by a Relayer to Chain B
// to acknowledge the change of channel state to CLOSED on Chain A.
type MsgChannelCloseConfirm struct {
	PortId      string             `json:"port_id,omitempty" yaml:"port_id"`
	ChannelId   string             `json:"channel_id,omitempty" yaml:"channel_id"`
	ProofInit   []byte             `json:"proof_init,omitempty" yaml:"proof_init"`
	ProofHeight clienttypes.Height `json:"proof_height" yaml:"proof_height"`
	Signer      string             `json:"signer,omitempty" yaml:"signer"`
}

// MsgChannelCloseConfirmResponse defines the Msg/ChannelCloseConfirm response
// type.
type MsgChannelCloseConfirmResponse struct{}

// NewMsgChannelOpenInit creates a new MsgChannelOpenInit. It sets the counterparty channel
// identifier to be empty.
func NewMsgChannelOpenInit(
	portID, version string, channelOrder Order, connectionHops []string,
	counterpartyPortID string, signer string,
) *MsgChannelOpenInit {
	counterparty := NewCounterparty(counterpartyPortID, "")
	channel := NewChannel(INIT, channelOrder, counterparty, connectionHops, version)
	return &MsgChannelOpenInit{
		PortId:  portID,
		Channel: channel,
		Signer:  signer,
	}
}

// ValidateBasic performs stateless checks of the message.
func (msg MsgChannelOpenInit) ValidateBasic() error {
	if err := host.PortIdentifierValidator(msg.PortId); err != nil {
		return sdkerrors.Wrap(err, "invalid port ID")
	}
	if msg.Channel.State != INIT {
		return sdkerrors.Wrapf(ErrInvalidChannelState,
			"channel state must be INIT in MsgChannelOpenInit. expected: %s, got: %s",
			INIT, msg.Channel.State,
		)
	}
	if msg.Channel.Counterparty.ChannelId != "" {
		return sdkerrors.Wrap(ErrInvalidCounterparty, "counterparty channel identifier must be empty")
	}
	if err := validateSigner(msg.Signer); err != nil {
		return err
	}
	return msg.Channel.ValidateBasic()
}

// NewMsgChannelOpenTry creates a new MsgChannelOpenTry instance
func NewMsgChannelOpenTry(
	portID, version string, channelOrder Order, connectionHops []string,
	counterpartyPortID, counterpartyChannelID, counterpartyVersion string,
	initProof []byte, proofHeight clienttypes.Height, signer string,
) *MsgChannelOpenTry {
	counterparty := NewCounterparty(counterpartyPortID, counterpartyChannelID)
	channel := NewChannel(TRYOPEN, channelOrder, counterparty, connectionHops, version)
	return &MsgChannelOpenTry{
		PortId:              portID,
		Channel:             channel,
		CounterpartyVersion: counterpartyVersion,
		ProofInit:           initProof,
		ProofHeight:         proofHeight,
		Signer:              signer,
	}
}

// ValidateBasic performs stateless checks of the message.
func (msg MsgChannelOpenTry) ValidateBasic() error {
	if err := host.PortIdentifierValidator(msg.PortId); err != nil {
		return sdkerrors.Wrap(err, "invalid port ID")
	}
	if len(msg.ProofInit) == 0 {
		return sdkerrors.Wrap(commitmenttypes.ErrInvalidProof, "cannot submit an empty init proof")
	}
	if msg.Channel.State != TRYOPEN {
		return sdkerrors.Wrapf(ErrInvalidChannelState,
			"channel state must be TRYOPEN in MsgChannelOpenTry. expected: %s, got: %s",
			TRYOPEN, msg.Channel.State,
		)
	}
	// counterparty validate basic allows empty counterparty channel identifiers
	if err := host.ChannelIdentifierValidator(msg.Channel.Counterparty.ChannelId); err != nil {
		return sdkerrors.Wrap(err, "invalid counterparty channel ID")
	}
	if err := validateSigner(msg.Signer); err != nil {
		return err
	}
	return msg.Channel.ValidateBasic()
}

// NewMsgChannelOpenAck creates a new MsgChannelOpenAck instance
func NewMsgChannelOpenAck(
	portID, channelID, counterpartyChannelID string, cpv string, tryProof []byte, proofHeight clienttypes.Height,
	signer string,
) *MsgChannelOpenAck {
	return &MsgChannelOpenAck{
		PortId:                portID,
		ChannelId:             channelID,
		CounterpartyChannelId: counterpartyChannelID,
		CounterpartyVersion:   cpv,
		ProofTry:              tryProof,
		ProofHeight:           proofHeight,
		Signer:                signer,
	}
}

// ValidateBasic performs stateless checks of the message.
func (msg MsgChannelOpenAck) ValidateBasic() error {
	if err := validate.PortChannel(msg.PortId, msg.ChannelId); err != nil {
		return err
	}
	if !IsValidChannelID(msg.ChannelId) {
		return ErrInvalidChannelIdentifier
	}
	if err := host.ChannelIdentifierValidator(msg.CounterpartyChannelId); err != nil {
		return sdkerrors.Wrap(err, "invalid counterparty channel ID")
	}
	if len(msg.ProofTry) == 0 {
		return sdkerrors.Wrap(commitmenttypes.ErrInvalidProof, "cannot submit an empty try proof")
	}
	return validateSigner(msg.Signer)
}

// NewMsgChannelOpenConfirm creates a new MsgChannelOpenConfirm instance
func NewMsgChannelOpenConfirm(
	portID, channelID string, ackProof []byte, proofHeight clienttypes.Height,
	signer string,
) *MsgChannelOpenConfirm {
	return &MsgChannelOpenConfirm{
		PortId:      portID,
		ChannelId:   channelID,
		ProofAck:    ackProof,
		ProofHeight: proofHeight,
		Signer:      signer,
	}
}

// ValidateBasic performs stateless checks of the message.
func (msg MsgChannelOpenConfirm) ValidateBasic() error {
	if err := validate.PortChannel(msg.PortId, msg.ChannelId); err != nil {
		return err
	}
	if !IsValidChannelID(msg.ChannelId) {
		return ErrInvalidChannelIdentifier
	}
	if len(msg.ProofAck) == 0 {
		return sdkerrors.Wrap(commitmenttypes.ErrInvalidProof, "cannot submit an empty acknowledgement proof")
	}
	return validateSigner(msg.Signer)
}

// NewMsgChannelCloseInit creates a new MsgChannelCloseInit instance
func NewMsgChannelCloseInit(
	portID string, channelID string, signer string,
) *MsgChannelCloseInit {
	return &MsgChannelCloseInit{
		PortId:    portID,
		ChannelId: channelID,
		Signer:    signer,
	}
}

// ValidateBasic performs stateless checks of the message.
func (msg MsgChannelCloseInit) ValidateBasic() error {
	if err := validate.PortChannel(msg.PortId, msg.ChannelId); err != nil {
		return err
	}
	if !IsValidChannelID(msg.ChannelId) {
		return ErrInvalidChannelIdentifier
	}
	return validateSigner(msg.Signer)
}

// NewMsgChannelCloseConfirm creates a new MsgChannelCloseConfirm instance
func NewMsgChannelCloseConfirm(
	portID, channelID string, initProof []byte, proofHeight clienttypes.Height,
	signer string,
) *MsgChannelCloseConfirm {
	return &MsgChannelCloseConfirm{
		PortId:      portID,
		ChannelId:   channelID,
		ProofInit:   initProof,
		ProofHeight: proofHeight,
		Signer:      signer,
	}
}

// ValidateBasic performs stateless checks of the message.
func (msg MsgChannelCloseConfirm) ValidateBasic() error {
	if err := validate.PortChannel(msg.PortId, msg.ChannelId); err != nil {
		return err
	}
	if !IsValidChannelID(msg.ChannelId) {
		return ErrInvalidChannelIdentifier
	}
	if len(msg.ProofInit) == 0 {
		return sdkerrors.Wrap(commitmenttypes.ErrInvalidProof, "cannot submit an empty init proof")
	}
	return validateSigner(msg.Signer)
}

// validateSigner only rejects blank signers. Whether a signer is acceptable is a policy of
// the host and is checked by the ValidationContext.
func validateSigner(signer string) error {
	if strings.TrimSpace(signer) == "" {
		return sdkerrors.Wrap(ibcerrors.ErrInvalidAddress, "signer cannot be blank")
	}
	return nil
}
