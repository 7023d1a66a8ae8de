package types

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// IBC client sentinel errors
var (
	ErrClientExists                 = sdkerrors.Register(SubModuleName, 2, "light client already exists")
	ErrInvalidClient                = sdkerrors.Register(SubModuleName, 3, "light client is invalid")
	ErrClientNotFound               = sdkerrors.Register(SubModuleName, 4, "light client not found")
	ErrClientFrozen                 = sdkerrors.Register(SubModuleName, 5, "light client is frozen due to misbehaviour")
	ErrInvalidClientMetadata        = sdkerrors.Register(SubModuleName, 6, "invalid client metadata")
	ErrConsensusStateNotFound       = sdkerrors.Register(SubModuleName, 7, "consensus state not found")
	ErrInvalidConsensus             = sdkerrors.Register(SubModuleName, 8, "invalid consensus state")
	ErrClientTypeNotFound           = sdkerrors.Register(SubModuleName, 9, "client type not found")
	ErrInvalidClientType            = sdkerrors.Register(SubModuleName, 10, "invalid client type")
	ErrRootNotFound                 = sdkerrors.Register(SubModuleName, 11, "commitment root not found")
	ErrInvalidHeader                = sdkerrors.Register(SubModuleName, 12, "invalid client header")
	ErrUpdateClientFailed           = sdkerrors.Register(SubModuleName, 13, "unable to update light client")
	ErrInvalidHeight                = sdkerrors.Register(SubModuleName, 14, "invalid height")
	ErrFailedMembershipVerification = sdkerrors.Register(SubModuleName, 15, "membership verification failed")
	ErrClientNotActive              = sdkerrors.Register(SubModuleName, 16, "client state is not active")
	ErrRouteNotFound                = sdkerrors.Register(SubModuleName, 17, "light client module route not found")
	ErrClientTypeNotSupported       = sdkerrors.Register(SubModuleName, 18, "client type not supported")
	ErrInvalidParams                = sdkerrors.Register(SubModuleName, 19, "invalid client parameters")
)
