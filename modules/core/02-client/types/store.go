package types

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"

	host "github.com/cosmos/ibc-handshake/modules/core/24-host"
	"github.com/cosmos/ibc-handshake/modules/core/exported"
)

var _ exported.ClientStoreProvider = (*storeProvider)(nil)

// storeProvider implements the exported.ClientStoreProvider interface and encapsulates the IBC core store key.
type storeProvider struct {
	storeKey sdk.StoreKey
}

// NewStoreProvider creates and returns a new ClientStoreProvider.
func NewStoreProvider(storeKey sdk.StoreKey) exported.ClientStoreProvider {
	return storeProvider{
		storeKey: storeKey,
	}
}

// ClientStore returns isolated prefix store for each client so they can read/write in separate namespaces.
func (s storeProvider) ClientStore(ctx sdk.Context, clientID string) sdk.KVStore {
	clientPrefix := []byte(fmt.Sprintf("%s/%s/", host.KeyClientStorePrefix, clientID))
	return prefix.NewStore(ctx.KVStore(s.storeKey), clientPrefix)
}
