package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/ibc-handshake/modules/core/exported"
)

// Router is a map from client type to the LightClientModule implementing it.
type Router struct {
	routes        map[string]exported.LightClientModule
	storeProvider exported.ClientStoreProvider
}

// NewRouter returns an empty Router whose modules read client state through the client
// stores carved out of the given store key.
func NewRouter(key sdk.StoreKey) *Router {
	return &Router{
		routes:        make(map[string]exported.LightClientModule),
		storeProvider: NewStoreProvider(key),
	}
}

// AddRoute adds LightClientModule for a given client type. It returns the Router
// so AddRoute calls can be linked. It panics if the client type is already registered.
func (rtr *Router) AddRoute(clientType string, module exported.LightClientModule) *Router {
	if rtr.HasRoute(clientType) {
		panic(fmt.Errorf("route %s has already been registered", clientType))
	}

	rtr.routes[clientType] = module
	return rtr
}

// HasRoute returns true if the Router has a module registered or false otherwise.
func (rtr *Router) HasRoute(clientType string) bool {
	_, ok := rtr.routes[clientType]
	return ok
}

// GetRoute returns a LightClientModule for a given client type.
func (rtr *Router) GetRoute(clientType string) (exported.LightClientModule, bool) {
	if !rtr.HasRoute(clientType) {
		return nil, false
	}
	return rtr.routes[clientType], true
}

// StoreProvider returns the client store provider shared by all routes.
func (rtr *Router) StoreProvider() exported.ClientStoreProvider {
	return rtr.storeProvider
}
