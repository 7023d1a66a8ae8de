/*
Package client implements the ICS 02 - Client Semantics registry
(https://github.com/cosmos/ibc/tree/main/spec/core/ics-002-client-semantics).

Light clients are created from encoded client and consensus states and addressed by a
client identifier of the form {client-type}-{N}. The client type selects the
LightClientModule registered in the Router; every client reads and writes its own prefixed
store. The Keeper also hands out LightClient capabilities bound to a single client, which
is all the channel handshake needs to verify counterparty state.
*/
package client
