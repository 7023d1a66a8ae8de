/*
Package connection implements the read side of ICS 03 - Connection Semantics
(https://github.com/cosmos/ibc/tree/main/spec/core/ics-003-connection-semantics).

A ConnectionEnd associates a local light client of the counterparty chain with the
counterparty's own connection end and its commitment prefix. Channels are opened on top
of OPEN connections; the connection handshake itself is performed elsewhere and its
result is written through the keeper's SetConnection or imported with InitGenesis.
*/
package connection
