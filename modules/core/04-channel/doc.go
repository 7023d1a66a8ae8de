/*
Package channel implements the channel opening and closing handshake of ICS 04 - Channel
and Packet Semantics
(https://github.com/cosmos/ibc/tree/main/spec/core/ics-004-channel-and-packet-semantics).

Every handshake step is split in two phases. The Validate function of a step only reads
through a types.ValidationContext and runs the application's validate hook; the Execute
function of the step is invoked afterwards, with the same message, against a
types.ExecutionContext and performs the state transition, the application's execute hook
and event emission. Callers stage the writes of Execute and discard them when it fails.

Proofs of the counterparty channel end are checked by reconstructing the channel end the
counterparty is expected to hold from locally trusted data only, and asking the light client
of the connection to verify its membership at the proof height.
*/
package channel
