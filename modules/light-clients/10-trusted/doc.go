/*
Package trusted implements a concrete LightClientModule, ClientState, ConsensusState and
Header for a light client whose consensus states are submitted by a single configured
authority. Membership proofs are ICS-23 merkle proofs verified against the submitted roots.

Note the client identifiers are expected to be: 10-trusted-{N}.
This is validated by core IBC in the 02-client submodule.
*/
package trusted
