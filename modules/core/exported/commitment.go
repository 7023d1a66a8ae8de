package exported

// Root is the ICS-23 commitment root.
// A root is constructed from a set of key-value pairs,
// and the inclusion or non-inclusion of an arbitrary key-value pair
// can be proven with the proof.
type Root interface {
	GetHash() []byte
	Empty() bool
}

// Prefix is the ICS-23 commitment prefix.
// Prefix represents the store prefix under which the counterparty commits its IBC state.
type Prefix interface {
	Bytes() []byte
	Empty() bool
}

// Path is the ICS-23 commitment path.
// A path is the key of a storable entity, both in the local store and symbolically in the
// counterparty's merkleized state.
type Path interface {
	String() string
	Bytes() []byte
	Empty() bool
}
