package types

// Principal is an opaque caller identity. Ownership checks compare it literally.
type Principal string

// BlockHeight is the logical clock records are stamped with.
type BlockHeight uint64

// Call is the context a single registry call executes in.
type Call struct {
	Caller Principal
	Height BlockHeight
}
