package arithbuf

import "errors"

var (
	// ErrInvalidConfig signals an invalid buffer configuration.
	ErrInvalidConfig = errors.New("arithbuf: invalid configuration")
	// ErrCapacity signals that growing the node arena would exceed the hard
	// capacity bound. It is raised as a panic value: the buffer is unusable
	// afterwards and no partial-result recovery is defined.
	ErrCapacity = errors.New("arithbuf: node arena capacity exceeded")
	// ErrInvariant signals a violated structural invariant, reported by Check.
	ErrInvariant = errors.New("arithbuf: invariant violation")
)
