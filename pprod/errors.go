package pprod

import "errors"

// Both errors are contract violations and raised as panic values.
var (
	// ErrInvalidVariable signals a negative variable index.
	ErrInvalidVariable = errors.New("pprod: invalid variable index")
	// ErrDegreeOverflow signals that a product would exceed the maximum degree.
	ErrDegreeOverflow = errors.New("pprod: degree overflow")
)
