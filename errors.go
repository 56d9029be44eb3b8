package bezier3d

import "errors"

// Package errors.
var (
	// ErrInvalidArgument is returned when an axis selector is outside
	// {None, X, Y, Z}, a control point set does not hold exactly four points,
	// or a sample count is below two.
	ErrInvalidArgument = errors.New("bezier3d: invalid argument")

	// ErrNumericDegenerate is returned when a zero-length direction would
	// have to be normalized. The core never normalizes; camera movement does.
	ErrNumericDegenerate = errors.New("bezier3d: numerically degenerate input")
)
