package vec

import "errors"

var (
	// ErrInvalidArity reports constructor arguments whose component counts
	// do not sum to the vector dimension.
	ErrInvalidArity = errors.New("vec: argument lengths do not sum to the vector dimension")

	// ErrInvalidElementType reports a supplied component that is not a
	// recognized numeric scalar.
	ErrInvalidElementType = errors.New("vec: element is not a numeric scalar")

	// ErrShapeMismatch reports a binary operand whose component count is
	// neither 1 (broadcast) nor the vector dimension. Operators panic with
	// this value.
	ErrShapeMismatch = errors.New("vec: operand length must be 1 or the vector dimension")

	// ErrDegenerateVector reports a normalization request on a
	// zero-magnitude vector.
	ErrDegenerateVector = errors.New("vec: zero-magnitude vector cannot be normalized")

	// ErrUnsupportedCast reports a conversion to a scalar kind outside the
	// closed set.
	ErrUnsupportedCast = errors.New("vec: cast to an unknown scalar kind")
)
