package spatial

import "errors"

// Domain errors for spatial algebra operations.
var (
	// ErrShape indicates a vector or matrix with the wrong dimensions.
	ErrShape = errors.New("spatial: wrong shape")

	// ErrCrossKind indicates a cross product kind outside {Motion, Force}.
	ErrCrossKind = errors.New("spatial: unknown cross product kind")

	// ErrInvalidRotation indicates a matrix that is not orthonormal with
	// unit determinant.
	ErrInvalidRotation = errors.New("spatial: not a rotation matrix")
)
