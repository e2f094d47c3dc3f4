// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Every message is prefixed with "matrix: " so it can be grepped across logs.
// Sentinels are wrapped with a call-site tag (fmt.Errorf("Tag: %w", ErrX));
// callers compare with errors.Is.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// or that row slices passed to NewDenseFrom are ragged.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAsymmetry signals that a matrix expected to be symmetric is not, within tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegative signals a negative value where only non-negative values are allowed.
	ErrNegative = errors.New("matrix: negative value")

	// ErrBadScale signals a non-positive scale factor or an int64 overflow after scaling.
	ErrBadScale = errors.New("matrix: invalid scale")
)
