// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric tables consumed by the DAP
// solvers: the cost matrix G (center × leaf) and the diversity matrix D
// (leaf × leaf).
//
// What lives here:
//
//   - Matrix  : minimal read/write interface (Rows, Cols, At, Set, Clone).
//   - Dense   : row-major implementation with bound-checked accessors and a
//     finite-only numeric policy (NaN/±Inf are rejected by Set).
//   - Validators: ValidateNotNil, ValidateSquare, ValidateSameShape,
//     ValidateSymmetric, ValidateFinite, ValidateNonNegative.
//   - ScaleToInt64: exact decimal scale-and-round of float weights into the
//     integer costs used by the matching and flow networks.
//
// Errors:
//
//	ErrInvalidDimensions  - NewDense with rows<=0 or cols<=0, ragged input.
//	ErrOutOfRange         - At/Set with indices outside the shape.
//	ErrNilMatrix          - nil Matrix passed to a validator.
//	ErrNonSquare          - square matrix required.
//	ErrDimensionMismatch  - operands disagree in shape or vector length.
//	ErrAsymmetry          - |a_ij − a_ji| above tolerance.
//	ErrNaNInf             - NaN or ±Inf where finite values are required.
//	ErrNegative           - negative entry where non-negative values are required.
//	ErrBadScale           - scale factor ≤ 0 or integer overflow after scaling.
//
// All functions are deterministic and never log; errors are sentinels wrapped
// with a call-site tag, so callers match them with errors.Is.
package matrix
