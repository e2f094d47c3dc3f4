// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dapfront/matrix"
)

// TestNewDense_InvalidDimensions verifies the constructor rejects empty shapes.
func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(2, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseFrom_Ragged ensures ragged rows are rejected.
func TestNewDenseFrom_Ragged(t *testing.T) {
	_, err := matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFrom(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestDense_AtSet covers bounds and the finite-only policy.
func TestDense_AtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	assert.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

// TestDense_CloneIndependent checks that Clone does not alias the buffer.
func TestDense_CloneIndependent(t *testing.T) {
	m := matrix.MustDense([][]float64{{1, 2}, {3, 4}})
	cp := m.Clone()
	require.NoError(t, cp.Set(0, 0, 9))

	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v, "source must be untouched")
	assert.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

// TestToRows round-trips a Dense into plain slices.
func TestToRows(t *testing.T) {
	rows := [][]float64{{0, 1, 2}, {3, 4, 5}}
	got, err := matrix.ToRows(matrix.MustDense(rows))
	require.NoError(t, err)
	assert.Equal(t, rows, got)

	_, err = matrix.ToRows(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestValidators exercises the shape, symmetry and sign checks.
func TestValidators(t *testing.T) {
	sq := matrix.MustDense([][]float64{{0, 5}, {5, 0}})
	rect := matrix.MustDense([][]float64{{0, 5, 1}, {5, 0, 1}})
	asym := matrix.MustDense([][]float64{{0, 5}, {4, 0}})

	assert.NoError(t, matrix.ValidateSquare(sq))
	assert.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrNonSquare)
	assert.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)

	assert.NoError(t, matrix.ValidateSymmetric(sq, 0))
	assert.ErrorIs(t, matrix.ValidateSymmetric(asym, 0.5), matrix.ErrAsymmetry)
	assert.NoError(t, matrix.ValidateSymmetric(asym, 1))
	assert.ErrorIs(t, matrix.ValidateSymmetric(sq, math.NaN()), matrix.ErrNaNInf)

	assert.ErrorIs(t, matrix.ValidateSameShape(sq, rect), matrix.ErrDimensionMismatch)
	assert.NoError(t, matrix.ValidateFinite(rect))

	assert.NoError(t, matrix.ValidateNonNegative([]int64{0, 2, 1}))
	assert.ErrorIs(t, matrix.ValidateNonNegative([]int64{0, -1}), matrix.ErrNegative)
}

// TestScaleToInt64 checks rounding and the scale guards.
func TestScaleToInt64(t *testing.T) {
	m := matrix.MustDense([][]float64{{0.1, 2.5}, {-2.5, 7}})

	got, err := matrix.ScaleToInt64(m, 1)
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{0, 3}, {-3, 7}}, got, "half rounds away from zero")

	got, err = matrix.ScaleToInt64(m, 10)
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{1, 25}, {-25, 70}}, got)

	_, err = matrix.ScaleToInt64(m, 0)
	assert.ErrorIs(t, err, matrix.ErrBadScale)

	huge := matrix.MustDense([][]float64{{1e15}})
	_, err = matrix.ScaleToInt64(huge, 1)
	assert.ErrorIs(t, err, matrix.ErrBadScale)
}
