// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxScaledWeight bounds |w·scale| so that sums over O(n²) arcs of a flow or
// matching network stay far from int64 overflow.
const MaxScaledWeight int64 = 1 << 40

// ScaleToInt64 converts a float Matrix to an integer table suitable for the
// integral matching and flow networks: out[i][j] = round(m[i][j] · scale),
// rounding half away from zero in exact decimal arithmetic (no binary
// float drift such as 0.1·10 = 0.9999…).
//
// scale == 1 with integer-valued input is the identity conversion.
//
// Errors:
//   - ErrBadScale if scale <= 0 or a scaled entry exceeds MaxScaledWeight.
//   - ErrNilMatrix / ErrNaNInf from the finiteness scan.
//
// Complexity: Time O(r*c), Space O(r*c).
func ScaleToInt64(m Matrix, scale int64) ([][]int64, error) {
	if scale <= 0 {
		return nil, validatorErrorf("ScaleToInt64", ErrBadScale)
	}
	if err := ValidateFinite(m); err != nil {
		return nil, validatorErrorf("ScaleToInt64", err)
	}

	var (
		factor = decimal.NewFromInt(scale)
		limit  = decimal.NewFromInt(MaxScaledWeight)
		out    = make([][]int64, m.Rows())
		i, j   int
		v      float64
		d      decimal.Decimal
	)
	for i = 0; i < m.Rows(); i++ {
		out[i] = make([]int64, m.Cols())
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j) // shape already validated by ValidateFinite
			d = decimal.NewFromFloat(v).Mul(factor).Round(0)
			if d.Abs().GreaterThan(limit) {
				return nil, fmt.Errorf("ScaleToInt64(%d,%d)=%s: %w", i, j, d.String(), ErrBadScale)
			}
			out[i][j] = d.IntPart()
		}
	}

	return out, nil
}
