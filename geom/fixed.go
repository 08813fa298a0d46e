package geom

import (
	"fmt"
	"math"
)

// fracBits is the number of fractional bits of a Fixed value.
const fracBits = 32

// Fixed is a signed Q32.32 fixed-point number.
type Fixed int64

// FixedFromFloat converts f to the nearest Fixed value.
// Values outside the representable range saturate and NaN maps to zero.
func FixedFromFloat(f float64) Fixed {
	if math.IsNaN(f) {
		return 0
	}

	v := math.Round(math.Ldexp(f, fracBits))
	if v >= 0x1p63 {
		return Fixed(math.MaxInt64)
	}
	if v < -0x1p63 {
		return Fixed(math.MinInt64)
	}

	return Fixed(int64(v))
}

// Float returns f as a float64.
func (f Fixed) Float() float64 {
	return math.Ldexp(float64(f), -fracBits)
}

// String implements fmt.Stringer.
func (f Fixed) String() string {
	return fmt.Sprintf("%g", f.Float())
}

// QPoint is a quantized point.
type QPoint struct {
	X, Y Fixed
}

// Point converts q back to a float point.
func (q QPoint) Point() Point {
	return Pt(q.X.Float(), q.Y.Float())
}

// ToGrid snaps x onto the 2^-gridPower grid and returns it as Fixed.
//
// gridPower 0 snaps to integers, larger values keep more fractional bits and
// negative values give grids coarser than one unit. Grid powers above 32 are
// limited by the Fixed resolution.
func ToGrid(x float64, gridPower int) Fixed {
	return FixedFromFloat(math.Round(math.Ldexp(x, gridPower)) / math.Ldexp(1, gridPower))
}

// Quantize snaps both axes of p onto the grid.
func Quantize(p Point, gridPower int) QPoint {
	return QPoint{X: ToGrid(p.X, gridPower), Y: ToGrid(p.Y, gridPower)}
}
