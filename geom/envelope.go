package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a planar coordinate.
type Point = r2.Vec

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Envelope is an axis-aligned rectangle. Min holds the lower corner and Max
// the upper corner. A point envelope has Min == Max.
type Envelope struct {
	Min, Max Point
}

// NewEnvelope returns the envelope spanned by the two corners, in any order.
func NewEnvelope(x0, y0, x1, y1 float64) Envelope {
	return Envelope{
		Min: Pt(math.Min(x0, x1), math.Min(y0, y1)),
		Max: Pt(math.Max(x0, x1), math.Max(y0, y1)),
	}
}

// PointEnvelope returns the degenerate envelope at p.
func PointEnvelope(p Point) Envelope {
	return Envelope{Min: p, Max: p}
}

// CenteredSquare returns the square of the given side length centered on the origin.
func CenteredSquare(size float64) Envelope {
	h := size / 2
	return NewEnvelope(-h, -h, h, h)
}

// Everything returns an envelope covering the whole finite plane.
func Everything() Envelope {
	return NewEnvelope(-math.MaxFloat64, -math.MaxFloat64, math.MaxFloat64, math.MaxFloat64)
}

// Intersects reports whether e and o share at least one point. Touching
// borders count.
func (e Envelope) Intersects(o Envelope) bool {
	return e.Min.X <= o.Max.X && o.Min.X <= e.Max.X &&
		e.Min.Y <= o.Max.Y && o.Min.Y <= e.Max.Y
}

// Contains reports whether p lies inside e or on its border.
func (e Envelope) Contains(p Point) bool {
	return p.X >= e.Min.X && p.X <= e.Max.X && p.Y >= e.Min.Y && p.Y <= e.Max.Y
}

// Union returns the smallest envelope covering e and o.
func (e Envelope) Union(o Envelope) Envelope {
	return Envelope{
		Min: Pt(math.Min(e.Min.X, o.Min.X), math.Min(e.Min.Y, o.Min.Y)),
		Max: Pt(math.Max(e.Max.X, o.Max.X), math.Max(e.Max.Y, o.Max.Y)),
	}
}

// Width returns the extent along x.
func (e Envelope) Width() float64 { return e.Max.X - e.Min.X }

// Height returns the extent along y.
func (e Envelope) Height() float64 { return e.Max.Y - e.Min.Y }

// String implements fmt.Stringer.
func (e Envelope) String() string {
	return fmt.Sprintf("[%g,%g]x[%g,%g]", e.Min.X, e.Max.X, e.Min.Y, e.Max.Y)
}
