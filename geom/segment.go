package geom

import (
	"fmt"
	"math"
	"math/big"

	"gonum.org/v1/gonum/spatial/r2"
)

// Segment is the straight-line embedding of an edge.
type Segment struct {
	Start, End Point
}

// Seg returns the segment from start to end.
func Seg(start, end Point) Segment {
	return Segment{Start: start, End: end}
}

// Envelope returns the bounding box of both endpoints.
func (s Segment) Envelope() Envelope {
	return NewEnvelope(s.Start.X, s.Start.Y, s.End.X, s.End.Y)
}

// Quantized returns both endpoints snapped to the grid.
func (s Segment) Quantized(gridPower int) (QPoint, QPoint) {
	return Quantize(s.Start, gridPower), Quantize(s.End, gridPower)
}

// ToGrid returns s with both endpoints moved onto the grid.
func (s Segment) ToGrid(gridPower int) Segment {
	a, b := s.Quantized(gridPower)
	return Segment{Start: a.Point(), End: b.Point()}
}

// Reverse returns s with its endpoints swapped.
func (s Segment) Reverse() Segment {
	return Segment{Start: s.End, End: s.Start}
}

// Length returns the euclidean length of s.
func (s Segment) Length() float64 {
	return r2.Norm(r2.Sub(s.End, s.Start))
}

// EqualAt reports whether s and o describe the same physical segment once
// quantized at gridPower. Direction is ignored: (a,b) equals (b,a).
func (s Segment) EqualAt(o Segment, gridPower int) bool {
	sa, sb := s.Quantized(gridPower)
	oa, ob := o.Quantized(gridPower)
	return (sa == oa && sb == ob) || (sa == ob && sb == oa)
}

// Equal is EqualAt with grid power 0.
func (s Segment) Equal(o Segment) bool {
	return s.EqualAt(o, 0)
}

// Intersects reports whether the closed segments s and o share a point.
// Touching endpoints and collinear overlaps count as intersections.
func (s Segment) Intersects(o Segment) bool {
	p1, q1 := s.Start, s.End
	p2, q2 := o.Start, o.End

	if !s.Envelope().Intersects(o.Envelope()) {
		return false
	}

	o1 := Orient(p1, q1, p2)
	o2 := Orient(p1, q1, q2)
	o3 := Orient(p2, q2, p1)
	o4 := Orient(p2, q2, q1)

	if o1*o2 < 0 && o3*o4 < 0 {
		return true
	}

	switch {
	case o1 == 0 && onSegment(p1, q1, p2):
		return true
	case o2 == 0 && onSegment(p1, q1, q2):
		return true
	case o3 == 0 && onSegment(p2, q2, p1):
		return true
	case o4 == 0 && onSegment(p2, q2, q1):
		return true
	}

	return false
}

// String implements fmt.Stringer.
func (s Segment) String() string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", s.Start.X, s.Start.Y, s.End.X, s.End.Y)
}

// onSegment reports whether r, known to be collinear with p and q, lies
// within their bounding box.
func onSegment(p, q, r Point) bool {
	return r.X >= math.Min(p.X, q.X) && r.X <= math.Max(p.X, q.X) &&
		r.Y >= math.Min(p.Y, q.Y) && r.Y <= math.Max(p.Y, q.Y)
}

// orientErrBound bounds the rounding error of the float evaluation in Orient
// relative to the magnitude of its two products (Shewchuk's ccwerrboundA).
const orientErrBound = (3 + 16*0x1p-53) * 0x1p-53

// Orient returns +1 if c lies to the left of the directed line a→b, -1 if it
// lies to the right and 0 if the three points are collinear. The sign is
// exact: when the float estimate is too close to zero to trust, the
// determinant is recomputed with rational arithmetic.
func Orient(a, b, c Point) int {
	detLeft := (a.X - c.X) * (b.Y - c.Y)
	detRight := (a.Y - c.Y) * (b.X - c.X)
	det := detLeft - detRight

	bound := orientErrBound * (math.Abs(detLeft) + math.Abs(detRight))
	switch {
	case det > bound:
		return 1
	case det < -bound:
		return -1
	}

	return orientExact(a, b, c)
}

func orientExact(a, b, c Point) int {
	rat := func(f float64) *big.Rat {
		r := new(big.Rat).SetFloat64(f)
		if r == nil {
			// Non-finite input. Treated as zero so the predicate stays total.
			return new(big.Rat)
		}
		return r
	}

	ax, ay := rat(a.X), rat(a.Y)
	bx, by := rat(b.X), rat(b.Y)
	cx, cy := rat(c.X), rat(c.Y)

	l := new(big.Rat).Mul(new(big.Rat).Sub(ax, cx), new(big.Rat).Sub(by, cy))
	r := new(big.Rat).Mul(new(big.Rat).Sub(ay, cy), new(big.Rat).Sub(bx, cx))

	return l.Cmp(r)
}
