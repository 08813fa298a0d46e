// Package layout holds simple layout moves and scores that work on a
// graphgeo.Layout.
package layout

import (
	"github.com/hupe1980/graphgeo"
	"github.com/hupe1980/graphgeo/geom"
	"gonum.org/v1/gonum/spatial/r2"
)

// Rand is the random source used by Jiggle. *math/rand.Rand and
// *testutil.RNG satisfy it.
type Rand interface {
	Float64() float64
}

// Jiggle moves every node by a random drift of up to amount/2 on each axis.
// Nodes without a position are placed at a random point within amount/2 of
// the origin. Every move goes through l so the index stays synchronized.
func Jiggle(l *graphgeo.Layout, amount float64, rng Rand) error {
	drift := func() float64 { return amount * (rng.Float64() - 0.5) }

	for _, id := range l.NodeIDs() {
		var p geom.Point
		if cur, ok := l.NodePosition(id); ok {
			p = cur
		}

		if err := l.SetNodePosition(id, r2.Add(p, geom.Pt(drift(), drift()))); err != nil {
			return err
		}
	}

	return nil
}

// ChargeEnergy returns the sum of 1/d² over every pair of positioned nodes,
// where d is their Euclidean distance. Coincident nodes make it +Inf.
func ChargeEnergy(l *graphgeo.Layout) float64 {
	nodes := l.NodePositions()

	var sum float64
	for i := range nodes {
		for j := i + 1; j < len(nodes); j++ {
			d := r2.Norm(r2.Sub(nodes[i].Point, nodes[j].Point))
			sum += 1 / (d * d)
		}
	}
	return sum
}
