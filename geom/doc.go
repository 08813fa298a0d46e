// Package geom provides the planar primitives used by the geometry index.
//
// Points are gonum r2 vectors. Segments carry an edge's current embedding and
// Envelopes are the axis-aligned rectangles the spatial index is keyed by.
//
// # Quantization
//
// Floating-point positions produced by a layout loop drift by tiny amounts
// between frames. Equality checks therefore go through Quantize, which snaps
// a coordinate onto a 2^-gridPower grid and stores it as a Q32.32 Fixed value:
//
//	q := geom.Quantize(geom.Pt(0.30000000000000004, 1), 8)
//	q == geom.Quantize(geom.Pt(0.3, 1), 8) // true
//
// Quantized values are only ever used for comparison. The authoritative
// position is always the float64 Point.
package geom
