// Package geom is an integer-grid geometry kernel for tile and terminal
// games: an 8-way compass Direction with delta and vector conversions, a
// lateral (east/west) facing projection, an int32 Point with full arithmetic
// and grid-index conversion, and Bresenham line / midpoint circle tracing.
//
// All types are immutable values and every operation is deterministic and
// side-effect-free; traced paths are freshly allocated and owned by the
// caller. The package is safe for concurrent use without coordination.
package geom
