package geom

import (
	"fmt"
	"math"
)

// Point is a grid cell: an ordered pair of signed 32-bit coordinates.
// The domain is unbounded, negative coordinates are legal. Points are plain
// values; the Assign forms mutate in place but always produce the same
// result as their binary counterpart.
type Point struct {
	X, Y int32
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int32) Point {
	return Point{X: x, Y: y}
}

// PointFromVec rounds a continuous vector to the nearest grid cell, half
// away from zero.
func PointFromVec(v Vec2) Point {
	return v.Point()
}

// PointFromIndex is the inverse of ToIndex for in-range values:
// x = index mod width, y = index div width.
func PointFromIndex(index int, width int32) Point {
	return Point{X: int32(index % int(width)), Y: int32(index / int(width))}
}

// Vec returns the point as a continuous vector.
func (p Point) Vec() Vec2 {
	return Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// IsZero reports whether the point is the origin.
func (p Point) IsZero() bool {
	return p == Point{}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// ToIndex converts the point to a row-major index in a grid of the given
// width. It reports false when x is outside [0, width) or y is negative.
// y has no upper bound here; callers bound the total cell count separately.
func (p Point) ToIndex(width int32) (int, bool) {
	if p.X < 0 || p.Y < 0 || p.X >= width {
		return 0, false
	}
	return int(p.Y)*int(width) + int(p.X), true
}

// DirectionTo returns the compass direction an observer at p faces to look
// at q, classified by the sign of the per-axis deltas.
func (p Point) DirectionTo(q Point) Direction {
	return DirectionFromDelta(q.X-p.X, q.Y-p.Y)
}

// SquareDistance returns the squared euclidean distance between p and q.
// It is integer-exact and free of sign overflow; prefer it over Distance
// when only relative order matters.
func (p Point) SquareDistance(q Point) uint64 {
	dx := uint64(absDiff(p.X, q.X))
	dy := uint64(absDiff(p.Y, q.Y))
	return dx*dx + dy*dy
}

// Distance returns the euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Sqrt(float64(p.SquareDistance(q)))
}

func absDiff(a, b int32) uint32 {
	if a < b {
		return uint32(int64(b) - int64(a))
	}
	return uint32(int64(a) - int64(b))
}

// --- Addition ---

// Add returns p + q component-wise.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// AddXY returns p translated by a raw delta.
func (p Point) AddXY(dx, dy int32) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// AddDir returns p stepped one cell in the given direction.
func (p Point) AddDir(d Direction) Point {
	return Point{X: p.X + d.Dx(), Y: p.Y + d.Dy()}
}

// AddVec returns p + v, computed in continuous space and rounded back.
func (p Point) AddVec(v Vec2) Point {
	return p.Vec().Add(v).Point()
}

// --- Subtraction ---

// Sub returns p - q component-wise.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// SubXY returns p translated by the negated raw delta.
func (p Point) SubXY(dx, dy int32) Point {
	return Point{X: p.X - dx, Y: p.Y - dy}
}

// SubDir returns p stepped one cell against the given direction.
func (p Point) SubDir(d Direction) Point {
	return Point{X: p.X - d.Dx(), Y: p.Y - d.Dy()}
}

// SubVec returns p - v, computed in continuous space and rounded back.
func (p Point) SubVec(v Vec2) Point {
	return p.Vec().Sub(v).Point()
}

// --- Multiplication ---

// Mul returns p scaled by an integer factor.
func (p Point) Mul(n int32) Point {
	return Point{X: p.X * n, Y: p.Y * n}
}

// MulXY returns p scaled component-wise by an integer pair.
func (p Point) MulXY(mx, my int32) Point {
	return Point{X: p.X * mx, Y: p.Y * my}
}

// MulPoint returns the component-wise product of p and q.
func (p Point) MulPoint(q Point) Point {
	return Point{X: p.X * q.X, Y: p.Y * q.Y}
}

// MulF returns p scaled by a float factor, rounded back to the grid.
func (p Point) MulF(f float64) Point {
	return p.Vec().Scale(f).Point()
}

// MulFXY returns p scaled component-wise by a float pair, rounded back.
func (p Point) MulFXY(fx, fy float64) Point {
	return p.Vec().Mul(Vec2{X: fx, Y: fy}).Point()
}

// MulVec returns p scaled component-wise by a vector, rounded back.
func (p Point) MulVec(v Vec2) Point {
	return p.Vec().Mul(v).Point()
}

// --- Division ---

// Div returns p divided by an integer factor. n == 0 panics: integer
// division by zero is a caller error, never clamped.
func (p Point) Div(n int32) Point {
	return Point{X: p.X / n, Y: p.Y / n}
}

// DivXY returns p divided component-wise by an integer pair.
func (p Point) DivXY(mx, my int32) Point {
	return Point{X: p.X / mx, Y: p.Y / my}
}

// DivPoint returns the component-wise quotient of p and q.
func (p Point) DivPoint(q Point) Point {
	return Point{X: p.X / q.X, Y: p.Y / q.Y}
}

// DivF returns p divided by a float factor, rounded back to the grid.
// f == 0 follows IEEE semantics through the vector path.
func (p Point) DivF(f float64) Point {
	return p.Vec().DivScale(f).Point()
}

// DivFXY returns p divided component-wise by a float pair, rounded back.
func (p Point) DivFXY(fx, fy float64) Point {
	return p.Vec().Div(Vec2{X: fx, Y: fy}).Point()
}

// DivVec returns p divided component-wise by a vector, rounded back.
func (p Point) DivVec(v Vec2) Point {
	return p.Vec().Div(v).Point()
}

// Neg returns the point with both components flipped.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// --- Compound assignment ---
//
// Each Assign form delegates to its binary counterpart, so the two can never
// diverge.

func (p *Point) AddAssign(q Point)           { *p = p.Add(q) }
func (p *Point) AddXYAssign(dx, dy int32)    { *p = p.AddXY(dx, dy) }
func (p *Point) AddDirAssign(d Direction)    { *p = p.AddDir(d) }
func (p *Point) AddVecAssign(v Vec2)         { *p = p.AddVec(v) }
func (p *Point) SubAssign(q Point)           { *p = p.Sub(q) }
func (p *Point) SubXYAssign(dx, dy int32)    { *p = p.SubXY(dx, dy) }
func (p *Point) SubDirAssign(d Direction)    { *p = p.SubDir(d) }
func (p *Point) SubVecAssign(v Vec2)         { *p = p.SubVec(v) }
func (p *Point) MulAssign(n int32)           { *p = p.Mul(n) }
func (p *Point) MulXYAssign(mx, my int32)    { *p = p.MulXY(mx, my) }
func (p *Point) MulPointAssign(q Point)      { *p = p.MulPoint(q) }
func (p *Point) MulFAssign(f float64)        { *p = p.MulF(f) }
func (p *Point) MulFXYAssign(fx, fy float64) { *p = p.MulFXY(fx, fy) }
func (p *Point) MulVecAssign(v Vec2)         { *p = p.MulVec(v) }
func (p *Point) DivAssign(n int32)           { *p = p.Div(n) }
func (p *Point) DivXYAssign(mx, my int32)    { *p = p.DivXY(mx, my) }
func (p *Point) DivPointAssign(q Point)      { *p = p.DivPoint(q) }
func (p *Point) DivFAssign(f float64)        { *p = p.DivF(f) }
func (p *Point) DivFXYAssign(fx, fy float64) { *p = p.DivFXY(fx, fy) }
func (p *Point) DivVecAssign(v Vec2)         { *p = p.DivVec(v) }
func (p *Point) NegAssign()                  { *p = p.Neg() }

// RandomPoint returns a point drawn uniformly from the cells of r using the
// injected random source.
func RandomPoint(rng Rand, r Rect) Point {
	return r.RandomPoint(rng)
}
