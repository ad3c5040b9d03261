package geom

import "math"

// Vec2 is a continuous 2D vector. Point arithmetic that involves floats
// detours through Vec2 and rounds back, so every float path shares one
// rounding rule (see Point).
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + w component-wise.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v - w component-wise.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the component-wise product of v and w.
func (v Vec2) Mul(w Vec2) Vec2 {
	return Vec2{X: v.X * w.X, Y: v.Y * w.Y}
}

// Div returns the component-wise quotient of v and w. Division follows IEEE
// semantics: a zero component yields Inf or NaN, never a panic.
func (v Vec2) Div(w Vec2) Vec2 {
	return Vec2{X: v.X / w.X, Y: v.Y / w.Y}
}

// Scale returns v scaled by f.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// DivScale returns v divided by f, with IEEE semantics for f == 0.
func (v Vec2) DivScale(f float64) Vec2 {
	return Vec2{X: v.X / f, Y: v.Y / f}
}

// Point rounds the vector back to a grid cell, half away from zero on each
// component.
func (v Vec2) Point() Point {
	return Point{X: roundCoord(v.X), Y: roundCoord(v.Y)}
}

// roundCoord rounds half away from zero and saturates to the int32 range.
// NaN maps to 0.
func roundCoord(f float64) int32 {
	r := math.Round(f)
	switch {
	case math.IsNaN(r):
		return 0
	case r >= math.MaxInt32:
		return math.MaxInt32
	case r <= math.MinInt32:
		return math.MinInt32
	}
	return int32(r)
}
