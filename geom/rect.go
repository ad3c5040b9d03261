package geom

// Rect is a rectangular grid region anchored at its top-left cell.
// Width and Height are in cells, minimum 1x1 for sampling to be meaningful.
type Rect struct {
	X, Y          int32
	Width, Height int32
}

// Contains reports whether p falls inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Center returns the center cell of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// RandomPoint returns a uniformly random cell within the rectangle.
func (r Rect) RandomPoint(rng Rand) Point {
	x := r.X
	y := r.Y
	if r.Width > 1 {
		x += int32(rng.Intn(int(r.Width)))
	}
	if r.Height > 1 {
		y += int32(rng.Intn(int(r.Height)))
	}
	return Point{X: x, Y: y}
}

// DistributePoint returns the index-th cell in row-major order for even
// placement across the rectangle. Indices past the capacity fall back to a
// random cell.
func (r Rect) DistributePoint(index int, rng Rand) Point {
	capacity := int(r.Width) * int(r.Height)
	if capacity <= 1 || index >= capacity || index < 0 {
		return r.RandomPoint(rng)
	}
	return Point{
		X: r.X + int32(index%int(r.Width)),
		Y: r.Y + int32(index/int(r.Width)),
	}
}
