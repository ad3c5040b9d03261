package geom

// LineTracer steps cell by cell along the Bresenham raster of the segment
// from a to b, both endpoints included. Consecutive cells differ by one unit
// step in one of the 8 compass directions; the total cell count is
// max(|dx|,|dy|)+1. The tracer allocates nothing.
//
// Usage:
//
//	for t := NewLineTracer(a, b); t.Next(); {
//		cell := t.Pos()
//	}
type LineTracer struct {
	x, y   int64
	tx, ty int64
	sx, sy int64
	dx, dy int64
	err    int64

	started bool
	done    bool
}

// NewLineTracer creates a tracer from a to b.
func NewLineTracer(a, b Point) LineTracer {
	t := LineTracer{
		x: int64(a.X), y: int64(a.Y),
		tx: int64(b.X), ty: int64(b.Y),
		sx: 1, sy: 1,
	}
	t.dx = t.tx - t.x
	if t.dx < 0 {
		t.sx = -1
		t.dx = -t.dx
	}
	t.dy = t.ty - t.y
	if t.dy < 0 {
		t.sy = -1
		t.dy = -t.dy
	}
	t.err = t.dx - t.dy
	return t
}

// Next advances to the next cell. It returns true while a valid cell is
// available via Pos.
func (t *LineTracer) Next() bool {
	if t.done {
		return false
	}
	if !t.started {
		t.started = true
		return true
	}
	if t.x == t.tx && t.y == t.ty {
		t.done = true
		return false
	}
	e2 := 2 * t.err
	if e2 > -t.dy {
		t.err -= t.dy
		t.x += t.sx
	}
	if e2 < t.dx {
		t.err += t.dx
		t.y += t.sy
	}
	return true
}

// Pos returns the current cell.
func (t *LineTracer) Pos() Point {
	return Point{X: int32(t.x), Y: int32(t.y)}
}

// LineTo returns the ordered raster of the segment from a to b, starting at
// a and ending at b. a == b yields the single-element path [a].
//
// The raster always runs from the lexicographically smaller endpoint and is
// reversed on return when needed, so LineTo(b, a) is exactly the reverse of
// LineTo(a, b). Bresenham's error ties would otherwise break that symmetry.
func LineTo(a, b Point) []Point {
	swapped := b.X < a.X || (b.X == a.X && b.Y < a.Y)
	start, end := a, b
	if swapped {
		start, end = b, a
	}

	n := absDiff(a.X, b.X)
	if dy := absDiff(a.Y, b.Y); dy > n {
		n = dy
	}
	path := make([]Point, 0, int(n)+1)
	for t := NewLineTracer(start, end); t.Next(); {
		path = append(path, t.Pos())
	}

	if swapped {
		for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}
	}
	return path
}

// LineTo returns the raster of the segment from p to q; see the package
// function LineTo.
func (p Point) LineTo(q Point) []Point {
	return LineTo(p, q)
}
