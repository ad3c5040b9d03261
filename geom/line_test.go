package geom

import "testing"

func pathsEqual(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func reversed(path []Point) []Point {
	out := make([]Point, len(path))
	for i, p := range path {
		out[len(path)-1-i] = p
	}
	return out
}

// Every consecutive pair must be grid-adjacent: a unit step in one of the
// 8 compass directions, never a jump and never a repeat.
func assertAdjacent(t *testing.T, path []Point) {
	t.Helper()
	for i := 1; i < len(path); i++ {
		dx := absDiff(path[i].X, path[i-1].X)
		dy := absDiff(path[i].Y, path[i-1].Y)
		if dx > 1 || dy > 1 {
			t.Errorf("gap between %v and %v", path[i-1], path[i])
		}
		if dx == 0 && dy == 0 {
			t.Errorf("duplicate consecutive cell %v", path[i])
		}
	}
}

func TestLineToDiagonal(t *testing.T) {
	got := LineTo(Pt(0, 0), Pt(5, 5))
	want := []Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 5}}
	if !pathsEqual(got, want) {
		t.Errorf("LineTo = %v, want %v", got, want)
	}
}

func TestLineToDegenerate(t *testing.T) {
	got := LineTo(Pt(3, -7), Pt(3, -7))
	if !pathsEqual(got, []Point{{3, -7}}) {
		t.Errorf("LineTo(a, a) = %v, want [a]", got)
	}
}

func TestLineToEndpoints(t *testing.T) {
	cases := [][2]Point{
		{Pt(0, 0), Pt(10, 3)},
		{Pt(-5, 2), Pt(7, -9)},
		{Pt(4, 4), Pt(4, -4)},
		{Pt(-3, 0), Pt(9, 0)},
		{Pt(2, 1), Pt(0, 8)},
	}
	for _, c := range cases {
		path := LineTo(c[0], c[1])
		if len(path) == 0 {
			t.Fatalf("LineTo(%v, %v) returned empty path", c[0], c[1])
		}
		if path[0] != c[0] || path[len(path)-1] != c[1] {
			t.Errorf("LineTo(%v, %v) runs %v..%v", c[0], c[1], path[0], path[len(path)-1])
		}
	}
}

func TestLineToReverseSymmetry(t *testing.T) {
	cases := [][2]Point{
		{Pt(0, 0), Pt(5, 5)},
		{Pt(0, 0), Pt(4, 2)}, // error tie: the case plain Bresenham gets wrong
		{Pt(0, 0), Pt(2, 4)},
		{Pt(1, 1), Pt(-7, 3)},
		{Pt(-2, -3), Pt(6, 1)},
		{Pt(0, 0), Pt(9, 0)},
		{Pt(0, 0), Pt(0, -6)},
		{Pt(3, 3), Pt(3, 3)},
	}
	for _, c := range cases {
		fwd := LineTo(c[0], c[1])
		bwd := LineTo(c[1], c[0])
		if !pathsEqual(bwd, reversed(fwd)) {
			t.Errorf("LineTo(%v, %v) = %v is not the reverse of %v", c[1], c[0], bwd, fwd)
		}
	}
}

func TestLineToAdjacencySweep(t *testing.T) {
	for dx := int32(-6); dx <= 6; dx++ {
		for dy := int32(-6); dy <= 6; dy++ {
			a := Pt(2, -1)
			b := a.AddXY(dx, dy)
			path := LineTo(a, b)
			assertAdjacent(t, path)

			major := absDiff(a.X, b.X)
			if dyAbs := absDiff(a.Y, b.Y); dyAbs > major {
				major = dyAbs
			}
			if len(path) != int(major)+1 {
				t.Errorf("LineTo(%v, %v) has %d cells, want %d", a, b, len(path), major+1)
			}
		}
	}
}

func TestLineTracerMatchesLineTo(t *testing.T) {
	a, b := Pt(-4, 7), Pt(9, -2)
	var traced []Point
	for tr := NewLineTracer(a, b); tr.Next(); {
		traced = append(traced, tr.Pos())
	}
	if traced[0] != a || traced[len(traced)-1] != b {
		t.Fatalf("tracer runs %v..%v", traced[0], traced[len(traced)-1])
	}
	assertAdjacent(t, traced)
	// Same cell set as the slice form, possibly reversed by canonicalization.
	path := LineTo(a, b)
	if !pathsEqual(traced, path) && !pathsEqual(traced, reversed(path)) {
		t.Errorf("tracer %v does not match LineTo %v", traced, path)
	}
}

func TestLineToMethodForm(t *testing.T) {
	if !pathsEqual(Pt(0, 0).LineTo(Pt(2, 2)), LineTo(Pt(0, 0), Pt(2, 2))) {
		t.Error("method and function forms disagree")
	}
}
