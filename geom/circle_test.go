package geom

import "testing"

func TestCircleDegenerate(t *testing.T) {
	got := Circle(Pt(3, 4), 0)
	if !pathsEqual(got, []Point{{3, 4}}) {
		t.Errorf("Circle(r=0) = %v, want [center]", got)
	}
}

func TestCircleRadiusOne(t *testing.T) {
	got := Circle(Pt(0, 0), 1)
	want := []Point{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	if !pathsEqual(got, want) {
		t.Errorf("Circle(r=1) = %v, want %v", got, want)
	}
}

func TestCircleStartsEastClockwise(t *testing.T) {
	ring := Circle(Pt(0, 0), 5)
	if ring[0] != Pt(5, 0) {
		t.Errorf("ring starts at %v, want the East point (5, 0)", ring[0])
	}
	// Clockwise in screen coordinates: the second cell is below or level,
	// never above.
	if ring[1].Y < ring[0].Y {
		t.Errorf("ring is not clockwise: %v -> %v", ring[0], ring[1])
	}
}

func TestCircleNoDuplicates(t *testing.T) {
	for r := int32(1); r <= 12; r++ {
		ring := Circle(Pt(0, 0), r)
		seen := make(map[Point]bool, len(ring))
		for _, p := range ring {
			if seen[p] {
				t.Errorf("r=%d: duplicate cell %v", r, p)
			}
			seen[p] = true
		}
	}
}

func TestCircleClosedAndGapFree(t *testing.T) {
	for r := int32(1); r <= 12; r++ {
		ring := Circle(Pt(-2, 3), r)
		assertAdjacent(t, ring)
		// Closing step back to the start must also be a unit king move.
		first, last := ring[0], ring[len(ring)-1]
		if absDiff(first.X, last.X) > 1 || absDiff(first.Y, last.Y) > 1 {
			t.Errorf("r=%d: ring is not closed: %v .. %v", r, last, first)
		}
		if first == last {
			t.Errorf("r=%d: ring repeats its start", r)
		}
	}
}

func TestCircleOctantSymmetry(t *testing.T) {
	for r := int32(1); r <= 10; r++ {
		cells := make(map[Point]bool)
		for _, p := range Circle(Pt(0, 0), r) {
			cells[p] = true
		}
		for p := range cells {
			mirrors := []Point{
				{-p.X, p.Y}, {p.X, -p.Y}, {-p.X, -p.Y},
				{p.Y, p.X}, {-p.Y, p.X}, {p.Y, -p.X}, {-p.Y, -p.X},
			}
			for _, m := range mirrors {
				if !cells[m] {
					t.Errorf("r=%d: %v present but mirror %v missing", r, p, m)
				}
			}
		}
	}
}

func TestCircleNegativeRadius(t *testing.T) {
	if !pathsEqual(Circle(Pt(1, 1), -3), Circle(Pt(1, 1), 3)) {
		t.Error("negative radius should trace as its absolute value")
	}
}

func TestFilledCircleContainsOutline(t *testing.T) {
	for r := int32(0); r <= 8; r++ {
		disc := make(map[Point]bool)
		for _, p := range FilledCircle(Pt(4, -1), r) {
			disc[p] = true
		}
		for _, p := range Circle(Pt(4, -1), r) {
			if !disc[p] {
				t.Errorf("r=%d: outline cell %v missing from disc", r, p)
			}
		}
	}
}

func TestFilledCircleNoDuplicatesAndCentered(t *testing.T) {
	center := Pt(0, 0)
	disc := FilledCircle(center, 4)
	seen := make(map[Point]bool, len(disc))
	for _, p := range disc {
		if seen[p] {
			t.Errorf("duplicate cell %v", p)
		}
		seen[p] = true
	}
	if !seen[center] {
		t.Error("disc does not contain its center")
	}
	// Row-major order from the top row down.
	for i := 1; i < len(disc); i++ {
		if disc[i].Y < disc[i-1].Y {
			t.Errorf("rows out of order at %v -> %v", disc[i-1], disc[i])
		}
		if disc[i].Y == disc[i-1].Y && disc[i].X <= disc[i-1].X {
			t.Errorf("cells out of order at %v -> %v", disc[i-1], disc[i])
		}
	}
}
