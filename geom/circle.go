package geom

// circleOctant returns the first-octant cells (x >= y >= 0) of a midpoint
// circle of the given radius, ordered from (r, 0) toward the 45° seam.
func circleOctant(r int32) [][2]int32 {
	cells := make([][2]int32, 0, r+2)
	x, y := r, int32(0)
	d := 1 - r
	for x >= y {
		cells = append(cells, [2]int32{x, y})
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
	return cells
}

// Circle returns the cells of a midpoint-circle outline around center,
// ordered clockwise (screen coordinates, y down) starting at the East point.
// The ring is closed and gap-free: consecutive cells, last-to-first
// included, differ by one unit step in one of the 8 compass directions, and
// no cell appears twice. A zero radius yields [center]; a negative radius is
// treated as its absolute value.
func Circle(center Point, radius int32) []Point {
	if radius < 0 {
		radius = -radius
	}
	if radius == 0 {
		return []Point{center}
	}

	oct := circleOctant(radius)
	k := len(oct) - 1
	ring := make([]Point, 0, 8*len(oct))
	emit := func(dx, dy int32) {
		p := center.AddXY(dx, dy)
		// Octant seams and axis points repeat; drop consecutive duplicates.
		if n := len(ring); n > 0 && ring[n-1] == p {
			return
		}
		ring = append(ring, p)
	}

	// The eight mirrors of the first octant, walked clockwise from East.
	for i := 0; i <= k; i++ {
		emit(oct[i][0], oct[i][1])
	}
	for i := k; i >= 0; i-- {
		emit(oct[i][1], oct[i][0])
	}
	for i := 0; i <= k; i++ {
		emit(-oct[i][1], oct[i][0])
	}
	for i := k; i >= 0; i-- {
		emit(-oct[i][0], oct[i][1])
	}
	for i := 0; i <= k; i++ {
		emit(-oct[i][0], -oct[i][1])
	}
	for i := k; i >= 0; i-- {
		emit(-oct[i][1], -oct[i][0])
	}
	for i := 0; i <= k; i++ {
		emit(oct[i][1], -oct[i][0])
	}
	for i := k; i >= 0; i-- {
		emit(oct[i][0], -oct[i][1])
	}

	if n := len(ring); n > 1 && ring[n-1] == ring[0] {
		ring = ring[:n-1]
	}
	return ring
}

// FilledCircle returns the disc bounded by the Circle outline, in row-major
// order from the top row down. The result is a superset of Circle for the
// same center and radius.
func FilledCircle(center Point, radius int32) []Point {
	if radius < 0 {
		radius = -radius
	}
	if radius == 0 {
		return []Point{center}
	}

	// Per-row half spans taken from the same octant raster, so the disc edge
	// matches the outline exactly.
	spans := make([]int32, radius+1)
	for _, c := range circleOctant(radius) {
		x, y := c[0], c[1]
		if spans[y] < x {
			spans[y] = x
		}
		if spans[x] < y {
			spans[x] = y
		}
	}

	var disc []Point
	for dy := -radius; dy <= radius; dy++ {
		half := spans[abs32(dy)]
		for dx := -half; dx <= half; dx++ {
			disc = append(disc, center.AddXY(dx, dy))
		}
	}
	return disc
}

func abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}
