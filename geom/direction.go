package geom

// Direction is one of the 8 compass directions on a grid, plus Here for
// "no movement". East is the zero value and therefore the default facing.
//
// Screen coordinates: x grows east, y grows south. North is negative y.
type Direction uint8

const (
	East Direction = iota
	SouthEast
	South
	SouthWest
	West
	NorthWest
	North
	NorthEast
	Here
)

// Dir8 lists the 8 compass directions clockwise starting from East.
// The order is a contract: callers rely on it for deterministic iteration.
var Dir8 = [8]Direction{East, SouthEast, South, SouthWest, West, NorthWest, North, NorthEast}

// Dir9 is Dir8 prefixed by Here.
var Dir9 = [9]Direction{Here, East, SouthEast, South, SouthWest, West, NorthWest, North, NorthEast}

// DirectionFromDelta classifies an arbitrary delta by the sign of each
// component: (5,-100) and (1,-1) both resolve to NorthEast. It is total and
// is the canonical constructor; every other conversion routes through it.
func DirectionFromDelta(dx, dy int32) Direction {
	switch {
	case dx < 0:
		switch {
		case dy < 0:
			return NorthWest
		case dy > 0:
			return SouthWest
		default:
			return West
		}
	case dx > 0:
		switch {
		case dy < 0:
			return NorthEast
		case dy > 0:
			return SouthEast
		default:
			return East
		}
	default:
		switch {
		case dy < 0:
			return North
		case dy > 0:
			return South
		default:
			return Here
		}
	}
}

// Dx returns the unit x step of the direction: -1, 0, or 1.
func (d Direction) Dx() int32 {
	switch d {
	case NorthWest, West, SouthWest:
		return -1
	case NorthEast, East, SouthEast:
		return 1
	case North, South, Here:
		return 0
	}
	return 0
}

// Dy returns the unit y step of the direction: -1, 0, or 1.
func (d Direction) Dy() int32 {
	switch d {
	case NorthEast, North, NorthWest:
		return -1
	case SouthEast, South, SouthWest:
		return 1
	case East, West, Here:
		return 0
	}
	return 0
}

// IsHere reports whether the direction is Here.
func (d Direction) IsHere() bool {
	return d == Here
}

// IsDiagonal reports whether the direction is one of the 4 intercardinals.
func (d Direction) IsDiagonal() bool {
	switch d {
	case NorthEast, SouthEast, SouthWest, NorthWest:
		return true
	}
	return false
}

// IsDefault reports whether the direction is East, the designated default.
func (d Direction) IsDefault() bool {
	return d == East
}

// Vec returns the unit delta as a continuous vector. The components are in
// {-1, 0, 1}, so the conversion is exact.
func (d Direction) Vec() Vec2 {
	return Vec2{X: float64(d.Dx()), Y: float64(d.Dy())}
}

func (d Direction) String() string {
	switch d {
	case East:
		return "East"
	case SouthEast:
		return "SouthEast"
	case South:
		return "South"
	case SouthWest:
		return "SouthWest"
	case West:
		return "West"
	case NorthWest:
		return "NorthWest"
	case North:
		return "North"
	case NorthEast:
		return "NorthEast"
	case Here:
		return "Here"
	}
	return "Direction(invalid)"
}

// RandomDirection returns a direction drawn uniformly from Dir8.
func RandomDirection(r Rand) Direction {
	return Dir8[r.Intn(len(Dir8))]
}

// RandomDirectionOrHere returns a direction drawn uniformly from Dir9,
// Here included.
func RandomDirectionOrHere(r Rand) Direction {
	return Dir9[r.Intn(len(Dir9))]
}
