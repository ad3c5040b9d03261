package geom

import "errors"

// LateralDirection is an east/west facing derived from a Direction by
// discarding the vertical component. Used for sprite flipping and simple AI
// facing. LateralEast is the zero value and the default.
type LateralDirection uint8

const (
	LateralEast LateralDirection = iota
	LateralWest
)

// Conversion rejections, one per ambiguous source so callers can branch:
// Here typically means "keep previous facing" while North/South mean
// "ambiguous, pick a default".
var (
	ErrLateralNorth = errors.New("geom: north has no lateral direction")
	ErrLateralSouth = errors.New("geom: south has no lateral direction")
	ErrLateralHere  = errors.New("geom: here has no lateral direction")
)

// LateralFromDirection projects a Direction onto the east/west axis.
// East-leaning directions (NE, E, SE) map to LateralEast, west-leaning
// (SW, W, NW) to LateralWest. North, South and Here are rejected with their
// own sentinel error, never silently mapped.
func LateralFromDirection(d Direction) (LateralDirection, error) {
	switch d {
	case NorthEast, East, SouthEast:
		return LateralEast, nil
	case SouthWest, West, NorthWest:
		return LateralWest, nil
	case North:
		return LateralEast, ErrLateralNorth
	case South:
		return LateralEast, ErrLateralSouth
	case Here:
		return LateralEast, ErrLateralHere
	}
	return LateralEast, ErrLateralHere
}

func (l LateralDirection) String() string {
	if l == LateralWest {
		return "West"
	}
	return "East"
}
