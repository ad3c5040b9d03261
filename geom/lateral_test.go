package geom

import (
	"errors"
	"testing"
)

func TestLateralFromDirectionMapping(t *testing.T) {
	east := []Direction{NorthEast, East, SouthEast}
	for _, d := range east {
		got, err := LateralFromDirection(d)
		if err != nil {
			t.Errorf("LateralFromDirection(%v) returned error %v", d, err)
		}
		if got != LateralEast {
			t.Errorf("LateralFromDirection(%v) = %v, want East", d, got)
		}
	}

	west := []Direction{SouthWest, West, NorthWest}
	for _, d := range west {
		got, err := LateralFromDirection(d)
		if err != nil {
			t.Errorf("LateralFromDirection(%v) returned error %v", d, err)
		}
		if got != LateralWest {
			t.Errorf("LateralFromDirection(%v) = %v, want West", d, got)
		}
	}
}

func TestLateralFromDirectionRejections(t *testing.T) {
	cases := []struct {
		d    Direction
		want error
	}{
		{North, ErrLateralNorth},
		{South, ErrLateralSouth},
		{Here, ErrLateralHere},
	}
	for _, c := range cases {
		_, err := LateralFromDirection(c.d)
		if err == nil {
			t.Errorf("LateralFromDirection(%v) succeeded, want %v", c.d, c.want)
			continue
		}
		if !errors.Is(err, c.want) {
			t.Errorf("LateralFromDirection(%v) = %v, want %v", c.d, err, c.want)
		}
	}
}

func TestLateralRejectionsAreDistinct(t *testing.T) {
	errs := []error{ErrLateralNorth, ErrLateralSouth, ErrLateralHere}
	for i := range errs {
		for j := range errs {
			if i != j && errors.Is(errs[i], errs[j]) {
				t.Errorf("rejection errors %d and %d are not distinct", i, j)
			}
		}
	}
}

func TestLateralDefault(t *testing.T) {
	var l LateralDirection
	if l != LateralEast {
		t.Errorf("zero value = %v, want East", l)
	}
}
