package domain

import (
	"fmt"
	"strings"
)

// Direction is the position delta applied to the cursor after a write.
type Direction int8

const (
	Left  Direction = -1
	Stay  Direction = 0
	Right Direction = 1
)

// Delta returns the signed position change.
func (d Direction) Delta() int {
	return int(d)
}

// Apply moves a signed position.
func (d Direction) Apply(pos int) int {
	return pos + int(d)
}

// ApplyUint moves an unsigned position with wraparound:
// Left at 0 yields the maximum representable index.
func (d Direction) ApplyUint(pos uint) uint {
	switch d {
	case Left:
		return pos - 1
	case Right:
		return pos + 1
	default:
		return pos
	}
}

// Reverse returns the opposite direction. Stay is its own reverse.
func (d Direction) Reverse() Direction {
	return -d
}

// Valid reports whether d is one of Left, Stay or Right.
func (d Direction) Valid() bool {
	return d >= Left && d <= Right
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Stay:
		return "stay"
	}
	return fmt.Sprintf("Direction(%d)", int8(d))
}

// ParseDirection accepts the canonical names and the usual short forms
// (l/r/s, </>/-, ±1/0), case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l", "<", "-1":
		return Left, nil
	case "right", "r", ">", "+1", "1":
		return Right, nil
	case "stay", "s", "-", "n", "none", "0":
		return Stay, nil
	}
	return Stay, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// DirectionOf converts a signed delta into a Direction.
func DirectionOf(delta int) (Direction, error) {
	if delta < -1 || delta > 1 {
		return Stay, fmt.Errorf("%w: %d", ErrUnknownDirection, delta)
	}
	return Direction(delta), nil
}

// MarshalText encodes the canonical name, so JSON and YAML dumps read "left"/"right"/"stay".
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDirection, int8(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText decodes any form accepted by ParseDirection.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
