package booking

import (
	"fmt"
	"strings"
)

// GroundType is the sport category of a reservation.
type GroundType string

const (
	GroundCricket  GroundType = "cricket"
	GroundFootball GroundType = "football"
)

// IsValid returns true if the ground type is one of the known categories.
func (g GroundType) IsValid() bool {
	return g == GroundCricket || g == GroundFootball
}

// String returns the string representation of the ground type.
func (g GroundType) String() string {
	return string(g)
}

// ParseGroundType converts a string to a GroundType, matching case-insensitively.
func ParseGroundType(s string) (GroundType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(GroundCricket):
		return GroundCricket, nil
	case string(GroundFootball):
		return GroundFootball, nil
	default:
		return "", fmt.Errorf("invalid ground type: %s", s)
	}
}
