package reservation

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidStay = errors.New("end date must be after start date")

// Stay is the occupied interval of a reservation. Both ends are inclusive.
type Stay struct {
	start time.Time
	end   time.Time
}

func NewStay(start, end time.Time) (Stay, error) {
	if start.IsZero() || end.IsZero() || !end.After(start) {
		return Stay{}, ErrInvalidStay
	}
	return Stay{start: start.UTC(), end: end.UTC()}, nil
}

// StayWindow builds a Stay without validating the order of start and end.
// Availability queries use it because callers own interval well-formedness.
func StayWindow(start, end time.Time) Stay {
	return Stay{start: start.UTC(), end: end.UTC()}
}

func (s Stay) Start() time.Time { return s.start }
func (s Stay) End() time.Time   { return s.end }

// Nights counts started 24h periods, minimum one.
func (s Stay) Nights() int {
	n := int(s.end.Sub(s.start).Hours() / 24)
	if s.end.Sub(s.start) > time.Duration(n)*24*time.Hour {
		n++
	}
	if n < 1 {
		return 1
	}
	return n
}

// Overlaps applies the closed-interval rule: [s1,e1] and [s2,e2] overlap when
// s1 <= e2 and s2 <= e1. A checkout and a check-in on the same instant overlap.
func (s Stay) Overlaps(other Stay) bool {
	return !s.start.After(other.end) && !other.start.After(s.end)
}

func (s Stay) Equal(other Stay) bool {
	return s.start.Equal(other.start) && s.end.Equal(other.end)
}

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: strings.TrimSpace(value)}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
