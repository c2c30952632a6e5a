package theory

import (
	"fmt"
	"strings"
)

type Tuning []PitchClass

var Tunings = map[string]Tuning{
	"standard": {"E", "A", "D", "G", "B", "E"},
	"drop-d":   {"D", "A", "D", "G", "B", "E"},
	"open-g":   {"D", "G", "D", "G", "B", "D"},
	"dadgad":   {"D", "A", "D", "G", "A", "D"},
	"bass":     {"E", "A", "D", "G"},
	"ukulele":  {"G", "C", "E", "A"},
}

var StandardTuning = Tunings["standard"]

// Validate checks every string is tuned to a canonical pitch class.
func (t Tuning) Validate() error {
	for i, n := range t {
		if _, err := Index(n); err != nil {
			return fmt.Errorf("string %d: %w", i, err)
		}
	}
	return nil
}

func (t Tuning) Equal(other Tuning) bool {
	if len(t) != len(other) {
		return false
	}
	for i := range t {
		if t[i] != other[i] {
			return false
		}
	}
	return true
}

func (t Tuning) String() string {
	return strings.Join(t, ",")
}

func LookupTuning(name string) (Tuning, error) {
	t, ok := Tunings[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown tuning preset %q", name)
	}
	res := make(Tuning, len(t))
	copy(res, t)
	return res, nil
}
