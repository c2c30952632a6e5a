package fretboard

import (
	"errors"
	"fmt"
)

var (
	ErrTooFewStrings    = errors.New("tuning needs at least 2 strings")
	ErrInvalidFretCount = errors.New("total frets out of range")
)

// CheckFrets reports whether n frets fit in one diagram.
func CheckFrets(n int) error {
	if n < 1 || n > MaxFrets {
		return fmt.Errorf("%w: got %d, want 1..%d", ErrInvalidFretCount, n, MaxFrets)
	}
	return nil
}

func (c Config) Validate() error {
	if err := CheckFrets(c.TotalFrets); err != nil {
		return err
	}
	if len(c.Tuning) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewStrings, len(c.Tuning))
	}
	if err := c.Tuning.Validate(); err != nil {
		return fmt.Errorf("invalid tuning: %w", err)
	}
	return nil
}
