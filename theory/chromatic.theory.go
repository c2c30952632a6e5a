package theory

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownPitchClass = errors.New("unknown pitch class")

type PitchClass = string

var chromatic = [12]PitchClass{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var chromaticIndex = func() map[PitchClass]int {
	m := make(map[PitchClass]int, len(chromatic))
	for i, n := range chromatic {
		m[n] = i
	}
	return m
}()

var flatAliases = map[string]PitchClass{
	"DB": "C#",
	"EB": "D#",
	"GB": "F#",
	"AB": "G#",
	"BB": "A#",
	"CB": "B",
	"FB": "E",
	"E#": "F",
	"B#": "C",
}

// Index returns the position of name in the chromatic scale.
func Index(name string) (int, error) {
	i, ok := chromaticIndex[name]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrUnknownPitchClass, name)
	}
	return i, nil
}

func IsPitchClass(name string) bool {
	_, ok := chromaticIndex[name]
	return ok
}

// Transpose moves index by semitones, wrapping mod 12.
func Transpose(index, semitones int) PitchClass {
	return chromatic[((index+semitones)%12+12)%12]
}

// ParseNote accepts loose user input ("bb", " f# ", "Eb") and returns the
// canonical sharp-based name.
func ParseNote(s string) (PitchClass, error) {
	up := strings.ToUpper(strings.TrimSpace(s))
	if up == "" {
		return "", fmt.Errorf("%w: empty name", ErrUnknownPitchClass)
	}
	if alias, ok := flatAliases[up]; ok {
		return alias, nil
	}
	if IsPitchClass(up) {
		return up, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPitchClass, s)
}

// ParseNotes splits a comma separated list and parses every entry.
func ParseNotes(s string) ([]PitchClass, error) {
	var notes []PitchClass
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		n, err := ParseNote(part)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, nil
}
