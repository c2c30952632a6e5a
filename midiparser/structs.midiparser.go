package midiparser

import "fretdiagram/theory"

type ParsedMidi struct {
	PitchClasses theory.Set
	NoteCounts   map[theory.PitchClass]int
	Tracks       int
	Notes        int
}
