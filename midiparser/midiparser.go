package midiparser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"fretdiagram/theory"

	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadFile(path string) (ParsedMidi, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return ParsedMidi{}, fmt.Errorf("read midi file: %w", err)
	}
	return Parse(bytes.NewReader(dat))
}

// Parse collects the pitch class of every sounding note-on in a standard
// MIDI file. Note-ons with zero velocity are note-offs and are skipped.
func Parse(r io.Reader) (parsed ParsedMidi, e error) {
	// smf can panic on malformed input
	defer func() {
		if rec := recover(); rec != nil {
			parsed = ParsedMidi{}
			e = fmt.Errorf("parse midi file: %v", rec)
		}
	}()

	s, err := smf.ReadFrom(r)
	if err != nil {
		return ParsedMidi{}, fmt.Errorf("parse midi file: %w", err)
	}
	if s == nil {
		return ParsedMidi{}, errors.New("parse midi file: empty result")
	}

	parsed = ParsedMidi{
		PitchClasses: theory.Set{},
		NoteCounts:   map[theory.PitchClass]int{},
		Tracks:       len(s.Tracks),
	}
	for _, events := range s.Tracks {
		for _, event := range events {
			var channel, key, velocity uint8
			if !event.Message.GetNoteOn(&channel, &key, &velocity) || velocity == 0 {
				continue
			}
			pc := KeyToPitchClass(key)
			parsed.PitchClasses[pc] = struct{}{}
			parsed.NoteCounts[pc]++
			parsed.Notes++
		}
	}
	return parsed, nil
}

// KeyToPitchClass maps a MIDI key number to its pitch class (60 is C).
func KeyToPitchClass(key uint8) theory.PitchClass {
	return theory.Transpose(0, int(key))
}
