// Package config loads diagram settings from JSON files and the environment.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"fretdiagram/fretboard"
	"fretdiagram/theory"

	"github.com/tidwall/gjson"
)

const (
	EnvTuning = "FRETDIAGRAM_TUNING"
	EnvFrets  = "FRETDIAGRAM_FRETS"
)

var ErrInvalidJSON = errors.New("invalid config json")

// Load reads a diagram description such as
//
//	{"tuning": "drop-d", "notes": ["A"], "chords": ["C", "G"], "frets": 22,
//	 "colors": {"fret": "#888888", "string": "#333333", "note": "#ff8000", "text": "#ffffff"}}
//
// on top of base. "tuning" is either a preset name or a list of notes.
func Load(path string, base fretboard.Config) (fretboard.Config, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(dat, base)
	if err != nil {
		return base, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Parse(dat []byte, base fretboard.Config) (fretboard.Config, error) {
	if !gjson.ValidBytes(dat) {
		return base, ErrInvalidJSON
	}
	cfg := base
	doc := gjson.ParseBytes(dat)

	if t := doc.Get("tuning"); t.Exists() {
		tuning, err := parseTuning(t)
		if err != nil {
			return base, err
		}
		cfg.Tuning = tuning
	}
	if n := doc.Get("notes"); n.Exists() {
		notes, err := parseNoteList(n)
		if err != nil {
			return base, fmt.Errorf("notes: %w", err)
		}
		cfg.HighlightedNotes = theory.NewSet(notes...)
	}
	if c := doc.Get("chords"); c.Exists() {
		chords, err := parseNoteList(c)
		if err != nil {
			return base, fmt.Errorf("chords: %w", err)
		}
		cfg.HighlightedChords = theory.NewSet(chords...)
	}
	if f := doc.Get("frets"); f.Exists() {
		if f.Type != gjson.Number || f.Num != math.Trunc(f.Num) {
			return base, fmt.Errorf("frets: expected a whole number, got %s", f.Raw)
		}
		if err := fretboard.CheckFrets(int(f.Num)); err != nil {
			return base, fmt.Errorf("frets: %w", err)
		}
		cfg.TotalFrets = int(f.Num)
	}

	colors := []struct {
		key string
		dst *fretboard.Color
	}{
		{"colors.fret", &cfg.FretColor},
		{"colors.string", &cfg.StringColor},
		{"colors.note", &cfg.NoteColor},
		{"colors.text", &cfg.NoteTextColor},
	}
	for _, c := range colors {
		v := doc.Get(c.key)
		if !v.Exists() {
			continue
		}
		parsed, err := fretboard.ParseColor(v.String())
		if err != nil {
			return base, err
		}
		*c.dst = parsed
	}
	return cfg, nil
}

func parseTuning(v gjson.Result) (theory.Tuning, error) {
	if v.IsArray() {
		notes, err := parseNoteList(v)
		if err != nil {
			return nil, fmt.Errorf("tuning: %w", err)
		}
		return notes, nil
	}
	return ParseTuning(v.String())
}

func parseNoteList(v gjson.Result) ([]string, error) {
	if !v.IsArray() {
		return theory.ParseNotes(v.String())
	}
	var notes []string
	for _, item := range v.Array() {
		n, err := theory.ParseNote(item.String())
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, nil
}

// ParseTuning accepts a preset name or a comma separated list of notes.
func ParseTuning(s string) (theory.Tuning, error) {
	if !strings.Contains(s, ",") {
		if t, err := theory.LookupTuning(s); err == nil {
			return t, nil
		}
	}
	notes, err := theory.ParseNotes(s)
	if err != nil {
		return nil, fmt.Errorf("tuning: %w", err)
	}
	return notes, nil
}

// ApplyEnv overrides tuning and fret count from the environment.
func ApplyEnv(cfg fretboard.Config) (fretboard.Config, error) {
	if v := os.Getenv(EnvTuning); v != "" {
		t, err := ParseTuning(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvTuning, err)
		}
		cfg.Tuning = t
	}
	if v := os.Getenv(EnvFrets); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvFrets, err)
		}
		if err := fretboard.CheckFrets(n); err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvFrets, err)
		}
		cfg.TotalFrets = n
	}
	return cfg, nil
}
