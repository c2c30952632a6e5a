package fretboard

import (
	"fmt"

	"fretdiagram/theory"
)

// Marks lists every fretted note (frets 1..TotalFrets) that is either a
// highlighted note or a tone of one of the highlighted chords. Open strings
// are never marked. Marks are ordered by string, then fret.
func Marks(cfg Config) ([]NoteMark, error) {
	wanted := cfg.HighlightedNotes.Union(theory.ChordTones(cfg.HighlightedChords))

	var marks []NoteMark
	for s, open := range cfg.Tuning {
		openIndex, err := theory.Index(open)
		if err != nil {
			return nil, fmt.Errorf("string %d: %w", s, err)
		}
		for fret := 1; fret <= cfg.TotalFrets; fret++ {
			note := theory.Transpose(openIndex, fret)
			if !wanted.Has(note) {
				continue
			}
			marks = append(marks, NoteMark{String: s, Fret: fret, Note: note})
		}
	}
	return marks, nil
}

// Place sets the drawing position of every mark: the middle of its fret cell
// on its string's row.
func Place(marks []NoteMark, positions, rows []float64) []NoteMark {
	placed := make([]NoteMark, len(marks))
	for i, m := range marks {
		m.At = Point{X: cellCenter(positions, m.Fret), Y: rows[m.String]}
		placed[i] = m
	}
	return placed
}
