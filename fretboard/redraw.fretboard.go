package fretboard

// NeedsRedraw reports whether a surface rendered with prev has to be redrawn
// to show next. A nil chord set and an empty one are the same value.
func NeedsRedraw(prev, next Config) bool {
	return !prev.Tuning.Equal(next.Tuning) ||
		!prev.HighlightedNotes.Equal(next.HighlightedNotes) ||
		!prev.HighlightedChords.Equal(next.HighlightedChords) ||
		prev.TotalFrets != next.TotalFrets ||
		prev.FretColor != next.FretColor ||
		prev.StringColor != next.StringColor ||
		prev.NoteColor != next.NoteColor ||
		prev.NoteTextColor != next.NoteTextColor
}
