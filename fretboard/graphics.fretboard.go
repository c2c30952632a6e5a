package fretboard

import (
	"fmt"
	"log/slog"
)

func drawFrets(s Surface, positions []float64, h float64, c Color) {
	for _, x := range positions {
		s.DrawLine(Point{x, 0}, Point{x, h}, c, fretLineWidth)
	}
}

func drawStrings(s Surface, rows []float64, w float64, c Color) {
	for _, y := range rows {
		s.DrawLine(Point{0, y}, Point{w, y}, c, stringLineWidth)
	}
}

func drawNotes(s Surface, marks []NoteMark, noteColor, textColor Color) {
	for _, m := range marks {
		s.DrawCircle(m.At, noteRadius, noteColor)
		s.DrawText(m.Note, m.At, textColor, noteLabelSize)
	}
}

func drawMarkers(s Surface, dots []Point, c Color) {
	for _, d := range dots {
		s.DrawCircle(d, markerRadius, c)
	}
}

// Render draws the fretboard described by cfg onto s: fret lines, string
// lines, highlighted notes with their labels, then the inlay markers. An
// invalid cfg is reported before anything is drawn.
func Render(s Surface, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("render fretboard: %w", err)
	}
	marks, err := Marks(cfg)
	if err != nil {
		return fmt.Errorf("render fretboard: %w", err)
	}

	w, h := s.Size()
	positions := Normalize(FretPositions(ScaleLength, cfg.TotalFrets), w)
	rows := StringRows(len(cfg.Tuning), h)
	marks = Place(marks, positions, rows)

	Logger().Debug("rendering fretboard",
		slog.String("tuning", cfg.Tuning.String()),
		slog.Int("frets", cfg.TotalFrets),
		slog.Int("marked", len(marks)),
		slog.Float64("width", w),
		slog.Float64("height", h),
	)

	drawFrets(s, positions, h, cfg.FretColor)
	drawStrings(s, rows, w, cfg.StringColor)
	drawNotes(s, marks, cfg.NoteColor, cfg.NoteTextColor)
	drawMarkers(s, Markers(positions, h, cfg.TotalFrets), getDarkerShade(cfg.FretColor))
	return nil
}
