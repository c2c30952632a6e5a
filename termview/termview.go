// Package termview draws a fretboard as text for terminals.
package termview

import (
	"fmt"
	"io"
	"strings"

	"fretdiagram/fretboard"

	"github.com/charmbracelet/lipgloss"
)

const cellWidth = 4
const labelWidth = 3

var markerFrets = map[int]string{3: "*", 5: "*", 7: "*", 9: "*", 12: "**", 15: "*", 17: "*", 19: "*", 21: "*"}

type styles struct {
	label lipgloss.Style
	fret  lipgloss.Style
	str   lipgloss.Style
	note  lipgloss.Style
	muted lipgloss.Style
}

func newStyles(r *lipgloss.Renderer, cfg fretboard.Config) styles {
	return styles{
		label: r.NewStyle().Bold(true),
		fret:  r.NewStyle().Foreground(lipgloss.Color(cfg.FretColor.Hex())),
		str:   r.NewStyle().Foreground(lipgloss.Color(cfg.StringColor.Hex())),
		note: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(cfg.NoteTextColor.Hex())).
			Background(lipgloss.Color(cfg.NoteColor.Hex())),
		muted: r.NewStyle().Faint(true),
	}
}

// padCell centres s in a cell of width w, filling the rest with fill.
func padCell(s string, w int, fill string) string {
	if len(s) >= w {
		return s
	}
	left := (w - len(s)) / 2
	right := w - len(s) - left
	return strings.Repeat(fill, left) + s + strings.Repeat(fill, right)
}

// Render writes cfg as a text diagram to w. Colors are only emitted when w
// is a terminal that supports them.
func Render(w io.Writer, cfg fretboard.Config) error {
	out, err := String(lipgloss.NewRenderer(w), cfg)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// String builds the diagram using r for styling.
func String(r *lipgloss.Renderer, cfg fretboard.Config) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", fmt.Errorf("render text fretboard: %w", err)
	}
	marks, err := fretboard.Marks(cfg)
	if err != nil {
		return "", fmt.Errorf("render text fretboard: %w", err)
	}
	marked := make(map[[2]int]string, len(marks))
	for _, m := range marks {
		marked[[2]int{m.String, m.Fret}] = m.Note
	}

	st := newStyles(r, cfg)
	var b strings.Builder

	b.WriteString(strings.Repeat(" ", labelWidth+2))
	for fret := 1; fret <= cfg.TotalFrets; fret++ {
		b.WriteString(st.muted.Render(padCell(fmt.Sprint(fret), cellWidth, " ")))
		b.WriteString(" ")
	}
	b.WriteString("\n")

	for s, open := range cfg.Tuning {
		b.WriteString(st.label.Render(fmt.Sprintf("%-*s", labelWidth, open)))
		b.WriteString(st.fret.Render("||"))
		for fret := 1; fret <= cfg.TotalFrets; fret++ {
			if note, ok := marked[[2]int{s, fret}]; ok {
				b.WriteString(st.note.Render(padCell(note, cellWidth, "-")))
			} else {
				b.WriteString(st.str.Render(strings.Repeat("-", cellWidth)))
			}
			b.WriteString(st.fret.Render("|"))
		}
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat(" ", labelWidth+2))
	for fret := 1; fret <= cfg.TotalFrets; fret++ {
		b.WriteString(st.fret.Render(padCell(markerFrets[fret], cellWidth, " ")))
		b.WriteString(" ")
	}
	b.WriteString("\n")
	return b.String(), nil
}
