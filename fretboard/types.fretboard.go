package fretboard

import "fretdiagram/theory"

type Point struct {
	X float64
	Y float64
}

type Color struct {
	R float64
	G float64
	B float64
}

// Surface is the 2D drawing context a diagram is emitted onto. Coordinates
// are pixels with the origin at the top-left of the drawable area.
type Surface interface {
	DrawLine(p1, p2 Point, c Color, width float64)
	DrawCircle(center Point, radius float64, c Color)
	DrawText(text string, pos Point, c Color, size float64)
	Size() (width, height float64)
}

// Config is everything one render depends on. HighlightedChords may be nil.
type Config struct {
	Tuning            theory.Tuning
	HighlightedNotes  theory.Set
	HighlightedChords theory.Set
	TotalFrets        int

	FretColor     Color
	StringColor   Color
	NoteColor     Color
	NoteTextColor Color
}

// NoteMark is a highlighted note at a given string and fret. At is only set
// once the mark has been placed on a surface.
type NoteMark struct {
	String int
	Fret   int
	Note   theory.PitchClass
	At     Point
}
