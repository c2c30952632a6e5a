package fretboard

import "fretdiagram/theory"

// ScaleLength is the reference string length in millimetres used to lay out
// frets before they are scaled to the surface width.
const ScaleLength float64 = 650

const DefaultFrets = 18
const WidgetFrets = 22

// MaxFrets bounds the fret count of a single diagram.
const MaxFrets = 36

const fretLineWidth float64 = 2
const stringLineWidth float64 = 1.5
const noteRadius float64 = 10
const noteLabelSize float64 = 12
const markerRadius float64 = 5

var markerFrets = []int{3, 5, 7, 9, 12, 15, 17, 19, 21}

const doubleMarkerFret = 12

var greyColor = Color{0.55, 0.55, 0.55}
var darkColor = Color{0.2, 0.2, 0.2}
var orangeColor = Color{1, 0.5, 0}
var whiteColor = Color{1, 1, 1}

// NewConfig returns a config for standard tuning with the default colors and
// DefaultFrets frets.
func NewConfig() Config {
	tuning := make(theory.Tuning, len(theory.StandardTuning))
	copy(tuning, theory.StandardTuning)
	return Config{
		Tuning:        tuning,
		TotalFrets:    DefaultFrets,
		FretColor:     greyColor,
		StringColor:   darkColor,
		NoteColor:     orangeColor,
		NoteTextColor: whiteColor,
	}
}
