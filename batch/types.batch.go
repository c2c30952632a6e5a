package batch

import "fretdiagram/fretboard"

type Job struct {
	Name   string
	Config fretboard.Config
	Path   string
}

type Options struct {
	Width      int
	Height     int
	Margin     float64
	Workers    int
	Background *fretboard.Color
}

const defaultWorkers = 8
