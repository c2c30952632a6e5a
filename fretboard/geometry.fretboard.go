package fretboard

import "math"

// FretPositions returns the distance of every fret from the nut for a string
// of the given scale length. Index 0 is the nut itself.
func FretPositions(scaleLength float64, totalFrets int) []float64 {
	positions := make([]float64, totalFrets+1)
	for f := 1; f <= totalFrets; f++ {
		positions[f] = scaleLength - scaleLength/math.Pow(2, float64(f)/12)
	}
	return positions
}

// Normalize scales positions so the last one lands exactly on width.
func Normalize(positions []float64, width float64) []float64 {
	res := make([]float64, len(positions))
	last := positions[len(positions)-1]
	if last == 0 {
		return res
	}
	scale := width / last
	for i, p := range positions {
		res[i] = p * scale
	}
	res[len(res)-1] = width
	return res
}

// StringRows spaces numStrings rows evenly over height. numStrings must be at
// least 2.
func StringRows(numStrings int, height float64) []float64 {
	rows := make([]float64, numStrings)
	for i := range rows {
		rows[i] = float64(i) * height / float64(numStrings-1)
	}
	return rows
}

func cellCenter(positions []float64, fret int) float64 {
	return (positions[fret-1] + positions[fret]) / 2
}
