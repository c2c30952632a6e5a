package fretboard

// Markers returns the inlay dot centres for every conventional marker fret
// that fits on the board. The twelfth fret gets two dots.
func Markers(positions []float64, height float64, totalFrets int) []Point {
	var dots []Point
	for _, fret := range markerFrets {
		if fret > totalFrets || fret >= len(positions) {
			continue
		}
		x := cellCenter(positions, fret)
		if fret == doubleMarkerFret {
			dots = append(dots, Point{X: x, Y: height * 0.3}, Point{X: x, Y: height * 0.7})
			continue
		}
		dots = append(dots, Point{X: x, Y: height / 2})
	}
	return dots
}
