package surface

import (
	"errors"
	"fmt"

	"fretdiagram/fretboard"
)

type ScreenResolution [2]int

var resolutionWide = ScreenResolution{1200, 300}
var resolutionCompact = ScreenResolution{800, 220}
var resolutionThumb = ScreenResolution{400, 120}

var Resolutions = map[string]ScreenResolution{
	"wide":    resolutionWide,
	"compact": resolutionCompact,
	"thumb":   resolutionThumb,
}

var DefaultResolution = resolutionWide

const DefaultMargin float64 = 24

var PaperColor = fretboard.Color{R: 0.98, G: 0.96, B: 0.9}

var ErrImageTooSmall = errors.New("image too small")

// CheckSize reports whether a width x height image leaves a drawable area
// once margin is taken off every side.
func CheckSize(width, height int, margin float64) error {
	if float64(width) <= 2*margin || float64(height) <= 2*margin {
		return fmt.Errorf("%w: %dx%d with a %.0fpx margin", ErrImageTooSmall, width, height, margin)
	}
	return nil
}
