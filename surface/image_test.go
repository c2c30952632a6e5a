package surface

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"fretdiagram/fretboard"
	"fretdiagram/theory"

	"github.com/stretchr/testify/assert"
)

func channel(v uint32) float64 {
	return float64(v>>8) / 255
}

func TestImageSizeExcludesMargin(t *testing.T) {
	img := NewImage(400, 120, 20)
	w, h := img.Size()
	assert.Equal(t, 360.0, w)
	assert.Equal(t, 80.0, h)
}

func TestImageClearPaintsBackground(t *testing.T) {
	img := NewImage(50, 50, 5)
	r, g, b, _ := img.Image().At(0, 0).RGBA()
	assert.InDelta(t, PaperColor.R, channel(r), 0.01)
	assert.InDelta(t, PaperColor.G, channel(g), 0.01)
	assert.InDelta(t, PaperColor.B, channel(b), 0.01)
}

func TestRenderOntoImageDrawsMarkers(t *testing.T) {
	assert := assert.New(t)
	cfg := fretboard.NewConfig()
	cfg.HighlightedNotes = theory.NewSet("A")
	img := NewImage(1200, 300, DefaultMargin)
	assert.NoError(fretboard.Render(img, cfg))

	w, h := img.Size()
	positions := fretboard.Normalize(fretboard.FretPositions(fretboard.ScaleLength, cfg.TotalFrets), w)
	x := (positions[2]+positions[3])/2 + DefaultMargin
	y := h/2 + DefaultMargin

	r, g, b, _ := img.Image().At(int(x), int(y)).RGBA()
	// markers are drawn in a darker shade of the fret color
	want := cfg.FretColor.R * 0.8
	assert.InDelta(want, channel(r), 0.02)
	assert.InDelta(cfg.FretColor.G*0.8, channel(g), 0.02)
	assert.InDelta(cfg.FretColor.B*0.8, channel(b), 0.02)
}

func TestEncodeAndSavePNG(t *testing.T) {
	assert := assert.New(t)
	img := NewImage(200, 80, 10)
	assert.NoError(fretboard.Render(img, fretboard.NewConfig()))

	var buf bytes.Buffer
	assert.NoError(img.EncodePNG(&buf))
	decoded, err := png.Decode(&buf)
	assert.NoError(err)
	assert.Equal(200, decoded.Bounds().Dx())

	path := filepath.Join(t.TempDir(), "board.png")
	assert.NoError(img.SavePNG(path))
	info, err := os.Stat(path)
	assert.NoError(err)
	assert.NotZero(info.Size())
}

func TestFaceCachedPerSize(t *testing.T) {
	img := NewImage(100, 100, 0)
	a := img.face(12)
	b := img.face(12)
	assert.Same(t, a, b)
	assert.Len(t, img.faces, 1)
	img.face(9)
	assert.Len(t, img.faces, 2)
}

func TestSetBackgroundRepaints(t *testing.T) {
	img := NewImage(50, 50, 5)
	img.SetBackground(fretboard.Color{R: 0, G: 0, B: 1})
	r, g, b, _ := img.Image().At(49, 49).RGBA()
	assert.Equal(t, 0.0, channel(r))
	assert.Equal(t, 0.0, channel(g))
	assert.Equal(t, 1.0, channel(b))
}

func TestCheckSize(t *testing.T) {
	assert := assert.New(t)
	assert.NoError(CheckSize(1200, 300, DefaultMargin))
	assert.NoError(CheckSize(49, 49, DefaultMargin))
	assert.ErrorIs(CheckSize(10, 300, DefaultMargin), ErrImageTooSmall)
	assert.ErrorIs(CheckSize(300, 48, DefaultMargin), ErrImageTooSmall)
	assert.ErrorIs(CheckSize(0, 0, 0), ErrImageTooSmall)
}
