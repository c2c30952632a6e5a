package batch

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"fretdiagram/fretboard"
	"fretdiagram/surface"
	"fretdiagram/theory"

	"github.com/stretchr/testify/assert"
)

var smallImage = Options{Width: 240, Height: 80, Margin: 8, Workers: 3}

func TestChordJobsNaming(t *testing.T) {
	assert := assert.New(t)
	jobs := ChordJobs(fretboard.NewConfig(), []string{"C", "F#"}, "out")
	assert.Len(jobs, 2)
	assert.Equal(filepath.Join("out", "chord-c.png"), jobs[0].Path)
	assert.Equal(filepath.Join("out", "chord-fsharp.png"), jobs[1].Path)
	assert.Equal(theory.NewSet("F#"), jobs[1].Config.HighlightedChords)
	assert.Equal("chord-c", jobs[0].Name)
	assert.Equal("chord-fsharp", jobs[1].Name)
}

func TestPresetJobs(t *testing.T) {
	jobs, err := PresetJobs(fretboard.NewConfig(), []string{"bass", "drop-d"}, "out")
	assert.NoError(t, err)
	assert.Equal(t, theory.Tuning{"E", "A", "D", "G"}, jobs[0].Config.Tuning)
	assert.Equal(t, "tuning-drop-d", jobs[1].Name)

	_, err = PresetJobs(fretboard.NewConfig(), []string{"nope"}, "out")
	assert.Error(t, err)
}

func TestRenderAllWritesFiles(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	roots := []string{"C", "D", "E", "F", "G", "A", "B"}
	jobs := ChordJobs(fretboard.NewConfig(), roots, dir)

	paths, err := RenderAll(context.Background(), jobs, smallImage)
	assert.NoError(err)
	assert.Len(paths, len(roots))
	for i, p := range paths {
		assert.Equal(jobs[i].Path, p)
		_, err := os.Stat(p)
		assert.NoError(err)
	}
}

func TestRenderAllReportsFirstError(t *testing.T) {
	dir := t.TempDir()
	jobs := ChordJobs(fretboard.NewConfig(), []string{"C", "G"}, dir)
	jobs[1].Config.Tuning = theory.Tuning{"E"}

	paths, err := RenderAll(context.Background(), jobs, smallImage)
	assert.ErrorIs(t, err, fretboard.ErrTooFewStrings)
	assert.Contains(t, err.Error(), "job chord-g")
	assert.Equal(t, []string{jobs[0].Path}, paths)
}

func TestRenderAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	jobs := ChordJobs(fretboard.NewConfig(), []string{"C"}, t.TempDir())

	paths, err := RenderAll(ctx, jobs, smallImage)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, paths)
}

func TestRenderAllNoJobs(t *testing.T) {
	paths, err := RenderAll(context.Background(), nil, smallImage)
	assert.NoError(t, err)
	assert.Nil(t, paths)
}

func TestRenderAllBackground(t *testing.T) {
	assert := assert.New(t)
	black := fretboard.Color{}
	opts := smallImage
	opts.Background = &black
	jobs := ChordJobs(fretboard.NewConfig(), []string{"E"}, t.TempDir())

	paths, err := RenderAll(context.Background(), jobs, opts)
	assert.NoError(err)

	f, err := os.Open(paths[0])
	assert.NoError(err)
	defer f.Close()
	img, err := png.Decode(f)
	assert.NoError(err)
	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal([]uint32{0, 0, 0}, []uint32{r, g, b})
}

func TestRenderAllRejectsTinyImages(t *testing.T) {
	jobs := ChordJobs(fretboard.NewConfig(), []string{"E"}, t.TempDir())
	paths, err := RenderAll(context.Background(), jobs, Options{Width: 20, Height: 20, Margin: 10})
	assert.ErrorIs(t, err, surface.ErrImageTooSmall)
	assert.Empty(t, paths)
}
