package midiparser

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"fretdiagram/theory"

	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func writeSong(t *testing.T, keys ...uint8) []byte {
	t.Helper()
	var tr smf.Track
	for _, k := range keys {
		tr.Add(0, midi.NoteOn(0, k, 100))
		tr.Add(480, midi.NoteOff(0, k))
	}
	// a note-on with zero velocity is a note-off
	tr.Add(0, midi.NoteOn(0, 61, 0))
	tr.Close(0)

	s := smf.New()
	assert.NoError(t, s.Add(tr))

	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	assert.NoError(t, err)
	return buf.Bytes()
}

func TestParseCollectsPitchClasses(t *testing.T) {
	assert := assert.New(t)
	data := writeSong(t, 60, 64, 67, 72)

	parsed, err := Parse(bytes.NewReader(data))
	assert.NoError(err)
	assert.Equal(theory.NewSet("C", "E", "G"), parsed.PitchClasses)
	assert.Equal(2, parsed.NoteCounts["C"])
	assert.Equal(4, parsed.Notes)
	assert.Equal(1, parsed.Tracks)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.mid")
	assert.NoError(t, os.WriteFile(path, writeSong(t, 57), 0o644))

	parsed, err := ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, theory.NewSet("A"), parsed.PitchClasses)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.mid"))
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse(bytes.NewReader([]byte("definitely not midi")))
	assert.Error(t, err)
}

func TestKeyToPitchClass(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C", KeyToPitchClass(0))
	assert.Equal("E", KeyToPitchClass(40))
	assert.Equal("A", KeyToPitchClass(69))
	assert.Equal("B", KeyToPitchClass(71))
}
