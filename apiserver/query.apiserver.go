package apiserver

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"fretdiagram/config"
	"fretdiagram/fretboard"
	"fretdiagram/surface"
	"fretdiagram/theory"
)

type renderRequest struct {
	cfg        fretboard.Config
	width      int
	height     int
	background fretboard.Color
}

func queryInt(q url.Values, key string, def int) (int, error) {
	v := q.Get(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func queryColor(q url.Values, key string, def fretboard.Color) (fretboard.Color, error) {
	v := q.Get(key)
	if v == "" {
		return def, nil
	}
	if !strings.HasPrefix(v, "#") {
		v = "#" + v
	}
	return fretboard.ParseColor(v)
}

func querySet(q url.Values, key string) (theory.Set, error) {
	if !q.Has(key) {
		return nil, nil
	}
	notes, err := theory.ParseNotes(q.Get(key))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return theory.NewSet(notes...), nil
}

// parseRenderRequest reads a diagram from query parameters. Anything not
// given falls back to the widget defaults.
func parseRenderRequest(q url.Values) (renderRequest, error) {
	cfg := fretboard.NewConfig()
	cfg.TotalFrets = fretboard.WidgetFrets
	req := renderRequest{
		width:      surface.DefaultResolution[0],
		height:     surface.DefaultResolution[1],
		background: surface.PaperColor,
	}

	if v := q.Get("tuning"); v != "" {
		t, err := config.ParseTuning(v)
		if err != nil {
			return req, err
		}
		cfg.Tuning = t
	}

	var err error
	if cfg.HighlightedNotes, err = querySet(q, "notes"); err != nil {
		return req, err
	}
	if cfg.HighlightedChords, err = querySet(q, "chords"); err != nil {
		return req, err
	}
	if cfg.TotalFrets, err = queryInt(q, "frets", cfg.TotalFrets); err != nil {
		return req, err
	}
	if err := fretboard.CheckFrets(cfg.TotalFrets); err != nil {
		return req, err
	}
	if req.width, err = queryInt(q, "width", req.width); err != nil {
		return req, err
	}
	if req.height, err = queryInt(q, "height", req.height); err != nil {
		return req, err
	}
	if req.width < 1 || req.height < 1 || req.width > maxDimension || req.height > maxDimension {
		return req, fmt.Errorf("image size %dx%d out of range", req.width, req.height)
	}
	if err := surface.CheckSize(req.width, req.height, surface.DefaultMargin); err != nil {
		return req, err
	}
	if req.background, err = queryColor(q, "background", req.background); err != nil {
		return req, err
	}

	colors := []struct {
		key string
		dst *fretboard.Color
	}{
		{"fret_color", &cfg.FretColor},
		{"string_color", &cfg.StringColor},
		{"note_color", &cfg.NoteColor},
		{"text_color", &cfg.NoteTextColor},
	}
	for _, c := range colors {
		if *c.dst, err = queryColor(q, c.key, *c.dst); err != nil {
			return req, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return req, err
	}
	req.cfg = cfg
	return req, nil
}
