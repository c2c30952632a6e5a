package cmd

import (
	"fmt"

	"fretdiagram/config"
	"fretdiagram/fretboard"
	"fretdiagram/midiparser"
	"fretdiagram/surface"
	"fretdiagram/theory"

	"github.com/spf13/cobra"
)

type diagramFlags struct {
	configPath  string
	tuning      string
	notes       string
	chords      string
	frets       int
	midiPath    string
	fretColor   string
	stringColor string
	noteColor   string
	textColor   string
	background  string
	debug       bool
}

var flags diagramFlags

func addDiagramFlags(c *cobra.Command) {
	pf := c.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "JSON diagram file")
	pf.StringVar(&flags.tuning, "tuning", "", "tuning preset name or comma separated notes, first string on top")
	pf.StringVar(&flags.notes, "notes", "", "comma separated notes to highlight")
	pf.StringVar(&flags.chords, "chords", "", "comma separated major chord roots to highlight")
	pf.IntVar(&flags.frets, "frets", fretboard.WidgetFrets, "number of frets")
	pf.StringVar(&flags.midiPath, "midi", "", "highlight every note played in this MIDI file")
	pf.StringVar(&flags.fretColor, "fret-color", "", "fret line color, #rrggbb")
	pf.StringVar(&flags.stringColor, "string-color", "", "string line color, #rrggbb")
	pf.StringVar(&flags.noteColor, "note-color", "", "note marker color, #rrggbb")
	pf.StringVar(&flags.textColor, "text-color", "", "note label color, #rrggbb")
	pf.StringVar(&flags.background, "background", "", "image background color, #rrggbb")
	pf.BoolVar(&flags.debug, "debug", false, "debug logging")
}

// buildConfig layers defaults, the config file, the environment, flags and
// finally MIDI highlights.
func buildConfig(cmd *cobra.Command) (fretboard.Config, error) {
	cfg := fretboard.NewConfig()
	cfg.TotalFrets = fretboard.WidgetFrets

	var err error
	if flags.configPath != "" {
		if cfg, err = config.Load(flags.configPath, cfg); err != nil {
			return cfg, err
		}
	}
	if cfg, err = config.ApplyEnv(cfg); err != nil {
		return cfg, err
	}

	changed := cmd.Flags().Changed
	if changed("tuning") {
		if cfg.Tuning, err = config.ParseTuning(flags.tuning); err != nil {
			return cfg, err
		}
	}
	if changed("notes") {
		notes, err := theory.ParseNotes(flags.notes)
		if err != nil {
			return cfg, fmt.Errorf("--notes: %w", err)
		}
		cfg.HighlightedNotes = theory.NewSet(notes...)
	}
	if changed("chords") {
		chords, err := theory.ParseNotes(flags.chords)
		if err != nil {
			return cfg, fmt.Errorf("--chords: %w", err)
		}
		cfg.HighlightedChords = theory.NewSet(chords...)
	}
	if changed("frets") {
		if err := fretboard.CheckFrets(flags.frets); err != nil {
			return cfg, fmt.Errorf("--frets: %w", err)
		}
		cfg.TotalFrets = flags.frets
	}

	colors := []struct {
		name  string
		value string
		dst   *fretboard.Color
	}{
		{"fret-color", flags.fretColor, &cfg.FretColor},
		{"string-color", flags.stringColor, &cfg.StringColor},
		{"note-color", flags.noteColor, &cfg.NoteColor},
		{"text-color", flags.textColor, &cfg.NoteTextColor},
	}
	for _, c := range colors {
		if !changed(c.name) {
			continue
		}
		if *c.dst, err = fretboard.ParseColor(c.value); err != nil {
			return cfg, fmt.Errorf("--%s: %w", c.name, err)
		}
	}

	if flags.midiPath != "" {
		parsed, err := midiparser.ReadFile(flags.midiPath)
		if err != nil {
			return cfg, err
		}
		logger.Info("midi highlights",
			"file", flags.midiPath,
			"notes", parsed.Notes,
			"pitch_classes", parsed.PitchClasses.Sorted(),
		)
		cfg.HighlightedNotes = cfg.HighlightedNotes.Union(parsed.PitchClasses)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// backgroundColor returns the --background color, or the default paper color.
func backgroundColor(cmd *cobra.Command) (fretboard.Color, error) {
	if !cmd.Flags().Changed("background") {
		return surface.PaperColor, nil
	}
	c, err := fretboard.ParseColor(flags.background)
	if err != nil {
		return c, fmt.Errorf("--background: %w", err)
	}
	return c, nil
}
