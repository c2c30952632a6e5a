package cmd

import (
	"log/slog"
	"os"

	"fretdiagram/fretboard"

	"github.com/spf13/cobra"
)

var logger = slog.Default()

var rootCmd = &cobra.Command{
	Use:          "fretdiagram",
	Short:        "Draws fretboard diagrams",
	Long:         `Draws fretboard diagrams with highlighted notes and chords as PNG images, text or over HTTP.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger(flags.debug)
	},
}

// initLogger configures the shared slog logger and hands it to the render
// core, which is silent otherwise.
func initLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})
	logger = slog.New(h)
	slog.SetDefault(logger)
	fretboard.SetLogger(logger)
}

func init() {
	addDiagramFlags(rootCmd)
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
