package cmd

import (
	"fmt"
	"os"

	"fretdiagram/batch"
	"fretdiagram/surface"
	"fretdiagram/theory"

	"github.com/spf13/cobra"
)

var batchOpts struct {
	out     string
	each    string
	presets string
	workers int
}

func init() {
	f := batchCmd.Flags()
	f.StringVar(&batchOpts.out, "out", "output", "directory for the PNG files")
	f.StringVar(&batchOpts.each, "each-chord", "", "render one diagram per chord root, comma separated")
	f.StringVar(&batchOpts.presets, "presets", "", "render one diagram per tuning preset, comma separated")
	f.IntVar(&batchOpts.workers, "workers", 0, "parallel renders, 0 picks a default")
	rootCmd.AddCommand(batchCmd)
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Renders many diagrams at once",
	Long:  `Renders one PNG per chord root or tuning preset.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := buildConfig(cmd)
		if err != nil {
			return err
		}

		var jobs []batch.Job
		if batchOpts.each != "" {
			roots, err := theory.ParseNotes(batchOpts.each)
			if err != nil {
				return fmt.Errorf("--each-chord: %w", err)
			}
			jobs = append(jobs, batch.ChordJobs(base, roots, batchOpts.out)...)
		}
		if batchOpts.presets != "" {
			presetJobs, err := batch.PresetJobs(base, splitList(batchOpts.presets), batchOpts.out)
			if err != nil {
				return err
			}
			jobs = append(jobs, presetJobs...)
		}
		if len(jobs) == 0 {
			return fmt.Errorf("nothing to render: pass --each-chord or --presets")
		}

		background, err := backgroundColor(cmd)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(batchOpts.out, 0o755); err != nil {
			return err
		}
		res := surface.DefaultResolution
		paths, err := batch.RenderAll(cmd.Context(), jobs, batch.Options{
			Width:      res[0],
			Height:     res[1],
			Margin:     surface.DefaultMargin,
			Workers:    batchOpts.workers,
			Background: &background,
		})
		for _, p := range paths {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		return err
	},
}
