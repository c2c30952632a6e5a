package cmd

import (
	"fmt"

	"fretdiagram/fretboard"
	"fretdiagram/surface"

	"github.com/spf13/cobra"
)

var renderOpts struct {
	output     string
	resolution string
	width      int
	height     int
	margin     float64
}

func init() {
	f := renderCmd.Flags()
	f.StringVarP(&renderOpts.output, "output", "o", "fretboard.png", "PNG file to write")
	f.StringVar(&renderOpts.resolution, "resolution", "wide", "named image size: wide, compact or thumb")
	f.IntVar(&renderOpts.width, "width", 0, "image width in pixels, overrides --resolution")
	f.IntVar(&renderOpts.height, "height", 0, "image height in pixels, overrides --resolution")
	f.Float64Var(&renderOpts.margin, "margin", surface.DefaultMargin, "blank border in pixels")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Renders a fretboard to PNG",
	Long:  `Renders a fretboard to PNG`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(cmd)
		if err != nil {
			return err
		}
		background, err := backgroundColor(cmd)
		if err != nil {
			return err
		}
		width, height, err := imageSize(renderOpts.resolution, renderOpts.width, renderOpts.height, renderOpts.margin)
		if err != nil {
			return err
		}
		img := surface.NewImage(width, height, renderOpts.margin)
		img.SetBackground(background)
		if err := fretboard.Render(img, cfg); err != nil {
			return err
		}
		if err := img.SavePNG(renderOpts.output); err != nil {
			return err
		}
		logger.Info("fretboard rendered", "path", renderOpts.output, "width", width, "height", height)
		return nil
	},
}

func imageSize(resolution string, width, height int, margin float64) (int, int, error) {
	res, ok := surface.Resolutions[resolution]
	if !ok {
		return 0, 0, fmt.Errorf("unknown resolution %q", resolution)
	}
	if width > 0 {
		res[0] = width
	}
	if height > 0 {
		res[1] = height
	}
	if err := surface.CheckSize(res[0], res[1], margin); err != nil {
		return 0, 0, err
	}
	return res[0], res[1], nil
}
