package cmd

import (
	"fretdiagram/termview"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(textCmd)
}

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Prints a fretboard to the terminal",
	Long:  `Prints a fretboard to the terminal`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(cmd)
		if err != nil {
			return err
		}
		return termview.Render(cmd.OutOrStdout(), cfg)
	},
}
