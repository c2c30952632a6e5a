package cmd

import (
	"fmt"
	"strings"

	"fretdiagram/theory"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord <root>...",
	Short: "Lists the tones of major chords",
	Long:  `Lists the tones of major chords`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		all := theory.Set{}
		for _, arg := range args {
			root, err := theory.ParseNote(arg)
			if err != nil {
				fmt.Fprintf(out, "%s: not found\n", arg)
				continue
			}
			res := theory.ResolveChord(root)
			all = all.Union(res.Set())
			fmt.Fprintf(out, "%s: %s\n", root, strings.Join(res.Tones[:], " "))
		}
		if len(args) > 1 {
			fmt.Fprintf(out, "union: %s\n", strings.Join(all.Sorted(), " "))
		}
		return nil
	},
}
