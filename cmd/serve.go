package cmd

import (
	"os/signal"
	"syscall"

	"fretdiagram/apiserver"

	"github.com/spf13/cobra"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8888", "listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves diagrams over HTTP",
	Long:  `Serves PNG and text diagrams, chord tones and tuning presets over HTTP.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return apiserver.Run(ctx, serveAddr, logger)
	},
}
