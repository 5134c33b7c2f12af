package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/arashsheyda/vue-prop-konverter/pkg/serve"
	"github.com/spf13/cobra"
)

var serveProfilesPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run as streaming server for editor integration",
	Long: `Run vpk as a long-lived streaming server that accepts conversion
requests via stdin and outputs results via stdout using NDJSON format.

This mode is designed for editor extensions. The process loads profiles
once at startup and processes requests until stdin closes or SIGTERM is
received.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveProfilesPath, "profiles", "", "Path to custom profiles file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	conv, err := buildConverter(serveProfilesPath, 0, "")
	if err != nil {
		return err
	}

	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		cancel()
	}()

	// Create and run server
	srv := serve.NewServer(conv, cmd.InOrStdin(), cmd.OutOrStdout())
	return srv.Run(ctx)
}
