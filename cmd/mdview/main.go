package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "mdview",
		Short:         "Render Markdown documents with a navigable table of contents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")

	logger := func(cmd *cobra.Command) *slog.Logger {
		if !verbose {
			return slog.New(slog.NewTextHandler(io.Discard, nil))
		}
		return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	root.AddCommand(renderCmd(logger), headingsCmd(logger), serveCmd())
	return root
}
