package main

import (
	"encoding/json"
	"log/slog"

	"github.com/dgallion1/mdview/internal/api"
	"github.com/dgallion1/mdview/internal/config"
	"github.com/dgallion1/mdview/internal/doctree"
	"github.com/dgallion1/mdview/internal/viewer"
	"github.com/spf13/cobra"
)

func headingsCmd(logger func(*cobra.Command) *slog.Logger) *cobra.Command {
	cfg := config.Load()
	var (
		tree   bool
		unique bool
	)

	cmd := &cobra.Command{
		Use:   "headings <file>",
		Short: "Print a document's headings as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := decodeFile(args[0], cfg)
			if err != nil {
				return err
			}

			opts := api.ViewerOptions(cfg)
			opts.UniqueAnchors = unique
			headings, forest := viewer.New(opts).Outline(doc.Markdown)
			logger(cmd).Info("extracted", "file", args[0], "headings", len(headings), "roots", len(forest))

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if tree {
				if forest == nil {
					forest = []*doctree.Node{}
				}
				return enc.Encode(forest)
			}
			if headings == nil {
				headings = []doctree.Heading{}
			}
			return enc.Encode(headings)
		},
	}
	cmd.Flags().BoolVar(&tree, "tree", false, "print the nested heading forest instead of the flat list")
	cmd.Flags().BoolVar(&unique, "unique-anchors", cfg.UniqueAnchors, "suffix repeated heading anchors with -1, -2, ...")
	return cmd
}
