package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dgallion1/mdview/internal/api"
	"github.com/dgallion1/mdview/internal/config"
	"github.com/dgallion1/mdview/internal/source"
	"github.com/dgallion1/mdview/internal/viewer"
	"github.com/spf13/cobra"
)

func renderCmd(logger func(*cobra.Command) *slog.Logger) *cobra.Command {
	cfg := config.Load()
	var (
		out      string
		search   string
		indent   int
		unique   bool
		sanitize bool
		style    string
	)

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a document to a standalone HTML page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger(cmd)

			doc, err := decodeFile(args[0], cfg)
			if err != nil {
				return err
			}

			opts := api.ViewerOptions(cfg)
			opts.IndentPx = indent
			opts.UniqueAnchors = unique
			opts.Sanitize = sanitize
			opts.Markdown.HighlightStyle = style

			page, err := viewer.New(opts).View(doc.Markdown, search)
			if err != nil {
				return err
			}
			log.Info("rendered", "file", args[0], "headings", len(page.Headings), "matches", page.Matches)

			w := cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer f.Close()
				w = f
			}
			if err := api.WritePage(w, doc.Title, search, page); err != nil {
				return err
			}
			if out != "" && out != "-" {
				log.Info("wrote page", "path", out)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&search, "search", "s", "", "highlight every case-insensitive match of this text")
	cmd.Flags().IntVar(&indent, "indent", cfg.TOCIndentPx, "table of contents indent per level, in pixels")
	cmd.Flags().BoolVar(&unique, "unique-anchors", cfg.UniqueAnchors, "suffix repeated heading anchors with -1, -2, ...")
	cmd.Flags().BoolVar(&sanitize, "sanitize", cfg.SanitizeContent, "strip unsafe HTML from rendered content")
	cmd.Flags().StringVar(&style, "style", cfg.HighlightStyle, "code highlighting style, empty to disable")
	return cmd
}

// decodeFile reads path, or stdin for "-", into Markdown.
func decodeFile(path string, cfg config.Config) (*source.Document, error) {
	opts := source.Options{PDFFallbackPdftotext: cfg.PDFFallbackPdftotext}
	if path == "-" {
		return source.Decode(os.Stdin, "stdin.md", opts)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return source.Decode(f, path, opts)
}
