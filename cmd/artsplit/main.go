package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lexatra/artsplit/internal/api"
	"github.com/lexatra/artsplit/internal/batch"
	"github.com/lexatra/artsplit/internal/config"
	"github.com/lexatra/artsplit/internal/jsonl"
	"github.com/lexatra/artsplit/internal/splitter"
)

var version = "0.1.0"

func main() {
	cfg := config.Load()
	log := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := &cobra.Command{
		Use:   "artsplit",
		Short: "Split legal .docx documents into per-article JSONL records",
		Long: `artsplit extracts individually numbered articles from .docx documents
and writes one newline-delimited JSON file per source document, one
record per article.

Article boundaries are detected from heading styles, bold headings and
configurable regex patterns, falling back to a single whole-document
record when nothing matches.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(splitCmd(log))
	rootCmd.AddCommand(serveCmd(log, cfg))

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func splitCmd(log *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Process a directory of .docx files into JSONL",
		Long: `Process every .docx file directly inside the input directory and write
<stem>.jsonl per document into the output directory.

A document that cannot be parsed is logged and skipped; it never aborts
the batch or changes the exit code.

Example:
  artsplit split -i ./docs -o ./out
  artsplit split -i ./docs -o ./out -p '^(Раздел|Section)\s+\d+'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputDir, _ := cmd.Flags().GetString("input-dir")
			outputDir, _ := cmd.Flags().GetString("output-dir")
			addPatterns, _ := cmd.Flags().GetStringArray("add-pattern")
			appendOut, _ := cmd.Flags().GetBool("append")

			// Pattern errors surface before any file is touched.
			patterns, err := splitter.NewPatternSet(addPatterns)
			if err != nil {
				return err
			}

			proc := &batch.Processor{
				Patterns: patterns,
				Writer:   &jsonl.Writer{Dir: outputDir, Append: appendOut},
				Log:      log,
			}
			res, err := proc.Run(cmd.Context(), inputDir)
			if err != nil {
				return err
			}
			log.Info("done",
				"files", res.Files,
				"records", res.Records,
				"failed", res.Failed,
			)
			return nil
		},
	}

	cmd.Flags().StringP("input-dir", "i", "", "Directory containing .docx files")
	cmd.Flags().StringP("output-dir", "o", "", "Directory for .jsonl output")
	cmd.Flags().StringArrayP("add-pattern", "p", nil, "Extra boundary regex, tried before the defaults (repeatable)")
	cmd.Flags().Bool("append", false, "Append to existing .jsonl files instead of overwriting")
	cmd.MarkFlagRequired("input-dir")
	cmd.MarkFlagRequired("output-dir")
	return cmd
}

func serveCmd(log *slog.Logger, cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the split pipeline over HTTP",
		Long: `Start an HTTP server exposing POST /api/split: upload a .docx and get
the article records back as JSON, without writing any files.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := api.NewServer(log, cfg)
			if err != nil {
				return err
			}

			httpServer := &http.Server{
				Addr:         ":" + cfg.Port,
				Handler:      srv,
				ReadTimeout:  30 * time.Second,
				WriteTimeout: 60 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			go func() {
				<-cmd.Context().Done()
				log.Info("shutting down...")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				httpServer.Shutdown(shutdownCtx)
			}()

			log.Info("starting artsplit server", "port", cfg.Port)
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}
}

func newLogger(cfg config.Config) *slog.Logger {
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
