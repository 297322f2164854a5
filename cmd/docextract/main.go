package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/yasboop/docextract/internal/common"
	"github.com/yasboop/docextract/internal/export"
	"github.com/yasboop/docextract/internal/extract"
	"github.com/yasboop/docextract/internal/llm"
	"github.com/yasboop/docextract/internal/llm/mistral"
	"github.com/yasboop/docextract/internal/pipeline"
	"github.com/yasboop/docextract/internal/summary"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "docextract",
		Short:         "Extract structured field data from document text",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newExtractCmd())
	root.AddCommand(newExportCmd())
	return root
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func newExtractCmd() *cobra.Command {
	var (
		docType   string
		file      string
		imagePath string
		verbose   bool
	)
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract a canonical record from document text (file or stdin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(verbose)
			slog.SetDefault(logger)

			text, err := readInput(file)
			if err != nil {
				return err
			}

			cfg := common.LoadConfig()
			if err := cfg.Validate(); err != nil {
				return err
			}

			var fieldExtractor llm.FieldExtractor
			var summarizer llm.Summarizer
			if cfg.LLM.APIKey != "" {
				client := mistral.NewClient(mistral.Config{
					APIKey:      cfg.LLM.APIKey,
					BaseURL:     cfg.LLM.BaseURL,
					Model:       cfg.LLM.Model,
					VisionModel: cfg.LLM.VisionModel,
					Temperature: cfg.LLM.Temperature,
					Timeout:     cfg.LLM.Timeout,
				}, logger)
				fieldExtractor = client
				summarizer = client
			} else {
				logger.Warn("extract.no_api_key", "hint", "MISTRAL_API_KEY not set; regex-only extraction")
			}

			var sum *summary.Generator
			if cfg.Pipeline.SummaryEnabled {
				sum = summary.NewGenerator(summarizer, cfg.Pipeline.SummaryTimeout, logger)
			}

			proc := pipeline.NewProcessor(
				pipeline.Config{AITimeout: cfg.Pipeline.AITimeout},
				fieldExtractor,
				extract.NewRegexExtractor(logger),
				sum,
				logger,
			)

			record, err := proc.Extract(cmd.Context(), pipeline.Request{
				Text:         text,
				DocumentType: docType,
				ImagePath:    imagePath,
			})
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(record, "", "  ")
			if err != nil {
				return fmt.Errorf("encode record: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().StringVarP(&docType, "type", "t", "invoice", "document type (invoice|contract)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "path to document text; stdin when omitted")
	cmd.Flags().StringVar(&imagePath, "image", "", "optional document image for the multimodal AI path")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log extraction progress")
	return cmd
}

func newExportCmd() *cobra.Command {
	var (
		in      string
		out     string
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export canonical invoice records (JSON array) to an XLSX workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(verbose)

			data, err := readInputBytes(in)
			if err != nil {
				return err
			}
			var records []extract.CanonicalRecord
			if err := json.Unmarshal(data, &records); err != nil {
				// tolerate a single record instead of an array
				var one extract.CanonicalRecord
				if err2 := json.Unmarshal(data, &one); err2 != nil {
					return fmt.Errorf("decode records: %w", err)
				}
				records = []extract.CanonicalRecord{one}
			}

			svc := export.NewService(logger)
			xlsx, err := svc.InvoicesXLSX(records)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, xlsx, 0o644); err != nil {
				return fmt.Errorf("write workbook: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d records)\n", out, len(records))
			return nil
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "", "path to canonical records JSON; stdin when omitted")
	cmd.Flags().StringVarP(&out, "out", "o", "invoices.xlsx", "output workbook path")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log export progress")
	return cmd
}

func readInput(path string) (string, error) {
	b, err := readInputBytes(path)
	return string(b), err
}

func readInputBytes(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return b, nil
}
