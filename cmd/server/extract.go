package main

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/artem13815/resumeflow/pkg/config"
	"github.com/artem13815/resumeflow/pkg/document"
	"github.com/artem13815/resumeflow/pkg/extraction"
	"github.com/artem13815/resumeflow/pkg/logging"
	"github.com/artem13815/resumeflow/pkg/resume"
)

//nolint:gochecknoglobals // Cobra boilerplate
var extractCmd = &cobra.Command{
	Use:   "extract <resume-file>",
	Short: "Extract a resume offline and print the record",
	Long: `Runs text extraction, the language model and normalization on a local PDF or
DOCX file and prints the resulting record as JSON. Nothing is stored.

Example:
  resumeflow extract ./cv.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrap(err, "read resume")
	}
	text, err := document.NewTextExtractor().ExtractText(data)
	if err != nil {
		return err
	}
	model, err := buildChatModel(cfg, log)
	if err != nil {
		return err
	}
	raw, err := extraction.NewExtractor(model, cfg.MaxPromptChars, log).Extract(cmd.Context(), text)
	if err != nil {
		return err
	}
	rec, err := resume.Normalize(raw)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}
