package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/quizforge/quizforge/internal/corpus"
	corpuserrors "github.com/quizforge/quizforge/internal/errors"
	"github.com/quizforge/quizforge/internal/locale"
	"github.com/quizforge/quizforge/internal/regions"
	"github.com/quizforge/quizforge/internal/render"
)

var (
	generateLocales []string
	generateFormat  string
)

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"g"},
	Short:   "Regenerate index pages and per-quiz README regions",
	Long: `Regenerate the derived documentation for each locale:

- the per-locale corpus index pages at the corpus root
- the generated header/footer regions inside every quiz README

Only the text between the region markers is replaced; authored content is
left untouched, and documents without markers get empty regions inserted.

Examples:
  quizforge generate              # All configured locales
  quizforge generate -l ja -l ko  # Only ja and ko
  quizforge generate -f json      # Machine-readable summary`,
	RunE: runGenerateCommand,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().
		StringSliceVarP(&generateLocales, "locale", "l", nil, "Locale(s) to regenerate (default: all configured)")
	generateCmd.Flags().
		StringVarP(&generateFormat, "format", "f", "text", "Output format (text, json)")
}

// GenerateResult reports one regenerated document.
type GenerateResult struct {
	Document string `json:"document"`
	Locale   string `json:"locale"`
	Success  bool   `json:"success"`
	Skipped  bool   `json:"skipped,omitempty"`
	Error    string `json:"error,omitempty"`
}

// GenerateSummary aggregates a whole regeneration batch.
type GenerateSummary struct {
	Total   int              `json:"total"`
	Success int              `json:"success"`
	Skipped int              `json:"skipped"`
	Failed  int              `json:"failed"`
	Results []GenerateResult `json:"results"`
}

func (s *GenerateSummary) add(r GenerateResult) {
	s.Total++
	switch {
	case r.Skipped:
		s.Skipped++
	case r.Success:
		s.Success++
	default:
		s.Failed++
	}
	s.Results = append(s.Results, r)
}

func runGenerateCommand(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	log := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	loader := &corpus.Loader{
		Root:          cfg.Corpus.Root,
		Locales:       cfg.Corpus.Locales,
		DefaultLocale: cfg.Corpus.DefaultLocale,
		Log:           log,
	}
	records, failures, err := loader.Load(ctx)
	if err != nil {
		return err
	}
	for _, failure := range failures {
		log.Warn(ctx, failure, "corpus item not loaded")
	}

	locales := generateLocales
	if len(locales) == 0 {
		locales = cfg.Corpus.Locales
	}

	resolver := locale.Resolver{DefaultLocale: cfg.Corpus.DefaultLocale}
	summary := &GenerateSummary{}

	for _, loc := range locales {
		// Corpus index page for this locale.
		indexPath := filepath.Join(cfg.Corpus.Root, render.ReadmeFileName(loc, cfg.Corpus.DefaultLocale))
		header, footer := render.IndexRegions(records, resolver, loc)
		summary.add(applyDocument(indexPath, loc, header, footer))

		// Per-quiz README regions. One bad document never aborts the
		// batch.
		for _, q := range records {
			readmePath := filepath.Join(cfg.Corpus.Root, q.Path, render.ReadmeFileName(loc, cfg.Corpus.DefaultLocale))
			meta := resolver.Resolve(q, loc)
			summary.add(applyDocument(readmePath, loc,
				render.QuizHeader(q, meta, loc),
				render.QuizFooter(q, meta, records, loc, cfg.Corpus.DefaultLocale)))
		}
	}

	return outputGenerateSummary(summary)
}

// applyDocument applies region substitution to one document, classifying a
// missing target as a skip rather than a failure.
func applyDocument(path, loc, header, footer string) GenerateResult {
	err := regions.ApplyFile(path, header, footer)
	switch {
	case err == nil:
		return GenerateResult{Document: path, Locale: loc, Success: true}
	case corpuserrors.IsNotFound(err):
		return GenerateResult{Document: path, Locale: loc, Skipped: true, Error: err.Error()}
	default:
		return GenerateResult{Document: path, Locale: loc, Error: err.Error()}
	}
}

func outputGenerateSummary(summary *GenerateSummary) error {
	if generateFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(summary)
	}

	for _, r := range summary.Results {
		switch {
		case r.Skipped:
			fmt.Printf("  - skipped %s (%s)\n", r.Document, r.Error)
		case !r.Success:
			fmt.Printf("  ✗ failed  %s: %s\n", r.Document, r.Error)
		}
	}
	fmt.Printf("Regenerated %d documents: %d updated, %d skipped, %d failed\n",
		summary.Total, summary.Success, summary.Skipped, summary.Failed)

	if summary.Failed > 0 {
		return fmt.Errorf("%d documents failed to regenerate", summary.Failed)
	}
	return nil
}
