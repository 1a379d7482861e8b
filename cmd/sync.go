package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quizforge/quizforge/internal/corpus"
	"github.com/quizforge/quizforge/internal/locale"
	"github.com/quizforge/quizforge/internal/workspace"
)

var (
	syncLocale      string
	syncKeepChanges bool
	syncFormat      string
)

// syncCmd represents the sync command.
var syncCmd = &cobra.Command{
	Use:     "sync",
	Aliases: []string{"s"},
	Short:   "Regenerate the practice workspace for one locale",
	Long: `Regenerate the derived practice workspace from the quiz corpus.

With --keep-changes, each previously generated file is compared against the
persisted fingerprint snapshot: files whose content still matches what the
tool wrote last time are regenerated, files a human edited are preserved,
and brand-new quizzes are always written. Without --keep-changes the
workspace is wiped and rebuilt from scratch.

The snapshot is loaded once before any write and saved once after all
writes; a corrupt snapshot aborts the run before anything is touched.

Examples:
  quizforge sync --locale en
  quizforge sync -l ja --keep-changes`,
	RunE: runSyncCommand,
}

func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.Flags().StringVarP(&syncLocale, "locale", "l", "", "Target locale (default: the configured default locale)")
	syncCmd.Flags().BoolVarP(&syncKeepChanges, "keep-changes", "k", false, "Preserve files edited since the last generation")
	syncCmd.Flags().StringVarP(&syncFormat, "format", "f", "text", "Output format (text, json)")
}

func runSyncCommand(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	log := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	target := syncLocale
	if target == "" {
		target = cfg.Corpus.DefaultLocale
	}
	if !localeSupported(cfg.Corpus.Locales, target) {
		return fmt.Errorf("locale %q is not in the configured set %v", target, cfg.Corpus.Locales)
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

	syncer := &workspace.Syncer{
		Dir:          cfg.Workspace.Dir,
		SnapshotFile: cfg.Workspace.SnapshotFile,
		Extension:    cfg.Workspace.Extension,
		Resolver:     locale.Resolver{DefaultLocale: cfg.Corpus.DefaultLocale},
		Log:          log,
	}

	summary, err := syncer.Sync(ctx, records, target, syncKeepChanges)
	if err != nil {
		return err
	}

	return outputSyncSummary(summary)
}

func localeSupported(locales []string, target string) bool {
	for _, loc := range locales {
		if loc == target {
			return true
		}
	}
	return false
}

func outputSyncSummary(summary *workspace.Summary) error {
	if syncFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(summary)
	}

	for _, r := range summary.Results {
		switch r.Status {
		case workspace.StatusPreserved:
			fmt.Printf("  = preserved %s (locally edited)\n", r.File)
		case workspace.StatusSkipped:
			fmt.Printf("  - skipped quiz %d (%v)\n", r.Quiz, r.Err)
		case workspace.StatusFailed:
			fmt.Printf("  ✗ failed %s: %v\n", r.File, r.Err)
		}
	}
	fmt.Printf("Workspace: %d generated, %d preserved, %d skipped, %d failed\n",
		summary.Generated, summary.Preserved, summary.Skipped, summary.Failed)

	if summary.Failed > 0 {
		return fmt.Errorf("%d workspace files failed to generate", summary.Failed)
	}
	return nil
}
