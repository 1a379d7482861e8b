package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/quizforge/quizforge/internal/corpus"
	"github.com/quizforge/quizforge/internal/locale"
	"github.com/quizforge/quizforge/internal/render"
	"github.com/quizforge/quizforge/internal/types"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"l"},
	Short:   "List quizzes grouped by difficulty",
	Long: `List the corpus quizzes with their resolved titles and tags,
grouped and ordered by difficulty rank. Pending quizzes are listed last.

Examples:
  quizforge list                  # Table, default locale
  quizforge list --locale ja      # Titles resolved for ja
  quizforge list -d easy          # Only easy quizzes
  quizforge list -f json          # Output as JSON`,
	RunE: runList,
}

var (
	listLocale     string
	listDifficulty string
	listFormat     string
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listLocale, "locale", "l", "", "Locale used to resolve titles (default: configured default)")
	listCmd.Flags().StringVarP(&listDifficulty, "difficulty", "d", "", "Only list quizzes of this difficulty")
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "Output format (table, json)")
}

type listEntry struct {
	Number     int      `json:"number"`
	Difficulty string   `json:"difficulty"`
	Title      string   `json:"title"`
	Tags       []string `json:"tags"`
	Path       string   `json:"path"`
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	log := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	target := listLocale
	if target == "" {
		target = cfg.Corpus.DefaultLocale
	}

	var only types.Difficulty
	if listDifficulty != "" {
		only, err = types.ParseDifficulty(listDifficulty)
		if err != nil {
			return err
		}
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

	resolver := locale.Resolver{DefaultLocale: cfg.Corpus.DefaultLocale}

	entries := make([]listEntry, 0, len(records))
	for _, q := range records {
		if only != "" && q.Difficulty != only {
			continue
		}
		meta := resolver.Resolve(q, target)
		entries = append(entries, listEntry{
			Number:     q.Number,
			Difficulty: q.Difficulty.String(),
			Title:      render.TitleFor(q, meta, target),
			Tags:       meta.Tags,
			Path:       q.Path,
		})
	}

	// Difficulty rank first, quiz number second; pending sorts last.
	sort.SliceStable(entries, func(i, j int) bool {
		ri, iok := types.Difficulty(entries[i].Difficulty).Rank()
		rj, jok := types.Difficulty(entries[j].Difficulty).Rank()
		if iok != jok {
			return iok
		}
		if ri != rj {
			return ri < rj
		}
		return entries[i].Number < entries[j].Number
	})

	if listFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NUMBER\tDIFFICULTY\tTITLE\tTAGS")
	for _, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.Number, e.Difficulty, e.Title, strings.Join(e.Tags, ","))
	}
	return w.Flush()
}
