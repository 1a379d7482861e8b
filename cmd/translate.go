package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/quizforge/quizforge/internal/corpus"
	"github.com/quizforge/quizforge/internal/locale"
	"github.com/quizforge/quizforge/internal/translate"
	"github.com/quizforge/quizforge/internal/types"
)

var translateTo string

// translateCmd represents the translate command.
var translateCmd = &cobra.Command{
	Use:   "translate --to <locale> [quiz-number...]",
	Short: "Machine-translate missing locale variants",
	Long: `For each quiz missing a README or metadata variant in the target locale,
translate the default-locale text through the configured translation
endpoint and write the locale-suffixed sibling files. Existing variants are
never overwritten.

The API key is read from the environment variable named by
translate.key_env (a .env file in the working directory is honored).

Examples:
  quizforge translate --to ja        # Every quiz missing ja variants
  quizforge translate --to ja 4 14   # Only quizzes 4 and 14`,
	RunE: runTranslateCommand,
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVar(&translateTo, "to", "", "Target locale (required)")
	_ = translateCmd.MarkFlagRequired("to")
}

func runTranslateCommand(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	log := newLogger()

	// Best effort; the key may equally come from the real environment.
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Translate.Endpoint == "" {
		return fmt.Errorf("no translation endpoint configured (set translate.endpoint)")
	}
	if !localeSupported(cfg.Corpus.Locales, translateTo) {
		return fmt.Errorf("locale %q is not in the configured set %v", translateTo, cfg.Corpus.Locales)
	}
	if translateTo == cfg.Corpus.DefaultLocale {
		return fmt.Errorf("target locale is the default locale; nothing to translate")
	}

	wanted := make(map[int]bool, len(args))
	for _, arg := range args {
		number, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid quiz number %q", arg)
		}
		wanted[number] = true
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

	translator := translate.NewHTTPTranslator(cfg.Translate.Endpoint, os.Getenv(cfg.Translate.KeyEnv))
	from := cfg.Corpus.DefaultLocale

	translated, skipped := 0, 0
	for _, q := range records {
		if len(wanted) > 0 && !wanted[q.Number] {
			continue
		}
		n, err := translateQuiz(ctx, translator, cfg.Corpus.Root, q, from, translateTo)
		if err != nil {
			log.Warn(ctx, err, "translation failed", "quiz", q.Number)
			skipped++
			continue
		}
		translated += n
	}

	fmt.Printf("Translated %d files into %s (%d quizzes failed)\n", translated, translateTo, skipped)
	return nil
}

// translateQuiz writes the missing target-locale README for one quiz.
// Existing variants are left alone.
func translateQuiz(ctx context.Context, translator translate.Translator, root string, q *types.QuizRecord, from, to string) (int, error) {
	if _, ok := q.ReadmeByLocale[to]; ok {
		return 0, nil
	}
	body, ok := q.ReadmeByLocale[from]
	if !ok {
		return 0, nil
	}

	text, err := translator.Translate(ctx, body, from, to)
	if err != nil {
		return 0, err
	}

	path := locale.VariantPath(filepath.Join(root, q.Path, corpus.ReadmeFile), to)
	if err := os.WriteFile(path, []byte(text+"\n"), 0o644); err != nil {
		return 0, err
	}
	return 1, nil
}
