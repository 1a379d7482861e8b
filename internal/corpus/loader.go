// Package corpus discovers quiz folders and builds their in-memory records.
//
// A corpus is a directory of folders named `<number>-<difficulty>-<slug>`.
// For each folder the loader pulls every locale's metadata and README view
// through the locale variation store, plus the locale-independent template
// and test text. Loads for different quizzes are independent and fan out
// across a bounded worker group.
package corpus

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"
	"strconv"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	corpuserrors "github.com/quizforge/quizforge/internal/errors"
	"github.com/quizforge/quizforge/internal/locale"
	"github.com/quizforge/quizforge/internal/logging"
	"github.com/quizforge/quizforge/internal/regions"
	"github.com/quizforge/quizforge/internal/types"
)

// Well-known file names inside a quiz folder.
const (
	MetadataFile = "info.yml"
	ReadmeFile   = "README.md"
	TemplateFile = "template.ts"
	TestsFile    = "test-cases.ts"
)

var folderPattern = regexp.MustCompile(`^(\d+)-([a-z]+)-(.+)$`)

// Loader discovers and loads the quiz corpus.
type Loader struct {
	// Root is the corpus directory.
	Root string
	// Locales is the fixed supported locale set.
	Locales []string
	// DefaultLocale is the designated fallback locale.
	DefaultLocale string
	// Log receives per-item diagnostics; nil is allowed.
	Log logging.Logger
}

// Load discovers every quiz folder and builds its record. Per-item failures
// (unparseable folder name, duplicate number) are collected and returned
// alongside the successfully loaded records; they never abort the load.
// Records come back ordered by quiz number.
func (l *Loader) Load(ctx context.Context) ([]*types.QuizRecord, []error, error) {
	log := logging.OrNop(l.Log).WithComponent("corpus")

	entries, err := os.ReadDir(l.Root)
	if err != nil {
		return nil, nil, corpuserrors.NewIOError(corpuserrors.ErrCodeWriteFailed, "reading corpus root", err).WithPath(l.Root)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() && folderPattern.MatchString(entry.Name()) {
			names = append(names, entry.Name())
		}
	}

	records := make([]*types.QuizRecord, len(names))
	itemErrs := make([]error, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			record, err := l.loadOne(gctx, name)
			if err != nil {
				log.Warn(gctx, err, "skipping quiz folder", "folder", name)
				itemErrs[i] = err
				return nil
			}
			records[i] = record
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	loaded := make([]*types.QuizRecord, 0, len(records))
	failures := make([]error, 0, len(itemErrs))
	seen := make(map[int]string)
	for i, record := range records {
		if record == nil {
			failures = append(failures, itemErrs[i])
			continue
		}
		if prev, dup := seen[record.Number]; dup {
			failures = append(failures, corpuserrors.NewValidationError(
				corpuserrors.ErrCodeBadFolder, "duplicate quiz number (already used by "+prev+")").
				WithQuiz(record.Number).WithPath(record.Path))
			continue
		}
		seen[record.Number] = record.Path
		loaded = append(loaded, record)
	}

	sort.Slice(loaded, func(i, j int) bool { return loaded[i].Number < loaded[j].Number })
	return loaded, failures, nil
}

// loadOne builds the record for a single quiz folder.
func (l *Loader) loadOne(ctx context.Context, folder string) (*types.QuizRecord, error) {
	match := folderPattern.FindStringSubmatch(folder)
	if match == nil {
		return nil, corpuserrors.NewValidationError(corpuserrors.ErrCodeBadFolder, "folder name does not match <number>-<difficulty>-<slug>").WithPath(folder)
	}

	number, err := strconv.Atoi(match[1])
	if err != nil {
		return nil, corpuserrors.NewValidationError(corpuserrors.ErrCodeBadFolder, "invalid quiz number").WithPath(folder)
	}
	difficulty, err := types.ParseDifficulty(match[2])
	if err != nil {
		return nil, corpuserrors.NewValidationError(corpuserrors.ErrCodeBadFolder, err.Error()).WithQuiz(number).WithPath(folder)
	}

	dir := filepath.Join(l.Root, folder)

	record := &types.QuizRecord{
		Number:     number,
		Difficulty: difficulty,
		Slug:       match[3],
		Path:       folder,
		MetadataByLocale: locale.LoadVariants(ctx, l.Log,
			filepath.Join(dir, MetadataFile), l.Locales, l.DefaultLocale, parseMetadata),
		ReadmeByLocale: locale.LoadVariants(ctx, l.Log,
			filepath.Join(dir, ReadmeFile), l.Locales, l.DefaultLocale, parseReadme),
		TemplateText: readOptional(filepath.Join(dir, TemplateFile)),
		TestsText:    readOptional(filepath.Join(dir, TestsFile)),
	}

	return record, nil
}

// parseMetadata decodes one locale's info file. A decode failure degrades
// to "no entry for this locale" at the variation store.
func parseMetadata(data []byte) (types.Metadata, bool, error) {
	var meta types.Metadata
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return types.Metadata{}, false, corpuserrors.NewParseError(corpuserrors.ErrCodeMetadataParse, "decoding metadata", err)
	}
	return meta, !meta.IsEmpty(), nil
}

// parseReadme cleans one locale's README down to its authored body; the
// generated regions are stripped before storage.
func parseReadme(data []byte) (string, bool, error) {
	body := regions.Strip(string(data))
	return body, body != "", nil
}

// readOptional returns the file's text, or empty when it does not exist.
func readOptional(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}
