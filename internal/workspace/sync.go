// Package workspace regenerates the derived practice workspace while
// preserving files the user edited since the last generation.
//
// The synchronizer is the sole writer of workspace files and the only
// component that updates the persisted fingerprint snapshot. The snapshot
// load/save pair brackets the whole pass: load once before any write, save
// once after all writes. The unit of consistency is the run.
package workspace

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	corpuserrors "github.com/quizforge/quizforge/internal/errors"
	"github.com/quizforge/quizforge/internal/locale"
	"github.com/quizforge/quizforge/internal/logging"
	"github.com/quizforge/quizforge/internal/render"
	"github.com/quizforge/quizforge/internal/snapshot"
	"github.com/quizforge/quizforge/internal/types"
)

// Status classifies the outcome for one workspace file.
type Status string

const (
	// StatusGenerated means the file was written this run.
	StatusGenerated Status = "generated"
	// StatusPreserved means the file diverged from its recorded
	// fingerprint and was left untouched.
	StatusPreserved Status = "preserved"
	// StatusSkipped means the quiz produced no file for this locale.
	StatusSkipped Status = "skipped"
	// StatusFailed means the write failed.
	StatusFailed Status = "failed"
)

// Result reports the outcome for one quiz.
type Result struct {
	Quiz   int
	File   string
	Status Status
	Err    error
}

// Summary aggregates a whole synchronization pass.
type Summary struct {
	Generated int
	Preserved int
	Skipped   int
	Failed    int
	Results   []Result
}

func (s *Summary) add(r Result) {
	switch r.Status {
	case StatusGenerated:
		s.Generated++
	case StatusPreserved:
		s.Preserved++
	case StatusSkipped:
		s.Skipped++
	case StatusFailed:
		s.Failed++
	}
	s.Results = append(s.Results, r)
}

// Syncer regenerates the practice workspace for one locale.
type Syncer struct {
	// Dir is the workspace root.
	Dir string
	// SnapshotFile is the persisted fingerprint snapshot path.
	SnapshotFile string
	// Extension is the generated file extension.
	Extension string
	// Resolver supplies per-locale metadata resolution.
	Resolver locale.Resolver
	// Log receives per-item diagnostics; nil is allowed.
	Log logging.Logger
}

// Sync regenerates the workspace from the loaded corpus.
//
// In keep-changes mode a file is written only when its current on-disk
// fingerprint still matches the persisted one (the tool wrote it last), or
// when it does not exist on disk at all. Files a human edited are
// preserved. Without keep-changes the workspace is wiped and fully rebuilt.
//
// The in-memory snapshot is updated only for files actually written and is
// persisted once at the end of the pass. A corrupt persisted snapshot
// aborts before any destructive write.
func (s *Syncer) Sync(ctx context.Context, records []*types.QuizRecord, target string, keepChanges bool) (*Summary, error) {
	log := logging.OrNop(s.Log).WithComponent("workspace")

	previous, err := snapshot.Load(s.SnapshotFile)
	if err != nil {
		return nil, err
	}

	var updated snapshot.Snapshot
	if keepChanges {
		updated = previous.Clone()
	} else {
		// Full regenerate: wipe the workspace and start the snapshot
		// over so entries for removed quizzes do not linger.
		if err := os.RemoveAll(s.Dir); err != nil {
			return nil, corpuserrors.NewIOError(corpuserrors.ErrCodeWriteFailed, "clearing workspace", err).WithPath(s.Dir)
		}
		updated = make(snapshot.Snapshot)
	}

	current, err := snapshot.Fingerprint(s.Dir)
	if err != nil {
		return nil, err
	}
	overridable := snapshot.Overridable(previous, current)

	summary := &Summary{}
	for _, q := range records {
		summary.add(s.syncOne(ctx, log, q, target, keepChanges, current, overridable, updated))
	}

	if err := snapshot.Save(s.SnapshotFile, updated); err != nil {
		return summary, err
	}

	log.Info(ctx, "workspace synchronized",
		"locale", target,
		"generated", summary.Generated,
		"preserved", summary.Preserved,
		"skipped", summary.Skipped,
		"failed", summary.Failed)
	return summary, nil
}

func (s *Syncer) syncOne(ctx context.Context, log logging.Logger, q *types.QuizRecord, target string, keepChanges bool, current snapshot.Snapshot, overridable map[string]bool, updated snapshot.Snapshot) Result {
	if _, ranked := q.Difficulty.Rank(); !ranked {
		log.Debug(ctx, "skipping unranked quiz", "quiz", q.Number, "difficulty", q.Difficulty.String())
		return Result{Quiz: q.Number, Status: StatusSkipped, Err: corpuserrors.NewValidationError(
			corpuserrors.ErrCodeLocaleGap, "quiz difficulty is pending").WithQuiz(q.Number)}
	}

	meta := s.Resolver.Resolve(q, target)
	if meta.Title == "" {
		log.Debug(ctx, "skipping quiz without resolved title", "quiz", q.Number, "locale", target)
		return Result{Quiz: q.Number, Status: StatusSkipped, Err: corpuserrors.ErrLocaleGap(q.Number, target)}
	}
	if q.TemplateText == "" {
		log.Debug(ctx, "skipping quiz without template", "quiz", q.Number)
		return Result{Quiz: q.Number, Status: StatusSkipped, Err: corpuserrors.NewValidationError(
			corpuserrors.ErrCodeLocaleGap, "quiz has no template").WithQuiz(q.Number)}
	}

	name := q.WorkspaceFileName(s.Extension)
	if keepChanges && !writable(name, current, overridable) {
		log.Debug(ctx, "preserving locally edited file", "file", name)
		return Result{Quiz: q.Number, File: name, Status: StatusPreserved}
	}

	content := s.renderFile(q, meta, target)
	rel := q.Difficulty.String() + "/" + name
	path := filepath.Join(s.Dir, q.Difficulty.String(), name)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return Result{Quiz: q.Number, File: name, Status: StatusFailed,
			Err: corpuserrors.NewIOError(corpuserrors.ErrCodeWriteFailed, "creating difficulty folder", err).WithQuiz(q.Number).WithPath(path)}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return Result{Quiz: q.Number, File: name, Status: StatusFailed,
			Err: corpuserrors.NewIOError(corpuserrors.ErrCodeWriteFailed, "writing workspace file", err).WithQuiz(q.Number).WithPath(path)}
	}

	// Fingerprint from the bytes just written; writes are whole-file
	// replacements, so no reread is needed.
	updated[name] = snapshot.HashContent(rel, []byte(content))
	return Result{Quiz: q.Number, File: name, Status: StatusGenerated}
}

// writable implements the writability rule: a file may be written when its
// on-disk content still matches the last generation, or when it is brand
// new to the workspace.
func writable(name string, current snapshot.Snapshot, overridable map[string]bool) bool {
	if overridable[name] {
		return true
	}
	_, exists := current[name]
	return !exists
}

// renderFile builds the practice file content: a comment banner with the
// resolved metadata followed by the quiz template.
func (s *Syncer) renderFile(q *types.QuizRecord, meta types.ResolvedMetadata, target string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "// %d · %s [%s]\n", q.Number, render.TitleFor(q, meta, target), q.Difficulty)
	if len(meta.Tags) > 0 {
		fmt.Fprintf(&b, "// tags: %s\n", strings.Join(meta.Tags, ", "))
	}
	if meta.Author != nil && meta.Author.Name != "" {
		fmt.Fprintf(&b, "// by %s\n", meta.Author.Name)
	}
	b.WriteString("\n")
	b.WriteString(strings.TrimRight(q.TemplateText, "\n"))
	b.WriteString("\n")

	return b.String()
}
