// Package snapshot provides the content-addressed fingerprint cache that
// makes workspace regeneration safe.
//
// A Snapshot maps generated filenames to content digests. One snapshot is
// persisted across runs; fresh snapshots are computed per run for the
// workspace's current on-disk state and for newly generated content. The
// synchronizer compares the two to decide which files the tool may still
// overwrite.
package snapshot

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"

	corpuserrors "github.com/quizforge/quizforge/internal/errors"
)

// Snapshot maps a generated filename to its hex content digest. Keys are
// base filenames: directory structure under the fingerprinted root is
// flattened, which is safe because every generated item has a corpus-unique
// name.
type Snapshot map[string]string

// HashContent digests file content seeded with the file's own relative
// path, so identical content under two names never fingerprints equal. That
// property keeps the overridable-file comparison from confusing one file
// with another.
func HashContent(relPath string, content []byte) string {
	h := sha256.New()
	h.Write([]byte(relPath))
	h.Write(content)
	return hex.EncodeToString(h.Sum(nil))
}

// Fingerprint computes a fresh snapshot of every file under rootDir,
// descending into subdirectories. A missing root yields an empty snapshot.
func Fingerprint(rootDir string) (Snapshot, error) {
	snap := make(Snapshot)

	info, err := os.Stat(rootDir)
	if err != nil {
		if os.IsNotExist(err) {
			return snap, nil
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, corpuserrors.NewIOError(corpuserrors.ErrCodeWriteFailed, "fingerprint root is not a directory", nil).WithPath(rootDir)
	}

	err = filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(rootDir, path)
		if err != nil {
			return err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		snap[filepath.Base(path)] = HashContent(filepath.ToSlash(rel), content)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return snap, nil
}

// Load reads a persisted snapshot. An absent file yields an empty snapshot;
// a file that exists but cannot be parsed is a fatal error, because
// proceeding without the recorded fingerprints would risk overwriting
// hand-edited files.
func Load(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(Snapshot), nil
		}
		return nil, corpuserrors.ErrSnapshotCorrupt(path, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, corpuserrors.ErrSnapshotCorrupt(path, err)
	}
	if snap == nil {
		snap = make(Snapshot)
	}
	return snap, nil
}

// Save serializes and persists the snapshot, replacing the prior file
// monolithically.
func Save(path string, snap Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return corpuserrors.NewIOError(corpuserrors.ErrCodeWriteFailed, "creating snapshot directory", err).WithPath(path)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return corpuserrors.NewIOError(corpuserrors.ErrCodeWriteFailed, "writing snapshot", err).WithPath(path)
	}
	return nil
}

// Clone returns an independent copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Overridable computes the set of filenames whose current on-disk
// fingerprint still matches what the tool wrote last time. Any divergence
// means a human touched the file and it must be preserved.
func Overridable(previous, current Snapshot) map[string]bool {
	out := make(map[string]bool)
	for name, digest := range current {
		if prev, ok := previous[name]; ok && prev == digest {
			out[name] = true
		}
	}
	return out
}
