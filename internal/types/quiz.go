// Package types provides common type definitions used throughout the quizforge CLI.
// This package contains shared types to avoid circular dependencies between packages.
package types

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Difficulty is the ranking bucket parsed from a quiz folder name.
type Difficulty string

const (
	DifficultyWarm    Difficulty = "warm"
	DifficultyEasy    Difficulty = "easy"
	DifficultyMedium  Difficulty = "medium"
	DifficultyHard    Difficulty = "hard"
	DifficultyExtreme Difficulty = "extreme"
	// DifficultyPending marks quizzes not yet ranked. Pending quizzes are
	// excluded from rank-ordered listings.
	DifficultyPending Difficulty = "pending"
)

// difficultyRank fixes the total order warm < easy < medium < hard < extreme.
// Pending is deliberately absent: it has no position in the order.
var difficultyRank = map[Difficulty]int{
	DifficultyWarm:    0,
	DifficultyEasy:    1,
	DifficultyMedium:  2,
	DifficultyHard:    3,
	DifficultyExtreme: 4,
}

// difficultyColors maps each difficulty to its badge color. Immutable
// configuration, not mutable singleton state.
var difficultyColors = map[Difficulty]string{
	DifficultyWarm:    "teal",
	DifficultyEasy:    "7aad0c",
	DifficultyMedium:  "d9901a",
	DifficultyHard:    "de3d37",
	DifficultyExtreme: "b11b8d",
	DifficultyPending: "gray",
}

// ParseDifficulty validates a difficulty token from a folder name.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(s))
	switch d {
	case DifficultyWarm, DifficultyEasy, DifficultyMedium,
		DifficultyHard, DifficultyExtreme, DifficultyPending:
		return d, nil
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

// Rank returns the position of d in the fixed difficulty order and whether
// d participates in that order at all (pending does not).
func (d Difficulty) Rank() (int, bool) {
	r, ok := difficultyRank[d]
	return r, ok
}

// Color returns the badge color associated with d.
func (d Difficulty) Color() string {
	if c, ok := difficultyColors[d]; ok {
		return c
	}
	return difficultyColors[DifficultyPending]
}

func (d Difficulty) String() string { return string(d) }

// AuthorInfo identifies the quiz author as declared in the metadata file.
// It is a nested mapping in the YAML and is replaced wholesale, never
// field-merged, during locale resolution.
type AuthorInfo struct {
	Name   string `yaml:"name"`
	Email  string `yaml:"email"`
	GitHub string `yaml:"github"`
}

// FlexList holds a metadata field that authors may write either as a YAML
// sequence or as a single comma-delimited scalar. The raw shape is preserved
// here; the locale resolver is the single place that normalizes it to a
// clean list.
type FlexList struct {
	// List holds the parsed values when the source was a sequence.
	List []string
	// Raw holds the scalar text when the source was a scalar.
	Raw string
	// Scalar reports which of the two shapes the source used.
	Scalar bool
	// Defined reports whether the field was present at all. A defined
	// field overrides the default locale's value wholesale.
	Defined bool
}

// UnmarshalYAML accepts either a sequence node or a scalar node.
func (l *FlexList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		l.List = items
		l.Scalar = false
		l.Defined = true
		return nil
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			// A bare "tags:" key defines nothing.
			return nil
		}
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		l.Raw = s
		l.Scalar = true
		l.Defined = true
		return nil
	default:
		return fmt.Errorf("unsupported YAML node kind %d for list field", value.Kind)
	}
}

// Metadata is the per-locale view of a quiz's info file. Any field may be
// absent for a given locale; resolution against the default locale fills
// the gaps.
type Metadata struct {
	Title   string      `yaml:"title"`
	Author  *AuthorInfo `yaml:"author"`
	Tags    FlexList    `yaml:"tags"`
	Related FlexList    `yaml:"related"`
	Excerpt string      `yaml:"excerpt"`
}

// IsEmpty reports whether no field of m carries a value. Empty metadata is
// never stored as a locale variant.
func (m Metadata) IsEmpty() bool {
	return m.Title == "" && m.Author == nil && !m.Tags.Defined &&
		!m.Related.Defined && m.Excerpt == ""
}

// ResolvedMetadata is the fully-populated, request-scoped view of a quiz's
// metadata for one target locale. It is derived on demand and never
// persisted.
type ResolvedMetadata struct {
	Title   string
	Author  *AuthorInfo
	Excerpt string
	// Tags and Related are always non-nil after resolution, even when
	// both locales omit them.
	Tags    []string
	Related []string
}

// QuizRecord is one corpus entry. The corpus loader owns construction;
// records are never mutated after they are returned.
type QuizRecord struct {
	// Number is the unique identifier parsed from the folder name.
	Number int
	// Difficulty is parsed from the folder name.
	Difficulty Difficulty
	// Slug is the trailing folder-name segment used in generated filenames.
	Slug string
	// Path is the folder path relative to the corpus root.
	Path string
	// MetadataByLocale holds each locale's partial metadata view.
	MetadataByLocale map[string]Metadata
	// ReadmeByLocale holds each locale's README body with generated
	// regions stripped; only authored content is stored.
	ReadmeByLocale map[string]string
	// TemplateText is the locale-independent practice template.
	TemplateText string
	// TestsText is the locale-independent test text, when present.
	TestsText string
}

// WorkspaceFileName returns the flat filename a quiz occupies inside the
// practice workspace, e.g. "easy-4-pick.ts". Quiz numbers are unique
// corpus-wide, so these names never collide.
func (q *QuizRecord) WorkspaceFileName(ext string) string {
	return fmt.Sprintf("%s-%d-%s%s", q.Difficulty, q.Number, q.Slug, ext)
}
