package locale

import (
	"strings"

	"github.com/quizforge/quizforge/internal/types"
)

// Resolver merges per-locale metadata views into one record. It is pure:
// resolving the same inputs twice yields the same output, and nothing on
// the quiz record is mutated.
type Resolver struct {
	// DefaultLocale is the designated fallback locale.
	DefaultLocale string
}

// Resolve produces the fully-populated metadata for one (quiz, target
// locale) pair.
//
// Fields merge shallowly: the target locale wins field-by-field when it
// defines a field, and nested mappings (the author block) are replaced
// wholesale rather than deep-merged. The list-valued fields tags and
// related follow their own rule after the merge: the target locale's list
// when defined, else the default locale's, else empty. Lists are never
// concatenated across locales. Tags authored as a single comma-delimited
// scalar are split, trimmed, and cleared of empty elements.
func (r Resolver) Resolve(q *types.QuizRecord, target string) types.ResolvedMetadata {
	def := q.MetadataByLocale[r.DefaultLocale]
	tgt := q.MetadataByLocale[target]

	merged := types.ResolvedMetadata{
		Title:   def.Title,
		Author:  def.Author,
		Excerpt: def.Excerpt,
	}
	if tgt.Title != "" {
		merged.Title = tgt.Title
	}
	if tgt.Author != nil {
		merged.Author = tgt.Author
	}
	if tgt.Excerpt != "" {
		merged.Excerpt = tgt.Excerpt
	}

	merged.Tags = normalizeList(overrideList(def.Tags, tgt.Tags))
	merged.Related = normalizeList(overrideList(def.Related, tgt.Related))

	return merged
}

// ReadmeBody returns the authored README body for the target locale,
// falling back to the default locale's body.
func (r Resolver) ReadmeBody(q *types.QuizRecord, target string) string {
	if body, ok := q.ReadmeByLocale[target]; ok {
		return body
	}
	return q.ReadmeByLocale[r.DefaultLocale]
}

// overrideList applies the list precedence rule: a defined target value
// replaces the default wholesale.
func overrideList(def, tgt types.FlexList) types.FlexList {
	if tgt.Defined {
		return tgt
	}
	return def
}

// normalizeList flattens a raw list field to a clean slice. A scalar value
// is treated as comma-delimited; elements are trimmed and empties dropped.
// The result is never nil.
func normalizeList(l types.FlexList) []string {
	if !l.Defined {
		return []string{}
	}

	items := l.List
	if l.Scalar {
		items = strings.Split(l.Raw, ",")
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
