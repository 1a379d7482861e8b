package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quizforge/quizforge/internal/types"
)

func quizWith(metadata map[string]types.Metadata) *types.QuizRecord {
	return &types.QuizRecord{
		Number:           4,
		Difficulty:       types.DifficultyEasy,
		Slug:             "pick",
		Path:             "4-easy-pick",
		MetadataByLocale: metadata,
	}
}

func list(items ...string) types.FlexList {
	return types.FlexList{List: items, Defined: true}
}

func scalar(raw string) types.FlexList {
	return types.FlexList{Raw: raw, Scalar: true, Defined: true}
}

func TestResolve(t *testing.T) {
	r := Resolver{DefaultLocale: "en"}

	t.Run("default-only metadata resolves identically for any locale", func(t *testing.T) {
		q := quizWith(map[string]types.Metadata{
			"en": {Title: "Pick", Tags: list("union", "built-in")},
		})

		for _, target := range []string{"ja", "ko", "zh-CN"} {
			got := r.Resolve(q, target)
			assert.Equal(t, "Pick", got.Title, target)
			assert.Equal(t, []string{"union", "built-in"}, got.Tags, target)
		}
	})

	t.Run("target field wins field-by-field", func(t *testing.T) {
		q := quizWith(map[string]types.Metadata{
			"en": {Title: "Pick", Excerpt: "english excerpt"},
			"ja": {Title: "ピック"},
		})

		got := r.Resolve(q, "ja")

		assert.Equal(t, "ピック", got.Title)
		assert.Equal(t, "english excerpt", got.Excerpt, "default fills the gap")
	})

	t.Run("nested author block replaces wholesale", func(t *testing.T) {
		q := quizWith(map[string]types.Metadata{
			"en": {Title: "Pick", Author: &types.AuthorInfo{Name: "anya", Email: "a@example.com", GitHub: "anya"}},
			"ja": {Author: &types.AuthorInfo{Name: "訳者"}},
		})

		got := r.Resolve(q, "ja")

		assert.Equal(t, "訳者", got.Author.Name)
		assert.Empty(t, got.Author.Email, "no deep merge: target block replaces the whole mapping")
	})

	t.Run("lists never concatenate across locales", func(t *testing.T) {
		q := quizWith(map[string]types.Metadata{
			"en": {Title: "Pick", Tags: list("a", "b")},
			"ja": {Tags: list("c")},
		})

		got := r.Resolve(q, "ja")

		assert.Equal(t, []string{"c"}, got.Tags)
	})

	t.Run("undefined target list falls back to default list", func(t *testing.T) {
		q := quizWith(map[string]types.Metadata{
			"en": {Title: "Pick", Related: list("1-easy-foo")},
			"ja": {Title: "ピック"},
		})

		got := r.Resolve(q, "ja")

		assert.Equal(t, []string{"1-easy-foo"}, got.Related)
	})

	t.Run("scalar tags split on commas and trim", func(t *testing.T) {
		q := quizWith(map[string]types.Metadata{
			"en": {Title: "Pick", Tags: scalar("union, built-in, , infer ")},
		})

		got := r.Resolve(q, "en")

		assert.Equal(t, []string{"union", "built-in", "infer"}, got.Tags)
	})

	t.Run("tags and related are never nil", func(t *testing.T) {
		q := quizWith(map[string]types.Metadata{"en": {Title: "Pick"}})

		got := r.Resolve(q, "ja")

		assert.NotNil(t, got.Tags)
		assert.NotNil(t, got.Related)
		assert.Empty(t, got.Tags)
		assert.Empty(t, got.Related)
	})

	t.Run("resolution is pure", func(t *testing.T) {
		q := quizWith(map[string]types.Metadata{
			"en": {Title: "Pick", Tags: scalar("a,b")},
			"ja": {Title: "ピック"},
		})

		first := r.Resolve(q, "ja")
		second := r.Resolve(q, "ja")

		assert.Equal(t, first, second)
		assert.Equal(t, "Pick", q.MetadataByLocale["en"].Title, "record is not mutated")
	})
}

func TestReadmeBody(t *testing.T) {
	r := Resolver{DefaultLocale: "en"}
	q := quizWith(nil)
	q.ReadmeByLocale = map[string]string{"en": "english body", "ja": "japanese body"}

	assert.Equal(t, "japanese body", r.ReadmeBody(q, "ja"))
	assert.Equal(t, "english body", r.ReadmeBody(q, "ko"), "missing locale falls back to default")
}
