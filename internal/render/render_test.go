package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quizforge/quizforge/internal/locale"
	"github.com/quizforge/quizforge/internal/types"
)

func TestBadgeEscape(t *testing.T) {
	badge := Badge("built-in", "", "999")
	assert.Contains(t, badge, "built--in", "hyphens double for shields.io")
	assert.NotContains(t, badge, "built-in-")
}

func TestTitleFor(t *testing.T) {
	q := &types.QuizRecord{Number: 4, Difficulty: types.DifficultyEasy, Slug: "deep-readonly"}

	assert.Equal(t, "Pick", TitleFor(q, types.ResolvedMetadata{Title: "Pick"}, "en"))
	assert.Equal(t, "Deep Readonly", TitleFor(q, types.ResolvedMetadata{}, "en"),
		"missing title falls back to the title-cased slug")
}

func TestQuizHeader(t *testing.T) {
	q := &types.QuizRecord{Number: 4, Difficulty: types.DifficultyEasy, Slug: "pick"}
	meta := types.ResolvedMetadata{
		Title:  "Pick",
		Tags:   []string{"union", "built-in"},
		Author: &types.AuthorInfo{Name: "anya", GitHub: "anya"},
	}

	got := QuizHeader(q, meta, "en")

	assert.Contains(t, got, "Pick")
	assert.Contains(t, got, "easy")
	assert.Contains(t, got, "github.com/anya")
	assert.Contains(t, got, "%23union")
}

func TestIndexRegions(t *testing.T) {
	resolver := locale.Resolver{DefaultLocale: "en"}
	records := []*types.QuizRecord{
		{Number: 9, Difficulty: types.DifficultyHard, Slug: "deep", Path: "9-hard-deep",
			MetadataByLocale: map[string]types.Metadata{"en": {Title: "Deep"}}},
		{Number: 4, Difficulty: types.DifficultyEasy, Slug: "pick", Path: "4-easy-pick",
			MetadataByLocale: map[string]types.Metadata{"en": {Title: "Pick"}}},
		{Number: 99, Difficulty: types.DifficultyPending, Slug: "new", Path: "99-pending-new",
			MetadataByLocale: map[string]types.Metadata{"en": {Title: "New"}}},
	}

	header, footer := IndexRegions(records, resolver, "en")

	easyAt := strings.Index(header, "### easy")
	hardAt := strings.Index(header, "### hard")
	pendingAt := strings.Index(header, "### pending")
	assert.True(t, easyAt >= 0 && hardAt >= 0 && pendingAt >= 0)
	assert.True(t, easyAt < hardAt, "difficulty groups follow rank order")
	assert.True(t, hardAt < pendingAt, "pending groups sort last")
	assert.Contains(t, header, "(./4-easy-pick/README.md)")
	assert.Contains(t, footer, "3 quizzes")
}

func TestIndexRegionsLocaleLinks(t *testing.T) {
	resolver := locale.Resolver{DefaultLocale: "en"}
	records := []*types.QuizRecord{
		{Number: 4, Difficulty: types.DifficultyEasy, Slug: "pick", Path: "4-easy-pick",
			MetadataByLocale: map[string]types.Metadata{"en": {Title: "Pick"}, "ja": {Title: "ピック"}}},
	}

	header, _ := IndexRegions(records, resolver, "ja")

	assert.Contains(t, header, "ピック", "titles resolve for the target locale")
	assert.Contains(t, header, "README.ja.md", "links point at the locale-suffixed README")
}

func TestReadmeFileName(t *testing.T) {
	assert.Equal(t, "README.md", ReadmeFileName("en", "en"))
	assert.Equal(t, "README.zh-CN.md", ReadmeFileName("zh-CN", "en"))
}
