// Package render builds the generated HTML/Markdown fragments substituted
// into README regions: difficulty and tag badges, per-quiz header and
// footer blocks, and the grouped corpus index.
package render

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/quizforge/quizforge/internal/locale"
	"github.com/quizforge/quizforge/internal/types"
)

// Badge returns a shields.io badge image tag.
func Badge(label, value, color string) string {
	return fmt.Sprintf(`<img src="https://img.shields.io/badge/%s-%s-%s" alt="%s"/>`,
		badgeEscape(label), badgeEscape(value), color, label)
}

// badgeEscape applies the shields.io path escaping rules.
func badgeEscape(s string) string {
	s = strings.ReplaceAll(s, "-", "--")
	s = strings.ReplaceAll(s, "_", "__")
	s = strings.ReplaceAll(s, " ", "%20")
	s = strings.ReplaceAll(s, "#", "%23")
	return s
}

// DifficultyBadge returns the colored badge for a quiz's difficulty bucket.
func DifficultyBadge(d types.Difficulty) string {
	return Badge(d.String(), "", d.Color())
}

// TagBadges returns one badge per resolved tag.
func TagBadges(tags []string) string {
	parts := make([]string, 0, len(tags))
	for _, tag := range tags {
		parts = append(parts, Badge("#"+tag, "", "999"))
	}
	return strings.Join(parts, " ")
}

// TitleFor returns the resolved title, falling back to a title-cased slug
// when no locale defines one.
func TitleFor(q *types.QuizRecord, meta types.ResolvedMetadata, loc string) string {
	if meta.Title != "" {
		return meta.Title
	}
	tag, err := language.Parse(loc)
	if err != nil {
		tag = language.English
	}
	return cases.Title(tag).String(strings.ReplaceAll(q.Slug, "-", " "))
}

// QuizHeader builds the generated header fragment for one quiz README.
func QuizHeader(q *types.QuizRecord, meta types.ResolvedMetadata, loc string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<h1>%s %s", TitleFor(q, meta, loc), DifficultyBadge(q.Difficulty))
	fmt.Fprintf(&b, " %s", Badge(fmt.Sprintf("#%d", q.Number), "", "999"))
	if len(meta.Tags) > 0 {
		b.WriteString(" " + TagBadges(meta.Tags))
	}
	b.WriteString("</h1>")

	if meta.Author != nil && meta.Author.Name != "" {
		author := meta.Author.Name
		if meta.Author.GitHub != "" {
			author = fmt.Sprintf(`<a href="https://github.com/%s" target="_blank">%s</a>`,
				meta.Author.GitHub, meta.Author.Name)
		}
		fmt.Fprintf(&b, "\n\n> by %s", author)
	}

	return b.String()
}

// QuizFooter builds the generated footer fragment for one quiz README,
// linking back to the index and out to related quizzes.
func QuizFooter(q *types.QuizRecord, meta types.ResolvedMetadata, records []*types.QuizRecord, loc string, defaultLocale string) string {
	var b strings.Builder

	fmt.Fprintf(&b, `<a href="%s"><img src="https://img.shields.io/badge/-Back-grey" alt="Back"/></a>`,
		indexFileName(loc, defaultLocale))

	if len(meta.Related) > 0 {
		byPath := make(map[string]*types.QuizRecord, len(records))
		for _, record := range records {
			byPath[record.Path] = record
		}

		var links []string
		for _, rel := range meta.Related {
			if target, ok := byPath[rel]; ok {
				links = append(links, fmt.Sprintf("[%d](../%s/%s)", target.Number, target.Path, ReadmeFileName(loc, defaultLocale)))
			}
		}
		if len(links) > 0 {
			b.WriteString("\n\nRelated: " + strings.Join(links, " "))
		}
	}

	return b.String()
}

// IndexRegions builds the generated header and footer fragments for a
// per-locale corpus index page. Quizzes are grouped by difficulty in rank
// order; pending quizzes are listed last, unranked.
func IndexRegions(records []*types.QuizRecord, resolver locale.Resolver, loc string) (header, footer string) {
	groups := make(map[types.Difficulty][]*types.QuizRecord)
	for _, record := range records {
		groups[record.Difficulty] = append(groups[record.Difficulty], record)
	}

	order := make([]types.Difficulty, 0, len(groups))
	for d := range groups {
		order = append(order, d)
	}
	sort.Slice(order, func(i, j int) bool {
		ri, iok := order[i].Rank()
		rj, jok := order[j].Rank()
		if iok != jok {
			return iok // ranked difficulties before pending
		}
		return ri < rj
	})

	var b strings.Builder
	for _, d := range order {
		fmt.Fprintf(&b, "### %s %s\n\n", d, DifficultyBadge(d))
		for _, record := range groups[d] {
			meta := resolver.Resolve(record, loc)
			fmt.Fprintf(&b, "- [%d · %s](./%s/%s)\n",
				record.Number, TitleFor(record, meta, loc), record.Path, ReadmeFileName(loc, resolver.DefaultLocale))
		}
		b.WriteString("\n")
	}

	footer = fmt.Sprintf("Total: %d quizzes", len(records))
	return strings.TrimRight(b.String(), "\n"), footer
}

// ReadmeFileName returns the README filename for a locale, suffix-free for
// the default locale. This mirrors the locale-suffixed sibling convention
// the variation store reads.
func ReadmeFileName(loc, defaultLocale string) string {
	if loc == defaultLocale {
		return "README.md"
	}
	return "README." + loc + ".md"
}

func indexFileName(loc, defaultLocale string) string {
	return "../" + ReadmeFileName(loc, defaultLocale)
}
