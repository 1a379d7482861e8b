package locale

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseText(data []byte) (string, bool, error) {
	s := string(data)
	return s, s != "", nil
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestVariantPath(t *testing.T) {
	assert.Equal(t, filepath.Join("q", "info.ja.yml"), VariantPath(filepath.Join("q", "info.yml"), "ja"))
	assert.Equal(t, filepath.Join("q", "README.zh-CN.md"), VariantPath(filepath.Join("q", "README.md"), "zh-CN"))
}

func TestLoadVariants(t *testing.T) {
	ctx := context.Background()
	locales := []string{"en", "ja", "ko"}

	t.Run("collects locale-suffixed siblings", func(t *testing.T) {
		dir := t.TempDir()
		canonical := filepath.Join(dir, "info.yml")
		writeFile(t, filepath.Join(dir, "info.en.yml"), "english")
		writeFile(t, filepath.Join(dir, "info.ja.yml"), "japanese")

		got := LoadVariants(ctx, nil, canonical, locales, "en", parseText)

		assert.Equal(t, map[string]string{"en": "english", "ja": "japanese"}, got)
	})

	t.Run("default locale falls back to canonical file", func(t *testing.T) {
		dir := t.TempDir()
		canonical := filepath.Join(dir, "info.yml")
		writeFile(t, canonical, "canonical")
		writeFile(t, filepath.Join(dir, "info.ja.yml"), "japanese")

		got := LoadVariants(ctx, nil, canonical, locales, "en", parseText)

		assert.Equal(t, "canonical", got["en"])
		assert.Equal(t, "japanese", got["ja"])
	})

	t.Run("suffixed default wins over canonical", func(t *testing.T) {
		dir := t.TempDir()
		canonical := filepath.Join(dir, "info.yml")
		writeFile(t, canonical, "canonical")
		writeFile(t, filepath.Join(dir, "info.en.yml"), "suffixed")

		got := LoadVariants(ctx, nil, canonical, locales, "en", parseText)

		assert.Equal(t, "suffixed", got["en"])
	})

	t.Run("missing files produce no entries", func(t *testing.T) {
		dir := t.TempDir()
		got := LoadVariants(ctx, nil, filepath.Join(dir, "info.yml"), locales, "en", parseText)
		assert.Empty(t, got)
	})

	t.Run("empty values are never stored", func(t *testing.T) {
		dir := t.TempDir()
		canonical := filepath.Join(dir, "info.yml")
		writeFile(t, filepath.Join(dir, "info.ja.yml"), "")

		got := LoadVariants(ctx, nil, canonical, locales, "en", parseText)

		_, ok := got["ja"]
		assert.False(t, ok)
	})

	t.Run("parse error degrades to missing entry", func(t *testing.T) {
		dir := t.TempDir()
		canonical := filepath.Join(dir, "info.yml")
		writeFile(t, filepath.Join(dir, "info.ja.yml"), "bad")
		writeFile(t, filepath.Join(dir, "info.ko.yml"), "good")

		parse := func(data []byte) (string, bool, error) {
			if string(data) == "bad" {
				return "", false, fmt.Errorf("boom")
			}
			return string(data), true, nil
		}

		got := LoadVariants(ctx, nil, canonical, locales, "en", parse)

		_, ok := got["ja"]
		assert.False(t, ok, "failed variant must not abort or be stored")
		assert.Equal(t, "good", got["ko"], "other locales load despite one failure")
	})
}
