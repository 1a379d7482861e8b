package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func TestDefaults(t *testing.T) {
	cfg := validConfig()

	assert.Equal(t, "./questions", cfg.Corpus.Root)
	assert.Equal(t, "en", cfg.Corpus.DefaultLocale)
	assert.Contains(t, cfg.Corpus.Locales, "en")
	assert.Equal(t, "./playground", cfg.Workspace.Dir)
	assert.Equal(t, ".quizforge/snapshot.json", cfg.Workspace.SnapshotFile)
	assert.Equal(t, ".ts", cfg.Workspace.Extension)

	require.NoError(t, Validate(cfg))
}

func TestValidate(t *testing.T) {
	t.Run("rejects invalid locale codes", func(t *testing.T) {
		cfg := validConfig()
		cfg.Corpus.Locales = []string{"en", "not a locale"}

		assert.Error(t, Validate(cfg))
	})

	t.Run("rejects a default locale outside the supported set", func(t *testing.T) {
		cfg := validConfig()
		cfg.Corpus.DefaultLocale = "fr"

		err := Validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "default locale")
	})

	t.Run("rejects an empty locale set", func(t *testing.T) {
		cfg := validConfig()
		cfg.Corpus.Locales = nil

		assert.Error(t, Validate(cfg))
	})

	t.Run("rejects a missing corpus root", func(t *testing.T) {
		cfg := validConfig()
		cfg.Corpus.Root = ""

		assert.Error(t, Validate(cfg))
	})

	t.Run("accepts region-qualified locales", func(t *testing.T) {
		cfg := validConfig()
		cfg.Corpus.Locales = []string{"en", "zh-CN", "pt-BR"}

		assert.NoError(t, Validate(cfg))
	})
}
