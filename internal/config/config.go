// Package config provides configuration management for quizforge using
// Viper for flexible configuration loading from files, environment
// variables, and command-line flags.
//
// The configuration system supports YAML files and environment variable
// overrides with the QUIZFORGE_ prefix. It manages the corpus location, the
// supported locale set, workspace generation settings, and the translation
// endpoint.
package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Corpus    CorpusConfig    `yaml:"corpus"`
	Workspace WorkspaceConfig `yaml:"workspace"`
	Translate TranslateConfig `yaml:"translate"`
}

// CorpusConfig locates the quiz corpus and fixes the supported locale set.
type CorpusConfig struct {
	// Root is the directory holding the numbered quiz folders.
	Root string `yaml:"root"`
	// Locales is the fixed set of supported locale codes.
	Locales []string `yaml:"locales"`
	// DefaultLocale is the designated fallback locale; it must be a
	// member of Locales.
	DefaultLocale string `yaml:"default_locale"`
}

// WorkspaceConfig controls practice-workspace generation.
type WorkspaceConfig struct {
	// Dir is the derived workspace root.
	Dir string `yaml:"dir"`
	// SnapshotFile is the persisted fingerprint snapshot path, relative
	// to the working directory.
	SnapshotFile string `yaml:"snapshot_file"`
	// Extension is the file extension for generated practice files.
	Extension string `yaml:"extension"`
}

// TranslateConfig describes the external translation collaborator.
type TranslateConfig struct {
	// Endpoint is the translation service URL. Empty disables the
	// translate command.
	Endpoint string `yaml:"endpoint"`
	// KeyEnv names the environment variable holding the API key.
	KeyEnv string `yaml:"key_env"`
}

// Load reads the configuration bound by viper and applies defaults.
func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Handle slices set via viper (workaround for viper slice handling)
	if viper.IsSet("corpus.locales") && len(config.Corpus.Locales) == 0 {
		config.Corpus.Locales = viper.GetStringSlice("corpus.locales")
	}

	// Underscore keys do not map onto field names (workaround for viper
	// key handling)
	if viper.IsSet("corpus.default_locale") && config.Corpus.DefaultLocale == "" {
		config.Corpus.DefaultLocale = viper.GetString("corpus.default_locale")
	}
	if viper.IsSet("workspace.snapshot_file") && config.Workspace.SnapshotFile == "" {
		config.Workspace.SnapshotFile = viper.GetString("workspace.snapshot_file")
	}
	if viper.IsSet("translate.key_env") && config.Translate.KeyEnv == "" {
		config.Translate.KeyEnv = viper.GetString("translate.key_env")
	}

	applyDefaults(&config)

	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func applyDefaults(config *Config) {
	if config.Corpus.Root == "" {
		config.Corpus.Root = "./questions"
	}
	if len(config.Corpus.Locales) == 0 {
		config.Corpus.Locales = []string{"en", "zh-CN", "ja", "ko"}
	}
	if config.Corpus.DefaultLocale == "" {
		config.Corpus.DefaultLocale = "en"
	}
	if config.Workspace.Dir == "" {
		config.Workspace.Dir = "./playground"
	}
	if config.Workspace.SnapshotFile == "" {
		config.Workspace.SnapshotFile = ".quizforge/snapshot.json"
	}
	if config.Workspace.Extension == "" {
		config.Workspace.Extension = ".ts"
	}
	if config.Translate.KeyEnv == "" {
		config.Translate.KeyEnv = "QUIZFORGE_TRANSLATE_KEY"
	}
}
