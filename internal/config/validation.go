package config

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/text/language"
)

// Validate checks a loaded configuration for internal consistency. Locale
// codes must be parseable BCP-47 tags and the default locale must be a
// member of the supported set.
func Validate(config *Config) error {
	if err := validation.ValidateStruct(&config.Corpus,
		validation.Field(&config.Corpus.Root, validation.Required),
		validation.Field(&config.Corpus.Locales, validation.Required, validation.Each(validation.By(validLocale))),
		validation.Field(&config.Corpus.DefaultLocale, validation.Required, validation.By(validLocale)),
	); err != nil {
		return fmt.Errorf("corpus config: %w", err)
	}

	if err := validation.ValidateStruct(&config.Workspace,
		validation.Field(&config.Workspace.Dir, validation.Required),
		validation.Field(&config.Workspace.SnapshotFile, validation.Required),
	); err != nil {
		return fmt.Errorf("workspace config: %w", err)
	}

	if !contains(config.Corpus.Locales, config.Corpus.DefaultLocale) {
		return fmt.Errorf("default locale %q is not in the supported locale set %v",
			config.Corpus.DefaultLocale, config.Corpus.Locales)
	}

	return nil
}

func validLocale(value interface{}) error {
	code, _ := value.(string)
	if code == "" {
		return fmt.Errorf("empty locale code")
	}
	if _, err := language.Parse(code); err != nil {
		return fmt.Errorf("invalid locale code %q: %w", code, err)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
