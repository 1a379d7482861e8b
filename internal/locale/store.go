// Package locale implements the locale variation store and the metadata
// resolver.
//
// The store loads every locale's view of one logical file using the
// `<name>.<locale>.<ext>` sibling convention. The resolver merges a quiz's
// default-locale and target-locale views into one fully-populated metadata
// record with documented precedence rules.
package locale

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/quizforge/quizforge/internal/logging"
)

// ParseFunc converts raw file bytes into a value. The boolean reports
// whether the value is non-empty; empty values are never stored as a locale
// variant. A returned error degrades to "no entry for that locale".
type ParseFunc[T any] func(data []byte) (T, bool, error)

// VariantPath returns the locale-suffixed sibling of a canonical path:
// ".../info.yml" becomes ".../info.ja.yml".
func VariantPath(canonical, locale string) string {
	ext := filepath.Ext(canonical)
	base := strings.TrimSuffix(canonical, ext)
	return base + "." + locale + ext
}

// LoadVariants produces the per-locale mapping for one logical file.
//
// For each supported locale the locale-suffixed sibling is consulted; if it
// exists and parses to a non-empty value it is included. When the default
// locale has no entry after the scan, the unsuffixed canonical path serves
// as the default-locale value. Missing files are not errors, and a parse or
// read failure for one file is logged and skipped rather than aborting the
// load.
func LoadVariants[T any](ctx context.Context, log logging.Logger, canonical string, locales []string, defaultLocale string, parse ParseFunc[T]) map[string]T {
	log = logging.OrNop(log)
	out := make(map[string]T)

	for _, loc := range locales {
		path := VariantPath(canonical, loc)
		value, ok, err := loadOne(path, parse)
		if err != nil {
			log.Warn(ctx, err, "skipping unreadable locale variant",
				"path", path, "locale", loc)
			continue
		}
		if ok {
			out[loc] = value
		}
	}

	if _, ok := out[defaultLocale]; !ok {
		value, ok, err := loadOne(canonical, parse)
		if err != nil {
			log.Warn(ctx, err, "skipping unreadable canonical file",
				"path", canonical, "locale", defaultLocale)
			return out
		}
		if ok {
			out[defaultLocale] = value
		}
	}

	return out
}

// loadOne reads and parses a single variant file. A missing file yields
// (zero, false, nil).
func loadOne[T any](path string, parse ParseFunc[T]) (T, bool, error) {
	var zero T

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return zero, false, nil
		}
		return zero, false, err
	}

	value, ok, err := parse(data)
	if err != nil {
		return zero, false, err
	}
	if !ok {
		return zero, false, nil
	}
	return value, true, nil
}
