// Package cmd provides the command-line interface for quizforge with
// configuration management supporting multiple configuration sources.
//
// Configuration precedence, highest first:
//  1. Command-line flags (--config, --log-level)
//  2. QUIZFORGE_CONFIG_FILE environment variable
//  3. Individual environment variables (QUIZFORGE_CORPUS_ROOT, ...)
//  4. Configuration file (.quizforge.yml in the working directory)
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quizforge/quizforge/internal/config"
	"github.com/quizforge/quizforge/internal/logging"
)

var (
	cfgFile  string
	logLevel string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "quizforge",
	Short: "Maintain a multi-locale quiz corpus and its derived artifacts",
	Long: `Quizforge maintains a directory of numbered quiz folders with per-locale
README, metadata, and template files, and regenerates the derived artifacts:
index pages, per-quiz README regions, and a local practice workspace.

Regeneration never destroys user edits: generated README content lives
between explicit markers, and the practice workspace is rebuilt through a
content-addressed snapshot that detects hand-edited files and preserves
them.

Quick Start:
  quizforge list                  List quizzes grouped by difficulty
  quizforge generate              Regenerate index pages and README regions
  quizforge sync --locale ja      Rebuild the ja practice workspace
  quizforge sync -l ja --keep-changes
                                  Rebuild, preserving locally edited files`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .quizforge.yml, can also use QUIZFORGE_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

// initConfig initializes viper with the config file and environment
// overrides.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("QUIZFORGE_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".quizforge")
	}

	// QUIZFORGE_CORPUS_ROOT, QUIZFORGE_WORKSPACE_DIR, ...
	viper.SetEnvPrefix("QUIZFORGE")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger builds the CLI logger from the persistent --log-level flag.
func newLogger() logging.Logger {
	return logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.ParseLevel(logLevel),
		Format: "text",
		Output: os.Stderr,
	})
}

// loadConfig wraps config.Load with a uniform error message.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
