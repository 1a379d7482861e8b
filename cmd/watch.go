package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:     "watch",
	Aliases: []string{"w"},
	Short:   "Watch the corpus and regenerate documentation on change",
	Long: `Watch the corpus directory for changes to metadata, README, and template
files and rerun the documentation regeneration with a short debounce.

Examples:
  quizforge watch
  quizforge watch --debounce 1s`,
	RunE: runWatch,
}

var watchDebounce time.Duration

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 300*time.Millisecond, "Delay before regenerating after a burst of changes")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the corpus root and every quiz folder; fsnotify is not
	// recursive.
	if err := watcher.Add(cfg.Corpus.Root); err != nil {
		return fmt.Errorf("failed to watch corpus root: %w", err)
	}
	entries, err := os.ReadDir(cfg.Corpus.Root)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			if err := watcher.Add(filepath.Join(cfg.Corpus.Root, entry.Name())); err != nil {
				log.Warn(ctx, err, "failed to watch quiz folder", "folder", entry.Name())
			}
		}
	}

	fmt.Printf("Watching %s for changes (Ctrl+C to stop)\n", cfg.Corpus.Root)

	var timer *time.Timer
	regenerate := func() {
		if err := runGenerateCommand(cmd, nil); err != nil {
			log.Error(ctx, err, "regeneration failed")
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			log.Debug(ctx, "change detected", "path", event.Name, "op", event.Op.String())

			// New quiz folders need their own watch.
			if event.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
					_ = watcher.Add(event.Name)
				}
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, regenerate)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn(ctx, err, "watcher error")
		}
	}
}
