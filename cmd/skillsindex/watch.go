package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/expo-skills/skillsindex/pkg/logger"
	"github.com/expo-skills/skillsindex/pkg/presenter"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// WatchConfig holds configuration for the watch command
type WatchConfig struct {
	BuildConfig
	DebounceTime int
}

// NewWatchConfig creates a WatchConfig with default values
func NewWatchConfig() *WatchConfig {
	return &WatchConfig{
		BuildConfig:  *NewBuildConfig(),
		DebounceTime: 500,
	}
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the manifest whenever skills change",
	Long: `Continuously monitor the repository root and rebuild the skills manifest
whenever a SKILL.md or reference document changes. Press Ctrl+C to stop.`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-sigCh
			presenter.Warning("Cancellation requested, shutting down...")
			cancel()
		}()

		config := getWatchConfigFromFlags(cmd)
		runWatchMode(ctx, cmd, config)
	},
}

func init() {
	defaults := NewWatchConfig()
	watchCmd.Flags().StringP("root", "r", defaults.Root, "Repository root to scan")
	watchCmd.Flags().StringP("out", "o", defaults.Output, "Manifest output path")
	watchCmd.Flags().StringSliceP("exclude", "x", defaults.Excludes, "Folder name patterns to skip (glob)")
	watchCmd.Flags().IntP("debounce", "d", defaults.DebounceTime, "Debounce time in milliseconds for file change events")
}

func getWatchConfigFromFlags(cmd *cobra.Command) *WatchConfig {
	config := NewWatchConfig()
	config.BuildConfig = *getBuildConfigFromFlags(cmd)
	if debounce, err := cmd.Flags().GetInt("debounce"); err == nil && debounce >= 0 {
		config.DebounceTime = debounce
	}
	return config
}

func runWatchMode(ctx context.Context, cmd *cobra.Command, config *WatchConfig) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		presenter.Error(err, "Failed to create file watcher")
		os.Exit(1)
	}
	defer watcher.Close()

	if err := addWatchDirs(watcher, config.Root); err != nil {
		presenter.Error(err, "Failed to watch skills root")
		os.Exit(1)
	}

	rebuild := func() {
		idx, err := buildIndex(cmd, &config.BuildConfig)
		if err != nil {
			return // already presented; keep watching
		}
		if err := idx.Write(config.Output); err != nil {
			presenter.Error(err, "Failed to write manifest")
			return
		}
		presenter.Info(fmt.Sprintf("%s -> %s", idx.Summary(), config.Output))
	}

	// Initial build so the manifest reflects the current tree.
	rebuild()

	debounce := time.Duration(config.DebounceTime) * time.Millisecond
	var timer *time.Timer
	pending := make(chan struct{}, 1)

	presenter.Info("Watching for skill changes... Press Ctrl+C to stop")

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if strings.HasPrefix(filepath.Base(event.Name), ".") {
				continue // editor temp files and dot directories
			}
			// A newly created skill folder needs its own watch.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watcher.Add(event.Name)
				}
			}

			logger.G(ctx).WithField("file", event.Name).Debug("change detected")
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case <-pending:
			rebuild()
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			presenter.Error(err, "File watcher error")
			logger.G(ctx).WithError(err).Error("error watching files")
		case <-ctx.Done():
			return
		}
	}
}

// addWatchDirs watches the root and every immediate skill folder plus its
// references directory; fsnotify watches are not recursive.
func addWatchDirs(watcher *fsnotify.Watcher, root string) error {
	if err := watcher.Add(root); err != nil {
		return err
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		dir := filepath.Join(root, name)
		_ = watcher.Add(dir)

		refs := filepath.Join(dir, "references")
		if info, err := os.Stat(refs); err == nil && info.IsDir() {
			_ = watcher.Add(refs)
		}
	}

	return nil
}
