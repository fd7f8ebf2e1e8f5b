package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/flowlint/flowlint/pkg/console"
	"github.com/flowlint/flowlint/pkg/constants"
	"github.com/flowlint/flowlint/pkg/logger"
)

var watchLog = logger.New("cli:watch")

// watchAndLint lints once, then re-lints whenever a watched workflow
// file changes. Rapid events are debounced so an editor's save dance
// triggers one run. Blocks until ctx is cancelled.
func watchAndLint(ctx context.Context, config LintConfig, out io.Writer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	dirs, err := watchRoots(config)
	if err != nil {
		return err
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch '%s': %w", dir, err)
		}
		watchLog.Printf("Watching directory: %s", dir)
	}

	runOnce := func() {
		report, err := RunLint(ctx, config)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
			}
			return
		}
		if err := renderReport(out, report, config); err != nil {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
		}
	}

	fmt.Fprintln(os.Stderr, console.FormatInfoMessage("Watching for workflow changes. Press Ctrl+C to stop."))
	runOnce()

	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			watchLog.Print("Watch stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isWorkflowEvent(event) {
				continue
			}
			watchLog.Printf("Change detected: %s (%s)", event.Name, event.Op)
			fmt.Fprintln(os.Stderr, console.FormatProgressMessage(fmt.Sprintf("Change detected in %s", event.Name)))
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(constants.WatchDebounce, runOnce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, console.FormatWarningMessage(fmt.Sprintf("Watch error: %v", err)))
		}
	}
}

// watchRoots picks the directories to watch: the parents of explicit
// files, or the scan directory and all its visible subdirectories.
func watchRoots(config LintConfig) ([]string, error) {
	if len(config.Files) > 0 {
		var dirs []string
		for _, file := range config.Files {
			dir := filepath.Dir(file)
			if !slices.Contains(dirs, dir) {
				dirs = append(dirs, dir)
			}
		}
		return dirs, nil
	}

	root := config.Dir
	if root == "" {
		root = "."
	}
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(filepath.Base(path), ".") && path != root {
			return filepath.SkipDir
		}
		dirs = append(dirs, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk '%s': %w", root, err)
	}
	return dirs, nil
}

// isWorkflowEvent filters the fsnotify stream down to content changes on
// workflow files. Chmod events are noise on most editors.
func isWorkflowEvent(event fsnotify.Event) bool {
	if event.Op&fsnotify.Chmod == fsnotify.Chmod {
		return false
	}
	return slices.Contains(constants.WorkflowFileExtensions, strings.ToLower(filepath.Ext(event.Name)))
}
