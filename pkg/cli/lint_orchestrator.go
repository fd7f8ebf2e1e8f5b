package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/flowlint/flowlint/pkg/constants"
	"github.com/flowlint/flowlint/pkg/logger"
	"github.com/flowlint/flowlint/pkg/workflow"
)

var lintOrchestratorLog = logger.New("cli:lint_orchestrator")

// ErrNoWorkflowFiles is returned when discovery comes up empty. The lint
// command turns it into a message with suggestions.
var ErrNoWorkflowFiles = errors.New("no workflow files found")

// LintConfig drives one lint run.
type LintConfig struct {
	// Files are explicit paths from the command line. When empty, Dir is
	// scanned instead.
	Files    []string
	Dir      string
	Format   string
	Strict   bool
	FailFast bool
	Jobs     int
	Watch    bool
}

// FileReport is the outcome of linting one workflow file.
type FileReport struct {
	File          string   `json:"file"`
	Valid         bool     `json:"valid"`
	Errors        []string `json:"errors"`
	Warnings      []string `json:"warnings"`
	UsedVariables []string `json:"usedVariables"`
	UsedNodes     []string `json:"usedNodes"`
}

// failed reports whether this file counts against the run, which in
// strict mode includes files that only have warnings.
func (r FileReport) failed(strict bool) bool {
	return !r.Valid || (strict && len(r.Warnings) > 0)
}

// LintReport is the outcome of a whole run.
type LintReport struct {
	Files   []FileReport `json:"files"`
	Summary LintSummary  `json:"summary"`
}

// LintSummary aggregates the run. Failed already accounts for strict
// mode, so callers can report and exit on it directly.
type LintSummary struct {
	Total    int `json:"total"`
	Failed   int `json:"failed"`
	Warnings int `json:"warnings"`
}

// RunLint discovers the workflow files for config, lints each one, and
// assembles the report. Files are linted in parallel unless fail-fast
// ordering is requested.
func RunLint(ctx context.Context, config LintConfig) (*LintReport, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	files, err := DiscoverWorkflowFiles(config.Files, config.Dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoWorkflowFiles
	}

	jobs := config.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	lintOrchestratorLog.Printf("Linting %d workflow files: jobs=%d failFast=%t strict=%t",
		len(files), jobs, config.FailFast, config.Strict)

	var reports []FileReport
	if config.FailFast {
		reports = lintSequential(ctx, files)
	} else {
		reports = lintParallel(files, jobs)
	}

	report := &LintReport{Files: reports}
	for _, fr := range reports {
		report.Summary.Total++
		if fr.failed(config.Strict) {
			report.Summary.Failed++
		}
		report.Summary.Warnings += len(fr.Warnings)
	}
	return report, nil
}

// lintParallel fans the files out over a bounded goroutine pool. Results
// land at their file's index, so the report keeps discovery order no
// matter how the linting interleaves.
func lintParallel(files []string, jobs int) []FileReport {
	reports := make([]FileReport, len(files))
	p := pool.New().WithMaxGoroutines(jobs)
	for i, file := range files {
		p.Go(func() {
			reports[i] = lintFile(file)
		})
	}
	p.Wait()
	return reports
}

// lintSequential lints in discovery order and stops after the first
// invalid file.
func lintSequential(ctx context.Context, files []string) []FileReport {
	var reports []FileReport
	for _, file := range files {
		select {
		case <-ctx.Done():
			return reports
		default:
		}
		fr := lintFile(file)
		reports = append(reports, fr)
		if !fr.Valid {
			lintOrchestratorLog.Printf("Stopping at first failure: %s", file)
			break
		}
	}
	return reports
}

// lintFile loads one workflow and validates it. Load failures (unreadable
// file, bad JSON, schema violations) become the file's single error so
// they show up in the report like any other finding.
func lintFile(path string) FileReport {
	wf, err := workflow.Load(path)
	if err != nil {
		return FileReport{
			File:          path,
			Valid:         false,
			Errors:        []string{err.Error()},
			Warnings:      []string{},
			UsedVariables: []string{},
			UsedNodes:     []string{},
		}
	}

	result := wf.Validate()
	return FileReport{
		File:          path,
		Valid:         result.Valid,
		Errors:        result.Errors,
		Warnings:      result.Warnings,
		UsedVariables: result.UsedVariables,
		UsedNodes:     result.UsedNodes,
	}
}

// DiscoverWorkflowFiles resolves the files to lint. Explicit arguments
// win: files are taken as given and directories are scanned. With no
// arguments the configured directory (default ".") is scanned for
// workflow extensions. The result is sorted and deduplicated.
func DiscoverWorkflowFiles(args []string, dir string) ([]string, error) {
	var files []string

	if len(args) > 0 {
		for _, arg := range args {
			info, err := os.Stat(arg)
			if err != nil {
				return nil, fmt.Errorf("failed to access '%s': %w", arg, err)
			}
			if info.IsDir() {
				found, err := scanDirectory(arg)
				if err != nil {
					return nil, err
				}
				files = append(files, found...)
				continue
			}
			files = append(files, arg)
		}
	} else {
		if dir == "" {
			dir = "."
		}
		found, err := scanDirectory(dir)
		if err != nil {
			return nil, err
		}
		files = found
	}

	slices.Sort(files)
	return slices.Compact(files), nil
}

// scanDirectory walks dir collecting files with a workflow extension,
// skipping hidden files and directories.
func scanDirectory(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		base := filepath.Base(path)
		if d.IsDir() {
			if strings.HasPrefix(base, ".") && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(base, ".") {
			return nil
		}
		if slices.Contains(constants.WorkflowFileExtensions, strings.ToLower(filepath.Ext(path))) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan directory '%s': %w", dir, err)
	}
	return files, nil
}
