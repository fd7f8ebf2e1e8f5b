package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flowlint/flowlint/pkg/console"
	"github.com/flowlint/flowlint/pkg/constants"
	"github.com/flowlint/flowlint/pkg/logger"
)

var lintLog = logger.New("cli:lint_command")

// NewLintCommand creates the lint command
func NewLintCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint [file]...",
		Short: "Validate the expressions in workflow files",
		Long: `Validate the {{ }} expressions embedded in workflow node parameters.

Every finding is static: workflows are never executed. Errors make a file
fail; warnings are advisory unless --strict is set. If no files are given,
the directory from --dir (or the current directory) is scanned for
workflow files (` + strings.Join(constants.WorkflowFileExtensions, ", ") + `).

Examples:
  flowlint lint                        # Lint every workflow under the current directory
  flowlint lint order-intake.json      # Lint specific files
  flowlint lint --dir ./workflows      # Lint a directory
  flowlint lint --format json          # Machine-readable report
  flowlint lint --strict               # Warnings fail the run too
  flowlint lint --fail-fast            # Stop at the first invalid file
  flowlint lint --watch                # Re-lint whenever a file changes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fileConfig, err := loadFileConfig()
			if err != nil {
				return err
			}
			config, err := mergeLintConfig(cmd, fileConfig, args)
			if err != nil {
				return err
			}
			lintLog.Printf("Running lint command: files=%v dir=%s format=%s watch=%t",
				args, config.Dir, config.Format, config.Watch)

			if config.Watch {
				return watchAndLint(cmd.Context(), config, cmd.OutOrStdout())
			}

			report, err := RunLint(cmd.Context(), config)
			if errors.Is(err, ErrNoWorkflowFiles) {
				return errors.New(console.FormatErrorWithSuggestions("No workflow files found", []string{
					"pass files directly: flowlint lint workflow.json",
					"scan a directory: flowlint lint --dir ./workflows",
					"workflow files use the " + strings.Join(constants.WorkflowFileExtensions, ", ") + " extensions",
				}))
			}
			if err != nil {
				return err
			}

			if err := renderReport(cmd.OutOrStdout(), report, config); err != nil {
				return err
			}
			if report.Summary.Failed > 0 {
				return fmt.Errorf("%d of %d workflow files failed validation",
					report.Summary.Failed, report.Summary.Total)
			}
			return nil
		},
	}

	cmd.Flags().StringP("dir", "d", "", "Directory to scan for workflow files (default: current directory)")
	cmd.Flags().StringP("format", "f", "", "Output format: text or json")
	cmd.Flags().Bool("strict", false, "Treat warnings as failures")
	cmd.Flags().Bool("fail-fast", false, "Stop at the first invalid file instead of collecting all results")
	cmd.Flags().IntP("jobs", "j", 0, "Number of files to lint in parallel (default: number of CPUs)")
	cmd.Flags().BoolP("watch", "w", false, "Watch for changes and lint again automatically")

	return cmd
}

// mergeLintConfig layers the three configuration sources: defaults, then
// .flowlint.yml, then any flag the user actually set.
func mergeLintConfig(cmd *cobra.Command, fileConfig *FileConfig, args []string) (LintConfig, error) {
	config := LintConfig{
		Files:  args,
		Dir:    fileConfig.Dir,
		Format: fileConfig.Format,
		Strict: fileConfig.Strict,
		Jobs:   fileConfig.Jobs,
	}

	flags := cmd.Flags()
	if flags.Changed("dir") {
		config.Dir, _ = flags.GetString("dir")
	}
	if flags.Changed("format") {
		config.Format, _ = flags.GetString("format")
	}
	if flags.Changed("strict") {
		config.Strict, _ = flags.GetBool("strict")
	}
	if flags.Changed("jobs") {
		config.Jobs, _ = flags.GetInt("jobs")
	}
	config.FailFast, _ = flags.GetBool("fail-fast")
	config.Watch, _ = flags.GetBool("watch")

	if config.Format == "" {
		config.Format = constants.OutputFormatText
	}
	if config.Format != constants.OutputFormatText && config.Format != constants.OutputFormatJSON {
		return config, fmt.Errorf("invalid format '%s': expected '%s' or '%s'",
			config.Format, constants.OutputFormatText, constants.OutputFormatJSON)
	}
	return config, nil
}
