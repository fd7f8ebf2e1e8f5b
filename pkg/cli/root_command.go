package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand assembles the flowlint command tree.
func NewRootCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flowlint",
		Short: "Static expression linter for workflow files",
		Long: `flowlint statically validates the {{ }} expressions embedded in
automation workflow files: bracket structure, unsupported syntax,
references to nodes that do not exist, and context problems like reading
input data on a node that has none. Workflows are never executed.`,
		Version:      version,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewLintCommand())
	cmd.AddCommand(NewVariablesCommand())
	cmd.AddCommand(NewVersionCommand(version))

	return cmd
}
