package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowlint/flowlint/pkg/console"
	"github.com/flowlint/flowlint/pkg/expression"
)

// variableDescriptions explains what each recognized variable resolves
// to at runtime. Keep in step with expression.RecognizedVariables.
var variableDescriptions = map[string]string{
	"$json":      "JSON data of the current input item",
	"$node":      `Output of another node: $node["Name"].json`,
	"$input":     "Items arriving on the node's input connection",
	"$items":     `Items produced by another node: $items("Name")`,
	"$workflow":  "Metadata of the containing workflow (id, name, active)",
	"$execution": "Metadata of the current execution",
	"$now":       "Current timestamp",
	"$today":     "Today's date at midnight",
	"$itemIndex": "Index of the item being processed",
	"$runIndex":  "Index of the current run of this node",
	"$env":       "Environment variables visible to the workflow",
	"$prevNode":  "Name, output index and run index of the previous node",
	"$parameter": "Parameters of the current node",
}

// NewVariablesCommand creates the variables command
func NewVariablesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "variables",
		Short: "List the variables recognized inside expressions",
		Long: `List every variable the linter recognizes inside {{ }} expression
blocks, with a short description of what each one resolves to. Anything
else that looks like a variable is ignored by validation (and by usage
extraction).`,
		Run: func(cmd *cobra.Command, args []string) {
			rows := make([][]string, 0, len(expression.RecognizedVariables))
			for _, name := range expression.RecognizedVariables {
				rows = append(rows, []string{name, variableDescriptions[name]})
			}
			fmt.Fprint(cmd.OutOrStdout(), console.RenderTable(console.TableConfig{
				Title:   "Expression variables",
				Headers: []string{"Variable", "Description"},
				Rows:    rows,
			}))
		},
	}
}
