package workflow

import (
	"fmt"
	"maps"
	"slices"

	"github.com/flowlint/flowlint/pkg/expression"
	"github.com/flowlint/flowlint/pkg/logger"
)

var validateLog = logger.New("workflow:validate")

// Validate runs every static check over the workflow: document
// structure first, then the expressions in each enabled node's
// parameters. Findings from node parameters are prefixed with the node
// name, so a report over a whole file reads "Node: field.path: message".
func (w *Workflow) Validate() *expression.Result {
	result := expression.NewResult()
	w.checkStructure(result)

	incoming := w.incomingCounts()
	cycles := w.nodesInCycles()
	for _, node := range w.Nodes {
		if node == nil || node.Disabled || node.Name == "" {
			continue
		}
		leaf := expression.ValidateParameters(node.Parameters, w.contextFor(node, incoming, cycles))
		result.Absorb(leaf, node.Name)
	}

	result.Valid = len(result.Errors) == 0
	validateLog.Printf("workflow %q: valid=%t errors=%d warnings=%d", w.Name, result.Valid, len(result.Errors), len(result.Warnings))
	return result
}

// checkStructure reports document-level problems: an empty node list,
// unnamed or duplicated nodes, and connection endpoints that do not
// exist. Connection sources and channels are visited in sorted order so
// the report is stable across runs.
func (w *Workflow) checkStructure(result *expression.Result) {
	if len(w.Nodes) == 0 {
		result.Errors = append(result.Errors, "Workflow has no nodes")
	}

	named := make(map[string]bool, len(w.Nodes))
	for i, node := range w.Nodes {
		switch {
		case node == nil:
			result.Errors = append(result.Errors, fmt.Sprintf("Node at index %d is null", i))
		case node.Name == "":
			result.Errors = append(result.Errors, fmt.Sprintf("Node at index %d has an empty name", i))
		case named[node.Name]:
			result.Errors = append(result.Errors, fmt.Sprintf("Duplicate node name: %q", node.Name))
		default:
			named[node.Name] = true
		}
	}

	for _, source := range slices.Sorted(maps.Keys(w.Connections)) {
		if !named[source] {
			result.Errors = append(result.Errors, fmt.Sprintf("Connection source %q is not a node in the workflow", source))
		}
		channels := w.Connections[source]
		for _, channel := range slices.Sorted(maps.Keys(channels)) {
			for _, port := range channels[channel] {
				for _, conn := range port {
					if !named[conn.Node] {
						result.Errors = append(result.Errors, fmt.Sprintf("Connection target %q is not a node in the workflow", conn.Node))
					}
				}
			}
		}
	}
}
