package workflow

import "github.com/flowlint/flowlint/pkg/expression"

// ContextFor derives the validation context the given node's expressions
// run against: every node name in the workflow, whether the node has
// input data, and whether it sits inside a loop.
func (w *Workflow) ContextFor(node *Node) *expression.Context {
	return w.contextFor(node, w.incomingCounts(), w.nodesInCycles())
}

// contextFor is ContextFor with the graph passes precomputed, so a
// whole-workflow validation walks the connection table once instead of
// once per node.
func (w *Workflow) contextFor(node *Node, incoming map[string]int, cycles map[string]bool) *expression.Context {
	return &expression.Context{
		AvailableNodes:  w.nodeNames(),
		CurrentNodeName: node.Name,
		HasInputData:    incoming[node.Name] > 0,
		IsInLoop:        cycles[node.Name],
	}
}
