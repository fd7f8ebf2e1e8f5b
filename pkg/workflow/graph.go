package workflow

import "github.com/flowlint/flowlint/pkg/logger"

var graphLog = logger.New("workflow:graph")

// incomingCounts returns how many connection branches target each node,
// summed across every source, channel type, and output port. Targets
// that are not nodes still get counted; the structural checks report
// those separately.
func (w *Workflow) incomingCounts() map[string]int {
	counts := make(map[string]int, len(w.Nodes))
	for _, node := range w.Nodes {
		if node != nil {
			counts[node.Name] = 0
		}
	}
	for _, channels := range w.Connections {
		for _, ports := range channels {
			for _, port := range ports {
				for _, conn := range port {
					counts[conn.Node]++
				}
			}
		}
	}
	return counts
}

// successors flattens the connection table into an outgoing edge list
// per source node name.
func (w *Workflow) successors() map[string][]string {
	adj := make(map[string][]string, len(w.Connections))
	for source, channels := range w.Connections {
		for _, ports := range channels {
			for _, port := range ports {
				for _, conn := range port {
					adj[source] = append(adj[source], conn.Node)
				}
			}
		}
	}
	return adj
}

// nodesInCycles returns the set of node names that can reach themselves
// through the connection graph. Workflows express loops exactly this
// way, wiring a downstream node back to an earlier one.
func (w *Workflow) nodesInCycles() map[string]bool {
	adj := w.successors()
	inCycle := make(map[string]bool)
	for _, node := range w.Nodes {
		if node == nil {
			continue
		}
		if reaches(adj, node.Name, node.Name, make(map[string]bool)) {
			inCycle[node.Name] = true
		}
	}
	if len(inCycle) > 0 {
		graphLog.Printf("workflow %q: %d nodes sit on cycles", w.Name, len(inCycle))
	}
	return inCycle
}

// reaches reports whether target is reachable from from over at least
// one edge.
func reaches(adj map[string][]string, from, target string, seen map[string]bool) bool {
	for _, next := range adj[from] {
		if next == target {
			return true
		}
		if seen[next] {
			continue
		}
		seen[next] = true
		if reaches(adj, next, target, seen) {
			return true
		}
	}
	return false
}
