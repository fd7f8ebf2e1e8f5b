// Package workflow loads automation workflow documents and statically
// validates the expressions embedded in their node parameters.
//
// # Document model
//
// A workflow is a list of named nodes plus a connection table wiring
// node outputs to node inputs. The document shape follows the common
// JSON export format: connections are keyed by source node name, then
// by channel type (usually "main"), then indexed by output port, each
// port carrying the list of targets it feeds.
//
// # How context is derived
//
// Expression validation needs to know which nodes exist, whether a node
// receives input items, and whether it sits inside a loop. All three
// are derived from the document alone: a node has input data when at
// least one connection targets it, and it is in a loop when it can
// reach itself through the connection graph.
package workflow

// Node is a single step in a workflow.
type Node struct {
	ID          string         `json:"id,omitempty"`
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	TypeVersion float64        `json:"typeVersion,omitempty"`
	Position    []float64      `json:"position,omitempty"`
	Disabled    bool           `json:"disabled,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"`
	Credentials map[string]any `json:"credentials,omitempty"`
}

// Connection identifies one input of a target node.
type Connection struct {
	Node  string `json:"node"`
	Type  string `json:"type"`
	Index int    `json:"index"`
}

// Workflow is a complete workflow document.
type Workflow struct {
	Name   string  `json:"name,omitempty"`
	Active bool    `json:"active,omitempty"`
	Nodes  []*Node `json:"nodes"`

	// Connections maps source node name -> channel type -> output port
	// -> targets. Ports with no targets may be null in exported files.
	Connections map[string]map[string][][]Connection `json:"connections,omitempty"`

	Settings map[string]any `json:"settings,omitempty"`
}

// NodeByName returns the node with the given display name, or nil when
// no node carries it.
func (w *Workflow) NodeByName(name string) *Node {
	for _, node := range w.Nodes {
		if node != nil && node.Name == name {
			return node
		}
	}
	return nil
}

// nodeNames returns the display names of every named node, in document
// order.
func (w *Workflow) nodeNames() []string {
	names := make([]string, 0, len(w.Nodes))
	for _, node := range w.Nodes {
		if node != nil && node.Name != "" {
			names = append(names, node.Name)
		}
	}
	return names
}
