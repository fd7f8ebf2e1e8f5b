// Package expression statically validates the {{ ... }} expression
// blocks embedded in workflow node parameters.
//
// # What validation means here
//
// Nothing is ever executed. A single left-to-right scan finds structural
// problems (unbalanced or nested brackets, empty blocks), style hazards
// (template literals, optional chaining, bracket property access) and
// context mismatches ($input on a node without input data, references to
// nodes that do not exist). Problems are reported as data on a Result,
// never as Go errors or panics.
//
// # Extraction is independent of validity
//
// The variables and node names an expression touches are collected from
// the whole text whenever expression markers are present, even when the
// expression is structurally broken. Callers can always see what an
// invalid expression was trying to reach.
//
// Validate checks one parameter text; ValidateParameters applies the
// same checks across a nested parameter tree, qualifying every finding
// with the dotted path of the offending field.
package expression

import "slices"

// Context describes the workflow surroundings of the expression being
// validated. The zero value describes a node with no input data, outside
// any loop, in a workflow with no known nodes.
type Context struct {
	// AvailableNodes holds the display names of every node in the
	// workflow. Node references are checked against it.
	AvailableNodes []string `json:"availableNodes,omitempty"`

	// CurrentNodeName identifies the node owning the parameters being
	// validated. Informational only; it never changes the outcome.
	CurrentNodeName string `json:"currentNodeName,omitempty"`

	// HasInputData reports whether the node receives items from an
	// incoming connection. Without it $input is an error and $json is
	// suspect.
	HasInputData bool `json:"hasInputData,omitempty"`

	// IsInLoop marks nodes inside loop cycles, where input arrives on
	// later iterations; it suppresses the $json warning.
	IsInLoop bool `json:"isInLoop,omitempty"`
}

// Result carries everything one validation pass found. Errors make the
// text invalid; warnings never do. UsedVariables and UsedNodes have set
// semantics and keep first-seen order.
type Result struct {
	Valid         bool     `json:"valid"`
	Errors        []string `json:"errors"`
	Warnings      []string `json:"warnings"`
	UsedVariables []string `json:"usedVariables"`
	UsedNodes     []string `json:"usedNodes"`
}

// NewResult returns an empty result that counts as valid. All slices are
// non-nil so a marshalled result renders [] rather than null.
func NewResult() *Result {
	return &Result{
		Valid:         true,
		Errors:        []string{},
		Warnings:      []string{},
		UsedVariables: []string{},
		UsedNodes:     []string{},
	}
}

// Absorb folds a leaf result into r, qualifying every error and warning
// with prefix when it is non-empty. Usage merges unconditionally:
// extraction does not care whether the leaf was valid. Valid is kept in
// step with the merged errors.
func (r *Result) Absorb(leaf *Result, prefix string) {
	for _, e := range leaf.Errors {
		r.Errors = append(r.Errors, qualify(prefix, e))
	}
	for _, w := range leaf.Warnings {
		r.Warnings = append(r.Warnings, qualify(prefix, w))
	}
	for _, v := range leaf.UsedVariables {
		if !slices.Contains(r.UsedVariables, v) {
			r.UsedVariables = append(r.UsedVariables, v)
		}
	}
	for _, n := range leaf.UsedNodes {
		if !slices.Contains(r.UsedNodes, n) {
			r.UsedNodes = append(r.UsedNodes, n)
		}
	}
	if len(r.Errors) > 0 {
		r.Valid = false
	}
}

func qualify(prefix, message string) string {
	if prefix == "" {
		return message
	}
	return prefix + ": " + message
}
