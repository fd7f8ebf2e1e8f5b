//go:build !integration

package expression

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecognizedVariables(t *testing.T) {
	require.Len(t, RecognizedVariables, 13)
	for _, name := range RecognizedVariables {
		assert.True(t, strings.HasPrefix(name, "$"), "variable %q should carry the $ prefix", name)
		assert.NotContains(t, name[1:], "$", "variable %q should contain a single $", name)
	}
	assert.Contains(t, RecognizedVariables, "$json")
	assert.Contains(t, RecognizedVariables, "$prevNode")
}

func TestRecognizedTokens(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{"single token", "$json", []string{"$json"}},
		{"unknown token dropped", "$jsonPayload", nil},
		{"longest match wins", "$itemIndex $items", []string{"$itemIndex", "$items"}},
		{"duplicates preserved", "$json $json", []string{"$json", "$json"}},
		{"order follows the text", "$env then $now then $env", []string{"$env", "$now", "$env"}},
		{"no tokens", "plain text", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, recognizedTokens(tt.text))
		})
	}
}

func TestNodeReferences(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{"double quoted node", `$node["Webhook"].json`, []string{"Webhook"}},
		{"single quoted node", `$node['Set Fields'].json`, []string{"Set Fields"}},
		{"spaces inside brackets", `$node[ "Webhook" ].json`, []string{"Webhook"}},
		{"items reference", `$items("HTTP Request")`, []string{"HTTP Request"}},
		{"items with index argument", `$items('Loop', 0)`, []string{"Loop"}},
		{"node refs come before items refs", `$items("B") $node["A"].json`, []string{"A", "B"}},
		{"unquoted access is not a reference", `$node[name]`, nil},
		{"no references", `$json.field`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, nodeReferences(tt.text))
		})
	}
}
