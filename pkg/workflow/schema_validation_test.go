//go:build !integration

package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDocument_MinimalWorkflow(t *testing.T) {
	doc := map[string]any{"nodes": []any{}}
	assert.NoError(t, ValidateDocument(doc))
}

func TestValidateDocument_FullShape(t *testing.T) {
	doc := map[string]any{
		"name":   "Example",
		"active": true,
		"nodes": []any{
			map[string]any{
				"id":          "1",
				"name":        "Webhook",
				"type":        "core.webhook",
				"typeVersion": float64(1),
				"position":    []any{float64(250), float64(300)},
				"parameters":  map[string]any{"path": "hook"},
			},
		},
		"connections": map[string]any{
			"Webhook": map[string]any{
				"main": []any{
					[]any{
						map[string]any{"node": "Next", "type": "main", "index": float64(0)},
					},
					nil,
				},
			},
		},
		"settings": map[string]any{"timezone": "UTC"},
	}

	assert.NoError(t, ValidateDocument(doc), "null output ports and extra settings are part of the export format")
}

func TestValidateDocument_Rejections(t *testing.T) {
	tests := []struct {
		name string
		doc  any
	}{
		{"not an object", []any{}},
		{"missing nodes", map[string]any{"name": "x"}},
		{"nodes not an array", map[string]any{"nodes": "oops"}},
		{"node without name", map[string]any{"nodes": []any{map[string]any{"type": "t"}}}},
		{"node without type", map[string]any{"nodes": []any{map[string]any{"name": "A"}}}},
		{"connection port not an array", map[string]any{
			"nodes":       []any{},
			"connections": map[string]any{"A": map[string]any{"main": "oops"}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument(tt.doc)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "workflow schema")
		})
	}
}
