package workflow

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/flowlint/flowlint/pkg/logger"
)

var loadLog = logger.New("workflow:load")

// Load reads one workflow document from path, picking the decoder by
// file extension: .yaml and .yml go through the YAML path, everything
// else is treated as JSON.
func Load(path string) (*Workflow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workflow file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseJSON(data)
	}
}

// ParseJSON decodes a JSON workflow document. The raw document is
// checked against the workflow schema before it is mapped onto the Go
// types, so malformed files fail with a schema location rather than a
// half-decoded workflow.
func ParseJSON(data []byte) (*Workflow, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse workflow JSON: %w", err)
	}
	if err := ValidateDocument(doc); err != nil {
		return nil, err
	}
	var wf Workflow
	if err := json.Unmarshal(data, &wf); err != nil {
		return nil, fmt.Errorf("failed to decode workflow: %w", err)
	}
	loadLog.Printf("parsed workflow %q: %d nodes, %d connection sources", wf.Name, len(wf.Nodes), len(wf.Connections))
	return &wf, nil
}

// ParseYAML decodes a YAML workflow document by converting it to JSON
// and reusing the JSON path. Both formats then agree on value types, so
// schema validation and parameter walking behave identically.
func ParseYAML(data []byte) (*Workflow, error) {
	converted, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to convert workflow YAML: %w", err)
	}
	return ParseJSON(converted)
}
