package workflow

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/flowlint/flowlint/pkg/logger"
)

var schemaLog = logger.New("workflow:schema")

//go:embed schemas/workflow.schema.json
var workflowSchemaJSON []byte

// compiledSchema parses and compiles the embedded workflow schema once
// per process.
var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(workflowSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded workflow schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("workflow.schema.json", doc); err != nil {
		return nil, fmt.Errorf("failed to register workflow schema: %w", err)
	}
	schema, err := compiler.Compile("workflow.schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile workflow schema: %w", err)
	}
	return schema, nil
})

// ValidateDocument checks a decoded JSON document against the workflow
// schema. It runs before the document is mapped onto Go types, so shape
// problems surface with schema locations instead of decode panics.
func ValidateDocument(doc any) error {
	schema, err := compiledSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(doc); err != nil {
		schemaLog.Printf("schema validation failed: %v", err)
		return fmt.Errorf("workflow document does not match the workflow schema: %w", err)
	}
	return nil
}
