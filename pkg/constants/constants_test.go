//go:build !integration

package constants

import (
	"strings"
	"testing"
)

func TestWorkflowFileExtensions(t *testing.T) {
	if len(WorkflowFileExtensions) == 0 {
		t.Fatal("WorkflowFileExtensions should not be empty")
	}

	expected := []string{".json", ".yaml", ".yml"}
	if len(WorkflowFileExtensions) != len(expected) {
		t.Errorf("WorkflowFileExtensions length = %d, want %d", len(WorkflowFileExtensions), len(expected))
	}

	for i, ext := range expected {
		if WorkflowFileExtensions[i] != ext {
			t.Errorf("WorkflowFileExtensions[%d] = %q, want %q", i, WorkflowFileExtensions[i], ext)
		}
		if !strings.HasPrefix(WorkflowFileExtensions[i], ".") {
			t.Errorf("extension %q must include the leading dot", WorkflowFileExtensions[i])
		}
	}
}

func TestOutputFormats(t *testing.T) {
	if OutputFormatText == OutputFormatJSON {
		t.Error("output format constants must be distinct")
	}
	if OutputFormatText != "text" {
		t.Errorf("OutputFormatText = %q, want %q", OutputFormatText, "text")
	}
	if OutputFormatJSON != "json" {
		t.Errorf("OutputFormatJSON = %q, want %q", OutputFormatJSON, "json")
	}
}

func TestConfigFileName(t *testing.T) {
	if ConfigFileName != ".flowlint.yml" {
		t.Errorf("ConfigFileName = %q, want %q", ConfigFileName, ".flowlint.yml")
	}
}

func TestWatchDebounce(t *testing.T) {
	if WatchDebounce <= 0 {
		t.Error("WatchDebounce must be positive")
	}
}
