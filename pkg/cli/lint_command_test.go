//go:build !integration

package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLintCommand tests that the lint command is created correctly
func TestNewLintCommand(t *testing.T) {
	cmd := NewLintCommand()

	require.NotNil(t, cmd, "NewLintCommand should return a non-nil command")
	assert.Equal(t, "lint", cmd.Name(), "Command name should be 'lint'")
	assert.NotEmpty(t, cmd.Short, "Command should have a short description")
	assert.NotEmpty(t, cmd.Long, "Command should have a long description")

	require.NotNil(t, cmd.Flags().Lookup("dir"), "lint command should have a --dir flag")
	assert.Equal(t, "d", cmd.Flags().Lookup("dir").Shorthand, "--dir flag should have -d shorthand")
	require.NotNil(t, cmd.Flags().Lookup("format"), "lint command should have a --format flag")
	assert.Equal(t, "f", cmd.Flags().Lookup("format").Shorthand, "--format flag should have -f shorthand")
	require.NotNil(t, cmd.Flags().Lookup("strict"), "lint command should have a --strict flag")
	require.NotNil(t, cmd.Flags().Lookup("fail-fast"), "lint command should have a --fail-fast flag")
	require.NotNil(t, cmd.Flags().Lookup("jobs"), "lint command should have a --jobs flag")
	require.NotNil(t, cmd.Flags().Lookup("watch"), "lint command should have a --watch flag")
}

func TestMergeLintConfig_FlagsOverrideFileConfig(t *testing.T) {
	cmd := NewLintCommand()
	require.NoError(t, cmd.Flags().Set("dir", "from-flag"))
	require.NoError(t, cmd.Flags().Set("strict", "false"))

	fileConfig := &FileConfig{Dir: "from-file", Format: "json", Strict: true, Jobs: 4}
	config, err := mergeLintConfig(cmd, fileConfig, []string{"a.json"})
	require.NoError(t, err)

	assert.Equal(t, "from-flag", config.Dir, "a set flag wins over the config file")
	assert.Equal(t, "json", config.Format, "unset flags fall back to the config file")
	assert.False(t, config.Strict, "an explicitly set flag wins even when it matches the default")
	assert.Equal(t, 4, config.Jobs)
	assert.Equal(t, []string{"a.json"}, config.Files)
}

func TestMergeLintConfig_DefaultFormat(t *testing.T) {
	config, err := mergeLintConfig(NewLintCommand(), &FileConfig{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "text", config.Format)
}

func TestMergeLintConfig_RejectsUnknownFormat(t *testing.T) {
	cmd := NewLintCommand()
	require.NoError(t, cmd.Flags().Set("format", "xml"))

	_, err := mergeLintConfig(cmd, &FileConfig{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format 'xml'")
}

func TestLintCommand_JSONOutput(t *testing.T) {
	t.Chdir(t.TempDir())
	dir := t.TempDir()
	writeFile(t, dir, "good.json", validWorkflowJSON)
	writeFile(t, dir, "bad.json", invalidWorkflowJSON)

	root := NewRootCommand("test")
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"lint", "--dir", dir, "--format", "json"})

	err := root.Execute()
	require.Error(t, err, "a failing file should make the command fail")
	assert.Contains(t, err.Error(), "1 of 2 workflow files failed validation")

	var report LintReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &report), "stdout should carry the JSON report")
	assert.Equal(t, LintSummary{Total: 2, Failed: 1, Warnings: 0}, report.Summary)
	require.Len(t, report.Files, 2)
	assert.False(t, report.Files[0].Valid)
}

func TestLintCommand_SucceedsOnCleanDirectory(t *testing.T) {
	t.Chdir(t.TempDir())
	dir := t.TempDir()
	writeFile(t, dir, "good.json", validWorkflowJSON)

	root := NewRootCommand("test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"lint", "--dir", dir})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "1 workflow file checked, 0 failed, 0 warnings")
}

func TestLintCommand_NoFilesSuggestsNextSteps(t *testing.T) {
	t.Chdir(t.TempDir())
	dir := t.TempDir()

	root := NewRootCommand("test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"lint", "--dir", dir})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No workflow files found")
	assert.Contains(t, err.Error(), "flowlint lint --dir")
}
