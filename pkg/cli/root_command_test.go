//go:build !integration

package cli

import (
	"bytes"
	"strings"
	"testing"
	"unicode"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowlint/flowlint/pkg/expression"
)

// TestNewRootCommand tests that the command tree is assembled correctly
func TestNewRootCommand(t *testing.T) {
	root := NewRootCommand("1.2.3")

	require.NotNil(t, root)
	assert.Equal(t, "flowlint", root.Name())
	assert.Equal(t, "1.2.3", root.Version)
	assert.True(t, root.SilenceUsage, "errors should not trigger a usage dump")

	var names []string
	for _, sub := range root.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "lint")
	assert.Contains(t, names, "variables")
	assert.Contains(t, names, "version")
}

// TestCommandDescriptionConventions verifies Short descriptions start
// with an uppercase letter and carry no trailing period.
func TestCommandDescriptionConventions(t *testing.T) {
	root := NewRootCommand("test")
	commands := append([]*cobra.Command{root}, root.Commands()...)

	for _, cmd := range commands {
		if cmd.Hidden || cmd.Name() == "help" || cmd.Name() == "completion" {
			continue
		}
		require.NotEmpty(t, cmd.Short, "command %q should have a short description", cmd.Name())
		first := []rune(cmd.Short)[0]
		assert.True(t, unicode.IsUpper(first),
			"short description of %q should start uppercase: %q", cmd.Name(), cmd.Short)
		assert.False(t, strings.HasSuffix(cmd.Short, "."),
			"short description of %q should not end with a period: %q", cmd.Name(), cmd.Short)
	}
}

func TestVersionCommand(t *testing.T) {
	root := NewRootCommand("9.9.9")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "flowlint 9.9.9")
}

func TestVariablesCommand(t *testing.T) {
	root := NewRootCommand("test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"variables"})

	require.NoError(t, root.Execute())
	for _, name := range expression.RecognizedVariables {
		assert.Contains(t, out.String(), name)
	}
	assert.Contains(t, out.String(), "Variable")
	assert.Contains(t, out.String(), "Description")
}

func TestVariableDescriptionsCoverEveryVariable(t *testing.T) {
	assert.Len(t, variableDescriptions, len(expression.RecognizedVariables))
	for _, name := range expression.RecognizedVariables {
		assert.NotEmpty(t, variableDescriptions[name], "variable %q needs a description", name)
	}
}
