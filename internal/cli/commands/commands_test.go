package commands_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gouzil/cmake-lint/internal/cli/commands"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := commands.NewVersionCommand("1.2.3")
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "cmakelint 1.2.3\n", out.String())
}

func TestCategoriesCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := commands.NewCategoriesCommand()
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())

	for _, want := range []string{
		"convention/filename",
		"linelength",
		"package/consistency",
		"readability/logic",
		"syntax",
		"whitespace/tabs",
	} {
		assert.Contains(t, out.String(), want)
	}
}
