package lint_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gouzil/cmake-lint/pkg/lint"
)

func TestVerdict_ExitCodes(t *testing.T) {
	t.Run("clean", func(t *testing.T) {
		v := lint.NewVerdict()
		v.AddFile("CMakeLists.txt", nil)
		assert.Equal(t, lint.ExitClean, v.ExitCode())
	})

	t.Run("violations", func(t *testing.T) {
		v := lint.NewVerdict()
		v.AddFile("CMakeLists.txt", []lint.Violation{
			{Category: lint.CategoryWhitespaceEOL, Line: 3, Message: "Line ends in whitespace"},
		})
		assert.Equal(t, lint.ExitViolations, v.ExitCode())
		assert.Equal(t, 1, v.Total())
	})

	t.Run("usage error dominates violations", func(t *testing.T) {
		v := lint.NewVerdict()
		v.AddFile("CMakeLists.txt", []lint.Violation{
			{Category: lint.CategorySyntax, Line: 1, Message: "Unbalanced close parenthesis"},
		})
		v.RecordUsageError()
		assert.Equal(t, lint.ExitUsage, v.ExitCode())
		assert.True(t, v.UsageError())
	})
}

func TestVerdict_TotalsAcrossFiles(t *testing.T) {
	v := lint.NewVerdict()
	v.AddFile("a.cmake", []lint.Violation{
		{Category: lint.CategoryWhitespaceTabs, Line: 1, Message: "Tab found; please use spaces"},
		{Category: lint.CategoryWhitespaceEOL, Line: 2, Message: "Line ends in whitespace"},
	})
	v.AddFile("b.cmake", nil)
	v.AddFile("c.cmake", []lint.Violation{
		{Category: lint.CategoryLineLength, Line: 9, Message: "Lines should be <= 80 characters long"},
	})

	assert.Equal(t, 3, v.Total())
	results := v.Results()
	require.Len(t, results, 3)
	assert.Equal(t, "a.cmake", results[0].Path)
	assert.Len(t, results[0].Violations, 2)
	assert.Empty(t, results[1].Violations)
}

func TestVerdict_ConcurrentMerges(t *testing.T) {
	v := lint.NewVerdict()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v.AddFile("f.cmake", []lint.Violation{
				{Category: lint.CategorySyntax, Line: 1, Message: "Unbalanced close parenthesis"},
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 32, v.Total())
	assert.Len(t, v.Results(), 32)
	assert.Equal(t, lint.ExitViolations, v.ExitCode())
}
