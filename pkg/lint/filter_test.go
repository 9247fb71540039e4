package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gouzil/cmake-lint/pkg/lint"
)

func TestParseDirectives(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    []lint.Directive
		wantErr string
	}{
		{
			name: "empty spec",
			spec: "",
			want: nil,
		},
		{
			name: "single disable",
			spec: "-whitespace",
			want: []lint.Directive{{Enable: false, Prefix: "whitespace"}},
		},
		{
			name: "mixed list",
			spec: "-whitespace,+linelength",
			want: []lint.Directive{
				{Enable: false, Prefix: "whitespace"},
				{Enable: true, Prefix: "linelength"},
			},
		},
		{
			name: "whitespace and empty items tolerated",
			spec: " -syntax , ,+linelength ",
			want: []lint.Directive{
				{Enable: false, Prefix: "syntax"},
				{Enable: true, Prefix: "linelength"},
			},
		},
		{
			name:    "missing sign",
			spec:    "whitespace",
			wantErr: `Filter should start with - or +, got "whitespace"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := lint.ParseDirectives(tt.spec)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ds)
		})
	}
}

func TestValidateDirectives(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		wantErr string
	}{
		{name: "exact category", spec: "-whitespace/tabs"},
		{name: "prefix match", spec: "-whitespace"},
		{name: "single letter prefix", spec: "-w"},
		{name: "unknown name", spec: "-bogus", wantErr: "Filter not allowed: -bogus"},
		{name: "prefix of nothing", spec: "+whitespace/tabsx", wantErr: "Filter not allowed: +whitespace/tabsx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := lint.ParseDirectives(tt.spec)
			require.NoError(t, err)
			err = lint.ValidateDirectives(ds)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestFilterSet_PrefixApply(t *testing.T) {
	f := lint.NewFilterSet()
	ds, err := lint.ParseDirectives("-whitespace")
	require.NoError(t, err)
	f.Apply(ds)

	assert.False(t, f.Enabled(lint.CategoryWhitespaceTabs))
	assert.False(t, f.Enabled(lint.CategoryWhitespaceEOL))
	assert.False(t, f.Enabled(lint.CategoryWhitespaceIndent))
	assert.True(t, f.Enabled(lint.CategoryLineLength))
	assert.True(t, f.Enabled(lint.CategorySyntax))
}

func TestFilterSet_LaterDirectiveWins(t *testing.T) {
	f := lint.NewFilterSet()
	ds, err := lint.ParseDirectives("-whitespace,+whitespace/tabs")
	require.NoError(t, err)
	f.Apply(ds)

	assert.True(t, f.Enabled(lint.CategoryWhitespaceTabs))
	assert.False(t, f.Enabled(lint.CategoryWhitespaceEOL))
}

func TestResolve_LayerPrecedence(t *testing.T) {
	// config layer disables all whitespace, CLI layer re-enables tabs.
	configDs, err := lint.ParseDirectives("-whitespace")
	require.NoError(t, err)
	cliDs, err := lint.ParseDirectives("+whitespace/tabs")
	require.NoError(t, err)

	f := lint.Resolve(configDs, cliDs)

	assert.True(t, f.Enabled(lint.CategoryWhitespaceTabs))
	assert.False(t, f.Enabled(lint.CategoryWhitespaceEOL))
	assert.True(t, f.Enabled(lint.CategoryLineLength))
}

func TestFilterSet_CloneIsIndependent(t *testing.T) {
	base := lint.NewFilterSet()
	clone := base.Clone()
	clone.Apply([]lint.Directive{{Enable: false, Prefix: "syntax"}})

	assert.True(t, base.Enabled(lint.CategorySyntax))
	assert.False(t, clone.Enabled(lint.CategorySyntax))
}

func TestCategories_Ordered(t *testing.T) {
	cats := lint.Categories()
	require.Len(t, cats, 13)
	assert.Equal(t, lint.CategoryConventionFilename, cats[0])
	assert.Equal(t, lint.CategoryWhitespaceTabs, cats[len(cats)-1])
}
