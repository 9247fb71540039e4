package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gouzil/cmake-lint/pkg/token"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind token.Kind
		want string
	}{
		{token.IDENT, "identifier"},
		{token.QUOTED, "quoted-string"},
		{token.BRACKET, "bracket-string"},
		{token.VARREF, "variable-reference"},
		{token.PUNCT, "punctuation"},
		{token.Kind(99), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestPosition_IsValid(t *testing.T) {
	assert.False(t, token.Position{}.IsValid())
	assert.True(t, token.Position{Line: 1, Column: 1}.IsValid())

	span := token.Span{
		Start: token.Position{Line: 1, Column: 1},
		End:   token.Position{Line: 2, Column: 5},
	}
	assert.True(t, span.IsValid())
	assert.False(t, token.Span{Start: token.Position{Line: 1}}.IsValid())
}
