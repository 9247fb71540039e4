// Package token defines the lexical token types for CMake source text.
package token

// Kind classifies a lexical token inside a command invocation.
type Kind int

const (
	// IDENT is a bare word argument or command name.
	IDENT Kind = iota
	// QUOTED is a double-quoted string argument, quotes included.
	QUOTED
	// BRACKET is a bracket-quoted string argument, delimiters included.
	BRACKET
	// VARREF is an argument containing at least one ${...} reference.
	VARREF
	// PUNCT is structural punctuation inside an argument list, e.g. a
	// nested paren.
	PUNCT
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case IDENT:
		return "identifier"
	case QUOTED:
		return "quoted-string"
	case BRACKET:
		return "bracket-string"
	case VARREF:
		return "variable-reference"
	case PUNCT:
		return "punctuation"
	default:
		return "unknown"
	}
}

// Token is a single lexical token. Tokens are owned by the command
// invocation that produced them and are immutable once built.
type Token struct {
	Text string
	Kind Kind
	Pos  Position
}
