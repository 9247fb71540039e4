package parser

import (
	"strings"

	"github.com/gouzil/cmake-lint/pkg/token"
)

// Command is one tokenized command invocation, possibly spanning
// multiple physical lines. Commands are produced in file order and are
// immutable once built.
type Command struct {
	Name      string // original case, for case-style checks
	NameLower string // normalized for matching known command names
	NamePos   token.Position
	StartLine int
	EndLine   int
	Args      []token.Token

	// Closed reports whether the matching ')' was found before EOF.
	Closed bool

	// Spacing metadata consumed by the whitespace checks.
	SpacesAfterName   int // between the name and '('
	SpacesAfterOpen   int // after '(' before the first argument
	SpacesBeforeClose int // before the matching ')'
	CloseIndent       int // leading spaces on the line holding the ')'
}

// lexer scans the input for top-level command invocations. A command is
// recognized only when its name is the first thing on a line, matching
// the shape `name(args...)`.
type lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)

	anomalies []Anomaly
}

func newLexer(input string) *lexer {
	l := &lexer{
		input: input,
		line:  1,
		col:   0,
	}
	l.readChar()
	return l
}

// readChar advances to the next character.
func (l *lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++

	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

// peekChar returns the next character without advancing.
func (l *lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

func (l *lexer) rest() string {
	return l.input[l.pos:]
}

// scan walks the whole input and collects every top-level command.
func (l *lexer) scan() []Command {
	var cmds []Command
	firstOnLine := true

	for l.ch != 0 {
		switch {
		case l.ch == '\n':
			firstOnLine = true
			l.readChar()
		case l.ch == ' ' || l.ch == '\t':
			l.readChar()
		case l.ch == '#':
			l.skipComment()
			firstOnLine = false
		case l.ch == '[':
			if n, eq := bracketOpener(l.rest()); n > 0 {
				l.skipBracketString(n, eq)
			} else {
				l.readChar()
			}
			firstOnLine = false
		case isIdentStart(l.ch):
			if firstOnLine {
				if cmd, ok := l.readCommand(); ok {
					cmds = append(cmds, cmd)
					firstOnLine = false
					continue
				}
			}
			l.skipToLineEnd()
			firstOnLine = false
		default:
			l.skipToLineEnd()
			firstOnLine = false
		}
	}
	return cmds
}

// readCommand reads `name ( args... )` starting at an identifier. It
// returns ok=false when the identifier is not followed by an open
// paren; the caller then discards the rest of the line.
func (l *lexer) readCommand() (Command, bool) {
	namePos := l.currentPos()
	name := l.readIdentifier()

	spaces := 0
	for l.ch == ' ' || l.ch == '\t' {
		spaces++
		l.readChar()
	}
	if l.ch != '(' {
		return Command{}, false
	}

	cmd := Command{
		Name:            name,
		NameLower:       strings.ToLower(name),
		NamePos:         namePos,
		StartLine:       namePos.Line,
		SpacesAfterName: spaces,
	}
	l.readChar() // consume '('
	for l.ch == ' ' || l.ch == '\t' {
		cmd.SpacesAfterOpen++
		l.readChar()
	}

	depth := 1
	badNesting := false // a string or comment already ran to EOF

	for depth > 0 && l.ch != 0 {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\n':
			l.readChar()
		case l.ch == '#':
			if unterminated := l.skipComment(); unterminated {
				badNesting = true
			}
		case l.ch == '"':
			tok, ok := l.readQuoted()
			if !ok {
				badNesting = true
			}
			cmd.Args = append(cmd.Args, tok)
		case l.ch == '(':
			cmd.Args = append(cmd.Args, token.Token{Text: "(", Kind: token.PUNCT, Pos: l.currentPos()})
			depth++
			l.readChar()
		case l.ch == ')':
			depth--
			if depth == 0 {
				closePos := l.currentPos()
				cmd.Closed = true
				cmd.EndLine = closePos.Line
				cmd.SpacesBeforeClose = l.spacesBefore(closePos.Offset)
				cmd.CloseIndent = l.lineIndent(closePos.Offset)
				l.readChar()
			} else {
				cmd.Args = append(cmd.Args, token.Token{Text: ")", Kind: token.PUNCT, Pos: l.currentPos()})
				l.readChar()
			}
		case l.ch == '[' && hasBracketOpener(l.rest()):
			tok, ok := l.readBracketString()
			if !ok {
				badNesting = true
			}
			cmd.Args = append(cmd.Args, tok)
		default:
			cmd.Args = append(cmd.Args, l.readBareArg())
		}
	}

	if depth > 0 {
		cmd.EndLine = l.line
		if !badNesting {
			l.anomalies = append(l.anomalies, Anomaly{
				Line:    cmd.StartLine,
				Message: "Unable to find the end of this command",
			})
		}
	}
	return cmd, true
}

// readQuoted reads a double-quoted string token, quotes included, with
// \" and \\ escape handling. ok=false means the closing quote was
// never found.
func (l *lexer) readQuoted() (token.Token, bool) {
	pos := l.currentPos()
	var sb strings.Builder
	sb.WriteByte('"')
	l.readChar()

	for l.ch != 0 {
		if l.ch == '\\' {
			sb.WriteByte(l.ch)
			l.readChar()
			if l.ch != 0 {
				sb.WriteByte(l.ch)
				l.readChar()
			}
			continue
		}
		if l.ch == '"' {
			sb.WriteByte('"')
			l.readChar()
			return token.Token{Text: sb.String(), Kind: token.QUOTED, Pos: pos}, true
		}
		sb.WriteByte(l.ch)
		l.readChar()
	}

	l.anomalies = append(l.anomalies, Anomaly{Line: pos.Line, Message: "Unterminated quoted string"})
	return token.Token{Text: sb.String(), Kind: token.QUOTED, Pos: pos}, false
}

// readBracketString reads a bracket-quoted string token, delimiters
// included. The unterminated case is left to the classifier to report,
// so no anomaly is recorded here.
func (l *lexer) readBracketString() (token.Token, bool) {
	pos := l.currentPos()
	n, eq := bracketOpener(l.rest())
	start := l.pos
	for i := 0; i < n; i++ {
		l.readChar()
	}

	closer := bracketCloser(eq)
	for l.ch != 0 {
		if strings.HasPrefix(l.rest(), closer) {
			for i := 0; i < len(closer); i++ {
				l.readChar()
			}
			return token.Token{Text: l.input[start:l.pos], Kind: token.BRACKET, Pos: pos}, true
		}
		l.readChar()
	}
	return token.Token{Text: l.input[start:l.pos], Kind: token.BRACKET, Pos: pos}, false
}

// readBareArg reads an unquoted argument, keeping ${...} variable
// reference runs (with nested braces) inside the token text.
func (l *lexer) readBareArg() token.Token {
	pos := l.currentPos()
	start := l.pos
	hasVar := false

	for l.ch != 0 {
		if l.ch == ' ' || l.ch == '\t' || l.ch == '\n' ||
			l.ch == '(' || l.ch == ')' || l.ch == '"' || l.ch == '#' {
			break
		}
		if l.ch == '[' && hasBracketOpener(l.rest()) {
			break
		}
		if l.ch == '$' && l.peekChar() == '{' {
			hasVar = true
			l.readChar()
			l.readChar()
			braces := 1
			for l.ch != 0 && l.ch != '\n' {
				c := l.ch
				l.readChar()
				if c == '{' {
					braces++
				} else if c == '}' {
					braces--
					if braces == 0 {
						break
					}
				}
			}
			continue
		}
		l.readChar()
	}

	kind := token.IDENT
	if hasVar {
		kind = token.VARREF
	}
	return token.Token{Text: l.input[start:l.pos], Kind: kind, Pos: pos}
}

// skipComment skips a line comment or a bracketed block comment
// starting at '#'. It reports whether a block comment ran to EOF.
func (l *lexer) skipComment() bool {
	if n, eq := bracketOpener(l.input[l.readPos:]); n > 0 {
		for i := 0; i < 1+n; i++ {
			l.readChar()
		}
		closer := bracketCloser(eq)
		for l.ch != 0 {
			if strings.HasPrefix(l.rest(), closer) {
				for i := 0; i < len(closer); i++ {
					l.readChar()
				}
				return false
			}
			l.readChar()
		}
		return true
	}
	for l.ch != 0 && l.ch != '\n' {
		l.readChar()
	}
	return false
}

// skipBracketString skips a top-level bracket string outside of any
// command. Unterminated input is the classifier's concern.
func (l *lexer) skipBracketString(n, eq int) {
	for i := 0; i < n; i++ {
		l.readChar()
	}
	closer := bracketCloser(eq)
	for l.ch != 0 {
		if strings.HasPrefix(l.rest(), closer) {
			for i := 0; i < len(closer); i++ {
				l.readChar()
			}
			return
		}
		l.readChar()
	}
}

func (l *lexer) skipToLineEnd() {
	for l.ch != 0 && l.ch != '\n' {
		l.readChar()
	}
}

func (l *lexer) readIdentifier() string {
	start := l.pos
	for isIdentChar(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// spacesBefore counts spaces and tabs immediately before offset on the
// same line.
func (l *lexer) spacesBefore(offset int) int {
	n := 0
	for j := offset - 1; j >= 0; j-- {
		c := l.input[j]
		if c == ' ' || c == '\t' {
			n++
			continue
		}
		break
	}
	return n
}

// lineIndent counts the leading spaces of the line containing offset.
func (l *lexer) lineIndent(offset int) int {
	start := strings.LastIndexByte(l.input[:offset], '\n') + 1
	n := 0
	for j := start; j < len(l.input) && l.input[j] == ' '; j++ {
		n++
	}
	return n
}

func hasBracketOpener(s string) bool {
	n, _ := bracketOpener(s)
	return n > 0
}

func isIdentStart(ch byte) bool {
	return ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isIdentChar(ch byte) bool {
	return isIdentStart(ch) || ('0' <= ch && ch <= '9')
}
