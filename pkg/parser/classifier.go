package parser

import (
	"strings"
)

// CommentState describes how a line relates to comment text.
type CommentState int

const (
	// CommentNone means the line carries no comment marker.
	CommentNone CommentState = iota
	// CommentBlock means the line starts inside a block comment.
	CommentBlock
	// CommentLine means a line comment starts on this line.
	CommentLine
)

// Line is one classified physical source line.
type Line struct {
	Index int // 1-based
	Raw   string

	HasTab        bool
	TrailingSpace bool

	Comment    CommentState
	CommentCol int // 1-based column of '#' when Comment == CommentLine

	// InBracketString is set when the line starts inside a multi-line
	// bracket-quoted string; BracketEq is the '=' count of its opener.
	InBracketString bool
	BracketEq       int

	// InQuote is set when the line starts inside a double-quoted
	// argument continued from the previous line.
	InQuote bool

	DepthStart int // paren depth at start of line
	DepthEnd   int // paren depth at end of line
}

// scanState is the carry-over state threaded across lines. It is held
// by value in the classification fold, never in package state.
type scanState struct {
	inBlockComment bool
	inBracket      bool
	bracketEq      int
	inQuote        bool
	depth          int
}

// classify produces one Line record per input line in a single forward
// pass. Paren depth is clamped at zero; a close paren at depth zero is
// recorded as an anomaly instead.
func classify(raw []string) ([]Line, []Anomaly) {
	var anomalies []Anomaly
	st := scanState{}
	lines := make([]Line, 0, len(raw))

	for i, text := range raw {
		ln := Line{
			Index:         i + 1,
			Raw:           text,
			HasTab:        strings.ContainsRune(text, '\t'),
			TrailingSpace: hasTrailingSpace(text),
			DepthStart:    st.depth,
			InQuote:       st.inQuote,
		}
		if st.inBlockComment {
			ln.Comment = CommentBlock
			ln.BracketEq = st.bracketEq
		}
		if st.inBracket {
			ln.InBracketString = true
			ln.BracketEq = st.bracketEq
		}

		scanLine(text, i+1, &st, &ln, &anomalies)

		ln.DepthEnd = st.depth
		lines = append(lines, ln)
	}

	switch {
	case st.inBlockComment:
		anomalies = append(anomalies, Anomaly{Line: len(raw), Message: "Unterminated block comment"})
	case st.inBracket:
		anomalies = append(anomalies, Anomaly{Line: len(raw), Message: "Unterminated bracket string"})
	}

	return lines, anomalies
}

// scanLine advances the scanner state over one line. Priority order:
// bracket string and block comment terminators are matched literally,
// then line comments, bracket openers, quotes, and parens.
func scanLine(text string, lineNo int, st *scanState, ln *Line, anomalies *[]Anomaly) {
	i := 0
	for i < len(text) {
		switch {
		case st.inBlockComment || st.inBracket:
			closer := bracketCloser(st.bracketEq)
			if strings.HasPrefix(text[i:], closer) {
				st.inBlockComment = false
				st.inBracket = false
				i += len(closer)
			} else {
				i++
			}

		case st.inQuote:
			switch text[i] {
			case '\\':
				i += 2
			case '"':
				st.inQuote = false
				i++
			default:
				i++
			}

		default:
			switch text[i] {
			case '#':
				if n, eq := bracketOpener(text[i+1:]); n > 0 {
					st.inBlockComment = true
					st.bracketEq = eq
					i += 1 + n
					continue
				}
				if ln.Comment == CommentNone {
					ln.Comment = CommentLine
					ln.CommentCol = i + 1
				}
				return
			case '[':
				if n, eq := bracketOpener(text[i:]); n > 0 {
					st.inBracket = true
					st.bracketEq = eq
					i += n
				} else {
					i++
				}
			case '"':
				st.inQuote = true
				i++
			case '(':
				st.depth++
				i++
			case ')':
				if st.depth == 0 {
					*anomalies = append(*anomalies, Anomaly{Line: lineNo, Message: "Unbalanced close parenthesis"})
				} else {
					st.depth--
				}
				i++
			default:
				i++
			}
		}
	}
}

// bracketOpener reports the byte length and '=' count of a bracket
// opener ("[[", "[=[", "[==[", ...) at the start of s, or 0 if s does
// not start with one.
func bracketOpener(s string) (n, eq int) {
	if len(s) < 2 || s[0] != '[' {
		return 0, 0
	}
	j := 1
	for j < len(s) && s[j] == '=' {
		j++
	}
	if j < len(s) && s[j] == '[' {
		return j + 1, j - 1
	}
	return 0, 0
}

// bracketCloser returns the exact terminator for an opener with eq '='
// signs, e.g. eq=1 -> "]=]".
func bracketCloser(eq int) string {
	return "]" + strings.Repeat("=", eq) + "]"
}

func hasTrailingSpace(s string) bool {
	if s == "" {
		return false
	}
	c := s[len(s)-1]
	return c == ' ' || c == '\t'
}
