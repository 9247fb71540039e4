package lint

import "fmt"

func checkTabs(ctx *fileContext) []Violation {
	var out []Violation
	for _, ln := range ctx.lines {
		if ln.HasTab {
			out = append(out, Violation{
				Category: CategoryWhitespaceTabs,
				Line:     ln.Index,
				Message:  "Tab found; please use spaces",
			})
		}
	}
	return out
}

func checkEOL(ctx *fileContext) []Violation {
	var out []Violation
	for _, ln := range ctx.lines {
		if ln.TrailingSpace {
			out = append(out, Violation{
				Category: CategoryWhitespaceEOL,
				Line:     ln.Index,
				Message:  "Line ends in whitespace",
			})
		}
	}
	return out
}

func checkNewline(ctx *fileContext) []Violation {
	if !ctx.hadCR {
		return nil
	}
	return []Violation{{
		Category: CategoryWhitespaceNewline,
		Line:     0,
		Message:  `Unexpected carriage return found; better to use only \n`,
	}}
}

// checkIndent flags lines whose leading spaces are not a multiple of
// the configured indentation unit.
func checkIndent(ctx *fileContext) []Violation {
	var out []Violation
	for _, ln := range ctx.lines {
		if initialSpaces(ln.Raw)%ctx.opts.Spaces != 0 {
			out = append(out, Violation{
				Category: CategoryWhitespaceIndent,
				Line:     ln.Index,
				Message:  fmt.Sprintf("Weird indentation; use %d spaces", ctx.opts.Spaces),
			})
		}
	}
	return out
}

func checkExtraSpaces(ctx *fileContext) []Violation {
	var out []Violation
	for _, cmd := range ctx.commands {
		if cmd.SpacesAfterName > 0 {
			out = append(out, Violation{
				Category: CategoryWhitespaceExtra,
				Line:     cmd.StartLine,
				Message:  fmt.Sprintf("Extra spaces between '%s' and its ()", cmd.Name),
			})
		}
	}
	return out
}

// checkParenSpaceMismatch compares the spaces just inside a command's
// parens. On a multi-line command the closing line's indentation does
// not count against the close paren.
func checkParenSpaceMismatch(ctx *fileContext) []Violation {
	var out []Violation
	for _, cmd := range ctx.commands {
		if !cmd.Closed {
			continue
		}
		before := cmd.SpacesBeforeClose
		if cmd.EndLine != cmd.StartLine && before >= cmd.CloseIndent {
			before -= cmd.CloseIndent
		}
		if before != cmd.SpacesAfterOpen {
			out = append(out, Violation{
				Category: CategoryWhitespaceMismatch,
				Line:     cmd.StartLine,
				Message:  "Mismatching spaces inside () after command",
			})
		}
	}
	return out
}

func initialSpaces(s string) int {
	n := 0
	for n < len(s) && s[n] == ' ' {
		n++
	}
	return n
}
