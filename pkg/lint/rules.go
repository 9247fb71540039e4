package lint

import (
	"fmt"
	"unicode/utf8"

	"github.com/gouzil/cmake-lint/pkg/parser"
)

// fileContext is the per-file model handed to every check. It exists
// only for the duration of one file's analysis.
type fileContext struct {
	name      string
	lines     []parser.Line
	commands  []parser.Command
	anomalies []parser.Anomaly
	hadCR     bool
	opts      Options
}

type checkFunc func(*fileContext) []Violation

// RuleDef describes one check category.
type RuleDef struct {
	Category    Category
	Description string
	check       checkFunc
}

// ruleTable is the closed set of checks in listing order. Checks are
// mutually independent; any subset can be disabled without side
// effects on the rest.
var ruleTable = []RuleDef{
	{CategoryConventionFilename, "Source file naming conventions", checkFileName},
	{CategoryLineLength, "Lines longer than the configured limit", checkLineLength},
	{CategoryPackageConsistency, "Consistent find_package usage", checkPackageConsistency},
	{CategoryReadabilityLogic, "Expressions repeated inside end commands", checkRepeatLogic},
	{CategoryReadabilityMixedCase, "Mixing upper and lower case commands", checkMixedCase},
	{CategoryReadabilityWonkyCase, "Mixed case within a command name", checkWonkyCase},
	{CategorySyntax, "Unbalanced parens, strings and comments", checkSyntax},
	{CategoryWhitespaceEOL, "Trailing whitespace", checkEOL},
	{CategoryWhitespaceExtra, "Extra spaces between a command and its parens", checkExtraSpaces},
	{CategoryWhitespaceIndent, "Inconsistent indentation step", checkIndent},
	{CategoryWhitespaceMismatch, "Mismatching spaces inside parens", checkParenSpaceMismatch},
	{CategoryWhitespaceNewline, "Carriage return line endings", checkNewline},
	{CategoryWhitespaceTabs, "Literal tab characters", checkTabs},
}

// Rules returns the rule table metadata in listing order.
func Rules() []RuleDef {
	out := make([]RuleDef, len(ruleTable))
	copy(out, ruleTable)
	return out
}

func checkLineLength(ctx *fileContext) []Violation {
	var out []Violation
	for _, ln := range ctx.lines {
		if utf8.RuneCountInString(ln.Raw) > ctx.opts.LineLength {
			out = append(out, Violation{
				Category: CategoryLineLength,
				Line:     ln.Index,
				Message:  fmt.Sprintf("Lines should be <= %d characters long", ctx.opts.LineLength),
			})
		}
	}
	return out
}

func checkSyntax(ctx *fileContext) []Violation {
	var out []Violation
	for _, a := range ctx.anomalies {
		out = append(out, Violation{
			Category: CategorySyntax,
			Line:     a.Line,
			Message:  a.Message,
		})
	}
	return out
}
