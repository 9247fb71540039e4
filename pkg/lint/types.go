package lint

// Category names one class of check. The set is fixed and closed.
type Category string

// The recognized check categories.
const (
	CategoryConventionFilename   Category = "convention/filename"
	CategoryLineLength           Category = "linelength"
	CategoryPackageConsistency   Category = "package/consistency"
	CategoryReadabilityLogic     Category = "readability/logic"
	CategoryReadabilityMixedCase Category = "readability/mixedcase"
	CategoryReadabilityWonkyCase Category = "readability/wonkycase"
	CategorySyntax               Category = "syntax"
	CategoryWhitespaceEOL        Category = "whitespace/eol"
	CategoryWhitespaceExtra      Category = "whitespace/extra"
	CategoryWhitespaceIndent     Category = "whitespace/indent"
	CategoryWhitespaceMismatch   Category = "whitespace/mismatch"
	CategoryWhitespaceNewline    Category = "whitespace/newline"
	CategoryWhitespaceTabs       Category = "whitespace/tabs"
)

// allCategories is the closed set in listing order.
var allCategories = []Category{
	CategoryConventionFilename,
	CategoryLineLength,
	CategoryPackageConsistency,
	CategoryReadabilityLogic,
	CategoryReadabilityMixedCase,
	CategoryReadabilityWonkyCase,
	CategorySyntax,
	CategoryWhitespaceEOL,
	CategoryWhitespaceExtra,
	CategoryWhitespaceIndent,
	CategoryWhitespaceMismatch,
	CategoryWhitespaceNewline,
	CategoryWhitespaceTabs,
}

// Categories returns the closed category set in listing order.
func Categories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// Violation is a single reported problem. Violations are pure values;
// ordering within a file is stable by (line, rule-table order).
type Violation struct {
	Category Category
	Line     int // 0 means the violation applies to the file as a whole
	Message  string
}

// Options holds the tunable check thresholds.
type Options struct {
	Spaces     int // indentation unit
	LineLength int // maximum line length in characters
}

// DefaultOptions returns the stock thresholds.
func DefaultOptions() Options {
	return Options{
		Spaces:     2,
		LineLength: 80,
	}
}
