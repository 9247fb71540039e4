package lint

import (
	"sort"
	"strings"

	"github.com/gouzil/cmake-lint/pkg/parser"
)

// pragmaMarker starts an inline filter directive. The directive is
// recognized anywhere in the file and applies to the whole file.
const pragmaMarker = "# lint_cmake: "

// Analyzer runs the enabled checks over parsed CMake files. It holds
// no per-file state; one Analyzer may serve many files, concurrently
// for disjoint files.
type Analyzer struct {
	opts Options
	base FilterSet
}

// NewAnalyzer creates an analyzer with the given thresholds and base
// filter set (defaults + config + CLI layers, already resolved). A nil
// filter set means everything enabled.
func NewAnalyzer(opts Options, filters FilterSet) *Analyzer {
	if filters == nil {
		filters = NewFilterSet()
	}
	return &Analyzer{opts: opts, base: filters}
}

// AnalyzeFile runs the full pipeline over one file's content: parse,
// resolve inline directives on top of the base filters, run every
// enabled check, and return the violations ordered by line. The result
// is a pure function of (content, base filters, options).
func (a *Analyzer) AnalyzeFile(name, content string) []Violation {
	res := parser.Parse(content)
	ctx := &fileContext{
		name:      name,
		lines:     res.Lines,
		commands:  res.Commands,
		anomalies: res.Anomalies,
		hadCR:     res.HadCR,
		opts:      a.opts,
	}

	effective := a.base.Clone()
	var pragmaViolations []Violation
	for _, ln := range res.Lines {
		if !strings.HasPrefix(ln.Raw, pragmaMarker) {
			continue
		}
		ds, err := ParseDirectives(ln.Raw[len(pragmaMarker):])
		if err == nil {
			err = ValidateDirectives(ds)
		}
		if err != nil {
			pragmaViolations = append(pragmaViolations, Violation{
				Category: CategorySyntax,
				Line:     ln.Index,
				Message:  err.Error(),
			})
			continue
		}
		effective.Apply(ds)
	}

	var out []Violation
	if effective.Enabled(CategorySyntax) {
		out = append(out, pragmaViolations...)
	}
	for _, rule := range ruleTable {
		if !effective.Enabled(rule.Category) {
			continue
		}
		out = append(out, rule.check(ctx)...)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Line < out[j].Line
	})
	return out
}
