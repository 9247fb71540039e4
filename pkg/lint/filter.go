package lint

import (
	"fmt"
	"strings"
)

// Directive is one parsed filter token: +prefix enables, -prefix
// disables every category the prefix matches.
type Directive struct {
	Enable bool
	Prefix string
}

// String renders the directive back in filter grammar.
func (d Directive) String() string {
	if d.Enable {
		return "+" + d.Prefix
	}
	return "-" + d.Prefix
}

// ParseDirectives parses a comma-separated list of +category/-category
// tokens. Empty items are skipped; anything not starting with + or -
// is a grammar error.
func ParseDirectives(spec string) ([]Directive, error) {
	var ds []Directive
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		switch part[0] {
		case '+':
			ds = append(ds, Directive{Enable: true, Prefix: part[1:]})
		case '-':
			ds = append(ds, Directive{Enable: false, Prefix: part[1:]})
		default:
			return nil, fmt.Errorf("Filter should start with - or +, got %q", part)
		}
	}
	return ds, nil
}

// ValidateDirectives rejects directives whose prefix matches no known
// category. Config and CLI layers validate; the inline directive layer
// reports the same error as an in-file syntax violation instead.
func ValidateDirectives(ds []Directive) error {
	for _, d := range ds {
		if !matchesAnyCategory(d.Prefix) {
			return fmt.Errorf("Filter not allowed: %s", d)
		}
	}
	return nil
}

func matchesAnyCategory(prefix string) bool {
	for _, c := range allCategories {
		if strings.HasPrefix(string(c), prefix) {
			return true
		}
	}
	return false
}

// FilterSet maps every category to its enabled state.
type FilterSet map[Category]bool

// NewFilterSet returns the default set with every category enabled.
func NewFilterSet() FilterSet {
	f := make(FilterSet, len(allCategories))
	for _, c := range allCategories {
		f[c] = true
	}
	return f
}

// Apply folds directives into the set in order. A directive only flips
// the categories its prefix matches; everything else keeps its prior
// state.
func (f FilterSet) Apply(ds []Directive) {
	for _, d := range ds {
		for _, c := range allCategories {
			if strings.HasPrefix(string(c), d.Prefix) {
				f[c] = d.Enable
			}
		}
	}
}

// Enabled reports whether a category is active.
func (f FilterSet) Enabled(c Category) bool {
	return f[c]
}

// Clone returns an independent copy.
func (f FilterSet) Clone() FilterSet {
	out := make(FilterSet, len(f))
	for c, on := range f {
		out[c] = on
	}
	return out
}

// Resolve builds the final set by folding override layers over the
// defaults in increasing precedence order.
func Resolve(layers ...[]Directive) FilterSet {
	f := NewFilterSet()
	for _, layer := range layers {
		f.Apply(layer)
	}
	return f
}
