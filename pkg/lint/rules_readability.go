package lint

import (
	"fmt"
	"strings"
)

// logicCommands are the block-ending commands that should not repeat
// the opening expression.
var logicCommands = map[string]bool{
	"else":        true,
	"endforeach":  true,
	"endfunction": true,
	"endif":       true,
	"endmacro":    true,
	"endwhile":    true,
}

func checkRepeatLogic(ctx *fileContext) []Violation {
	var out []Violation
	for _, cmd := range ctx.commands {
		if !logicCommands[cmd.NameLower] || len(cmd.Args) == 0 {
			continue
		}
		out = append(out, Violation{
			Category: CategoryReadabilityLogic,
			Line:     cmd.StartLine,
			Message: fmt.Sprintf("Expression repeated inside %s; better to use only %s()",
				cmd.NameLower, cmd.Name),
		})
	}
	return out
}

// checkWonkyCase flags command names that mix upper and lower case
// within the name itself, e.g. Set().
func checkWonkyCase(ctx *fileContext) []Violation {
	var out []Violation
	for _, cmd := range ctx.commands {
		if isMixedCase(cmd.Name) {
			out = append(out, Violation{
				Category: CategoryReadabilityWonkyCase,
				Line:     cmd.StartLine,
				Message:  "Do not use mixed case commands",
			})
		}
	}
	return out
}

// checkMixedCase flags commands whose casing style differs from the
// first command seen in the file. First occurrence wins; only the
// outliers are reported.
func checkMixedCase(ctx *fileContext) []Violation {
	var out []Violation
	var seenUpper *bool
	for _, cmd := range ctx.commands {
		if isMixedCase(cmd.Name) {
			continue
		}
		upper := cmd.Name == strings.ToUpper(cmd.Name)
		if seenUpper == nil {
			seenUpper = &upper
			continue
		}
		if upper != *seenUpper {
			out = append(out, Violation{
				Category: CategoryReadabilityMixedCase,
				Line:     cmd.StartLine,
				Message:  "Do not mix upper and lower case commands",
			})
		}
	}
	return out
}

func isMixedCase(name string) bool {
	return name != strings.ToLower(name) && name != strings.ToUpper(name)
}
