package lint

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gouzil/cmake-lint/pkg/parser"
	"github.com/gouzil/cmake-lint/pkg/token"
)

// stdArgsModule is the helper module every Find module is expected to
// include and invoke.
const stdArgsModule = "FindPackageHandleStandardArgs"

func checkPackageConsistency(ctx *fileContext) []Violation {
	var out []Violation

	// The same package referenced with different capitalization across
	// find_package invocations; the first spelling wins, later
	// spellings are flagged where they occur.
	seen := make(map[string]string)
	for _, cmd := range ctx.commands {
		if cmd.NameLower != "find_package" {
			continue
		}
		name, ok := firstWordArg(cmd)
		if !ok {
			continue
		}
		lower := strings.ToLower(name)
		first, dup := seen[lower]
		if !dup {
			seen[lower] = name
			continue
		}
		if first != name {
			out = append(out, Violation{
				Category: CategoryPackageConsistency,
				Line:     cmd.StartLine,
				Message: fmt.Sprintf("Inconsistent package capitalization %q; first seen as %q",
					name, first),
			})
		}
	}

	if !isFindModule(ctx.name) {
		return out
	}

	pkg, _ := findModulePackage(filepath.Base(ctx.name))
	expected := strings.ToUpper(pkg)

	var haveIncluded, haveUsed bool
	for _, cmd := range ctx.commands {
		switch cmd.NameLower {
		case "include":
			if name, ok := firstWordArg(cmd); ok && name == stdArgsModule {
				haveIncluded = true
			}
		case "find_package_handle_standard_args":
			haveUsed = true
			if name, ok := firstWordArg(cmd); ok && name != expected {
				out = append(out, Violation{
					Category: CategoryPackageConsistency,
					Line:     cmd.StartLine,
					Message: fmt.Sprintf("Weird variable passed to std args, should be %s not %s",
						expected, name),
				})
			}
		}
	}
	if !haveIncluded {
		out = append(out, Violation{
			Category: CategoryPackageConsistency,
			Line:     0,
			Message:  "Package should include " + stdArgsModule,
		})
	}
	if !haveUsed {
		out = append(out, Violation{
			Category: CategoryPackageConsistency,
			Line:     0,
			Message:  "Package should use " + strings.ToUpper(camelToSnake(stdArgsModule)),
		})
	}
	return out
}

// firstWordArg returns the first bare-word argument of a command.
func firstWordArg(cmd parser.Command) (string, bool) {
	for _, arg := range cmd.Args {
		if arg.Kind == token.IDENT {
			return arg.Text, true
		}
	}
	return "", false
}

// camelToSnake converts CamelCase to snake_case, used to render the
// command form of the standard-args module name.
func camelToSnake(s string) string {
	var sb strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				sb.WriteByte('_')
			}
			sb.WriteRune(r + ('a' - 'A'))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
