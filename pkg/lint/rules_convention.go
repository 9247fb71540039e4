package lint

import (
	"path/filepath"
	"strings"
)

func checkFileName(ctx *fileContext) []Violation {
	base := filepath.Base(ctx.name)

	if pkg, ok := findModulePackage(base); ok {
		if pkg != strings.ToUpper(pkg) {
			return []Violation{{
				Category: CategoryConventionFilename,
				Line:     0,
				Message: "Find modules should use uppercase names; consider using Find" +
					strings.ToUpper(pkg) + ".cmake",
			}}
		}
		return nil
	}

	if strings.EqualFold(base, "CMakeLists.txt") && base != "CMakeLists.txt" {
		return []Violation{{
			Category: CategoryConventionFilename,
			Line:     0,
			Message:  "File should be called CMakeLists.txt",
		}}
	}
	return nil
}

// findModulePackage extracts the package name from a Find<PKG>.cmake
// file name.
func findModulePackage(base string) (string, bool) {
	if !strings.HasPrefix(base, "Find") || !strings.HasSuffix(base, ".cmake") {
		return "", false
	}
	return strings.TrimSuffix(strings.TrimPrefix(base, "Find"), ".cmake"), true
}

// isFindModule reports whether the file is a Find*.cmake package
// module, which carries extra package/consistency obligations.
func isFindModule(name string) bool {
	base := filepath.Base(name)
	return strings.HasPrefix(base, "Find") && strings.HasSuffix(name, ".cmake")
}
