// Package lint implements the rule engine for CMake source checks.
//
// The category set is fixed and closed: every check is one entry in an
// ordered rule table, a pure function from the parsed file model to a
// list of violations. Which categories run is decided by a FilterSet
// resolved from layered override sources (defaults, config file, CLI
// flag, inline per-file directive), later layers winning.
package lint
