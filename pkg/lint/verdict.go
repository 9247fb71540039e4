package lint

import "sync"

// Process exit statuses. Usage errors dominate content violations.
const (
	ExitClean      = 0
	ExitViolations = 1
	ExitUsage      = 32
)

// FileResult is the ordered violation list of one processed file.
type FileResult struct {
	Path       string
	Violations []Violation
}

// Verdict accumulates results across all processed files and computes
// the final exit status. It tolerates concurrent merges from an outer
// driver linting disjoint files in parallel.
type Verdict struct {
	mu      sync.Mutex
	results []FileResult
	total   int
	usage   bool
}

// NewVerdict returns an empty verdict.
func NewVerdict() *Verdict {
	return &Verdict{}
}

// AddFile records one file's violations.
func (v *Verdict) AddFile(path string, violations []Violation) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.results = append(v.results, FileResult{Path: path, Violations: violations})
	v.total += len(violations)
}

// RecordUsageError marks that a usage-level error occurred. The flag
// is sticky and forces the usage exit status.
func (v *Verdict) RecordUsageError() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.usage = true
}

// Results returns a copy of the per-file results in merge order.
func (v *Verdict) Results() []FileResult {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]FileResult, len(v.results))
	copy(out, v.results)
	return out
}

// Total returns the violation count across all files.
func (v *Verdict) Total() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.total
}

// UsageError reports whether a usage-level error occurred.
func (v *Verdict) UsageError() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.usage
}

// ExitCode computes the final process status: usage errors win, then
// any violation, then clean.
func (v *Verdict) ExitCode() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	switch {
	case v.usage:
		return ExitUsage
	case v.total > 0:
		return ExitViolations
	default:
		return ExitClean
	}
}
