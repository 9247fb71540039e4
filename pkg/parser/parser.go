// Package parser turns raw CMake source text into a line-addressable
// model: classified source lines, tokenized command invocations, and the
// structural anomalies found along the way.
//
// Parsing is a pure function of the input text. Anomalies are recorded,
// never raised: a broken file still produces a usable model so that
// line-level checks can run to completion.
package parser

import "strings"

// Result is the parsed model of a single file.
type Result struct {
	Lines     []Line
	Commands  []Command
	Anomalies []Anomaly

	// HadCR reports whether any line ended with a carriage return.
	HadCR bool
}

// Anomaly is a structural problem found while scanning: an unbalanced
// paren, an unterminated string or comment. Anomalies are surfaced as
// syntax violations by the lint layer.
type Anomaly struct {
	Line    int
	Message string
}

// Parse scans input in a single forward pass and builds the full model.
func Parse(input string) *Result {
	lines, hadCR := splitLines(input)
	res := &Result{HadCR: hadCR}
	res.Lines, res.Anomalies = classify(lines)

	lx := newLexer(strings.Join(lines, "\n"))
	res.Commands = lx.scan()
	res.Anomalies = append(res.Anomalies, lx.anomalies...)
	return res
}

// splitLines splits input into physical lines, stripping line
// terminators. A final line without a trailing newline still counts.
func splitLines(input string) ([]string, bool) {
	if input == "" {
		return nil, false
	}
	raw := strings.Split(input, "\n")
	if raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}
	hadCR := false
	for i, line := range raw {
		if strings.HasSuffix(line, "\r") {
			hadCR = true
			raw[i] = strings.TrimSuffix(line, "\r")
		}
	}
	return raw, hadCR
}
