// Package output renders lint results in plain text, styled terminal
// text, or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/gouzil/cmake-lint/pkg/lint"
)

// Mode selects the output format.
type Mode string

const (
	// ModeAuto styles output when stdout is a terminal.
	ModeAuto Mode = "auto"
	// ModeText is plain, machine-friendly text.
	ModeText Mode = "text"
	// ModeJSON is a machine-readable report.
	ModeJSON Mode = "json"
)

// Styles holds the lipgloss styles for terminal output.
type Styles struct {
	File     lipgloss.Style
	Category lipgloss.Style
	Summary  lipgloss.Style
}

func defaultStyles() Styles {
	return Styles{
		File:     lipgloss.NewStyle().Bold(true),
		Category: lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Summary:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// Renderer writes lint results to the given streams.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	styled bool
	styles Styles
}

// NewRenderer creates a renderer. ModeAuto enables styling only when
// out is a terminal.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		styled: mode == ModeAuto && isTerminal(out),
		styles: defaultStyles(),
	}
}

// EffectiveMode resolves ModeAuto to the concrete mode.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode == ModeJSON {
		return ModeJSON
	}
	return ModeText
}

// Report prints every violation as `file:line: message [category]`, in
// file order.
func (r *Renderer) Report(results []lint.FileResult) {
	for _, res := range results {
		for _, v := range res.Violations {
			loc := fmt.Sprintf("%s:%d", res.Path, v.Line)
			cat := fmt.Sprintf("[%s]", v.Category)
			if r.styled {
				loc = r.styles.File.Render(loc)
				cat = r.styles.Category.Render(cat)
			}
			fmt.Fprintf(r.out, "%s: %s %s\n", loc, v.Message, cat)
		}
	}
}

// Notice prints an informational line, e.g. for skipped files. It goes
// to the error stream so JSON output stays machine-readable.
func (r *Renderer) Notice(format string, args ...any) {
	fmt.Fprintf(r.errOut, format+"\n", args...)
}

// Summary prints the total error count on the error stream.
func (r *Renderer) Summary(total int) {
	line := fmt.Sprintf("Total Errors: %d", total)
	if r.styled && total > 0 {
		line = r.styles.Summary.Render(line)
	}
	fmt.Fprintln(r.errOut, line)
}

type jsonViolation struct {
	Line     int    `json:"line"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

type jsonFile struct {
	Path       string          `json:"path"`
	Violations []jsonViolation `json:"violations"`
}

type jsonReport struct {
	Files       []jsonFile `json:"files"`
	TotalErrors int        `json:"total_errors"`
}

// JSON writes the whole run as a single JSON document.
func (r *Renderer) JSON(results []lint.FileResult, total int) error {
	report := jsonReport{TotalErrors: total}
	for _, res := range results {
		jf := jsonFile{Path: res.Path, Violations: []jsonViolation{}}
		for _, v := range res.Violations {
			jf.Violations = append(jf.Violations, jsonViolation{
				Line:     v.Line,
				Category: string(v.Category),
				Message:  v.Message,
			})
		}
		report.Files = append(report.Files, jf)
	}
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
