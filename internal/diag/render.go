package diag

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/mattn/go-isatty"
)

// ColorMode controls whether Render emits ANSI escapes.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// ParseColorMode maps a config.ProjectConfig's Color string onto a
// ColorMode, defaulting to ColorAuto for an unrecognized value.
func ParseColorMode(s string) ColorMode {
	switch s {
	case "always":
		return ColorAlways
	case "never":
		return ColorNever
	default:
		return ColorAuto
	}
}

func shouldColor(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if f, ok := w.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// Render writes every diagnostic to w, sorted by source position, in the
// compiler's one-line-per-diagnostic text format. Diagnostics from
// different phases are interleaved by position rather than grouped, so a
// parse error and a later lowering error on the same line appear
// together.
func Render(w io.Writer, diags []*Diagnostic, mode ColorMode) {
	sorted := make([]*Diagnostic, len(diags))
	copy(sorted, diags)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Span.Start < sorted[j].Span.Start
	})

	color := shouldColor(mode, w)
	for _, d := range sorted {
		if color {
			fmt.Fprintf(w, "\x1b[31m%s\x1b[0m %s:%d:%d: %s\n", d.Code, d.Phase, d.Span.Line, d.Span.Column, d.Message)
		} else {
			fmt.Fprintf(w, "%s %s:%d:%d: %s\n", d.Code, d.Phase, d.Span.Line, d.Span.Column, d.Message)
		}
	}
}

// Summary renders a short human-readable count, e.g. "3 errors".
func Summary(diags []*Diagnostic) string {
	if len(diags) == 0 {
		return "no errors"
	}
	if len(diags) == 1 {
		return "1 error"
	}
	return fmt.Sprintf("%d errors", len(diags))
}

// Codes returns the sorted, deduplicated set of diagnostic codes present,
// mainly so golden tests can assert "exactly these codes fired" without
// depending on message wording.
func Codes(diags []*Diagnostic) []string {
	seen := map[Code]bool{}
	var out []string
	for _, d := range diags {
		if !seen[d.Code] {
			seen[d.Code] = true
			out = append(out, string(d.Code))
		}
	}
	sort.Strings(out)
	return out
}
