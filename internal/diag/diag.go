// Package diag implements the error reporter described in spec §6 and §7:
// a sink that accumulates numbered diagnostics without short-circuiting,
// plus a distinguished internal-error channel for driver bugs (spec §7:
// "Missing-lookup ... is an internal error: it indicates a bug in the
// driver, not a user fault").
//
// The rendering (source line + caret) is ported from the teacher's
// internal/errors.CompilerError.Format, generalized from a single
// hardcoded "Error" severity to the Warning/Error pair spec §7 requires
// and from a free-form message to a numbered code.
package diag

import (
	"fmt"
	"strings"

	"github.com/cwbudde/scriptgen/internal/source"
)

// Severity classifies a Diagnostic as spec §7 requires.
type Severity int

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

// Diagnostic is one reported problem.
type Diagnostic struct {
	Code     int
	Severity Severity
	Region   source.Region
	Message  string
}

// InternalError is panicked (never returned) when the core is asked about
// a symbol it never imported, or otherwise hits a condition that can only
// be a caller bug. The driver recovers it and reports it distinctly from
// user diagnostics.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string { return "internal error: " + e.Message }

// Raise panics with an InternalError. Core packages call this instead of
// returning an error for conditions spec §4.1/§7 call internal errors
// (e.g. prepare-order violations, missing semantic records).
func Raise(format string, args ...any) {
	panic(&InternalError{Message: fmt.Sprintf(format, args...)})
}

// Reporter accumulates diagnostics across an entire compilation. It never
// stops early — spec §7: "Errors accumulate without short-circuiting the
// type, so the user sees as many real problems as possible from one run."
type Reporter struct {
	diagnostics []Diagnostic
}

// NewReporter creates an empty Reporter.
func NewReporter() *Reporter {
	return &Reporter{}
}

// Report records one diagnostic and returns it, so callers that build a
// fallback value can reference it (e.g. for tests asserting on Code).
func (r *Reporter) Report(severity Severity, code int, region source.Region, format string, args ...any) Diagnostic {
	d := Diagnostic{
		Code:     code,
		Severity: severity,
		Region:   region,
		Message:  fmt.Sprintf(format, args...),
	}
	r.diagnostics = append(r.diagnostics, d)
	return d
}

// Errorf is shorthand for Report(Error, ...).
func (r *Reporter) Errorf(code int, region source.Region, format string, args ...any) Diagnostic {
	return r.Report(Error, code, region, format, args...)
}

// Warnf is shorthand for Report(Warning, ...).
func (r *Reporter) Warnf(code int, region source.Region, format string, args ...any) Diagnostic {
	return r.Report(Warning, code, region, format, args...)
}

// Diagnostics returns every diagnostic reported so far, in report order.
func (r *Reporter) Diagnostics() []Diagnostic {
	return r.diagnostics
}

// HasErrors reports whether any Error-severity diagnostic was reported.
// The driver checks this after each major phase (spec §7) and aborts
// before writing output when it's true.
func (r *Reporter) HasErrors() bool {
	for _, d := range r.diagnostics {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Format renders a Diagnostic the way the teacher's CompilerError.Format
// does: a header line, the offending source line, and a caret under the
// column. sourceText is the full text of the file named in the region;
// pass "" when no source text is available (e.g. a region synthesized by
// the importer for an attribute-level diagnostic).
func Format(d Diagnostic, sourceText string, color bool) string {
	var sb strings.Builder

	pos := d.Region.Start
	if pos.File != "" {
		fmt.Fprintf(&sb, "%s %d: %s:%d:%d\n", d.Severity, d.Code, pos.File, pos.Line, pos.Column)
	} else {
		fmt.Fprintf(&sb, "%s %d: line %d:%d\n", d.Severity, d.Code, pos.Line, pos.Column)
	}

	if line := sourceLine(sourceText, pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+max(pos.Column-1, 0)))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(d.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

// FormatAll renders every diagnostic in order, separated by blank lines.
func FormatAll(ds []Diagnostic, sourceText string, color bool) string {
	var sb strings.Builder
	for i, d := range ds {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(Format(d, sourceText, color))
	}
	return sb.String()
}

func sourceLine(source string, line int) string {
	if source == "" || line <= 0 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}
