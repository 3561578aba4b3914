// Package diagnostic turns the compiler's typed errors into a single
// render-ready shape. The core (lexer, parser, resolve, sema) never
// formats colorized or user-facing text itself; it only ever produces
// plain struct values, and this package is the one place that knows
// how to turn those into something a terminal or an editor can show.
package diagnostic

import (
	"fmt"

	"github.com/venylang/venyc/source"
)

// Severity classifies how serious a Diagnostic is.
type Severity int

const (
	Error Severity = iota
	Warning
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return "unknown"
	}
}

// Phase names which part of the pipeline produced a Diagnostic.
type Phase string

const (
	PhaseLex      Phase = "lex"
	PhaseParse    Phase = "parse"
	PhaseResolve  Phase = "resolve"
	PhaseSema     Phase = "sema"
	PhaseDriver   Phase = "driver"
)

// Diagnostic is a render-ready projection of any core error: a
// LexError, ParseError, ImportResolutionError, CircularImportError or
// a sema.Error. The CLI's text renderer and the LSP's protocol
// translation both consume this, and nothing else, from the core.
type Diagnostic struct {
	Severity Severity
	Position source.Position
	Message  string
	Phase    Phase
}

// Render formats a Diagnostic as a single line of "file:line:column:
// severity: message" text, suitable for a terminal.
func Render(d Diagnostic) string {
	if !d.Position.IsValid() {
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	}
	return fmt.Sprintf("%s: %s: %s", d.Position, d.Severity, d.Message)
}

// RenderAll renders every Diagnostic in order, one per line, with a
// trailing newline on the last line.
func RenderAll(diags []Diagnostic) string {
	s := ""
	for _, d := range diags {
		s += Render(d) + "\n"
	}
	return s
}
