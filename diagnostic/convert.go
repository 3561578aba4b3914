package diagnostic

import (
	"github.com/venylang/venyc/parser"
	"github.com/venylang/venyc/resolve"
	"github.com/venylang/venyc/sema"
	"github.com/venylang/venyc/source"
)

// FromParseError converts a single parser.Error into a Diagnostic,
// expanding its Offset against fset.
func FromParseError(err *parser.Error, fset *source.FileSet) Diagnostic {
	return Diagnostic{
		Severity: Error,
		Position: fset.Position(err.Offset),
		Message:  err.Message,
		Phase:    PhaseParse,
	}
}

// FromSemaErrors converts every entry of an ErrorList into a
// Diagnostic. sema.Error already carries an expanded Position, so no
// FileSet is needed here.
func FromSemaErrors(errs sema.ErrorList) []Diagnostic {
	out := make([]Diagnostic, len(errs))
	for i, e := range errs {
		out[i] = Diagnostic{
			Severity: Error,
			Position: e.Position,
			Message:  e.Message,
			Phase:    PhaseSema,
		}
	}
	return out
}

// FromResolveError converts an ImportResolutionError or
// CircularImportError into a single Diagnostic. Neither carries a
// source position of its own: an unresolved import is reported against
// the file that wrote the import, and an import or inheritance cycle
// has no single offending location at all.
func FromResolveError(err error) Diagnostic {
	switch e := err.(type) {
	case *resolve.ImportResolutionError:
		return Diagnostic{
			Severity: Error,
			Position: source.Position{File: e.FromFile},
			Message:  e.Error(),
			Phase:    PhaseResolve,
		}
	case *resolve.CircularImportError:
		return Diagnostic{
			Severity: Error,
			Message:  e.Error(),
			Phase:    PhaseResolve,
		}
	default:
		return Diagnostic{
			Severity: Error,
			Message:  err.Error(),
			Phase:    PhaseResolve,
		}
	}
}
