package sema

import (
	"fmt"
	"sort"

	"github.com/venylang/venyc/source"
)

// Error is one semantic-analysis diagnostic, carrying the resolved
// Position of the offending construct rather than just a formatted
// string.
type Error struct {
	Position source.Position
	Message  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Position, e.Message)
}

// ErrorList accumulates every error found during one analysis run. The
// analyzer never stops at the first mistake: unlike the parser, it
// keeps visiting the rest of the program so a single run reports as
// many independent problems as possible.
type ErrorList []*Error

func (l ErrorList) Len() int      { return len(l) }
func (l ErrorList) Swap(i, j int) { l[i], l[j] = l[j], l[i] }
func (l ErrorList) Less(i, j int) bool {
	a, b := l[i].Position, l[j].Position
	if a.File != b.File {
		return a.File < b.File
	}
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Column < b.Column
}

// Sort orders the list by file, then line, then column.
func (l ErrorList) Sort() { sort.Sort(l) }

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more errors)", l[0], len(l)-1)
	}
}
