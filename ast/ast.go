// Package ast defines the program tree produced by the parser: files,
// declarations, statements and expressions. Each family is a closed
// interface with an unexported marker method, the same pattern used
// throughout the Go ecosystem's own go/ast package, so exhaustiveness
// is enforced by the compiler rather than by convention.
package ast

import (
	"github.com/venylang/venyc/source"
	"github.com/venylang/venyc/symbols"
)

// Span is the byte range a node occupies in its source file.
type Span struct {
	Start source.Offset
	End   source.Offset
}

// Node is implemented by every element of the program tree.
type Node interface {
	Span() Span
}

// Decl is a top-level or member declaration: a class, an interface, a
// field or a method.
type Decl interface {
	Node
	declNode()
}

// Stmt is a statement inside a method body.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression. Its resolved type is nil until the semantic
// analyzer has run; after analysis it is never nil, even on error
// paths, where it holds symbols.BuiltinType{Kind: symbols.ErrorType}.
type Expr interface {
	Node
	exprNode()
	ResolvedType() symbols.Type
	SetResolvedType(symbols.Type)
}

type declBase struct{ span Span }

func (d declBase) Span() Span { return d.span }
func (declBase) declNode()    {}

type stmtBase struct{ span Span }

func (s stmtBase) Span() Span { return s.span }
func (stmtBase) stmtNode()    {}

type exprBase struct {
	span Span
	typ  symbols.Type
}

func (e exprBase) Span() Span                      { return e.span }
func (exprBase) exprNode()                         {}
func (e *exprBase) ResolvedType() symbols.Type     { return e.typ }
func (e *exprBase) SetResolvedType(t symbols.Type) { e.typ = t }

// NewSpan is a small helper for constructing Span literals inline.
func NewSpan(start, end source.Offset) Span { return Span{Start: start, End: end} }
