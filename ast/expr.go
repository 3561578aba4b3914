package ast

import "github.com/venylang/venyc/symbols"

// LiteralKind identifies the kind of value a Literal expression holds.
type LiteralKind int

const (
	IntLit LiteralKind = iota
	FloatLit
	TextLit
	BoolLit
	NullLit
)

// Literal is a constant value written directly in source.
type Literal struct {
	exprBase
	Kind  LiteralKind
	Value any
}

func NewLiteral(kind LiteralKind, value any, span Span) *Literal {
	return &Literal{exprBase: exprBase{span: span}, Kind: kind, Value: value}
}

// Variable is a bare identifier reference, resolved by the analyzer to
// a local, parameter, field or for-loop variable.
type Variable struct {
	exprBase
	Name   string
	Symbol symbols.Symbol
}

func NewVariable(name string, span Span) *Variable {
	return &Variable{exprBase: exprBase{span: span}, Name: name}
}

// Assign is "Target = Value" after any compound-assignment operator
// has been desugared into an equivalent Binary on Value. Target is
// always a *Variable; assigning through a field access produces a Set
// node instead.
type Assign struct {
	exprBase
	Target Expr
	Value  Expr
}

func NewAssign(target, value Expr, span Span) *Assign {
	return &Assign{exprBase: exprBase{span: span}, Target: target, Value: value}
}

// Binary is a two-operand operator expression.
type Binary struct {
	exprBase
	Op    string
	Left  Expr
	Right Expr
}

func NewBinary(op string, left, right Expr, span Span) *Binary {
	return &Binary{exprBase: exprBase{span: span}, Op: op, Left: left, Right: right}
}

// Unary is a single prefix-operator expression.
type Unary struct {
	exprBase
	Op      string
	Operand Expr
}

func NewUnary(op string, operand Expr, span Span) *Unary {
	return &Unary{exprBase: exprBase{span: span}, Op: op, Operand: operand}
}

// Call invokes Callee, which is a *Get for a method call and a
// *Variable for a call to a function-typed local or parameter.
type Call struct {
	exprBase
	Callee Expr
	Args   []Expr
}

func NewCall(callee Expr, args []Expr, span Span) *Call {
	return &Call{exprBase: exprBase{span: span}, Callee: callee, Args: args}
}

// New instantiates a class.
type New struct {
	exprBase
	ClassName string
	Args      []Expr
	Symbol    *symbols.ClassSymbol
}

func NewNewExpr(className string, args []Expr, span Span) *New {
	return &New{exprBase: exprBase{span: span}, ClassName: className, Args: args}
}

// Get reads a field or binds a method for a subsequent Call.
type Get struct {
	exprBase
	Target Expr
	Field  string
}

func NewGet(target Expr, field string, span Span) *Get {
	return &Get{exprBase: exprBase{span: span}, Target: target, Field: field}
}

// Set writes a field: "Target.Field = Value". The parser only produces
// this when the left-hand side of an Assign is a Get.
type Set struct {
	exprBase
	Target Expr
	Field  string
	Value  Expr
}

func NewSet(target Expr, field string, value Expr, span Span) *Set {
	return &Set{exprBase: exprBase{span: span}, Target: target, Field: field, Value: value}
}

// Index reads one element of an array.
type Index struct {
	exprBase
	Target Expr
	Pos    Expr
}

func NewIndex(target, pos Expr, span Span) *Index {
	return &Index{exprBase: exprBase{span: span}, Target: target, Pos: pos}
}

// ArrayLiteral constructs an array value from its elements.
type ArrayLiteral struct {
	exprBase
	Elements []Expr
}

func NewArrayLiteral(elements []Expr, span Span) *ArrayLiteral {
	return &ArrayLiteral{exprBase: exprBase{span: span}, Elements: elements}
}
