package ast

import "github.com/venylang/venyc/symbols"

// TypeRef is a type as written in source: a name, optionally wrapped
// in array brackets ("Int", "[Text]", "a.b.Point").
type TypeRef struct {
	Name      string // element name with any package qualifier, e.g. "a.b.Point"
	ArrayDims int    // number of enclosing [] pairs
	span      Span
}

func NewTypeRef(name string, arrayDims int, span Span) TypeRef {
	return TypeRef{Name: name, ArrayDims: arrayDims, span: span}
}

func (t TypeRef) Span() Span { return t.span }

func (t TypeRef) String() string {
	s := t.Name
	for i := 0; i < t.ArrayDims; i++ {
		s = "[" + s + "]"
	}
	return s
}

// Param is one parameter in a method signature.
type Param struct {
	Name   string
	Type   TypeRef
	span   Span
	Symbol *symbols.VariableSymbol
}

func NewParam(name string, typ TypeRef, span Span) *Param {
	return &Param{Name: name, Type: typ, span: span}
}

func (p *Param) Span() Span { return p.span }

// VarDecl is a field declaration inside a class body.
type VarDecl struct {
	declBase
	Name       string
	Type       TypeRef
	Init       Expr // nil when the field has no initializer
	Mutable    bool // true for var, false for val
	Visibility symbols.Visibility
	Symbol     *symbols.VariableSymbol
}

func NewVarDecl(name string, typ TypeRef, init Expr, mutable bool, vis symbols.Visibility, span Span) *VarDecl {
	return &VarDecl{declBase: declBase{span: span}, Name: name, Type: typ, Init: init, Mutable: mutable, Visibility: vis}
}

// MethodDecl is a method declaration. Body is nil for an interface
// method signature.
type MethodDecl struct {
	declBase
	Name       string
	Params     []*Param
	ReturnType TypeRef
	Body       *Block
	Visibility symbols.Visibility
	Symbol     *symbols.MethodSymbol
}

func NewMethodDecl(name string, params []*Param, ret TypeRef, body *Block, vis symbols.Visibility, span Span) *MethodDecl {
	return &MethodDecl{declBase: declBase{span: span}, Name: name, Params: params, ReturnType: ret, Body: body, Visibility: vis}
}

// ClassDecl declares a class: an optional superclass, zero or more
// implemented interfaces, fields and methods.
type ClassDecl struct {
	declBase
	Name       string
	Parent     string // qualified superclass name, "" if none
	Interfaces []string
	Fields     []*VarDecl
	Methods    []*MethodDecl
	Symbol     *symbols.ClassSymbol
}

func NewClassDecl(name, parent string, interfaces []string, fields []*VarDecl, methods []*MethodDecl, span Span) *ClassDecl {
	return &ClassDecl{declBase: declBase{span: span}, Name: name, Parent: parent, Interfaces: interfaces, Fields: fields, Methods: methods}
}

// InterfaceDecl declares an interface: zero or more parent interfaces
// and a set of method signatures (each with a nil Body).
type InterfaceDecl struct {
	declBase
	Name    string
	Parents []string
	Methods []*MethodDecl
	Symbol  *symbols.InterfaceSymbol
}

func NewInterfaceDecl(name string, parents []string, methods []*MethodDecl, span Span) *InterfaceDecl {
	return &InterfaceDecl{declBase: declBase{span: span}, Name: name, Parents: parents, Methods: methods}
}
