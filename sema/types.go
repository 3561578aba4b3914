package sema

import (
	"fmt"

	"github.com/venylang/venyc/ast"
	"github.com/venylang/venyc/symbols"
)

var builtinNames = map[string]symbols.BuiltinKind{
	"Int":   symbols.Int,
	"Float": symbols.Float,
	"Bool":  symbols.Bool,
	"Text":  symbols.Text,
	"void":  symbols.Void,
	"Void":  symbols.Void,
}

// resolveTypeRef turns a TypeRef as written in file f into a
// symbols.Type, looking up class and interface names relative to f's
// package and imports. It reports an error and returns the error type
// if the name cannot be found, so callers can keep typing the rest of
// the expression without a nil Type.
func (a *Analyzer) resolveTypeRef(f *ast.File, ref ast.TypeRef) symbols.Type {
	base := a.resolveBaseType(f, ref)
	t := base
	for i := 0; i < ref.ArrayDims; i++ {
		t = symbols.ArrayType{Elem: t}
	}
	return t
}

func (a *Analyzer) resolveBaseType(f *ast.File, ref ast.TypeRef) symbols.Type {
	if kind, ok := builtinNames[ref.Name]; ok {
		return symbols.BuiltinType{Kind: kind}
	}

	fqcn := a.qualifyTypeName(f, ref.Name)
	if c, ok := a.classesByFQCN[fqcn]; ok {
		return symbols.ClassType{Class: c.Symbol}
	}
	if i, ok := a.interfacesByFQCN[fqcn]; ok {
		return symbols.InterfaceType{Interface: i.Symbol}
	}

	a.errorf(ref.Span().Start, "unknown type %s", fqcn)
	return symbols.BuiltinType{Kind: symbols.ErrorType}
}

// qualifyTypeName resolves a type name as written in file f to a
// fully qualified name: explicit dotted names are used as-is, a name
// matching a single-type import uses that import's package, and
// anything else is assumed to live in f's own package.
func (a *Analyzer) qualifyTypeName(f *ast.File, name string) string {
	if containsDot(name) {
		return name
	}
	for _, imp := range f.Imports {
		if !imp.Wildcard && imp.TypeName == name {
			return imp.Qualified()
		}
	}
	return qualify(f.Package, name)
}

func containsDot(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return true
		}
	}
	return false
}

func errorTypeMismatch(expected, got symbols.Type) string {
	return fmt.Sprintf("cannot assign value of type %s to a location of type %s", got.Name(), expected.Name())
}
