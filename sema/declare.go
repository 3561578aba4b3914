package sema

import (
	"github.com/venylang/venyc/ast"
	"github.com/venylang/venyc/symbols"
)

// declareTypes is pass 1: register an empty ClassSymbol or
// InterfaceSymbol for every declaration in the program, so that pass 2
// can resolve any forward or circular reference by name regardless of
// declaration order.
func (a *Analyzer) declareTypes(prog *ast.Program) {
	for _, f := range prog.Files {
		for _, c := range f.Classes {
			fqcn := qualify(f.Package, c.Name)
			if _, exists := a.classesByFQCN[fqcn]; exists {
				a.errorf(c.Span().Start, "class %s is already declared", fqcn)
				continue
			}
			sym := symbols.NewClassSymbol(f.Package, c.Name, a.global)
			c.Symbol = sym
			a.classesByFQCN[fqcn] = c
			a.fileOf[fqcn] = f
			if err := a.global.Define(sym); err != nil {
				a.errorf(c.Span().Start, "%s", err)
			}
		}
		for _, i := range f.Interfaces {
			fqcn := qualify(f.Package, i.Name)
			if _, exists := a.interfacesByFQCN[fqcn]; exists {
				a.errorf(i.Span().Start, "interface %s is already declared", fqcn)
				continue
			}
			sym := symbols.NewInterfaceSymbol(f.Package, i.Name, a.global)
			i.Symbol = sym
			a.interfacesByFQCN[fqcn] = i
			a.fileOf[fqcn] = f
			if err := a.global.Define(sym); err != nil {
				a.errorf(i.Span().Start, "%s", err)
			}
		}
	}
}

func qualify(pkg, name string) string {
	if pkg == "" {
		return name
	}
	return pkg + "." + name
}
