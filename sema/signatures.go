package sema

import (
	"github.com/venylang/venyc/ast"
	"github.com/venylang/venyc/symbols"
)

// resolveSignatures is pass 2: fill in each class's superclass,
// interfaces, fields and method signatures now that every type name in
// the program is registered. Field initializer expressions are not
// visited here; checkBodies types them, without checking them against
// the declared field type.
func (a *Analyzer) resolveSignatures(prog *ast.Program) {
	for _, f := range prog.Files {
		for _, c := range f.Classes {
			a.resolveClassSignature(f, c)
		}
		for _, i := range f.Interfaces {
			a.resolveInterfaceSignature(f, i)
		}
	}
}

func (a *Analyzer) resolveClassSignature(f *ast.File, c *ast.ClassDecl) {
	sym := c.Symbol
	if c.Parent != "" {
		fqcn := a.qualifyTypeName(f, c.Parent)
		parent, ok := a.classesByFQCN[fqcn]
		if !ok {
			a.errorf(c.Span().Start, "unknown superclass %s", fqcn)
		} else {
			sym.Parent = parent.Symbol
		}
	}

	for _, ifaceName := range c.Interfaces {
		fqcn := a.qualifyTypeName(f, ifaceName)
		iface, ok := a.interfacesByFQCN[fqcn]
		if !ok {
			a.errorf(c.Span().Start, "unknown interface %s", fqcn)
			continue
		}
		sym.Interfaces = append(sym.Interfaces, iface.Symbol)
	}

	for _, field := range c.Fields {
		typ := a.resolveTypeRef(f, field.Type)
		fieldSym := symbols.NewVariableSymbol(field.Name, typ, !field.Mutable)
		fieldSym.Visibility = field.Visibility
		field.Symbol = fieldSym
		if err := sym.DefineField(fieldSym); err != nil {
			a.errorf(field.Span().Start, "%s", err)
		}
	}

	for _, m := range c.Methods {
		a.resolveMethodSignature(f, sym, m)
		if err := sym.DefineMethod(m.Symbol); err != nil {
			a.errorf(m.Span().Start, "%s", err)
		}
	}
}

func (a *Analyzer) resolveInterfaceSignature(f *ast.File, decl *ast.InterfaceDecl) {
	sym := decl.Symbol
	for _, parentName := range decl.Parents {
		fqcn := a.qualifyTypeName(f, parentName)
		parent, ok := a.interfacesByFQCN[fqcn]
		if !ok {
			a.errorf(decl.Span().Start, "unknown parent interface %s", fqcn)
			continue
		}
		sym.Parents = append(sym.Parents, parent.Symbol)
	}

	for _, m := range decl.Methods {
		a.resolveMethodSignature(f, sym, m)
		if err := sym.DefineMethod(m.Symbol); err != nil {
			a.errorf(m.Span().Start, "%s", err)
		}
	}
}

func (a *Analyzer) resolveMethodSignature(f *ast.File, owner symbols.Scope, m *ast.MethodDecl) {
	ret := a.resolveTypeRef(f, m.ReturnType)
	sym := symbols.NewMethodSymbol(m.Name, ret, owner)
	sym.Visibility = m.Visibility
	sym.IsEntry = m.Name == "entry"
	for _, p := range m.Params {
		pt := a.resolveTypeRef(f, p.Type)
		psym := symbols.NewVariableSymbol(p.Name, pt, true)
		p.Symbol = psym
		if err := sym.DefineParam(psym); err != nil {
			a.errorf(p.Span().Start, "%s", err)
		}
	}
	m.Symbol = sym
}
