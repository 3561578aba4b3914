// Package sema implements semantic analysis over a resolved ast.Program:
// building the global symbol table, resolving every declared type,
// and type-checking every statement and expression in every method
// body.
//
// Analysis proceeds in three passes. The first registers every class
// and interface name so forward references work regardless of file or
// declaration order. The second fills in each class's parent,
// interfaces, fields and method signatures, now that every name in the
// program is known. The third walks method bodies, building a scope
// chain per method and typing every expression.
package sema

import (
	"fmt"

	"github.com/venylang/venyc/ast"
	"github.com/venylang/venyc/source"
	"github.com/venylang/venyc/symbols"
)

// Result is the output of a successful (or partially successful)
// analysis run: the global scope and the program it was built from.
// Result is still returned when errs is non-empty, so callers such as
// the language server can offer completions against whatever was
// resolved before the first error.
type Result struct {
	Global  *symbols.GlobalScope
	Program *ast.Program
}

// Analyzer carries the state shared by all three passes.
type Analyzer struct {
	fset   *source.FileSet
	global *symbols.GlobalScope
	errs   ErrorList

	// classesByFQCN and interfacesByFQCN let later passes look up a
	// declaration node from the symbol built for it.
	classesByFQCN    map[string]*ast.ClassDecl
	interfacesByFQCN map[string]*ast.InterfaceDecl
	fileOf           map[string]*ast.File // fqcn -> declaring file, for package-relative name lookup
}

// Analyze runs all three passes over prog and returns the resulting
// symbol table together with every error found. A non-empty error
// list does not necessarily mean Result is unusable: passes after the
// first error continue as far as they safely can.
func Analyze(prog *ast.Program, fset *source.FileSet) (*Result, ErrorList) {
	a := &Analyzer{
		fset:             fset,
		global:           symbols.NewGlobalScope(),
		classesByFQCN:    map[string]*ast.ClassDecl{},
		interfacesByFQCN: map[string]*ast.InterfaceDecl{},
		fileOf:           map[string]*ast.File{},
	}

	a.declareTypes(prog)
	a.resolveSignatures(prog)
	a.checkBodies(prog)

	a.errs.Sort()
	return &Result{Global: a.global, Program: prog}, a.errs
}

func (a *Analyzer) errorf(off source.Offset, format string, args ...any) {
	a.errs = append(a.errs, &Error{Position: a.fset.Position(off), Message: fmt.Sprintf(format, args...)})
}
