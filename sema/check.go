package sema

import (
	"github.com/venylang/venyc/ast"
	"github.com/venylang/venyc/source"
	"github.com/venylang/venyc/symbols"
)

// methodCtx carries the state that is specific to the method body
// currently being checked: which file it was declared in (for type
// name resolution), its method symbol (for the return type and for
// resolving bare names through params/locals/fields), and how many
// loops enclose the statement currently being visited.
type methodCtx struct {
	file      *ast.File
	method    *symbols.MethodSymbol
	loopDepth int
}

// checkBodies is pass 3: type-check every method body in the program,
// and type every field initializer expression (an initializer is not
// checked against its field's declared type). Interface methods have
// no body and are skipped.
func (a *Analyzer) checkBodies(prog *ast.Program) {
	for _, f := range prog.Files {
		for _, c := range f.Classes {
			for _, fd := range c.Fields {
				if fd.Init != nil {
					a.checkExpr(&methodCtx{file: f}, fd.Init, c.Symbol)
				}
			}
			for _, m := range c.Methods {
				if m.Body == nil {
					continue
				}
				ctx := &methodCtx{file: f, method: m.Symbol}
				// "this" is an implicit local bound to the class the
				// method is declared on, so "this.field" and
				// "this.method(...)" resolve the same way any other
				// Get/Call chain does.
				this := symbols.NewVariableSymbol("this", symbols.ClassType{Class: c.Symbol}, true)
				m.Symbol.Define(this)
				a.checkBlock(ctx, m.Body, m.Symbol)
			}
		}
	}
}

func (a *Analyzer) checkBlock(ctx *methodCtx, b *ast.Block, parent symbols.Scope) {
	scope := symbols.NewLocalScope(parent)
	for _, stmt := range b.Stmts {
		a.checkStmt(ctx, stmt, scope)
	}
}

func (a *Analyzer) checkStmt(ctx *methodCtx, stmt ast.Stmt, scope symbols.Scope) {
	switch s := stmt.(type) {
	case *ast.Block:
		a.checkBlock(ctx, s, scope)
	case *ast.IfStmt:
		a.checkIfStmt(ctx, s, scope)
	case *ast.WhileStmt:
		a.checkWhileStmt(ctx, s, scope)
	case *ast.ForStmt:
		a.checkForStmt(ctx, s, scope)
	case *ast.ReturnStmt:
		a.checkReturnStmt(ctx, s, scope)
	case *ast.BreakStmt:
		if ctx.loopDepth == 0 {
			a.errorf(s.Span().Start, "break used outside of a loop")
		}
	case *ast.ContinueStmt:
		if ctx.loopDepth == 0 {
			a.errorf(s.Span().Start, "continue used outside of a loop")
		}
	case *ast.VarStmt:
		a.checkVarStmt(ctx, s, scope)
	case *ast.ExprStmt:
		a.checkExpr(ctx, s.X, scope)
	}
}

func (a *Analyzer) checkIfStmt(ctx *methodCtx, s *ast.IfStmt, scope symbols.Scope) {
	condT := a.checkExpr(ctx, s.Cond, scope)
	a.requireBool(s.Cond.Span().Start, condT, "if condition")
	a.checkBlock(ctx, s.Then, scope)
	if s.Else != nil {
		a.checkStmt(ctx, s.Else, scope)
	}
}

func (a *Analyzer) checkWhileStmt(ctx *methodCtx, s *ast.WhileStmt, scope symbols.Scope) {
	condT := a.checkExpr(ctx, s.Cond, scope)
	a.requireBool(s.Cond.Span().Start, condT, "while condition")
	ctx.loopDepth++
	a.checkBlock(ctx, s.Body, scope)
	ctx.loopDepth--
}

// checkForStmt intentionally does not infer the loop variable's type
// from the iterable's element type: it is always typed Unknown, so
// storing the variable into a builtin-typed location (Int, Text, ...)
// is never reported as a mismatch. Operators that need numeric or Bool
// operands, and class, interface or array locations, still reject it.
func (a *Analyzer) checkForStmt(ctx *methodCtx, s *ast.ForStmt, scope symbols.Scope) {
	a.checkExpr(ctx, s.Iterable, scope)

	loopScope := symbols.NewLocalScope(scope)
	sym := symbols.NewVariableSymbol(s.VarName, symbols.BuiltinType{Kind: symbols.Unknown}, true)
	s.Symbol = sym
	if err := loopScope.Define(sym); err != nil {
		a.errorf(s.Span().Start, "%s", err)
	}

	ctx.loopDepth++
	a.checkBlock(ctx, s.Body, loopScope)
	ctx.loopDepth--
}

func (a *Analyzer) checkReturnStmt(ctx *methodCtx, s *ast.ReturnStmt, scope symbols.Scope) {
	ret := ctx.method.ReturnType
	if s.Value == nil {
		if !isVoid(ret) {
			a.errorf(s.Span().Start, "missing return value, method returns %s", ret.Name())
		}
		return
	}
	got := a.checkExpr(ctx, s.Value, scope)
	if isVoid(ret) {
		a.errorf(s.Value.Span().Start, "unexpected return value in a method returning Void")
		return
	}
	if !ret.IsAssignableFrom(got) {
		a.errorf(s.Value.Span().Start, "%s", errorTypeMismatch(ret, got))
	}
}

func isVoid(t symbols.Type) bool {
	b, ok := t.(symbols.BuiltinType)
	return ok && b.Kind == symbols.Void
}

func (a *Analyzer) checkVarStmt(ctx *methodCtx, s *ast.VarStmt, scope symbols.Scope) {
	initT := a.checkExpr(ctx, s.Init, scope)

	var declared symbols.Type
	if s.Type.Name != "" {
		declared = a.resolveTypeRef(ctx.file, s.Type)
		if !declared.IsAssignableFrom(initT) {
			a.errorf(s.Init.Span().Start, "%s", errorTypeMismatch(declared, initT))
		}
	} else {
		declared = initT
	}

	sym := symbols.NewVariableSymbol(s.Name, declared, !s.Mutable)
	s.Symbol = sym
	if err := scope.Define(sym); err != nil {
		a.errorf(s.Span().Start, "%s", err)
	}
}

func (a *Analyzer) requireBool(off source.Offset, t symbols.Type, what string) {
	b, ok := t.(symbols.BuiltinType)
	if ok && (b.Kind == symbols.Bool || b.Kind == symbols.ErrorType) {
		return
	}
	a.errorf(off, "%s must be Bool, got %s", what, t.Name())
}
