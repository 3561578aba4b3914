package sema

import (
	"github.com/venylang/venyc/ast"
	"github.com/venylang/venyc/source"
	"github.com/venylang/venyc/symbols"
)

var errT = symbols.BuiltinType{Kind: symbols.ErrorType}

// checkExpr types e, recording the result on e itself via
// SetResolvedType so later passes (and the language server) can read
// it back without re-running analysis.
func (a *Analyzer) checkExpr(ctx *methodCtx, e ast.Expr, scope symbols.Scope) symbols.Type {
	t := a.checkExprKind(ctx, e, scope)
	e.SetResolvedType(t)
	return t
}

func (a *Analyzer) checkExprKind(ctx *methodCtx, e ast.Expr, scope symbols.Scope) symbols.Type {
	switch x := e.(type) {
	case *ast.Literal:
		return a.checkLiteral(x)
	case *ast.Variable:
		return a.checkVariable(x, scope)
	case *ast.Assign:
		return a.checkAssign(ctx, x, scope)
	case *ast.Binary:
		return a.checkBinary(ctx, x, scope)
	case *ast.Unary:
		return a.checkUnary(ctx, x, scope)
	case *ast.Call:
		return a.checkCall(ctx, x, scope)
	case *ast.New:
		return a.checkNew(ctx, x, scope)
	case *ast.Get:
		return a.checkGet(ctx, x, scope)
	case *ast.Set:
		return a.checkSet(ctx, x, scope)
	case *ast.Index:
		return a.checkIndex(ctx, x, scope)
	case *ast.ArrayLiteral:
		return a.checkArrayLiteral(ctx, x, scope)
	default:
		return errT
	}
}

func (a *Analyzer) checkLiteral(l *ast.Literal) symbols.Type {
	switch l.Kind {
	case ast.IntLit:
		return symbols.BuiltinType{Kind: symbols.Int}
	case ast.FloatLit:
		return symbols.BuiltinType{Kind: symbols.Float}
	case ast.TextLit:
		return symbols.BuiltinType{Kind: symbols.Text}
	case ast.BoolLit:
		return symbols.BuiltinType{Kind: symbols.Bool}
	case ast.NullLit:
		return symbols.BuiltinType{Kind: symbols.Null}
	default:
		return errT
	}
}

func (a *Analyzer) checkVariable(v *ast.Variable, scope symbols.Scope) symbols.Type {
	sym, ok := scope.Resolve(v.Name)
	if !ok {
		a.errorf(v.Span().Start, "undefined name %s", v.Name)
		return errT
	}
	v.Symbol = sym
	return sym.Type()
}

func (a *Analyzer) checkAssign(ctx *methodCtx, as *ast.Assign, scope symbols.Scope) symbols.Type {
	targetT := a.checkExpr(ctx, as.Target, scope)
	if v, ok := as.Target.(*ast.Variable); ok {
		if sym, ok := v.Symbol.(*symbols.VariableSymbol); ok && sym.IsImmutable {
			a.errorf(as.Span().Start, "cannot assign to immutable variable %s", v.Name)
		}
	}
	valueT := a.checkExpr(ctx, as.Value, scope)
	if !targetT.IsAssignableFrom(valueT) {
		a.errorf(as.Value.Span().Start, "%s", errorTypeMismatch(targetT, valueT))
	}
	return targetT
}

var arithmeticOps = map[string]bool{"+": true, "-": true, "*": true, "/": true, "%": true}
var comparisonOps = map[string]bool{"<": true, ">": true, "<=": true, ">=": true}
var equalityOps = map[string]bool{"==": true, "!=": true}
var logicalOps = map[string]bool{"&&": true, "||": true}

func isNumeric(t symbols.Type) bool {
	b, ok := t.(symbols.BuiltinType)
	return ok && (b.Kind == symbols.Int || b.Kind == symbols.Float)
}

func isErrorT(t symbols.Type) bool {
	b, ok := t.(symbols.BuiltinType)
	return ok && b.Kind == symbols.ErrorType
}

func isText(t symbols.Type) bool {
	b, ok := t.(symbols.BuiltinType)
	return ok && b.Kind == symbols.Text
}

func isBool(t symbols.Type) bool {
	b, ok := t.(symbols.BuiltinType)
	return ok && b.Kind == symbols.Bool
}

func (a *Analyzer) checkBinary(ctx *methodCtx, b *ast.Binary, scope symbols.Scope) symbols.Type {
	left := a.checkExpr(ctx, b.Left, scope)
	right := a.checkExpr(ctx, b.Right, scope)

	if isErrorT(left) || isErrorT(right) {
		return errT
	}

	switch {
	case arithmeticOps[b.Op]:
		if b.Op == "+" && isText(left) && isText(right) {
			return symbols.BuiltinType{Kind: symbols.Text}
		}
		if isNumeric(left) && isNumeric(right) && left.Name() == right.Name() {
			return left
		}
		a.errorf(b.Span().Start, "operator %s requires two numbers of the same type, got %s and %s", b.Op, left.Name(), right.Name())
		return errT
	case comparisonOps[b.Op]:
		if isNumeric(left) && isNumeric(right) {
			return symbols.BuiltinType{Kind: symbols.Bool}
		}
		a.errorf(b.Span().Start, "operator %s requires two numbers, got %s and %s", b.Op, left.Name(), right.Name())
		return errT
	case equalityOps[b.Op]:
		return symbols.BuiltinType{Kind: symbols.Bool}
	case logicalOps[b.Op]:
		if isBool(left) && isBool(right) {
			return symbols.BuiltinType{Kind: symbols.Bool}
		}
		a.errorf(b.Span().Start, "operator %s requires two Bool operands, got %s and %s", b.Op, left.Name(), right.Name())
		return errT
	default:
		a.errorf(b.Span().Start, "unknown operator %s", b.Op)
		return errT
	}
}

func (a *Analyzer) checkUnary(ctx *methodCtx, u *ast.Unary, scope symbols.Scope) symbols.Type {
	t := a.checkExpr(ctx, u.Operand, scope)
	if isErrorT(t) {
		return errT
	}
	switch u.Op {
	case "!":
		if isBool(t) {
			return t
		}
		a.errorf(u.Span().Start, "operator ! requires a Bool operand, got %s", t.Name())
	case "-":
		if isNumeric(t) {
			return t
		}
		a.errorf(u.Span().Start, "operator - requires a numeric operand, got %s", t.Name())
	}
	return errT
}

// checkCall special-cases a Get callee as a method binding rather than
// a field read: "obj.method(args)" resolves method on obj's class, it
// never looks for a field named method.
func (a *Analyzer) checkCall(ctx *methodCtx, c *ast.Call, scope symbols.Scope) symbols.Type {
	get, isMethodCall := c.Callee.(*ast.Get)
	if !isMethodCall {
		calleeT := a.checkExpr(ctx, c.Callee, scope)
		callable, ok := calleeT.(symbols.CallableType)
		if !ok {
			if !isErrorT(calleeT) {
				a.errorf(c.Span().Start, "cannot call a value of type %s", calleeT.Name())
			}
			a.checkArgsAgainst(ctx, c.Args, nil, scope)
			return errT
		}
		a.checkArgsAgainst(ctx, c.Args, callable.Params, scope)
		return callable.Return
	}

	targetT := a.checkExpr(ctx, get.Target, scope)

	method, ok := resolveMethodOn(targetT, get.Field)
	if !ok {
		if !isErrorT(targetT) {
			a.errorf(get.Span().Start, "%s has no method %s", targetT.Name(), get.Field)
		}
		get.SetResolvedType(errT)
		a.checkArgsAgainst(ctx, c.Args, nil, scope)
		return errT
	}
	get.SetResolvedType(method.Type())
	a.checkArgsAgainst(ctx, c.Args, method.ParamTypes, scope)
	return method.ReturnType
}

func resolveMethodOn(t symbols.Type, name string) (*symbols.MethodSymbol, bool) {
	switch tt := t.(type) {
	case symbols.ClassType:
		return tt.Class.ResolveMethod(name)
	case symbols.InterfaceType:
		return tt.Interface.ResolveMethod(name)
	}
	return nil, false
}

func (a *Analyzer) checkArgsAgainst(ctx *methodCtx, args []ast.Expr, params []symbols.Type, scope symbols.Scope) {
	for i, arg := range args {
		got := a.checkExpr(ctx, arg, scope)
		if params == nil || i >= len(params) {
			continue
		}
		if !params[i].IsAssignableFrom(got) {
			a.errorf(arg.Span().Start, "%s", errorTypeMismatch(params[i], got))
		}
	}
	if params != nil && len(args) != len(params) {
		a.errorf(firstOffsetOr(args), "expected %d argument(s), got %d", len(params), len(args))
	}
}

func firstOffsetOr(args []ast.Expr) (off source.Offset) {
	if len(args) > 0 {
		return args[0].Span().Start
	}
	return 0
}

func (a *Analyzer) checkNew(ctx *methodCtx, n *ast.New, scope symbols.Scope) symbols.Type {
	fqcn := a.qualifyTypeName(ctx.file, n.ClassName)
	decl, ok := a.classesByFQCN[fqcn]
	if !ok {
		a.errorf(n.Span().Start, "unknown class %s", fqcn)
		for _, arg := range n.Args {
			a.checkExpr(ctx, arg, scope)
		}
		return errT
	}
	n.Symbol = decl.Symbol

	fields := decl.Fields
	for i, arg := range n.Args {
		got := a.checkExpr(ctx, arg, scope)
		if i >= len(fields) {
			continue
		}
		fieldT := fields[i].Symbol.Type()
		if !fieldT.IsAssignableFrom(got) {
			a.errorf(arg.Span().Start, "%s", errorTypeMismatch(fieldT, got))
		}
	}
	if len(n.Args) != len(fields) {
		a.errorf(n.Span().Start, "class %s declares %d field(s), got %d constructor argument(s)", fqcn, len(fields), len(n.Args))
	}

	return symbols.ClassType{Class: decl.Symbol}
}

func (a *Analyzer) checkGet(ctx *methodCtx, g *ast.Get, scope symbols.Scope) symbols.Type {
	targetT := a.checkExpr(ctx, g.Target, scope)
	classT, ok := targetT.(symbols.ClassType)
	if !ok {
		if !isErrorT(targetT) {
			a.errorf(g.Span().Start, "%s has no field %s", targetT.Name(), g.Field)
		}
		return errT
	}
	field, ok := classT.Class.ResolveLocal(g.Field)
	if !ok {
		a.errorf(g.Span().Start, "%s has no field %s", targetT.Name(), g.Field)
		return errT
	}
	return field.Type()
}

func (a *Analyzer) checkSet(ctx *methodCtx, s *ast.Set, scope symbols.Scope) symbols.Type {
	targetT := a.checkExpr(ctx, s.Target, scope)
	classT, ok := targetT.(symbols.ClassType)
	if !ok {
		if !isErrorT(targetT) {
			a.errorf(s.Span().Start, "%s has no field %s", targetT.Name(), s.Field)
		}
		a.checkExpr(ctx, s.Value, scope)
		return errT
	}
	field, ok := classT.Class.ResolveLocal(s.Field)
	if !ok {
		a.errorf(s.Span().Start, "%s has no field %s", targetT.Name(), s.Field)
		a.checkExpr(ctx, s.Value, scope)
		return errT
	}
	if v, ok := field.(*symbols.VariableSymbol); ok && v.IsImmutable {
		a.errorf(s.Span().Start, "cannot assign to immutable field %s", s.Field)
	}
	valueT := a.checkExpr(ctx, s.Value, scope)
	if !field.Type().IsAssignableFrom(valueT) {
		a.errorf(s.Value.Span().Start, "%s", errorTypeMismatch(field.Type(), valueT))
	}
	return field.Type()
}

func (a *Analyzer) checkIndex(ctx *methodCtx, idx *ast.Index, scope symbols.Scope) symbols.Type {
	targetT := a.checkExpr(ctx, idx.Target, scope)
	posT := a.checkExpr(ctx, idx.Pos, scope)
	if !isNumeric(posT) || posT.Name() != "Int" {
		a.errorf(idx.Pos.Span().Start, "array index must be Int, got %s", posT.Name())
	}
	arr, ok := targetT.(symbols.ArrayType)
	if !ok {
		if !isErrorT(targetT) {
			a.errorf(idx.Span().Start, "cannot index into %s", targetT.Name())
		}
		return errT
	}
	return arr.Elem
}

func (a *Analyzer) checkArrayLiteral(ctx *methodCtx, arr *ast.ArrayLiteral, scope symbols.Scope) symbols.Type {
	if len(arr.Elements) == 0 {
		return symbols.ArrayType{Elem: symbols.BuiltinType{Kind: symbols.Unknown}}
	}
	elemT := a.checkExpr(ctx, arr.Elements[0], scope)
	for _, e := range arr.Elements[1:] {
		got := a.checkExpr(ctx, e, scope)
		if !elemT.IsAssignableFrom(got) {
			a.errorf(e.Span().Start, "array element type mismatch: %s", errorTypeMismatch(elemT, got))
		}
	}
	return symbols.ArrayType{Elem: elemT}
}
