package ast

import "github.com/venylang/venyc/symbols"

// Block is a brace-delimited sequence of statements and is itself the
// body of a method, if-arm, while-loop or for-loop.
type Block struct {
	stmtBase
	Stmts []Stmt
}

func NewBlock(stmts []Stmt, span Span) *Block { return &Block{stmtBase{span}, stmts} }

// IfStmt is a conditional. Else is nil, a *Block, or another *IfStmt
// when the source wrote "else if".
type IfStmt struct {
	stmtBase
	Cond Expr
	Then *Block
	Else Stmt
}

func NewIfStmt(cond Expr, then *Block, els Stmt, span Span) *IfStmt {
	return &IfStmt{stmtBase{span}, cond, then, els}
}

// WhileStmt is a condition-first loop.
type WhileStmt struct {
	stmtBase
	Cond Expr
	Body *Block
}

func NewWhileStmt(cond Expr, body *Block, span Span) *WhileStmt {
	return &WhileStmt{stmtBase{span}, cond, body}
}

// ForStmt iterates VarName over Iterable.
type ForStmt struct {
	stmtBase
	VarName  string
	Iterable Expr
	Body     *Block
	Symbol   *symbols.VariableSymbol
}

func NewForStmt(varName string, iterable Expr, body *Block, span Span) *ForStmt {
	return &ForStmt{stmtBase{span}, varName, iterable, body, nil}
}

// ReturnStmt returns from the enclosing method. Value is nil for a
// bare "return" in a void method.
type ReturnStmt struct {
	stmtBase
	Value Expr
}

func NewReturnStmt(value Expr, span Span) *ReturnStmt { return &ReturnStmt{stmtBase{span}, value} }

// BreakStmt exits the nearest enclosing loop.
type BreakStmt struct{ stmtBase }

func NewBreakStmt(span Span) *BreakStmt { return &BreakStmt{stmtBase{span}} }

// ContinueStmt jumps to the next iteration of the nearest enclosing loop.
type ContinueStmt struct{ stmtBase }

func NewContinueStmt(span Span) *ContinueStmt { return &ContinueStmt{stmtBase{span}} }

// VarStmt declares a local variable inside a method body or block.
type VarStmt struct {
	stmtBase
	Name    string
	Type    TypeRef // zero value when the type is inferred from Init
	Init    Expr
	Mutable bool // true for var, false for val
	Symbol  *symbols.VariableSymbol
}

func NewVarStmt(name string, typ TypeRef, init Expr, mutable bool, span Span) *VarStmt {
	return &VarStmt{stmtBase{span}, name, typ, init, mutable, nil}
}

// ExprStmt is an expression evaluated for its side effect, such as a
// bare call or an assignment.
type ExprStmt struct {
	stmtBase
	X Expr
}

func NewExprStmt(x Expr, span Span) *ExprStmt { return &ExprStmt{stmtBase{span}, x} }
