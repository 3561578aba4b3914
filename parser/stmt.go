package parser

import (
	"github.com/venylang/venyc/ast"
	"github.com/venylang/venyc/token"
)

func (p *Parser) parseBlock() *ast.Block {
	start := p.cur().Offset
	p.expect(token.LBRACE)
	var stmts []ast.Stmt
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		p.skipSemicolons()
		if p.at(token.RBRACE) {
			break
		}
		stmts = append(stmts, p.parseStmt())
		p.skipSemicolons()
	}
	p.expect(token.RBRACE)
	end := p.toks[p.pos-1].Offset
	return ast.NewBlock(stmts, ast.Span{Start: start, End: end})
}

func (p *Parser) parseStmt() ast.Stmt {
	switch p.peekKind() {
	case token.LBRACE:
		return p.parseBlock()
	case token.IF:
		return p.parseIfStmt()
	case token.WHILE:
		return p.parseWhileStmt()
	case token.FOR:
		return p.parseForStmt()
	case token.RETURN:
		return p.parseReturnStmt()
	case token.BREAK:
		start := p.advance().Offset
		return ast.NewBreakStmt(ast.Span{Start: start, End: start})
	case token.CONTINUE:
		start := p.advance().Offset
		return ast.NewContinueStmt(ast.Span{Start: start, End: start})
	case token.VAR, token.VAL:
		return p.parseVarStmt()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseIfStmt() *ast.IfStmt {
	start := p.cur().Offset
	p.expect(token.IF)
	cond := p.parseExpr()
	then := p.parseBlock()
	var els ast.Stmt
	if p.at(token.ELSE) {
		p.advance()
		if p.at(token.IF) {
			els = p.parseIfStmt()
		} else {
			els = p.parseBlock()
		}
	}
	end := p.toks[p.pos-1].Offset
	return ast.NewIfStmt(cond, then, els, ast.Span{Start: start, End: end})
}

func (p *Parser) parseWhileStmt() *ast.WhileStmt {
	start := p.cur().Offset
	p.expect(token.WHILE)
	cond := p.parseExpr()
	body := p.parseBlock()
	end := p.toks[p.pos-1].Offset
	return ast.NewWhileStmt(cond, body, ast.Span{Start: start, End: end})
}

func (p *Parser) parseForStmt() *ast.ForStmt {
	start := p.cur().Offset
	p.expect(token.FOR)
	name := p.expect(token.IDENT).Lexeme
	p.expect(token.IN)
	iterable := p.parseExpr()
	body := p.parseBlock()
	end := p.toks[p.pos-1].Offset
	return ast.NewForStmt(name, iterable, body, ast.Span{Start: start, End: end})
}

func (p *Parser) parseReturnStmt() *ast.ReturnStmt {
	start := p.cur().Offset
	p.expect(token.RETURN)
	var value ast.Expr
	if !p.at(token.SEMICOLON) && !p.at(token.RBRACE) && !p.at(token.EOF) {
		value = p.parseExpr()
	}
	end := p.toks[p.pos-1].Offset
	return ast.NewReturnStmt(value, ast.Span{Start: start, End: end})
}

// parseVarStmt parses a local variable declaration. The parser only
// enforces the grammar shape here; whether a val without a type
// annotation can infer one, and whether a var/val is legal in the
// current scope kind, are semantic-analysis concerns.
func (p *Parser) parseVarStmt() *ast.VarStmt {
	start := p.cur().Offset
	mutable := p.expectVarOrVal()
	name := p.expect(token.IDENT).Lexeme
	var typ ast.TypeRef
	if p.at(token.COLON) {
		p.advance()
		typ = p.parseTypeRef()
	}
	p.expect(token.ASSIGN)
	init := p.parseExpr()
	end := p.toks[p.pos-1].Offset
	return ast.NewVarStmt(name, typ, init, mutable, ast.Span{Start: start, End: end})
}

func (p *Parser) parseExprStmt() *ast.ExprStmt {
	start := p.cur().Offset
	x := p.parseExpr()
	end := p.toks[p.pos-1].Offset
	return ast.NewExprStmt(x, ast.Span{Start: start, End: end})
}
