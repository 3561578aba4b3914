package parser

import (
	"github.com/venylang/venyc/ast"
	"github.com/venylang/venyc/source"
	"github.com/venylang/venyc/token"
)

func (p *Parser) parseExpr() ast.Expr {
	return p.parseAssignment()
}

// compoundOps maps each compound-assignment token to the binary
// operator it desugars into: "x += y" becomes an Assign/Set whose
// value is the Binary "x + y".
var compoundOps = map[token.Kind]string{
	token.PLUS_ASSIGN:    "+",
	token.MINUS_ASSIGN:   "-",
	token.STAR_ASSIGN:    "*",
	token.SLASH_ASSIGN:   "/",
	token.PERCENT_ASSIGN: "%",
}

func (p *Parser) parseAssignment() ast.Expr {
	left := p.parseOr()

	if p.at(token.ASSIGN) {
		start := p.cur().Offset
		p.advance()
		value := p.parseAssignment()
		return p.buildAssignment(left, value, start)
	}

	if op, ok := compoundOps[p.peekKind()]; ok {
		start := p.cur().Offset
		p.advance()
		rhs := p.parseAssignment()
		desugared := ast.NewBinary(op, left, rhs, ast.Span{Start: left.Span().Start, End: rhs.Span().End})
		return p.buildAssignment(left, desugared, start)
	}

	return left
}

func (p *Parser) buildAssignment(target, value ast.Expr, start source.Offset) ast.Expr {
	span := ast.Span{Start: target.Span().Start, End: value.Span().End}
	switch t := target.(type) {
	case *ast.Variable:
		return ast.NewAssign(t, value, span)
	case *ast.Get:
		return ast.NewSet(t.Target, t.Field, value, span)
	default:
		p.err = &Error{Offset: start, Message: "invalid assignment target"}
		panic(bailout{})
	}
}

func (p *Parser) parseOr() ast.Expr {
	left := p.parseAnd()
	for p.at(token.OR) {
		p.advance()
		right := p.parseAnd()
		left = ast.NewBinary("||", left, right, ast.Span{Start: left.Span().Start, End: right.Span().End})
	}
	return left
}

func (p *Parser) parseAnd() ast.Expr {
	left := p.parseEquality()
	for p.at(token.AND) {
		p.advance()
		right := p.parseEquality()
		left = ast.NewBinary("&&", left, right, ast.Span{Start: left.Span().Start, End: right.Span().End})
	}
	return left
}

func (p *Parser) parseEquality() ast.Expr {
	left := p.parseComparison()
	for p.at(token.EQ) || p.at(token.NEQ) {
		op := p.advance()
		right := p.parseComparison()
		left = ast.NewBinary(op.Lexeme, left, right, ast.Span{Start: left.Span().Start, End: right.Span().End})
	}
	return left
}

func (p *Parser) parseComparison() ast.Expr {
	left := p.parseAdditive()
	for p.at(token.LT) || p.at(token.GT) || p.at(token.LE) || p.at(token.GE) {
		op := p.advance()
		right := p.parseAdditive()
		left = ast.NewBinary(op.Lexeme, left, right, ast.Span{Start: left.Span().Start, End: right.Span().End})
	}
	return left
}

func (p *Parser) parseAdditive() ast.Expr {
	left := p.parseMultiplicative()
	for p.at(token.PLUS) || p.at(token.MINUS) {
		op := p.advance()
		right := p.parseMultiplicative()
		left = ast.NewBinary(op.Lexeme, left, right, ast.Span{Start: left.Span().Start, End: right.Span().End})
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Expr {
	left := p.parseUnary()
	for p.at(token.STAR) || p.at(token.SLASH) || p.at(token.PERCENT) {
		op := p.advance()
		right := p.parseUnary()
		left = ast.NewBinary(op.Lexeme, left, right, ast.Span{Start: left.Span().Start, End: right.Span().End})
	}
	return left
}

func (p *Parser) parseUnary() ast.Expr {
	if p.at(token.BANG) || p.at(token.MINUS) {
		op := p.advance()
		operand := p.parseUnary()
		return ast.NewUnary(op.Lexeme, operand, ast.Span{Start: op.Offset, End: operand.Span().End})
	}
	return p.parseCallChain()
}

// parseCallChain parses a primary expression followed by any number of
// ".field", ".field(args)", "(args)" or "[index]" suffixes.
func (p *Parser) parseCallChain() ast.Expr {
	expr := p.parsePrimary()
	for {
		switch {
		case p.at(token.DOT):
			p.advance()
			field := p.expect(token.IDENT).Lexeme
			end := p.toks[p.pos-1].Offset
			get := ast.NewGet(expr, field, ast.Span{Start: expr.Span().Start, End: end})
			if p.at(token.LPAREN) {
				args := p.parseArgs()
				expr = ast.NewCall(get, args, ast.Span{Start: expr.Span().Start, End: p.toks[p.pos-1].Offset})
			} else {
				expr = get
			}
		case p.at(token.LPAREN):
			args := p.parseArgs()
			expr = ast.NewCall(expr, args, ast.Span{Start: expr.Span().Start, End: p.toks[p.pos-1].Offset})
		case p.at(token.LBRACKET):
			p.advance()
			idx := p.parseExpr()
			p.expect(token.RBRACKET)
			end := p.toks[p.pos-1].Offset
			expr = ast.NewIndex(expr, idx, ast.Span{Start: expr.Span().Start, End: end})
		default:
			return expr
		}
	}
}

func (p *Parser) parseArgs() []ast.Expr {
	p.expect(token.LPAREN)
	var args []ast.Expr
	for !p.at(token.RPAREN) {
		args = append(args, p.parseExpr())
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RPAREN)
	return args
}

func (p *Parser) parsePrimary() ast.Expr {
	start := p.cur().Offset
	switch p.peekKind() {
	case token.INT_LITERAL:
		t := p.advance()
		return ast.NewLiteral(ast.IntLit, t.Literal, ast.Span{Start: start, End: t.Offset})
	case token.FLOAT_LITERAL:
		t := p.advance()
		return ast.NewLiteral(ast.FloatLit, t.Literal, ast.Span{Start: start, End: t.Offset})
	case token.TEXT_LITERAL:
		t := p.advance()
		return ast.NewLiteral(ast.TextLit, t.Literal, ast.Span{Start: start, End: t.Offset})
	case token.TRUE, token.FALSE:
		t := p.advance()
		return ast.NewLiteral(ast.BoolLit, t.Literal, ast.Span{Start: start, End: t.Offset})
	case token.NULL:
		t := p.advance()
		return ast.NewLiteral(ast.NullLit, nil, ast.Span{Start: start, End: t.Offset})
	case token.IDENT:
		t := p.advance()
		return ast.NewVariable(t.Lexeme, ast.Span{Start: start, End: t.Offset})
	case token.THIS:
		t := p.advance()
		return ast.NewVariable(t.Lexeme, ast.Span{Start: start, End: t.Offset})
	case token.LPAREN:
		p.advance()
		x := p.parseExpr()
		p.expect(token.RPAREN)
		return x
	case token.LBRACKET:
		return p.parseArrayLiteral(start)
	case token.NEW:
		return p.parseNewExpr(start)
	default:
		p.fail("expected an expression, got " + p.describe(p.cur()))
		return nil
	}
}

func (p *Parser) parseArrayLiteral(start source.Offset) ast.Expr {
	p.expect(token.LBRACKET)
	var elems []ast.Expr
	for !p.at(token.RBRACKET) {
		elems = append(elems, p.parseExpr())
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	end := p.expect(token.RBRACKET).Offset
	return ast.NewArrayLiteral(elems, ast.Span{Start: start, End: end})
}

func (p *Parser) parseNewExpr(start source.Offset) ast.Expr {
	p.expect(token.NEW)
	className := p.parseQualifiedName()
	args := p.parseArgs()
	end := p.toks[p.pos-1].Offset
	return ast.NewNewExpr(className, args, ast.Span{Start: start, End: end})
}
