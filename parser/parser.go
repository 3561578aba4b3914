// Package parser implements a recursive-descent parser over the token
// stream produced by package lexer, building the program tree defined
// in package ast.
//
// The parser is fail-fast: the first syntax error it encounters is
// recorded and parsing stops, unwinding through a bailout panic the
// way the wider ecosystem's own hand-written recursive-descent parsers
// do. There is no error-recovery or resynchronization pass, since a
// single Veny file is small enough that re-running the parser after
// a fix is cheap.
package parser

import (
	"fmt"

	"github.com/venylang/venyc/source"
	"github.com/venylang/venyc/token"
)

// Error is a syntax error together with the offset where it occurred.
type Error struct {
	Offset  source.Offset
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse error: %s", e.Message)
}

// bailout unwinds the recursive-descent call stack back to Parse once
// the first Error has been recorded.
type bailout struct{}

// scopeKind tracks which kind of lexical region the parser is
// currently descending through, since a handful of grammar rules
// differ depending on whether a VarDecl appears at class scope
// (field) or inside a method body (local).
type scopeKind int

const (
	scopeFile scopeKind = iota
	scopeClass
	scopeMethod
)

// Parser owns a token vector for one file and an index into it.
type Parser struct {
	file   *source.FilePosMap
	toks   []token.Token
	pos    int
	err    *Error
	scopes []scopeKind
}

// New returns a Parser over toks, which must end with a single EOF
// token as produced by lexer.Scan.
func New(file *source.FilePosMap, toks []token.Token) *Parser {
	return &Parser{file: file, toks: toks, scopes: []scopeKind{scopeFile}}
}

func (p *Parser) cur() token.Token { return p.toks[p.pos] }

func (p *Parser) peekKind() token.Kind { return p.toks[p.pos].Kind }

func (p *Parser) advance() token.Token {
	t := p.toks[p.pos]
	if t.Kind != token.EOF {
		p.pos++
	}
	return t
}

func (p *Parser) at(k token.Kind) bool { return p.peekKind() == k }

func (p *Parser) accept(k token.Kind) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	return token.Token{}, false
}

func (p *Parser) expect(k token.Kind) token.Token {
	if !p.at(k) {
		p.fail(fmt.Sprintf("expected %s, got %s", k, p.describe(p.cur())))
	}
	return p.advance()
}

func (p *Parser) describe(t token.Token) string {
	if t.Kind == token.EOF {
		return "end of file"
	}
	if t.Lexeme != "" {
		return fmt.Sprintf("%q", t.Lexeme)
	}
	return t.Kind.String()
}

func (p *Parser) fail(msg string) {
	p.failAt(p.cur().Offset, msg)
}

func (p *Parser) failAt(offset source.Offset, msg string) {
	if p.err == nil {
		p.err = &Error{Offset: offset, Message: msg}
	}
	panic(bailout{})
}

func (p *Parser) pushScope(k scopeKind) { p.scopes = append(p.scopes, k) }
func (p *Parser) popScope()             { p.scopes = p.scopes[:len(p.scopes)-1] }
func (p *Parser) inScope(k scopeKind) bool {
	return p.scopes[len(p.scopes)-1] == k
}

// skipSemicolons consumes zero or more statement-separator semicolons.
func (p *Parser) skipSemicolons() {
	for p.at(token.SEMICOLON) {
		p.advance()
	}
}
