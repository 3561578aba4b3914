package parser

import (
	"strings"

	"github.com/venylang/venyc/ast"
	"github.com/venylang/venyc/source"
	"github.com/venylang/venyc/symbols"
	"github.com/venylang/venyc/token"
)

func (p *Parser) parseFile(name string) *ast.File {
	start := p.cur().Offset
	if !p.at(token.PACKAGE) {
		p.fail("Expected `package` declaration, got " + p.describe(p.cur()))
	}
	p.advance()
	pkg := p.parseQualifiedName()
	p.skipSemicolons()

	f := ast.NewFile(name, pkg, ast.Span{Start: start})

	for p.at(token.IMPORT) {
		f.Imports = append(f.Imports, p.parseImport())
		p.skipSemicolons()
	}

	for !p.at(token.EOF) {
		switch {
		case p.at(token.CLASS):
			f.Classes = append(f.Classes, p.parseClassDecl())
		case p.at(token.INTERFACE):
			f.Interfaces = append(f.Interfaces, p.parseInterfaceDecl())
		default:
			p.fail("expected a class or interface declaration, got " + p.describe(p.cur()))
		}
		p.skipSemicolons()
	}

	return f
}

func (p *Parser) parseQualifiedName() string {
	var parts []string
	parts = append(parts, p.expect(token.IDENT).Lexeme)
	for p.at(token.DOT) {
		p.advance()
		parts = append(parts, p.expect(token.IDENT).Lexeme)
	}
	return strings.Join(parts, ".")
}

func (p *Parser) parseImport() ast.ImportSpec {
	start := p.cur().Offset
	p.expect(token.IMPORT)
	var parts []string
	parts = append(parts, p.expect(token.IDENT).Lexeme)
	wildcard := false
	for p.at(token.DOT) {
		p.advance()
		if p.at(token.STAR) {
			p.advance()
			wildcard = true
			break
		}
		parts = append(parts, p.expect(token.IDENT).Lexeme)
	}
	end := p.toks[p.pos-1].Offset
	if wildcard {
		pkg := strings.Join(parts, ".")
		return ast.NewImportSpec(pkg, "", true, ast.Span{Start: start, End: end})
	}
	typeName := parts[len(parts)-1]
	pkg := strings.Join(parts[:len(parts)-1], ".")
	return ast.NewImportSpec(pkg, typeName, false, ast.Span{Start: start, End: end})
}

func (p *Parser) parseVisibility() symbols.Visibility {
	switch {
	case p.at(token.PUB):
		p.advance()
		return symbols.VisibilityPublic
	case p.at(token.PRI):
		p.advance()
		return symbols.VisibilityPrivate
	default:
		return symbols.VisibilityDefault
	}
}

func (p *Parser) parseTypeRef() ast.TypeRef {
	start := p.cur().Offset
	dims := 0
	for p.at(token.LBRACKET) {
		p.advance()
		dims++
	}
	name := p.parseQualifiedName()
	for i := 0; i < dims; i++ {
		p.expect(token.RBRACKET)
	}
	end := p.toks[p.pos-1].Offset
	return ast.NewTypeRef(name, dims, ast.Span{Start: start, End: end})
}

func (p *Parser) parseClassDecl() *ast.ClassDecl {
	start := p.cur().Offset
	p.expect(token.CLASS)
	name := p.expect(token.IDENT).Lexeme

	parent := ""
	if p.at(token.EXT) {
		p.advance()
		parent = p.parseQualifiedName()
	}

	var interfaces []string
	if p.at(token.IMPL) {
		p.advance()
		interfaces = append(interfaces, p.parseQualifiedName())
		for p.at(token.COMMA) {
			p.advance()
			interfaces = append(interfaces, p.parseQualifiedName())
		}
	}

	p.expect(token.LBRACE)
	p.pushScope(scopeClass)
	var fields []*ast.VarDecl
	var methods []*ast.MethodDecl
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		p.skipSemicolons()
		if p.at(token.RBRACE) {
			break
		}
		if p.isFieldStart() {
			fields = append(fields, p.parseFieldDecl())
		} else {
			methods = append(methods, p.parseMethodDecl())
		}
		p.skipSemicolons()
	}
	p.popScope()
	p.expect(token.RBRACE)
	end := p.toks[p.pos-1].Offset

	return ast.NewClassDecl(name, parent, interfaces, fields, methods, ast.Span{Start: start, End: end})
}

// isFieldStart looks ahead past an optional visibility modifier to
// decide whether the next member is a field (var/val) or a method
// (identifier).
func (p *Parser) isFieldStart() bool {
	i := p.pos
	if p.toks[i].Kind == token.PUB || p.toks[i].Kind == token.PRI {
		i++
	}
	return p.toks[i].Kind == token.VAR || p.toks[i].Kind == token.VAL
}

func (p *Parser) parseFieldDecl() *ast.VarDecl {
	start := p.cur().Offset
	vis := p.parseVisibility()
	mutable := p.expectVarOrVal()
	name := p.expect(token.IDENT).Lexeme
	p.expect(token.COLON)
	typ := p.parseTypeRef()
	var init ast.Expr
	if p.at(token.ASSIGN) {
		p.advance()
		init = p.parseExpr()
	}
	end := p.toks[p.pos-1].Offset
	return ast.NewVarDecl(name, typ, init, mutable, vis, ast.Span{Start: start, End: end})
}

// expectVarOrVal consumes a var or val keyword and reports whether the
// declaration is mutable.
func (p *Parser) expectVarOrVal() bool {
	if p.at(token.VAR) {
		p.advance()
		return true
	}
	if p.at(token.VAL) {
		p.advance()
		return false
	}
	p.fail("expected var or val, got " + p.describe(p.cur()))
	return false
}

func (p *Parser) parseParams() []*ast.Param {
	p.expect(token.LPAREN)
	var params []*ast.Param
	for !p.at(token.RPAREN) {
		start := p.cur().Offset
		name := p.expect(token.IDENT).Lexeme
		p.expect(token.COLON)
		typ := p.parseTypeRef()
		end := p.toks[p.pos-1].Offset
		params = append(params, ast.NewParam(name, typ, ast.Span{Start: start, End: end}))
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RPAREN)
	return params
}

func (p *Parser) parseMethodDecl() *ast.MethodDecl {
	start := p.cur().Offset
	vis := p.parseVisibility()
	name := p.expect(token.IDENT).Lexeme
	params := p.parseParams()
	ret := p.parseReturnType()
	if name == "entry" {
		p.checkEntryShape(params, ret, start)
	}

	var body *ast.Block
	if p.at(token.LBRACE) {
		p.pushScope(scopeMethod)
		body = p.parseBlock()
		p.popScope()
	}
	end := p.toks[p.pos-1].Offset
	return ast.NewMethodDecl(name, params, ret, body, vis, ast.Span{Start: start, End: end})
}

// parseReturnType parses the optional ": type" suffix of a method
// signature, defaulting to void when omitted.
func (p *Parser) parseReturnType() ast.TypeRef {
	if p.at(token.COLON) {
		p.advance()
		return p.parseTypeRef()
	}
	at := p.cur().Offset
	return ast.NewTypeRef("void", 0, ast.Span{Start: at, End: at})
}

// isVoidTypeName accepts both the spec's lowercase "void" and the
// capitalized "Void" some call sites still spell out explicitly.
func isVoidTypeName(name string) bool {
	return name == "void" || name == "Void"
}

// checkEntryShape enforces the entry method's special shape at parse
// time: exactly one parameter named args of type [Text], and a void
// return type. Violations are syntax errors, not semantic ones, since
// entry is a grammar-level special case rather than an ordinarily
// type-checked method.
func (p *Parser) checkEntryShape(params []*ast.Param, ret ast.TypeRef, start source.Offset) {
	ok := len(params) == 1 &&
		params[0].Name == "args" &&
		params[0].Type.ArrayDims == 1 &&
		params[0].Type.Name == "Text" &&
		ret.ArrayDims == 0 &&
		isVoidTypeName(ret.Name)
	if !ok {
		p.failAt(start, "entry method must have signature entry(args: [Text]): void")
	}
}

func (p *Parser) parseInterfaceDecl() *ast.InterfaceDecl {
	start := p.cur().Offset
	p.expect(token.INTERFACE)
	name := p.expect(token.IDENT).Lexeme

	var parents []string
	if p.at(token.EXT) || p.at(token.IMPL) {
		p.advance()
		parents = append(parents, p.parseQualifiedName())
		for p.at(token.COMMA) {
			p.advance()
			parents = append(parents, p.parseQualifiedName())
		}
	}

	p.expect(token.LBRACE)
	var methods []*ast.MethodDecl
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		p.skipSemicolons()
		if p.at(token.RBRACE) {
			break
		}
		mstart := p.cur().Offset
		vis := p.parseVisibility()
		mname := p.expect(token.IDENT).Lexeme
		params := p.parseParams()
		ret := p.parseReturnType()
		mend := p.toks[p.pos-1].Offset
		methods = append(methods, ast.NewMethodDecl(mname, params, ret, nil, vis, ast.Span{Start: mstart, End: mend}))
		p.skipSemicolons()
	}
	p.expect(token.RBRACE)
	end := p.toks[p.pos-1].Offset

	return ast.NewInterfaceDecl(name, parents, methods, ast.Span{Start: start, End: end})
}
