package parser

import (
	"github.com/venylang/venyc/ast"
	"github.com/venylang/venyc/lexer"
	"github.com/venylang/venyc/source"
	"github.com/venylang/venyc/token"
)

// Parse lexes and parses one source file, returning its program tree
// or the first syntax error encountered.
func Parse(name string, src []byte, file *source.FilePosMap) (*ast.File, error) {
	toks := lexer.Scan(src, file)
	return ParseTokens(name, toks, file)
}

// ParseTokens parses a token vector already produced by lexer.Scan;
// Parse calls it after lexing. A caller may also hand it a token
// stream built by other means.
func ParseTokens(name string, toks []token.Token, file *source.FilePosMap) (f *ast.File, err error) {
	p := New(file, toks)
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			err = p.err
		}
	}()
	return p.parseFile(name), nil
}
