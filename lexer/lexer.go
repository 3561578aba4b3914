// Package lexer turns Veny source bytes into a flat token stream.
//
// The scanner itself tracks no line or column state; it only advances
// a byte cursor and, each time it crosses a newline, tells the
// destination source.FilePosMap where the next line begins. Positions
// are reconstructed later, from a Token's offset, via FileSet.Position.
package lexer

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/venylang/venyc/source"
	"github.com/venylang/venyc/token"
)

// Lexer scans a single file's content into tokens.
type Lexer struct {
	input []byte
	file  *source.FilePosMap
	base  source.Offset
	pos   int
}

// New returns a Lexer over input. file must already be registered with
// the FileSet that owns the compilation and sized to len(input).
func New(input []byte, file *source.FilePosMap) *Lexer {
	return &Lexer{input: input, file: file, base: file.Base()}
}

func (l *Lexer) offset() source.Offset { return l.base + source.Offset(l.pos) }

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.file.AddLine(l.pos)
	}
	return ch
}

// Scan tokenizes the entire input, skipping whitespace and comments,
// and returns the resulting tokens terminated by a single EOF token.
// Lexical errors do not stop scanning: each produces one ILLEGAL token
// carrying a diagnostic message in Lexeme, and scanning resumes at the
// next byte.
func Scan(input []byte, file *source.FilePosMap) []token.Token {
	l := New(input, file)
	var toks []token.Token
	for {
		tok, ok := l.next()
		if !ok {
			continue
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

// next scans one token. ok is false when the scan produced no token at
// all (whitespace or a comment was consumed) and the caller should call
// next again.
func (l *Lexer) next() (token.Token, bool) {
	if l.skipWhitespaceAndComments() {
		return token.Token{}, false
	}

	start := l.offset()

	if l.pos >= len(l.input) {
		return token.Token{Kind: token.EOF, Offset: start}, true
	}

	ch := l.peek()

	switch {
	case isIdentStart(ch):
		return l.scanIdentOrKeyword(start), true
	case isDigit(ch):
		return l.scanNumber(start), true
	case ch == '"':
		return l.scanText(start), true
	}

	return l.scanOperator(start), true
}

func (l *Lexer) skipWhitespaceAndComments() bool {
	switch {
	case l.peek() == ' ' || l.peek() == '\t' || l.peek() == '\r' || l.peek() == '\n':
		l.advance()
		return true
	case l.peek() == '/' && l.peekN(1) == '/':
		for l.peek() != '\n' && l.pos < len(l.input) {
			l.advance()
		}
		return true
	}
	return false
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch >= utf8.RuneSelf
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func (l *Lexer) scanIdentOrKeyword(start source.Offset) token.Token {
	begin := l.pos
	for isIdentPart(l.peek()) {
		l.advance()
	}
	lexeme := string(l.input[begin:l.pos])
	kind := token.Lookup(lexeme)
	switch kind {
	case token.TRUE:
		return token.Token{Kind: kind, Lexeme: lexeme, Literal: true, Offset: start}
	case token.FALSE:
		return token.Token{Kind: kind, Lexeme: lexeme, Literal: false, Offset: start}
	case token.NULL:
		return token.Token{Kind: kind, Lexeme: lexeme, Literal: nil, Offset: start}
	}
	return token.Token{Kind: kind, Lexeme: lexeme, Offset: start}
}

func (l *Lexer) scanNumber(start source.Offset) token.Token {
	begin := l.pos
	for isDigit(l.peek()) {
		l.advance()
	}
	isFloat := false
	if l.peek() == '.' && isDigit(l.peekN(1)) {
		isFloat = true
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	lexeme := string(l.input[begin:l.pos])
	if isFloat {
		v, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			return token.Token{Kind: token.ILLEGAL, Lexeme: "invalid float literal: " + lexeme, Offset: start}
		}
		return token.Token{Kind: token.FLOAT_LITERAL, Lexeme: lexeme, Literal: v, Offset: start}
	}
	v, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return token.Token{Kind: token.ILLEGAL, Lexeme: "invalid int literal: " + lexeme, Offset: start}
	}
	return token.Token{Kind: token.INT_LITERAL, Lexeme: lexeme, Literal: v, Offset: start}
}

// scanText consumes a text literal up to the closing quote. There is
// no escape processing: a backslash is an ordinary byte like any
// other, so "\n" in source yields the two characters '\' and 'n'.
func (l *Lexer) scanText(start source.Offset) token.Token {
	l.advance() // opening quote
	var buf []byte
	for {
		if l.pos >= len(l.input) {
			return token.Token{Kind: token.ILLEGAL, Lexeme: "Unterminated string", Offset: start}
		}
		ch := l.peek()
		if ch == '"' {
			l.advance()
			break
		}
		buf = append(buf, l.advance())
	}
	return token.Token{Kind: token.TEXT_LITERAL, Lexeme: string(buf), Literal: string(buf), Offset: start}
}

// operators lists multi-byte operators in longest-match-first order so
// a simple linear scan picks the right one without backtracking.
var operators = []struct {
	text string
	kind token.Kind
}{
	{"==", token.EQ},
	{"!=", token.NEQ},
	{"<=", token.LE},
	{">=", token.GE},
	{"&&", token.AND},
	{"||", token.OR},
	{"++", token.INC},
	{"--", token.DEC},
	{"->", token.ARROW},
	{"=>", token.FATARROW},
	{"::", token.DCOLON},
	{"..", token.RANGE},
	{"+=", token.PLUS_ASSIGN},
	{"-=", token.MINUS_ASSIGN},
	{"*=", token.STAR_ASSIGN},
	{"/=", token.SLASH_ASSIGN},
	{"%=", token.PERCENT_ASSIGN},
	{"<<", token.SHL},
	{">>", token.SHR},
	{":=", token.DEFINE},
	{"(", token.LPAREN},
	{")", token.RPAREN},
	{"{", token.LBRACE},
	{"}", token.RBRACE},
	{"[", token.LBRACKET},
	{"]", token.RBRACKET},
	{",", token.COMMA},
	{".", token.DOT},
	{":", token.COLON},
	{";", token.SEMICOLON},
	{"=", token.ASSIGN},
	{"+", token.PLUS},
	{"-", token.MINUS},
	{"*", token.STAR},
	{"/", token.SLASH},
	{"%", token.PERCENT},
	{"!", token.BANG},
	{"<", token.LT},
	{">", token.GT},
	{"&", token.AMP},
	{"|", token.PIPE},
}

func (l *Lexer) scanOperator(start source.Offset) token.Token {
	for _, op := range operators {
		if l.hasPrefix(op.text) {
			l.advanceN(len(op.text))
			return token.Token{Kind: op.kind, Lexeme: op.text, Offset: start}
		}
	}
	r, size := utf8.DecodeRune(l.input[l.pos:])
	l.advanceN(size)
	if !unicode.IsPrint(r) {
		return token.Token{Kind: token.ILLEGAL, Lexeme: "unexpected byte", Offset: start}
	}
	return token.Token{Kind: token.ILLEGAL, Lexeme: "unexpected character: " + string(r), Offset: start}
}

func (l *Lexer) hasPrefix(s string) bool {
	if l.pos+len(s) > len(l.input) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if l.input[l.pos+i] != s[i] {
			return false
		}
	}
	return true
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}
