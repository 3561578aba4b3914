package lexer

import (
	"testing"

	"github.com/venylang/venyc/source"
	"github.com/venylang/venyc/token"
)

func scan(t *testing.T, src string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	f := fs.AddFile("t.veny", len(src))
	return Scan([]byte(src), f)
}

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, tk := range toks {
		ks[i] = tk.Kind
	}
	return ks
}

func TestScanKeywordsAndIdents(t *testing.T) {
	toks := scan(t, "class Foo ext Bar { }")
	got := kinds(toks)
	want := []token.Kind{token.CLASS, token.IDENT, token.EXT, token.IDENT, token.LBRACE, token.RBRACE, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestScanNumbers(t *testing.T) {
	toks := scan(t, "1 2.5 007")
	if toks[0].Kind != token.INT_LITERAL || toks[0].Literal != int64(1) {
		t.Errorf("toks[0] = %+v", toks[0])
	}
	if toks[1].Kind != token.FLOAT_LITERAL || toks[1].Literal != 2.5 {
		t.Errorf("toks[1] = %+v", toks[1])
	}
	if toks[2].Kind != token.INT_LITERAL || toks[2].Literal != int64(7) {
		t.Errorf("toks[2] = %+v", toks[2])
	}
}

func TestScanTextLiteral(t *testing.T) {
	toks := scan(t, `"hello world"`)
	if toks[0].Kind != token.TEXT_LITERAL {
		t.Fatalf("got kind %v, want TEXT_LITERAL", toks[0].Kind)
	}
	if toks[0].Literal != "hello world" {
		t.Errorf("got literal %q", toks[0].Literal)
	}
}

// TestScanTextLiteralNoEscapeProcessing pins down the preserved gap:
// a backslash inside a text literal is an ordinary byte, not the start
// of an escape sequence.
func TestScanTextLiteralNoEscapeProcessing(t *testing.T) {
	toks := scan(t, `"hello\nworld"`)
	if toks[0].Kind != token.TEXT_LITERAL {
		t.Fatalf("got kind %v, want TEXT_LITERAL", toks[0].Kind)
	}
	if toks[0].Literal != `hello\nworld` {
		t.Errorf("got literal %q, want literal backslash-n preserved", toks[0].Literal)
	}
}

func TestScanUnterminatedText(t *testing.T) {
	toks := scan(t, `"hello`)
	if toks[0].Kind != token.ILLEGAL {
		t.Fatalf("got kind %v, want ILLEGAL", toks[0].Kind)
	}
}

func TestScanOperators(t *testing.T) {
	toks := scan(t, "== != <= >= && || += -")
	got := kinds(toks)
	want := []token.Kind{token.EQ, token.NEQ, token.LE, token.GE, token.AND, token.OR, token.PLUS_ASSIGN, token.MINUS, token.EOF}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestScanLineComment(t *testing.T) {
	toks := scan(t, "val x // trailing comment\n= 1")
	got := kinds(toks)
	want := []token.Kind{token.VAL, token.IDENT, token.ASSIGN, token.INT_LITERAL, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d", len(got), got, len(want))
	}
}

func TestScanUnknownChar(t *testing.T) {
	toks := scan(t, "val x = 1 @ 2")
	foundIllegal := false
	for _, tk := range toks {
		if tk.Kind == token.ILLEGAL {
			foundIllegal = true
		}
	}
	if !foundIllegal {
		t.Error("expected an ILLEGAL token for '@'")
	}
}

func TestScanPositions(t *testing.T) {
	src := "val x\n= 1"
	fs := source.NewFileSet()
	f := fs.AddFile("t.veny", len(src))
	toks := Scan([]byte(src), f)

	pos := fs.Position(toks[2].Offset) // ASSIGN token, on line 2
	if pos.Line != 2 || pos.Column != 1 {
		t.Errorf("got %d:%d, want 2:1", pos.Line, pos.Column)
	}
}

func TestScanAlwaysEndsWithEOF(t *testing.T) {
	toks := scan(t, "")
	if len(toks) != 1 || toks[0].Kind != token.EOF {
		t.Fatalf("got %v, want single EOF", toks)
	}
}
