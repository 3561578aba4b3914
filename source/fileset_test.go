package source

import "testing"

func TestFileSetPosition(t *testing.T) {
	src := "class A {\n  val x: Int = 1\n}\n"
	fs := NewFileSet()
	f := fs.AddFile("a.veny", len(src))
	for i, b := range []byte(src) {
		if b == '\n' {
			f.AddLine(i + 1)
		}
	}

	cases := []struct {
		local        int
		line, column int
	}{
		{0, 1, 1},
		{6, 1, 7},
		{10, 2, 1},
		{14, 2, 5},
		{len(src) - 1, 3, 2},
	}
	for _, c := range cases {
		pos := fs.Position(f.Offset(c.local))
		if pos.Line != c.line || pos.Column != c.column {
			t.Errorf("Offset(%d): got %d:%d, want %d:%d", c.local, pos.Line, pos.Column, c.line, c.column)
		}
		if pos.File != "a.veny" {
			t.Errorf("Offset(%d): got file %q, want a.veny", c.local, pos.File)
		}
	}
}

func TestFileSetNoOffset(t *testing.T) {
	fs := NewFileSet()
	fs.AddFile("a.veny", 10)
	if pos := fs.Position(NoOffset); pos.IsValid() {
		t.Errorf("Position(NoOffset) = %+v, want invalid", pos)
	}
}

func TestFileSetMultipleFiles(t *testing.T) {
	fs := NewFileSet()
	a := fs.AddFile("a.veny", 5)
	b := fs.AddFile("b.veny", 5)

	pa := fs.Position(a.Offset(0))
	pb := fs.Position(b.Offset(0))
	if pa.File != "a.veny" || pb.File != "b.veny" {
		t.Fatalf("got files %q, %q, want a.veny, b.veny", pa.File, pb.File)
	}

	if fs.File(a.Offset(0)) != a {
		t.Error("File(a offset) did not resolve to a")
	}
	if fs.File(b.Offset(0)) != b {
		t.Error("File(b offset) did not resolve to b")
	}
}

func TestPositionString(t *testing.T) {
	p := Position{File: "x.veny", Line: 3, Column: 5}
	if got, want := p.String(), "x.veny:3:5"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := (Position{}).String(), "-"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
