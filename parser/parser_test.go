package parser

import (
	"strings"
	"testing"

	"github.com/venylang/venyc/ast"
	"github.com/venylang/venyc/source"
)

func mustParse(t *testing.T, src string) *ast.File {
	t.Helper()
	fs := source.NewFileSet()
	f := fs.AddFile("t.veny", len(src))
	file, err := Parse("t.veny", []byte(src), f)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	return file
}

func TestParseClassWithFieldsAndMethod(t *testing.T) {
	src := `
package a.b

class Point {
  pub val x: Int
  pub val y: Int

  dist(other: Point): Int {
    return 0
  }
}
`
	f := mustParse(t, src)
	if f.Package != "a.b" {
		t.Fatalf("got package %q", f.Package)
	}
	if len(f.Classes) != 1 {
		t.Fatalf("got %d classes", len(f.Classes))
	}
	c := f.Classes[0]
	if c.Name != "Point" || len(c.Fields) != 2 || len(c.Methods) != 1 {
		t.Fatalf("unexpected class shape: %+v", c)
	}
}

func TestParseClassExtendsImplements(t *testing.T) {
	src := `
package a.b

class Dog ext Animal impl Pet, Named {
}
`
	f := mustParse(t, src)
	c := f.Classes[0]
	if c.Parent != "Animal" {
		t.Errorf("got parent %q", c.Parent)
	}
	if len(c.Interfaces) != 2 || c.Interfaces[0] != "Pet" || c.Interfaces[1] != "Named" {
		t.Errorf("got interfaces %v", c.Interfaces)
	}
}

func TestParseInterfaceDecl(t *testing.T) {
	src := `
package a.b

interface Shape {
  area(): Float
}
`
	f := mustParse(t, src)
	if len(f.Interfaces) != 1 {
		t.Fatalf("got %d interfaces", len(f.Interfaces))
	}
	m := f.Interfaces[0].Methods[0]
	if m.Body != nil {
		t.Error("interface method should have no body")
	}
}

func TestParseImports(t *testing.T) {
	src := `
package p

import a.b.C
import a.b.*

class Foo {}
`
	f := mustParse(t, src)
	if len(f.Imports) != 2 {
		t.Fatalf("got %d imports", len(f.Imports))
	}
	if f.Imports[0].Qualified() != "a.b.C" {
		t.Errorf("got %q", f.Imports[0].Qualified())
	}
	if !f.Imports[1].Wildcard {
		t.Error("expected second import to be a wildcard")
	}
}

func TestParseExpressionPrecedence(t *testing.T) {
	src := `
package p

class Foo {
  run(): Int {
    return 1 + 2 * 3
  }
}
`
	f := mustParse(t, src)
	ret := f.Classes[0].Methods[0].Body.Stmts[0].(*ast.ReturnStmt)
	bin := ret.Value.(*ast.Binary)
	if bin.Op != "+" {
		t.Fatalf("top-level operator should be +, got %q", bin.Op)
	}
	rhs := bin.Right.(*ast.Binary)
	if rhs.Op != "*" {
		t.Fatalf("right operand should be a * expression, got %q", rhs.Op)
	}
}

func TestParseCompoundAssignDesugars(t *testing.T) {
	src := `
package p

class Foo {
  run(): Int {
    var x: Int = 1
    x += 2
    return x
  }
}
`
	f := mustParse(t, src)
	stmts := f.Classes[0].Methods[0].Body.Stmts
	assignStmt := stmts[1].(*ast.ExprStmt)
	assign := assignStmt.X.(*ast.Assign)
	bin := assign.Value.(*ast.Binary)
	if bin.Op != "+" {
		t.Fatalf("compound assign should desugar to +, got %q", bin.Op)
	}
}

func TestParseFieldAssignProducesSet(t *testing.T) {
	src := `
package p

class Foo {
  run(other: Foo): Int {
    other.value = 1
    return 0
  }
}
`
	f := mustParse(t, src)
	stmt := f.Classes[0].Methods[0].Body.Stmts[0].(*ast.ExprStmt)
	set := stmt.X.(*ast.Set)
	if set.Field != "value" {
		t.Errorf("got field %q", set.Field)
	}
}

func TestParseNewAndCallChain(t *testing.T) {
	src := `
package p

class Foo {
  run(): Point {
    return new Point(1, 2).translate(3, 4)
  }
}
`
	f := mustParse(t, src)
	ret := f.Classes[0].Methods[0].Body.Stmts[0].(*ast.ReturnStmt)
	call := ret.Value.(*ast.Call)
	get := call.Callee.(*ast.Get)
	if get.Field != "translate" {
		t.Errorf("got field %q", get.Field)
	}
	if _, ok := get.Target.(*ast.New); !ok {
		t.Errorf("expected call target to be a New expression, got %T", get.Target)
	}
}

func TestParseForAndWhile(t *testing.T) {
	src := `
package p

class Foo {
  run(items: [Int]): Int {
    var total: Int = 0
    for x in items {
      total += x
    }
    while total > 100 {
      break
    }
    return total
  }
}
`
	f := mustParse(t, src)
	stmts := f.Classes[0].Methods[0].Body.Stmts
	forStmt := stmts[1].(*ast.ForStmt)
	if forStmt.VarName != "x" {
		t.Errorf("got %q", forStmt.VarName)
	}
	whileStmt := stmts[2].(*ast.WhileStmt)
	if len(whileStmt.Body.Stmts) != 1 {
		t.Errorf("got %d stmts in while body", len(whileStmt.Body.Stmts))
	}
}

func TestParseSyntaxErrorReportsOffset(t *testing.T) {
	src := `package p
class Foo { val x Int }`
	fs := source.NewFileSet()
	f := fs.AddFile("t.veny", len(src))
	_, err := Parse("t.veny", []byte(src), f)
	if err == nil {
		t.Fatal("expected a syntax error")
	}
	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("got error of type %T", err)
	}
	if perr.Offset == source.NoOffset {
		t.Error("expected a non-zero offset on the error")
	}
}

func TestParseEntryMethodShape(t *testing.T) {
	src := `
package p

class Main {
  entry(args: [Text]): Void {
  }
}
`
	f := mustParse(t, src)
	m := f.Classes[0].Methods[0]
	if m.Name != "entry" || len(m.Params) != 1 || m.Params[0].Type.String() != "[Text]" {
		t.Fatalf("unexpected entry method shape: %+v", m)
	}
}

func TestParseMissingPackageDeclarationFails(t *testing.T) {
	src := `class Foo {}`
	fs := source.NewFileSet()
	f := fs.AddFile("t.veny", len(src))
	_, err := Parse("t.veny", []byte(src), f)
	if err == nil {
		t.Fatal("expected a syntax error for a missing package declaration")
	}
	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("got error of type %T, want *Error", err)
	}
	if !strings.Contains(perr.Message, "Expected `package` declaration") {
		t.Errorf("got message %q, want it to mention the missing package declaration", perr.Message)
	}
}

func TestParseEntryMethodInvalidShapeIsSyntaxError(t *testing.T) {
	src := `
package p

class Main {
  entry(args: Text): Int {
  }
}
`
	fs := source.NewFileSet()
	f := fs.AddFile("t.veny", len(src))
	_, err := Parse("t.veny", []byte(src), f)
	if err == nil {
		t.Fatal("expected a syntax error for a malformed entry method")
	}
	if _, ok := err.(*Error); !ok {
		t.Fatalf("got error of type %T, want *Error", err)
	}
}
