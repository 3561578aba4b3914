package resolve

import (
	"fmt"
	"testing"

	"github.com/venylang/venyc/ast"
	"github.com/venylang/venyc/parser"
	"github.com/venylang/venyc/source"
)

// memLoader is a FileLoader backed by an in-memory map of
// "pkg.Type" -> source text, used so resolver tests don't touch disk.
type memLoader struct {
	fs      *source.FileSet
	sources map[string]string
	cache   map[string]*ast.File
}

func newMemLoader(sources map[string]string) *memLoader {
	return &memLoader{fs: source.NewFileSet(), sources: sources, cache: map[string]*ast.File{}}
}

func (m *memLoader) Load(pkg, typeName string) (*ast.File, error) {
	key := pkg + "." + typeName
	if f, ok := m.cache[key]; ok {
		return f, nil
	}
	src, ok := m.sources[key]
	if !ok {
		return nil, fmt.Errorf("no source registered for %s", key)
	}
	fpm := m.fs.AddFile(key+".veny", len(src))
	f, err := parser.Parse(key+".veny", []byte(src), fpm)
	if err != nil {
		return nil, err
	}
	m.cache[key] = f
	return f, nil
}

func (m *memLoader) LoadPackage(pkg string) ([]*ast.File, error) {
	var files []*ast.File
	for key, src := range m.sources {
		prefix := pkg + "."
		if len(key) <= len(prefix) || key[:len(prefix)] != prefix {
			continue
		}
		if f, ok := m.cache[key]; ok {
			files = append(files, f)
			continue
		}
		fpm := m.fs.AddFile(key+".veny", len(src))
		f, err := parser.Parse(key+".veny", []byte(src), fpm)
		if err != nil {
			return nil, err
		}
		m.cache[key] = f
		files = append(files, f)
	}
	return files, nil
}

func parseEntry(t *testing.T, src string) *ast.File {
	t.Helper()
	fs := source.NewFileSet()
	f := fs.AddFile("entry.veny", len(src))
	file, err := parser.Parse("entry.veny", []byte(src), f)
	if err != nil {
		t.Fatalf("parse entry: %v", err)
	}
	return file
}

func TestResolveMergesImportedFiles(t *testing.T) {
	entry := parseEntry(t, `
package main

import a.Point

class Main {
  entry(args: [Text]): Void {
  }
}
`)
	loader := newMemLoader(map[string]string{
		"a.Point": "package a\nclass Point {}\n",
	})

	prog, err := Resolve(entry, loader)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if len(prog.Files) != 2 {
		t.Fatalf("got %d files, want 2", len(prog.Files))
	}
}

func TestResolveDiamondLoadsOnce(t *testing.T) {
	entry := parseEntry(t, `
package main

import a.Point
import a.Path

class Main {
  entry(args: [Text]): Void {
  }
}
`)
	loader := newMemLoader(map[string]string{
		"a.Point": "package a\nimport a.Base\nclass Point ext Base {}\n",
		"a.Path":  "package a\nimport a.Base\nclass Path ext Base {}\n",
		"a.Base":  "package a\nclass Base {}\n",
	})

	prog, err := Resolve(entry, loader)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if len(prog.Files) != 4 {
		t.Fatalf("got %d files, want 4 (entry, Point, Path, Base loaded once)", len(prog.Files))
	}
}

func TestResolveMissingImport(t *testing.T) {
	entry := parseEntry(t, `
package main

import a.Missing

class Main {
  entry(args: [Text]): Void {
  }
}
`)
	loader := newMemLoader(map[string]string{})
	_, err := Resolve(entry, loader)
	if err == nil {
		t.Fatal("expected an import resolution error")
	}
	if _, ok := err.(*ImportResolutionError); !ok {
		t.Fatalf("got error of type %T", err)
	}
}

func TestResolveDetectsInheritanceCycle(t *testing.T) {
	entry := parseEntry(t, `
package main

import a.A

class Main {
  entry(args: [Text]): Void {
  }
}
`)
	loader := newMemLoader(map[string]string{
		"a.A": "package a\nimport a.B\nclass A ext B {}\n",
		"a.B": "package a\nimport a.A\nclass B ext A {}\n",
	})

	_, err := Resolve(entry, loader)
	if err == nil {
		t.Fatal("expected a circular import error")
	}
	if _, ok := err.(*CircularImportError); !ok {
		t.Fatalf("got error of type %T", err)
	}
}

func TestResolveDetectsMutualImportCycle(t *testing.T) {
	entry := parseEntry(t, `
package main

import a.A

class Main {
  entry(args: [Text]): Void {
  }
}
`)
	loader := newMemLoader(map[string]string{
		"a.A": "package a\nimport b.B\nclass A {}\n",
		"b.B": "package b\nimport a.A\nclass B {}\n",
	})

	_, err := Resolve(entry, loader)
	if err == nil {
		t.Fatal("expected a circular import error")
	}
	if _, ok := err.(*CircularImportError); !ok {
		t.Fatalf("got error of type %T", err)
	}
}

func TestResolveWildcardImport(t *testing.T) {
	entry := parseEntry(t, `
package main

import a.*

class Main {
  entry(args: [Text]): Void {
  }
}
`)
	loader := newMemLoader(map[string]string{
		"a.X": "package a\nclass X {}\n",
		"a.Y": "package a\nclass Y {}\n",
	})

	prog, err := Resolve(entry, loader)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if len(prog.Files) != 3 {
		t.Fatalf("got %d files, want 3", len(prog.Files))
	}
}
