package driver

import (
	"testing"
)

func TestCompileSingleFileNoErrors(t *testing.T) {
	root := MemRoot{
		"main.veny": []byte(`
package main

class Main {
  entry(args: [Text]): Void {
  }
}
`),
	}
	result, diags := Compile(root, Config{})
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if result == nil {
		t.Fatal("expected a non-nil result")
	}
}

func TestCompileResolvesImportAcrossPackages(t *testing.T) {
	root := MemRoot{
		"main.veny": []byte(`
package main

import models.Point

class Main {
  entry(args: [Text]): Void {
  }
}
`),
		"models/point.veny": []byte(`
package models

class Point {
  pub var x: Int = 0
}
`),
	}
	_, diags := Compile(root, Config{EntryFile: "main.veny"})
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
}

func TestCompileReportsParseError(t *testing.T) {
	root := MemRoot{
		"bad.veny": []byte(`class {`),
	}
	_, diags := Compile(root, Config{})
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %v", len(diags), diags)
	}
}

func TestCompileRejectsBOM(t *testing.T) {
	root := MemRoot{
		"main.veny": append([]byte("\xef\xbb\xbf"), []byte(`
class Main {
  entry(args: [Text]): Void {
  }
}
`)...),
	}
	_, diags := Compile(root, Config{})
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1 for a BOM-prefixed file: %v", len(diags), diags)
	}
}

func TestCompileRejectsMismatchedPackagePath(t *testing.T) {
	root := MemRoot{
		"wrong/place.veny": []byte(`
package models

class Point {
  pub var x: Int = 0
}
`),
	}
	_, diags := Compile(root, Config{})
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1 for a misplaced package: %v", len(diags), diags)
	}
}
