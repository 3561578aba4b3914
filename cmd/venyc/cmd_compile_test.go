package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/venylang/venyc/config"
)

func TestRunCompileSucceedsOnCleanProject(t *testing.T) {
	dir := t.TempDir()
	src := `
package main

class Main {
  entry(args: [Text]): Void {
  }
}
`
	if err := os.WriteFile(filepath.Join(dir, "main.veny"), []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runCompile(dir, config.Default()); err != nil {
		t.Fatalf("runCompile: %v", err)
	}
}

func TestRunCompileReportsAnalysisErrors(t *testing.T) {
	dir := t.TempDir()
	src := `
package demo

class Foo {
  run(): Int {
    return missing
  }
}
`
	if err := os.WriteFile(filepath.Join(dir, "foo.veny"), []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runCompile(dir, config.Default()); err == nil {
		t.Fatal("expected an error for an undefined name")
	}
}
