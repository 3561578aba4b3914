package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func TestLoadProjectFileMissingIsNotError(t *testing.T) {
	pf, err := LoadProjectFile(filepath.Join(t.TempDir(), "veny.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pf != nil {
		t.Fatalf("expected nil ProjectFile for a missing file, got %+v", pf)
	}
}

func TestLoadProjectFileParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "veny.yaml")
	content := "name: demo\nsrcDir: src\nstdlibRoot: /opt/veny/stdlib\nentryFile: main.veny\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	pf, err := LoadProjectFile(path)
	if err != nil {
		t.Fatalf("LoadProjectFile: %v", err)
	}
	if pf.Name != "demo" || pf.SrcDir != "src" || pf.StdlibRoot != "/opt/veny/stdlib" || pf.EntryFile != "main.veny" {
		t.Fatalf("unexpected ProjectFile: %+v", pf)
	}
}

func TestApplyProjectFileDoesNotOverrideFlags(t *testing.T) {
	cfg := Config{StdlibRoot: "/from/flag"}
	pf := &ProjectFile{StdlibRoot: "/from/yaml"}
	got := cfg.ApplyProjectFile(pf)
	if got.StdlibRoot != "/from/flag" {
		t.Fatalf("ApplyProjectFile overrode an explicit flag: %q", got.StdlibRoot)
	}
}

func TestApplyProjectFileFillsUnsetFields(t *testing.T) {
	cfg := Config{}
	pf := &ProjectFile{StdlibRoot: "/from/yaml", EntryFile: "main.veny"}
	got := cfg.ApplyProjectFile(pf)
	if got.StdlibRoot != "/from/yaml" || got.EntryFile != "main.veny" {
		t.Fatalf("ApplyProjectFile did not fill unset fields: %+v", got)
	}
}

func TestRegisterFlagsDefaults(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f := RegisterFlags(fs)
	if err := fs.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cfg := f.Config()
	if cfg.Format != "text" {
		t.Fatalf("default format = %q, want text", cfg.Format)
	}
}

func TestRegisterFlagsOverride(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f := RegisterFlags(fs)
	if err := fs.Parse([]string{"--format", "json", "--stdlib-root", "/lib"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cfg := f.Config()
	if cfg.Format != "json" || cfg.StdlibRoot != "/lib" {
		t.Fatalf("unexpected Config after parsing flags: %+v", cfg)
	}
}
