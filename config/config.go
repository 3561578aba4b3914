// Package config is the compiler's layered configuration surface: a
// global flag set, populated by cobra/pflag the way the host
// toolchain's own cmd/sai wires its flags, plus an optional veny.yaml
// project descriptor a source root may carry, the yaml counterpart of
// the host toolchain's pom.xml project model.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const stdlibRootEnvVar = "VENYC_STDLIB_ROOT"

// Config is the resolved configuration for one compiler invocation,
// built from defaults, an optional veny.yaml and command-line flags,
// in that order of increasing precedence.
type Config struct {
	// StdlibRoot names a standard-library source root. It is recorded
	// here only: driver.Compile does not receive it, and imports are
	// resolved against the compiled source root alone.
	StdlibRoot string
	// DevOverrideRoot names a working copy of the standard library. Like
	// StdlibRoot it is recorded but not read by import resolution.
	DevOverrideRoot string
	// Format selects how driver diagnostics are rendered: "text" (the
	// default, via diagnostic.Render) or "json" (via
	// diagnostic.JSONEncoder).
	Format string
	// EntryFile is the file, relative to the source root, declaring the
	// program's entry class. Empty means "analyze every file found".
	EntryFile string
}

// Default returns a Config with VENYC_STDLIB_ROOT applied, Format set
// to "text" and every other field at its zero value.
func Default() Config {
	return Config{
		StdlibRoot: os.Getenv(stdlibRootEnvVar),
		Format:     "text",
	}
}

// ProjectFile is the shape of a veny.yaml project descriptor: a
// name, its source directory, an optional stdlib root path and an
// optional entry file, enough for a project to declare where its own
// sources live without every invocation repeating --stdlib-root on the
// command line.
type ProjectFile struct {
	Name       string `yaml:"name"`
	SrcDir     string `yaml:"srcDir"`
	StdlibRoot string `yaml:"stdlibRoot,omitempty"`
	EntryFile  string `yaml:"entryFile,omitempty"`
}

// LoadProjectFile reads and parses a veny.yaml descriptor at path. A
// missing file is not an error: projects are not required to carry
// one, the same way a source root with no pom.xml is still a valid
// Maven-less layout in the host toolchain.
func LoadProjectFile(path string) (*ProjectFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var pf ProjectFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, err
	}
	return &pf, nil
}

// ApplyProjectFile overlays the fields a veny.yaml descriptor sets
// onto cfg, without overwriting anything already set by a flag (flags
// always win over the project file).
func (c Config) ApplyProjectFile(pf *ProjectFile) Config {
	if pf == nil {
		return c
	}
	if c.StdlibRoot == "" && pf.StdlibRoot != "" {
		c.StdlibRoot = pf.StdlibRoot
	}
	if c.EntryFile == "" && pf.EntryFile != "" {
		c.EntryFile = pf.EntryFile
	}
	return c
}
