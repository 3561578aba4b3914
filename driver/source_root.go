// Package driver wires the lexer, parser, resolver and analyzer into a
// single Compile entry point, the way the host toolchain's own
// cmd_compile.go drives javac: discover source files under a root,
// parse each, resolve imports transitively and hand the merged program
// to the analyzer.
package driver

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// SourceRoot locates the bytes of a .veny file given its fully
// qualified path ("pkg/sub/Type.veny" relative to the root). Tests use
// an in-memory implementation so the parser and resolver can be
// exercised without touching a filesystem.
type SourceRoot interface {
	// Open returns the contents of the file at fqcnPath, or ok=false if
	// no such file exists.
	Open(fqcnPath string) (content []byte, ok bool, err error)
	// Walk visits every .veny file under the root, in an unspecified
	// order, calling fn with the file's path relative to the root.
	Walk(fn func(relPath string) error) error
}

// DirRoot is a SourceRoot backed by a real directory tree.
type DirRoot struct {
	Dir string
}

func NewDirRoot(dir string) *DirRoot { return &DirRoot{Dir: dir} }

func (r *DirRoot) Open(fqcnPath string) ([]byte, bool, error) {
	full := filepath.Join(r.Dir, filepath.FromSlash(fqcnPath))
	data, err := os.ReadFile(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, "read %s", full)
	}
	return data, true, nil
}

func (r *DirRoot) Walk(fn func(relPath string) error) error {
	return filepath.WalkDir(r.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".veny") {
			return nil
		}
		rel, err := filepath.Rel(r.Dir, path)
		if err != nil {
			return err
		}
		return fn(filepath.ToSlash(rel))
	})
}

// MemRoot is an in-memory SourceRoot keyed by relative path, used by
// tests that want full driver behavior without a filesystem.
type MemRoot map[string][]byte

func (r MemRoot) Open(fqcnPath string) ([]byte, bool, error) {
	data, ok := r[fqcnPath]
	return data, ok, nil
}

func (r MemRoot) Walk(fn func(relPath string) error) error {
	for path := range r {
		if err := fn(path); err != nil {
			return err
		}
	}
	return nil
}

// validateUTF8 rejects a byte-order mark and any U+FFFD replacement
// character, the two signs that a file was not read as clean UTF-8.
func validateUTF8(name string, data []byte) error {
	const bom = "\xef\xbb\xbf"
	if bytes.HasPrefix(data, []byte(bom)) {
		return errors.Errorf("%s: file starts with a UTF-8 byte-order mark", name)
	}
	if bytes.ContainsRune(data, '�') {
		return errors.Errorf("%s: file contains an invalid UTF-8 byte sequence", name)
	}
	return nil
}
