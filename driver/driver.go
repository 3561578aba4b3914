package driver

import (
	"path"

	"github.com/pkg/errors"

	"github.com/venylang/venyc/ast"
	"github.com/venylang/venyc/diagnostic"
	"github.com/venylang/venyc/internal/logging"
	"github.com/venylang/venyc/parser"
	"github.com/venylang/venyc/resolve"
	"github.com/venylang/venyc/sema"
	"github.com/venylang/venyc/source"
)

var log = logging.Get("driver")

// Config is the subset of config.Config the driver itself consumes.
// It is declared here, rather than imported from package config, so
// that driver has no dependency on the CLI flag layer it is wired
// under.
type Config struct {
	// EntryFile is the file, relative to Root, holding the program's
	// entry class. If empty, Compile resolves imports starting from the
	// first file found and analyzes every file under Root as one program.
	EntryFile string
}

// Compile discovers every .veny file under root, parses it, validates
// its declared package against its directory, resolves imports
// transitively starting from cfg.EntryFile (or, if unset, analyzes the
// whole tree as a single merged program) and runs semantic analysis.
//
// It returns whatever partial sema.Result it managed to build even
// when diagnostics are non-empty, the way a language server wants: a
// program with a dangling reference still has a Symbols table for
// everything that did resolve.
func Compile(root SourceRoot, cfg Config) (*sema.Result, []diagnostic.Diagnostic) {
	log.Debugf("discovering source files")
	fset := source.NewFileSet()
	files, err := parseAll(root, fset)
	if err != nil {
		return nil, []diagnostic.Diagnostic{diagnostic.FromResolveError(err)}
	}
	if len(files) == 0 {
		return nil, nil
	}
	log.Infof("parsed %d source file(s)", len(files))

	var diags []diagnostic.Diagnostic
	for _, pf := range files {
		if pf.err != nil {
			diags = append(diags, diagnostic.FromParseError(pf.err, fset))
			continue
		}
		if !checkPackagePath(pf.file.Package, path.Dir(pf.path)) && path.Dir(pf.path) != "." {
			diags = append(diags, diagnostic.Diagnostic{
				Severity: diagnostic.Error,
				Position: fset.Position(pf.file.Span().Start),
				Message:  "package " + pf.file.Package + " does not match its directory " + path.Dir(pf.path),
				Phase:    diagnostic.PhaseDriver,
			})
		}
	}
	if len(diags) > 0 {
		return nil, diags
	}

	entry := files[0]
	if cfg.EntryFile != "" {
		found := false
		for _, pf := range files {
			if pf.path == cfg.EntryFile {
				entry = pf
				found = true
				break
			}
		}
		if !found {
			return nil, []diagnostic.Diagnostic{{
				Severity: diagnostic.Error,
				Message:  "entry file " + cfg.EntryFile + " not found under source root",
				Phase:    diagnostic.PhaseDriver,
			}}
		}
	}

	loader := &rootLoader{root: root, fset: fset, loaded: map[string]*ast.File{}}
	for _, pf := range files {
		loader.loaded[pf.path] = pf.file
	}
	prog, err := resolve.Resolve(entry.file, loader)
	if err != nil {
		log.Errorf("import resolution failed: %v", err)
		return nil, []diagnostic.Diagnostic{diagnostic.FromResolveError(err)}
	}
	if cfg.EntryFile == "" {
		seen := map[*ast.File]bool{}
		for _, f := range prog.Files {
			seen[f] = true
		}
		for _, pf := range files {
			if !seen[pf.file] {
				seen[pf.file] = true
				prog.Files = append(prog.Files, pf.file)
			}
		}
	}
	log.Debugf("resolved program to %d file(s)", len(prog.Files))

	result, errs := sema.Analyze(prog, fset)
	if len(errs) > 0 {
		log.Infof("analysis found %d error(s)", len(errs))
	}
	return result, diagnostic.FromSemaErrors(errs)
}

type parsedFile struct {
	path string
	file *ast.File
	err  *parser.Error
}

func parseAll(root SourceRoot, fset *source.FileSet) ([]*parsedFile, error) {
	var out []*parsedFile
	err := root.Walk(func(relPath string) error {
		data, ok, err := root.Open(relPath)
		if err != nil {
			return err
		}
		if !ok {
			return errors.Errorf("%s: vanished while walking source root", relPath)
		}
		if err := validateUTF8(relPath, data); err != nil {
			return err
		}
		f := fset.AddFile(relPath, len(data))
		file, perr := parser.Parse(relPath, data, f)
		pf := &parsedFile{path: relPath}
		if perr != nil {
			pf.err, _ = perr.(*parser.Error)
			if pf.err == nil {
				return perr
			}
		} else {
			pf.file = file
		}
		out = append(out, pf)
		return nil
	})
	return out, err
}

// rootLoader adapts a SourceRoot into a resolve.FileLoader by turning
// each requested (package, type) pair into the file path the package
// path convention says it lives at; when no file exists there, it
// scans the package's directory for the file that declares the type.
type rootLoader struct {
	root   SourceRoot
	fset   *source.FileSet
	loaded map[string]*ast.File
}

func (l *rootLoader) Load(pkg, typeName string) (*ast.File, error) {
	p := filePathFor(pkg, typeName)
	if f, ok := l.loaded[p]; ok {
		return f, nil
	}
	data, ok, err := l.root.Open(p)
	if err != nil {
		return nil, err
	}
	if !ok {
		files, perr := l.LoadPackage(pkg)
		if perr != nil {
			return nil, perr
		}
		for _, f := range files {
			for _, c := range f.Classes {
				if c.Name == typeName {
					return f, nil
				}
			}
			for _, i := range f.Interfaces {
				if i.Name == typeName {
					return f, nil
				}
			}
		}
		return nil, errors.Errorf("no file at %s", p)
	}
	fpm := l.fset.AddFile(p, len(data))
	file, err := parser.Parse(p, data, fpm)
	if err != nil {
		return nil, err
	}
	l.loaded[p] = file
	return file, nil
}

func (l *rootLoader) LoadPackage(pkg string) ([]*ast.File, error) {
	dir := packagePathFor(pkg)
	var files []*ast.File
	err := l.root.Walk(func(relPath string) error {
		if path.Dir(relPath) != dir {
			return nil
		}
		if f, ok := l.loaded[relPath]; ok {
			files = append(files, f)
			return nil
		}
		data, ok, err := l.root.Open(relPath)
		if err != nil || !ok {
			return err
		}
		fpm := l.fset.AddFile(relPath, len(data))
		file, err := parser.Parse(relPath, data, fpm)
		if err != nil {
			return err
		}
		l.loaded[relPath] = file
		files = append(files, file)
		return nil
	})
	return files, err
}

func filePathFor(pkg, typeName string) string {
	dir := packagePathFor(pkg)
	name := typeName + ".veny"
	if dir == "" {
		return name
	}
	return path.Join(dir, name)
}
