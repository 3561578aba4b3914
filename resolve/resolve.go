// Package resolve turns a single parsed entry file into a complete
// ast.Program by pulling in, transitively, every file its imports
// require. Resolution proceeds breadth-first over a worklist of
// (package, type) pairs so that a diamond of imports only loads each
// file once. Once every file is loaded, two independent passes look
// for cycles: one over the raw import graph (two files importing each
// other, directly or through a chain, regardless of inheritance), the
// other over each class's ext chain and each interface's parent
// interfaces (either of which can cycle within
// a single package without any import ever being involved).
package resolve

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/venylang/venyc/ast"
)

// FileLoader locates and parses the file that declares one imported
// type. Implementations typically wrap a driver.SourceRoot.
type FileLoader interface {
	// Load parses and returns the file declaring pkg.typeName.
	Load(pkg, typeName string) (*ast.File, error)
	// LoadPackage parses and returns every file declared under pkg,
	// for a wildcard import.
	LoadPackage(pkg string) ([]*ast.File, error)
}

// ImportResolutionError reports an import that could not be satisfied,
// either because the named file does not exist or because parsing it
// failed.
type ImportResolutionError struct {
	Package  string
	TypeName string
	FromFile string
	Cause    error
}

func (e *ImportResolutionError) Error() string {
	return fmt.Sprintf("%s: cannot resolve import %s.%s: %v", e.FromFile, e.Package, e.TypeName, e.Cause)
}

func (e *ImportResolutionError) Unwrap() error { return e.Cause }

// CircularImportError reports a cycle: files that import each other,
// directly or through a chain, or a class or interface that extends
// itself, directly or indirectly.
type CircularImportError struct {
	Chain []string // fully qualified names, in cycle order
}

func (e *CircularImportError) Error() string {
	s := "circular dependency: "
	for i, name := range e.Chain {
		if i > 0 {
			s += " -> "
		}
		s += name
	}
	return s
}

type workItem struct {
	pkg      string
	typeName string
	wildcard bool
	fromFile string
}

// Resolve builds the full program reachable from entry.
func Resolve(entry *ast.File, loader FileLoader) (*ast.Program, error) {
	prog := &ast.Program{Files: []*ast.File{entry}, EntryPoint: entry}
	seenFiles := map[*ast.File]bool{entry: true}
	seenTypes := map[string]bool{}
	seenPackages := map[string]bool{}

	var worklist []workItem
	enqueue := func(f *ast.File) {
		for _, imp := range f.Imports {
			if imp.Wildcard {
				worklist = append(worklist, workItem{pkg: imp.Package, wildcard: true, fromFile: f.Name})
			} else {
				worklist = append(worklist, workItem{pkg: imp.Package, typeName: imp.TypeName, fromFile: f.Name})
			}
		}
	}
	enqueue(entry)

	for len(worklist) > 0 {
		item := worklist[0]
		worklist = worklist[1:]

		if item.wildcard {
			if seenPackages[item.pkg] {
				continue
			}
			seenPackages[item.pkg] = true
			files, err := loader.LoadPackage(item.pkg)
			if err != nil {
				return nil, &ImportResolutionError{Package: item.pkg, TypeName: "*", FromFile: item.fromFile, Cause: errors.Wrap(err, "load package")}
			}
			for _, f := range files {
				if seenFiles[f] {
					continue
				}
				seenFiles[f] = true
				prog.Files = append(prog.Files, f)
				enqueue(f)
			}
			continue
		}

		fqcn := item.pkg + "." + item.typeName
		if seenTypes[fqcn] {
			continue
		}
		seenTypes[fqcn] = true

		file, err := loader.Load(item.pkg, item.typeName)
		if err != nil {
			return nil, &ImportResolutionError{Package: item.pkg, TypeName: item.typeName, FromFile: item.fromFile, Cause: errors.Wrap(err, "load file")}
		}
		if seenFiles[file] {
			continue
		}
		seenFiles[file] = true
		prog.Files = append(prog.Files, file)
		enqueue(file)
	}

	if err := checkImportCycles(prog); err != nil {
		return nil, err
	}
	if err := checkInheritanceCycles(prog); err != nil {
		return nil, err
	}

	return prog, nil
}

// checkImportCycles walks the raw import graph (file imports file,
// regardless of what it does with what it imports) with a
// currently-on-stack marker, the same "compiling now" idea a
// recursive-descent loader would use to reject a file that is still
// being resolved further up the call chain. Revisiting a file that has
// already finished (but is not on the current path) is an ordinary
// diamond and not reported.
func checkImportCycles(prog *ast.Program) error {
	owner := map[string]*ast.File{}
	byPackage := map[string][]*ast.File{}
	for _, f := range prog.Files {
		byPackage[f.Package] = append(byPackage[f.Package], f)
		for _, c := range f.Classes {
			owner[qualify(f, c.Name)] = f
		}
		for _, i := range f.Interfaces {
			owner[qualify(f, i.Name)] = f
		}
	}

	visited := map[*ast.File]bool{}
	onStack := map[*ast.File]bool{}

	var visit func(f *ast.File, path []string) error
	visit = func(f *ast.File, path []string) error {
		if onStack[f] {
			return &CircularImportError{Chain: append(path, fileLabel(f))}
		}
		if visited[f] {
			return nil
		}
		visited[f] = true
		onStack[f] = true
		defer func() { onStack[f] = false }()

		path = append(path, fileLabel(f))
		for _, imp := range f.Imports {
			if imp.Wildcard {
				for _, target := range byPackage[imp.Package] {
					if err := visit(target, path); err != nil {
						return err
					}
				}
				continue
			}
			target, ok := owner[imp.Qualified()]
			if !ok {
				continue
			}
			if err := visit(target, path); err != nil {
				return err
			}
		}
		return nil
	}

	for _, f := range prog.Files {
		if err := visit(f, nil); err != nil {
			return err
		}
	}
	return nil
}

// checkInheritanceCycles walks every class's ext chain and every
// interface's parent interfaces looking for a name that reappears on
// the current path.
func checkInheritanceCycles(prog *ast.Program) error {
	classParent := map[string]string{}
	ifaceParents := map[string][]string{}

	for _, f := range prog.Files {
		for _, c := range f.Classes {
			if c.Parent != "" {
				classParent[qualify(f, c.Name)] = qualifyRef(f, c.Parent)
			}
		}
		for _, i := range f.Interfaces {
			fqcn := qualify(f, i.Name)
			for _, p := range i.Parents {
				ifaceParents[fqcn] = append(ifaceParents[fqcn], qualifyRef(f, p))
			}
		}
	}

	for name := range classParent {
		if chain, cyclic := walkClassChain(name, classParent); cyclic {
			return &CircularImportError{Chain: chain}
		}
	}
	for name := range ifaceParents {
		if chain, cyclic := walkInterfaceChain(name, ifaceParents, map[string]bool{}, nil); cyclic {
			return &CircularImportError{Chain: chain}
		}
	}
	return nil
}

func walkClassChain(start string, parent map[string]string) ([]string, bool) {
	visited := map[string]bool{}
	var chain []string
	cur := start
	for {
		if visited[cur] {
			return append(chain, cur), true
		}
		visited[cur] = true
		chain = append(chain, cur)
		next, ok := parent[cur]
		if !ok {
			return nil, false
		}
		cur = next
	}
}

func walkInterfaceChain(cur string, parents map[string][]string, onPath map[string]bool, chain []string) ([]string, bool) {
	if onPath[cur] {
		return append(chain, cur), true
	}
	onPath[cur] = true
	chain = append(chain, cur)
	for _, p := range parents[cur] {
		if c, cyclic := walkInterfaceChain(p, parents, onPath, chain); cyclic {
			return c, true
		}
	}
	onPath[cur] = false
	return nil, false
}

// fileLabel names a file by its first declared class or interface, for
// CircularImportError messages; a file with no declarations falls back
// to its path.
func fileLabel(f *ast.File) string {
	for _, c := range f.Classes {
		return qualify(f, c.Name)
	}
	for _, i := range f.Interfaces {
		return qualify(f, i.Name)
	}
	return f.Name
}

// qualify returns the fully qualified name of a type declared in f.
func qualify(f *ast.File, name string) string {
	if f.Package == "" {
		return name
	}
	return f.Package + "." + name
}

// qualifyRef resolves a parent/interface reference as written in
// source: a name matching a single-type import of the declaring file
// takes that import's package; otherwise, if it contains a dot it is
// treated as fully qualified, and if not it is assumed to live in the
// declaring file's own package.
func qualifyRef(f *ast.File, ref string) string {
	for _, imp := range f.Imports {
		if !imp.Wildcard && imp.TypeName == ref {
			return imp.Qualified()
		}
	}
	if containsDot(ref) {
		return ref
	}
	return qualify(f, ref)
}

func containsDot(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return true
		}
	}
	return false
}
