package ast

// ImportSpec names one class or interface imported by a file, either
// as "import a.b.C" (a single type) or "import a.b.*" (every type
// declared in package a.b).
type ImportSpec struct {
	Package  string
	TypeName string // "" when Wildcard is true
	Wildcard bool
	span     Span
}

func NewImportSpec(pkg, typeName string, wildcard bool, span Span) ImportSpec {
	return ImportSpec{Package: pkg, TypeName: typeName, Wildcard: wildcard, span: span}
}

func (i ImportSpec) Span() Span { return i.span }

// Qualified returns the fully qualified name this import resolves to.
// It panics if called on a wildcard import.
func (i ImportSpec) Qualified() string {
	if i.Wildcard {
		panic("ast: Qualified called on a wildcard import")
	}
	if i.Package == "" {
		return i.TypeName
	}
	return i.Package + "." + i.TypeName
}

// File is the tree produced by parsing a single source file.
type File struct {
	Name       string // source file path, used in diagnostics
	Package    string
	Imports    []ImportSpec
	Classes    []*ClassDecl
	Interfaces []*InterfaceDecl
	span       Span
}

func NewFile(name, pkg string, span Span) *File {
	return &File{Name: name, Package: pkg, span: span}
}

func (f *File) Span() Span { return f.span }

// Program is every file that takes part in one compilation, after
// import resolution has merged the files the entry file transitively
// needs.
type Program struct {
	Files []*File
	// EntryPoint is the file resolution started from, set by
	// resolve.Resolve when it assembles the program tree.
	EntryPoint *File
}

// FindClass looks up a class by fully qualified name across every file
// in the program.
func (p *Program) FindClass(fqcn string) (*ClassDecl, bool) {
	for _, f := range p.Files {
		for _, c := range f.Classes {
			if f.qualify(c.Name) == fqcn {
				return c, true
			}
		}
	}
	return nil, false
}

// FindInterface looks up an interface by fully qualified name across
// every file in the program.
func (p *Program) FindInterface(fqcn string) (*InterfaceDecl, bool) {
	for _, f := range p.Files {
		for _, i := range f.Interfaces {
			if f.qualify(i.Name) == fqcn {
				return i, true
			}
		}
	}
	return nil, false
}

func (f *File) qualify(name string) string {
	if f.Package == "" {
		return name
	}
	return f.Package + "." + name
}
