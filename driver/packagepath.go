package driver

import (
	"path"
	"strings"

	"github.com/iancoleman/strcase"
)

// packagePathFor returns the directory path, relative to the source
// root, that a file declaring the given package must live under:
// "company.app.models" normalizes to "company/app/models", the same
// snake/path folding strcase applies to the rest of the identifiers the
// compiler normalizes.
func packagePathFor(pkg string) string {
	if pkg == "" {
		return ""
	}
	parts := strings.Split(pkg, ".")
	for i, p := range parts {
		parts[i] = strcase.ToSnake(p)
	}
	return path.Join(parts...)
}

// checkPackagePath reports whether a file declaring pkg, found at
// relDir (its directory relative to the source root, using "/"
// separators), lives where its package declaration says it should.
func checkPackagePath(pkg, relDir string) bool {
	want := packagePathFor(pkg)
	segs := strings.Split(relDir, "/")
	for i, s := range segs {
		segs[i] = strcase.ToSnake(s)
	}
	got := path.Join(segs...)
	return want == got
}
