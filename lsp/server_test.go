package lsp

import (
	"sort"
	"testing"

	"github.com/venylang/venyc/diagnostic"
	"github.com/venylang/venyc/driver"
	"github.com/venylang/venyc/source"
)

func TestURIRoundTrip(t *testing.T) {
	path, err := uriToPath("file:///tmp/foo.veny")
	if err != nil {
		t.Fatalf("uriToPath: %v", err)
	}
	if path != "/tmp/foo.veny" {
		t.Fatalf("uriToPath() = %q, want /tmp/foo.veny", path)
	}
	if pathToURI(path) != "file:///tmp/foo.veny" {
		t.Fatalf("pathToURI() = %q", pathToURI(path))
	}
}

func TestUriToPathPassesThroughNonFileURI(t *testing.T) {
	path, err := uriToPath("untitled:Untitled-1")
	if err != nil {
		t.Fatalf("uriToPath: %v", err)
	}
	if path != "untitled:Untitled-1" {
		t.Fatalf("uriToPath() = %q", path)
	}
}

func TestOverlayRootPrefersOverlay(t *testing.T) {
	base := driver.MemRoot{"main.veny": []byte("on disk")}
	overlay := map[string][]byte{"main.veny": []byte("unsaved edit")}
	root := &overlayRoot{base: base, overlay: overlay}

	data, ok, err := root.Open("main.veny")
	if err != nil || !ok {
		t.Fatalf("Open: ok=%v err=%v", ok, err)
	}
	if string(data) != "unsaved edit" {
		t.Fatalf("Open() = %q, want unsaved edit", data)
	}
}

func TestOverlayRootWalkIncludesNewFile(t *testing.T) {
	base := driver.MemRoot{"main.veny": []byte("x")}
	overlay := map[string][]byte{"scratch.veny": []byte("y")}
	root := &overlayRoot{base: base, overlay: overlay}

	var seen []string
	err := root.Walk(func(relPath string) error {
		seen = append(seen, relPath)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	sort.Strings(seen)
	if len(seen) != 2 || seen[0] != "main.veny" || seen[1] != "scratch.veny" {
		t.Fatalf("Walk() visited %v", seen)
	}
}

func TestToProtocolDiagnosticConvertsPosition(t *testing.T) {
	d := diagnostic.Diagnostic{
		Severity: diagnostic.Error,
		Position: source.Position{File: "a.veny", Line: 3, Column: 5},
		Message:  "bad",
	}
	pd := toProtocolDiagnostic(d)
	if pd.Range.Start.Line != 2 || pd.Range.Start.Character != 4 {
		t.Fatalf("unexpected range: %+v", pd.Range)
	}
	if pd.Message != "bad" {
		t.Fatalf("unexpected message: %q", pd.Message)
	}
}
