// Package lsp is a thin editor-protocol front-end over the compiler
// core, the way the host toolchain's own java/codebase.LSPServer wraps
// glsp: one long-lived workspace, recompiled whenever a document is
// opened, changed or saved, with diagnostics pushed back to the
// client. It owns no lexing, parsing or typing logic of its own.
package lsp

import (
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/venylang/venyc/diagnostic"
	"github.com/venylang/venyc/driver"
)

const serverName = "venyc"

// Server is one LSP session over a single workspace root.
type Server struct {
	handler protocol.Handler
	server  *server.Server
	version string

	mu      sync.RWMutex
	rootDir string
	overlay map[string][]byte // path relative to rootDir -> unsaved editor contents
}

// NewServer returns an LSP server that will recompile against rootDir
// once initialized.
func NewServer(version string) *Server {
	ls := &Server{version: version, overlay: map[string][]byte{}}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
	}

	ls.server = server.NewServer(&ls.handler, serverName, false)
	return ls
}

// RunStdio runs the server over stdin/stdout, the transport every LSP
// client expects from a locally spawned language server.
func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	root := "."
	if params.RootPath != nil && *params.RootPath != "" {
		root = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if p, err := uriToPath(*params.RootURI); err == nil {
			root = p
		}
	}

	ls.mu.Lock()
	ls.rootDir = root
	ls.mu.Unlock()

	capabilities := ls.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    intPtr(int(protocol.TextDocumentSyncKindFull)),
		Save:      &protocol.SaveOptions{IncludeText: boolPtr(true)},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error { return nil }

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	ls.updateFile(path, []byte(params.TextDocument.Text))
	ls.publish(ctx, path)
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.updateFile(path, []byte(whole.Text))
		}
	}
	ls.publish(ctx, path)
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	return nil
}

func (ls *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if params.Text != nil {
		ls.updateFile(path, []byte(*params.Text))
	}
	ls.publish(ctx, path)
	return nil
}

func (ls *Server) updateFile(path string, content []byte) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	rel, err := ls.relPath(path)
	if err != nil {
		return
	}
	ls.overlay[rel] = content
}

// relPath turns an absolute editor path into one relative to the
// workspace root, using "/" separators to match driver.SourceRoot.
func (ls *Server) relPath(path string) (string, error) {
	rel, err := filepath.Rel(ls.rootDir, path)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// publish recompiles the whole workspace and pushes the diagnostics
// that belong to path back to the client. Recompiling the whole
// workspace rather than just one file keeps cross-file references
// (imports, inheritance) correct at the cost of redoing work a more
// incremental server would cache; the workspaces this targets are
// small enough that this is not a problem in practice.
func (ls *Server) publish(ctx *glsp.Context, path string) {
	ls.mu.RLock()
	rootDir := ls.rootDir
	overlay := make(map[string][]byte, len(ls.overlay))
	for k, v := range ls.overlay {
		overlay[k] = v
	}
	ls.mu.RUnlock()

	root := &overlayRoot{base: driver.NewDirRoot(rootDir), overlay: overlay}
	_, diags := driver.Compile(root, driver.Config{})

	rel, err := ls.relPath(path)
	if err != nil {
		return
	}

	var protoDiags []protocol.Diagnostic
	for _, d := range diags {
		if d.Position.File != rel {
			continue
		}
		protoDiags = append(protoDiags, toProtocolDiagnostic(d))
	}
	if protoDiags == nil {
		protoDiags = []protocol.Diagnostic{}
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         pathToURI(path),
		Diagnostics: protoDiags,
	})
}

func toProtocolDiagnostic(d diagnostic.Diagnostic) protocol.Diagnostic {
	sev := protocol.DiagnosticSeverityError
	switch d.Severity {
	case diagnostic.Warning:
		sev = protocol.DiagnosticSeverityWarning
	case diagnostic.Info:
		sev = protocol.DiagnosticSeverityInformation
	}
	line := uint32(0)
	col := uint32(0)
	if d.Position.IsValid() {
		line = uint32(d.Position.Line - 1)
		col = uint32(d.Position.Column - 1)
	}
	source := serverName
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: col},
			End:   protocol.Position{Line: line, Character: col},
		},
		Severity: &sev,
		Source:   &source,
		Message:  d.Message,
	}
}

// overlayRoot is a driver.SourceRoot that serves unsaved editor
// buffers in preference to whatever is on disk.
type overlayRoot struct {
	base    driver.SourceRoot
	overlay map[string][]byte
}

func (r *overlayRoot) Open(fqcnPath string) ([]byte, bool, error) {
	if data, ok := r.overlay[fqcnPath]; ok {
		return data, true, nil
	}
	return r.base.Open(fqcnPath)
}

func (r *overlayRoot) Walk(fn func(relPath string) error) error {
	visited := map[string]bool{}
	err := r.base.Walk(func(relPath string) error {
		visited[relPath] = true
		return fn(relPath)
	})
	if err != nil {
		return err
	}
	for relPath := range r.overlay {
		if visited[relPath] {
			continue
		}
		if err := fn(relPath); err != nil {
			return err
		}
	}
	return nil
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func pathToURI(path string) string {
	return "file://" + filepath.ToSlash(path)
}

func boolPtr(b bool) *bool { return &b }

func intPtr(i int) *protocol.TextDocumentSyncKind {
	v := protocol.TextDocumentSyncKind(i)
	return &v
}
