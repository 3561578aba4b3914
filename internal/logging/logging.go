// Package logging wires the compiler's structured logging onto
// tliron/commonlog, the same logging façade glsp itself uses, via the
// simple backend the host toolchain's own LSP integration registers
// with a blank import. Logging is phase-boundary only: one line per
// compile, parse, resolve or analysis pass, never per-token or
// per-node.
package logging

import (
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

func init() {
	commonlog.Configure(1, nil)
}

// Get returns the logger for one named component, e.g. "driver" or
// "lsp". Components call this once at package init and keep the
// result, the way commonlog is meant to be used.
func Get(name string) commonlog.Logger {
	return commonlog.GetLogger(name)
}
