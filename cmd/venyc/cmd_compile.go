package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/venylang/venyc/config"
	"github.com/venylang/venyc/diagnostic"
	"github.com/venylang/venyc/driver"
)

func newCompileCmd(flags *config.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile [dir]",
		Short: "Compile a Veny source tree and print any diagnostics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runCompile(dir, flags.Config())
		},
	}
	return cmd
}

func runCompile(dir string, cfg config.Config) error {
	cfg = loadProjectFile(dir, cfg)

	root := driver.NewDirRoot(dir)
	_, diags := driver.Compile(root, driver.Config{EntryFile: cfg.EntryFile})
	if err := renderDiagnostics(diags, cfg.Format); err != nil {
		return err
	}
	if hasError(diags) {
		return fmt.Errorf("compilation failed with %d error(s)", countErrors(diags))
	}
	return nil
}

func loadProjectFile(dir string, cfg config.Config) config.Config {
	pf, err := config.LoadProjectFile(filepath.Join(dir, "veny.yaml"))
	if err != nil {
		return cfg
	}
	return cfg.ApplyProjectFile(pf)
}

func renderDiagnostics(diags []diagnostic.Diagnostic, format string) error {
	if len(diags) == 0 {
		return nil
	}
	switch format {
	case "json":
		return diagnostic.NewJSONEncoder(os.Stdout).Encode(diags)
	default:
		fmt.Print(diagnostic.RenderAll(diags))
		return nil
	}
}

func hasError(diags []diagnostic.Diagnostic) bool {
	return countErrors(diags) > 0
}

func countErrors(diags []diagnostic.Diagnostic) int {
	n := 0
	for _, d := range diags {
		if d.Severity == diagnostic.Error {
			n++
		}
	}
	return n
}
