package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/venylang/venyc/diagnostic"
	"github.com/venylang/venyc/parser"
	"github.com/venylang/venyc/source"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a single Veny file and report syntax errors, without resolving imports",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(args[0])
		},
	}
}

func runParse(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read %s: %w", filename, err)
	}

	fset := source.NewFileSet()
	f := fset.AddFile(filename, len(data))
	file, perr := parser.Parse(filename, data, f)
	if perr != nil {
		pe, ok := perr.(*parser.Error)
		if !ok {
			return perr
		}
		fmt.Println(diagnostic.Render(diagnostic.FromParseError(pe, fset)))
		return fmt.Errorf("parse failed")
	}

	fmt.Printf("%s: package %q, %d class(es), %d interface(s)\n",
		filename, file.Package, len(file.Classes), len(file.Interfaces))
	return nil
}
