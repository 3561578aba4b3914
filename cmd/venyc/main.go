// Command venyc is the Veny compiler front-end: a cobra command tree
// over the driver/sema/parser core, adapted from the host toolchain's
// own cmd/sai tree.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/venylang/venyc/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var flags *config.Flags
	root := &cobra.Command{
		Use:   "venyc [dir]",
		Short: "The Veny compiler front-end",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runCompile(dir, flags.Config())
		},
	}

	flags = config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(newCompileCmd(flags))
	root.AddCommand(newParseCmd())
	root.AddCommand(newCheckCmd(flags))
	root.AddCommand(newLSPCmd())

	return root
}
