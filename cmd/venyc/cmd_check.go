package main

import (
	"github.com/spf13/cobra"

	"github.com/venylang/venyc/config"
)

func newCheckCmd(flags *config.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "check <dir>",
		Short: "Compile a Veny source tree and print diagnostics, without invoking a back end",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(args[0], flags.Config())
		},
	}
}
