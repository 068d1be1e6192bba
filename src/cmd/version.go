package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ironsmile/qruuid/src/version"
)

func newVersionCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  inputArgs(cobra.NoArgs),
		Run: func(cmd *cobra.Command, args []string) {
			version.Print(opts.stdout)
		},
	}
}
