// Package cmd implements the qruuid command line interface.
package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// InputError marks failures caused by invalid user input. The binary exits
// with status 2 for them.
type InputError struct {
	Err error
}

// Error implements the error interface.
func (e *InputError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *InputError) Unwrap() error {
	return e.Err
}

func inputErrorf(format string, args ...any) error {
	return &InputError{Err: fmt.Errorf(format, args...)}
}

// inputArgs wraps an argument validator so that its failures are reported
// as input errors.
func inputArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &InputError{Err: err}
		}
		return nil
	}
}

// IsInputError reports whether err was caused by invalid user input.
func IsInputError(err error) bool {
	var inErr *InputError
	return errors.As(err, &inErr)
}

type options struct {
	stdin  io.Reader
	stdout io.Writer
	quiet  bool
}

// NewRootCommand returns the qruuid command with all of its subcommands.
// Commands read from stdin and print to stdout.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &options{
		stdin:  stdin,
		stdout: stdout,
	}

	root := &cobra.Command{
		Use:   "qruuid",
		Short: "Compact QR friendly codes for UUID v4",
		Long: "qruuid encodes version 4 UUIDs as 24 character Base45 codes which fit\n" +
			"the QR Code alphanumeric mode, and finds the smallest QR symbol version\n" +
			"able to hold an alphanumeric payload.",
		Args:          inputArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &InputError{Err: err}
	})
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false,
		"only print the primary output")

	root.AddCommand(
		newGenCommand(opts),
		newEncodeCommand(opts),
		newDecodeCommand(opts),
		newCapacityCommand(opts),
		newServeCommand(),
		newVersionCommand(opts),
	)

	return root
}
