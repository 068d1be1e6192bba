package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ironsmile/qruuid/src/capacity"
)

func newCapacityCommand(opts *options) *cobra.Command {
	var (
		levelName string
		text      string
	)

	cmd := &cobra.Command{
		Use:   "capacity [--level L] <length> | --text STRING",
		Short: "Find the smallest QR version for an alphanumeric payload",
		Args:  inputArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := capacity.ParseLevel(levelName)
			if err != nil {
				return &InputError{Err: err}
			}

			length, err := capacityLength(args, text, cmd.Flags().Changed("text"))
			if err != nil {
				return err
			}

			version, err := capacity.MinimalVersion(length, level)
			if err != nil {
				return &InputError{Err: err}
			}

			if opts.quiet {
				fmt.Fprintln(opts.stdout, version)
				return nil
			}

			limit, err := capacity.Capacity(level, version)
			if err != nil {
				return err
			}
			fmt.Fprintf(opts.stdout, "Level:    %s\n", level)
			fmt.Fprintf(opts.stdout, "Length:   %d\n", length)
			fmt.Fprintf(opts.stdout, "Version:  %d\n", version)
			fmt.Fprintf(opts.stdout, "Bits:     %d\n", capacity.BitCost(length, version))
			fmt.Fprintf(opts.stdout, "Capacity: %d\n", limit)
			return nil
		},
	}

	cmd.Flags().StringVarP(&levelName, "level", "l", capacity.M.String(),
		"error-correction level: L, M, Q or H")
	cmd.Flags().StringVarP(&text, "text", "t", "",
		"payload to measure instead of a length")

	return cmd
}

func capacityLength(args []string, text string, hasText bool) (int, error) {
	switch {
	case hasText && len(args) > 0:
		return 0, inputErrorf("give either a length or --text, not both")
	case hasText:
		if !capacity.IsAlphanumeric(text) {
			return 0, inputErrorf("text contains characters outside the QR alphanumeric set")
		}
		return len(text), nil
	case len(args) == 0:
		return 0, inputErrorf("a length or --text is required")
	}

	length, err := strconv.Atoi(args[0])
	if err != nil || length < 0 {
		return 0, inputErrorf("length must be a non-negative integer, got %q", args[0])
	}
	return length, nil
}
