package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/pborman/uuid"
	"github.com/spf13/cobra"

	"github.com/ironsmile/qruuid/src/capacity"
	"github.com/ironsmile/qruuid/src/uuid45"
)

// stdinMarker as an argument means "read the input from stdin".
const stdinMarker = "@-"

func newGenCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "gen",
		Short: "Generate a random UUID v4 and print its code",
		Args:  inputArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := uuid45.New()
			code, err := uuid45.Encode(id)
			if err != nil {
				return err
			}

			if opts.quiet {
				fmt.Fprintln(opts.stdout, code)
				return nil
			}

			fmt.Fprintf(opts.stdout, "Base45: %s\n", code)
			fmt.Fprintf(opts.stdout, "UUID:   %s\n", id)
			fmt.Fprintf(opts.stdout, "Bytes:  %s\n", hex.EncodeToString(id))
			printVersions(opts.stdout, len(code))
			return nil
		},
	}
}

func newEncodeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "encode <UUID|HEX|@->",
		Short: "Encode a UUID into its Base45 code",
		Long: "Encode a UUID into its Base45 code. The input is a canonical UUID\n" +
			"string, 32 hexadecimal digits, or @- to read 16 raw bytes from stdin.",
		Args: inputArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := readUUIDInput(opts.stdin, args[0])
			if err != nil {
				return err
			}

			code := uuid45.EncodeBytes(id)
			if opts.quiet {
				fmt.Fprintln(opts.stdout, code)
			} else {
				fmt.Fprintf(opts.stdout, "Base45: %s\n", code)
			}
			return nil
		},
	}
}

func newDecodeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <CODE|@->",
		Short: "Decode a Base45 code back into a UUID",
		Args:  inputArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]
			if code == stdinMarker {
				raw, err := io.ReadAll(opts.stdin)
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				code = strings.TrimSpace(string(raw))
			}

			raw, err := uuid45.DecodeBytes(code)
			if err != nil {
				return &InputError{Err: err}
			}
			id := uuid.UUID(raw[:])

			if opts.quiet {
				fmt.Fprintln(opts.stdout, id)
				return nil
			}

			fmt.Fprintf(opts.stdout, "UUID:   %s\n", id)
			fmt.Fprintf(opts.stdout, "Bytes:  %s\n", hex.EncodeToString(raw[:]))
			return nil
		},
	}
}

func readUUIDInput(stdin io.Reader, arg string) ([uuid45.Size]byte, error) {
	if arg != stdinMarker {
		id, err := uuid45.ParseInput(arg)
		if err != nil {
			return id, &InputError{Err: err}
		}
		return id, nil
	}

	var id [uuid45.Size]byte
	raw, err := io.ReadAll(stdin)
	if err != nil {
		return id, fmt.Errorf("reading stdin: %w", err)
	}
	if len(raw) != uuid45.Size {
		return id, inputErrorf("stdin must be %d bytes, got %d", uuid45.Size, len(raw))
	}

	copy(id[:], raw)
	return id, nil
}

func printVersions(out io.Writer, length int) {
	parts := make([]string, 0, 4)
	for _, level := range capacity.Levels() {
		v, err := capacity.MinimalVersion(length, level)
		if err != nil {
			parts = append(parts, fmt.Sprintf("%s=-", level))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%d", level, v))
	}
	fmt.Fprintf(out, "QR:     %s\n", strings.Join(parts, " "))
}
