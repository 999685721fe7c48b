package cli

import (
	"github.com/spf13/cobra"

	"github.com/thesyncim/axcl"
)

// DecodeOptions holds flags for the decode command.
type DecodeOptions struct {
	Hex           bool
	Discriminants map[string]int64
}

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DecodeOptions{}

	cmd := &cobra.Command{
		Use:   "decode <type> [file]",
		Short: "Decode a native record into a dict",
		Long: `Decode the native byte image of a record type (from file or stdin) into
a dict with public keys. The input length must equal the record size.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) > 1 {
				path = args[1]
			}
			return runDecode(rootOpts, opts, args[0], path, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Hex, "hex", false, "input is hex text")
	cmd.Flags().StringToInt64VarP(&opts.Discriminants, "discriminant", "d", nil,
		"discriminant for unions without one in the record (name=value)")

	return cmd
}

func runDecode(rootOpts *RootOptions, opts *DecodeOptions, name, path string, cmd *cobra.Command) error {
	t, err := axcl.LookupType(name)
	if err != nil {
		return WrapExitError(ExitCommandError, "decode", err)
	}
	data, err := readInput(path, cmd.InOrStdin())
	if err != nil {
		return WrapExitError(ExitCommandError, "read input", err)
	}
	if opts.Hex {
		if data, err = parseHex(data); err != nil {
			return WrapExitError(ExitCommandError, "read input", err)
		}
	}

	rec, err := axcl.RecordFromBytes(t, data)
	if err != nil {
		return WrapExitError(ExitCommandError, "decode "+t.Name(), err)
	}
	d, err := axcl.FromRecord(rec, marshalOptions(false, opts.Discriminants)...)
	if err != nil {
		return WrapExitError(ExitFailure, "decode "+t.Name(), err)
	}
	return newFormatter(rootOpts, cmd.OutOrStdout()).Structured(d)
}
