package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/thesyncim/axcl"
)

// LayoutEntry is one flattened field of a record layout.
type LayoutEntry struct {
	Path   string `json:"path" yaml:"path"`
	Native string `json:"native" yaml:"native"`
	Offset uint64 `json:"offset" yaml:"offset"`
	Size   uint64 `json:"size" yaml:"size"`
	Kind   string `json:"kind" yaml:"kind"`
	Type   string `json:"type" yaml:"type"`
}

// LayoutResult is the structured output of the layout command.
type LayoutResult struct {
	Type   string        `json:"type" yaml:"type"`
	Size   uint64        `json:"size" yaml:"size"`
	Align  uint64        `json:"align" yaml:"align"`
	Fields []LayoutEntry `json:"fields" yaml:"fields"`
}

// NewLayoutCommand creates the layout command.
func NewLayoutCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "layout <type>",
		Short: "Print the native layout of a record type",
		Long: `Print every field of a record type with its public path, native name,
byte offset and size. Union members share an offset; arrays of records
are expanded through their first element.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(rootOpts, args[0], cmd)
		},
	}
}

func runLayout(opts *RootOptions, name string, cmd *cobra.Command) error {
	t, err := axcl.LookupType(name)
	if err != nil {
		return WrapExitError(ExitCommandError, "layout", err)
	}
	f := newFormatter(opts, cmd.OutOrStdout())

	res := LayoutResult{Type: t.Name(), Size: uint64(t.Size()), Align: uint64(t.Align())}
	for _, r := range t.Layout() {
		res.Fields = append(res.Fields, LayoutEntry{
			Path:   r.Path,
			Native: r.Native,
			Offset: uint64(r.Offset),
			Size:   uint64(r.Size),
			Kind:   r.Kind.String(),
			Type:   r.Type,
		})
	}
	if opts.Format != "text" {
		return f.Structured(res)
	}

	fmt.Fprintln(f.Writer, f.muted("%s  size=%d align=%d", res.Type, res.Size, res.Align))
	rows := make([][]string, 0, len(res.Fields))
	for _, e := range res.Fields {
		rows = append(rows, []string{
			strconv.FormatUint(e.Offset, 10),
			strconv.FormatUint(e.Size, 10),
			e.Kind,
			e.Path,
			e.Native,
		})
	}
	f.Table([]string{"OFFSET", "SIZE", "KIND", "PATH", "NATIVE"}, rows)
	return nil
}
