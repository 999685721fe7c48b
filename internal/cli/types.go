package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/thesyncim/axcl"
)

// TypeSummary describes one registered record type.
type TypeSummary struct {
	Name   string `json:"name" yaml:"name"`
	Kind   string `json:"kind" yaml:"kind"`
	Size   uint64 `json:"size" yaml:"size"`
	Align  uint64 `json:"align" yaml:"align"`
	Fields int    `json:"fields" yaml:"fields"`
}

// NewTypesCommand creates the types command.
func NewTypesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the known record types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTypes(rootOpts, cmd)
		},
	}
}

func runTypes(opts *RootOptions, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd.OutOrStdout())

	var summaries []TypeSummary
	for _, t := range axcl.Types() {
		summaries = append(summaries, TypeSummary{
			Name:   t.Name(),
			Kind:   t.Kind().String(),
			Size:   uint64(t.Size()),
			Align:  uint64(t.Align()),
			Fields: t.NumField(),
		})
	}
	if opts.Format != "text" {
		return f.Structured(summaries)
	}

	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Name,
			s.Kind,
			strconv.FormatUint(s.Size, 10),
			strconv.FormatUint(s.Align, 10),
			strconv.Itoa(s.Fields),
		})
	}
	f.Table([]string{"TYPE", "KIND", "SIZE", "ALIGN", "FIELDS"}, rows)
	return nil
}
