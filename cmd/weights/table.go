package main

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/eigerco/weights/internal/dispatch"
)

func newTableCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the weight table with the weight of every call under default arguments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := tablewriter.NewWriter(cmd.OutOrStdout())
			t.SetHeader([]string{"Call", "Base", "Reads", "Writes", "Scaling", "Class", "Pays", "Weight"})
			t.SetAutoFormatHeaders(false)
			t.SetAutoWrapText(false)
			t.SetAlignment(tablewriter.ALIGN_LEFT)

			for _, kind := range dispatch.AllCallKinds() {
				spec, err := dispatch.Lookup(kind)
				if err != nil {
					return err
				}
				info, err := a.model.ComputeWeight(kind, dispatch.DefaultArgs(kind))
				if err != nil {
					return err
				}

				base, reads, writes, scaling := "-", "-", "-", "-"
				if !spec.Ceiling {
					base = strconv.FormatUint(uint64(spec.Base), 10)
					reads = strconv.FormatUint(uint64(spec.Reads), 10)
					writes = strconv.FormatUint(uint64(spec.Writes), 10)
					scaling = spec.Scaling.Source.String()
				} else {
					scaling = "max_block"
				}
				t.Append([]string{
					string(kind), base, reads, writes, scaling,
					info.Class.String(), info.PaysFee.String(),
					strconv.FormatUint(uint64(info.Weight), 10),
				})
			}
			t.Render()
			return nil
		},
	}
}
