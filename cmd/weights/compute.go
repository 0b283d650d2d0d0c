package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eigerco/weights/internal/dispatch"
)

var errItemsNotApplicable = errors.New("--items only applies to calls scaled by item count")

func newComputeCmd(a *app) *cobra.Command {
	var items int
	cmd := &cobra.Command{
		Use:   "compute <call>",
		Short: "Compute the dispatch info of one call",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := dispatch.ParseCallKind(args[0])
			if err != nil {
				return err
			}

			callArgs := dispatch.DefaultArgs(kind)
			if cmd.Flags().Changed("items") {
				spec, err := dispatch.Lookup(kind)
				if err != nil {
					return err
				}
				if spec.Scaling.Source != dispatch.ScaleItemCount {
					return fmt.Errorf("%w: %s", errItemsNotApplicable, kind)
				}
				if items < 0 {
					return fmt.Errorf("--items must not be negative, got %d", items)
				}
				callArgs.Items = make([]dispatch.KeyValue, items)
			}

			call, err := dispatch.NewCall(kind, callArgs)
			if err != nil {
				return err
			}
			info, err := a.model.ComputeWeight(call.Kind, call.Args)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s weight=%d class=%s pays=%s\n", call, info.Weight, info.Class, info.PaysFee)
			return nil
		},
	}
	cmd.Flags().IntVar(&items, "items", 0, "Number of storage items, for calls scaled by item count")
	return cmd
}
