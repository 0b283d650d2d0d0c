package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eigerco/weights/internal/dispatch"
)

var errInvalidTable = errors.New("weight table is invalid")

func newValidateCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the weight table for inconsistent entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := dispatch.ValidateTable()
			if !result.Valid {
				fmt.Fprint(cmd.OutOrStdout(), result.ErrorsAsString())
				return errInvalidTable
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d call kinds\n", len(dispatch.AllCallKinds()))
			return nil
		},
	}
}
