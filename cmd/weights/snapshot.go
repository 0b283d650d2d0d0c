package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eigerco/weights/internal/snapshot"
	"github.com/eigerco/weights/internal/store"
	"github.com/eigerco/weights/pkg/db/pebble"
	"github.com/eigerco/weights/pkg/log"
)

var errSnapshotDrift = errors.New("weights drifted from the recorded snapshot")

func newSnapshotCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Record and check weight snapshots of the configured profile",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "record",
			Short: "Store the current weights, replacing any recorded snapshot of the profile",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withStore(func(w *store.Weights) error {
					s, err := snapshot.Take(a.model, a.cfg.Profile)
					if err != nil {
						return err
					}
					if err := w.PutSnapshot(s); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "recorded %s %s\n", s.Profile, s.Fingerprint())
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "check",
			Short: "Compare the current weights with the recorded snapshot",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withStore(func(w *store.Weights) error {
					recorded, err := w.GetSnapshot(a.cfg.Profile)
					if err != nil {
						return fmt.Errorf("profile %s: %w", a.cfg.Profile, err)
					}
					current, err := snapshot.Take(a.model, a.cfg.Profile)
					if err != nil {
						return err
					}
					if diff := snapshot.Diff(recorded, current); diff != "" {
						fmt.Fprint(cmd.OutOrStdout(), diff)
						log.CLI.Warn().Str("profile", a.cfg.Profile).Msg("snapshot drift")
						return errSnapshotDrift
					}
					fmt.Fprintf(cmd.OutOrStdout(), "ok %s %s\n", current.Profile, current.Fingerprint())
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List the profiles that have a recorded snapshot",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withStore(func(w *store.Weights) error {
					profiles, err := w.Profiles()
					if err != nil {
						return err
					}
					for _, p := range profiles {
						fmt.Fprintln(cmd.OutOrStdout(), p)
					}
					return nil
				})
			},
		},
	)
	return cmd
}

func (a *app) withStore(fn func(w *store.Weights) error) error {
	kvStore, err := pebble.Open(a.cfg.StorePath)
	if err != nil {
		return fmt.Errorf("open store %s: %w", a.cfg.StorePath, err)
	}
	w := store.NewWeights(kvStore)
	defer func() {
		if err := w.Close(); err != nil {
			log.CLI.Error().Err(err).Msg("close store")
		}
	}()
	return fn(w)
}
