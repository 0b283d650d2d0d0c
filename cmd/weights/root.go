package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eigerco/weights/internal/config"
	"github.com/eigerco/weights/internal/dispatch"
	"github.com/eigerco/weights/pkg/log"
)

// app is the state shared by the subcommands once the root command has loaded the config.
type app struct {
	configPath string
	logLevel   string
	storePath  string

	cfg   *config.Config
	model *dispatch.Model
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "weights",
		Short: "Dispatch weight model of the runtime calls",
		Long: `weights computes the dispatch weight, class and fee policy of runtime calls
from a static weight table and the runtime params of a chain profile.

Examples:
  weights table                         Weights of every call with default arguments
  weights compute system_set_storage --items 10
  weights snapshot record               Store the current weights of the profile
  weights snapshot check                Fail if the weights drifted from the stored ones`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "TOML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level, overrides the config (trace, debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.storePath, "store", "", "Snapshot store directory, overrides the config")

	root.AddCommand(
		newTableCmd(a),
		newComputeCmd(a),
		newValidateCmd(a),
		newConfigCmd(a),
		newSnapshotCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.storePath != "" {
		cfg.StorePath = a.storePath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts := cfg.LogOptions()
	opts.Output = cmd.ErrOrStderr()
	log.Init(opts)

	model, err := dispatch.NewModel(cfg.Params())
	if err != nil {
		return fmt.Errorf("create model: %w", err)
	}
	a.cfg = cfg
	a.model = model

	log.CLI.Debug().
		Str("profile", cfg.Profile).
		Str("db_backend", cfg.DbBackend).
		Str("command", cmd.Name()).
		Msg("config loaded")
	return nil
}
