// SPDX-License-Identifier: MIT
// Package: orbweaver/cmd/orbweaver
//
// main.go - CLI entry point: build/query/toposort subcommands over
// ingest, snapshot, dgraph, and dag.

package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("orbweaver: command failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := &Config{}

	root := &cobra.Command{
		Use:           "orbweaver",
		Short:         "Build, query, and topologically sort labeled directed graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := LoadConfig(cfg.configPath)
			if err != nil {
				return err
			}
			*cfg = *loaded
			level, err := logrus.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			logrus.SetLevel(level)

			return nil
		},
	}
	root.PersistentFlags().StringVar(&cfg.configPath, "config", ".orbweaver.jsonc", "path to an optional JSONC config file")

	root.AddCommand(newBuildCmd(cfg))
	root.AddCommand(newQueryCmd(cfg))
	root.AddCommand(newToposortCmd(cfg))

	return root
}
