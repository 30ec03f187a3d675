// SPDX-License-Identifier: MIT
// Package: orbweaver/cmd/orbweaver
//
// cmd_toposort.go - `orbweaver toposort`: load a snapshot, build a DAG,
// and print the forward topological order (or fail on a cycle).

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/orbweaver/dag"
	"github.com/katalvlaran/orbweaver/snapshot"
)

func newToposortCmd(cfg *Config) *cobra.Command {
	var snapshotPath string

	cmd := &cobra.Command{
		Use:   "toposort",
		Short: "Topologically sort a built snapshot, failing on a cycle",
		RunE: func(cmd *cobra.Command, args []string) error {
			if snapshotPath == "" {
				snapshotPath = cfg.SnapshotPath
			}
			f, err := os.Open(snapshotPath)
			if err != nil {
				return fmt.Errorf("orbweaver toposort: opening %s: %w", snapshotPath, err)
			}
			defer f.Close()

			g, err := snapshot.Load(f)
			if err != nil {
				return fmt.Errorf("orbweaver toposort: loading snapshot: %w", err)
			}

			acyclic, err := dag.Build(g)
			if err != nil {
				return fmt.Errorf("orbweaver toposort: %w", err)
			}

			order := acyclic.Order()
			for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
				order[i], order[j] = order[j], order[i]
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(order, "\n"))

			return nil
		},
	}
	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "path to the snapshot (defaults to the config's snapshot_path)")

	return cmd
}
