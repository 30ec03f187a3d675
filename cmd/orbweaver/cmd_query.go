// SPDX-License-Identifier: MIT
// Package: orbweaver/cmd/orbweaver
//
// cmd_query.go - `orbweaver query`: load a snapshot and answer a single
// children/parents/path/leaves/roots query against it.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/orbweaver/snapshot"
)

func newQueryCmd(cfg *Config) *cobra.Command {
	var snapshotPath string
	var children, parents, path []string
	var leaves, roots bool

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Answer one query against a built snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			if snapshotPath == "" {
				snapshotPath = cfg.SnapshotPath
			}
			f, err := os.Open(snapshotPath)
			if err != nil {
				return fmt.Errorf("orbweaver query: opening %s: %w", snapshotPath, err)
			}
			defer f.Close()

			g, err := snapshot.Load(f)
			if err != nil {
				return fmt.Errorf("orbweaver query: loading snapshot: %w", err)
			}

			switch {
			case len(children) > 0:
				nv, err := g.Children(children)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(nv.Strings(), "\n"))
			case len(parents) > 0:
				nv, err := g.Parents(parents)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(nv.Strings(), "\n"))
			case len(path) == 2:
				nv, err := g.FindPath(path[0], path[1])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(nv.Strings(), " -> "))
			case leaves:
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(g.GetAllLeaves(), "\n"))
			case roots:
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(g.GetAllRoots(), "\n"))
			default:
				return fmt.Errorf("orbweaver query: specify one of --children, --parents, --path, --leaves, --roots")
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "path to the snapshot (defaults to the config's snapshot_path)")
	cmd.Flags().StringSliceVar(&children, "children", nil, "list children of the given labels")
	cmd.Flags().StringSliceVar(&parents, "parents", nil, "list parents of the given labels")
	cmd.Flags().StringSliceVar(&path, "path", nil, "find a path between exactly two labels: --path from,to")
	cmd.Flags().BoolVar(&leaves, "leaves", false, "list every leaf")
	cmd.Flags().BoolVar(&roots, "roots", false, "list every root")

	return cmd
}
