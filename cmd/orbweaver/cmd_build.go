// SPDX-License-Identifier: MIT
// Package: orbweaver/cmd/orbweaver
//
// cmd_build.go - `orbweaver build`: parse a tab-separated edge list and
// write a snapshot.

package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/orbweaver/dgraph"
	"github.com/katalvlaran/orbweaver/ingest"
	"github.com/katalvlaran/orbweaver/snapshot"
)

func newBuildCmd(cfg *Config) *cobra.Command {
	var inputPath, outputPath string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Parse a tab-separated edge list into a snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputPath == "" {
				outputPath = cfg.SnapshotPath
			}

			in := os.Stdin
			if inputPath != "" {
				f, err := os.Open(inputPath)
				if err != nil {
					return fmt.Errorf("orbweaver build: opening %s: %w", inputPath, err)
				}
				defer f.Close()
				in = f
			}

			gb := dgraph.NewGraphBuilder()
			n, err := ingest.Load(in, gb)
			if err != nil {
				return fmt.Errorf("orbweaver build: parsing edges: %w", err)
			}
			g, err := gb.BuildDirected()
			if err != nil {
				return fmt.Errorf("orbweaver build: %w", err)
			}

			out, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("orbweaver build: creating %s: %w", outputPath, err)
			}
			defer out.Close()

			if err := snapshot.Save(out, g); err != nil {
				return fmt.Errorf("orbweaver build: %w", err)
			}

			logrus.WithFields(logrus.Fields{
				"edges_read": n,
				"nodes":      g.Len(),
				"output":     outputPath,
			}).Info("orbweaver build: done")

			return nil
		},
	}
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to the edge-list file (defaults to stdin)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "path to write the snapshot (defaults to the config's snapshot_path)")

	return cmd
}
