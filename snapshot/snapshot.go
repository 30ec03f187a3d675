// SPDX-License-Identifier: MIT
// Package: orbweaver/snapshot
//
// snapshot.go - Save/Load, the gob+zstd persisted-state codec.

package snapshot

import (
	"encoding/gob"
	"fmt"
	"io"
	"sort"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/orbweaver/dgraph"
)

// formatVersion is bumped whenever the payload shape changes in a way
// that breaks Load against an older Save.
const formatVersion = "orbweaver-snapshot-v1"

// Header carries the format version and a per-save build identifier.
type Header struct {
	Version string
	BuildID string
}

type edge struct {
	From, To string
}

type payload struct {
	Header
	Edges []edge
}

// Save writes g's edge list, zstd-compressed and gob-encoded, to w.
func Save(w io.Writer, g *dgraph.DirectedGraph) error {
	edges, err := collectEdges(g)
	if err != nil {
		return fmt.Errorf("snapshot: collecting edges: %w", err)
	}

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("snapshot: zstd writer: %w", err)
	}
	defer zw.Close()

	p := payload{
		Header: Header{Version: formatVersion, BuildID: uuid.NewString()},
		Edges:  edges,
	}
	if err := gob.NewEncoder(zw).Encode(p); err != nil {
		logrus.WithError(err).Error("snapshot: encode failed")

		return fmt.Errorf("snapshot: encode: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"edges":    len(edges),
		"build_id": p.BuildID,
	}).Info("snapshot: saved")

	return nil
}

// Load decodes a snapshot written by Save and rebuilds a DirectedGraph
// from its edge list. It returns ErrSnapshotVersionMismatch if the
// payload's version does not match formatVersion.
func Load(r io.Reader) (*dgraph.DirectedGraph, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("snapshot: zstd reader: %w", err)
	}
	defer zr.Close()

	var p payload
	if err := gob.NewDecoder(zr).Decode(&p); err != nil {
		return nil, fmt.Errorf("snapshot: decode: %w", err)
	}
	if p.Version != formatVersion {
		return nil, fmt.Errorf("snapshot: payload version %q, want %q: %w", p.Version, formatVersion, ErrSnapshotVersionMismatch)
	}

	gb := dgraph.NewGraphBuilder()
	for _, e := range p.Edges {
		if err := gb.AddEdge(e.From, e.To); err != nil {
			return nil, err
		}
	}
	g, err := gb.BuildDirected()
	if err != nil {
		return nil, err
	}

	logrus.WithField("build_id", p.BuildID).Info("snapshot: loaded")

	return g, nil
}

// collectEdges flattens g's adjacency into a deterministic (sorted by
// parent, then by child) edge list via the public Children API.
func collectEdges(g *dgraph.DirectedGraph) ([]edge, error) {
	nodes := g.Nodes()
	var edges []edge
	for _, n := range nodes {
		nv, err := g.Children([]string{n})
		if err != nil {
			return nil, err
		}
		children := nv.Strings()
		sort.Strings(children)
		for _, c := range children {
			edges = append(edges, edge{From: n, To: c})
		}
	}

	return edges, nil
}
