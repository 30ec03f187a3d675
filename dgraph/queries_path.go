// SPDX-License-Identifier: MIT
// Package: orbweaver/dgraph
//
// queries_path.go - FindPath (BFS), FindPathOneToMany (backward BFS with
// an opportunistic prefix cache), and FindAllPaths (sentinel-delimited
// prefix BFS over general, possibly cyclic graphs).

package dgraph

import (
	"github.com/katalvlaran/orbweaver/nodevec"
	"github.com/katalvlaran/orbweaver/symtab"
)

// FindPath returns the shortest path (by edge count) from from to to via
// breadth-first search over children. The empty NodeVec is returned if no
// path exists; a single-symbol NodeVec is returned if from == to.
// Tie-breaking on equal-length paths is unspecified (BFS insertion order).
func (g *DirectedGraph) FindPath(from, to string) (*nodevec.NodeVec, error) {
	fromSym, err := g.getInternal(from)
	if err != nil {
		return nil, err
	}
	toSym, err := g.getInternal(to)
	if err != nil {
		return nil, err
	}

	if fromSym == toSym {
		return nodevec.ResolveMany(g.resolver, []symtab.Symbol{fromSym}), nil
	}

	release, err := g.scr.borrow()
	if err != nil {
		return nil, err
	}
	defer release()

	path := g.bfsShortestPath(fromSym, toSym, g.scr.visited, g.scr.fifo[:0], g.scr.pairs[:0])
	if path == nil {
		return nodevec.ResolveMany(g.resolver, nil), nil
	}

	return nodevec.ResolveMany(g.resolver, path), nil
}

// bfsShortestPath runs a breadth-first search using the supplied scratch
// storage (visited set, FIFO queue, and parent-of log), returning the
// reconstructed path or nil if to is unreachable from from.
func (g *DirectedGraph) bfsShortestPath(from, to symtab.Symbol, visited map[symtab.Symbol]struct{}, queue []symtab.Symbol, log []pairSym) []symtab.Symbol {
	visited[from] = struct{}{}
	queue = append(queue, from)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		slot := g.childrenMap.Get(cur)
		if !slot.IsPopulated() {
			continue
		}
		for _, child := range slot.Members() {
			if _, ok := visited[child]; ok {
				continue
			}
			visited[child] = struct{}{}
			log = append(log, pairSym{a: child, b: cur})
			if child == to {
				return reconstructFromLog(log, from, to)
			}
			queue = append(queue, child)
		}
	}

	return nil
}

// reconstructFromLog walks the (child, parent) append-only log backward
// from to until from is reached, then reverses the result.
func reconstructFromLog(log []pairSym, from, to symtab.Symbol) []symtab.Symbol {
	parentOf := make(map[symtab.Symbol]symtab.Symbol, len(log))
	for _, p := range log {
		if _, exists := parentOf[p.a]; !exists {
			parentOf[p.a] = p.b
		}
	}

	path := []symtab.Symbol{to}
	cur := to
	for cur != from {
		p, ok := parentOf[cur]
		if !ok {
			return nil
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// FindPathOneToMany returns, for each target in toList, a valid path
// from -> target or an empty NodeVec if none exists. A path stitched onto
// a cached prefix is not guaranteed to be the shortest. The search proceeds
// backward from each target via parentMap; whenever it reaches a node
// whose from-prefix has already been materialized by a previous target in
// this call, the result is stitched together instead of recomputed. The
// cache persists across targets within one call, not across calls.
func (g *DirectedGraph) FindPathOneToMany(from string, toList []string) ([]*nodevec.NodeVec, error) {
	fromSym, err := g.getInternal(from)
	if err != nil {
		return nil, err
	}

	cache := make(map[symtab.Symbol][]symtab.Symbol, len(toList)+1)
	cache[fromSym] = []symtab.Symbol{fromSym}

	out := make([]*nodevec.NodeVec, len(toList))
	for i, toLabel := range toList {
		toSym, err := g.getInternal(toLabel)
		if err != nil {
			return nil, err
		}
		if cached, ok := cache[toSym]; ok {
			out[i] = nodevec.ResolveMany(g.resolver, append([]symtab.Symbol(nil), cached...))
			continue
		}

		path := g.backwardBFSWithCache(fromSym, toSym, cache)
		if path != nil {
			cache[toSym] = path
			out[i] = nodevec.ResolveMany(g.resolver, append([]symtab.Symbol(nil), path...))
		} else {
			out[i] = nodevec.ResolveMany(g.resolver, nil)
		}
	}

	return out, nil
}

// backwardBFSWithCache searches backward from to via parentMap. The
// moment it reaches a node m already present in cache (keyed by from..m),
// it stitches cache[m] with the reversed reconstruction m..to and returns
// the combined path without continuing the search.
func (g *DirectedGraph) backwardBFSWithCache(from, to symtab.Symbol, cache map[symtab.Symbol][]symtab.Symbol) []symtab.Symbol {
	visited := map[symtab.Symbol]struct{}{to: {}}
	queue := []symtab.Symbol{to}
	parentOf := map[symtab.Symbol]symtab.Symbol{}

	reconstructSuffix := func(m symtab.Symbol) []symtab.Symbol {
		// Walks parentOf from m forward to `to` (m was discovered walking
		// backward from `to`, so parentOf[m] moves toward `to`).
		suffix := []symtab.Symbol{m}
		cur := m
		for cur != to {
			nxt, ok := parentOf[cur]
			if !ok {
				return nil
			}
			suffix = append(suffix, nxt)
			cur = nxt
		}

		return suffix
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cached, ok := cache[cur]; ok {
			suffix := reconstructSuffix(cur)
			if suffix == nil {
				continue
			}
			// cached is from..cur; suffix is cur..to. Join, dropping the
			// duplicated cur at the seam.
			combined := append(append([]symtab.Symbol(nil), cached...), suffix[1:]...)

			return combined
		}

		slot := g.parentMap.Get(cur)
		if !slot.IsPopulated() {
			continue
		}
		for _, p := range slot.Members() {
			if _, ok := visited[p]; ok {
				continue
			}
			visited[p] = struct{}{}
			parentOf[p] = cur
			if p == from {
				suffix := reconstructSuffix(p)
				return suffix
			}
			queue = append(queue, p)
		}
	}

	return nil
}

// FindAllPaths enumerates every simple path from -> to. On this general
// (possibly cyclic) graph it uses a BFS-of-paths: a scratch buffer holds
// concatenated path prefixes delimited by symtab.SentinelSymbol, and a
// work queue holds (start, end) offsets into that buffer. Cycle avoidance
// is a linear scan over the current prefix rather than a per-prefix hash
// set - acceptable because path lengths are small in practice.
func (g *DirectedGraph) FindAllPaths(from, to string) ([][]string, error) {
	fromSym, err := g.getInternal(from)
	if err != nil {
		return nil, err
	}
	toSym, err := g.getInternal(to)
	if err != nil {
		return nil, err
	}

	var buf []symtab.Symbol // concatenated prefixes, delimited by sentinel
	queue := []pairIdx{}

	appendPrefix := func(prefix []symtab.Symbol) pairIdx {
		start := len(buf)
		buf = append(buf, prefix...)
		end := len(buf)
		buf = append(buf, symtab.SentinelSymbol)

		return pairIdx{start: start, end: end}
	}

	queue = append(queue, appendPrefix([]symtab.Symbol{fromSym}))

	var results [][]symtab.Symbol
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		prefix := buf[cur.start:cur.end]
		last := prefix[len(prefix)-1]

		if last == toSym {
			results = append(results, append([]symtab.Symbol(nil), prefix...))
			continue
		}

		slot := g.childrenMap.Get(last)
		if !slot.IsPopulated() {
			continue
		}
		for _, child := range slot.Members() {
			if containsSymbol(prefix, child) {
				continue // cycle avoidance: child already on this prefix
			}
			next := append(append([]symtab.Symbol(nil), prefix...), child)
			queue = append(queue, appendPrefix(next))
		}
	}

	out := make([][]string, len(results))
	for i, p := range results {
		out[i] = decodeAll(g.resolver, p)
	}

	return out, nil
}

func containsSymbol(syms []symtab.Symbol, target symtab.Symbol) bool {
	for _, s := range syms {
		if s == target {
			return true
		}
	}

	return false
}
