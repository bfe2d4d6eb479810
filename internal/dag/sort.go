// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package dag

import (
	"container/heap"
)

// seqHeap is a min-heap of nodes keyed by insertion order.
type seqHeap []*node

func (h seqHeap) Len() int           { return len(h) }
func (h seqHeap) Less(i, j int) bool { return h[i].seq < h[j].seq }
func (h seqHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *seqHeap) Push(x any)        { *h = append(*h, x.(*node)) }
func (h *seqHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// TopologicalSort returns the node IDs in dependency order using Kahn's
// algorithm. Among nodes that are ready at the same time, the one added
// first comes first, so the result is fully determined by the insertion
// order. The second return value is false when the graph has a cycle; the
// returned slice then holds only the nodes that could be ordered.
func (g *Graph) TopologicalSort() ([]string, bool) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	indeg := make(map[string]int, len(g.nodes))
	ready := &seqHeap{}
	for id, n := range g.nodes {
		indeg[id] = len(n.deps)
		if indeg[id] == 0 {
			*ready = append(*ready, n)
		}
	}
	heap.Init(ready)

	out := make([]string, 0, len(g.nodes))
	for ready.Len() > 0 {
		n := heap.Pop(ready).(*node)
		out = append(out, n.id)
		for _, m := range n.dependents {
			indeg[m.id]--
			if indeg[m.id] == 0 {
				heap.Push(ready, m)
			}
		}
	}
	return out, len(out) == len(g.nodes)
}

// FindCycle returns one cycle as a closed path [a, b, ..., a] following edge
// direction, or nil if the graph is acyclic. The walk visits nodes and their
// successors in insertion order, so the same graph always yields the same
// witness.
func (g *Graph) FindCycle() []string {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	const (
		white = iota
		gray
		black
	)
	color := make(map[string]int, len(g.nodes))
	parent := make(map[string]*node, len(g.nodes))
	var cycle []*node

	var dfs func(u *node) bool
	dfs = func(u *node) bool {
		color[u.id] = gray
		for _, v := range sortedBySeq(u.dependents) {
			switch color[v.id] {
			case white:
				parent[v.id] = u
				if dfs(v) {
					return true
				}
			case gray:
				// Back-edge u -> v closes the cycle v ... u -> v.
				cycle = append(cycle, v)
				for cur := u; cur != nil && cur != v; cur = parent[cur.id] {
					cycle = append(cycle, cur)
				}
				cycle = append(cycle, v)
				return true
			}
		}
		color[u.id] = black
		return false
	}

	for _, n := range sortedBySeq(g.nodes) {
		if color[n.id] == white && dfs(n) {
			break
		}
	}
	if cycle == nil {
		return nil
	}

	// The parent walk produced the path backwards.
	out := make([]string, len(cycle))
	for i, n := range cycle {
		out[len(cycle)-1-i] = n.id
	}
	return out
}
