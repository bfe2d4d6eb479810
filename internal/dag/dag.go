// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package dag

import (
	"fmt"
	"sort"
)

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*node),
	}
}

// AddNode adds a new node with the given ID to the graph. If a node with
// the same ID already exists, the function does nothing and the node keeps
// its original position in the insertion order.
func (g *Graph) AddNode(id string) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if _, ok := g.nodes[id]; ok {
		return
	}

	g.nodes[id] = &node{
		id:         id,
		seq:        g.nextSeq,
		deps:       make(map[string]*node),
		dependents: make(map[string]*node),
	}
	g.nextSeq++
}

// AddEdge creates a directed edge from the `fromID` node to the `toID` node.
// This signifies that `toID` has a dependency on `fromID`. An error is returned
// if either node does not exist or if the edge would create a self-reference.
// Adding the same edge twice is a no-op.
func (g *Graph) AddEdge(fromID, toID string) error {
	if fromID == toID {
		return fmt.Errorf("self-referential edge not allowed: %s -> %s", fromID, fromID)
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	fromNode, ok := g.nodes[fromID]
	if !ok {
		return fmt.Errorf("source node not found: %s", fromID)
	}

	toNode, ok := g.nodes[toID]
	if !ok {
		return fmt.Errorf("destination node not found: %s", toID)
	}

	toNode.deps[fromID] = fromNode
	fromNode.dependents[toID] = toNode

	return nil
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return len(g.nodes)
}

// Ancestors returns every node from which at least one of the targets can be
// reached, the targets included. Unknown targets are ignored. The result is
// in insertion order.
func (g *Graph) Ancestors(targets ...string) []string {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	seen := make(map[string]*node)
	stack := make([]*node, 0, len(targets))
	for _, id := range targets {
		if n, ok := g.nodes[id]; ok {
			stack = append(stack, n)
		}
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, done := seen[n.id]; done {
			continue
		}
		seen[n.id] = n
		for _, dep := range n.deps {
			if _, done := seen[dep.id]; !done {
				stack = append(stack, dep)
			}
		}
	}
	return idsOf(sortedBySeq(seen))
}

// Subgraph returns a new graph holding only the given IDs and the edges
// between them. Insertion order is preserved relative to the receiver.
func (g *Graph) Subgraph(ids []string) *Graph {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	keep := make(map[string]*node, len(ids))
	for _, id := range ids {
		if n, ok := g.nodes[id]; ok {
			keep[id] = n
		}
	}

	sub := New()
	for _, n := range sortedBySeq(keep) {
		sub.nodes[n.id] = &node{
			id:         n.id,
			seq:        n.seq,
			deps:       make(map[string]*node),
			dependents: make(map[string]*node),
		}
	}
	sub.nextSeq = g.nextSeq
	for id, n := range keep {
		to := sub.nodes[id]
		for depID := range n.deps {
			if from, ok := sub.nodes[depID]; ok {
				to.deps[depID] = from
				from.dependents[id] = to
			}
		}
	}
	return sub
}

// sortedBySeq flattens a node set into insertion order.
func sortedBySeq(set map[string]*node) []*node {
	out := make([]*node, 0, len(set))
	for _, n := range set {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}

func idsOf(nodes []*node) []string {
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.id
	}
	return ids
}
