package models

import (
	"sort"
	"strings"
)

// View is the active working set derived from a graph by Filter: the nodes
// and edges currently passing the filter predicates, plus the distinct
// types of the unfiltered graph for legend display.
type View struct {
	Nodes []Node
	Edges []Edge
	Types []string
}

// Filter derives the active set from a free-text query and an optional
// type filter. Query match is a case-insensitive substring match against
// label or type; nodes are kept in source order. Edges survive only when
// both endpoints survive, so edges referencing missing or filtered-out
// nodes are dropped silently.
func Filter(g *Graph, query, typeFilter string) View {
	v := View{
		Nodes: make([]Node, 0, len(g.Nodes)),
		Edges: make([]Edge, 0, len(g.Edges)),
		Types: distinctTypes(g),
	}

	q := strings.ToLower(strings.TrimSpace(query))
	active := make(map[string]bool, len(g.Nodes))
	for _, node := range g.Nodes {
		if typeFilter != "" && node.Type != typeFilter {
			continue
		}
		if q != "" && !matchesQuery(&node, q) {
			continue
		}
		v.Nodes = append(v.Nodes, node)
		active[node.ID] = true
	}

	for _, edge := range g.Edges {
		if active[edge.Source] && active[edge.Target] {
			v.Edges = append(v.Edges, edge)
		}
	}

	return v
}

func matchesQuery(node *Node, q string) bool {
	return strings.Contains(strings.ToLower(node.Label), q) ||
		strings.Contains(strings.ToLower(node.Type), q)
}

func distinctTypes(g *Graph) []string {
	seen := make(map[string]bool)
	types := make([]string, 0)
	for _, node := range g.Nodes {
		if !seen[node.Type] {
			seen[node.Type] = true
			types = append(types, node.Type)
		}
	}
	sort.Strings(types)
	return types
}
