// Package models provides the graph domain types shared by the layout
// engine and its hosts: nodes, edges, the containing graph, and the
// active-set filter.
package models

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Node represents a typed node in the graph
type Node struct {
	ID         string         `json:"id"`
	Label      string         `json:"label"`
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties,omitempty"`
}

// Edge represents a weighted edge between two nodes. Weight only affects
// rendered thickness, never the physics simulation.
type Edge struct {
	ID     string  `json:"id"`
	Source string  `json:"source"` // ID of the source node
	Target string  `json:"target"` // ID of the target node
	Type   string  `json:"type,omitempty"`
	Label  string  `json:"label,omitempty"`
	Weight float64 `json:"weight,omitempty"`
}

// Graph represents a collection of nodes and edges. A graph is replaced
// wholesale on reload; hosts never patch it in place.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// NewNode creates a new node with a unique ID
func NewNode(nodeType, label string, properties map[string]any) *Node {
	return &Node{
		ID:         uuid.New().String(),
		Label:      label,
		Type:       nodeType,
		Properties: properties,
	}
}

// NewEdge creates a new edge with a unique ID
func NewEdge(source, target, edgeType string, weight float64) *Edge {
	return &Edge{
		ID:     uuid.New().String(),
		Source: source,
		Target: target,
		Type:   edgeType,
		Weight: weight,
	}
}

// NewGraph creates an empty graph
func NewGraph() *Graph {
	return &Graph{
		Nodes: []Node{},
		Edges: []Edge{},
	}
}

// AddNode adds a node to the graph
func (g *Graph) AddNode(node *Node) {
	g.Nodes = append(g.Nodes, *node)
}

// AddEdge adds an edge to the graph. Both endpoints must already exist.
func (g *Graph) AddEdge(edge *Edge) error {
	sourceExists, targetExists := false, false
	for i := range g.Nodes {
		if g.Nodes[i].ID == edge.Source {
			sourceExists = true
		}
		if g.Nodes[i].ID == edge.Target {
			targetExists = true
		}
		if sourceExists && targetExists {
			break
		}
	}

	if !sourceExists {
		return fmt.Errorf("source node with ID %s does not exist in the graph", edge.Source)
	}
	if !targetExists {
		return fmt.Errorf("target node with ID %s does not exist in the graph", edge.Target)
	}

	g.Edges = append(g.Edges, *edge)
	return nil
}

// FindNodeByID returns a node by its ID
func (g *Graph) FindNodeByID(id string) (*Node, error) {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return &g.Nodes[i], nil
		}
	}
	return nil, fmt.Errorf("node with ID %s not found", id)
}

// Load parses a graph from its JSON representation. Edges referencing
// unknown endpoints are kept here and dropped later by the filter, which
// tolerates dangling references.
func Load(data []byte) (*Graph, error) {
	var g Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("failed to parse graph JSON: %w", err)
	}

	seen := make(map[string]bool, len(g.Nodes))
	for i := range g.Nodes {
		if g.Nodes[i].ID == "" {
			return nil, fmt.Errorf("node at index %d has no ID", i)
		}
		if seen[g.Nodes[i].ID] {
			return nil, fmt.Errorf("duplicate node ID %s", g.Nodes[i].ID)
		}
		seen[g.Nodes[i].ID] = true
	}
	for i := range g.Edges {
		if g.Edges[i].Weight < 0 {
			return nil, fmt.Errorf("edge %s has negative weight", g.Edges[i].ID)
		}
	}
	if g.Nodes == nil {
		g.Nodes = []Node{}
	}
	if g.Edges == nil {
		g.Edges = []Edge{}
	}
	return &g, nil
}

// Export serializes the graph for download. Only model state is exported,
// never computed layout positions.
func (g *Graph) Export() ([]byte, error) {
	out, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize graph: %w", err)
	}
	return out, nil
}
