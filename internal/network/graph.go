// Package network builds undirected, weighted graphs over artists and
// labels and computes descriptive network metrics on them.
package network

import "sort"

// Edge is an unordered pair of vertex names with an observation count.
// A and B are stored in lexicographic order; A == B only for self-loops
// retained by graph contraction.
type Edge struct {
	A      string
	B      string
	Weight int
}

// Graph is an undirected weighted graph. Parallel edges are collapsed:
// adding an existing pair again increases its weight. Vertex iteration
// order is insertion order, so building from the same input yields the
// same traversals.
type Graph struct {
	vertices []string
	index    map[string]int
	adj      map[string]map[string]int
	loops    map[string]int
	edges    int
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		index: make(map[string]int),
		adj:   make(map[string]map[string]int),
		loops: make(map[string]int),
	}
}

// AddVertex inserts the named vertex if absent.
func (g *Graph) AddVertex(name string) {
	if _, ok := g.index[name]; ok {
		return
	}
	g.index[name] = len(g.vertices)
	g.vertices = append(g.vertices, name)
	g.adj[name] = make(map[string]int)
}

// HasVertex reports whether the graph contains the named vertex.
func (g *Graph) HasVertex(name string) bool {
	_, ok := g.index[name]
	return ok
}

// AddEdge records weight observations between a and b, inserting either
// vertex if absent. a == b is stored as a self-loop; self-loops do not
// appear in Neighbors and do not count toward Degree.
func (g *Graph) AddEdge(a, b string, weight int) {
	if weight <= 0 {
		weight = 1
	}
	g.AddVertex(a)
	g.AddVertex(b)

	if a == b {
		if g.loops[a] == 0 {
			g.edges++
		}
		g.loops[a] += weight
		return
	}

	if g.adj[a][b] == 0 {
		g.edges++
	}
	g.adj[a][b] += weight
	g.adj[b][a] += weight
}

// HasEdge reports whether an edge between a and b exists.
func (g *Graph) HasEdge(a, b string) bool {
	if a == b {
		return g.loops[a] > 0
	}
	return g.adj[a][b] > 0
}

// Weight returns the observation count of the a–b edge, or 0 if absent.
func (g *Graph) Weight(a, b string) int {
	if a == b {
		return g.loops[a]
	}
	return g.adj[a][b]
}

// Vertices returns vertex names in insertion order. The slice is shared;
// callers must not mutate it.
func (g *Graph) Vertices() []string {
	return g.vertices
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	return len(g.vertices)
}

// EdgeCount returns the number of distinct unordered edges, self-loops
// included.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// TotalWeight returns the sum of edge weights, self-loops included.
func (g *Graph) TotalWeight() int {
	total := 0
	for a, nbrs := range g.adj {
		for b, w := range nbrs {
			if a < b {
				total += w
			}
		}
	}
	for _, w := range g.loops {
		total += w
	}
	return total
}

// Neighbors returns the vertices adjacent to name, in insertion order.
func (g *Graph) Neighbors(name string) []string {
	nbrs := g.adj[name]
	if len(nbrs) == 0 {
		return nil
	}
	out := make([]string, 0, len(nbrs))
	for b := range nbrs {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return g.index[out[i]] < g.index[out[j]]
	})
	return out
}

// Edges returns all distinct edges sorted by (A, B). Self-loops sort with
// the rest.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.edges)
	for a, nbrs := range g.adj {
		for b, w := range nbrs {
			if a < b {
				edges = append(edges, Edge{A: a, B: b, Weight: w})
			}
		}
	}
	for v, w := range g.loops {
		edges = append(edges, Edge{A: v, B: v, Weight: w})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].A != edges[j].A {
			return edges[i].A < edges[j].A
		}
		return edges[i].B < edges[j].B
	})
	return edges
}
