package network

import "testing"

func buildContractFixture() (*Graph, map[string]string) {
	g := NewGraph()
	for _, v := range []string{"A", "B", "C", "D"} {
		g.AddVertex(v)
	}
	g.AddEdge("A", "B", 1)
	g.AddEdge("A", "C", 1)
	g.AddEdge("C", "D", 1)
	groupOf := map[string]string{"A": "X", "B": "X", "C": "Y", "D": "Y"}
	return g, groupOf
}

func TestContractKeepInternal(t *testing.T) {
	g, groupOf := buildContractFixture()
	c := Contract(g, groupOf, ContractOptions{KeepInternal: true})

	if c.VertexCount() != 2 {
		t.Fatalf("VertexCount() = %d, want 2", c.VertexCount())
	}
	if w := c.Weight("X", "X"); w != 1 {
		t.Errorf("Weight(X, X) = %d, want 1", w)
	}
	if w := c.Weight("X", "Y"); w != 1 {
		t.Errorf("Weight(X, Y) = %d, want 1", w)
	}
	if w := c.Weight("Y", "Y"); w != 1 {
		t.Errorf("Weight(Y, Y) = %d, want 1", w)
	}

	// Total contracted weight equals the number of original edges with
	// both endpoints grouped.
	if total := c.TotalWeight(); total != g.EdgeCount() {
		t.Errorf("TotalWeight() = %d, want %d", total, g.EdgeCount())
	}
}

func TestContractDropInternal(t *testing.T) {
	g, groupOf := buildContractFixture()
	c := Contract(g, groupOf, ContractOptions{})

	if c.EdgeCount() != 1 {
		t.Fatalf("EdgeCount() = %d, want 1", c.EdgeCount())
	}
	if c.Weight("X", "X") != 0 || c.Weight("Y", "Y") != 0 {
		t.Errorf("internal edges should be dropped by default")
	}
	if w := c.Weight("X", "Y"); w != 1 {
		t.Errorf("Weight(X, Y) = %d, want 1", w)
	}
}

func TestContractExcludesUngrouped(t *testing.T) {
	g := NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)
	groupOf := map[string]string{"A": "X", "B": ""} // B and C have no label

	c := Contract(g, groupOf, ContractOptions{KeepInternal: true})
	if c.VertexCount() != 1 {
		t.Fatalf("VertexCount() = %d, want 1", c.VertexCount())
	}
	if c.EdgeCount() != 0 {
		t.Errorf("edges touching ungrouped vertices should vanish, got %v", c.Edges())
	}
}

func TestContractWeightConservation(t *testing.T) {
	g := NewGraph()
	g.AddEdge("a1", "a2", 1)
	g.AddEdge("a1", "b1", 1)
	g.AddEdge("a2", "b2", 1)
	g.AddEdge("b1", "b2", 1)
	g.AddEdge("b1", "c1", 1) // c1 ungrouped
	groupOf := map[string]string{"a1": "A", "a2": "A", "b1": "B", "b2": "B"}

	c := Contract(g, groupOf, ContractOptions{KeepInternal: true})
	grouped := 0
	for _, e := range g.Edges() {
		if groupOf[e.A] != "" && groupOf[e.B] != "" {
			grouped++
		}
	}
	if total := c.TotalWeight(); total != grouped {
		t.Errorf("TotalWeight() = %d, want %d", total, grouped)
	}
}
