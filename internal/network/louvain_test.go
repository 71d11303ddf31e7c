package network

import (
	"reflect"
	"testing"
)

// twoCliques builds two 4-cliques joined by a single bridge edge.
func twoCliques() *Graph {
	g := NewGraph()
	left := []string{"a", "b", "c", "d"}
	right := []string{"w", "x", "y", "z"}
	for _, clique := range [][]string{left, right} {
		for i := 0; i < len(clique); i++ {
			for j := i + 1; j < len(clique); j++ {
				g.AddEdge(clique[i], clique[j], 1)
			}
		}
	}
	g.AddEdge("d", "w", 1)
	return g
}

func TestCommunitiesTwoCliques(t *testing.T) {
	g := twoCliques()
	assignment := Communities(g, CommunityOptions{Seed: 1})

	if len(assignment) != g.VertexCount() {
		t.Fatalf("assignment covers %d vertices, want %d", len(assignment), g.VertexCount())
	}

	left := assignment["a"]
	for _, v := range []string{"b", "c", "d"} {
		if assignment[v] != left {
			t.Errorf("clique member %s in community %d, want %d", v, assignment[v], left)
		}
	}
	right := assignment["w"]
	for _, v := range []string{"x", "y", "z"} {
		if assignment[v] != right {
			t.Errorf("clique member %s in community %d, want %d", v, assignment[v], right)
		}
	}
	if left == right {
		t.Errorf("the two cliques should split into separate communities")
	}
}

func TestCommunitiesSeededReproducible(t *testing.T) {
	g := twoCliques()
	first := Communities(g, CommunityOptions{Seed: 42})
	second := Communities(g, CommunityOptions{Seed: 42})
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same seed should give the same assignment: %v vs %v", first, second)
	}
}

func TestCommunitiesDegenerate(t *testing.T) {
	if got := Communities(NewGraph(), CommunityOptions{Seed: 1}); len(got) != 0 {
		t.Errorf("empty graph should have no assignment: %v", got)
	}

	g := NewGraph()
	g.AddVertex("only")
	got := Communities(g, CommunityOptions{Seed: 1})
	if len(got) != 1 {
		t.Errorf("single vertex should be assigned: %v", got)
	}
}

func TestModularity(t *testing.T) {
	g := twoCliques()
	assignment := Communities(g, CommunityOptions{Seed: 1})

	q := Modularity(g, assignment)
	if q <= 0 {
		t.Errorf("Modularity of the clique partition = %f, want > 0", q)
	}

	// All vertices in one community scores lower.
	single := make(map[string]int, g.VertexCount())
	for _, v := range g.Vertices() {
		single[v] = 0
	}
	if qs := Modularity(g, single); qs >= q {
		t.Errorf("single community modularity %f should be below partition modularity %f", qs, q)
	}

	if got := Modularity(NewGraph(), nil); got != 0 {
		t.Errorf("Modularity(empty) = %f, want 0", got)
	}
}

func TestGroupCommunities(t *testing.T) {
	assignment := map[string]int{"a": 0, "b": 0, "c": 1}
	communities := GroupCommunities(assignment, []string{"a", "b", "c"})

	if len(communities) != 2 {
		t.Fatalf("GroupCommunities() = %d communities, want 2", len(communities))
	}
	// Largest first.
	if !reflect.DeepEqual(communities[0].Members, []string{"a", "b"}) {
		t.Errorf("largest community members = %v", communities[0].Members)
	}
	if !reflect.DeepEqual(communities[1].Members, []string{"c"}) {
		t.Errorf("second community members = %v", communities[1].Members)
	}
}
