package network

import (
	"strings"
	"testing"

	"github.com/ademuri/artist-network-tools/internal/dataset"
)

func loadTestDataset(t *testing.T, csv string) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Load(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("loading test dataset: %v", err)
	}
	return ds
}

func TestBuildCollaboratorGraph(t *testing.T) {
	ds := loadTestDataset(t, `name,collaborators
A,"B,C"
B,A
C,A
D,
`)
	g := BuildCollaboratorGraph(ds)

	if g.VertexCount() != 4 {
		t.Fatalf("VertexCount() = %d, want 4", g.VertexCount())
	}
	if g.EdgeCount() != 2 {
		t.Fatalf("EdgeCount() = %d, want 2", g.EdgeCount())
	}
	if !g.HasEdge("A", "B") || !g.HasEdge("A", "C") {
		t.Errorf("expected edges A-B and A-C, got %v", g.Edges())
	}
	if g.HasEdge("B", "C") {
		t.Errorf("unexpected edge B-C")
	}

	deg := Degree(g)
	if deg["D"] != 0 {
		t.Errorf("Degree(D) = %d, want 0", deg["D"])
	}

	// A-B is asserted by both rows; A-C only by A's row.
	if w := g.Weight("A", "B"); w != 2 {
		t.Errorf("Weight(A, B) = %d, want 2", w)
	}
	if w := g.Weight("A", "C"); w != 1 {
		t.Errorf("Weight(A, C) = %d, want 1", w)
	}
}

func TestBuildCollaboratorGraphDropsUnknownAndSelf(t *testing.T) {
	ds := loadTestDataset(t, `name,collaborators
A,"A, B, Someone Unknown, B"
B,
`)
	g := BuildCollaboratorGraph(ds)

	if g.VertexCount() != 2 {
		t.Fatalf("VertexCount() = %d, want 2", g.VertexCount())
	}
	if g.EdgeCount() != 1 {
		t.Fatalf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
	// Duplicate mention of B within one row counts once.
	if w := g.Weight("A", "B"); w != 1 {
		t.Errorf("Weight(A, B) = %d, want 1", w)
	}
	if g.HasVertex("Someone Unknown") {
		t.Errorf("unknown collaborator should not become a vertex")
	}
}

func TestBuildSharedAttributeGraph(t *testing.T) {
	ds := loadTestDataset(t, `name,categories
A,"rap, trap"
B,trap
C,rock
`)
	g := BuildSharedAttributeGraph(ds, SharedAttributeOptions{})

	if g.EdgeCount() != 1 {
		t.Fatalf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
	if !g.HasEdge("A", "B") {
		t.Errorf("expected edge A-B")
	}
	if g.HasEdge("A", "C") || g.HasEdge("B", "C") {
		t.Errorf("C shares no category and should be isolated")
	}
}

func TestBuildSharedAttributeGraphWeightByShared(t *testing.T) {
	ds := loadTestDataset(t, `name,categories
A,"rap, trap, drill"
B,"trap, drill"
`)
	g := BuildSharedAttributeGraph(ds, SharedAttributeOptions{WeightByShared: true})

	if w := g.Weight("A", "B"); w != 2 {
		t.Errorf("Weight(A, B) = %d, want 2 (shared tokens)", w)
	}
}

func TestBuildSharedAttributeGraphUseGenres(t *testing.T) {
	ds := loadTestDataset(t, `name,genres,categories
A,shoegaze,Pop
B,shoegaze,Rock/Metal
`)
	g := BuildSharedAttributeGraph(ds, SharedAttributeOptions{UseGenres: true})
	if !g.HasEdge("A", "B") {
		t.Errorf("expected genre-based edge A-B")
	}

	g = BuildSharedAttributeGraph(ds, SharedAttributeOptions{})
	if g.HasEdge("A", "B") {
		t.Errorf("categories differ, expected no edge")
	}
}

func TestBuildSharedTagGraph(t *testing.T) {
	ds := loadTestDataset(t, "name\nA\nB\nC\nD\n")
	tags := map[string]map[string]bool{
		"A": {"seen live": true, "hip hop": true},
		"B": {"hip hop": true},
		"C": {"jazz": true},
	}
	g := BuildSharedTagGraph(ds, tags, false)

	if g.VertexCount() != 4 {
		t.Fatalf("VertexCount() = %d, want 4", g.VertexCount())
	}
	if g.EdgeCount() != 1 {
		t.Fatalf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
	if !g.HasEdge("A", "B") {
		t.Errorf("expected tag-based edge A-B")
	}
	// D has no stored tags and stays isolated.
	if Degree(g)["D"] != 0 {
		t.Errorf("Degree(D) = %d, want 0", Degree(g)["D"])
	}
}

func TestBuildSharedTagGraphWeightByShared(t *testing.T) {
	ds := loadTestDataset(t, "name\nA\nB\n")
	tags := map[string]map[string]bool{
		"A": {"rap": true, "trap": true, "drill": true},
		"B": {"trap": true, "drill": true},
	}
	g := BuildSharedTagGraph(ds, tags, true)

	if w := g.Weight("A", "B"); w != 2 {
		t.Errorf("Weight(A, B) = %d, want 2 (shared tags)", w)
	}
}

func TestBuildFromEdges(t *testing.T) {
	ds := loadTestDataset(t, "name\nA\nB\nC\n")
	rows := []dataset.EdgeRow{
		{Source: "A", Target: "B", Weight: 2},
		{Source: "B", Target: "A", Weight: 1},
		{Source: "A", Target: "Unknown", Weight: 1},
		{Source: "C", Target: "C", Weight: 1},
	}
	g := BuildFromEdges(rows, ds)

	if g.VertexCount() != 3 {
		t.Fatalf("VertexCount() = %d, want 3", g.VertexCount())
	}
	if g.EdgeCount() != 1 {
		t.Fatalf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
	// Both directions of the same unordered pair accumulate.
	if w := g.Weight("A", "B"); w != 3 {
		t.Errorf("Weight(A, B) = %d, want 3", w)
	}
}

func TestBuildFromEdgesWithoutDataset(t *testing.T) {
	rows := []dataset.EdgeRow{{Source: "X", Target: "Y", Weight: 1}}
	g := BuildFromEdges(rows, nil)
	if g.VertexCount() != 2 || !g.HasEdge("X", "Y") {
		t.Errorf("edge rows should define the vertex set: %v", g.Edges())
	}
}

func TestNoDuplicateUnorderedEdges(t *testing.T) {
	ds := loadTestDataset(t, `name,collaborators
A,"B, C"
B,"A, C"
C,"A, B"
`)
	g := BuildCollaboratorGraph(ds)

	edges := g.Edges()
	seen := make(map[[2]string]bool)
	for _, e := range edges {
		key := [2]string{e.A, e.B}
		if seen[key] {
			t.Errorf("duplicate unordered edge %v", key)
		}
		seen[key] = true
	}
	if len(edges) != g.EdgeCount() {
		t.Errorf("Edges() returned %d edges, EdgeCount() = %d", len(edges), g.EdgeCount())
	}
}
