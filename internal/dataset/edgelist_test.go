package dataset

import (
	"strings"
	"testing"
)

func TestLoadEdges(t *testing.T) {
	csv := `source,target,weight
Drake,Future,3
Drake,21 Savage,
,Future,2
Future,Metro Boomin,1
`
	edges, err := LoadEdges(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("LoadEdges() error: %v", err)
	}
	if len(edges) != 3 {
		t.Fatalf("LoadEdges() got %d rows, want 3", len(edges))
	}
	if edges[0].Weight != 3 {
		t.Errorf("weight = %d, want 3", edges[0].Weight)
	}
	// Missing weight defaults to 1.
	if edges[1].Weight != 1 {
		t.Errorf("missing weight = %d, want 1", edges[1].Weight)
	}
}

func TestLoadEdgesCollaborationDetailsHeader(t *testing.T) {
	csv := "Artist 1,Artist 2,Number of Collaborations\nDrake,Future,12\n"
	edges, err := LoadEdges(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("LoadEdges() error: %v", err)
	}
	if len(edges) != 1 || edges[0].Source != "Drake" || edges[0].Weight != 12 {
		t.Errorf("LoadEdges() = %+v", edges)
	}
}

func TestLoadEdgesMissingColumns(t *testing.T) {
	if _, err := LoadEdges(strings.NewReader("source,weight\na,1\n")); err == nil {
		t.Fatalf("LoadEdges() should error with no target column")
	}
	if _, err := LoadEdges(strings.NewReader("")); err == nil {
		t.Fatalf("LoadEdges() should error on empty input")
	}
}
