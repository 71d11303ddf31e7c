package network

import (
	"github.com/ademuri/artist-network-tools/internal/dataset"
)

// BuildCollaboratorGraph builds the artist network from explicit
// collaborator-list fields. Every record becomes a vertex. Each token of a
// record's collaborator field that exactly matches another known record's
// name asserts one observation of that unordered pair; names outside the
// dataset are collaborators outside the studied universe and are dropped.
// Self-mentions are ignored.
//
// An edge's weight is the number of distinct source rows asserting it: a
// pair listed by both endpoints gets weight 2, a pair listed by one side
// only gets weight 1. Duplicate mentions within a single row count once.
func BuildCollaboratorGraph(ds *dataset.Dataset) *Graph {
	g := NewGraph()
	for _, rec := range ds.Records {
		g.AddVertex(rec.Name)
	}

	for _, rec := range ds.Records {
		seen := make(map[string]bool)
		for _, collab := range dataset.SplitList(rec.Collaborators) {
			if collab == rec.Name || !ds.Has(collab) || seen[collab] {
				continue
			}
			seen[collab] = true
			g.AddEdge(rec.Name, collab, 1)
		}
	}
	return g
}

// SharedAttributeOptions configures BuildSharedAttributeGraph.
type SharedAttributeOptions struct {
	// WeightByShared sets each edge's weight to the number of shared
	// tokens instead of 1.
	WeightByShared bool
	// UseGenres selects the genres field as the attribute source instead
	// of the detected categories.
	UseGenres bool
}

// BuildSharedAttributeGraph connects records that share at least one
// category token. Fields are parsed once per record up front; the pairwise
// pass reuses the parsed sets. O(n²) in record count.
func BuildSharedAttributeGraph(ds *dataset.Dataset, opts SharedAttributeOptions) *Graph {
	g := NewGraph()

	n := len(ds.Records)
	names := make([]string, n)
	sets := make([]map[string]bool, n)
	for i, rec := range ds.Records {
		g.AddVertex(rec.Name)
		names[i] = rec.Name
		if opts.UseGenres {
			sets[i] = dataset.TokenSet(rec.Genres)
		} else {
			sets[i] = dataset.TokenSet(rec.Categories)
		}
	}

	connectShared(g, names, sets, opts.WeightByShared)
	return g
}

// BuildSharedTagGraph connects records that share at least one tag from an
// externally supplied per-artist tag set, e.g. stored last.fm tags.
// Artists with no tag set stay isolated.
func BuildSharedTagGraph(ds *dataset.Dataset, tags map[string]map[string]bool, weightByShared bool) *Graph {
	g := NewGraph()

	names := ds.Names()
	sets := make([]map[string]bool, len(names))
	for i, name := range names {
		g.AddVertex(name)
		sets[i] = tags[name]
	}

	connectShared(g, names, sets, weightByShared)
	return g
}

func connectShared(g *Graph, names []string, sets []map[string]bool, weightByShared bool) {
	for i := 0; i < len(names); i++ {
		if len(sets[i]) == 0 {
			continue
		}
		for j := i + 1; j < len(names); j++ {
			shared := 0
			for token := range sets[i] {
				if sets[j][token] {
					shared++
				}
			}
			if shared == 0 {
				continue
			}
			weight := 1
			if weightByShared {
				weight = shared
			}
			g.AddEdge(names[i], names[j], weight)
		}
	}
}

// BuildFromEdges builds a graph from a pre-built edge table. When ds is
// non-nil it defines the known entity set: rows referencing unknown names
// are dropped and every record becomes a vertex even if isolated. When ds
// is nil, vertices are taken from the edge rows themselves. Repeated pairs
// accumulate weight; self-pairs are skipped.
func BuildFromEdges(rows []dataset.EdgeRow, ds *dataset.Dataset) *Graph {
	g := NewGraph()
	if ds != nil {
		for _, rec := range ds.Records {
			g.AddVertex(rec.Name)
		}
	}

	for _, row := range rows {
		if row.Source == row.Target {
			continue
		}
		if ds != nil && (!ds.Has(row.Source) || !ds.Has(row.Target)) {
			continue
		}
		g.AddEdge(row.Source, row.Target, row.Weight)
	}
	return g
}
