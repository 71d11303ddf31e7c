package network

// ContractOptions configures Contract.
type ContractOptions struct {
	// KeepInternal retains edges whose endpoints map to the same group as
	// self-loops on the group vertex. Default is to drop them.
	KeepInternal bool
}

// Contract collapses a graph into a coarser one over a grouping attribute,
// e.g. artists into their record labels. groupOf maps each vertex to its
// group; vertices with an empty group are excluded entirely and contribute
// neither vertices nor edges. The g1–g2 weight is the number of original
// edges whose endpoint groups are {g1, g2}, so the contracted total weight
// (internal pairs included) equals the count of original edges with both
// endpoints grouped.
func Contract(g *Graph, groupOf map[string]string, opts ContractOptions) *Graph {
	out := NewGraph()
	for _, v := range g.Vertices() {
		if group := groupOf[v]; group != "" {
			out.AddVertex(group)
		}
	}

	for _, e := range g.Edges() {
		ga, gb := groupOf[e.A], groupOf[e.B]
		if ga == "" || gb == "" {
			continue
		}
		if ga == gb && !opts.KeepInternal {
			continue
		}
		out.AddEdge(ga, gb, 1)
	}
	return out
}
