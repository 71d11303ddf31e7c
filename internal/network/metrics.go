package network

// Degree returns the per-vertex count of incident edges. Self-loops are
// not counted.
func Degree(g *Graph) map[string]int {
	deg := make(map[string]int, g.VertexCount())
	for _, v := range g.Vertices() {
		deg[v] = len(g.adj[v])
	}
	return deg
}

// WeightedDegree returns the per-vertex sum of incident edge weights.
func WeightedDegree(g *Graph) map[string]int {
	deg := make(map[string]int, g.VertexCount())
	for _, v := range g.Vertices() {
		total := 0
		for _, w := range g.adj[v] {
			total += w
		}
		deg[v] = total
	}
	return deg
}

// LocalClustering returns each vertex's local clustering coefficient:
// the fraction of its neighbor pairs that are themselves connected.
// Vertices of degree 0 or 1 get coefficient 0.
func LocalClustering(g *Graph) map[string]float64 {
	coeff := make(map[string]float64, g.VertexCount())
	for _, v := range g.Vertices() {
		nbrs := g.Neighbors(v)
		k := len(nbrs)
		if k < 2 {
			coeff[v] = 0
			continue
		}
		links := 0
		for i := 0; i < k; i++ {
			for j := i + 1; j < k; j++ {
				if g.HasEdge(nbrs[i], nbrs[j]) {
					links++
				}
			}
		}
		coeff[v] = 2 * float64(links) / float64(k*(k-1))
	}
	return coeff
}

// GlobalClustering returns the graph's transitivity: three times the
// number of triangles over the number of connected triples. A graph with
// no connected triples has coefficient 0.
func GlobalClustering(g *Graph) float64 {
	triangles := 0
	triples := 0
	for _, v := range g.Vertices() {
		nbrs := g.Neighbors(v)
		k := len(nbrs)
		if k < 2 {
			continue
		}
		triples += k * (k - 1) / 2
		for i := 0; i < k; i++ {
			for j := i + 1; j < k; j++ {
				if g.HasEdge(nbrs[i], nbrs[j]) {
					triangles++
				}
			}
		}
	}
	if triples == 0 {
		return 0
	}
	// Each triangle is counted once per corner.
	return float64(triangles) / float64(triples)
}

// Components returns the connected components as slices of vertex names,
// largest first. Vertex order within a component follows insertion order.
func Components(g *Graph) [][]string {
	visited := make(map[string]bool, g.VertexCount())
	var components [][]string

	for _, start := range g.Vertices() {
		if visited[start] {
			continue
		}
		var component []string
		queue := []string{start}
		visited[start] = true
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			component = append(component, v)
			for _, n := range g.Neighbors(v) {
				if !visited[n] {
					visited[n] = true
					queue = append(queue, n)
				}
			}
		}
		components = append(components, component)
	}

	for i := 1; i < len(components); i++ {
		for j := i; j > 0 && len(components[j]) > len(components[j-1]); j-- {
			components[j], components[j-1] = components[j-1], components[j]
		}
	}
	return components
}

// LargestComponent returns the vertices of the largest connected
// component, or nil for an empty graph.
func LargestComponent(g *Graph) []string {
	components := Components(g)
	if len(components) == 0 {
		return nil
	}
	return components[0]
}

// AveragePathLength returns the mean shortest-path distance over all
// vertex pairs of the largest connected component. Vertices outside that
// component never contribute. Returns 0 when the largest component has
// fewer than two vertices.
func AveragePathLength(g *Graph) float64 {
	component := LargestComponent(g)
	if len(component) < 2 {
		return 0
	}
	inComponent := make(map[string]bool, len(component))
	for _, v := range component {
		inComponent[v] = true
	}

	totalDist := 0
	pairs := 0
	for _, source := range component {
		dist := bfsDistances(g, source, inComponent)
		for _, d := range dist {
			totalDist += d
		}
		pairs += len(dist) - 1 // exclude the source itself
	}
	if pairs == 0 {
		return 0
	}
	return float64(totalDist) / float64(pairs)
}

func bfsDistances(g *Graph, source string, within map[string]bool) map[string]int {
	dist := map[string]int{source: 0}
	queue := []string{source}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbors(v) {
			if within != nil && !within[n] {
				continue
			}
			if _, seen := dist[n]; !seen {
				dist[n] = dist[v] + 1
				queue = append(queue, n)
			}
		}
	}
	return dist
}
