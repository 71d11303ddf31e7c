package network

// Betweenness computes shortest-path betweenness centrality for every
// vertex using Brandes' accumulation. When normalized, scores are divided
// by (n-1)(n-2)/2, the maximum for an undirected graph of n vertices;
// graphs with fewer than three vertices score 0 everywhere.
func Betweenness(g *Graph, normalized bool) map[string]float64 {
	scores := make(map[string]float64, g.VertexCount())
	for _, v := range g.Vertices() {
		scores[v] = 0
	}

	for _, source := range g.Vertices() {
		// BFS from source, recording path counts and predecessors.
		dist := map[string]int{source: 0}
		paths := map[string]float64{source: 1}
		pred := make(map[string][]string)
		order := []string{source}
		queue := []string{source}

		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, n := range g.Neighbors(v) {
				if _, seen := dist[n]; !seen {
					dist[n] = dist[v] + 1
					queue = append(queue, n)
					order = append(order, n)
				}
				if dist[n] == dist[v]+1 {
					paths[n] += paths[v]
					pred[n] = append(pred[n], v)
				}
			}
		}

		// Accumulate dependencies in reverse BFS order.
		delta := make(map[string]float64)
		for i := len(order) - 1; i >= 0; i-- {
			w := order[i]
			for _, v := range pred[w] {
				delta[v] += paths[v] / paths[w] * (1 + delta[w])
			}
			if w != source {
				scores[w] += delta[w]
			}
		}
	}

	// Each undirected pair was counted from both endpoints.
	for v := range scores {
		scores[v] /= 2
	}

	if normalized {
		n := g.VertexCount()
		if n > 2 {
			max := float64(n-1) * float64(n-2) / 2
			for v := range scores {
				scores[v] /= max
			}
		} else {
			for v := range scores {
				scores[v] = 0
			}
		}
	}
	return scores
}

// Closeness computes closeness centrality: for each vertex, the number of
// reachable vertices over the sum of distances to them, scaled by the
// reachable fraction of the graph (the convention for disconnected
// graphs). Isolated vertices score 0.
func Closeness(g *Graph) map[string]float64 {
	n := g.VertexCount()
	scores := make(map[string]float64, n)
	for _, v := range g.Vertices() {
		dist := bfsDistances(g, v, nil)
		reachable := len(dist) - 1
		if reachable <= 0 {
			scores[v] = 0
			continue
		}
		total := 0
		for _, d := range dist {
			total += d
		}
		closeness := float64(reachable) / float64(total)
		if n > 1 {
			closeness *= float64(reachable) / float64(n-1)
		}
		scores[v] = closeness
	}
	return scores
}
