package network

import (
	"math/rand"
	"sort"
)

// CommunityOptions configures Communities.
type CommunityOptions struct {
	// Seed fixes the node-visit shuffle for reproducible assignments.
	// Zero means an unseeded (time-dependent) run.
	Seed int64
	// MaxLevels caps the number of aggregation levels. Zero means the
	// default of 10.
	MaxLevels int
	// MinGain is the minimum modularity improvement for a node move.
	// Zero means the default of 1e-7.
	MinGain float64
}

// Communities partitions the graph's vertices by greedy modularity
// maximization (Louvain): repeated local moving followed by contraction of
// communities into super-nodes, until no level improves modularity.
// Returns a vertex → community id mapping; ids are dense and ordered by
// each community's first vertex in graph insertion order.
func Communities(g *Graph, opts CommunityOptions) map[string]int {
	if opts.MaxLevels == 0 {
		opts.MaxLevels = 10
	}
	if opts.MinGain == 0 {
		opts.MinGain = 1e-7
	}
	rng := rand.New(rand.NewSource(opts.Seed))
	if opts.Seed == 0 {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	vertices := g.Vertices()
	n := len(vertices)
	assignment := make(map[string]int, n)
	if n == 0 {
		return assignment
	}

	// Working level: nodes are ints, adjacency is weighted. Level 0 nodes
	// are the vertices themselves.
	adj := make([]map[int]float64, n)
	loops := make([]float64, n)
	for i, v := range vertices {
		adj[i] = make(map[int]float64)
		for b, w := range g.adj[v] {
			adj[i][g.index[b]] = float64(w)
		}
		loops[i] = float64(g.loops[v])
	}

	// nodeOf[i] is the current community of original vertex i, updated
	// after each level's contraction.
	nodeOf := make([]int, n)
	for i := range nodeOf {
		nodeOf[i] = i
	}

	for level := 0; level < opts.MaxLevels; level++ {
		comm, improved := localMoving(adj, loops, rng, opts.MinGain)
		if !improved && level > 0 {
			break
		}

		// Renumber communities densely in order of lowest member node.
		renumber := make(map[int]int)
		next := 0
		for node := 0; node < len(adj); node++ {
			if _, ok := renumber[comm[node]]; !ok {
				renumber[comm[node]] = next
				next++
			}
		}
		for i := range nodeOf {
			nodeOf[i] = renumber[comm[nodeOf[i]]]
		}

		if next == len(adj) {
			// No merging happened; further levels cannot improve.
			break
		}

		adj, loops = aggregate(adj, loops, comm, renumber, next)
		if !improved {
			break
		}
	}

	for i, v := range vertices {
		assignment[v] = nodeOf[i]
	}
	return assignment
}

// localMoving runs one level of the Louvain local-moving phase on an
// integer-node weighted adjacency. Returns the community of each node and
// whether any move improved modularity.
func localMoving(adj []map[int]float64, loops []float64, rng *rand.Rand, minGain float64) ([]int, bool) {
	n := len(adj)
	comm := make([]int, n)
	strength := make([]float64, n)
	commStrength := make([]float64, n)
	totalWeight := 0.0

	for i := range adj {
		comm[i] = i
		s := loops[i] * 2
		for _, w := range adj[i] {
			s += w
		}
		strength[i] = s
		commStrength[i] = s
		totalWeight += loops[i]
		for j, w := range adj[i] {
			if i < j {
				totalWeight += w
			}
		}
	}
	if totalWeight == 0 {
		return comm, false
	}
	m2 := 2 * totalWeight

	improvedEver := false
	for pass := 0; pass < 100; pass++ {
		improved := false

		order := rng.Perm(n)
		for _, node := range order {
			current := comm[node]

			// Weight from node to each neighboring community.
			weightTo := map[int]float64{current: 0}
			for nbr, w := range adj[node] {
				weightTo[comm[nbr]] += w
			}

			// Remove node from its community while evaluating moves.
			commStrength[current] -= strength[node]

			bestComm := current
			bestGain := 0.0
			for candidate, wTo := range weightTo {
				gain := wTo - commStrength[candidate]*strength[node]/m2
				if gain > bestGain+minGain {
					bestGain = gain
					bestComm = candidate
				} else if gain > bestGain-minGain && candidate < bestComm {
					// Deterministic tie-break so seeded runs are stable.
					bestComm = candidate
				}
			}

			commStrength[bestComm] += strength[node]
			if bestComm != current {
				comm[node] = bestComm
				improved = true
				improvedEver = true
			}
		}

		if !improved {
			break
		}
	}
	return comm, improvedEver
}

// aggregate contracts communities into super-nodes, summing edge weights
// between communities and folding internal weight into self-loops.
func aggregate(adj []map[int]float64, loops []float64, comm []int, renumber map[int]int, size int) ([]map[int]float64, []float64) {
	newAdj := make([]map[int]float64, size)
	newLoops := make([]float64, size)
	for i := range newAdj {
		newAdj[i] = make(map[int]float64)
	}

	for node := range adj {
		a := renumber[comm[node]]
		newLoops[a] += loops[node]
		for nbr, w := range adj[node] {
			b := renumber[comm[nbr]]
			if a == b {
				if node < nbr {
					newLoops[a] += w
				}
				continue
			}
			newAdj[a][b] += w
		}
	}
	return newAdj, newLoops
}

// Modularity measures the quality of a community assignment: the fraction
// of edge weight inside communities minus the expectation under the
// configuration null model. Empty graphs score 0.
func Modularity(g *Graph, assignment map[string]int) float64 {
	totalWeight := float64(g.TotalWeight())
	if totalWeight == 0 {
		return 0
	}
	m2 := 2 * totalWeight

	internal := 0.0
	commStrength := make(map[int]float64)
	for _, v := range g.Vertices() {
		s := float64(g.loops[v]) * 2
		for b, w := range g.adj[v] {
			s += float64(w)
			if assignment[v] == assignment[b] {
				internal += float64(w)
			}
		}
		internal += float64(g.loops[v]) * 2
		commStrength[assignment[v]] += s
	}

	q := internal / m2
	for _, s := range commStrength {
		q -= (s / m2) * (s / m2)
	}
	return q
}

// Community is one detected community's id and members.
type Community struct {
	ID      int
	Members []string
}

// GroupCommunities converts an assignment into per-community member
// lists, largest first.
func GroupCommunities(assignment map[string]int, order []string) []Community {
	byID := make(map[int][]string)
	for _, v := range order {
		id, ok := assignment[v]
		if !ok {
			continue
		}
		byID[id] = append(byID[id], v)
	}

	communities := make([]Community, 0, len(byID))
	for id, members := range byID {
		communities = append(communities, Community{ID: id, Members: members})
	}
	sort.Slice(communities, func(i, j int) bool {
		if len(communities[i].Members) != len(communities[j].Members) {
			return len(communities[i].Members) > len(communities[j].Members)
		}
		return communities[i].ID < communities[j].ID
	})
	return communities
}
