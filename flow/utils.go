package flow

import (
	"context"
	"sort"

	"github.com/katalvlaran/openspace/core"
)

// buildResidual constructs the initial residual network of g.
//
// Steps:
//  1. Index vertices in graph order.
//  2. For every edge, add a unit arc u→v and a unit arc v→u.
//  3. Order each vertex's arc targets by vertex index for deterministic BFS.
//
// Complexity:
//
//	Time:   O(V + E + Σ deg·log deg).
//	Memory: O(V + E).
func buildResidual(ctx context.Context, g *core.Graph) (*Residual, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 1) Index vertices
	order := g.Vertices()
	r := &Residual{
		order:   order,
		index:   make(map[string]int, len(order)),
		arcs:    make(map[string]map[string]int64, len(order)),
		targets: make(map[string][]string, len(order)),
	}
	for i, id := range order {
		r.index[id] = i
		r.arcs[id] = make(map[string]int64)
	}

	// 2) Unit capacities, mirrored for undirected edges
	for _, e := range g.Edges() {
		r.arcs[e.From][e.To]++
		r.arcs[e.To][e.From]++
	}

	// 3) Deterministic target order
	for u, inner := range r.arcs {
		ts := make([]string, 0, len(inner))
		for v := range inner {
			ts = append(ts, v)
		}
		sort.Slice(ts, func(i, j int) bool { return r.index[ts[i]] < r.index[ts[j]] })
		r.targets[u] = ts
	}

	return r, nil
}

// sortedTargets returns the arc targets of u in vertex order.
func (r *Residual) sortedTargets(u string) []string {
	return r.targets[u]
}

// augmentingPath finds the shortest path source→sink with positive residual
// capacity and returns it with its bottleneck. Returns nil, 0 if none exists.
func (r *Residual) augmentingPath(source, sink string) ([]string, int64) {
	parent := map[string]string{}
	visited := map[string]bool{source: true}
	queue := []string{source}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range r.sortedTargets(u) {
			if visited[v] || r.arcs[u][v] <= 0 {
				continue
			}
			visited[v] = true
			parent[v] = u
			if v == sink {
				// reconstruct path and bottleneck
				path := []string{sink}
				bottle := r.arcs[u][v]
				for cur := sink; cur != source; cur = parent[cur] {
					p := parent[cur]
					if c := r.arcs[p][cur]; c < bottle {
						bottle = c
					}
					path = append(path, p)
				}
				for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
					path[i], path[j] = path[j], path[i]
				}

				return path, bottle
			}
			queue = append(queue, v)
		}
	}

	return nil, 0
}
