// File: view.go
// Role: Non-mutating graph views: Clone and InducedSubgraph.
// Determinism:
//   - Preserves vertex order, edge IDs and edge creation order.

package core

// Clone returns a deep copy of the graph topology. Vertex Metadata maps are
// shared, everything else is fresh.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return g.induced(nil)
}

// InducedSubgraph returns a new Graph induced by the set keep of vertex IDs:
// the result contains only vertices v where keep[v] is true, and all edges
// whose endpoints are both kept. Vertex order follows g. The input graph is
// not mutated.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	if keep == nil {
		keep = map[string]bool{}
	}

	return g.induced(keep)
}

// induced copies g restricted to keep; a nil keep copies everything.
func (g *Graph) induced(keep map[string]bool) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]map[string]struct{}),
		// Carry the counter forward so new edges never collide with copied IDs.
		nextEdgeID: g.nextEdgeID,
	}
	kept := func(id string) bool { return keep == nil || keep[id] }

	for _, id := range g.order {
		if !kept(id) {
			continue
		}
		v := g.vertices[id]
		out.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		out.order = append(out.order, id)
		out.adjacency[id] = make(map[string]map[string]struct{})
	}
	for eid, e := range g.edges {
		if !kept(e.From) || !kept(e.To) {
			continue
		}
		ne := *e
		out.edges[eid] = &ne
		out.link(&ne)
	}

	return out
}
