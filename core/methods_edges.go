// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/EdgesBetween/Edges/EdgeCount,
//       and nextEdgeID().
// Determinism:
//   - Edges() and EdgesBetween() return edges in creation order.
//   - nextEdgeID() is monotonic ("e" + decimal).

package core

import (
	"sort"
	"strconv"
)

// edgeIDPrefix keeps edge identifiers human-readable: "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge creates a new undirected edge between from and to and returns its ID.
// Missing endpoints are added as vertices.
//
// Steps:
//  1. Validate IDs and loops.
//  2. Ensure endpoints exist.
//  3. Reject a parallel edge.
//  4. Store the edge and mirror adjacency both ways.
//
// Returns ErrEmptyVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Ensure vertices exist
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	// 3) Multi-edge check
	if len(g.adjacency[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	// 4) Store and link adjacency
	seq := g.nextEdgeID + 1
	g.nextEdgeID = seq
	e := &Edge{ID: nextEdgeID(seq), From: from, To: to, seq: seq}
	g.edges[e.ID] = e
	g.link(e)

	return e.ID, nil
}

// link records e in both adjacency directions. Caller holds g.mu.
func (g *Graph) link(e *Edge) {
	if g.adjacency[e.From][e.To] == nil {
		g.adjacency[e.From][e.To] = make(map[string]struct{})
	}
	if g.adjacency[e.To][e.From] == nil {
		g.adjacency[e.To][e.From] = make(map[string]struct{})
	}
	g.adjacency[e.From][e.To][e.ID] = struct{}{}
	g.adjacency[e.To][e.From][e.ID] = struct{}{}
}

// unlink removes e from both adjacency directions and drops empty buckets.
func (g *Graph) unlink(e *Edge) {
	for _, pair := range [2][2]string{{e.From, e.To}, {e.To, e.From}} {
		bucket := g.adjacency[pair[0]][pair[1]]
		delete(bucket, e.ID)
		if len(bucket) == 0 {
			delete(g.adjacency[pair[0]], pair[1])
		}
	}
}

// RemoveEdge deletes one edge by ID.
// Returns ErrEdgeNotFound if the edge does not exist.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	g.unlink(e)

	return nil
}

// RestoreEdge re-inserts a previously removed edge under its original ID.
// Both endpoints must still exist. Restoring an edge that is present is a no-op.
func (g *Graph) RestoreEdge(e Edge) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.vertices[e.From]; !ok {
		return ErrVertexNotFound
	}
	if _, ok := g.vertices[e.To]; !ok {
		return ErrVertexNotFound
	}
	if _, ok := g.edges[e.ID]; ok {
		return nil
	}
	restored := e
	g.edges[e.ID] = &restored
	g.link(&restored)

	return nil
}

// HasEdge reports whether at least one edge joins a and b.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[a][b]) > 0
}

// EdgesBetween returns all edges joining a and b in creation order.
func (g *Graph) EdgesBetween(a, b string) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, 0, len(g.adjacency[a][b]))
	for eid := range g.adjacency[a][b] {
		out = append(out, g.edges[eid])
	}
	sortEdges(out)

	return out
}

// Edges returns all edges in creation order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// sortEdges orders edges by creation sequence.
func sortEdges(edges []*Edge) {
	sort.Slice(edges, func(i, j int) bool { return edges[i].seq < edges[j].seq })
}

// nextEdgeID formats a sequence number as an edge ID without fmt.
func nextEdgeID(seq uint64) string {
	buf := make([]byte, 0, 8)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, seq, 10)

	return string(buf)
}
