package cluster

import "github.com/katalvlaran/openspace/core"

// DisjointSet is a union-find structure over string IDs with path
// compression and union by rank.
type DisjointSet struct {
	parent map[string]string
	rank   map[string]int
}

// NewDisjointSet returns a set in which every id is its own root.
func NewDisjointSet(ids []string) *DisjointSet {
	d := &DisjointSet{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		d.Add(id)
	}

	return d
}

// Add inserts id as a singleton. Existing ids are left alone.
func (d *DisjointSet) Add(id string) {
	if _, ok := d.parent[id]; !ok {
		d.parent[id] = id
	}
}

// Find returns the root of id. Unknown ids are added as singletons.
// Iterative to avoid deep recursion on long chains.
func (d *DisjointSet) Find(id string) string {
	d.Add(id)
	for d.parent[id] != id {
		// Path compression: point id at its grandparent.
		d.parent[id] = d.parent[d.parent[id]]
		id = d.parent[id]
	}

	return id
}

// Union merges the sets of a and b and reports whether they were disjoint.
func (d *DisjointSet) Union(a, b string) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	// Attach smaller-rank tree under larger-rank root.
	switch {
	case d.rank[ra] < d.rank[rb]:
		d.parent[ra] = rb
	case d.rank[ra] > d.rank[rb]:
		d.parent[rb] = ra
	default:
		d.parent[rb] = ra
		d.rank[ra]++
	}

	return true
}

// Connected reports whether a and b share a root.
func (d *DisjointSet) Connected(a, b string) bool {
	return d.Find(a) == d.Find(b)
}

// Components returns the connected components of g.
// Components are ordered by their first vertex in g's vertex order, and
// members keep that order too.
//
// Complexity: O(V + E·α(V)).
func Components(g *core.Graph) [][]string {
	vertices := g.Vertices()
	d := NewDisjointSet(vertices)
	for _, e := range g.Edges() {
		d.Union(e.From, e.To)
	}

	slot := make(map[string]int, len(vertices)) // root → index in out
	var out [][]string
	for _, v := range vertices {
		root := d.Find(v)
		i, ok := slot[root]
		if !ok {
			i = len(out)
			slot[root] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], v)
	}

	return out
}
