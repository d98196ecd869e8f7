package flow

import (
	"fmt"

	"github.com/katalvlaran/openspace/core"
)

// ErrSourceNotFound is returned when the specified source vertex is missing.
var ErrSourceNotFound = fmt.Errorf("flow: %w", errSourceNotFound)
var errSourceNotFound = fmt.Errorf("source vertex not found")

// ErrSinkNotFound is returned when the specified sink vertex is missing.
var ErrSinkNotFound = fmt.Errorf("flow: %w", errSinkNotFound)
var errSinkNotFound = fmt.Errorf("sink vertex not found")

// ErrSameEndpoints is returned when source and sink are the same vertex.
var ErrSameEndpoints = fmt.Errorf("flow: source and sink are the same vertex")

// FlowOptions configures the max-flow computation.
//   - OnAugment: if set, called after every augmentation with the path and
//     the amount pushed along it.
type FlowOptions struct {
	OnAugment func(path []string, delta int64)
}

// DefaultOptions returns FlowOptions with no hooks.
func DefaultOptions() FlowOptions {
	return FlowOptions{}
}

// Cut is a minimum edge cut between two vertices of an undirected graph.
type Cut struct {
	// Value is the total capacity of the cut edges (the max-flow value).
	Value int64

	// SourceSide lists the vertices reachable from the source in the final
	// residual network, in graph order.
	SourceSide []string

	// Edges are the graph edges with exactly one endpoint in SourceSide,
	// in edge creation order.
	Edges []core.Edge
}

// Residual holds remaining arc capacities after a max-flow run.
type Residual struct {
	order []string                    // vertex IDs in graph order
	index map[string]int              // vertex ID → position in order
	arcs  map[string]map[string]int64 // arcs[u][v] = remaining capacity u→v

	// targets[u] lists every v with an arc u→v, ordered by index[v].
	targets map[string][]string
}

// Reachable returns the vertices reachable from source over arcs with
// positive remaining capacity, in graph order.
func (r *Residual) Reachable(source string) []string {
	seen := map[string]bool{source: true}
	queue := []string{source}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range r.sortedTargets(u) {
			if !seen[v] && r.arcs[u][v] > 0 {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}
	out := make([]string, 0, len(seen))
	for _, id := range r.order {
		if seen[id] {
			out = append(out, id)
		}
	}

	return out
}
