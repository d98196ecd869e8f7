package flow

import (
	"context"

	"github.com/katalvlaran/openspace/core"
)

// EdmondsKarp computes the maximum flow between source and sink of the
// undirected graph g using the Edmonds–Karp algorithm (BFS for shortest
// augmenting paths).
//
// It returns:
//   - maxFlow:  total flow value
//   - residual: remaining arc capacities after the flow
//   - err:      ErrSourceNotFound, ErrSinkNotFound, ErrSameEndpoints or a
//     context error.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(
	ctx context.Context,
	g *core.Graph,
	source, sink string,
	opts *FlowOptions,
) (maxFlow int64, residual *Residual, err error) {
	// 1) Validate presence of source/sink
	if !g.HasVertex(source) {
		return 0, nil, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return 0, nil, ErrSinkNotFound
	}
	if source == sink {
		return 0, nil, ErrSameEndpoints
	}
	if opts == nil {
		o := DefaultOptions()
		opts = &o
	}

	// 2) Build residual network
	residual, err = buildResidual(ctx, g)
	if err != nil {
		return 0, nil, err
	}

	// 3) Main loop: find BFS augmenting paths until none remain
	for {
		if err = ctx.Err(); err != nil {
			return maxFlow, nil, err
		}
		path, bottle := residual.augmentingPath(source, sink)
		if len(path) == 0 {
			break
		}
		// 4) Augment along the path
		for i := 0; i < len(path)-1; i++ {
			u, v := path[i], path[i+1]
			residual.arcs[u][v] -= bottle
			residual.arcs[v][u] += bottle
		}
		maxFlow += bottle
		if opts.OnAugment != nil {
			opts.OnAugment(path, bottle)
		}
	}

	return maxFlow, residual, nil
}
