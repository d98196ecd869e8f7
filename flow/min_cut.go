package flow

import (
	"context"

	"github.com/katalvlaran/openspace/core"
)

// MinCut returns a minimum edge cut separating source from sink in the
// undirected graph g.
//
// Steps:
//  1. Run EdmondsKarp to saturation.
//  2. Collect S, the vertices reachable from source in the residual network.
//  3. Every edge with exactly one endpoint in S is a cut edge.
//
// The cut returned is the minimum cut closest to source: any other minimum
// cut has a source side that contains S. Callers pass the avoid pair's first
// person as source, so the removed want edges sit next to that person and
// the rest of their group stays together.
//
// Errors are those of EdmondsKarp. A source and sink already disconnected
// yield a Cut with Value 0 and no edges.
func MinCut(
	ctx context.Context,
	g *core.Graph,
	source, sink string,
	opts *FlowOptions,
) (*Cut, error) {
	// 1) Saturate
	value, residual, err := EdmondsKarp(ctx, g, source, sink, opts)
	if err != nil {
		return nil, err
	}

	// 2) Source side
	side := residual.Reachable(source)
	inSide := make(map[string]bool, len(side))
	for _, id := range side {
		inSide[id] = true
	}

	// 3) Crossing edges
	cut := &Cut{Value: value, SourceSide: side}
	for _, e := range g.Edges() {
		if inSide[e.From] != inSide[e.To] {
			cut.Edges = append(cut.Edges, *e)
		}
	}

	return cut, nil
}
