package cluster

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/openspace/core"
	"github.com/katalvlaran/openspace/flow"
	"github.com/katalvlaran/openspace/preference"
)

// Resolve computes the final clusters of g.
//
// Steps:
//  1. Components of the want graph (union phase).
//  2. For each component holding at least one avoid pair, split it on the
//     induced want subgraph (conflict resolution phase).
//  3. Collect the components of every split subgraph, order clusters by
//     their first member's roster position and number them from 1.
//
// The only errors are context cancellation and flow failures, which cannot
// happen on a valid preference graph.
func Resolve(ctx context.Context, g *preference.Graph, opts ...Option) (*Result, error) {
	cfg := newConfig(opts...)
	res := &Result{byPerson: make(map[preference.Person]int, g.Len())}
	pairs := g.AvoidPairs()

	var groups [][]string
	// 1) Union phase
	for _, comp := range Components(g.Want()) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		inside := pairsWithin(comp, pairs)
		if len(inside) == 0 {
			groups = append(groups, comp)
			continue
		}

		// 2) Conflict resolution on this component only
		keep := make(map[string]bool, len(comp))
		for _, id := range comp {
			keep[id] = true
		}
		sub := core.InducedSubgraph(g.Want(), keep)
		removed, err := split(ctx, sub, inside, cfg.log)
		if err != nil {
			return nil, err
		}
		res.Removed = append(res.Removed, removed...)
		groups = append(groups, Components(sub)...)
	}

	// 3) Order and number
	sort.SliceStable(groups, func(i, j int) bool {
		return g.Index(preference.Person(groups[i][0])) < g.Index(preference.Person(groups[j][0]))
	})
	for i, grp := range groups {
		c := Cluster{ID: i + 1, Members: make([]preference.Person, len(grp))}
		for j, id := range grp {
			c.Members[j] = preference.Person(id)
			res.byPerson[c.Members[j]] = i
		}
		res.Clusters = append(res.Clusters, c)
	}

	return res, nil
}

// split removes want edges from sub until no pair shares a component, and
// returns the removed edges.
//
// Steps:
//  1. For each pair still connected, cut a minimum edge cut between its
//     endpoints (nearest pair.A) and delete those edges.
//  2. Pruning pass: restore each cut edge in cut order; if that reconnects
//     any pair, delete it again and keep it in the result.
//
// The result is inclusion-minimal: edges restored by step 2 only add
// connectivity, so every edge kept by step 2 still reconnects a pair in the
// final graph, and so would any proper subset of the result.
func split(ctx context.Context, sub *core.Graph, pairs []preference.Pair, log *zap.Logger) ([]RemovedEdge, error) {
	type cutEdge struct {
		edge   core.Edge
		reason preference.Pair
	}
	var cuts []cutEdge

	// 1) Greedy minimum cuts, one pair at a time
	for _, p := range pairs {
		if !connected(sub, p.A, p.B) {
			continue
		}
		opts := flow.FlowOptions{OnAugment: func(path []string, delta int64) {
			log.Debug("augmenting path",
				zap.String("avoid", string(p.A)+" / "+string(p.B)),
				zap.Strings("path", path),
				zap.Int64("delta", delta),
			)
		}}
		cut, err := flow.MinCut(ctx, sub, string(p.A), string(p.B), &opts)
		if err != nil {
			return nil, err
		}
		log.Debug("pair cut", zap.String("avoid", string(p.A)+" / "+string(p.B)), zap.Int64("edges", cut.Value))
		for _, e := range cut.Edges {
			if err = sub.RemoveEdge(e.ID); err != nil {
				return nil, err
			}
			cuts = append(cuts, cutEdge{edge: e, reason: p})
		}
	}

	// 2) Pruning pass
	var out []RemovedEdge
	for _, c := range cuts {
		if err := sub.RestoreEdge(c.edge); err != nil {
			return nil, err
		}
		if !anyConnected(sub, pairs) {
			continue
		}
		if err := sub.RemoveEdge(c.edge.ID); err != nil {
			return nil, err
		}
		out = append(out, RemovedEdge{
			A:      preference.Person(c.edge.From),
			B:      preference.Person(c.edge.To),
			Reason: c.reason,
		})
	}

	return out, nil
}

// pairsWithin returns the pairs whose both endpoints are in comp.
func pairsWithin(comp []string, pairs []preference.Pair) []preference.Pair {
	in := make(map[preference.Person]bool, len(comp))
	for _, id := range comp {
		in[preference.Person(id)] = true
	}
	var out []preference.Pair
	for _, p := range pairs {
		if in[p.A] && in[p.B] {
			out = append(out, p)
		}
	}

	return out
}

// connected reports whether a and b are joined by a path in g.
func connected(g *core.Graph, a, b preference.Person) bool {
	return anyConnected(g, []preference.Pair{{A: a, B: b}})
}

// anyConnected reports whether any pair is joined by a path in g.
func anyConnected(g *core.Graph, pairs []preference.Pair) bool {
	d := NewDisjointSet(g.Vertices())
	for _, e := range g.Edges() {
		d.Union(e.From, e.To)
	}
	for _, p := range pairs {
		if d.Connected(string(p.A), string(p.B)) {
			return true
		}
	}

	return false
}
