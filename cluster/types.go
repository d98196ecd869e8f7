// Package cluster turns a preference graph into seating clusters.
//
// Resolution runs in two phases:
//
//  1. Union: connected components of the want graph (union-find), which is
//     the transitive closure of "wants to sit with" in both directions.
//  2. Conflict resolution: inside every component holding an avoid pair,
//     want edges are cut with minimum edge cuts until each pair is
//     separated, then every cut edge whose return would not reunite an
//     avoid pair is restored. The set of removed edges is therefore
//     inclusion-minimal: no proper subset of it separates all avoid pairs.
//
// A person without preferences is a singleton cluster. Cut selection uses
// the minimum cut nearest the first-named person of the pair, and both
// phases visit people in roster order, so equal input always gives equal
// clusters.
package cluster

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/openspace/preference"
)

// Cluster is a non-empty group of people to be seated together.
type Cluster struct {
	// ID numbers clusters from 1 in output order.
	ID int

	// Members in roster order.
	Members []preference.Person
}

// Size returns the number of members.
func (c Cluster) Size() int { return len(c.Members) }

// Has reports whether p belongs to c.
func (c Cluster) Has(p preference.Person) bool {
	for _, m := range c.Members {
		if m == p {
			return true
		}
	}

	return false
}

// RemovedEdge is a want edge dropped to honour an avoid pair.
type RemovedEdge struct {
	// A and B are the endpoints of the want edge, as authored.
	A, B preference.Person

	// Reason is the avoid pair whose separation required the cut.
	Reason preference.Pair
}

// Result is the outcome of Resolve.
type Result struct {
	// Clusters ordered by the roster position of their first member.
	Clusters []Cluster

	// Removed lists dropped want edges in the order they were cut.
	Removed []RemovedEdge

	byPerson map[preference.Person]int // person → index into Clusters
}

// ClusterOf returns the cluster holding p.
func (r *Result) ClusterOf(p preference.Person) (Cluster, bool) {
	i, ok := r.byPerson[p]
	if !ok {
		return Cluster{}, false
	}

	return r.Clusters[i], true
}

// Together reports whether a and b ended up in the same cluster.
func (r *Result) Together(a, b preference.Person) bool {
	ia, okA := r.byPerson[a]
	ib, okB := r.byPerson[b]

	return okA && okB && ia == ib
}

// Option configures Resolve.
type Option func(*config)

type config struct {
	log *zap.Logger
}

// WithLogger sets the logger that receives each augmenting path and cut at
// debug level. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("cluster: WithLogger(nil)")
	}
	return func(c *config) {
		c.log = l
	}
}

func newConfig(opts ...Option) config {
	c := config{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
