// Package engine runs one seating organisation from roster to assignment.
//
// A run is a single synchronous pass:
//
//	people + preferences ─▶ preference.Build ─▶ cluster.Resolve
//	room description     ─▶ balance.Plan     ─▶ seating.Distribute ─▶ Result
//
// Validation errors (*preference.UnknownPersonError,
// *preference.SelfPreferenceError, ...) abort the run and are returned
// unchanged. *balance.RoomOverCapacityError is returned to the caller unless
// WithAutoGrow is set, in which case the engine adds a table and respreads
// everyone evenly. Lone-occupant advisories never fail a run; they are
// collected in Result.Advisories and combined by Result.Warnings.
//
// Every run draws from a seed. Result.Seed records it so that
// Run(ctx, in, WithSeed(res.Seed)) reproduces the same seating.
package engine

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/openspace/balance"
	"github.com/katalvlaran/openspace/cluster"
	"github.com/katalvlaran/openspace/preference"
	"github.com/katalvlaran/openspace/room"
	"github.com/katalvlaran/openspace/seating"
)

// RoomSpec describes the tables of a run.
type RoomSpec struct {
	// Capacities lists one capacity per table. When empty the room has
	// Tables tables of Capacity seats each.
	Capacities []int
	Tables     int
	Capacity   int

	// AutoBalance derives capacities from the headcount: everyone is
	// spread evenly over the table count.
	AutoBalance bool
}

// Layout returns the configured capacities.
func (s RoomSpec) Layout() []int {
	if len(s.Capacities) > 0 {
		out := make([]int, len(s.Capacities))
		copy(out, s.Capacities)
		return out
	}
	out := make([]int, s.Tables)
	for i := range out {
		out[i] = s.Capacity
	}

	return out
}

// Policy returns balance.EvenSplit for auto-balanced rooms and
// balance.Fixed otherwise.
func (s RoomSpec) Policy() balance.Policy {
	if s.AutoBalance {
		return balance.EvenSplit
	}

	return balance.Fixed
}

// Input is everything a run consumes.
type Input struct {
	People      []preference.Person
	Preferences []preference.Preference
	Room        RoomSpec
}

// Result is the outcome of a run.
type Result struct {
	// RunID identifies the run in logs and reports.
	RunID uuid.UUID

	// Seed reproduces this run with WithSeed.
	Seed int64

	// Room holds the final seating.
	Room *room.Room

	// Graph is the validated preference graph.
	Graph *preference.Graph

	Clusters []cluster.Cluster
	Removed  []cluster.RemovedEdge

	// Split lists IDs of clusters seated across several tables.
	Split []int

	Repairs    []seating.Repair
	Advisories []seating.LoneOccupantUnresolved

	// Policy is the capacity policy applied.
	Policy balance.Policy

	// TablesAdded counts tables added on request, by auto-grow or for
	// people no free seat could take.
	TablesAdded int
}

// Assignment returns the occupants of every table, in table order.
func (r *Result) Assignment() [][]preference.Person { return r.Room.Snapshot() }

// TotalSeats returns the sum of table capacities.
func (r *Result) TotalSeats() int { return r.Room.TotalSeats() }

// TotalPeople returns the number of seated people.
func (r *Result) TotalPeople() int { return r.Room.TotalPeople() }

// SeatsFree returns TotalSeats minus TotalPeople.
func (r *Result) SeatsFree() int { return r.Room.SeatsFree() }

// Warnings combines the advisories into one error, or nil when there are
// none. Use multierr.Errors to split it again.
func (r *Result) Warnings() error {
	var err error
	for _, a := range r.Advisories {
		err = multierr.Append(err, a)
	}

	return err
}

// Option configures Run.
type Option func(*config)

type config struct {
	log         *zap.Logger
	seed        int64
	seeded      bool
	rng         *rand.Rand
	autoGrow    bool
	extraTables int
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("engine: WithLogger(nil)")
	}
	return func(c *config) {
		c.log = l
	}
}

// WithSeed fixes the run seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed, c.seeded = seed, true
	}
}

// WithRand draws the run seed from r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("engine: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithAutoGrow lets the engine add tables instead of failing with
// *balance.RoomOverCapacityError. Tables for people blocked by avoid
// constraints are added regardless.
func WithAutoGrow() Option {
	return func(c *config) {
		c.autoGrow = true
	}
}

// WithExtraTables adds n tables before planning, respreading everyone
// evenly each time. Negative n is ignored.
func WithExtraTables(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.extraTables = n
		}
	}
}

func newConfig(opts ...Option) config {
	c := config{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&c)
	}
	switch {
	case c.seeded:
	case c.rng != nil:
		c.seed, c.seeded = c.rng.Int63(), true
	default:
		c.seed, c.seeded = time.Now().UnixNano(), true
	}

	return c
}
