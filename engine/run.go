package engine

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/openspace/balance"
	"github.com/katalvlaran/openspace/cluster"
	"github.com/katalvlaran/openspace/preference"
	"github.com/katalvlaran/openspace/room"
	"github.com/katalvlaran/openspace/seating"
)

// Run organises the seating for in.
//
// Steps:
//  1. Build and validate the preference graph.
//  2. Resolve clusters.
//  3. Add requested tables, then plan capacities (growing on demand).
//  4. Distribute; tables added for blocked people are counted in
//     TablesAdded whether or not auto-grow is set.
func Run(ctx context.Context, in Input, opts ...Option) (*Result, error) {
	cfg := newConfig(opts...)
	res := &Result{RunID: uuid.New(), Seed: cfg.seed, Policy: in.Room.Policy()}
	log := cfg.log.With(zap.String("run_id", res.RunID.String()))

	people := len(in.People)
	log.Info("run started",
		zap.Int("people", people),
		zap.Int("preferences", len(in.Preferences)),
		zap.Int("tables", len(in.Room.Layout())),
		zap.Stringer("policy", res.Policy),
		zap.Int64("seed", res.Seed),
	)

	// 1) Validation errors are returned as they are.
	g, err := preference.Build(in.People, in.Preferences)
	if err != nil {
		return nil, err
	}
	res.Graph = g

	// 2) Clusters.
	resolved, err := cluster.Resolve(ctx, g, cluster.WithLogger(log))
	if err != nil {
		return nil, err
	}
	res.Clusters, res.Removed = resolved.Clusters, resolved.Removed
	for _, r := range resolved.Removed {
		log.Info("want broken",
			zap.String("a", string(r.A)),
			zap.String("b", string(r.B)),
			zap.String("avoid", string(r.Reason.A)+" / "+string(r.Reason.B)),
		)
	}
	log.Info("clusters resolved", zap.Int("clusters", len(res.Clusters)), zap.Int("removed_edges", len(res.Removed)))

	// 3) Capacities.
	caps, err := plan(in.Room, people, cfg, res, log)
	if err != nil {
		return nil, err
	}
	r, err := room.New(caps)
	if err != nil {
		return nil, err
	}
	r.SetHeadcount(people)
	res.Room = r

	// 4) Seats. People no free seat can take get extra tables.
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	out, err := seating.Distribute(r, res.Clusters, g, seating.WithSeed(res.Seed), seating.WithLogger(log))
	if err != nil {
		return nil, err
	}
	res.Split, res.Repairs, res.Advisories = out.Split, out.Repairs, out.Advisories
	if out.TablesAdded > 0 {
		res.TablesAdded += out.TablesAdded
		log.Info("table added", zap.String("reason", "no compatible seat"),
			zap.Int("added", out.TablesAdded), zap.Ints("capacities", r.Capacities()))
	}

	for _, a := range res.Advisories {
		log.Warn("lone occupant", zap.String("person", string(a.Person)), zap.String("table", a.Table))
	}
	log.Info("run finished",
		zap.Int("total_seats", res.TotalSeats()),
		zap.Int("total_people", res.TotalPeople()),
		zap.Int("seats_free", res.SeatsFree()),
		zap.Int("tables_added", res.TablesAdded),
	)

	return res, nil
}

// plan applies requested extra tables and the capacity policy.
func plan(spec RoomSpec, people int, cfg config, res *Result, log *zap.Logger) ([]int, error) {
	caps := spec.Layout()
	var err error
	for i := 0; i < cfg.extraTables; i++ {
		if caps, err = balance.AddTable(people, len(caps)); err != nil {
			return nil, err
		}
		res.TablesAdded++
		log.Info("table added", zap.String("reason", "requested"), zap.Ints("capacities", caps))
	}

	planned, err := balance.Plan(res.Policy, people, caps)
	var over *balance.RoomOverCapacityError
	if errors.As(err, &over) && cfg.autoGrow {
		log.Info("room over capacity", zap.Int("deficit", over.Deficit))
		grown, added, gerr := balance.Grow(people, caps)
		if gerr != nil {
			return nil, gerr
		}
		res.TablesAdded += added
		log.Info("table added", zap.String("reason", "over capacity"), zap.Ints("capacities", grown))

		return grown, nil
	}

	return planned, err
}
