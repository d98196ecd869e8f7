package seating

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/openspace/balance"
	"github.com/katalvlaran/openspace/cluster"
	"github.com/katalvlaran/openspace/preference"
	"github.com/katalvlaran/openspace/room"
)

// distributor carries the state of one distribution.
type distributor struct {
	cfg       config
	room      *room.Room
	conflicts Conflicts
	clusterOf map[preference.Person]int // index into clusters
	sizeOf    []int
	people    int
}

func newDistributor(r *room.Room, clusters []cluster.Cluster, conflicts Conflicts, opts []Option) (*distributor, error) {
	if conflicts == nil {
		conflicts = noConflicts{}
	}
	d := &distributor{
		cfg:       newConfig(opts...),
		room:      r,
		conflicts: conflicts,
		clusterOf: make(map[preference.Person]int),
		sizeOf:    make([]int, len(clusters)),
	}
	for ci, c := range clusters {
		for _, m := range c.Members {
			if _, dup := d.clusterOf[m]; dup {
				return nil, fmt.Errorf("%w: %s", ErrDuplicatePerson, m)
			}
			d.clusterOf[m] = ci
			d.people++
		}
		d.sizeOf[ci] = c.Size()
	}

	return d, nil
}

// Distribute seats every member of clusters in r, replacing any previous
// seating. A person whom avoid constraints shut out of every free seat gets
// a seat freed by moving someone else, or else a new table of the widest
// capacity in r. Errors:
//   - *balance.RoomOverCapacityError when the people exceed the seats;
//   - *ConstraintViolationError from the final check (a defect);
//   - ErrDuplicatePerson when a person is in two clusters.
//
// Complexity: O(C·T·K) for C clusters, T tables, K people per table.
func Distribute(r *room.Room, clusters []cluster.Cluster, conflicts Conflicts, opts ...Option) (*Outcome, error) {
	d, err := newDistributor(r, clusters, conflicts, opts)
	if err != nil {
		return nil, err
	}
	if err = balance.Check(d.people, r.Capacities()); err != nil {
		return nil, err
	}
	r.Clear()
	r.SetHeadcount(d.people)

	out := &Outcome{}
	// 1) Placement, largest cluster first.
	for _, c := range d.order(clusters) {
		if c.Size() == 0 {
			continue
		}
		if err = d.place(c, out); err != nil {
			return nil, err
		}
	}

	// 2) Even out table sizes with unattached people.
	d.level(out)

	// 3) Lone occupants.
	d.repair(out)

	for ci, c := range clusters {
		if d.spans(ci) > 1 {
			out.Split = append(out.Split, c.ID)
		}
	}
	sort.Ints(out.Split)

	// 4) Seat order.
	d.shuffle()

	// 5) Final check.
	if err = Check(r, clusters, d.conflicts); err != nil {
		return nil, err
	}
	d.cfg.log.Debug("seating distributed",
		zap.Int("people", d.people),
		zap.Int("tables", r.Len()),
		zap.Ints("split_clusters", out.Split),
		zap.Int("repairs", len(out.Repairs)),
		zap.Int("tables_added", out.TablesAdded),
		zap.Int("advisories", len(out.Advisories)),
	)

	return out, nil
}

// order returns clusters sorted by size, descending, with ties in random
// order.
func (d *distributor) order(clusters []cluster.Cluster) []cluster.Cluster {
	out := make([]cluster.Cluster, 0, len(clusters))
	for _, i := range d.cfg.rng.Perm(len(clusters)) {
		out = append(out, clusters[i])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Size() > out[j].Size() })

	return out
}

// place seats c whole at a random compatible table with room for it, or
// spreads it when no such table exists.
func (d *distributor) place(c cluster.Cluster, out *Outcome) error {
	var fits []int
	for i, t := range d.room.Tables() {
		if t.Free() >= c.Size() && d.compatible(t, c.Members...) {
			fits = append(fits, i)
		}
	}
	if len(fits) == 0 {
		return d.spread(c, out)
	}

	i := fits[d.cfg.rng.Intn(len(fits))]
	for _, m := range c.Members {
		if err := d.room.Seat(i, m); err != nil {
			return err
		}
	}
	d.cfg.log.Debug("cluster placed", zap.Int("cluster", c.ID), zap.Int("size", c.Size()), zap.Int("table", i+1))

	return nil
}

// spread splits c over the tables with the most free seats first, which
// keeps the largest portion together and uses the fewest tables. Members
// blocked by an avoid constraint at one table move on to the next; those
// blocked everywhere go to seatBlocked.
func (d *distributor) spread(c cluster.Cluster, out *Outcome) error {
	pending := append([]preference.Person(nil), c.Members...)
	for _, i := range d.roomiest() {
		if len(pending) == 0 {
			break
		}
		t, err := d.room.Table(i)
		if err != nil {
			return err
		}
		var rest []preference.Person
		seated := 0
		for _, m := range pending {
			if t.Free() > 0 && d.compatible(t, m) {
				if err = d.room.Seat(i, m); err != nil {
					return err
				}
				seated++
				continue
			}
			rest = append(rest, m)
		}
		if seated > 0 {
			d.cfg.log.Debug("cluster portion placed", zap.Int("cluster", c.ID), zap.Int("size", seated), zap.Int("table", i+1))
		}
		pending = rest
	}
	for _, m := range pending {
		if err := d.seatBlocked(m, out); err != nil {
			return err
		}
	}

	return nil
}

// seatBlocked seats p when every free seat is at a table seating someone p
// avoids. A table added for an earlier blocked person is tried first, then
// displace, then a new table of the widest capacity.
func (d *distributor) seatBlocked(p preference.Person, out *Outcome) error {
	for i, t := range d.room.Tables() {
		if t.Free() > 0 && d.compatible(t, p) {
			return d.room.Seat(i, p)
		}
	}
	if fix, ok := d.displace(p); ok {
		out.Repairs = append(out.Repairs, fix)
		d.cfg.log.Debug("seat freed",
			zap.String("person", string(p)),
			zap.Strings("moved", names(fix.People)),
			zap.String("from", fix.From),
			zap.String("to", fix.To),
		)
		return nil
	}

	width := widest(d.room.Capacities())
	i, err := d.room.AddTable(width)
	if err != nil {
		return err
	}
	out.TablesAdded++
	d.cfg.log.Debug("table added", zap.String("person", string(p)), zap.Int("capacity", width), zap.Int("table", i+1))

	return d.room.Seat(i, p)
}

// displace frees a seat for p at a full table p is compatible with, by
// moving one movable occupant to another table with a free seat. Moves next
// to the occupant's cluster mates are preferred.
func (d *distributor) displace(p preference.Person) (Repair, bool) {
	type pick struct {
		from, to int
		person   preference.Person
	}
	var cands, mates []pick
	tables := d.room.Tables()
	for i, t := range tables {
		if !d.compatible(t, p) {
			continue
		}
		for _, q := range t.Occupants {
			if !d.movable(q) {
				continue
			}
			for j, u := range tables {
				if j == i || u.Free() == 0 || !d.compatible(u, q) {
					continue
				}
				pk := pick{from: i, to: j, person: q}
				cands = append(cands, pk)
				if d.seatsMate(u, q) {
					mates = append(mates, pk)
				}
			}
		}
	}
	if len(mates) > 0 {
		cands = mates
	}
	if len(cands) == 0 {
		return Repair{}, false
	}

	c := cands[d.cfg.rng.Intn(len(cands))]
	if !d.relocate(c.from, c.to, c.person) {
		return Repair{}, false
	}
	if err := d.room.Seat(c.from, p); err != nil {
		_ = d.relocate(c.to, c.from, c.person)
		return Repair{}, false
	}

	return Repair{Kind: Displace, People: []preference.Person{c.person}, From: d.name(c.from), To: d.name(c.to)}, true
}

// movable reports whether p can change tables without splitting a want
// group: p has no cluster mates, or p's cluster is split already.
func (d *distributor) movable(p preference.Person) bool {
	ci, ok := d.clusterOf[p]
	if !ok {
		return false
	}

	return d.sizeOf[ci] == 1 || d.spans(ci) > 1
}

// spans counts the tables seating members of cluster ci.
func (d *distributor) spans(ci int) int {
	n := 0
	for _, t := range d.room.Tables() {
		for _, o := range t.Occupants {
			if oi, ok := d.clusterOf[o]; ok && oi == ci {
				n++
				break
			}
		}
	}

	return n
}

func widest(caps []int) int {
	w := 1
	for _, c := range caps {
		w = max(w, c)
	}

	return w
}

// roomiest returns the indices of tables with free seats, most free first,
// ties in random order.
func (d *distributor) roomiest() []int {
	var idx []int
	for _, i := range d.cfg.rng.Perm(d.room.Len()) {
		if t, _ := d.room.Table(i); t.Free() > 0 {
			idx = append(idx, i)
		}
	}
	tables := d.room.Tables()
	sort.SliceStable(idx, func(a, b int) bool { return tables[idx[a]].Free() > tables[idx[b]].Free() })

	return idx
}

// compatible reports whether none of people avoids anyone seated at t.
func (d *distributor) compatible(t *room.Table, people ...preference.Person) bool {
	for _, o := range t.Occupants {
		for _, p := range people {
			if d.conflicts.Avoids(o, p) {
				return false
			}
		}
	}

	return true
}

func (d *distributor) shuffle() {
	for _, t := range d.room.Tables() {
		occ := t.Occupants
		d.cfg.rng.Shuffle(len(occ), func(i, j int) { occ[i], occ[j] = occ[j], occ[i] })
	}
}

// Check verifies a seating: no table over capacity, every cluster member
// seated exactly once, nobody else seated, and no avoid pair sharing a
// table. Any failure is a *ConstraintViolationError.
func Check(r *room.Room, clusters []cluster.Cluster, conflicts Conflicts) error {
	if conflicts == nil {
		conflicts = noConflicts{}
	}
	want := make(map[preference.Person]bool)
	for _, c := range clusters {
		for _, m := range c.Members {
			want[m] = true
		}
	}

	seen := make(map[preference.Person]bool)
	for _, t := range r.Tables() {
		if len(t.Occupants) > t.Capacity {
			return &ConstraintViolationError{Table: t.Name,
				Reason: fmt.Sprintf("%d occupants for %d seats", len(t.Occupants), t.Capacity)}
		}
		for i, p := range t.Occupants {
			if seen[p] {
				return &ConstraintViolationError{Table: t.Name, Reason: fmt.Sprintf("%s seated twice", p)}
			}
			if !want[p] {
				return &ConstraintViolationError{Table: t.Name, Reason: fmt.Sprintf("%s is not in any cluster", p)}
			}
			seen[p] = true
			for _, q := range t.Occupants[i+1:] {
				if conflicts.Avoids(p, q) {
					return &ConstraintViolationError{Table: t.Name, Reason: fmt.Sprintf("%s and %s avoid each other", p, q)}
				}
			}
		}
	}
	for _, c := range clusters {
		for _, m := range c.Members {
			if !seen[m] {
				return &ConstraintViolationError{Table: "room", Reason: fmt.Sprintf("%s is not seated", m)}
			}
		}
	}

	return nil
}
