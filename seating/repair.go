package seating

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/openspace/cluster"
	"github.com/katalvlaran/openspace/preference"
	"github.com/katalvlaran/openspace/room"
)

// RepairLoneOccupants runs the lone-occupant pass on an existing seating.
// Distribute calls it internally; it is exported for callers that seat
// people by hand. clusters supply the membership used to prefer moving a
// person next to their cluster mates and to borrow only unattached people.
func RepairLoneOccupants(r *room.Room, clusters []cluster.Cluster, conflicts Conflicts, opts ...Option) (*Outcome, error) {
	d, err := newDistributor(r, clusters, conflicts, opts)
	if err != nil {
		return nil, err
	}
	out := &Outcome{}
	d.repair(out)

	return out, nil
}

// repair visits tables in order. None of the three fixes leaves a new lone
// occupant behind, so a single pass is enough.
func (d *distributor) repair(out *Outcome) {
	for i := 0; i < d.room.Len(); i++ {
		t, _ := d.room.Table(i)
		if len(t.Occupants) != 1 {
			continue
		}
		p := t.Occupants[0]

		var (
			fix Repair
			ok  bool
		)
		if fix, ok = d.move(i, p); !ok {
			if fix, ok = d.merge(i); !ok {
				fix, ok = d.borrow(i)
			}
		}
		if ok {
			out.Repairs = append(out.Repairs, fix)
			d.cfg.log.Debug("lone occupant repaired",
				zap.String("kind", string(fix.Kind)),
				zap.Strings("people", names(fix.People)),
				zap.String("from", fix.From),
				zap.String("to", fix.To),
			)
			continue
		}

		adv := LoneOccupantUnresolved{Person: p, Table: t.Name}
		out.Advisories = append(out.Advisories, adv)
		d.cfg.log.Warn("lone occupant unresolved", zap.String("person", string(p)), zap.String("table", t.Name))
	}
}

// move sends the lone occupant of table i to another occupied table with a
// free seat, preferring a table that already seats their cluster mates.
func (d *distributor) move(i int, p preference.Person) (Repair, bool) {
	var cands, mates []int
	for j, u := range d.room.Tables() {
		if j == i || len(u.Occupants) == 0 || u.Free() == 0 || !d.compatible(u, p) {
			continue
		}
		cands = append(cands, j)
		if d.seatsMate(u, p) {
			mates = append(mates, j)
		}
	}
	if len(mates) > 0 {
		cands = mates
	}
	if len(cands) == 0 {
		return Repair{}, false
	}

	j := cands[d.cfg.rng.Intn(len(cands))]
	if !d.relocate(i, j, p) {
		return Repair{}, false
	}

	return Repair{Kind: Move, People: []preference.Person{p}, From: d.name(i), To: d.name(j)}, true
}

// merge brings everyone from another occupied table that fits in the free
// seats of table i.
func (d *distributor) merge(i int) (Repair, bool) {
	t, _ := d.room.Table(i)
	var cands []int
	for j, u := range d.room.Tables() {
		n := len(u.Occupants)
		if j == i || n == 0 || n > t.Free() || !d.compatible(t, u.Occupants...) {
			continue
		}
		cands = append(cands, j)
	}
	if len(cands) == 0 {
		return Repair{}, false
	}

	j := cands[d.cfg.rng.Intn(len(cands))]
	u, _ := d.room.Table(j)
	moved := append([]preference.Person(nil), u.Occupants...)
	for _, q := range moved {
		if !d.relocate(j, i, q) {
			return Repair{}, false
		}
	}

	return Repair{Kind: Merge, People: moved, From: d.name(j), To: d.name(i)}, true
}

// borrow brings one person without cluster mates from a table of three or
// more, which keeps at least two people there.
func (d *distributor) borrow(i int) (Repair, bool) {
	t, _ := d.room.Table(i)
	if t.Free() == 0 {
		return Repair{}, false
	}
	type pick struct {
		table  int
		person preference.Person
	}
	var cands []pick
	for j, u := range d.room.Tables() {
		if j == i || len(u.Occupants) < 3 {
			continue
		}
		for _, q := range u.Occupants {
			if ci, ok := d.clusterOf[q]; ok && d.sizeOf[ci] == 1 && d.compatible(t, q) {
				cands = append(cands, pick{table: j, person: q})
			}
		}
	}
	if len(cands) == 0 {
		return Repair{}, false
	}

	c := cands[d.cfg.rng.Intn(len(cands))]
	if !d.relocate(c.table, i, c.person) {
		return Repair{}, false
	}

	return Repair{Kind: Borrow, People: []preference.Person{c.person}, From: d.name(c.table), To: d.name(i)}, true
}

// seatsMate reports whether u seats someone from p's cluster.
func (d *distributor) seatsMate(u *room.Table, p preference.Person) bool {
	id, ok := d.clusterOf[p]
	if !ok {
		return false
	}
	for _, o := range u.Occupants {
		if oid, known := d.clusterOf[o]; known && oid == id {
			return true
		}
	}

	return false
}

func (d *distributor) relocate(from, to int, p preference.Person) bool {
	if err := d.room.Unseat(from, p); err != nil {
		return false
	}
	if err := d.room.Seat(to, p); err != nil {
		_ = d.room.Seat(from, p)
		return false
	}

	return true
}

func (d *distributor) name(i int) string {
	t, err := d.room.Table(i)
	if err != nil {
		return ""
	}

	return t.Name
}

func names(people []preference.Person) []string {
	out := make([]string, len(people))
	for i, p := range people {
		out[i] = string(p)
	}

	return out
}
