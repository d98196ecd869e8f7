package seating

import (
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/openspace/preference"
	"github.com/katalvlaran/openspace/room"
)

// level moves people without cluster mates from the fullest tables to the
// emptiest until no move narrows the gap, so table sizes differ by at most
// one wherever unattached people and avoid constraints allow it. Empty
// tables are filled only when every table can seat two, so levelling does
// not spread people into lone seats.
//
// Every move narrows a gap of two or more, which strictly lowers the sum of
// squared table sizes, so the loop ends.
func (d *distributor) level(out *Outcome) {
	fillEmpty := d.room.Seated() >= 2*d.room.Len()
	for {
		fix, ok := d.levelOnce(fillEmpty)
		if !ok {
			return
		}
		out.Repairs = append(out.Repairs, fix)
		d.cfg.log.Debug("table levelled",
			zap.Strings("people", names(fix.People)),
			zap.String("from", fix.From),
			zap.String("to", fix.To),
		)
	}
}

// levelOnce makes one move from the fullest possible source to the
// emptiest compatible table at least two seats smaller.
func (d *distributor) levelOnce(fillEmpty bool) (Repair, bool) {
	tables := d.room.Tables()
	order := d.cfg.rng.Perm(len(tables))
	sort.SliceStable(order, func(a, b int) bool {
		return len(tables[order[a]].Occupants) > len(tables[order[b]].Occupants)
	})

	for _, i := range order {
		src := tables[i]
		for _, p := range src.Occupants {
			if ci, ok := d.clusterOf[p]; !ok || d.sizeOf[ci] != 1 {
				continue
			}
			if j := d.levelTarget(tables, order, src, p, fillEmpty); j >= 0 {
				if !d.relocate(i, j, p) {
					return Repair{}, false
				}
				return Repair{Kind: Level, People: []preference.Person{p}, From: d.name(i), To: d.name(j)}, true
			}
		}
	}

	return Repair{}, false
}

// levelTarget returns the index of the emptiest table that can take p from
// src while narrowing a gap of two or more, or -1.
func (d *distributor) levelTarget(tables []*room.Table, order []int, src *room.Table, p preference.Person, fillEmpty bool) int {
	best := -1
	for _, j := range order {
		dst := tables[j]
		n := len(dst.Occupants)
		if dst == src || dst.Free() == 0 || len(src.Occupants)-n < 2 {
			continue
		}
		if n == 0 && !fillEmpty {
			continue
		}
		if !d.compatible(dst, p) {
			continue
		}
		if best < 0 || n < len(tables[best].Occupants) {
			best = j
		}
	}

	return best
}
