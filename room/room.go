// Package room holds the table layout of a run and answers capacity queries.
//
// A Room is an ordered sequence of tables. Seats are counted, not modelled
// individually: a Table has a capacity and an ordered occupant list whose
// length never exceeds it. The balance and seating packages are the only
// callers that mutate a Room.
package room

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/openspace/preference"
)

// Sentinel errors for room operations.
var (
	// ErrTableIndex indicates a table index outside the room.
	ErrTableIndex = errors.New("room: table index out of range")

	// ErrTableFull indicates seating at a table with no free seat.
	ErrTableFull = errors.New("room: table is full")

	// ErrNotSeated indicates unseating someone who is not at the table.
	ErrNotSeated = errors.New("room: person is not seated at this table")

	// ErrBadCapacity indicates a negative table capacity.
	ErrBadCapacity = errors.New("room: table capacity must not be negative")

	// ErrOccupiedResize indicates resizing a room that still seats people.
	ErrOccupiedResize = errors.New("room: cannot resize a room with seated people")
)

// Table is one table of the room.
type Table struct {
	// ID numbers tables from 1 in room order.
	ID int

	// Name is the display label, "Table <ID>".
	Name string

	// Capacity is the maximum number of occupants.
	Capacity int

	// Occupants in seat order.
	Occupants []preference.Person
}

// Free returns the number of empty seats.
func (t *Table) Free() int { return t.Capacity - len(t.Occupants) }

// Has reports whether p sits at t.
func (t *Table) Has(p preference.Person) bool {
	for _, o := range t.Occupants {
		if o == p {
			return true
		}
	}

	return false
}

// Room is an ordered sequence of tables plus the declared headcount.
type Room struct {
	tables    []*Table
	headcount int
}

// New returns a room with one table per capacity, in order.
func New(capacities []int) (*Room, error) {
	r := &Room{}
	for _, c := range capacities {
		if _, err := r.AddTable(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// NewFixed returns a room of n tables with the same capacity.
func NewFixed(n, capacity int) (*Room, error) {
	caps := make([]int, n)
	for i := range caps {
		caps[i] = capacity
	}

	return New(caps)
}

// AddTable appends an empty table and returns its index.
func (r *Room) AddTable(capacity int) (int, error) {
	if capacity < 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadCapacity, capacity)
	}
	id := len(r.tables) + 1
	r.tables = append(r.tables, &Table{ID: id, Name: fmt.Sprintf("Table %d", id), Capacity: capacity})

	return id - 1, nil
}

// Resize replaces the table layout with one table per capacity. Only an
// empty room can be resized.
func (r *Room) Resize(capacities []int) error {
	if r.Seated() > 0 {
		return ErrOccupiedResize
	}
	tables := r.tables
	r.tables = nil
	for _, c := range capacities {
		if _, err := r.AddTable(c); err != nil {
			r.tables = tables
			return err
		}
	}

	return nil
}

// Len returns the number of tables.
func (r *Room) Len() int { return len(r.tables) }

// Table returns the table at index i.
func (r *Room) Table(i int) (*Table, error) {
	if i < 0 || i >= len(r.tables) {
		return nil, ErrTableIndex
	}

	return r.tables[i], nil
}

// Tables returns the tables in order. The slice is a copy; the tables are not.
func (r *Room) Tables() []*Table {
	out := make([]*Table, len(r.tables))
	copy(out, r.tables)

	return out
}

// Capacities returns every table's capacity in order.
func (r *Room) Capacities() []int {
	out := make([]int, len(r.tables))
	for i, t := range r.tables {
		out[i] = t.Capacity
	}

	return out
}

// SetHeadcount records the roster size reported by TotalPeople before
// anyone is seated.
func (r *Room) SetHeadcount(n int) { r.headcount = n }

// Seat appends p to table i.
func (r *Room) Seat(i int, p preference.Person) error {
	t, err := r.Table(i)
	if err != nil {
		return err
	}
	if t.Free() <= 0 {
		return fmt.Errorf("%w: %s", ErrTableFull, t.Name)
	}
	t.Occupants = append(t.Occupants, p)

	return nil
}

// Unseat removes p from table i, keeping the order of the others.
func (r *Room) Unseat(i int, p preference.Person) error {
	t, err := r.Table(i)
	if err != nil {
		return err
	}
	for k, o := range t.Occupants {
		if o == p {
			t.Occupants = append(t.Occupants[:k], t.Occupants[k+1:]...)
			return nil
		}
	}

	return fmt.Errorf("%w: %s at %s", ErrNotSeated, p, t.Name)
}

// Clear empties every table.
func (r *Room) Clear() {
	for _, t := range r.tables {
		t.Occupants = nil
	}
}

// Find returns the index of the table seating p, or -1.
func (r *Room) Find(p preference.Person) int {
	for i, t := range r.tables {
		if t.Has(p) {
			return i
		}
	}

	return -1
}

// Seated returns the number of seated people.
func (r *Room) Seated() int {
	var n int
	for _, t := range r.tables {
		n += len(t.Occupants)
	}

	return n
}

// TotalSeats returns the sum of table capacities.
func (r *Room) TotalSeats() int {
	var n int
	for _, t := range r.tables {
		n += t.Capacity
	}

	return n
}

// TotalPeople returns the seated count once anyone is seated, and the
// declared headcount before that.
func (r *Room) TotalPeople() int {
	if n := r.Seated(); n > 0 {
		return n
	}

	return r.headcount
}

// SeatsFree returns TotalSeats minus TotalPeople. It is negative when the
// declared headcount exceeds the seats.
func (r *Room) SeatsFree() int { return r.TotalSeats() - r.TotalPeople() }

// Snapshot returns a copy of the seating: one occupant list per table, in
// table order.
func (r *Room) Snapshot() [][]preference.Person {
	out := make([][]preference.Person, len(r.tables))
	for i, t := range r.tables {
		out[i] = append([]preference.Person(nil), t.Occupants...)
	}

	return out
}
