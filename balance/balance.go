// Package balance decides how many tables a room needs and how large each
// one should be.
//
// Two capacity policies are supported:
//
//	Fixed      – the room keeps the capacities it was configured with.
//	EvenSplit  – capacities are derived from the headcount: P people over T
//	             tables get P div T seats each, and P mod T of them one more.
//
// The balancer never moves people and never drops them: when a room is too
// small it reports RoomOverCapacityError and the caller decides whether to
// add a table.
package balance

import (
	"errors"
	"fmt"
)

// Sentinel errors for balancing.
var (
	// ErrNoTables indicates a layout request for zero tables.
	ErrNoTables = errors.New("balance: at least one table is required")

	// ErrNegativePeople indicates a negative headcount.
	ErrNegativePeople = errors.New("balance: people count must not be negative")
)

// Policy selects how table capacities are chosen.
type Policy int

const (
	// Fixed keeps the configured capacities.
	Fixed Policy = iota

	// EvenSplit derives capacities from the headcount.
	EvenSplit
)

// String returns "fixed" or "even-split".
func (p Policy) String() string {
	if p == EvenSplit {
		return "even-split"
	}

	return "fixed"
}

// RoomOverCapacityError reports that the headcount exceeds the seats.
type RoomOverCapacityError struct {
	People  int
	Seats   int
	Deficit int
}

func (e *RoomOverCapacityError) Error() string {
	return fmt.Sprintf("balance: room over capacity: %d people for %d seats (deficit %d)", e.People, e.Seats, e.Deficit)
}

// Check returns *RoomOverCapacityError when people exceed the sum of
// capacities, and nil otherwise.
func Check(people int, capacities []int) error {
	seats := sum(capacities)
	if people > seats {
		return &RoomOverCapacityError{People: people, Seats: seats, Deficit: people - seats}
	}

	return nil
}

// Split distributes people over tables as evenly as possible: every table
// gets people/tables seats and the first people%tables tables one more.
// The result sums to people and its sizes differ by at most one.
func Split(people, tables int) ([]int, error) {
	if tables <= 0 {
		return nil, ErrNoTables
	}
	if people < 0 {
		return nil, ErrNegativePeople
	}
	base, extra := people/tables, people%tables
	out := make([]int, tables)
	for i := range out {
		out[i] = base
		if i < extra {
			out[i]++
		}
	}

	return out, nil
}

// AddTable returns the layout after adding one table to a room of tables
// tables: people evenly split over tables+1.
func AddTable(people, tables int) ([]int, error) {
	if tables < 0 {
		return nil, ErrNoTables
	}

	return Split(people, tables+1)
}

// Plan returns the target capacities for a room.
//
//   - Fixed: capacities unchanged; RoomOverCapacityError if people exceed them.
//   - EvenSplit: Split(people, len(capacities)); capacities only supply the
//     table count.
func Plan(policy Policy, people int, capacities []int) ([]int, error) {
	switch policy {
	case EvenSplit:
		return Split(people, len(capacities))
	default:
		if len(capacities) == 0 && people > 0 {
			return nil, ErrNoTables
		}
		if err := Check(people, capacities); err != nil {
			return nil, err
		}
		out := make([]int, len(capacities))
		copy(out, capacities)

		return out, nil
	}
}

// Grow adds tables to capacities until people fit, respreading everyone
// evenly at each step, and returns the new layout with the number of tables
// added. A room that already fits is returned unchanged.
func Grow(people int, capacities []int) ([]int, int, error) {
	if people < 0 {
		return nil, 0, ErrNegativePeople
	}
	if Check(people, capacities) == nil {
		out := make([]int, len(capacities))
		copy(out, capacities)

		return out, 0, nil
	}
	// One table always suffices: the even split over T+1 tables sums to people.
	layout, err := AddTable(people, len(capacities))
	if err != nil {
		return nil, 0, err
	}

	return layout, 1, nil
}

func sum(xs []int) int {
	var n int
	for _, x := range xs {
		n += x
	}

	return n
}
