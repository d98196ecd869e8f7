// Package seating places clusters of people at the tables of a room.
//
// Distribute works in five steps:
//
//  1. Placement: clusters go largest first (equal sizes in random order).
//     A cluster that fits whole at some table sits at a randomly chosen one
//     of those tables. A cluster larger than every table is split across
//     as few tables as possible, filling the roomiest tables first so the
//     largest contiguous portion stays together. A person whom avoid
//     constraints keep from every free seat takes the seat of an unattached
//     or already split occupant, who moves to another table; failing that,
//     a table is added for them.
//  2. Levelling: people without cluster mates move from the fullest tables
//     to the emptiest until sizes differ by at most one.
//  3. Repair: a table left with exactly one occupant is fixed by moving
//     the occupant to another occupied table, merging a small table into
//     it, or borrowing an unattached person from a table of three or more.
//     When none of these is possible the occupant stays and a
//     LoneOccupantUnresolved advisory is reported.
//  4. Shuffle: seat order inside every table is randomized.
//  5. Check: capacity, completeness and avoid constraints are verified
//     again; a failure is a ConstraintViolationError.
//
// No two people who avoid each other are ever placed at the same table.
// Randomness comes only from the injected *rand.Rand (WithRand, WithSeed).
package seating

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/openspace/preference"
)

// ErrInternalInvariant marks failures that indicate a defect in an upstream
// stage rather than bad input.
var ErrInternalInvariant = errors.New("seating: internal invariant violated")

// ErrDuplicatePerson indicates a person listed in more than one cluster.
var ErrDuplicatePerson = errors.New("seating: person appears in more than one cluster")

// Conflicts answers whether two people must not share a table.
// *preference.Graph satisfies it.
type Conflicts interface {
	Avoids(a, b preference.Person) bool
}

type noConflicts struct{}

func (noConflicts) Avoids(_, _ preference.Person) bool { return false }

// ConstraintViolationError is raised by the final check. It wraps
// ErrInternalInvariant.
type ConstraintViolationError struct {
	Table  string
	Reason string
}

func (e *ConstraintViolationError) Error() string {
	return fmt.Sprintf("seating: constraint violation at %s: %s", e.Table, e.Reason)
}

// Unwrap returns ErrInternalInvariant.
func (e *ConstraintViolationError) Unwrap() error { return ErrInternalInvariant }

// LoneOccupantUnresolved is the advisory for a table that still seats a
// single person after repair. It implements error so callers can collect
// advisories as warnings; it never fails a run.
type LoneOccupantUnresolved struct {
	Person preference.Person
	Table  string
}

func (a LoneOccupantUnresolved) Error() string {
	return fmt.Sprintf("seating: %s sits alone at %s", a.Person, a.Table)
}

// RepairKind names a move made after placement.
type RepairKind string

const (
	// Displace moved an occupant to free a seat for a blocked person.
	Displace RepairKind = "displace"
	// Level moved an unattached person to a smaller table.
	Level RepairKind = "level"

	// Move sent the lone occupant to another occupied table.
	Move RepairKind = "move"
	// Merge brought every occupant of another table to the lone occupant.
	Merge RepairKind = "merge"
	// Borrow brought one unattached person from a table of three or more.
	Borrow RepairKind = "borrow"
)

// Repair records one move: People went From one table To another.
type Repair struct {
	Kind   RepairKind
	People []preference.Person
	From   string
	To     string
}

// Outcome summarizes a distribution. The seating itself lives in the room.
type Outcome struct {
	// Split lists the IDs of clusters seated across more than one table.
	Split []int

	// Repairs lists the moves made after clusters were placed, in order:
	// displacements, levelling, then lone-occupant fixes.
	Repairs []Repair

	// TablesAdded counts tables appended for people no free seat could take.
	TablesAdded int

	// Advisories for lone occupants that could not be fixed.
	Advisories []LoneOccupantUnresolved
}

// Option configures Distribute and Repair.
type Option func(*config)

type config struct {
	rng *rand.Rand
	log *zap.Logger
}

// WithRand supplies the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("seating: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed seeds a fresh random source; equal seeds give equal seatings.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("seating: WithLogger(nil)")
	}
	return func(c *config) {
		c.log = l
	}
}

// newConfig applies opts over the defaults: a time-seeded source, so every
// unseeded run draws a new seating, and a no-op logger.
func newConfig(opts ...Option) config {
	c := config{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return c
}
