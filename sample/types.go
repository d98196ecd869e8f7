package sample

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/openspace/preference"
)

var (
	// ErrTooFewPeople indicates a roster size below one.
	ErrTooFewPeople = errors.New("sample: at least one person is required")

	// ErrInvalidProbability indicates a probability outside [0,1] or a pair
	// of probabilities summing above 1.
	ErrInvalidProbability = errors.New("sample: probability out of range")

	// ErrBadGroup indicates a non-positive group size.
	ErrBadGroup = errors.New("sample: group sizes must be positive")
)

// Scenario is a generated roster with its preferences.
type Scenario struct {
	People      []preference.Person
	Preferences []preference.Preference
}

// Requests renders the preferences as request lines, one per preference.
func (s *Scenario) Requests() []string {
	out := make([]string, len(s.Preferences))
	for i, p := range s.Preferences {
		out[i] = p.String()
	}

	return out
}

// NameFn maps a roster index to a name. It must be pure and injective.
type NameFn func(idx int) preference.Person

// DefaultName returns "P01", "P02", ... (1-based, at least two digits).
func DefaultName(idx int) preference.Person {
	return preference.Person(fmt.Sprintf("P%02d", idx+1))
}

// Option customizes a generator.
type Option func(*config)

type config struct {
	rng    *rand.Rand
	nameFn NameFn
}

// WithRand sets the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sample: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed seeds a new random source.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithNames sets the name generator. Panics on nil.
func WithNames(fn NameFn) Option {
	if fn == nil {
		panic("sample: WithNames(nil)")
	}
	return func(c *config) { c.nameFn = fn }
}

func newConfig(opts []Option) config {
	c := config{nameFn: DefaultName}
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return c
}
