// Package preference defines people, seating preferences and the sentinel
// errors raised while turning them into a constraint graph.
package preference

import (
	"errors"
	"fmt"
)

// Sentinel errors for preference handling.
var (
	// ErrEmptyName indicates a person or preference target with an empty name.
	ErrEmptyName = errors.New("preference: empty name")

	// ErrBadPolarity indicates a Preference whose Polarity is neither Want nor Avoid.
	ErrBadPolarity = errors.New("preference: unknown polarity")

	// ErrUnparsable indicates a free-text request no pattern could read.
	ErrUnparsable = errors.New("preference: cannot parse request")
)

// Person identifies an attendee. Names are unique within a run.
type Person string

// Polarity tells whether a preference draws two people together or apart.
type Polarity int

const (
	// Want asks to be seated with the target.
	Want Polarity = iota + 1

	// Avoid asks never to share a table with the target.
	Avoid
)

// String returns "want" or "avoid".
func (p Polarity) String() string {
	switch p {
	case Want:
		return "want"
	case Avoid:
		return "avoid"
	default:
		return fmt.Sprintf("polarity(%d)", int(p))
	}
}

// Preference is one authored request: Subject about Target.
type Preference struct {
	Subject  Person
	Target   Person
	Polarity Polarity
}

// String renders the preference the way it is usually written.
func (p Preference) String() string {
	if p.Polarity == Avoid {
		return fmt.Sprintf("%s does not want %s", p.Subject, p.Target)
	}

	return fmt.Sprintf("%s wants %s", p.Subject, p.Target)
}

// Pair is an unordered pair of people, stored in authored orientation.
type Pair struct {
	A, B Person
}

// Has reports whether p is one of the pair.
func (pr Pair) Has(p Person) bool { return pr.A == p || pr.B == p }

// UnknownPersonError is returned when a preference names someone who is not
// on the roster.
type UnknownPersonError struct {
	Name       Person
	Preference Preference
}

func (e *UnknownPersonError) Error() string {
	return fmt.Sprintf("preference: unknown person %q in %q", e.Name, e.Preference)
}

// SelfPreferenceError is returned when a person states a preference about
// themselves.
type SelfPreferenceError struct {
	Name     Person
	Polarity Polarity
}

func (e *SelfPreferenceError) Error() string {
	return fmt.Sprintf("preference: %q has a %s preference about themselves", e.Name, e.Polarity)
}

// DuplicatePersonError is returned when the roster lists the same name twice.
type DuplicatePersonError struct {
	Name Person
}

func (e *DuplicatePersonError) Error() string {
	return fmt.Sprintf("preference: %q appears more than once on the roster", e.Name)
}
