package preference

import (
	"github.com/katalvlaran/openspace/core"
)

// Graph is the undirected constraint graph over a roster: one core.Graph of
// want edges and one of avoid edges, both holding every person as a vertex
// in roster order. A pair may be joined in both graphs; that conflict is
// resolved by the cluster package.
type Graph struct {
	people []Person
	index  map[Person]int
	want   *core.Graph
	avoid  *core.Graph

	// avoidPairs holds each distinct avoid pair once, in authored order.
	avoidPairs []Pair
	// stated records who expressed any preference, in either role.
	stated map[Person]bool
}

// Build validates people and prefs and returns their constraint graph.
//
// Steps:
//  1. Register every person as a vertex of both graphs (roster order).
//  2. For every preference, reject empty, unknown or self references.
//  3. Add an undirected edge to the want or avoid graph; a pair stated twice
//     (in either direction) yields one edge.
//
// Errors: ErrEmptyName, *DuplicatePersonError, *UnknownPersonError,
// *SelfPreferenceError, ErrBadPolarity. Validation stops at the first error.
func Build(people []Person, prefs []Preference) (*Graph, error) {
	g := &Graph{
		people: make([]Person, 0, len(people)),
		index:  make(map[Person]int, len(people)),
		want:   core.NewGraph(),
		avoid:  core.NewGraph(),
		stated: make(map[Person]bool),
	}

	// 1) Roster
	for _, p := range people {
		if p == "" {
			return nil, ErrEmptyName
		}
		if _, dup := g.index[p]; dup {
			return nil, &DuplicatePersonError{Name: p}
		}
		g.index[p] = len(g.people)
		g.people = append(g.people, p)
		// vertex IDs are non-empty here, AddVertex cannot fail
		_ = g.want.AddVertex(string(p))
		_ = g.avoid.AddVertex(string(p))
	}

	// 2) + 3) Preferences
	for _, pref := range prefs {
		if err := g.add(pref); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// add validates one preference and records its edge.
func (g *Graph) add(pref Preference) error {
	if pref.Subject == "" || pref.Target == "" {
		return ErrEmptyName
	}
	for _, name := range []Person{pref.Subject, pref.Target} {
		if _, ok := g.index[name]; !ok {
			return &UnknownPersonError{Name: name, Preference: pref}
		}
	}
	if pref.Subject == pref.Target {
		return &SelfPreferenceError{Name: pref.Subject, Polarity: pref.Polarity}
	}

	var target *core.Graph
	switch pref.Polarity {
	case Want:
		target = g.want
	case Avoid:
		target = g.avoid
	default:
		return ErrBadPolarity
	}
	g.stated[pref.Subject] = true
	g.stated[pref.Target] = true

	u, v := string(pref.Subject), string(pref.Target)
	if target.HasEdge(u, v) {
		return nil
	}
	if _, err := target.AddEdge(u, v); err != nil {
		return err
	}
	if pref.Polarity == Avoid {
		g.avoidPairs = append(g.avoidPairs, Pair{A: pref.Subject, B: pref.Target})
	}

	return nil
}

// People returns the roster in input order.
func (g *Graph) People() []Person {
	out := make([]Person, len(g.people))
	copy(out, g.people)

	return out
}

// Len returns the roster size.
func (g *Graph) Len() int { return len(g.people) }

// Index returns the roster position of p, or -1 if p is unknown.
func (g *Graph) Index(p Person) int {
	if i, ok := g.index[p]; ok {
		return i
	}

	return -1
}

// Want returns the want graph. Callers must treat it as read-only.
func (g *Graph) Want() *core.Graph { return g.want }

// Avoid returns the avoid graph. Callers must treat it as read-only.
func (g *Graph) Avoid() *core.Graph { return g.avoid }

// AvoidPairs returns each distinct avoid pair once, in authored order.
func (g *Graph) AvoidPairs() []Pair {
	out := make([]Pair, len(g.avoidPairs))
	copy(out, g.avoidPairs)

	return out
}

// Wants reports whether a and b are joined by a want edge.
func (g *Graph) Wants(a, b Person) bool {
	return g.want.HasEdge(string(a), string(b))
}

// Avoids reports whether a and b are joined by an avoid edge.
func (g *Graph) Avoids(a, b Person) bool {
	return g.avoid.HasEdge(string(a), string(b))
}

// HasPreferences reports whether p takes part in any preference.
func (g *Graph) HasPreferences(p Person) bool { return g.stated[p] }
