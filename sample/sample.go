package sample

import (
	"fmt"

	"github.com/katalvlaran/openspace/preference"
)

// Random builds n people and, for every unordered pair, draws a want with
// probability want, otherwise an avoid with probability avoid. The subject
// of each preference is the earlier person of the pair half of the time.
//
// Pairs are visited in (i, j) order with i < j, so a seed fixes the result.
//
// Complexity: O(n²) time.
func Random(n int, want, avoid float64, opts ...Option) (*Scenario, error) {
	if n < 1 {
		return nil, fmt.Errorf("random n=%d: %w", n, ErrTooFewPeople)
	}
	if want < 0 || avoid < 0 || want+avoid > 1 {
		return nil, fmt.Errorf("random want=%.3f avoid=%.3f: %w", want, avoid, ErrInvalidProbability)
	}
	cfg := newConfig(opts)

	sc := &Scenario{People: roster(n, cfg.nameFn)}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			draw := cfg.rng.Float64()
			var pol preference.Polarity
			switch {
			case draw < want:
				pol = preference.Want
			case draw < want+avoid:
				pol = preference.Avoid
			default:
				continue
			}
			a, b := sc.People[i], sc.People[j]
			if cfg.rng.Intn(2) == 1 {
				a, b = b, a
			}
			sc.Preferences = append(sc.Preferences, preference.Preference{Subject: a, Target: b, Polarity: pol})
		}
	}

	return sc, nil
}

// Groups builds one want chain per size, so each group forms exactly one
// cluster, and adds avoids pairs between the first members of
// consecutive groups. People are numbered group by group.
func Groups(sizes []int, avoids int, opts ...Option) (*Scenario, error) {
	total := 0
	for _, s := range sizes {
		if s < 1 {
			return nil, fmt.Errorf("groups %v: %w", sizes, ErrBadGroup)
		}
		total += s
	}
	if total == 0 {
		return nil, fmt.Errorf("groups: %w", ErrTooFewPeople)
	}
	cfg := newConfig(opts)

	sc := &Scenario{People: roster(total, cfg.nameFn)}
	var heads []preference.Person
	at := 0
	for _, s := range sizes {
		heads = append(heads, sc.People[at])
		for k := at + 1; k < at+s; k++ {
			sc.Preferences = append(sc.Preferences, preference.Preference{
				Subject: sc.People[k-1], Target: sc.People[k], Polarity: preference.Want,
			})
		}
		at += s
	}
	for k := 1; k < len(heads) && k <= avoids; k++ {
		sc.Preferences = append(sc.Preferences, preference.Preference{
			Subject: heads[k-1], Target: heads[k], Polarity: preference.Avoid,
		})
	}

	return sc, nil
}

func roster(n int, name NameFn) []preference.Person {
	out := make([]preference.Person, n)
	for i := range out {
		out[i] = name(i)
	}

	return out
}
