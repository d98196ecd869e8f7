package preference

import (
	"fmt"
	"sort"
	"strings"
)

// verb maps one request phrasing onto a polarity. Longer phrases are listed
// before their prefixes so "does not want to sit with" wins over "wants".
type verb struct {
	phrase   string
	polarity Polarity
}

var verbs = []verb{
	{" does not want to sit with ", Avoid},
	{" doesn't want to sit with ", Avoid},
	{" does not want ", Avoid},
	{" doesn't want ", Avoid},
	{" avoids ", Avoid},
	{" wants to sit with ", Want},
	{" wants ", Want},
}

// Parse reads one free-text request such as "Aleksei wants Brigi",
// "Aleksei wants Brigi, Imran and Jens" or "Imran does not want Jens".
// Matching of the verb phrase is case-insensitive; names keep their case.
// Returns ErrUnparsable (wrapped with the input) when no phrasing matches or
// a side is empty.
func Parse(request string) ([]Preference, error) {
	line := " " + strings.TrimSpace(request) + " "
	for _, vb := range verbs {
		at := indexFold(line, vb.phrase)
		if at < 0 {
			continue
		}
		subject := Person(strings.TrimSpace(line[:at]))
		targets := splitNames(line[at+len(vb.phrase):])
		if subject == "" || len(targets) == 0 {
			break
		}
		out := make([]Preference, 0, len(targets))
		for _, t := range targets {
			out = append(out, Preference{Subject: subject, Target: t, Polarity: vb.polarity})
		}

		return out, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnparsable, strings.TrimSpace(request))
}

// ParseAll parses every non-blank request in order and concatenates the
// results. The first unparsable line aborts.
func ParseAll(requests []string) ([]Preference, error) {
	var out []Preference
	for _, r := range requests {
		if strings.TrimSpace(r) == "" {
			continue
		}
		prefs, err := Parse(r)
		if err != nil {
			return nil, err
		}
		out = append(out, prefs...)
	}

	return out, nil
}

// FromLists converts the "with" / "without" maps used by configuration files
// (person → names) into preferences. Maps carry no order, so subjects are
// visited in name order; each list keeps its own order.
func FromLists(with, without map[string][]string) []Preference {
	var out []Preference
	emit := func(m map[string][]string, pol Polarity) {
		subjects := make([]string, 0, len(m))
		for s := range m {
			subjects = append(subjects, s)
		}
		sort.Strings(subjects)
		for _, s := range subjects {
			for _, t := range m[s] {
				t = strings.TrimSpace(t)
				if t == "" {
					continue
				}
				out = append(out, Preference{Subject: Person(strings.TrimSpace(s)), Target: Person(t), Polarity: pol})
			}
		}
	}
	emit(with, Want)
	emit(without, Avoid)

	return out
}

// splitNames splits "A, B and C" into its names.
func splitNames(s string) []Person {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ".")
	var out []Person
	for _, part := range strings.Split(s, ",") {
		for _, name := range splitFold(part, " and ") {
			if name = strings.TrimSpace(name); name != "" {
				out = append(out, Person(name))
			}
		}
	}

	return out
}

// indexFold returns the byte index of the first case-insensitive match of
// the ASCII phrase sep in s, or -1.
func indexFold(s, sep string) int {
	for i := 0; i+len(sep) <= len(s); i++ {
		if strings.EqualFold(s[i:i+len(sep)], sep) {
			return i
		}
	}

	return -1
}

// splitFold splits s around every case-insensitive occurrence of sep.
func splitFold(s, sep string) []string {
	var out []string
	for {
		at := indexFold(s, sep)
		if at < 0 {
			return append(out, s)
		}
		out = append(out, s[:at])
		s = s[at+len(sep):]
	}
}
