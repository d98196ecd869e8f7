package preference_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/openspace/preference"
)

// BuildSuite covers graph construction and input validation.
type BuildSuite struct {
	suite.Suite
	people []preference.Person
}

func (s *BuildSuite) SetupTest() {
	s.people = []preference.Person{"Aleksei", "Brigi", "Imran", "Jens"}
}

func want(a, b preference.Person) preference.Preference {
	return preference.Preference{Subject: a, Target: b, Polarity: preference.Want}
}

func avoid(a, b preference.Person) preference.Preference {
	return preference.Preference{Subject: a, Target: b, Polarity: preference.Avoid}
}

// TestSymmetricEdges: a want authored one way is visible both ways, and the
// mirror statement does not add a second edge.
func (s *BuildSuite) TestSymmetricEdges() {
	g, err := preference.Build(s.people, []preference.Preference{
		want("Aleksei", "Brigi"),
		want("Brigi", "Aleksei"),
		want("Imran", "Jens"),
		avoid("Jens", "Aleksei"),
		avoid("Aleksei", "Jens"),
	})
	require.NoError(s.T(), err)

	require.True(s.T(), g.Wants("Brigi", "Aleksei"))
	require.True(s.T(), g.Wants("Jens", "Imran"))
	require.False(s.T(), g.Wants("Aleksei", "Jens"))
	require.True(s.T(), g.Avoids("Aleksei", "Jens"))
	require.Equal(s.T(), 2, g.Want().EdgeCount())
	require.Equal(s.T(), 1, g.Avoid().EdgeCount())
	require.Equal(s.T(), []preference.Pair{{A: "Jens", B: "Aleksei"}}, g.AvoidPairs())

	require.Equal(s.T(), s.people, g.People())
	require.Equal(s.T(), 4, g.Len())
	require.Equal(s.T(), 2, g.Index("Imran"))
	require.Equal(s.T(), -1, g.Index("Nobody"))
	require.Equal(s.T(), []string{"Aleksei", "Brigi", "Imran", "Jens"}, g.Want().Vertices())
}

// TestSamePairBothPolarities keeps the pair in both graphs for later resolution.
func (s *BuildSuite) TestSamePairBothPolarities() {
	g, err := preference.Build(s.people, []preference.Preference{
		want("Aleksei", "Brigi"),
		avoid("Brigi", "Aleksei"),
	})
	require.NoError(s.T(), err)
	require.True(s.T(), g.Wants("Aleksei", "Brigi"))
	require.True(s.T(), g.Avoids("Aleksei", "Brigi"))
	require.True(s.T(), g.HasPreferences("Brigi"))
	require.False(s.T(), g.HasPreferences("Imran"))
}

// TestUnknownPerson rejects names missing from the roster.
func (s *BuildSuite) TestUnknownPerson() {
	_, err := preference.Build(s.people, []preference.Preference{want("Aleksei", "Zoe")})
	var upe *preference.UnknownPersonError
	require.True(s.T(), errors.As(err, &upe))
	require.Equal(s.T(), preference.Person("Zoe"), upe.Name)
	require.Contains(s.T(), err.Error(), "Zoe")

	_, err = preference.Build(s.people, []preference.Preference{avoid("Zoe", "Aleksei")})
	require.True(s.T(), errors.As(err, &upe))
	require.Equal(s.T(), preference.Person("Zoe"), upe.Name)
}

// TestSelfPreference rejects a person referencing themselves.
func (s *BuildSuite) TestSelfPreference() {
	_, err := preference.Build(s.people, []preference.Preference{avoid("Imran", "Imran")})
	var spe *preference.SelfPreferenceError
	require.True(s.T(), errors.As(err, &spe))
	require.Equal(s.T(), preference.Person("Imran"), spe.Name)
	require.Equal(s.T(), preference.Avoid, spe.Polarity)
}

// TestRosterValidation rejects empty and duplicate names and bad polarities.
func (s *BuildSuite) TestRosterValidation() {
	_, err := preference.Build([]preference.Person{"A", ""}, nil)
	require.ErrorIs(s.T(), err, preference.ErrEmptyName)

	_, err = preference.Build([]preference.Person{"A", "B", "A"}, nil)
	var dpe *preference.DuplicatePersonError
	require.True(s.T(), errors.As(err, &dpe))
	require.Equal(s.T(), preference.Person("A"), dpe.Name)

	_, err = preference.Build(s.people, []preference.Preference{{Subject: "Aleksei", Target: "Brigi"}})
	require.ErrorIs(s.T(), err, preference.ErrBadPolarity)

	_, err = preference.Build(s.people, []preference.Preference{{Subject: "Aleksei", Polarity: preference.Want}})
	require.ErrorIs(s.T(), err, preference.ErrEmptyName)
}

// TestNoPreferences builds a graph of isolated vertices.
func (s *BuildSuite) TestNoPreferences() {
	g, err := preference.Build(s.people, nil)
	require.NoError(s.T(), err)
	require.Zero(s.T(), g.Want().EdgeCount())
	require.Zero(s.T(), g.Avoid().EdgeCount())
	require.Empty(s.T(), g.AvoidPairs())
}

func TestBuildSuite(t *testing.T) {
	suite.Run(t, new(BuildSuite))
}

// TestParse covers the supported request phrasings.
func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want []preference.Preference
	}{
		{"Aleksei wants Brigi", []preference.Preference{want("Aleksei", "Brigi")}},
		{"Aleksei WANTS to sit with Brigi.", []preference.Preference{want("Aleksei", "Brigi")}},
		{"Aleksei wants Brigi, Imran and Jens", []preference.Preference{
			want("Aleksei", "Brigi"), want("Aleksei", "Imran"), want("Aleksei", "Jens"),
		}},
		{"Mary Ann does not want Jens", []preference.Preference{avoid("Mary Ann", "Jens")}},
		{"Imran doesn't want to sit with Jens", []preference.Preference{avoid("Imran", "Jens")}},
		{"  Imran avoids Jens  ", []preference.Preference{avoid("Imran", "Jens")}},
	}
	for _, tc := range cases {
		got, err := preference.Parse(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}

	for _, bad := range []string{"", "Aleksei likes Brigi", "wants Brigi", "Aleksei wants "} {
		_, err := preference.Parse(bad)
		require.ErrorIs(t, err, preference.ErrUnparsable, bad)
	}
}

// TestParseAll skips blank lines and stops at the first bad one.
func TestParseAll(t *testing.T) {
	got, err := preference.ParseAll([]string{"A wants B", "", "C avoids D"})
	require.NoError(t, err)
	require.Equal(t, []preference.Preference{want("A", "B"), avoid("C", "D")}, got)

	_, err = preference.ParseAll([]string{"A wants B", "nonsense"})
	require.ErrorIs(t, err, preference.ErrUnparsable)
}

// TestFromLists orders subjects by name and drops blanks.
func TestFromLists(t *testing.T) {
	got := preference.FromLists(
		map[string][]string{"Imran": {"Jens"}, "Aleksei": {"Brigi", " ", "Imran"}},
		map[string][]string{"Aleksei": {"Jens"}},
	)
	require.Equal(t, []preference.Preference{
		want("Aleksei", "Brigi"),
		want("Aleksei", "Imran"),
		want("Imran", "Jens"),
		avoid("Aleksei", "Jens"),
	}, got)
}

// TestStrings renders polarity and preference text.
func TestStrings(t *testing.T) {
	require.Equal(t, "want", preference.Want.String())
	require.Equal(t, "avoid", preference.Avoid.String())
	require.Equal(t, "polarity(7)", preference.Polarity(7).String())
	require.Equal(t, "A wants B", want("A", "B").String())
	require.Equal(t, "A does not want B", avoid("A", "B").String())
	require.True(t, preference.Pair{A: "A", B: "B"}.Has("B"))
}
