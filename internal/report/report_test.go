package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/openspace/cluster"
	"github.com/katalvlaran/openspace/engine"
	"github.com/katalvlaran/openspace/internal/report"
	"github.com/katalvlaran/openspace/preference"
	"github.com/katalvlaran/openspace/room"
	"github.com/katalvlaran/openspace/seating"
)

// fixture is a finished run seated by hand: the Aleksei–Imran want was
// broken, Mona has no preferences and sits alone.
func fixture(t *testing.T) (*engine.Result, []preference.Preference) {
	t.Helper()
	people := []preference.Person{"Aleksei", "Brigi", "Imran", "Jens", "Mona"}
	prefs := []preference.Preference{
		{Subject: "Aleksei", Target: "Brigi", Polarity: preference.Want},
		{Subject: "Aleksei", Target: "Imran", Polarity: preference.Want},
		{Subject: "Imran", Target: "Jens", Polarity: preference.Want},
		{Subject: "Aleksei", Target: "Jens", Polarity: preference.Avoid},
	}
	g, err := preference.Build(people, prefs)
	require.NoError(t, err)

	r, err := room.New([]int{2, 2, 2})
	require.NoError(t, err)
	for i, occ := range [][]preference.Person{{"Brigi", "Aleksei"}, {"Jens", "Imran"}, {"Mona"}} {
		for _, p := range occ {
			require.NoError(t, r.Seat(i, p))
		}
	}

	return &engine.Result{
		RunID: uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
		Seed:  7,
		Room:  r,
		Graph: g,
		Clusters: []cluster.Cluster{
			{ID: 1, Members: []preference.Person{"Aleksei", "Brigi"}},
			{ID: 2, Members: []preference.Person{"Imran", "Jens"}},
			{ID: 3, Members: []preference.Person{"Mona"}},
		},
		Removed: []cluster.RemovedEdge{
			{A: "Aleksei", B: "Imran", Reason: preference.Pair{A: "Aleksei", B: "Jens"}},
		},
		Advisories: []seating.LoneOccupantUnresolved{{Person: "Mona", Table: "Table 3"}},
	}, prefs
}

func TestRows(t *testing.T) {
	res, prefs := fixture(t)
	want := []report.Row{
		{Name: "Brigi", Table: 1, Cluster: 1},
		{Name: "Aleksei", Table: 1, WithPref: "Brigi, Imran", WithoutPref: "Jens", Cluster: 1},
		{Name: "Jens", Table: 2, Cluster: 2},
		{Name: "Imran", Table: 2, WithPref: "Jens", Cluster: 2},
		{Name: "Mona", Table: 3, Cluster: 3},
	}
	if diff := cmp.Diff(want, report.Rows(res, prefs)); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteCSV(t *testing.T) {
	res, prefs := fixture(t)
	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(&buf, report.Rows(res, prefs)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, "Name,Table,WithPref,WithoutPref,Cluster", lines[0])
	require.Equal(t, `Aleksei,1,"Brigi, Imran",Jens,1`, lines[2])
	require.Len(t, lines, 6)
}

func TestWriteText(t *testing.T) {
	res, prefs := fixture(t)
	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, res, prefs))

	want := `Run 6ba7b810-9dad-11d1-80b4-00c04fd430c8 (seed 7)
WITH groups:
  Aleksei: Brigi, Imran
  Imran: Jens
WITHOUT constraints:
  Aleksei: Jens
No preferences:
  Mona
Broken preferences:
  Aleksei cannot sit with Imran (Aleksei avoids Jens)
Final clusters:
  Group 1: Aleksei, Brigi
  Group 2: Imran, Jens
  Group 3: Mona
Seating assignments:
  Table 1: Brigi, Aleksei
  Table 2: Jens, Imran
  Table 3: Mona
Total seats: 6
Total people: 5
Seats free: 1
Warnings:
  Mona sits alone at Table 3
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("text mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteTextEmptySections(t *testing.T) {
	r, err := room.New([]int{2})
	require.NoError(t, err)
	res := &engine.Result{Room: r}

	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, res, nil))
	out := buf.String()
	require.Contains(t, out, "WITH groups:\n  (none)\n")
	require.Contains(t, out, "Final clusters:\n  (none)\n")
	require.Contains(t, out, "Table 1: (empty)\n")
	require.NotContains(t, out, "Warnings:")
}

func TestSaveAddsExtension(t *testing.T) {
	res, prefs := fixture(t)
	dir := t.TempDir()

	require.NoError(t, report.SaveCSV(filepath.Join(dir, "seating"), report.Rows(res, prefs)))
	require.NoError(t, report.SaveText(filepath.Join(dir, "summary.TXT"), res, prefs))

	_, err := os.Stat(filepath.Join(dir, "seating.csv"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "summary.TXT"))
	require.NoError(t, err)

	require.Error(t, report.SaveCSV(filepath.Join(dir, "missing", "x.csv"), nil))
}
