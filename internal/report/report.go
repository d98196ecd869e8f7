// Package report turns a finished run into result files: one CSV row per
// seated person and a sectioned text summary.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/openspace/engine"
	"github.com/katalvlaran/openspace/preference"
)

// Header is the CSV column order.
var Header = []string{"Name", "Table", "WithPref", "WithoutPref", "Cluster"}

// Row is one seated person.
type Row struct {
	Name        string
	Table       int
	WithPref    string
	WithoutPref string
	Cluster     int
}

// Record returns r in Header order.
func (r Row) Record() []string {
	return []string{r.Name, strconv.Itoa(r.Table), r.WithPref, r.WithoutPref, strconv.Itoa(r.Cluster)}
}

// Rows lists seated people table by table, in seat order. WithPref and
// WithoutPref hold the names each person asked for or against.
func Rows(res *engine.Result, prefs []preference.Preference) []Row {
	with, without := stated(prefs)
	clusterOf := make(map[preference.Person]int)
	for _, c := range res.Clusters {
		for _, m := range c.Members {
			clusterOf[m] = c.ID
		}
	}

	var rows []Row
	for _, t := range res.Room.Tables() {
		for _, p := range t.Occupants {
			rows = append(rows, Row{
				Name:        string(p),
				Table:       t.ID,
				WithPref:    join(with.names[p]),
				WithoutPref: join(without.names[p]),
				Cluster:     clusterOf[p],
			})
		}
	}

	return rows
}

// WriteCSV writes the header and rows.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r.Record()); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteText writes the run summary: stated preferences, people without
// any, broken wants, final clusters, seating, counts and warnings.
func WriteText(w io.Writer, res *engine.Result, prefs []preference.Preference) error {
	with, without := stated(prefs)
	var b strings.Builder

	fmt.Fprintf(&b, "Run %s (seed %d)\n", res.RunID, res.Seed)

	b.WriteString("WITH groups:\n")
	with.write(&b)
	b.WriteString("WITHOUT constraints:\n")
	without.write(&b)

	b.WriteString("No preferences:\n")
	var none []preference.Person
	if res.Graph != nil {
		for _, p := range res.Graph.People() {
			if !res.Graph.HasPreferences(p) {
				none = append(none, p)
			}
		}
	}
	line(&b, join(none))

	b.WriteString("Broken preferences:\n")
	if len(res.Removed) == 0 {
		line(&b, "")
	}
	for _, r := range res.Removed {
		fmt.Fprintf(&b, "  %s cannot sit with %s (%s avoids %s)\n", r.A, r.B, r.Reason.A, r.Reason.B)
	}

	b.WriteString("Final clusters:\n")
	if len(res.Clusters) == 0 {
		line(&b, "")
	}
	for _, c := range res.Clusters {
		fmt.Fprintf(&b, "  Group %d: %s\n", c.ID, join(c.Members))
	}

	b.WriteString("Seating assignments:\n")
	for _, t := range res.Room.Tables() {
		seated := join(t.Occupants)
		if seated == "" {
			seated = "(empty)"
		}
		fmt.Fprintf(&b, "  %s: %s\n", t.Name, seated)
	}

	fmt.Fprintf(&b, "Total seats: %d\nTotal people: %d\nSeats free: %d\n", res.TotalSeats(), res.TotalPeople(), res.SeatsFree())

	if len(res.Advisories) > 0 {
		b.WriteString("Warnings:\n")
		for _, a := range res.Advisories {
			fmt.Fprintf(&b, "  %s sits alone at %s\n", a.Person, a.Table)
		}
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// SaveCSV writes rows to path, adding ".csv" when missing.
func SaveCSV(path string, rows []Row) error {
	return save(withExt(path, ".csv"), func(w io.Writer) error { return WriteCSV(w, rows) })
}

// SaveText writes the summary to path, adding ".txt" when missing.
func SaveText(path string, res *engine.Result, prefs []preference.Preference) error {
	return save(withExt(path, ".txt"), func(w io.Writer) error { return WriteText(w, res, prefs) })
}

func save(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err = write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	return f.Close()
}

func withExt(path, ext string) string {
	if strings.HasSuffix(strings.ToLower(path), ext) {
		return path
	}

	return path + ext
}

// statement groups targets by subject, subjects in first-mention order.
type statement struct {
	order []preference.Person
	names map[preference.Person][]preference.Person
}

func stated(prefs []preference.Preference) (with, without statement) {
	with.names = make(map[preference.Person][]preference.Person)
	without.names = make(map[preference.Person][]preference.Person)
	for _, p := range prefs {
		s := &with
		if p.Polarity == preference.Avoid {
			s = &without
		}
		if _, ok := s.names[p.Subject]; !ok {
			s.order = append(s.order, p.Subject)
		}
		s.names[p.Subject] = append(s.names[p.Subject], p.Target)
	}

	return with, without
}

func (s statement) write(b *strings.Builder) {
	if len(s.order) == 0 {
		line(b, "")
	}
	for _, p := range s.order {
		fmt.Fprintf(b, "  %s: %s\n", p, join(s.names[p]))
	}
}

// line writes an indented line, "(none)" when text is empty.
func line(b *strings.Builder, text string) {
	if text == "" {
		text = "(none)"
	}
	fmt.Fprintf(b, "  %s\n", text)
}

func join(people []preference.Person) string {
	parts := make([]string, len(people))
	for i, p := range people {
		parts[i] = string(p)
	}

	return strings.Join(parts, ", ")
}
