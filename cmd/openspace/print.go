package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/katalvlaran/openspace/engine"
)

var (
	tableColor  = color.New(color.FgCyan, color.Bold)
	brokenColor = color.New(color.FgRed)
	warnColor   = color.New(color.FgYellow)
)

func printSeating(w io.Writer, res *engine.Result) {
	fmt.Fprintf(w, "Run %s (seed %d, %s)\n", res.RunID, res.Seed, res.Policy)
	for _, t := range res.Room.Tables() {
		names := make([]string, len(t.Occupants))
		for i, p := range t.Occupants {
			names[i] = string(p)
		}
		tableColor.Fprint(w, t.Name)
		fmt.Fprintf(w, " (%d/%d): %s\n", len(t.Occupants), t.Capacity, strings.Join(names, ", "))
	}
	for _, r := range res.Removed {
		brokenColor.Fprintf(w, "broken: %s - %s (%s avoids %s)\n", r.A, r.B, r.Reason.A, r.Reason.B)
	}
	for _, a := range res.Advisories {
		warnColor.Fprintf(w, "warning: %s sits alone at %s\n", a.Person, a.Table)
	}
	if res.TablesAdded > 0 {
		fmt.Fprintf(w, "tables added: %d\n", res.TablesAdded)
	}
	fmt.Fprintf(w, "seats %d, people %d, free %d\n", res.TotalSeats(), res.TotalPeople(), res.SeatsFree())
}
