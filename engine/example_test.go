package engine_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/openspace/engine"
	"github.com/katalvlaran/openspace/preference"
)

// ExampleRun organises four people at two tables. The avoid breaks the
// want chain in two.
func ExampleRun() {
	prefs, _ := preference.ParseAll([]string{
		"Aleksei wants Brigi and Imran",
		"Imran wants Jens",
		"Aleksei does not want Jens",
	})
	in := engine.Input{
		People:      []preference.Person{"Aleksei", "Brigi", "Imran", "Jens"},
		Preferences: prefs,
		Room:        engine.RoomSpec{Tables: 2, Capacity: 3},
	}

	res, err := engine.Run(context.Background(), in, engine.WithSeed(2024))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, c := range res.Clusters {
		fmt.Println("cluster", c.ID, c.Members)
	}
	for _, r := range res.Removed {
		fmt.Println("broken:", r.A, "-", r.B)
	}
	fmt.Println("seats", res.TotalSeats(), "people", res.TotalPeople(), "free", res.SeatsFree())
	// Output:
	// cluster 1 [Aleksei Brigi]
	// cluster 2 [Imran Jens]
	// broken: Aleksei - Imran
	// seats 6 people 4 free 2
}
