// Package openspace seats people at open-space tables from "sit with" and
// "sit apart from" preferences.
//
// A run flows through the packages in this order:
//
//	preference/  roster and preferences validated into a want graph and an avoid graph
//	cluster/     want components, split by minimum cuts where an avoid pair shares one
//	balance/     capacity check, even split and table growth
//	room/        tables, capacities and occupants
//	seating/     clusters placed largest first, lone occupants repaired
//	engine/      the whole run behind one call, with run ID, seed and logging
//
// Supporting packages:
//
//	core/    undirected graph primitive (vertices, edges, induced subgraphs)
//	flow/    Edmonds–Karp minimum cut on unit-capacity graphs
//	sample/  generated rosters for trials and benchmarks
//
// The openspace command (cmd/openspace) reads a roster CSV and a JSON or YAML
// configuration, prints the seating, writes CSV and text results and can
// watch the configuration for changes.
//
// Quick start:
//
//	res, err := engine.Run(ctx, engine.Input{
//		People:      []preference.Person{"Aleksei", "Brigi", "Imran", "Jens"},
//		Preferences: prefs,
//		Room:        engine.RoomSpec{Tables: 2, Capacity: 3},
//	}, engine.WithSeed(42))
package openspace
