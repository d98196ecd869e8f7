// Package sample generates rosters and preference sets for benchmarks,
// property tests and trial runs.
//
// Generators are deterministic for a given random source: pass WithSeed to
// lock outcomes. Names come from a NameFn, DefaultName by default.
//
//	sc, err := sample.Random(40, 0.05, 0.02, sample.WithSeed(7))
//	res, err := engine.Run(ctx, engine.Input{People: sc.People, Preferences: sc.Preferences, Room: spec})
package sample
