// Package flow computes maximum flow and minimum edge cuts on undirected
// graphs represented by *core.Graph.
//
// Every undirected edge is modelled as a pair of opposite arcs of capacity 1.
//
// The key algorithm offered is Edmonds–Karp:
//
//   - Method: breadth-first search for shortest (fewest-edge) augmenting paths.
//   - Time:   O(V · E²) in the worst case, O(E · F) on unit-capacity graphs
//     where F is the flow value.
//   - Memory: O(V + E) for the residual map and BFS queue.
//
// BFS explores vertices in the graph's insertion order, so the same graph
// built in the same order always yields the same flow decomposition and the
// same cut.
//
// # API
//
//	func EdmondsKarp(ctx, g, source, sink, opts) (maxFlow int64, residual *Residual, err error)
//	func MinCut(ctx, g, source, sink, opts) (*Cut, error)
//
// MinCut returns the edges leaving the set of vertices still reachable from
// source in the final residual network. Among all minimum cuts this is the
// one closest to source.
//
// # Errors
//
//	ErrSourceNotFound - if the source vertex is missing in the input graph.
//	ErrSinkNotFound   - if the sink vertex is missing.
//	ErrSameEndpoints  - if source == sink.
//	context.Canceled / context.DeadlineExceeded - if ctx is canceled.
package flow
