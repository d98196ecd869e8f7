// Package core defines the undirected Graph, Vertex and Edge types that back
// the preference graph, and provides primitives for building, querying,
// cloning and slicing graphs.
//
// All core APIs are guarded by a single sync.RWMutex, so a Graph can be read
// concurrently while one writer mutates it.
//
// This file declares Vertex, Edge, Graph, GraphOption, sentinel errors, and
// the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - edge from a vertex to itself.
//	ErrMultiEdgeNotAllowed - second edge between the same two vertices.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata stores arbitrary key-value data and is shared on clones.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// Edge represents an undirected connection between two vertices.
//
// From and To keep the orientation in which the edge was first added, which
// is how a preference was authored. Adjacency is always mirrored.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the endpoint the edge was added from.
	From string

	// To is the other endpoint.
	To string

	// seq is the numeric part of ID, used for deterministic ordering.
	seq uint64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// Graph is the core in-memory undirected graph.
//
// Vertices are kept in insertion order so that every traversal built on top
// of the graph is reproducible for the same input order. Edge IDs come from a
// monotonic counter and Edges and EdgesBetween return edges in creation order.
type Graph struct {
	mu sync.RWMutex // guards everything below

	// Storage
	nextEdgeID uint64             // edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	order      []string           // vertex IDs in insertion order
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[a][b][edgeID] = struct{}{}, mirrored for b→a.
	adjacency map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// Graphs are unweighted and reject parallel edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
