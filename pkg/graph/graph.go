// Package graph provides a generic unweighted directed graph keyed by an
// opaque vertex identifier, with an arbitrary payload per vertex.
//
// The graph is a plain in-memory structure with no locking; callers that
// share an instance across goroutines must synchronize externally. Absence
// is always reported through the boolean/empty-collection return contract,
// never through errors.
package graph

// Digraph is a directed graph over vertex identifiers of type ID, each
// carrying a payload of type P. Vertices are add-only; edges may be removed
// and re-added freely. Parallel edges between the same ordered pair are
// rejected, but (A,B) and (B,A) are independent edges and self-loops are
// permitted.
type Digraph[ID comparable, P any] struct {
	vertices  map[ID]P
	adjacency map[ID]map[ID]struct{}
	edgeCount int
}

// NewDigraph creates a new empty directed graph.
func NewDigraph[ID comparable, P any]() *Digraph[ID, P] {
	return &Digraph[ID, P]{
		vertices:  make(map[ID]P),
		adjacency: make(map[ID]map[ID]struct{}),
	}
}

// AddVertex records a new vertex with an empty outgoing set.
// Returns false without overwriting if the id already exists.
func (g *Digraph[ID, P]) AddVertex(id ID, payload P) bool {
	if _, exists := g.vertices[id]; exists {
		return false
	}
	g.vertices[id] = payload
	g.adjacency[id] = make(map[ID]struct{})
	return true
}

// AddEdge inserts the directed edge (from, to). Returns false if either
// endpoint is missing or the edge already exists. Self-loops are not
// rejected at this layer.
func (g *Digraph[ID, P]) AddEdge(from, to ID) bool {
	if _, exists := g.vertices[from]; !exists {
		return false
	}
	if _, exists := g.vertices[to]; !exists {
		return false
	}
	if _, exists := g.adjacency[from][to]; exists {
		return false
	}
	g.adjacency[from][to] = struct{}{}
	g.edgeCount++
	return true
}

// RemoveEdge deletes the directed edge (from, to). Returns true only if the
// edge existed.
func (g *Digraph[ID, P]) RemoveEdge(from, to ID) bool {
	if _, exists := g.adjacency[from][to]; !exists {
		return false
	}
	delete(g.adjacency[from], to)
	g.edgeCount--
	return true
}

// Outgoing returns the ids the given vertex points to, in unspecified
// order. An unknown id yields an empty slice.
func (g *Digraph[ID, P]) Outgoing(id ID) []ID {
	neighbors := g.adjacency[id]
	out := make([]ID, 0, len(neighbors))
	for n := range neighbors {
		out = append(out, n)
	}
	return out
}

// Incoming returns the ids that point to the given vertex, in unspecified
// order. An unknown id yields an empty slice. This scans every adjacency
// set, so it costs O(total edges).
func (g *Digraph[ID, P]) Incoming(id ID) []ID {
	if _, exists := g.vertices[id]; !exists {
		return nil
	}
	var in []ID
	for v, neighbors := range g.adjacency {
		if _, ok := neighbors[id]; ok {
			in = append(in, v)
		}
	}
	return in
}

// HasVertex reports whether the id is present in the graph.
func (g *Digraph[ID, P]) HasVertex(id ID) bool {
	_, exists := g.vertices[id]
	return exists
}

// HasEdge reports whether the directed edge (from, to) is present.
func (g *Digraph[ID, P]) HasEdge(from, to ID) bool {
	_, exists := g.adjacency[from][to]
	return exists
}

// Payload returns the payload stored with the vertex.
func (g *Digraph[ID, P]) Payload(id ID) (P, bool) {
	payload, exists := g.vertices[id]
	return payload, exists
}

// VertexIDs returns all vertex ids in unspecified order.
func (g *Digraph[ID, P]) VertexIDs() []ID {
	ids := make([]ID, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	return ids
}

// VertexCount returns the number of vertices.
func (g *Digraph[ID, P]) VertexCount() int {
	return len(g.vertices)
}

// EdgeCount returns the number of edges.
func (g *Digraph[ID, P]) EdgeCount() int {
	return g.edgeCount
}
