package graph

import "testing"

func TestAddVertexDuplicate(t *testing.T) {
	g := NewDigraph[string, string]()

	if !g.AddVertex("a", "first") {
		t.Fatal("AddVertex() on a new id should return true")
	}
	if g.AddVertex("a", "second") {
		t.Error("AddVertex() on a duplicate id should return false")
	}

	// First write wins: the payload must not be overwritten.
	payload, ok := g.Payload("a")
	if !ok {
		t.Fatal("Payload() should find vertex a")
	}
	if payload != "first" {
		t.Errorf("Expected payload %q after duplicate add, got %q", "first", payload)
	}
	if g.VertexCount() != 1 {
		t.Errorf("Expected 1 vertex, got %d", g.VertexCount())
	}
}

func TestAddEdgeMissingEndpoints(t *testing.T) {
	g := NewDigraph[string, int]()
	g.AddVertex("a", 1)

	if g.AddEdge("a", "missing") {
		t.Error("AddEdge() to an unknown vertex should return false")
	}
	if g.AddEdge("missing", "a") {
		t.Error("AddEdge() from an unknown vertex should return false")
	}
	if g.EdgeCount() != 0 {
		t.Errorf("Expected 0 edges, got %d", g.EdgeCount())
	}
}

func TestAddEdgeDuplicate(t *testing.T) {
	g := NewDigraph[string, int]()
	g.AddVertex("a", 1)
	g.AddVertex("b", 2)

	if !g.AddEdge("a", "b") {
		t.Fatal("AddEdge() should succeed for existing vertices")
	}
	if g.AddEdge("a", "b") {
		t.Error("AddEdge() on an existing edge should return false")
	}
	if g.EdgeCount() != 1 {
		t.Errorf("Expected 1 edge, got %d", g.EdgeCount())
	}
}

func TestEdgesAreDirected(t *testing.T) {
	g := NewDigraph[string, int]()
	g.AddVertex("a", 1)
	g.AddVertex("b", 2)

	g.AddEdge("a", "b")

	if !g.HasEdge("a", "b") {
		t.Error("Expected edge a->b")
	}
	if g.HasEdge("b", "a") {
		t.Error("Edge a->b must not imply b->a")
	}

	// The reverse direction is an independent edge.
	if !g.AddEdge("b", "a") {
		t.Error("AddEdge(b, a) should succeed even though a->b exists")
	}
}

func TestSelfLoopPermitted(t *testing.T) {
	g := NewDigraph[string, int]()
	g.AddVertex("a", 1)

	if !g.AddEdge("a", "a") {
		t.Error("AddEdge(a, a) should succeed; the graph is agnostic to self-loops")
	}
	out := g.Outgoing("a")
	if len(out) != 1 || out[0] != "a" {
		t.Errorf("Expected outgoing [a], got %v", out)
	}
}

func TestRemoveEdge(t *testing.T) {
	g := NewDigraph[string, int]()
	g.AddVertex("a", 1)
	g.AddVertex("b", 2)
	g.AddEdge("a", "b")

	if !g.RemoveEdge("a", "b") {
		t.Error("RemoveEdge() on an existing edge should return true")
	}
	if g.RemoveEdge("a", "b") {
		t.Error("RemoveEdge() on a missing edge should return false")
	}
	if g.RemoveEdge("a", "missing") {
		t.Error("RemoveEdge() with a missing endpoint should return false")
	}

	// An edge may be re-added after removal.
	if !g.AddEdge("a", "b") {
		t.Error("AddEdge() should succeed after the edge was removed")
	}
}

func TestOutgoingAndIncoming(t *testing.T) {
	g := NewDigraph[string, int]()
	g.AddVertex("a", 1)
	g.AddVertex("b", 2)
	g.AddVertex("c", 3)

	g.AddEdge("a", "b")
	g.AddEdge("a", "c")
	g.AddEdge("c", "b")

	out := g.Outgoing("a")
	if len(out) != 2 {
		t.Errorf("Expected 2 outgoing neighbors of a, got %d", len(out))
	}
	outSet := make(map[string]bool)
	for _, id := range out {
		outSet[id] = true
	}
	if !outSet["b"] || !outSet["c"] {
		t.Errorf("Expected outgoing {b, c}, got %v", out)
	}

	in := g.Incoming("b")
	if len(in) != 2 {
		t.Errorf("Expected 2 incoming neighbors of b, got %d", len(in))
	}
	inSet := make(map[string]bool)
	for _, id := range in {
		inSet[id] = true
	}
	if !inSet["a"] || !inSet["c"] {
		t.Errorf("Expected incoming {a, c}, got %v", in)
	}

	if len(g.Incoming("a")) != 0 {
		t.Errorf("Expected no incoming neighbors of a, got %v", g.Incoming("a"))
	}
}

func TestUnknownIDQueries(t *testing.T) {
	g := NewDigraph[string, int]()
	g.AddVertex("a", 1)

	if len(g.Outgoing("missing")) != 0 {
		t.Error("Outgoing() on an unknown id should return an empty sequence")
	}
	if len(g.Incoming("missing")) != 0 {
		t.Error("Incoming() on an unknown id should return an empty sequence")
	}
	if g.HasVertex("missing") {
		t.Error("HasVertex() should be false for an unknown id")
	}
	if _, ok := g.Payload("missing"); ok {
		t.Error("Payload() should report absence for an unknown id")
	}
}

func TestVertexIDs(t *testing.T) {
	g := NewDigraph[int, string]()
	g.AddVertex(1, "one")
	g.AddVertex(2, "two")
	g.AddVertex(3, "three")

	ids := g.VertexIDs()
	if len(ids) != 3 {
		t.Fatalf("Expected 3 vertex ids, got %d", len(ids))
	}
	seen := make(map[int]bool)
	for _, id := range ids {
		seen[id] = true
	}
	for want := 1; want <= 3; want++ {
		if !seen[want] {
			t.Errorf("VertexIDs() missing %d: %v", want, ids)
		}
	}
}
