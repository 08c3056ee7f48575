package social

import "gonum.org/v1/gonum/graph"

// sccFinder computes strongly connected components of a directed graph
// using Tarjan's algorithm.
type sccFinder struct {
	graph   graph.Directed
	index   int
	stack   []int64
	onStack map[int64]bool
	indices map[int64]int
	lowLink map[int64]int
	sccs    [][]int64
}

func newSCCFinder(g graph.Directed) *sccFinder {
	return &sccFinder{
		graph:   g,
		onStack: make(map[int64]bool),
		indices: make(map[int64]int),
		lowLink: make(map[int64]int),
	}
}

// find returns every strongly connected component, including singletons.
func (f *sccFinder) find() [][]int64 {
	nodes := f.graph.Nodes()
	for nodes.Next() {
		id := nodes.Node().ID()
		if _, visited := f.indices[id]; !visited {
			f.strongConnect(id)
		}
	}
	return f.sccs
}

func (f *sccFinder) strongConnect(nodeID int64) {
	f.indices[nodeID] = f.index
	f.lowLink[nodeID] = f.index
	f.index++

	f.stack = append(f.stack, nodeID)
	f.onStack[nodeID] = true

	successors := f.graph.From(nodeID)
	for successors.Next() {
		succID := successors.Node().ID()
		if _, visited := f.indices[succID]; !visited {
			f.strongConnect(succID)
			f.lowLink[nodeID] = min(f.lowLink[nodeID], f.lowLink[succID])
		} else if f.onStack[succID] {
			f.lowLink[nodeID] = min(f.lowLink[nodeID], f.indices[succID])
		}
	}

	// nodeID roots a component; pop the stack down to it.
	if f.lowLink[nodeID] == f.indices[nodeID] {
		var scc []int64
		for {
			w := f.stack[len(f.stack)-1]
			f.stack = f.stack[:len(f.stack)-1]
			f.onStack[w] = false
			scc = append(scc, w)
			if w == nodeID {
				break
			}
		}
		f.sccs = append(f.sccs, scc)
	}
}
