// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package util

// Graph is an adjacency list over vertices 0..len(g)-1.
type Graph [][]int

func NewGraph(numVerts int) Graph { return Graph(make([][]int, numVerts)) }

func (g Graph) AddEdge(from, to int) {
	if !g.HasEdge(from, to) {
		g[from] = append(g[from], to)
	}
}

func (g Graph) HasEdge(from, to int) bool {
	for _, succ := range g[from] {
		if succ == to {
			return true
		}
	}
	return false
}

// SCC returns the strongly-connected components of g in topological order: a component never
// has edges into components which precede it.
func (g Graph) SCC() [][]int {
	t := tarjan{
		index:   make([]int, len(g)),
		lowLink: make([]int, len(g)),
		onStack: make([]bool, len(g)),
	}
	for v := range g {
		if t.index[v] == 0 {
			t.visit(g, v)
		}
	}
	sccs := t.sccs
	// Tarjan emits components in reverse topological order:
	for i, j := 0, len(sccs)-1; i < j; i, j = i+1, j-1 {
		sccs[i], sccs[j] = sccs[j], sccs[i]
	}
	return sccs
}

// Cycles returns the strongly-connected components of g which contain a cycle: components with
// more than one vertex, or a single vertex with an edge to itself.
func (g Graph) Cycles() [][]int {
	var cycles [][]int
	for _, c := range g.SCC() {
		if len(c) > 1 || g.HasEdge(c[0], c[0]) {
			cycles = append(cycles, c)
		}
	}
	return cycles
}

type tarjan struct {
	counter int
	index   []int // 1-based discovery order; 0 means unvisited
	lowLink []int
	onStack []bool
	stack   []int
	sccs    [][]int
}

type frame struct {
	v    int
	next int // next successor of v to consider
}

// Tarjan's algorithm with an explicit call stack, so deep graphs cannot overflow the goroutine stack.
func (t *tarjan) visit(g Graph, root int) {
	calls := []frame{{v: root}}
	t.discover(root)
	for len(calls) > 0 {
		top := &calls[len(calls)-1]
		v := top.v
		if top.next < len(g[v]) {
			succ := g[v][top.next]
			top.next++
			switch {
			case t.index[succ] == 0:
				t.discover(succ)
				calls = append(calls, frame{v: succ})
			case t.onStack[succ] && t.index[succ] < t.lowLink[v]:
				t.lowLink[v] = t.index[succ]
			}
			continue
		}
		calls = calls[:len(calls)-1]
		if len(calls) > 0 {
			if parent := calls[len(calls)-1].v; t.lowLink[v] < t.lowLink[parent] {
				t.lowLink[parent] = t.lowLink[v]
			}
		}
		if t.lowLink[v] == t.index[v] {
			var c []int
			for {
				w := t.stack[len(t.stack)-1]
				t.stack = t.stack[:len(t.stack)-1]
				t.onStack[w] = false
				c = append(c, w)
				if w == v {
					break
				}
			}
			t.sccs = append(t.sccs, c)
		}
	}
}

func (t *tarjan) discover(v int) {
	t.counter++
	t.index[v], t.lowLink[v] = t.counter, t.counter
	t.stack = append(t.stack, v)
	t.onStack[v] = true
}
