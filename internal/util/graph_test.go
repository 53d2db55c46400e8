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

package util_test

import (
	"sort"
	"testing"

	. "github.com/asutton/banjo-sub000/internal/util"
)

func sorted(sccs [][]int) [][]int {
	for _, c := range sccs {
		sort.Ints(c)
	}
	return sccs
}

func TestSCCTopologicalOrder(t *testing.T) {
	g := NewGraph(5)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 1)
	g.AddEdge(2, 3)
	g.AddEdge(4, 4)

	sccs := sorted(g.SCC())
	pos := make(map[int]int)
	for i, c := range sccs {
		for _, v := range c {
			pos[v] = i
		}
	}
	if len(sccs) != 4 {
		t.Fatalf("expected 4 components, got %v", sccs)
	}
	if pos[1] != pos[2] {
		t.Fatalf("expected 1 and 2 in the same component: %v", sccs)
	}
	if !(pos[0] < pos[1] && pos[1] < pos[3]) {
		t.Fatalf("components are not topologically ordered: %v", sccs)
	}
}

func TestCycles(t *testing.T) {
	g := NewGraph(5)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 1)
	g.AddEdge(4, 4)
	g.AddEdge(4, 4) // duplicate edges are ignored

	if len(g[4]) != 1 {
		t.Fatalf("duplicate edge added: %v", g[4])
	}
	cycles := sorted(g.Cycles())
	if len(cycles) != 2 {
		t.Fatalf("expected 2 cycles, got %v", cycles)
	}
	for _, c := range cycles {
		switch len(c) {
		case 1:
			if c[0] != 4 {
				t.Fatalf("unexpected self-loop component: %v", c)
			}
		case 2:
			if c[0] != 1 || c[1] != 2 {
				t.Fatalf("unexpected component: %v", c)
			}
		default:
			t.Fatalf("unexpected component: %v", c)
		}
	}
}

func TestDeepChain(t *testing.T) {
	const n = 100000
	g := NewGraph(n)
	for i := 0; i+1 < n; i++ {
		g.AddEdge(i, i+1)
	}
	if cycles := g.Cycles(); len(cycles) != 0 {
		t.Fatalf("unexpected cycles in a chain: %d", len(cycles))
	}
	g.AddEdge(n-1, 0)
	if cycles := g.Cycles(); len(cycles) != 1 || len(cycles[0]) != n {
		t.Fatalf("expected a single cycle over the chain")
	}
}
