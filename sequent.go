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

package banjo

import (
	"strings"

	"github.com/benbjohnson/immutable"

	"github.com/asutton/banjo-sub000/ast"
)

var (
	emptyList  = immutable.NewList()
	emptyIndex = immutable.NewMap(consHasher{})
)

// consHasher identifies constraints by structural equivalence.
type consHasher struct{}

func (consHasher) Hash(key interface{}) uint32 {
	h := ast.Hash(key.(ast.Cons))
	return uint32(h ^ h>>32)
}

func (consHasher) Equal(a, b interface{}) bool {
	return a == b || ast.EquivalentCons(a.(ast.Cons), b.(ast.Cons))
}

// PropList is a persistent, ordered list of constraints with constant-time membership by
// structural equivalence. Updates return a new list; the receiver is unchanged, so copies of a
// sequent share their common prefix of work.
type PropList struct {
	l     *immutable.List
	index *immutable.Map // constraint -> number of occurrences
}

func NewPropList(cs ...ast.Cons) PropList {
	l := PropList{l: emptyList, index: emptyIndex}
	for _, c := range cs {
		l = l.Append(c)
	}
	return l
}

func countUp(index *immutable.Map, c ast.Cons) *immutable.Map {
	n, _ := index.Get(c)
	if n == nil {
		return index.Set(c, 1)
	}
	return index.Set(c, n.(int)+1)
}

func countDown(index *immutable.Map, c ast.Cons) *immutable.Map {
	n, _ := index.Get(c)
	if n == nil {
		return index
	}
	if n.(int) == 1 {
		return index.Delete(c)
	}
	return index.Set(c, n.(int)-1)
}

func (l PropList) Len() int {
	if l.l == nil {
		return 0
	}
	return l.l.Len()
}

// At returns the i-th constraint.
func (l PropList) At(i int) ast.Cons { return l.l.Get(i).(ast.Cons) }

// Contains returns true if some constraint in l is equivalent to c.
func (l PropList) Contains(c ast.Cons) bool {
	if l.index == nil {
		return false
	}
	_, ok := l.index.Get(c)
	return ok
}

// Append c to the end of l.
func (l PropList) Append(c ast.Cons) PropList {
	if l.l == nil {
		l = PropList{l: emptyList, index: emptyIndex}
	}
	return PropList{l: l.l.Append(c), index: countUp(l.index, c)}
}

// Replace the i-th constraint with c.
func (l PropList) Set(i int, c ast.Cons) PropList {
	index := countUp(countDown(l.index, l.At(i)), c)
	return PropList{l: l.l.Set(i, c), index: index}
}

// Insert c immediately after the i-th constraint.
func (l PropList) InsertAfter(i int, c ast.Cons) PropList {
	if i == l.Len()-1 {
		return l.Append(c)
	}
	out := l.l.Slice(0, i+1).Append(c)
	for j, n := i+1, l.Len(); j < n; j++ {
		out = out.Append(l.l.Get(j))
	}
	return PropList{l: out, index: countUp(l.index, c)}
}

// IsReduced returns true if every constraint in l is atomic.
func (l PropList) IsReduced() bool {
	reduced := true
	l.Range(func(_ int, c ast.Cons) bool {
		reduced = ast.IsAtomic(c)
		return reduced
	})
	return reduced
}

// If f returns false, iteration will be stopped.
func (l PropList) Range(f func(int, ast.Cons) bool) {
	if l.l == nil {
		return
	}
	iter := l.l.Iterator()
	for !iter.Done() {
		i, v := iter.Next()
		if !f(i, v.(ast.Cons)) {
			return
		}
	}
}

// Slice copies the constraints of l into a new slice.
func (l PropList) Slice() []ast.Cons {
	cs := make([]ast.Cons, 0, l.Len())
	l.Range(func(_ int, c ast.Cons) bool {
		cs = append(cs, c)
		return true
	})
	return cs
}

func (l PropList) String() string {
	var sb strings.Builder
	l.Range(func(i int, c ast.Cons) bool {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(ast.ConsString(c))
		return true
	})
	return sb.String()
}

// Sequent is a goal of the form A |- C: the conjunction of the antecedents A entails the
// disjunction of the consequents C.
type Sequent struct {
	Ants PropList
	Cons PropList
}

// NewSequent returns the sequent a |- c.
func NewSequent(a, c ast.Cons) *Sequent {
	return &Sequent{Ants: NewPropList(a), Cons: NewPropList(c)}
}

// Clone returns an independent copy of s. Lists are persistent, so the copy shares storage with s
// until either is updated.
func (s *Sequent) Clone() *Sequent {
	clone := *s
	return &clone
}

func (s *Sequent) String() string { return s.Ants.String() + " |- " + s.Cons.String() }
