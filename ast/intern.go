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

package ast

import (
	"sync"
)

// Interner hash-conses constraints: structurally equivalent constraints built through the same
// Interner are represented by a single object with a unique, non-zero id.
//
// An Interner may be used concurrently.
type Interner struct {
	mu      sync.Mutex
	buckets map[uint64][]Cons
	nextId  uint32
}

// Create an empty interner.
func NewInterner() *Interner {
	return &Interner{buckets: make(map[uint64][]Cons, 64)}
}

// Len returns the number of distinct constraints in the interner.
func (in *Interner) Len() int {
	in.mu.Lock()
	n := int(in.nextId)
	in.mu.Unlock()
	return n
}

// Intern returns the canonical instance of c. If no equivalent constraint has been interned, c itself
// is assigned an id and becomes canonical. c must not have been interned by another interner.
func (in *Interner) Intern(c Cons) Cons {
	h := Hash(c)
	in.mu.Lock()
	defer in.mu.Unlock()
	for _, existing := range in.buckets[h] {
		if existing == c || EquivalentCons(existing, c) {
			return existing
		}
	}
	if c.ID() != 0 {
		panic("constraint interned by another interner: " + c.ConsName())
	}
	in.nextId++
	stamp(c, in, in.nextId)
	in.buckets[h] = append(in.buckets[h], c)
	return c
}

func stamp(c Cons, in *Interner, id uint32) {
	var x *interned
	switch c := c.(type) {
	case *ConceptCons:
		x = &c.interned
	case *PredicateCons:
		x = &c.interned
	case *ExpressionCons:
		x = &c.interned
	case *ConversionCons:
		x = &c.interned
	case *ParameterizedCons:
		x = &c.interned
	case *ConjunctionCons:
		x = &c.interned
	case *DisjunctionCons:
		x = &c.interned
	default:
		panic("unknown constraint type: " + c.ConsName())
	}
	x.id, x.owner = id, in
}

// Owns returns true if c is a canonical constraint of this interner. Ids of constraints which are
// not owned mean nothing to this interner.
func (in *Interner) Owns(c Cons) bool { return c != nil && c.ID() != 0 && c.internedBy() == in }

// Concept check: `C<args...>`
func (in *Interner) Concept(decl *ConceptDecl, args []Term) Cons {
	return in.Intern(&ConceptCons{Decl: decl, Args: args})
}

// Predicate: `e`
func (in *Interner) Predicate(e Expr) Cons {
	return in.Intern(&PredicateCons{Expr: e})
}

// Usage requirement: `e : t`
func (in *Interner) Expression(e Expr, t Type) Cons {
	return in.Intern(&ExpressionCons{Expr: e, Type: t})
}

// Conversion requirement: `e -> t`
func (in *Interner) Conversion(e Expr, t Type) Cons {
	return in.Intern(&ConversionCons{Expr: e, Type: t})
}

// Quantified constraint: `forall (vars). c`
func (in *Interner) Parameterized(vars []*VariableDecl, c Cons) Cons {
	return in.Intern(&ParameterizedCons{Vars: vars, Cons: c})
}

// Conjunction: `l /\ r`
func (in *Interner) Conjunction(l, r Cons) Cons {
	return in.Intern(&ConjunctionCons{Left: l, Right: r})
}

// Disjunction: `l \/ r`
func (in *Interner) Disjunction(l, r Cons) Cons {
	return in.Intern(&DisjunctionCons{Left: l, Right: r})
}
