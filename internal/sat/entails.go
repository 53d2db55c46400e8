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

// Package sat decides propositional entailment between constraints with a SAT solver.
//
// Atoms (predicates, expression and conversion constraints) become propositional variables,
// identified by structural equivalence; conjunctions and disjunctions become circuit gates.
// Concept checks are expanded and quantifiers are stripped before translation.
package sat

import (
	"errors"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/asutton/banjo-sub000/ast"
)

// ErrTooDeep is returned when concept expansion nests beyond MaxDepth.
var ErrTooDeep = errors.New("concept expansion nested too deeply")

// MaxDepth bounds nested concept expansions during translation.
const MaxDepth = 64

// ExpandFunc unfolds a concept check into its defining constraint.
type ExpandFunc func(*ast.ConceptCons) (ast.Cons, error)

// Translator maps constraints to literals of a circuit.
type Translator struct {
	c      *logic.C
	expand ExpandFunc
	atoms  map[uint64][]atom
	nAtoms int
}

type atom struct {
	cons ast.Cons
	lit  z.Lit
}

func NewTranslator(expand ExpandFunc) *Translator {
	return &Translator{
		c:      logic.NewCCap(32),
		expand: expand,
		atoms:  make(map[uint64][]atom, 16),
	}
}

// Atoms returns the number of distinct atoms translated so far.
func (t *Translator) Atoms() int { return t.nAtoms }

func (t *Translator) atomLit(c ast.Cons) z.Lit {
	h := ast.Hash(c)
	for _, a := range t.atoms[h] {
		if ast.EquivalentCons(a.cons, c) {
			return a.lit
		}
	}
	m := t.c.Lit()
	t.atoms[h] = append(t.atoms[h], atom{c, m})
	t.nAtoms++
	return m
}

// Lit translates c into a literal which is true exactly when c holds.
func (t *Translator) Lit(c ast.Cons) (z.Lit, error) { return t.lit(c, 0) }

func (t *Translator) lit(c ast.Cons, depth int) (z.Lit, error) {
	switch c := c.(type) {
	case *ast.ConceptCons:
		if depth >= MaxDepth {
			return z.LitNull, ErrTooDeep
		}
		x, err := t.expand(c)
		if err != nil {
			return z.LitNull, err
		}
		return t.lit(x, depth+1)

	case *ast.ParameterizedCons:
		return t.lit(c.Cons, depth)

	case *ast.ConjunctionCons:
		l, err := t.lit(c.Left, depth)
		if err != nil {
			return z.LitNull, err
		}
		r, err := t.lit(c.Right, depth)
		if err != nil {
			return z.LitNull, err
		}
		return t.c.And(l, r), nil

	case *ast.DisjunctionCons:
		l, err := t.lit(c.Left, depth)
		if err != nil {
			return z.LitNull, err
		}
		r, err := t.lit(c.Right, depth)
		if err != nil {
			return z.LitNull, err
		}
		return t.c.Or(l, r), nil

	case *ast.PredicateCons, *ast.ExpressionCons, *ast.ConversionCons:
		return t.atomLit(c), nil
	}
	panic("unknown constraint type: " + c.ConsName())
}

// Entails returns true if every assignment of the atoms which satisfies a also satisfies c,
// i.e. if a /\ !c is unsatisfiable.
func (t *Translator) Entails(a, c ast.Cons) (bool, error) {
	ma, err := t.Lit(a)
	if err != nil {
		return false, err
	}
	mc, err := t.Lit(c)
	if err != nil {
		return false, err
	}
	g := gini.New()
	t.c.ToCnf(g)
	g.Assume(ma, mc.Not())
	switch g.Solve() {
	case 1:
		return false, nil
	case -1:
		return true, nil
	}
	return false, errors.New("solver returned an undetermined result")
}

// Entails decides whether a propositionally entails c.
func Entails(a, c ast.Cons, expand ExpandFunc) (bool, error) {
	return NewTranslator(expand).Entails(a, c)
}
