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

package ast_test

import (
	"sync"
	"testing"

	"github.com/davecgh/go-spew/spew"

	. "github.com/asutton/banjo-sub000/construct"

	"github.com/asutton/banjo-sub000/ast"
)

func TestInternCanonical(t *testing.T) {
	in := ast.NewInterner()
	x, y := Var("x", ast.Bool, nil), Var("y", ast.Bool, nil)

	px := in.Predicate(Ref(x))
	py := in.Predicate(Ref(y))
	if px.ID() != 1 || py.ID() != 2 {
		t.Fatalf("expected dense ids, found %d and %d", px.ID(), py.ID())
	}
	if in.Predicate(Ref(x)) != px {
		t.Fatalf("expected equivalent predicates to be interned once")
	}
	c := in.Conjunction(px, py)
	raw := &ast.ConjunctionCons{Left: &ast.PredicateCons{Expr: Ref(x)}, Right: &ast.PredicateCons{Expr: Ref(y)}}
	if in.Intern(raw) != c {
		t.Fatalf("expected structural lookup:\n%s", spew.Sdump(raw))
	}
	if raw.ID() != 0 {
		t.Fatalf("expected a duplicate to remain un-interned")
	}
	if in.Conjunction(py, px) == c || in.Disjunction(px, py) == c {
		t.Fatalf("expected distinct constraints to be interned separately")
	}
	if in.Len() != 5 {
		t.Fatalf("expected 5 interned constraints, found %d", in.Len())
	}
}

func TestInternForeign(t *testing.T) {
	x := Var("x", ast.Bool, nil)
	p := ast.NewInterner().Predicate(Ref(x))
	other := ast.NewInterner()
	other.Predicate(Ref(Var("y", ast.Bool, nil)))

	defer func() {
		if recover() == nil {
			t.Fatalf("expected interning a foreign constraint to panic")
		}
	}()
	other.Intern(p)
}

func TestInternOwns(t *testing.T) {
	x := Var("x", ast.Bool, nil)
	in, other := ast.NewInterner(), ast.NewInterner()
	p, q := in.Predicate(Ref(x)), other.Predicate(Ref(x))
	if p.ID() != q.ID() {
		t.Fatalf("expected the first ids of both interners to match, found %d and %d", p.ID(), q.ID())
	}
	if !in.Owns(p) || in.Owns(q) || !other.Owns(q) {
		t.Fatalf("expected each interner to own only its own constraints")
	}
	if in.Owns(&ast.PredicateCons{Expr: Ref(x)}) || in.Owns(nil) {
		t.Fatalf("expected un-interned constraints not to be owned")
	}
	if in.Intern(q) != p {
		t.Fatalf("expected a foreign constraint to map to its canonical equivalent")
	}
}

func TestInternConcurrent(t *testing.T) {
	in := ast.NewInterner()
	vs := Vars(Var("a", ast.Bool, nil), Var("b", ast.Bool, nil), Var("c", ast.Bool, nil))

	const workers = 8
	results := make([][]ast.Cons, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for _, v := range vs {
				p := in.Predicate(Ref(v))
				results[w] = append(results[w], p, in.Disjunction(p, p))
			}
		}(w)
	}
	wg.Wait()

	for w := 1; w < workers; w++ {
		for i := range results[0] {
			if results[w][i] != results[0][i] {
				t.Fatalf("expected worker %d to share constraint %s", w, ast.ConsString(results[0][i]))
			}
		}
	}
	if in.Len() != 6 {
		t.Fatalf("expected 6 interned constraints, found %d", in.Len())
	}
}

func TestIsAtomic(t *testing.T) {
	in := ast.NewInterner()
	p := in.Predicate(True())
	for _, c := range []ast.Cons{p, in.Expression(Int(1), ast.Int), in.Conversion(Int(1), ast.Bool)} {
		if !ast.IsAtomic(c) {
			t.Fatalf("expected %s to be atomic", ast.ConsString(c))
		}
	}
	concept := Concept("C", nil, True())
	for _, c := range []ast.Cons{in.Concept(concept, nil), in.Conjunction(p, p), in.Disjunction(p, p), in.Parameterized(nil, p)} {
		if ast.IsAtomic(c) {
			t.Fatalf("expected %s to be compound", ast.ConsString(c))
		}
	}
}
