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
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/asutton/banjo-sub000/ast"
)

// Ordering relates the constraints of two templates.
type Ordering int

const (
	// Neither template's constraints subsume the other's.
	Unordered Ordering = iota
	// The first template is less constrained than the second.
	Less
	// The templates' constraints are equivalent.
	Equal
	// The first template is more constrained than the second.
	Greater
)

var orderingNames = [...]string{Unordered: "unordered", Less: "less", Equal: "equal", Greater: "greater"}

func (o Ordering) String() string { return orderingNames[o] }

// MoreConstrained orders two templates by the subsumption of their constraints. An unconstrained
// template is less constrained than any constrained one.
func (ctx *Context) MoreConstrained(a, b *ast.TemplateDecl) (Ordering, error) {
	switch {
	case a.Constraint == nil && b.Constraint == nil:
		return Equal, nil
	case a.Constraint == nil:
		return Less, nil
	case b.Constraint == nil:
		return Greater, nil
	}
	ac, err := ctx.Normalize(a.Constraint)
	if err != nil {
		return Unordered, err
	}
	bc, err := ctx.Normalize(b.Constraint)
	if err != nil {
		return Unordered, err
	}
	ab, err := ctx.Subsumes(ac, bc)
	if err != nil {
		return Unordered, err
	}
	ba, err := ctx.Subsumes(bc, ac)
	if err != nil {
		return Unordered, err
	}
	switch {
	case ab && ba:
		return Equal, nil
	case ab:
		return Greater, nil
	case ba:
		return Less, nil
	}
	return Unordered, nil
}

// MostConstrained returns the candidates which no other candidate is more constrained than, in
// their original order. Pairs of candidates are ordered concurrently; the first error cancels the
// remaining queries and is returned.
func (ctx *Context) MostConstrained(goctx context.Context, candidates []*ast.TemplateDecl) ([]*ast.TemplateDecl, error) {
	n := len(candidates)
	if n < 2 {
		return candidates, nil
	}
	// order[i*n+j] relates candidates i and j, for i < j.
	order := make([]Ordering, n*n)
	g, goctx := errgroup.WithContext(goctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.Go(func() error {
				if err := goctx.Err(); err != nil {
					return err
				}
				o, err := ctx.MoreConstrained(candidates[i], candidates[j])
				order[i*n+j] = o
				return err
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	dominated := make([]bool, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			switch order[i*n+j] {
			case Less:
				dominated[i] = true
			case Greater:
				dominated[j] = true
			}
		}
	}
	var best []*ast.TemplateDecl
	for i, c := range candidates {
		if !dominated[i] {
			best = append(best, c)
		}
	}
	return best, nil
}

// CheckRedeclaration returns a *RedeclarationError unless the constraints of next subsume those
// of prev.
func (ctx *Context) CheckRedeclaration(prev, next *ast.TemplateDecl) error {
	if prev.Constraint == nil {
		return nil
	}
	if next.Constraint == nil {
		return &RedeclarationError{Prev: prev, Next: next}
	}
	ok, err := ctx.SubsumesExpr(next.Constraint, prev.Constraint)
	if err != nil {
		return err
	}
	if !ok {
		return &RedeclarationError{Prev: prev, Next: next}
	}
	return nil
}
