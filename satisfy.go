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
	"github.com/asutton/banjo-sub000/ast"
	"github.com/asutton/banjo-sub000/internal/astutil"
	"github.com/asutton/banjo-sub000/internal/eval"
)

// IsSatisfied decides whether a concrete (non-dependent) constraint holds.
//
// Concept checks are expanded, predicates are evaluated as constant expressions, and conjunctions
// and disjunctions short-circuit: the right operand is not evaluated when the left decides the result.
// Any other constraint (quantified, expression or conversion constraints) is an internal error.
func (ctx *Context) IsSatisfied(c ast.Cons) (bool, error) {
	if astutil.IsDependent(c) {
		return false, &DependentError{Cons: c}
	}
	s := satisfier{ctx: ctx}
	return s.satisfied(c)
}

// IsSatisfiedExpr normalizes e and decides whether the result is satisfied.
func (ctx *Context) IsSatisfiedExpr(e ast.Expr) (bool, error) {
	c, err := ctx.Normalize(e)
	if err != nil {
		return false, err
	}
	return ctx.IsSatisfied(c)
}

type satisfier struct {
	ctx        *Context
	expansions int
}

func (s *satisfier) satisfied(c ast.Cons) (bool, error) {
	switch c := c.(type) {
	case *ast.ConceptCons:
		if s.expansions++; s.expansions > s.ctx.limits.MaxExpansions {
			return false, &LimitError{Limit: "expansion", Max: s.ctx.limits.MaxExpansions}
		}
		x, err := s.ctx.Expand(c)
		if err != nil {
			return false, err
		}
		return s.satisfied(x)

	case *ast.PredicateCons:
		ev := eval.Evaluator{Check: s.check}
		return ev.EvaluateBool(c.Expr)

	case *ast.ConjunctionCons:
		if ok, err := s.satisfied(c.Left); err != nil || !ok {
			return false, err
		}
		return s.satisfied(c.Right)

	case *ast.DisjunctionCons:
		if ok, err := s.satisfied(c.Left); err != nil || ok {
			return ok, err
		}
		return s.satisfied(c.Right)

	case nil:
		return false, unreachable("satisfaction of a missing constraint")
	}
	return false, unhandled("satisfaction of constraint", c)
}

// check decides concept checks nested within predicates.
func (s *satisfier) check(e *ast.Check) (bool, error) {
	return s.satisfied(s.ctx.interner.Concept(e.Concept, e.Args))
}
