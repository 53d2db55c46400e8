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
)

// Normalize translates a constraint expression into a constraint:
//
//   a && b                 => a /\ b
//   a || b                 => a \/ b
//   C<args>                => C<args> (unexpanded)
//   requires (ps) { rs }   => forall (ps). normalize(rs)
//   e                      => e (predicate), for any other expression
//
// The result is interned.
func (ctx *Context) Normalize(e ast.Expr) (ast.Cons, error) {
	in := ctx.interner
	switch e := e.(type) {
	case nil:
		return nil, unreachable("normalization of a missing expression")

	case *ast.And:
		l, err := ctx.Normalize(e.Left)
		if err != nil {
			return nil, err
		}
		r, err := ctx.Normalize(e.Right)
		if err != nil {
			return nil, err
		}
		return in.Conjunction(l, r), nil

	case *ast.Or:
		l, err := ctx.Normalize(e.Left)
		if err != nil {
			return nil, err
		}
		r, err := ctx.Normalize(e.Right)
		if err != nil {
			return nil, err
		}
		return in.Disjunction(l, r), nil

	case *ast.Check:
		return in.Concept(e.Concept, e.Args), nil

	case *ast.Requires:
		c, err := ctx.NormalizeRequirements(e.Reqs)
		if err != nil {
			return nil, err
		}
		return in.Parameterized(e.Params, c), nil

	case *ast.BoolLit, *ast.IntLit, *ast.DeclRef, *ast.Unary, *ast.Binary, *ast.Call, *ast.Conv:
		return in.Predicate(e), nil
	}
	return nil, unhandled("expression", e)
}

// NormalizeRequirements translates a non-empty requirement list into the left-folded conjunction
// of its normalized requirements.
func (ctx *Context) NormalizeRequirements(reqs []ast.Req) (ast.Cons, error) {
	if len(reqs) == 0 {
		return nil, ErrEmptyRequirements
	}
	c, err := ctx.normalizeReq(reqs[0])
	if err != nil {
		return nil, err
	}
	for _, r := range reqs[1:] {
		next, err := ctx.normalizeReq(r)
		if err != nil {
			return nil, err
		}
		c = ctx.interner.Conjunction(c, next)
	}
	return c, nil
}

func (ctx *Context) normalizeReq(r ast.Req) (ast.Cons, error) {
	switch r := r.(type) {
	case *ast.TypeReq:
		return nil, unimplemented("normalization of type requirement " + ast.String(r))
	case *ast.SyntacticReq:
		return ctx.Normalize(r.Expr)
	case *ast.ExpressionReq:
		return ctx.Normalize(r.Expr)
	case *ast.BasicReq:
		return ctx.interner.Expression(r.Expr, r.Type), nil
	case *ast.ConversionReq:
		return ctx.interner.Conversion(r.Expr, r.Type), nil
	case nil:
		return nil, unreachable("normalization of a missing requirement")
	}
	return nil, unhandled("requirement", r)
}
