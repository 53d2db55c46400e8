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
	"github.com/asutton/banjo-sub000/internal/sat"
)

// Subsumes returns true if a subsumes c: whenever a is satisfied, so is c.
//
// a and c may be dependent. Equivalent constraints and pairs already proved by this context
// subsume without search. Otherwise a proof of {a} |- {c} is searched for; a *LimitError means the
// search gave up, which is not a refutation.
func (ctx *Context) Subsumes(a, c ast.Cons) (bool, error) {
	if a == nil || c == nil {
		return false, unreachable("subsumption of a missing constraint")
	}
	if ast.EquivalentCons(a, c) || ctx.memoized(a, c) {
		return true, nil
	}
	ok, err := newProof(ctx, a, c).Run()
	if err != nil {
		return false, err
	}
	if ctx.limits.Verify && len(ctx.rules) == 0 {
		if err := ctx.verify(a, c, ok); err != nil {
			return false, err
		}
	}
	if ok {
		ctx.memoize(a, c)
	}
	return ok, nil
}

// SubsumesExpr normalizes a and c and decides whether a subsumes c.
func (ctx *Context) SubsumesExpr(a, c ast.Expr) (bool, error) {
	ac, err := ctx.Normalize(a)
	if err != nil {
		return false, err
	}
	cc, err := ctx.Normalize(c)
	if err != nil {
		return false, err
	}
	return ctx.Subsumes(ac, cc)
}

// verify decides a |- c with a SAT solver and compares the result with the proof search verdict.
func (ctx *Context) verify(a, c ast.Cons, proved bool) error {
	entailed, err := sat.Entails(a, c, ctx.Expand)
	if err != nil {
		return err
	}
	if entailed != proved {
		return unreachable("proof search disagrees with propositional entailment for " +
			ast.ConsString(a) + " |- " + ast.ConsString(c))
	}
	return nil
}
