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
	"github.com/asutton/banjo-sub000/internal/subst"
)

// Expand substitutes the arguments of a concept check into the concept's definition and
// normalizes the result.
//
// Expansions are memoized per interned concept check, so repeated expansion of the same check
// yields the same constraint (including the same local variables of requires-expressions). Checks
// interned by another interner are expanded afresh on every call.
func (ctx *Context) Expand(c *ast.ConceptCons) (ast.Cons, error) {
	switch {
	case c.ID() == 0:
		c = ctx.interner.Intern(c).(*ast.ConceptCons)
	case !ctx.interner.Owns(c):
		return ctx.expand(c)
	}
	ctx.expandMu.Lock()
	defer ctx.expandMu.Unlock()
	if x, ok := ctx.expansions[c.ID()]; ok {
		return x, nil
	}
	x, err := ctx.expand(c)
	if err != nil {
		return nil, err
	}
	ctx.expansions[c.ID()] = x
	return x, nil
}

func (ctx *Context) expand(c *ast.ConceptCons) (ast.Cons, error) {
	decl := c.Decl
	s, err := subst.New(decl.Params, c.Args)
	if err != nil {
		return nil, err
	}
	switch def := decl.Def.(type) {
	case *ast.ExprDef:
		return ctx.Normalize(s.Expr(def.Expr))
	case nil:
		return nil, unimplemented("expansion of concept " + decl.Name + " without a definition")
	default:
		return nil, unimplemented("expansion of concept " + decl.Name + " with definition " + def.DefName())
	}
}
