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

package banjo_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/asutton/banjo-sub000"
	. "github.com/asutton/banjo-sub000/construct"

	"github.com/asutton/banjo-sub000/ast"
)

func TestNormalizeConnectives(t *testing.T) {
	ctx := NewContext()
	vs := props("p", "q", "r")
	p, q, r := Ref(vs[0]), Ref(vs[1]), Ref(vs[2])

	c, err := ctx.Normalize(And(p, Or(q, r)))
	require.NoError(t, err)
	require.Equal(t, `p /\ (q \/ r)`, ast.ConsString(c))

	in := ctx.Interner()
	want := in.Conjunction(in.Predicate(p), in.Disjunction(in.Predicate(q), in.Predicate(r)))
	require.Same(t, want, c)

	c, err = ctx.Normalize(Or(And(p, q), Not(r)))
	require.NoError(t, err)
	require.Equal(t, `(p /\ q) \/ !r`, ast.ConsString(c))
}

func TestNormalizeInterns(t *testing.T) {
	ctx := NewContext()
	vs := props("p", "q")
	e := And(Ref(vs[0]), Or(Ref(vs[1]), Ref(vs[0])))

	first, err := ctx.Normalize(e)
	require.NoError(t, err)
	n := ctx.Interner().Len()
	require.Equal(t, 4, n)

	second, err := ctx.Normalize(And(Ref(vs[0]), Or(Ref(vs[1]), Ref(vs[0]))))
	require.NoError(t, err)
	require.Same(t, first, second)
	require.Equal(t, n, ctx.Interner().Len())
	require.NotZero(t, first.ID())
}

func TestNormalizeConceptCheck(t *testing.T) {
	ctx := NewContext()
	T := TypeParm("T", 0, 0)
	x := Var("x", TName(T), nil)
	regular := Concept("Regular", Parms(T), Requires(Vars(x), SyntacticReq(Eq(Ref(x), Ref(x)))))

	U := TypeParm("U", 0, 0)
	c, err := ctx.Normalize(Check(regular, TName(U)))
	require.NoError(t, err)
	cc, ok := c.(*ast.ConceptCons)
	require.True(t, ok)
	require.Same(t, regular, cc.Decl)
	require.Equal(t, "Regular<U>", ast.ConsString(c))
}

func TestNormalizeRequiresExpression(t *testing.T) {
	ctx := NewContext()
	T := TypeParm("T", 0, 0)
	x := Var("t", TName(T), nil)

	c, err := ctx.Normalize(Requires(Vars(x), SyntacticReq(Add(Ref(x), Ref(x)))))
	require.NoError(t, err)
	pc, ok := c.(*ast.ParameterizedCons)
	require.True(t, ok)
	require.Equal(t, []*ast.VariableDecl{x}, pc.Vars)
	require.IsType(t, &ast.PredicateCons{}, pc.Cons)
	require.Equal(t, "forall (T t). t + t", ast.ConsString(c))
}

func TestNormalizeRequirements(t *testing.T) {
	ctx := NewContext()
	T := TypeParm("T", 0, 0)
	x := Var("x", TName(T), nil)
	vs := props("p")

	c, err := ctx.NormalizeRequirements([]ast.Req{
		SyntacticReq(Neg(Ref(x))),
		BasicReq(Ref(x), TName(T)),
		ConversionReq(Ref(x), ast.Int),
		ExpressionReq(Ref(vs[0])),
	})
	require.NoError(t, err)
	require.Equal(t, `((-x /\ (x : T)) /\ (x -> int)) /\ p`, ast.ConsString(c))

	// Left fold: ((a /\ b) /\ c) /\ d
	d := c.(*ast.ConjunctionCons)
	require.IsType(t, &ast.PredicateCons{}, d.Right)
	abc := d.Left.(*ast.ConjunctionCons)
	require.IsType(t, &ast.ConversionCons{}, abc.Right)
	ab := abc.Left.(*ast.ConjunctionCons)
	require.IsType(t, &ast.PredicateCons{}, ab.Left)
	require.IsType(t, &ast.ExpressionCons{}, ab.Right)
}

func TestNormalizeRequirementErrors(t *testing.T) {
	ctx := NewContext()
	_, err := ctx.NormalizeRequirements(nil)
	require.True(t, errors.Is(err, ErrEmptyRequirements))

	_, err = ctx.Normalize(Requires(nil))
	require.True(t, errors.Is(err, ErrEmptyRequirements))

	T := TypeParm("T", 0, 0)
	_, err = ctx.NormalizeRequirements([]ast.Req{TypeReq(TName(T))})
	var ie *InternalError
	require.True(t, errors.As(err, &ie))
	require.Equal(t, Unimplemented, ie.Kind)

	_, err = ctx.Normalize(nil)
	require.True(t, errors.As(err, &ie))
	require.Equal(t, Unreachable, ie.Kind)
}
