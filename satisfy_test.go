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
	"github.com/asutton/banjo-sub000/internal/eval"
)

func satisfied(t *testing.T, ctx *Context, e ast.Expr) bool {
	t.Helper()
	ok, err := ctx.IsSatisfiedExpr(e)
	require.NoError(t, err, ast.String(e))
	return ok
}

func TestSatisfiedPredicates(t *testing.T) {
	ctx := NewContext()
	require.True(t, satisfied(t, ctx, Eq(Int(1), Int(1))))
	require.False(t, satisfied(t, ctx, Eq(Int(1), Int(2))))
	require.True(t, satisfied(t, ctx, And(Lt(Int(1), Int(2)), Not(False()))))
	require.True(t, satisfied(t, ctx, Or(False(), Gt(Mul(Int(3), Int(4)), Int(11)))))

	limit := Var("limit", ast.Int, Int(16))
	require.True(t, satisfied(t, ctx, Lt(Add(Ref(limit), Int(1)), Int(20))))
}

func smallConcept() *ast.ConceptDecl {
	N := ValueParm("N", ast.Int, 0, 0)
	return Concept("Small", Parms(N), Lt(Ref(N), Int(10)))
}

func TestSatisfiedConcept(t *testing.T) {
	ctx := NewContext()
	small := smallConcept()
	require.True(t, satisfied(t, ctx, Check(small, Int(3))))
	require.False(t, satisfied(t, ctx, Check(small, Int(12))))
	require.True(t, satisfied(t, ctx, Not(Check(small, Int(12)))))
	require.True(t, satisfied(t, ctx, Or(Check(small, Int(12)), Check(small, Sub(Int(12), Int(5))))))

	// Checking a concept agrees with checking its substituted definition.
	for _, n := range []int64{-1, 0, 9, 10, 11} {
		c := ctx.Interner().Concept(small, []ast.Term{Int(n)})
		viaConcept, err := ctx.IsSatisfied(c)
		require.NoError(t, err)
		require.Equal(t, satisfied(t, ctx, Lt(Int(n), Int(10))), viaConcept)
	}
}

func TestSatisfiedShortCircuit(t *testing.T) {
	ctx := NewContext()
	failing := Eq(Div(Int(1), Int(0)), Int(0))

	require.False(t, satisfied(t, ctx, And(False(), failing)))
	require.True(t, satisfied(t, ctx, Or(True(), failing)))

	_, err := ctx.IsSatisfiedExpr(And(True(), failing))
	var ee *eval.Error
	require.True(t, errors.As(err, &ee))
	require.Equal(t, "division by zero", ee.Msg)
}

func TestSatisfiedSelfReferentialVariable(t *testing.T) {
	ctx := NewContext()
	x := Var("x", ast.Int, nil)
	x.Init = Add(Ref(x), Int(1))

	_, err := ctx.IsSatisfiedExpr(Lt(Ref(x), Int(2)))
	var ee *eval.Error
	require.True(t, errors.As(err, &ee), "%v", err)
	require.Equal(t, "variable x depends on itself", ee.Msg)
}

func TestSatisfiedDependent(t *testing.T) {
	ctx := NewContext()
	M := ValueParm("M", ast.Int, 0, 0)
	_, err := ctx.IsSatisfiedExpr(Check(smallConcept(), Ref(M)))
	var de *DependentError
	require.True(t, errors.As(err, &de))
	require.Equal(t, "cannot decide satisfaction of dependent constraint Small<M>", err.Error())
}

func TestSatisfiedUnhandled(t *testing.T) {
	ctx := NewContext()
	_, err := ctx.IsSatisfied(ctx.Interner().Expression(Int(1), ast.Int))
	var ie *InternalError
	require.True(t, errors.As(err, &ie))
	require.Equal(t, Unhandled, ie.Kind)

	x := Var("x", ast.Int, nil)
	_, err = ctx.IsSatisfiedExpr(Requires(Vars(x), SyntacticReq(Ref(x))))
	require.True(t, errors.As(err, &ie))
	require.Equal(t, Unhandled, ie.Kind)
}

func TestSatisfiedRecursiveConcept(t *testing.T) {
	ctx := NewContext(WithLimits(Limits{MaxGoals: 32, MaxIterations: 1024, MaxExpansions: 16}))
	loop := Concept("Loop", nil, nil)
	loop.Def = &ast.ExprDef{Expr: Or(Check(loop), False())}

	_, err := ctx.IsSatisfiedExpr(Check(loop))
	require.True(t, IsLimit(err))
}
