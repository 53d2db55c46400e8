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
	"bytes"
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/asutton/banjo-sub000"
	. "github.com/asutton/banjo-sub000/construct"

	"github.com/asutton/banjo-sub000/ast"
)

// template<int N> requires constraint void name()
func valueTemplate(name string, constraint func(n ast.Expr) ast.Expr) *ast.TemplateDecl {
	N := ValueParm("N", ast.Int, 0, 0)
	var c ast.Expr
	if constraint != nil {
		c = constraint(Ref(N))
	}
	return Template(Parms(N), c, Func(name, nil, ast.Void, nil))
}

func TestMoreConstrained(t *testing.T) {
	ctx := NewContext()
	bounded := valueTemplate("f", func(n ast.Expr) ast.Expr { return And(Lt(n, Int(10)), Gt(n, Int(0))) })
	small := valueTemplate("f", func(n ast.Expr) ast.Expr { return Lt(n, Int(10)) })
	smallToo := valueTemplate("f", func(n ast.Expr) ast.Expr { return Lt(n, Int(10)) })
	huge := valueTemplate("f", func(n ast.Expr) ast.Expr { return Gt(n, Int(1000)) })
	unconstrained := valueTemplate("f", nil)

	for _, test := range []struct {
		a, b *ast.TemplateDecl
		want Ordering
	}{
		{bounded, small, Greater},
		{small, bounded, Less},
		{small, smallToo, Equal},
		{small, huge, Unordered},
		{unconstrained, small, Less},
		{small, unconstrained, Greater},
		{unconstrained, unconstrained, Equal},
	} {
		got, err := ctx.MoreConstrained(test.a, test.b)
		require.NoError(t, err)
		require.Equal(t, test.want, got, "%s vs %s", ast.String(test.a.Constraint), ast.String(test.b.Constraint))
	}
}

func TestMostConstrained(t *testing.T) {
	ctx := NewContext()
	bounded := valueTemplate("f", func(n ast.Expr) ast.Expr { return And(Lt(n, Int(10)), Gt(n, Int(0))) })
	small := valueTemplate("f", func(n ast.Expr) ast.Expr { return Lt(n, Int(10)) })
	huge := valueTemplate("f", func(n ast.Expr) ast.Expr { return Gt(n, Int(1000)) })
	unconstrained := valueTemplate("f", nil)

	best, err := ctx.MostConstrained(context.Background(), []*ast.TemplateDecl{small, unconstrained, bounded})
	require.NoError(t, err)
	require.Equal(t, []*ast.TemplateDecl{bounded}, best)

	best, err = ctx.MostConstrained(context.Background(), []*ast.TemplateDecl{huge, small, unconstrained, bounded})
	require.NoError(t, err)
	require.Equal(t, []*ast.TemplateDecl{huge, bounded}, best)

	best, err = ctx.MostConstrained(context.Background(), []*ast.TemplateDecl{unconstrained})
	require.NoError(t, err)
	require.Equal(t, []*ast.TemplateDecl{unconstrained}, best)
}

func TestMostConstrainedTraced(t *testing.T) {
	var buf bytes.Buffer
	ctx := NewContext(WithTracer(NewLoggingTracer(&buf)))
	var candidates []*ast.TemplateDecl
	for i := int64(1); i <= 6; i++ {
		bound := Int(i * 10)
		candidates = append(candidates, valueTemplate("f", func(n ast.Expr) ast.Expr {
			return And(Lt(n, bound), Gt(n, Int(0)))
		}))
	}
	_, err := ctx.MostConstrained(context.Background(), candidates)
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "--- refuted")
	line := regexp.MustCompile(`^(--- [a-z]+ \(iteration \d+(, goal \d+)?\)|\d+: .+)$`)
	for _, l := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		require.Regexp(t, line, l)
	}
}

func TestMostConstrainedCanceled(t *testing.T) {
	ctx := NewContext()
	small := valueTemplate("f", func(n ast.Expr) ast.Expr { return Lt(n, Int(10)) })
	huge := valueTemplate("f", func(n ast.Expr) ast.Expr { return Gt(n, Int(1000)) })
	unconstrained := valueTemplate("f", nil)

	goctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ctx.MostConstrained(goctx, []*ast.TemplateDecl{small, huge, unconstrained})
	require.True(t, errors.Is(err, context.Canceled))
}

func TestMostConstrainedLimit(t *testing.T) {
	ctx := NewContext(WithLimits(Limits{MaxGoals: 32, MaxIterations: 1024, MaxExpansions: 8}))
	loop := Concept("Loop", nil, nil)
	loop.Def = &ast.ExprDef{Expr: And(Check(loop), True())}
	looping := valueTemplate("f", func(ast.Expr) ast.Expr { return Check(loop) })
	small := valueTemplate("f", func(n ast.Expr) ast.Expr { return Lt(n, Int(10)) })

	_, err := ctx.MostConstrained(context.Background(), []*ast.TemplateDecl{looping, small})
	require.True(t, IsLimit(err))
}

func TestCheckRedeclaration(t *testing.T) {
	ctx := NewContext()
	bounded := valueTemplate("f", func(n ast.Expr) ast.Expr { return And(Gt(n, Int(0)), Lt(n, Int(10))) })
	small := valueTemplate("f", func(n ast.Expr) ast.Expr { return Lt(n, Int(10)) })
	unconstrained := valueTemplate("f", nil)

	require.NoError(t, ctx.CheckRedeclaration(small, bounded))
	require.NoError(t, ctx.CheckRedeclaration(small, small))
	require.NoError(t, ctx.CheckRedeclaration(unconstrained, small))
	require.NoError(t, ctx.CheckRedeclaration(unconstrained, unconstrained))

	err := ctx.CheckRedeclaration(bounded, small)
	var re *RedeclarationError
	require.True(t, errors.As(err, &re))
	require.Same(t, bounded, re.Prev)
	require.Equal(t, "redeclaration of f does not subsume the constraints of the original declaration", err.Error())

	require.Error(t, ctx.CheckRedeclaration(small, unconstrained))
}
