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
	"testing"

	. "github.com/asutton/banjo-sub000/construct"

	"github.com/asutton/banjo-sub000/ast"
)

func TestString(t *testing.T) {
	T := TypeParm("T", 0, 0)
	N := ValueParm("N", ast.Int, 0, 1)
	x := Var("x", TName(T), nil)
	point := Class("Point")
	f := Func("f", Vars(Var("y", ast.Int, nil)), ast.Bool, True())
	c := Concept("C", Parms(T), True())

	for _, test := range []struct {
		term ast.Term
		want string
	}{
		{TRef(TClass(point)), "Point&"},
		{TFunc([]ast.Type{ast.Int, TName(T)}, ast.Void), "(int, T) -> void"},
		{Add(Mul(Ref(N), Int(2)), Neg(Int(1))), "(N * 2) + -1"},
		{And(Lt(Ref(N), Int(10)), Or(False(), Not(Ref(N)))), "(N < 10) && (false || !N)"},
		{Call(Ref(f), Int(1)), "f(1)"},
		{Conv(Ref(N), ast.Bool), "bool(N)"},
		{Check(c, TName(T)), "C<T>"},
		{Requires(Vars(x), SyntacticReq(Ref(x)), BasicReq(Ref(x), ast.Int), ConversionReq(Ref(x), ast.Bool), TypeReq(TName(T))),
			"requires (T x) { x; x : int; x -> bool; typename T; }"},
		{ExpressionReq(Check(c, ast.Int)), "requires C<int>;"},
	} {
		if got := ast.String(test.term); got != test.want {
			t.Fatalf("expected %q, found %q", test.want, got)
		}
	}
}

func TestConsString(t *testing.T) {
	in := ast.NewInterner()
	x := Var("x", ast.Int, nil)
	p := in.Predicate(Lt(Ref(x), Int(3)))
	e := in.Expression(Ref(x), ast.Int)
	q := in.Parameterized(Vars(x), in.Conjunction(e, in.Conversion(Ref(x), ast.Bool)))

	if got := ast.ConsString(in.Disjunction(in.Conjunction(p, e), q)); got != `((x < 3) /\ (x : int)) \/ (forall (int x). (x : int) /\ (x -> bool))` {
		t.Fatalf("unexpected string: %s", got)
	}
}
