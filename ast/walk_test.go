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

func TestWalkTerm(t *testing.T) {
	T := TypeParm("T", 0, 0)
	x := Var("x", TName(T), nil)
	y := Var("y", ast.Int, Add(Int(1), Int(2)))
	c := Concept("C", Parms(T), True())
	e := And(Check(c, TName(T)), Requires(Vars(x), BasicReq(Ref(x), ast.Int)), Lt(Ref(y), Int(4)))

	var names []string
	ast.WalkTerm(e, func(t ast.Term) { names = append(names, t.TermName()) })
	want := []string{
		"And", "And", "Check", "TypenameType",
		"Requires", "VariableDecl", "TypenameType", "BasicReq", "DeclRef", "IntType",
		"Binary", "DeclRef", "IntLit",
	}
	if len(names) != len(want) {
		t.Fatalf("expected %v, found %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, found %v", want, names)
		}
	}

	// Declarations reached through references are not visited.
	var exprs int
	ast.WalkExpr(Lt(Ref(y), Int(4)), func(ast.Expr) { exprs++ })
	if exprs != 3 {
		t.Fatalf("expected 3 expressions, found %d", exprs)
	}
}
