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
	"sort"

	"github.com/asutton/banjo-sub000/ast"
	"github.com/asutton/banjo-sub000/internal/astutil"
	"github.com/asutton/banjo-sub000/internal/util"
)

// CheckConcepts validates concept definitions. Every concept must be defined by an expression,
// and no concept may check itself, directly or through other concepts. Concepts checked by the
// given concepts are validated as well.
//
// A recursive definition is reported as a *RecursiveConceptError naming the concepts of the
// first cycle found.
func CheckConcepts(concepts ...*ast.ConceptDecl) error {
	index := make(map[*ast.ConceptDecl]int, len(concepts))
	var decls []*ast.ConceptDecl
	var deps [][]*ast.ConceptDecl
	visit := func(c *ast.ConceptDecl) {
		if _, ok := index[c]; !ok {
			index[c] = len(decls)
			decls = append(decls, c)
		}
	}
	for _, c := range concepts {
		visit(c)
	}
	for i := 0; i < len(decls); i++ {
		c := decls[i]
		def, ok := c.Def.(*ast.ExprDef)
		if !ok {
			return unimplemented("concept " + c.Name + " without an expression definition")
		}
		uses := astutil.Concepts(def.Expr)
		for _, d := range uses {
			visit(d)
		}
		deps = append(deps, uses)
	}

	g := util.NewGraph(len(decls))
	for i, uses := range deps {
		for _, d := range uses {
			g.AddEdge(i, index[d])
		}
	}
	cycles := g.Cycles()
	if len(cycles) == 0 {
		return nil
	}
	cycle := cycles[0]
	sort.Ints(cycle)
	err := &RecursiveConceptError{Concepts: make([]*ast.ConceptDecl, len(cycle))}
	for i, v := range cycle {
		err.Concepts[i] = decls[v]
	}
	return err
}
