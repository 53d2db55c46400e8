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

// Package astutil contains analyses over terms.
package astutil

import (
	"sort"

	set "github.com/hashicorp/go-set/v3"

	"github.com/asutton/banjo-sub000/ast"
)

// Params returns the set of template parameters mentioned by t.
func Params(t ast.Term) *set.Set[ast.ParmIndex] {
	found := set.New[ast.ParmIndex](4)
	ast.WalkTerm(t, func(t ast.Term) {
		switch t := t.(type) {
		case *ast.TypenameType:
			found.Insert(t.Decl.Index)
		case *ast.DeclRef:
			if p, ok := t.Decl.(ast.Parm); ok {
				found.Insert(p.Position())
			}
		}
	})
	return found
}

// SortedParams returns the template parameters mentioned by t, ordered by depth then offset.
func SortedParams(t ast.Term) []ast.ParmIndex {
	ps := Params(t).Slice()
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].Depth != ps[j].Depth {
			return ps[i].Depth < ps[j].Depth
		}
		return ps[i].Offset < ps[j].Offset
	})
	return ps
}

// IsDependent returns true if t mentions any template parameter.
func IsDependent(t ast.Term) bool {
	dependent := false
	ast.WalkTerm(t, func(t ast.Term) {
		if dependent {
			return
		}
		switch t := t.(type) {
		case *ast.TypenameType:
			dependent = true
		case *ast.DeclRef:
			_, dependent = t.Decl.(ast.Parm)
		}
	})
	return dependent
}

// Concepts returns the concepts checked within t, in order of first occurrence.
func Concepts(t ast.Term) []*ast.ConceptDecl {
	seen := set.New[*ast.ConceptDecl](4)
	var out []*ast.ConceptDecl
	ast.WalkTerm(t, func(t ast.Term) {
		var c *ast.ConceptDecl
		switch t := t.(type) {
		case *ast.Check:
			c = t.Concept
		case *ast.ConceptCons:
			c = t.Decl
		default:
			return
		}
		if seen.Insert(c) {
			out = append(out, c)
		}
	})
	return out
}
