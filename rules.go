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

// Rule is an admissible inference rule for atomic constraints: Derive reports whether the
// antecedent a alone proves the atomic consequent c. Rules must be sound; a rule which derives a
// constraint not entailed by its antecedent makes subsumption unsound.
//
// No rules are registered by default, so atomic constraints are only proved by an equivalent
// antecedent.
type Rule interface {
	Derive(a, c ast.Cons) bool
}

// RuleFunc adapts a function to the Rule interface.
type RuleFunc func(a, c ast.Cons) bool

func (f RuleFunc) Derive(a, c ast.Cons) bool { return f(a, c) }

// derive returns true if some registered rule proves c from an antecedent in ants.
func (ctx *Context) derive(ants PropList, c ast.Cons) bool {
	if len(ctx.rules) == 0 {
		return false
	}
	found := false
	ants.Range(func(_ int, a ast.Cons) bool {
		for _, r := range ctx.rules {
			if r.Derive(a, c) {
				found = true
				return false
			}
		}
		return true
	})
	return found
}
