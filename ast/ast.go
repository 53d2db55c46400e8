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

// Package ast contains the term model of the constraint core: types, expressions, declarations,
// definitions, requirements and constraints.
//
// Terms are immutable once built. Constraints built through an Interner are hash-consed: two
// structurally equivalent constraints built by the same Interner are the same object.
package ast

// Term is the base for all syntactic and semantic nodes.
type Term interface {
	// Name of the syntax-type of the term.
	TermName() string
}

var (
	_ Term = Type(nil)
	_ Term = Expr(nil)
	_ Term = Decl(nil)
	_ Term = Def(nil)
	_ Term = Req(nil)
	_ Term = Cons(nil)
)

// Location is a position within a source file. The zero Location is "no location";
// canonical (interned) terms never carry one.
type Location struct {
	File   string
	Line   int
	Column int
}

// IsValid returns true if l refers to a position within a file.
func (l Location) IsValid() bool { return l.Line > 0 }
