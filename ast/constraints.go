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

package ast

// Cons is the base for all constraints: the canonical form of propositions about template
// arguments, over which satisfaction and subsumption operate.
type Cons interface {
	Term
	ConsName() string
	// ID returns the interned id of the constraint, or 0 if the constraint was not interned.
	// Ids are unique within the interner which assigned them.
	ID() uint32
	internedBy() *Interner
}

var (
	_ Cons = (*ConceptCons)(nil)
	_ Cons = (*PredicateCons)(nil)
	_ Cons = (*ExpressionCons)(nil)
	_ Cons = (*ConversionCons)(nil)
	_ Cons = (*ParameterizedCons)(nil)
	_ Cons = (*ConjunctionCons)(nil)
	_ Cons = (*DisjunctionCons)(nil)

	_ BinaryCons = (*ConjunctionCons)(nil)
	_ BinaryCons = (*DisjunctionCons)(nil)
)

// interned is embedded in every constraint; it is set once, by an Interner.
type interned struct {
	id    uint32
	owner *Interner
}

func (c *interned) ID() uint32            { return c.id }
func (c *interned) internedBy() *Interner { return c.owner }

// Unexpanded check of a concept against arguments: `C<T>`
type ConceptCons struct {
	interned
	Decl *ConceptDecl
	Args []Term
}

// Evaluable boolean expression: `N > 0`
type PredicateCons struct {
	interned
	Expr Expr
}

// Expression e is valid and has type t: `e : t`
type ExpressionCons struct {
	interned
	Expr Expr
	Type Type
}

// Expression e is valid and converts to type t: `e -> t`
type ConversionCons struct {
	interned
	Expr Expr
	Type Type
}

// Constraint universally quantified over local variables: `forall (T t). c`
type ParameterizedCons struct {
	interned
	Vars []*VariableDecl
	Cons Cons
}

// BinaryCons is implemented by conjunctions and disjunctions.
type BinaryCons interface {
	Cons
	Operands() (left, right Cons)
}

// Conjunction: `a /\ b`
type ConjunctionCons struct {
	interned
	Left  Cons
	Right Cons
}

// Disjunction: `a \/ b`
type DisjunctionCons struct {
	interned
	Left  Cons
	Right Cons
}

func (c *ConjunctionCons) Operands() (Cons, Cons) { return c.Left, c.Right }
func (c *DisjunctionCons) Operands() (Cons, Cons) { return c.Left, c.Right }

func (c *ConceptCons) ConsName() string       { return "ConceptCons" }
func (c *PredicateCons) ConsName() string     { return "PredicateCons" }
func (c *ExpressionCons) ConsName() string    { return "ExpressionCons" }
func (c *ConversionCons) ConsName() string    { return "ConversionCons" }
func (c *ParameterizedCons) ConsName() string { return "ParameterizedCons" }
func (c *ConjunctionCons) ConsName() string   { return "ConjunctionCons" }
func (c *DisjunctionCons) ConsName() string   { return "DisjunctionCons" }

func (c *ConceptCons) TermName() string       { return c.ConsName() }
func (c *PredicateCons) TermName() string     { return c.ConsName() }
func (c *ExpressionCons) TermName() string    { return c.ConsName() }
func (c *ConversionCons) TermName() string    { return c.ConsName() }
func (c *ParameterizedCons) TermName() string { return c.ConsName() }
func (c *ConjunctionCons) TermName() string   { return c.ConsName() }
func (c *DisjunctionCons) TermName() string   { return c.ConsName() }

// IsAtomic returns true if c cannot be decomposed by the proof rules: predicates, expression
// constraints and conversion constraints. Concept checks are not atomic; they must be expanded.
func IsAtomic(c Cons) bool {
	switch c.(type) {
	case *ConceptCons, *ParameterizedCons, *ConjunctionCons, *DisjunctionCons:
		return false
	}
	return true
}
