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

// Expr is the base for all expressions.
type Expr interface {
	Term
	// Name of the syntax-type of the expression.
	ExprName() string
}

var (
	_ Expr = (*BoolLit)(nil)
	_ Expr = (*IntLit)(nil)
	_ Expr = (*DeclRef)(nil)
	_ Expr = (*Unary)(nil)
	_ Expr = (*Binary)(nil)
	_ Expr = (*And)(nil)
	_ Expr = (*Or)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*Conv)(nil)
	_ Expr = (*Check)(nil)
	_ Expr = (*Requires)(nil)
)

// Operator of a unary expression.
type UnaryOp int

const (
	OpNot UnaryOp = iota // `!e`
	OpNeg                // `-e`
)

// Operator of a (non-logical) binary expression.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpRem
	OpEq
	OpNe
	OpLt
	OpGt
	OpLe
	OpGe
)

var unaryOpNames = [...]string{OpNot: "!", OpNeg: "-"}

var binaryOpNames = [...]string{
	OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/", OpRem: "%",
	OpEq: "==", OpNe: "!=", OpLt: "<", OpGt: ">", OpLe: "<=", OpGe: ">=",
}

func (op UnaryOp) String() string  { return unaryOpNames[op] }
func (op BinaryOp) String() string { return binaryOpNames[op] }

// IsComparison returns true for operators which produce a boolean from two operands.
func (op BinaryOp) IsComparison() bool { return op >= OpEq }

// Boolean literal: `true`
type BoolLit struct {
	Value bool
}

// Integer literal: `42`
type IntLit struct {
	Value int64
}

// Reference to a declared variable, function or value parameter: `x`
type DeclRef struct {
	Decl Decl
}

// Unary expression: `!e`, `-e`
type Unary struct {
	Op      UnaryOp
	Operand Expr
}

// Binary expression: `a + b`, `a == b`
type Binary struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

// Logical conjunction: `a && b`
type And struct {
	Left  Expr
	Right Expr
}

// Logical disjunction: `a || b`
type Or struct {
	Left  Expr
	Right Expr
}

// Application: `f(x, y)`
type Call struct {
	Func Expr
	Args []Expr
}

// Conversion: `T(e)`
type Conv struct {
	Expr   Expr
	Target Type
}

// Concept check: `C<T, U>`
//
// Args may contain types or expressions.
type Check struct {
	Concept *ConceptDecl
	Args    []Term
}

// Requires-expression: `requires (T t) { t + t; }`
//
// The parameters are local to the expression; they are never template parameters.
type Requires struct {
	Params []*VariableDecl
	Reqs   []Req
}

func (e *BoolLit) ExprName() string  { return "BoolLit" }
func (e *IntLit) ExprName() string   { return "IntLit" }
func (e *DeclRef) ExprName() string  { return "DeclRef" }
func (e *Unary) ExprName() string    { return "Unary" }
func (e *Binary) ExprName() string   { return "Binary" }
func (e *And) ExprName() string      { return "And" }
func (e *Or) ExprName() string       { return "Or" }
func (e *Call) ExprName() string     { return "Call" }
func (e *Conv) ExprName() string     { return "Conv" }
func (e *Check) ExprName() string    { return "Check" }
func (e *Requires) ExprName() string { return "Requires" }

func (e *BoolLit) TermName() string  { return e.ExprName() }
func (e *IntLit) TermName() string   { return e.ExprName() }
func (e *DeclRef) TermName() string  { return e.ExprName() }
func (e *Unary) TermName() string    { return e.ExprName() }
func (e *Binary) TermName() string   { return e.ExprName() }
func (e *And) TermName() string      { return e.ExprName() }
func (e *Or) TermName() string       { return e.ExprName() }
func (e *Call) TermName() string     { return e.ExprName() }
func (e *Conv) TermName() string     { return e.ExprName() }
func (e *Check) TermName() string    { return e.ExprName() }
func (e *Requires) TermName() string { return e.ExprName() }
