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

// Package construct provides terse constructors for terms.
package construct

import (
	"github.com/asutton/banjo-sub000/ast"
)

// Types

// Template type parameter `typename name` at the given depth and offset.
func TypeParm(name string, depth, offset int) *ast.TypeParm {
	return &ast.TypeParm{Name: name, Index: ast.ParmIndex{Depth: depth, Offset: offset}}
}

// Template value parameter `t name` at the given depth and offset.
func ValueParm(name string, t ast.Type, depth, offset int) *ast.ValueParm {
	return &ast.ValueParm{Name: name, Type: t, Index: ast.ParmIndex{Depth: depth, Offset: offset}}
}

// Reference to a template type parameter: `T`
func TName(p *ast.TypeParm) *ast.TypenameType { return &ast.TypenameType{Decl: p} }

// Class type: `C`
func TClass(d *ast.ClassDecl) *ast.ClassType { return &ast.ClassType{Decl: d} }

// Reference type: `T&`
func TRef(t ast.Type) *ast.ReferenceType { return &ast.ReferenceType{Type: t} }

// Function type: `(int, int) -> int`
func TFunc(params []ast.Type, ret ast.Type) *ast.FunctionType {
	return &ast.FunctionType{Params: params, Return: ret}
}

// Expressions

func True() *ast.BoolLit          { return &ast.BoolLit{Value: true} }
func False() *ast.BoolLit         { return &ast.BoolLit{Value: false} }
func Int(v int64) *ast.IntLit     { return &ast.IntLit{Value: v} }
func Ref(d ast.Decl) *ast.DeclRef { return &ast.DeclRef{Decl: d} }

func Not(e ast.Expr) *ast.Unary { return &ast.Unary{Op: ast.OpNot, Operand: e} }
func Neg(e ast.Expr) *ast.Unary { return &ast.Unary{Op: ast.OpNeg, Operand: e} }

// Binary expression: `l op r`
func Bin(op ast.BinaryOp, l, r ast.Expr) *ast.Binary { return &ast.Binary{Op: op, Left: l, Right: r} }

func Add(l, r ast.Expr) *ast.Binary { return Bin(ast.OpAdd, l, r) }
func Sub(l, r ast.Expr) *ast.Binary { return Bin(ast.OpSub, l, r) }
func Mul(l, r ast.Expr) *ast.Binary { return Bin(ast.OpMul, l, r) }
func Div(l, r ast.Expr) *ast.Binary { return Bin(ast.OpDiv, l, r) }
func Eq(l, r ast.Expr) *ast.Binary  { return Bin(ast.OpEq, l, r) }
func Ne(l, r ast.Expr) *ast.Binary  { return Bin(ast.OpNe, l, r) }
func Lt(l, r ast.Expr) *ast.Binary  { return Bin(ast.OpLt, l, r) }
func Gt(l, r ast.Expr) *ast.Binary  { return Bin(ast.OpGt, l, r) }

// Left-folded conjunction of one or more expressions: `a && b && c`
func And(first ast.Expr, rest ...ast.Expr) ast.Expr {
	e := first
	for _, r := range rest {
		e = &ast.And{Left: e, Right: r}
	}
	return e
}

// Left-folded disjunction of one or more expressions: `a || b || c`
func Or(first ast.Expr, rest ...ast.Expr) ast.Expr {
	e := first
	for _, r := range rest {
		e = &ast.Or{Left: e, Right: r}
	}
	return e
}

// Application: `f(args...)`
func Call(f ast.Expr, args ...ast.Expr) *ast.Call { return &ast.Call{Func: f, Args: args} }

// Conversion: `T(e)`
func Conv(e ast.Expr, t ast.Type) *ast.Conv { return &ast.Conv{Expr: e, Target: t} }

// Concept check: `C<args...>`
func Check(c *ast.ConceptDecl, args ...ast.Term) *ast.Check { return &ast.Check{Concept: c, Args: args} }

// Requires-expression: `requires (params) { reqs }`
func Requires(params []*ast.VariableDecl, reqs ...ast.Req) *ast.Requires {
	return &ast.Requires{Params: params, Reqs: reqs}
}

// Declarations

// Variable: `t name = init`; init may be nil.
func Var(name string, t ast.Type, init ast.Expr) *ast.VariableDecl {
	return &ast.VariableDecl{Name: name, Type: t, Init: init}
}

// Function with an expression definition: `ret name(params) = body`
func Func(name string, params []*ast.VariableDecl, ret ast.Type, body ast.Expr) *ast.FunctionDecl {
	return &ast.FunctionDecl{Name: name, Params: params, Return: ret, Def: &ast.ExprDef{Expr: body}}
}

// Class: `class name`
func Class(name string) *ast.ClassDecl { return &ast.ClassDecl{Name: name} }

// Concept with an expression definition: `concept name<params> = body`
func Concept(name string, params []ast.Parm, body ast.Expr) *ast.ConceptDecl {
	return &ast.ConceptDecl{Name: name, Params: params, Def: &ast.ExprDef{Expr: body}}
}

// Template: `template<params> requires constraint decl`; constraint may be nil.
func Template(params []ast.Parm, constraint ast.Expr, decl ast.Decl) *ast.TemplateDecl {
	return &ast.TemplateDecl{Params: params, Constraint: constraint, Decl: decl}
}

// Parms collects template parameters into a parameter list.
func Parms(ps ...ast.Parm) []ast.Parm { return ps }

// Vars collects variables into a parameter list.
func Vars(vs ...*ast.VariableDecl) []*ast.VariableDecl { return vs }

// Requirements

func TypeReq(t ast.Type) *ast.TypeReq                         { return &ast.TypeReq{Type: t} }
func SyntacticReq(e ast.Expr) *ast.SyntacticReq               { return &ast.SyntacticReq{Expr: e} }
func BasicReq(e ast.Expr, t ast.Type) *ast.BasicReq           { return &ast.BasicReq{Expr: e, Type: t} }
func ConversionReq(e ast.Expr, t ast.Type) *ast.ConversionReq { return &ast.ConversionReq{Expr: e, Type: t} }
func ExpressionReq(e ast.Expr) *ast.ExpressionReq             { return &ast.ExpressionReq{Expr: e} }
