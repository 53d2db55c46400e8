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

// Package subst replaces template parameters with template arguments.
package subst

import (
	"errors"
	"fmt"

	"github.com/asutton/banjo-sub000/ast"
)

// Subst maps template parameters (by position) to arguments. Type parameters map to types and
// value parameters map to expressions.
//
// Substitution never mutates its input: sub-terms which mention no mapped parameter are shared,
// all others are rebuilt. Local variables of requires-expressions are copied, so each substituted
// requires-expression declares fresh variables.
type Subst struct {
	args   map[ast.ParmIndex]ast.Term
	locals map[*ast.VariableDecl]*ast.VariableDecl
}

// Build a substitution binding each parameter to the argument at the same position.
func New(params []ast.Parm, args []ast.Term) (*Subst, error) {
	if len(params) != len(args) {
		return nil, fmt.Errorf("wrong number of template arguments: expected %d, got %d", len(params), len(args))
	}
	s := &Subst{
		args:   make(map[ast.ParmIndex]ast.Term, len(params)),
		locals: make(map[*ast.VariableDecl]*ast.VariableDecl),
	}
	for i, p := range params {
		switch p.(type) {
		case *ast.TypeParm:
			if _, ok := args[i].(ast.Type); !ok {
				return nil, errors.New("template argument for " + p.Ident() + " is not a type")
			}
		case *ast.ValueParm:
			if _, ok := args[i].(ast.Expr); !ok {
				return nil, errors.New("template argument for " + p.Ident() + " is not an expression")
			}
		}
		s.args[p.Position()] = args[i]
	}
	return s, nil
}

// Len returns the number of mapped parameters.
func (s *Subst) Len() int { return len(s.args) }

// Lookup returns the argument mapped to the parameter at index.
func (s *Subst) Lookup(index ast.ParmIndex) (ast.Term, bool) {
	t, ok := s.args[index]
	return t, ok
}

// Term substitutes through any type, expression or requirement.
func (s *Subst) Term(t ast.Term) ast.Term {
	switch t := t.(type) {
	case nil:
		return nil
	case ast.Type:
		return s.Type(t)
	case ast.Expr:
		return s.Expr(t)
	case ast.Req:
		return s.Req(t)
	}
	panic("unexpected term in substitution: " + t.TermName())
}

func (s *Subst) terms(ts []ast.Term) ([]ast.Term, bool) {
	var out []ast.Term
	for i, t := range ts {
		next := s.Term(t)
		if next != t && out == nil {
			out = make([]ast.Term, len(ts))
			copy(out, ts[:i])
		}
		if out != nil {
			out[i] = next
		}
	}
	if out == nil {
		return ts, false
	}
	return out, true
}

func (s *Subst) Type(t ast.Type) ast.Type {
	switch t := t.(type) {
	case nil:
		return nil

	case *ast.VoidType, *ast.BoolType, *ast.IntType, *ast.ClassType:
		return t

	case *ast.TypenameType:
		if arg, ok := s.args[t.Decl.Index]; ok {
			return arg.(ast.Type)
		}
		return t

	case *ast.ReferenceType:
		if elem := s.Type(t.Type); elem != t.Type {
			return &ast.ReferenceType{Type: elem}
		}
		return t

	case *ast.FunctionType:
		changed := false
		params := make([]ast.Type, len(t.Params))
		for i, p := range t.Params {
			params[i] = s.Type(p)
			changed = changed || params[i] != p
		}
		ret := s.Type(t.Return)
		if !changed && ret == t.Return {
			return t
		}
		return &ast.FunctionType{Params: params, Return: ret}
	}
	panic("unknown type: " + t.TypeName())
}

func (s *Subst) Expr(e ast.Expr) ast.Expr {
	switch e := e.(type) {
	case nil:
		return nil

	case *ast.BoolLit, *ast.IntLit:
		return e

	case *ast.DeclRef:
		switch d := e.Decl.(type) {
		case *ast.ValueParm:
			if arg, ok := s.args[d.Index]; ok {
				return arg.(ast.Expr)
			}
		case *ast.VariableDecl:
			if local, ok := s.locals[d]; ok {
				return &ast.DeclRef{Decl: local}
			}
		}
		return e

	case *ast.Unary:
		if operand := s.Expr(e.Operand); operand != e.Operand {
			return &ast.Unary{Op: e.Op, Operand: operand}
		}
		return e

	case *ast.Binary:
		l, r := s.Expr(e.Left), s.Expr(e.Right)
		if l == e.Left && r == e.Right {
			return e
		}
		return &ast.Binary{Op: e.Op, Left: l, Right: r}

	case *ast.And:
		l, r := s.Expr(e.Left), s.Expr(e.Right)
		if l == e.Left && r == e.Right {
			return e
		}
		return &ast.And{Left: l, Right: r}

	case *ast.Or:
		l, r := s.Expr(e.Left), s.Expr(e.Right)
		if l == e.Left && r == e.Right {
			return e
		}
		return &ast.Or{Left: l, Right: r}

	case *ast.Call:
		f := s.Expr(e.Func)
		changed := f != e.Func
		args := make([]ast.Expr, len(e.Args))
		for i, arg := range e.Args {
			args[i] = s.Expr(arg)
			changed = changed || args[i] != arg
		}
		if !changed {
			return e
		}
		return &ast.Call{Func: f, Args: args}

	case *ast.Conv:
		x, t := s.Expr(e.Expr), s.Type(e.Target)
		if x == e.Expr && t == e.Target {
			return e
		}
		return &ast.Conv{Expr: x, Target: t}

	case *ast.Check:
		if args, changed := s.terms(e.Args); changed {
			return &ast.Check{Concept: e.Concept, Args: args}
		}
		return e

	case *ast.Requires:
		// Local variables are always copied, so references within the requirements are rebound.
		params := make([]*ast.VariableDecl, len(e.Params))
		for i, p := range e.Params {
			params[i] = &ast.VariableDecl{Name: p.Name, Type: s.Type(p.Type), Init: s.Expr(p.Init), Location: p.Location}
			s.locals[p] = params[i]
		}
		reqs := make([]ast.Req, len(e.Reqs))
		for i, r := range e.Reqs {
			reqs[i] = s.Req(r)
		}
		for _, p := range e.Params {
			delete(s.locals, p)
		}
		return &ast.Requires{Params: params, Reqs: reqs}
	}
	panic("unknown expression type: " + e.ExprName())
}

func (s *Subst) Req(r ast.Req) ast.Req {
	switch r := r.(type) {
	case *ast.TypeReq:
		return &ast.TypeReq{Type: s.Type(r.Type)}
	case *ast.SyntacticReq:
		return &ast.SyntacticReq{Expr: s.Expr(r.Expr)}
	case *ast.BasicReq:
		return &ast.BasicReq{Expr: s.Expr(r.Expr), Type: s.Type(r.Type)}
	case *ast.ConversionReq:
		return &ast.ConversionReq{Expr: s.Expr(r.Expr), Type: s.Type(r.Type)}
	case *ast.ExpressionReq:
		return &ast.ExpressionReq{Expr: s.Expr(r.Expr)}
	}
	panic("unknown requirement type: " + r.ReqName())
}
