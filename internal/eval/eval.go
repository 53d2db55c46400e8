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

// Package eval reduces constant expressions to compile-time values.
package eval

import (
	"github.com/asutton/banjo-sub000/ast"
)

// Error is returned when an expression cannot be reduced to a constant.
type Error struct {
	Expr ast.Expr
	Msg  string
}

func (e *Error) Error() string {
	if e.Expr == nil {
		return "evaluation failed: " + e.Msg
	}
	return "evaluation of " + ast.String(e.Expr) + " failed: " + e.Msg
}

func fail(e ast.Expr, msg string) error { return &Error{Expr: e, Msg: msg} }

// MaxCallDepth bounds nested calls during evaluation.
const MaxCallDepth = 256

// Evaluator reduces side-effect free expressions to values.
//
// An Evaluator cannot be used concurrently.
type Evaluator struct {
	// Check decides concept checks appearing within expressions. Without it, concept checks fail to evaluate.
	Check func(*ast.Check) (bool, error)

	frames []map[*ast.VariableDecl]Value
	// Variables whose initializers are being evaluated.
	unfolding map[*ast.VariableDecl]bool
}

// Evaluate e to a constant value.
func (ev *Evaluator) Evaluate(e ast.Expr) (Value, error) {
	ev.frames = ev.frames[:0]
	clear(ev.unfolding)
	return ev.eval(e)
}

// EvaluateBool evaluates e, which must produce a boolean.
func (ev *Evaluator) EvaluateBool(e ast.Expr) (bool, error) {
	v, err := ev.Evaluate(e)
	if err != nil {
		return false, err
	}
	b, ok := v.AsBool()
	if !ok {
		return false, fail(e, "not a boolean expression")
	}
	return b, nil
}

func (ev *Evaluator) evalBool(e ast.Expr) (bool, error) {
	v, err := ev.eval(e)
	if err != nil {
		return false, err
	}
	b, ok := v.AsBool()
	if !ok {
		return false, fail(e, "expected a boolean operand")
	}
	return b, nil
}

func (ev *Evaluator) evalInt(e ast.Expr) (int64, error) {
	v, err := ev.eval(e)
	if err != nil {
		return 0, err
	}
	i, ok := v.AsInt()
	if !ok {
		return 0, fail(e, "expected an integer operand")
	}
	return i, nil
}

func (ev *Evaluator) lookup(d *ast.VariableDecl) (Value, bool) {
	if len(ev.frames) == 0 {
		return Value{}, false
	}
	v, ok := ev.frames[len(ev.frames)-1][d]
	return v, ok
}

func (ev *Evaluator) unfold(e *ast.DeclRef, d *ast.VariableDecl) (Value, error) {
	if ev.unfolding[d] {
		return Value{}, fail(e, "variable "+d.Name+" depends on itself")
	}
	if ev.unfolding == nil {
		ev.unfolding = make(map[*ast.VariableDecl]bool)
	}
	ev.unfolding[d] = true
	v, err := ev.eval(d.Init)
	delete(ev.unfolding, d)
	return v, err
}

func (ev *Evaluator) eval(e ast.Expr) (Value, error) {
	switch e := e.(type) {
	case nil:
		return Value{}, fail(nil, "missing expression")

	case *ast.BoolLit:
		return Bool(e.Value), nil

	case *ast.IntLit:
		return Int(e.Value), nil

	case *ast.DeclRef:
		switch d := e.Decl.(type) {
		case *ast.VariableDecl:
			if v, ok := ev.lookup(d); ok {
				return v, nil
			}
			if d.Init == nil {
				return Value{}, fail(e, "variable "+d.Name+" has no constant value")
			}
			return ev.unfold(e, d)
		case *ast.TypeParm, *ast.ValueParm:
			return Value{}, fail(e, "template parameter "+d.Ident()+" is not a constant")
		}
		return Value{}, fail(e, "not a constant: "+e.Decl.Ident())

	case *ast.Unary:
		switch e.Op {
		case ast.OpNot:
			b, err := ev.evalBool(e.Operand)
			return Bool(!b), err
		case ast.OpNeg:
			i, err := ev.evalInt(e.Operand)
			return Int(-i), err
		}
		return Value{}, fail(e, "unknown unary operator")

	case *ast.Binary:
		if e.Op == ast.OpEq || e.Op == ast.OpNe {
			return ev.evalEquality(e)
		}
		l, err := ev.evalInt(e.Left)
		if err != nil {
			return Value{}, err
		}
		r, err := ev.evalInt(e.Right)
		if err != nil {
			return Value{}, err
		}
		switch e.Op {
		case ast.OpAdd:
			return Int(l + r), nil
		case ast.OpSub:
			return Int(l - r), nil
		case ast.OpMul:
			return Int(l * r), nil
		case ast.OpDiv, ast.OpRem:
			if r == 0 {
				return Value{}, fail(e, "division by zero")
			}
			if e.Op == ast.OpDiv {
				return Int(l / r), nil
			}
			return Int(l % r), nil
		case ast.OpLt:
			return Bool(l < r), nil
		case ast.OpGt:
			return Bool(l > r), nil
		case ast.OpLe:
			return Bool(l <= r), nil
		case ast.OpGe:
			return Bool(l >= r), nil
		}
		return Value{}, fail(e, "unknown binary operator")

	case *ast.And:
		l, err := ev.evalBool(e.Left)
		if err != nil || !l {
			return Bool(false), err
		}
		r, err := ev.evalBool(e.Right)
		return Bool(r), err

	case *ast.Or:
		l, err := ev.evalBool(e.Left)
		if err != nil || l {
			return Bool(l), err
		}
		r, err := ev.evalBool(e.Right)
		return Bool(r), err

	case *ast.Conv:
		v, err := ev.eval(e.Expr)
		if err != nil {
			return Value{}, err
		}
		switch e.Target.(type) {
		case *ast.BoolType:
			return Bool(v.bits != 0), nil
		case *ast.IntType:
			return Int(v.bits), nil
		}
		return Value{}, fail(e, "conversion to "+ast.String(e.Target)+" is not a constant expression")

	case *ast.Call:
		return ev.evalCall(e)

	case *ast.Check:
		if ev.Check == nil {
			return Value{}, fail(e, "concept checks cannot be evaluated in this context")
		}
		b, err := ev.Check(e)
		return Bool(b), err

	case *ast.Requires:
		return Value{}, fail(e, "requires-expressions are not constant expressions")
	}
	panic("unknown expression type: " + e.ExprName())
}

func (ev *Evaluator) evalEquality(e *ast.Binary) (Value, error) {
	l, err := ev.eval(e.Left)
	if err != nil {
		return Value{}, err
	}
	r, err := ev.eval(e.Right)
	if err != nil {
		return Value{}, err
	}
	if l.kind != r.kind {
		return Value{}, fail(e, "operands have different types")
	}
	if e.Op == ast.OpEq {
		return Bool(l == r), nil
	}
	return Bool(l != r), nil
}

func (ev *Evaluator) evalCall(e *ast.Call) (Value, error) {
	ref, ok := e.Func.(*ast.DeclRef)
	if !ok {
		return Value{}, fail(e, "callee is not a function")
	}
	fn, ok := ref.Decl.(*ast.FunctionDecl)
	if !ok {
		return Value{}, fail(e, ref.Decl.Ident()+" is not a function")
	}
	def, ok := fn.Def.(*ast.ExprDef)
	if !ok {
		return Value{}, fail(e, "function "+fn.Name+" has no constant definition")
	}
	if len(fn.Params) != len(e.Args) {
		return Value{}, fail(e, "wrong number of arguments")
	}
	if len(ev.frames) >= MaxCallDepth {
		return Value{}, fail(e, "call depth exceeded")
	}
	frame := make(map[*ast.VariableDecl]Value, len(fn.Params))
	for i, p := range fn.Params {
		v, err := ev.eval(e.Args[i])
		if err != nil {
			return Value{}, err
		}
		frame[p] = v
	}
	ev.frames = append(ev.frames, frame)
	v, err := ev.eval(def.Expr)
	ev.frames = ev.frames[:len(ev.frames)-1]
	return v, err
}
