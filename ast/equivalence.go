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

// Equivalent returns true if a and b denote the same syntactic entity.
//
// Equivalence is structural, with two exceptions: declarations compare by identity, and
// template parameters compare by position. Source locations never participate.
func Equivalent(a, b Term) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch a := a.(type) {
	case Type:
		b, ok := b.(Type)
		return ok && EquivalentTypes(a, b)
	case Expr:
		b, ok := b.(Expr)
		return ok && EquivalentExprs(a, b)
	case Decl:
		b, ok := b.(Decl)
		return ok && EquivalentDecls(a, b)
	case Def:
		b, ok := b.(Def)
		return ok && equivalentDefs(a, b)
	case Req:
		b, ok := b.(Req)
		return ok && equivalentReqs(a, b)
	case Cons:
		b, ok := b.(Cons)
		return ok && EquivalentCons(a, b)
	}
	panic("unknown term type: " + a.TermName())
}

// EquivalentTerms compares two term lists element-wise.
func EquivalentTerms(a, b []Term) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equivalent(a[i], b[i]) {
			return false
		}
	}
	return true
}

func EquivalentTypes(a, b Type) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch a := a.(type) {
	case *VoidType:
		_, ok := b.(*VoidType)
		return ok
	case *BoolType:
		_, ok := b.(*BoolType)
		return ok
	case *IntType:
		_, ok := b.(*IntType)
		return ok
	case *ClassType:
		b, ok := b.(*ClassType)
		return ok && a.Decl == b.Decl
	case *TypenameType:
		b, ok := b.(*TypenameType)
		return ok && EquivalentDecls(a.Decl, b.Decl)
	case *ReferenceType:
		b, ok := b.(*ReferenceType)
		return ok && EquivalentTypes(a.Type, b.Type)
	case *FunctionType:
		b, ok := b.(*FunctionType)
		if !ok || len(a.Params) != len(b.Params) || !EquivalentTypes(a.Return, b.Return) {
			return false
		}
		for i := range a.Params {
			if !EquivalentTypes(a.Params[i], b.Params[i]) {
				return false
			}
		}
		return true
	}
	panic("unknown type: " + a.TypeName())
}

func EquivalentExprs(a, b Expr) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch a := a.(type) {
	case *BoolLit:
		b, ok := b.(*BoolLit)
		return ok && a.Value == b.Value
	case *IntLit:
		b, ok := b.(*IntLit)
		return ok && a.Value == b.Value
	case *DeclRef:
		b, ok := b.(*DeclRef)
		return ok && EquivalentDecls(a.Decl, b.Decl)
	case *Unary:
		b, ok := b.(*Unary)
		return ok && a.Op == b.Op && EquivalentExprs(a.Operand, b.Operand)
	case *Binary:
		b, ok := b.(*Binary)
		return ok && a.Op == b.Op && EquivalentExprs(a.Left, b.Left) && EquivalentExprs(a.Right, b.Right)
	case *And:
		b, ok := b.(*And)
		return ok && EquivalentExprs(a.Left, b.Left) && EquivalentExprs(a.Right, b.Right)
	case *Or:
		b, ok := b.(*Or)
		return ok && EquivalentExprs(a.Left, b.Left) && EquivalentExprs(a.Right, b.Right)
	case *Call:
		b, ok := b.(*Call)
		if !ok || len(a.Args) != len(b.Args) || !EquivalentExprs(a.Func, b.Func) {
			return false
		}
		for i := range a.Args {
			if !EquivalentExprs(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true
	case *Conv:
		b, ok := b.(*Conv)
		return ok && EquivalentTypes(a.Target, b.Target) && EquivalentExprs(a.Expr, b.Expr)
	case *Check:
		b, ok := b.(*Check)
		return ok && a.Concept == b.Concept && EquivalentTerms(a.Args, b.Args)
	case *Requires:
		b, ok := b.(*Requires)
		if !ok || !equivalentVars(a.Params, b.Params) || len(a.Reqs) != len(b.Reqs) {
			return false
		}
		for i := range a.Reqs {
			if !equivalentReqs(a.Reqs[i], b.Reqs[i]) {
				return false
			}
		}
		return true
	}
	panic("unknown expression type: " + a.ExprName())
}

// EquivalentDecls compares declarations by identity. Template parameters compare by kind and position.
func EquivalentDecls(a, b Decl) bool {
	if a == b {
		return true
	}
	switch a := a.(type) {
	case *TypeParm:
		b, ok := b.(*TypeParm)
		return ok && a != nil && b != nil && a.Index == b.Index
	case *ValueParm:
		b, ok := b.(*ValueParm)
		return ok && a != nil && b != nil && a.Index == b.Index
	}
	return false
}

// Variable lists compare element-wise by identity; bound variables are not renamed.
func equivalentVars(a, b []*VariableDecl) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equivalentDefs(a, b Def) bool {
	switch a := a.(type) {
	case *ExprDef:
		b, ok := b.(*ExprDef)
		return ok && EquivalentExprs(a.Expr, b.Expr)
	case *DeletedDef:
		_, ok := b.(*DeletedDef)
		return ok
	case *DefaultedDef:
		_, ok := b.(*DefaultedDef)
		return ok
	}
	panic("unknown definition type: " + a.DefName())
}

func equivalentReqs(a, b Req) bool {
	switch a := a.(type) {
	case *TypeReq:
		b, ok := b.(*TypeReq)
		return ok && EquivalentTypes(a.Type, b.Type)
	case *SyntacticReq:
		b, ok := b.(*SyntacticReq)
		return ok && EquivalentExprs(a.Expr, b.Expr)
	case *BasicReq:
		b, ok := b.(*BasicReq)
		return ok && EquivalentExprs(a.Expr, b.Expr) && EquivalentTypes(a.Type, b.Type)
	case *ConversionReq:
		b, ok := b.(*ConversionReq)
		return ok && EquivalentExprs(a.Expr, b.Expr) && EquivalentTypes(a.Type, b.Type)
	case *ExpressionReq:
		b, ok := b.(*ExpressionReq)
		return ok && EquivalentExprs(a.Expr, b.Expr)
	}
	panic("unknown requirement type: " + a.ReqName())
}

// EquivalentCons returns true if a and b denote the same proposition: the same kind of
// constraint, structurally equal operands and the same referenced declarations.
func EquivalentCons(a, b Cons) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch a := a.(type) {
	case *ConceptCons:
		b, ok := b.(*ConceptCons)
		return ok && a.Decl == b.Decl && EquivalentTerms(a.Args, b.Args)
	case *PredicateCons:
		b, ok := b.(*PredicateCons)
		return ok && EquivalentExprs(a.Expr, b.Expr)
	case *ExpressionCons:
		b, ok := b.(*ExpressionCons)
		return ok && EquivalentExprs(a.Expr, b.Expr) && EquivalentTypes(a.Type, b.Type)
	case *ConversionCons:
		b, ok := b.(*ConversionCons)
		return ok && EquivalentExprs(a.Expr, b.Expr) && EquivalentTypes(a.Type, b.Type)
	case *ParameterizedCons:
		b, ok := b.(*ParameterizedCons)
		return ok && equivalentVars(a.Vars, b.Vars) && EquivalentCons(a.Cons, b.Cons)
	case *ConjunctionCons:
		b, ok := b.(*ConjunctionCons)
		return ok && EquivalentCons(a.Left, b.Left) && EquivalentCons(a.Right, b.Right)
	case *DisjunctionCons:
		b, ok := b.(*DisjunctionCons)
		return ok && EquivalentCons(a.Left, b.Left) && EquivalentCons(a.Right, b.Right)
	}
	panic("unknown constraint type: " + a.ConsName())
}
