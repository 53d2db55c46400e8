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

// WalkExpr calls f for e and each expression reachable from it, in pre-order.
func WalkExpr(e Expr, f func(Expr)) {
	WalkTerm(e, func(t Term) {
		if e, ok := t.(Expr); ok {
			f(e)
		}
	})
}

// WalkTerm calls f for t and each term reachable from it, in pre-order. References to declarations
// are not followed into the referenced declaration.
func WalkTerm(t Term, f func(Term)) {
	switch t := t.(type) {
	case nil:

	case *VoidType, *BoolType, *IntType, *ClassType, *TypenameType:
		f(t)

	case *ReferenceType:
		f(t)
		WalkTerm(t.Type, f)

	case *FunctionType:
		f(t)
		for _, p := range t.Params {
			WalkTerm(p, f)
		}
		WalkTerm(t.Return, f)

	case *BoolLit, *IntLit, *DeclRef:
		f(t)

	case *Unary:
		f(t)
		WalkTerm(t.Operand, f)

	case *Binary:
		f(t)
		WalkTerm(t.Left, f)
		WalkTerm(t.Right, f)

	case *And:
		f(t)
		WalkTerm(t.Left, f)
		WalkTerm(t.Right, f)

	case *Or:
		f(t)
		WalkTerm(t.Left, f)
		WalkTerm(t.Right, f)

	case *Call:
		f(t)
		WalkTerm(t.Func, f)
		for _, arg := range t.Args {
			WalkTerm(arg, f)
		}

	case *Conv:
		f(t)
		WalkTerm(t.Expr, f)
		WalkTerm(t.Target, f)

	case *Check:
		f(t)
		for _, arg := range t.Args {
			WalkTerm(arg, f)
		}

	case *Requires:
		f(t)
		for _, p := range t.Params {
			WalkTerm(p, f)
		}
		for _, r := range t.Reqs {
			WalkTerm(r, f)
		}

	case *VariableDecl:
		f(t)
		WalkTerm(t.Type, f)
		if t.Init != nil {
			WalkTerm(t.Init, f)
		}

	case *TypeParm:
		f(t)

	case *ValueParm:
		f(t)
		WalkTerm(t.Type, f)

	case *FunctionDecl, *ClassDecl, *TemplateDecl, *ConceptDecl:
		f(t)

	case *ExprDef:
		f(t)
		WalkTerm(t.Expr, f)

	case *DeletedDef, *DefaultedDef:
		f(t)

	case *TypeReq:
		f(t)
		WalkTerm(t.Type, f)

	case *SyntacticReq:
		f(t)
		WalkTerm(t.Expr, f)

	case *BasicReq:
		f(t)
		WalkTerm(t.Expr, f)
		WalkTerm(t.Type, f)

	case *ConversionReq:
		f(t)
		WalkTerm(t.Expr, f)
		WalkTerm(t.Type, f)

	case *ExpressionReq:
		f(t)
		WalkTerm(t.Expr, f)

	case *ConceptCons:
		f(t)
		for _, arg := range t.Args {
			WalkTerm(arg, f)
		}

	case *PredicateCons:
		f(t)
		WalkTerm(t.Expr, f)

	case *ExpressionCons:
		f(t)
		WalkTerm(t.Expr, f)
		WalkTerm(t.Type, f)

	case *ConversionCons:
		f(t)
		WalkTerm(t.Expr, f)
		WalkTerm(t.Type, f)

	case *ParameterizedCons:
		f(t)
		for _, v := range t.Vars {
			WalkTerm(v, f)
		}
		WalkTerm(t.Cons, f)

	case *ConjunctionCons:
		f(t)
		WalkTerm(t.Left, f)
		WalkTerm(t.Right, f)

	case *DisjunctionCons:
		f(t)
		WalkTerm(t.Left, f)
		WalkTerm(t.Right, f)

	default:
		panic("unknown term type: " + t.TermName())
	}
}
