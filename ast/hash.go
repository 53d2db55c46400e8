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

// Hashes are consistent with Equivalent: equivalent terms always hash equally.

const (
	hashOffset = 14695981039346656037
	hashPrime  = 1099511628211
)

func mix(h, x uint64) uint64 { return (h ^ x) * hashPrime }

func hashString(h uint64, s string) uint64 {
	for i := 0; i < len(s); i++ {
		h = mix(h, uint64(s[i]))
	}
	return h
}

// Hash returns a structural hash of t.
func Hash(t Term) uint64 { return hashTerm(hashOffset, t) }

func hashTerm(h uint64, t Term) uint64 {
	switch t := t.(type) {
	case nil:
		return mix(h, 0)
	case Type:
		return hashType(h, t)
	case Expr:
		return hashExpr(h, t)
	case Decl:
		return hashDecl(h, t)
	case Def:
		return hashDef(h, t)
	case Req:
		return hashReq(h, t)
	case Cons:
		return hashCons(h, t)
	}
	panic("unknown term type: " + t.TermName())
}

func hashTerms(h uint64, ts []Term) uint64 {
	h = mix(h, uint64(len(ts)))
	for _, t := range ts {
		h = hashTerm(h, t)
	}
	return h
}

func hashType(h uint64, t Type) uint64 {
	if t == nil {
		return mix(h, 0)
	}
	h = hashString(h, t.TypeName())
	switch t := t.(type) {
	case *VoidType, *BoolType, *IntType:
		return h
	case *ClassType:
		return hashDecl(h, t.Decl)
	case *TypenameType:
		return hashDecl(h, t.Decl)
	case *ReferenceType:
		return hashType(h, t.Type)
	case *FunctionType:
		h = mix(h, uint64(len(t.Params)))
		for _, p := range t.Params {
			h = hashType(h, p)
		}
		return hashType(h, t.Return)
	}
	panic("unknown type: " + t.TypeName())
}

func hashExpr(h uint64, e Expr) uint64 {
	if e == nil {
		return mix(h, 0)
	}
	h = hashString(h, e.ExprName())
	switch e := e.(type) {
	case *BoolLit:
		if e.Value {
			return mix(h, 1)
		}
		return mix(h, 2)
	case *IntLit:
		return mix(h, uint64(e.Value))
	case *DeclRef:
		return hashDecl(h, e.Decl)
	case *Unary:
		return hashExpr(mix(h, uint64(e.Op)), e.Operand)
	case *Binary:
		return hashExpr(hashExpr(mix(h, uint64(e.Op)), e.Left), e.Right)
	case *And:
		return hashExpr(hashExpr(h, e.Left), e.Right)
	case *Or:
		return hashExpr(hashExpr(h, e.Left), e.Right)
	case *Call:
		h = hashExpr(h, e.Func)
		h = mix(h, uint64(len(e.Args)))
		for _, arg := range e.Args {
			h = hashExpr(h, arg)
		}
		return h
	case *Conv:
		return hashType(hashExpr(h, e.Expr), e.Target)
	case *Check:
		return hashTerms(hashDecl(h, e.Concept), e.Args)
	case *Requires:
		h = hashVars(h, e.Params)
		h = mix(h, uint64(len(e.Reqs)))
		for _, r := range e.Reqs {
			h = hashReq(h, r)
		}
		return h
	}
	panic("unknown expression type: " + e.ExprName())
}

// Declarations compare by identity, so any stable property of the declaration will do;
// template parameters compare by position, so only their position is hashed.
func hashDecl(h uint64, d Decl) uint64 {
	switch d := d.(type) {
	case nil:
		return mix(h, 0)
	case *TypeParm:
		return mix(mix(hashString(h, "TypeParm"), uint64(d.Index.Depth)), uint64(d.Index.Offset))
	case *ValueParm:
		return mix(mix(hashString(h, "ValueParm"), uint64(d.Index.Depth)), uint64(d.Index.Offset))
	}
	return hashString(hashString(h, d.DeclName()), d.Ident())
}

func hashVars(h uint64, vs []*VariableDecl) uint64 {
	h = mix(h, uint64(len(vs)))
	for _, v := range vs {
		h = hashDecl(h, v)
	}
	return h
}

func hashDef(h uint64, d Def) uint64 {
	h = hashString(h, d.DefName())
	if d, ok := d.(*ExprDef); ok {
		return hashExpr(h, d.Expr)
	}
	return h
}

func hashReq(h uint64, r Req) uint64 {
	h = hashString(h, r.ReqName())
	switch r := r.(type) {
	case *TypeReq:
		return hashType(h, r.Type)
	case *SyntacticReq:
		return hashExpr(h, r.Expr)
	case *BasicReq:
		return hashType(hashExpr(h, r.Expr), r.Type)
	case *ConversionReq:
		return hashType(hashExpr(h, r.Expr), r.Type)
	case *ExpressionReq:
		return hashExpr(h, r.Expr)
	}
	panic("unknown requirement type: " + r.ReqName())
}

func hashCons(h uint64, c Cons) uint64 {
	if c == nil {
		return mix(h, 0)
	}
	h = hashString(h, c.ConsName())
	switch c := c.(type) {
	case *ConceptCons:
		return hashTerms(hashDecl(h, c.Decl), c.Args)
	case *PredicateCons:
		return hashExpr(h, c.Expr)
	case *ExpressionCons:
		return hashType(hashExpr(h, c.Expr), c.Type)
	case *ConversionCons:
		return hashType(hashExpr(h, c.Expr), c.Type)
	case *ParameterizedCons:
		return hashCons(hashVars(h, c.Vars), c.Cons)
	case *ConjunctionCons:
		return hashCons(hashCons(h, c.Left), c.Right)
	case *DisjunctionCons:
		return hashCons(hashCons(h, c.Left), c.Right)
	}
	panic("unknown constraint type: " + c.ConsName())
}
