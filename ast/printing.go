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

import (
	"strconv"
	"strings"
)

// String returns a compact, single-line representation of t, intended for debugging and tests.
func String(t Term) string {
	var sb strings.Builder
	termString(&sb, false, t)
	return sb.String()
}

// ConsString returns a string representation of a constraint.
func ConsString(c Cons) string { return String(c) }

func termsString(sb *strings.Builder, ts []Term) {
	for i, t := range ts {
		if i > 0 {
			sb.WriteString(", ")
		}
		termString(sb, false, t)
	}
}

func varsString(sb *strings.Builder, vs []*VariableDecl) {
	sb.WriteByte('(')
	for i, v := range vs {
		if i > 0 {
			sb.WriteString(", ")
		}
		termString(sb, false, v.Type)
		sb.WriteByte(' ')
		sb.WriteString(v.Name)
	}
	sb.WriteByte(')')
}

// simple is set for operands of infix operators, which are parenthesized when compound.
func termString(sb *strings.Builder, simple bool, t Term) {
	switch t := t.(type) {
	case nil:
		sb.WriteString("<nil>")

	case *VoidType:
		sb.WriteString("void")

	case *BoolType:
		sb.WriteString("bool")

	case *IntType:
		sb.WriteString("int")

	case *ClassType:
		sb.WriteString(t.Decl.Name)

	case *TypenameType:
		sb.WriteString(t.Decl.Name)

	case *ReferenceType:
		termString(sb, true, t.Type)
		sb.WriteByte('&')

	case *FunctionType:
		sb.WriteByte('(')
		for i, p := range t.Params {
			if i > 0 {
				sb.WriteString(", ")
			}
			termString(sb, false, p)
		}
		sb.WriteString(") -> ")
		termString(sb, false, t.Return)

	case *BoolLit:
		sb.WriteString(strconv.FormatBool(t.Value))

	case *IntLit:
		sb.WriteString(strconv.FormatInt(t.Value, 10))

	case *DeclRef:
		sb.WriteString(t.Decl.Ident())

	case *Unary:
		sb.WriteString(t.Op.String())
		termString(sb, true, t.Operand)

	case *Binary:
		infixString(sb, simple, t.Op.String(), t.Left, t.Right)

	case *And:
		infixString(sb, simple, "&&", t.Left, t.Right)

	case *Or:
		infixString(sb, simple, "||", t.Left, t.Right)

	case *Call:
		termString(sb, true, t.Func)
		sb.WriteByte('(')
		for i, arg := range t.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			termString(sb, false, arg)
		}
		sb.WriteByte(')')

	case *Conv:
		termString(sb, true, t.Target)
		sb.WriteByte('(')
		termString(sb, false, t.Expr)
		sb.WriteByte(')')

	case *Check:
		sb.WriteString(t.Concept.Name)
		sb.WriteByte('<')
		termsString(sb, t.Args)
		sb.WriteByte('>')

	case *Requires:
		sb.WriteString("requires ")
		varsString(sb, t.Params)
		sb.WriteString(" {")
		for _, r := range t.Reqs {
			sb.WriteByte(' ')
			termString(sb, false, r)
		}
		sb.WriteString(" }")

	case Decl:
		sb.WriteString(t.Ident())

	case *ExprDef:
		sb.WriteString("= ")
		termString(sb, false, t.Expr)

	case *DeletedDef:
		sb.WriteString("= delete")

	case *DefaultedDef:
		sb.WriteString("= default")

	case *TypeReq:
		sb.WriteString("typename ")
		termString(sb, false, t.Type)
		sb.WriteByte(';')

	case *SyntacticReq:
		termString(sb, false, t.Expr)
		sb.WriteByte(';')

	case *BasicReq:
		termString(sb, false, t.Expr)
		sb.WriteString(" : ")
		termString(sb, false, t.Type)
		sb.WriteByte(';')

	case *ConversionReq:
		termString(sb, false, t.Expr)
		sb.WriteString(" -> ")
		termString(sb, false, t.Type)
		sb.WriteByte(';')

	case *ExpressionReq:
		sb.WriteString("requires ")
		termString(sb, false, t.Expr)
		sb.WriteByte(';')

	case *ConceptCons:
		sb.WriteString(t.Decl.Name)
		sb.WriteByte('<')
		termsString(sb, t.Args)
		sb.WriteByte('>')

	case *PredicateCons:
		termString(sb, simple, t.Expr)

	case *ExpressionCons:
		if simple {
			sb.WriteByte('(')
		}
		termString(sb, true, t.Expr)
		sb.WriteString(" : ")
		termString(sb, false, t.Type)
		if simple {
			sb.WriteByte(')')
		}

	case *ConversionCons:
		if simple {
			sb.WriteByte('(')
		}
		termString(sb, true, t.Expr)
		sb.WriteString(" -> ")
		termString(sb, false, t.Type)
		if simple {
			sb.WriteByte(')')
		}

	case *ParameterizedCons:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("forall ")
		varsString(sb, t.Vars)
		sb.WriteString(". ")
		termString(sb, false, t.Cons)
		if simple {
			sb.WriteByte(')')
		}

	case *ConjunctionCons:
		infixString(sb, simple, "/\\", t.Left, t.Right)

	case *DisjunctionCons:
		infixString(sb, simple, "\\/", t.Left, t.Right)

	default:
		panic("unknown term type: " + t.TermName())
	}
}

func infixString(sb *strings.Builder, simple bool, op string, left, right Term) {
	if simple {
		sb.WriteByte('(')
	}
	termString(sb, true, left)
	sb.WriteByte(' ')
	sb.WriteString(op)
	sb.WriteByte(' ')
	termString(sb, true, right)
	if simple {
		sb.WriteByte(')')
	}
}
