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

// Req is the base for the requirements of a requires-expression.
type Req interface {
	Term
	ReqName() string
}

var (
	_ Req = (*TypeReq)(nil)
	_ Req = (*SyntacticReq)(nil)
	_ Req = (*BasicReq)(nil)
	_ Req = (*ConversionReq)(nil)
	_ Req = (*ExpressionReq)(nil)
)

// Type requirement: `typename T::value_type;`
type TypeReq struct {
	Type Type
}

// Syntactic requirement: `e;`
type SyntacticReq struct {
	Expr Expr
}

// Basic (usage) requirement: `e : t;`
type BasicReq struct {
	Expr Expr
	Type Type
}

// Conversion requirement: `e -> t;`
type ConversionReq struct {
	Expr Expr
	Type Type
}

// Nested expression requirement: `requires e;`
type ExpressionReq struct {
	Expr Expr
}

func (r *TypeReq) ReqName() string       { return "TypeReq" }
func (r *SyntacticReq) ReqName() string  { return "SyntacticReq" }
func (r *BasicReq) ReqName() string      { return "BasicReq" }
func (r *ConversionReq) ReqName() string { return "ConversionReq" }
func (r *ExpressionReq) ReqName() string { return "ExpressionReq" }

func (r *TypeReq) TermName() string       { return r.ReqName() }
func (r *SyntacticReq) TermName() string  { return r.ReqName() }
func (r *BasicReq) TermName() string      { return r.ReqName() }
func (r *ConversionReq) TermName() string { return r.ReqName() }
func (r *ExpressionReq) TermName() string { return r.ReqName() }
