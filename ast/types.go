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

// Type is the base for all types.
type Type interface {
	Term
	TypeName() string
}

var (
	_ Type = (*VoidType)(nil)
	_ Type = (*BoolType)(nil)
	_ Type = (*IntType)(nil)
	_ Type = (*ClassType)(nil)
	_ Type = (*TypenameType)(nil)
	_ Type = (*ReferenceType)(nil)
	_ Type = (*FunctionType)(nil)
)

// `void`
type VoidType struct{}

// `bool`
type BoolType struct{}

// `int`
type IntType struct{}

// User-defined class type: `C`
type ClassType struct {
	Decl *ClassDecl
}

// Reference to a template type parameter: `T`
type TypenameType struct {
	Decl *TypeParm
}

// Reference type: `T&`
type ReferenceType struct {
	Type Type
}

// Function type: `(int, bool) -> int`
type FunctionType struct {
	Params []Type
	Return Type
}

func (t *VoidType) TypeName() string      { return "VoidType" }
func (t *BoolType) TypeName() string      { return "BoolType" }
func (t *IntType) TypeName() string       { return "IntType" }
func (t *ClassType) TypeName() string     { return "ClassType" }
func (t *TypenameType) TypeName() string  { return "TypenameType" }
func (t *ReferenceType) TypeName() string { return "ReferenceType" }
func (t *FunctionType) TypeName() string  { return "FunctionType" }

func (t *VoidType) TermName() string      { return t.TypeName() }
func (t *BoolType) TermName() string      { return t.TypeName() }
func (t *IntType) TermName() string       { return t.TypeName() }
func (t *ClassType) TermName() string     { return t.TypeName() }
func (t *TypenameType) TermName() string  { return t.TypeName() }
func (t *ReferenceType) TermName() string { return t.TypeName() }
func (t *FunctionType) TermName() string  { return t.TypeName() }

// Shared instances of the fundamental types.
var (
	Void = &VoidType{}
	Bool = &BoolType{}
	Int  = &IntType{}
)
