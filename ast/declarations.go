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

// Decl is the base for all declarations.
//
// Declarations are identified by object identity, except for template parameters,
// which are identified by their position within the enclosing template parameter lists.
type Decl interface {
	Term
	DeclName() string
	// Name of the declared entity.
	Ident() string
	// Source location of the declaration, if any.
	Loc() Location
}

var (
	_ Decl = (*VariableDecl)(nil)
	_ Decl = (*FunctionDecl)(nil)
	_ Decl = (*ClassDecl)(nil)
	_ Decl = (*TemplateDecl)(nil)
	_ Decl = (*ConceptDecl)(nil)
	_ Decl = (*TypeParm)(nil)
	_ Decl = (*ValueParm)(nil)
)

// ParmIndex locates a template parameter: Depth counts enclosing template parameter lists,
// Offset is the position within the innermost list.
type ParmIndex struct {
	Depth  int
	Offset int
}

// Template parameter (type or value).
type Parm interface {
	Decl
	Position() ParmIndex
}

// Variable: `int x = e`
//
// Variables also declare function parameters and the local parameters of requires-expressions.
type VariableDecl struct {
	Name     string
	Type     Type
	Init     Expr // optional
	Location Location
}

// Function: `int f(int x) = e` or `template<typename T> requires C<T> void f(T)`
type FunctionDecl struct {
	Name       string
	Params     []*VariableDecl
	Return     Type
	Def        Def
	Constraint Expr // optional
	Location   Location
}

// Class: `class C`
type ClassDecl struct {
	Name     string
	Location Location
}

// Template: `template<typename T> requires C<T> decl`
type TemplateDecl struct {
	Params     []Parm
	Constraint Expr // optional
	Decl       Decl
	Location   Location
}

// Concept: `concept C<typename T> = e`
type ConceptDecl struct {
	Name     string
	Params   []Parm
	Def      Def
	Location Location
}

// Template type parameter: `typename T`
type TypeParm struct {
	Name     string
	Index    ParmIndex
	Location Location
}

// Template value parameter: `int N`
type ValueParm struct {
	Name     string
	Index    ParmIndex
	Type     Type
	Location Location
}

func (d *VariableDecl) DeclName() string { return "VariableDecl" }
func (d *FunctionDecl) DeclName() string { return "FunctionDecl" }
func (d *ClassDecl) DeclName() string    { return "ClassDecl" }
func (d *TemplateDecl) DeclName() string { return "TemplateDecl" }
func (d *ConceptDecl) DeclName() string  { return "ConceptDecl" }
func (d *TypeParm) DeclName() string     { return "TypeParm" }
func (d *ValueParm) DeclName() string    { return "ValueParm" }

func (d *VariableDecl) TermName() string { return d.DeclName() }
func (d *FunctionDecl) TermName() string { return d.DeclName() }
func (d *ClassDecl) TermName() string    { return d.DeclName() }
func (d *TemplateDecl) TermName() string { return d.DeclName() }
func (d *ConceptDecl) TermName() string  { return d.DeclName() }
func (d *TypeParm) TermName() string     { return d.DeclName() }
func (d *ValueParm) TermName() string    { return d.DeclName() }

func (d *VariableDecl) Ident() string { return d.Name }
func (d *FunctionDecl) Ident() string { return d.Name }
func (d *ClassDecl) Ident() string    { return d.Name }
func (d *ConceptDecl) Ident() string  { return d.Name }
func (d *TypeParm) Ident() string     { return d.Name }
func (d *ValueParm) Ident() string    { return d.Name }

// The name of a template is the name of its parameterized declaration.
func (d *TemplateDecl) Ident() string {
	if d.Decl == nil {
		return ""
	}
	return d.Decl.Ident()
}

func (d *VariableDecl) Loc() Location { return d.Location }
func (d *FunctionDecl) Loc() Location { return d.Location }
func (d *ClassDecl) Loc() Location    { return d.Location }
func (d *TemplateDecl) Loc() Location { return d.Location }
func (d *ConceptDecl) Loc() Location  { return d.Location }
func (d *TypeParm) Loc() Location     { return d.Location }
func (d *ValueParm) Loc() Location    { return d.Location }

func (d *TypeParm) Position() ParmIndex  { return d.Index }
func (d *ValueParm) Position() ParmIndex { return d.Index }

// Def is the base for all definitions.
type Def interface {
	Term
	DefName() string
}

var (
	_ Def = (*ExprDef)(nil)
	_ Def = (*DeletedDef)(nil)
	_ Def = (*DefaultedDef)(nil)
)

// Expression definition: `= e`
type ExprDef struct {
	Expr Expr
}

// Deleted definition: `= delete`
type DeletedDef struct{}

// Defaulted definition: `= default`
type DefaultedDef struct{}

func (d *ExprDef) DefName() string      { return "ExprDef" }
func (d *DeletedDef) DefName() string   { return "DeletedDef" }
func (d *DefaultedDef) DefName() string { return "DefaultedDef" }

func (d *ExprDef) TermName() string      { return d.DefName() }
func (d *DeletedDef) TermName() string   { return d.DefName() }
func (d *DefaultedDef) TermName() string { return d.DefName() }
