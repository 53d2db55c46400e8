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

package banjo

import (
	"errors"
	"strconv"

	"github.com/asutton/banjo-sub000/ast"
)

// InternalErrorKind classifies programming errors.
type InternalErrorKind int

const (
	// A node kind the operation was not written to handle.
	Unhandled InternalErrorKind = iota
	// A state the algorithm cannot reach with well-formed input.
	Unreachable
	// A feature of the language which is not implemented.
	Unimplemented
)

var internalErrorKindNames = [...]string{Unhandled: "unhandled case", Unreachable: "unreachable", Unimplemented: "unimplemented"}

func (k InternalErrorKind) String() string { return internalErrorKindNames[k] }

// InternalError indicates an incomplete implementation or a malformed term; it is never caused by
// the meaning of a well-formed program.
type InternalError struct {
	Kind InternalErrorKind
	What string
}

func (e *InternalError) Error() string { return "internal error: " + e.Kind.String() + ": " + e.What }

func unhandled(what string, t ast.Term) error {
	return &InternalError{Kind: Unhandled, What: what + " " + t.TermName()}
}

func unreachable(what string) error { return &InternalError{Kind: Unreachable, What: what} }

func unimplemented(what string) error { return &InternalError{Kind: Unimplemented, What: what} }

// LimitError is returned when proof search exceeds a configured bound. It means the engine gave up,
// not that subsumption was refuted.
type LimitError struct {
	Limit string
	Max   int
}

func (e *LimitError) Error() string {
	return "constraints too complex to order: exceeded " + e.Limit + " limit of " + strconv.Itoa(e.Max)
}

// IsLimit returns true if err reports an exceeded implementation limit.
func IsLimit(err error) bool {
	var le *LimitError
	return errors.As(err, &le)
}

// DependentError is returned when satisfaction is asked of a constraint which mentions template parameters.
type DependentError struct {
	Cons ast.Cons
}

func (e *DependentError) Error() string {
	return "cannot decide satisfaction of dependent constraint " + ast.ConsString(e.Cons)
}

// RecursiveConceptError reports concepts whose definitions check themselves.
type RecursiveConceptError struct {
	Concepts []*ast.ConceptDecl
}

func (e *RecursiveConceptError) Error() string {
	s := "recursive concept definition:"
	for i, c := range e.Concepts {
		if i > 0 {
			s += ","
		}
		s += " " + c.Name
	}
	return s
}

// RedeclarationError is returned when a redeclared template is less constrained than the original.
type RedeclarationError struct {
	Prev, Next *ast.TemplateDecl
}

func (e *RedeclarationError) Error() string {
	return "redeclaration of " + e.Next.Ident() + " does not subsume the constraints of the original declaration"
}

// ErrEmptyRequirements is returned when normalizing an empty requirement list.
var ErrEmptyRequirements = errors.New("requirement list is empty")
