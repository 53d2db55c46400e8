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

package eval

import (
	"strconv"
)

// Kind of a compile-time value.
type Kind int

const (
	Invalid Kind = iota
	BoolKind
	IntKind
)

// Value is the result of evaluating a constant expression.
type Value struct {
	kind Kind
	bits int64
}

func Bool(b bool) Value {
	if b {
		return Value{BoolKind, 1}
	}
	return Value{BoolKind, 0}
}

func Int(i int64) Value { return Value{IntKind, i} }

func (v Value) Kind() Kind { return v.kind }

// AsBool returns the boolean value of v, if v is a boolean.
func (v Value) AsBool() (b, ok bool) { return v.bits != 0, v.kind == BoolKind }

// AsInt returns the integer value of v, if v is an integer.
func (v Value) AsInt() (int64, bool) { return v.bits, v.kind == IntKind }

func (v Value) String() string {
	switch v.kind {
	case BoolKind:
		return strconv.FormatBool(v.bits != 0)
	case IntKind:
		return strconv.FormatInt(v.bits, 10)
	}
	return "<invalid>"
}
