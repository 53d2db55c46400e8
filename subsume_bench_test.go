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

package banjo_test

import (
	"testing"

	. "github.com/asutton/banjo-sub000"
	. "github.com/asutton/banjo-sub000/construct"
)

func BenchmarkSubsumesDistribution(b *testing.B) {
	vs := props("p", "q", "r", "s")
	p, q, r, s := Ref(vs[0]), Ref(vs[1]), Ref(vs[2]), Ref(vs[3])
	x := And(p, Or(q, r), Or(r, s))
	y := Or(And(p, q, r), And(p, r), And(p, q, s))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ctx := NewContext()
		ok, err := ctx.SubsumesExpr(x, y)
		if err != nil || !ok {
			b.Fatalf("expected subsumption: %v", err)
		}
	}
}

func BenchmarkSubsumesMemoized(b *testing.B) {
	ctx := NewContext()
	vs := props("p", "q", "r")
	p, q, r := Ref(vs[0]), Ref(vs[1]), Ref(vs[2])
	x, y := And(p, Or(q, r)), Or(And(p, q), And(p, r))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ok, err := ctx.SubsumesExpr(x, y)
		if err != nil || !ok {
			b.Fatalf("expected subsumption: %v", err)
		}
	}
}
