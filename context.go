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
	"sync"

	set "github.com/hashicorp/go-set/v3"

	"github.com/asutton/banjo-sub000/ast"
	"github.com/asutton/banjo-sub000/internal/astutil"
)

// Context owns the state shared by normalization, satisfaction and subsumption queries: the
// constraint interner, the memo of concept expansions, and the memo of proved subsumptions.
//
// Memos are keyed by interned ids, and only constraints owned by the context's interner are
// memoized; constraints from other interners are decided without the memos. A Context may be used
// concurrently; each query keeps its proof state to itself.
type Context struct {
	interner *ast.Interner
	limits   Limits
	rules    []Rule
	tracer   Tracer

	expandMu   sync.Mutex
	expansions map[uint32]ast.Cons // keyed by id of the interned concept check

	memoMu sync.Mutex
	memo   *set.HashSet[*consPair, uint64] // pairs (a, c) where a subsumes c
}

// Option configures a Context.
type Option func(ctx *Context)

// Bound proof search by l. WithLimits panics if l is invalid; limits read from configuration are
// validated by LoadLimits.
func WithLimits(l Limits) Option {
	if err := l.Validate(); err != nil {
		panic("invalid limits: " + err.Error())
	}
	return func(ctx *Context) { ctx.limits = l }
}

// Register admissible inference rules for atomic constraints.
func WithRules(rules ...Rule) Option {
	return func(ctx *Context) { ctx.rules = append(ctx.rules, rules...) }
}

// Report each step of proof search to t.
func WithTracer(t Tracer) Option {
	return func(ctx *Context) { ctx.tracer = t }
}

// Build constraints with an existing interner, so constraints may be shared between contexts.
func WithInterner(in *ast.Interner) Option {
	return func(ctx *Context) { ctx.interner = in }
}

// Create a context. Without options, the context uses DefaultLimits, no rules, and no tracing.
func NewContext(opts ...Option) *Context {
	ctx := &Context{
		limits:     DefaultLimits,
		tracer:     NopTracer{},
		expansions: make(map[uint32]ast.Cons, 16),
		memo:       set.NewHashSet[*consPair, uint64](16),
	}
	for _, opt := range opts {
		opt(ctx)
	}
	if ctx.interner == nil {
		ctx.interner = ast.NewInterner()
	}
	return ctx
}

// Interner returns the interner which builds the context's constraints.
func (ctx *Context) Interner() *ast.Interner { return ctx.interner }

// Limits returns the bounds on proof search.
func (ctx *Context) Limits() Limits { return ctx.limits }

// IsDependent returns true if t mentions any template parameter.
func (ctx *Context) IsDependent(t ast.Term) bool { return astutil.IsDependent(t) }

// consPair is a memo key for a pair of constraints owned by the context's interner; their ids are
// unique, so the hash identifies the pair exactly.
type consPair struct {
	a, c uint32
}

func (p *consPair) Hash() uint64 { return uint64(p.a)<<32 | uint64(p.c) }

func (ctx *Context) memoized(a, c ast.Cons) bool {
	if !ctx.interner.Owns(a) || !ctx.interner.Owns(c) {
		return false
	}
	ctx.memoMu.Lock()
	found := ctx.memo.Contains(&consPair{a.ID(), c.ID()})
	ctx.memoMu.Unlock()
	return found
}

func (ctx *Context) memoize(a, c ast.Cons) {
	if !ctx.interner.Owns(a) || !ctx.interner.Owns(c) {
		return
	}
	ctx.memoMu.Lock()
	ctx.memo.Insert(&consPair{a.ID(), c.ID()})
	ctx.memoMu.Unlock()
}
