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
	"github.com/asutton/banjo-sub000/ast"
)

// Validity is the verdict of checking a sequent.
type Validity int

const (
	// The sequent cannot be proved.
	Invalid Validity = iota
	// The sequent may become provable after further loading or branching.
	Incomplete
	// The sequent is proved.
	Valid
)

var validityNames = [...]string{Invalid: "invalid", Incomplete: "incomplete", Valid: "valid"}

func (v Validity) String() string { return validityNames[v] }

// Proof is the state of a single subsumption query: a list of goals which must all be proved.
// Loading, checking and branching act on the goal list in separate phases, driven by Subsumes.
type Proof struct {
	ctx        *Context
	goals      []*Sequent
	iterations int
	expansions int
}

func newProof(ctx *Context, a, c ast.Cons) *Proof {
	return &Proof{ctx: ctx, goals: []*Sequent{NewSequent(a, c)}}
}

// Goals returns the outstanding sequents.
func (p *Proof) Goals() []*Sequent { return p.goals }

func (p *Proof) trace(phase Phase, goal int) {
	p.ctx.tracer.Trace(Step{Phase: phase, Iteration: p.iterations, Goal: goal, Goals: p.goals})
}

func (p *Proof) expand(c *ast.ConceptCons) (ast.Cons, error) {
	if p.expansions++; p.expansions > p.ctx.limits.MaxExpansions {
		return nil, &LimitError{Limit: "expansion", Max: p.ctx.limits.MaxExpansions}
	}
	return p.ctx.Expand(c)
}

// loadAntecedents flattens the antecedents of s: concept checks are expanded, quantifiers are
// stripped, and each conjunction is replaced by its operands. Disjunctions are left for branching.
func (p *Proof) loadAntecedents(s *Sequent) error {
	ants := s.Ants
	for i := 0; i < ants.Len(); {
		switch c := ants.At(i).(type) {
		case *ast.ConceptCons:
			x, err := p.expand(c)
			if err != nil {
				return err
			}
			ants = ants.Set(i, x)
		case *ast.ParameterizedCons:
			ants = ants.Set(i, c.Cons)
		case *ast.ConjunctionCons:
			ants = ants.Set(i, c.Left)
			if !ants.Contains(c.Right) {
				ants = ants.InsertAfter(i, c.Right)
			}
		default:
			i++
		}
	}
	s.Ants = ants
	return nil
}

// loadConsequents flattens the consequents of s, the dual of loadAntecedents: each disjunction is
// replaced by its operands and conjunctions are left for checking.
func (p *Proof) loadConsequents(s *Sequent) error {
	cons := s.Cons
	for i := 0; i < cons.Len(); {
		switch c := cons.At(i).(type) {
		case *ast.ConceptCons:
			x, err := p.expand(c)
			if err != nil {
				return err
			}
			cons = cons.Set(i, x)
		case *ast.ParameterizedCons:
			cons = cons.Set(i, c.Cons)
		case *ast.DisjunctionCons:
			cons = cons.Set(i, c.Left)
			if !cons.Contains(c.Right) {
				cons = cons.InsertAfter(i, c.Right)
			}
		default:
			i++
		}
	}
	s.Cons = cons
	return nil
}

// checkGoal decides whether some consequent of s is proved by its antecedents.
func (p *Proof) checkGoal(s *Sequent) (Validity, error) {
	result := Invalid
	for i, n := 0, s.Cons.Len(); i < n; i++ {
		v, err := p.checkTerm(s.Ants, s.Cons.At(i))
		if err != nil {
			return Invalid, err
		}
		switch v {
		case Valid:
			return Valid, nil
		case Incomplete:
			result = Incomplete
		}
	}
	return result, nil
}

func (p *Proof) checkTerm(ants PropList, c ast.Cons) (Validity, error) {
	if ants.Contains(c) {
		return Valid, nil
	}
	v, err := p.findSupport(ants, c)
	if err != nil {
		return Invalid, err
	}
	if v == Invalid && !ants.IsReduced() {
		return Incomplete, nil
	}
	return v, nil
}

func (p *Proof) findSupport(ants PropList, c ast.Cons) (Validity, error) {
	switch c := c.(type) {
	case *ast.PredicateCons, *ast.ExpressionCons, *ast.ConversionCons:
		if p.ctx.derive(ants, c) {
			return Valid, nil
		}
		return Invalid, nil

	case *ast.ConceptCons:
		x, err := p.expand(c)
		if err != nil {
			return Invalid, err
		}
		return p.checkTerm(ants, x)

	case *ast.ParameterizedCons:
		return p.checkTerm(ants, c.Cons)

	case *ast.ConjunctionCons:
		l, err := p.checkTerm(ants, c.Left)
		if err != nil || l != Valid {
			return l, err
		}
		return p.checkTerm(ants, c.Right)

	case *ast.DisjunctionCons:
		l, err := p.checkTerm(ants, c.Left)
		if err != nil || l == Valid {
			return l, err
		}
		r, err := p.checkTerm(ants, c.Right)
		if err != nil || r == Valid {
			return r, err
		}
		if l == Incomplete || r == Incomplete {
			return Incomplete, nil
		}
		return Invalid, nil

	case nil:
		return Invalid, unreachable("checking a missing constraint")
	}
	return Invalid, unhandled("checking of constraint", c)
}

// branch splits the first disjunctive antecedent of the first goal which has one. The goal keeps
// the left operand and a copy inserted after it receives the right. It returns the index of the
// split goal, or -1 if no goal has a disjunctive antecedent.
func (p *Proof) branch() int {
	for gi, s := range p.goals {
		for i, n := 0, s.Ants.Len(); i < n; i++ {
			d, ok := s.Ants.At(i).(*ast.DisjunctionCons)
			if !ok {
				continue
			}
			clone := s.Clone()
			s.Ants = s.Ants.Set(i, d.Left)
			clone.Ants = clone.Ants.Set(i, d.Right)

			p.goals = append(p.goals, nil)
			copy(p.goals[gi+2:], p.goals[gi+1:])
			p.goals[gi+1] = clone
			return gi
		}
	}
	return -1
}

// Run searches for a proof of every goal.
//
// Each iteration loads the antecedents of every goal, discharges valid goals, and splits one
// disjunctive antecedent. The proof fails as soon as any goal is invalid. A *LimitError is
// returned when the goal list or iteration count exceed the context's limits.
func (p *Proof) Run() (bool, error) {
	limits := p.ctx.limits
	p.trace(PhaseStart, -1)
	for _, s := range p.goals {
		if err := p.loadConsequents(s); err != nil {
			return false, err
		}
	}
	for {
		if p.iterations++; p.iterations > limits.MaxIterations {
			return false, &LimitError{Limit: "iteration", Max: limits.MaxIterations}
		}

		for _, s := range p.goals {
			if err := p.loadAntecedents(s); err != nil {
				return false, err
			}
		}
		p.trace(PhaseLoad, -1)

		remaining := make([]*Sequent, 0, len(p.goals))
		for i, s := range p.goals {
			v, err := p.checkGoal(s)
			if err != nil {
				return false, err
			}
			switch v {
			case Valid:
				p.trace(PhaseDischarge, i)
			case Invalid:
				p.trace(PhaseRefuted, i)
				return false, nil
			default:
				remaining = append(remaining, s)
			}
		}
		p.goals = remaining
		if len(p.goals) == 0 {
			p.trace(PhaseProved, -1)
			return true, nil
		}

		// Every incomplete goal has a disjunctive antecedent after loading.
		at := p.branch()
		if at < 0 {
			return false, unreachable("incomplete goal without a disjunctive antecedent")
		}
		p.trace(PhaseBranch, at)
		if len(p.goals) > limits.MaxGoals {
			return false, &LimitError{Limit: "goal", Max: limits.MaxGoals}
		}
	}
}
