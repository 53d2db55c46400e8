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

// banjo decides satisfaction and subsumption of constraints on templates.
//
// Constraint expressions (conjunctions and disjunctions of concept checks, predicates and
// requires-expressions) are normalized into a small constraint algebra. Concrete constraints can
// be evaluated for satisfaction; possibly dependent constraints can be compared for subsumption,
// which orders constrained templates during overload resolution.
//
// Subsumption is decided by proof search over sequents `A |- C`:
//
//   * Loading flattens conjunctive antecedents and disjunctive consequents, expanding concept
//     checks and stripping quantifiers. Loading never creates new goals.
//   * Checking a sequent matches each consequent against the antecedents; conjunctive consequents
//     must be proved component-wise, disjunctive ones need only a single component.
//   * Branching splits a single sequent on its first disjunctive antecedent `P \/ Q` into two
//     sequents, one assuming P and one assuming Q. Both must be proved.
//
// The driver alternates the three phases, branching as little as possible, until every goal is
// proved, some goal is refuted, or an implementation limit is reached.
//
//
// Links:
//
// Concepts Lite (Sutton, Stroustrup, Dos Reis): https://isocpp.org/files/papers/n3580.pdf
//
// Sequent calculus: https://en.wikipedia.org/wiki/Sequent_calculus
package banjo
