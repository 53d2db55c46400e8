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
	"io"

	"gopkg.in/yaml.v3"
)

// Limits bound proof search.
type Limits struct {
	// Maximum number of outstanding sequents in a proof.
	MaxGoals int `yaml:"max_goals"`
	// Maximum number of load/check/branch iterations of a proof.
	MaxIterations int `yaml:"max_iterations"`
	// Maximum number of concept expansions performed while loading a single proof.
	MaxExpansions int `yaml:"max_expansions"`
	// Cross-check every verdict against a SAT solver.
	Verify bool `yaml:"verify"`
}

// DefaultLimits are used by contexts created without WithLimits.
var DefaultLimits = Limits{
	MaxGoals:      32,
	MaxIterations: 1024,
	MaxExpansions: 4096,
}

// Validate returns an error if any bound is not positive.
func (l Limits) Validate() error {
	if l.MaxGoals <= 0 || l.MaxIterations <= 0 || l.MaxExpansions <= 0 {
		return errors.New("limits must be positive")
	}
	return nil
}

type limitsFile struct {
	Subsumption Limits `yaml:"subsumption"`
}

// LoadLimits reads limits from a YAML document of the form:
//
//   subsumption:
//     max_goals: 32
//     max_iterations: 1024
//     max_expansions: 4096
//     verify: false
//
// Omitted fields keep their default values. Unknown fields are rejected.
func LoadLimits(r io.Reader) (Limits, error) {
	f := limitsFile{Subsumption: DefaultLimits}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return Limits{}, err
	}
	if err := f.Subsumption.Validate(); err != nil {
		return Limits{}, err
	}
	return f.Subsumption, nil
}
