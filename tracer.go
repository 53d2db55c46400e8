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
	"bytes"
	"fmt"
	"io"
	"sync"
)

// Phase identifies a step of proof search.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseLoad
	PhaseDischarge
	PhaseBranch
	PhaseProved
	PhaseRefuted
)

var phaseNames = [...]string{
	PhaseStart:     "start",
	PhaseLoad:      "load",
	PhaseDischarge: "discharge",
	PhaseBranch:    "branch",
	PhaseProved:    "proved",
	PhaseRefuted:   "refuted",
}

func (p Phase) String() string { return phaseNames[p] }

// Step describes the state of a proof after a phase completes.
type Step struct {
	Phase     Phase
	Iteration int
	// Index of the goal the phase acted on, or -1 if it acted on every goal.
	Goal  int
	Goals []*Sequent
}

// Tracer observes proof search.
type Tracer interface {
	Trace(s Step)
}

// NopTracer discards every step.
type NopTracer struct{}

func (NopTracer) Trace(_ Step) {}

// LoggingTracer writes each step to Writer. Each step is written with a single call to Write, and
// steps from concurrent queries on a shared context are written one at a time.
type LoggingTracer struct {
	Writer io.Writer

	mu sync.Mutex
}

func NewLoggingTracer(w io.Writer) *LoggingTracer { return &LoggingTracer{Writer: w} }

func (t *LoggingTracer) Trace(s Step) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s (iteration %d", s.Phase, s.Iteration)
	if s.Goal >= 0 {
		fmt.Fprintf(&buf, ", goal %d", s.Goal)
	}
	buf.WriteString(")\n")
	for i, g := range s.Goals {
		fmt.Fprintf(&buf, "%d: %s\n", i, g)
	}
	t.mu.Lock()
	t.Writer.Write(buf.Bytes())
	t.mu.Unlock()
}
