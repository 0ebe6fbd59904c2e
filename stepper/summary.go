// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stepper

import (
	"time"

	"github.com/cpmech/gosl/io"
)

// Summary records the per-step CPU timing and step count a stepper
// call produces, generalised from one whole-simulation timer to one
// timer per time step.
type Summary struct {
	CPUTime []float64 // elapsed seconds for each step taken
	NSteps  int       // number of steps actually taken
	Times   []float64 // physical time_c reached after each step

	// BoundaryImpulse accumulates tau*(p*_left - p*_right) over every
	// step: the exact net momentum a Lagrangian run exchanges with the
	// outside world, so conservation can be checked as an equality
	// against the change in total momentum rather than merely "does
	// not drift".
	BoundaryImpulse float64

	// Flux accumulates the net mass/momentum/energy that crossed the
	// two domain boundaries over an Eulerian run, letting conservation
	// be checked the same way.
	Flux BoundaryFlux
}

// BoundaryFlux is the net mass/momentum/energy exchanged with the
// outside world through the domain's two physical boundaries.
type BoundaryFlux struct {
	Mass, Mom, Energy float64
}

// NewSummary preallocates a Summary able to record up to cap steps
// without reallocating (cap is typically Config.NMax).
func NewSummary(cap int) *Summary {
	return &Summary{CPUTime: make([]float64, 0, cap), Times: make([]float64, 0, cap)}
}

// start begins timing a step; the returned func records the elapsed
// time and the physical time reached when called at the step's end,
// so it takes the post-step time_c as an argument rather than closing
// over the pre-step value.
func (s *Summary) start() func(timeCAfter float64) {
	t0 := time.Now()
	return func(timeCAfter float64) {
		s.CPUTime = append(s.CPUTime, time.Since(t0).Seconds())
		s.Times = append(s.Times, timeCAfter)
		s.NSteps++
	}
}

// TotalCPU sums the per-step timings.
func (s *Summary) TotalCPU() float64 {
	var total float64
	for _, t := range s.CPUTime {
		total += t
	}
	return total
}

// PrintCPU writes a one-line CPU-time report, gated on verbose.
func (s *Summary) PrintCPU(verbose bool) {
	if verbose {
		io.Pfblue2("cpu time total = %v (steps=%d)\n", time.Duration(s.TotalCPU()*float64(time.Second)), s.NSteps)
	}
}
