// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stepper implements the Lagrangian Godunov and Eulerian GRP
// time-stepping loops, the boundary-state bookkeeping, and the
// per-step CPU-time summary.
package stepper

import "github.com/cpmech/gosl/io"

// ErrKind identifies one of the five error kinds a time-stepping loop
// can abort with.
type ErrKind string

const (
	ErrConfig       ErrKind = "CONFIG"       // missing field, invalid boundary tag, invalid order
	ErrNonPositive  ErrKind = "NON_POSITIVE" // ρ or p at or below eps
	ErrNonFinite    ErrKind = "NON_FINITE"   // NaN or ±Inf in any fluid quantity
	ErrRiemannFail  ErrKind = "RIEMANN_FAIL" // Newton non-convergence or p*<=eps
	ErrCFLZero      ErrKind = "CFL_ZERO"     // h/S_max is non-positive
)

// StepError is the single termination code plus diagnostic line
// identifying the step and cell at which a time-stepping loop aborted.
// Cell is -1 when the failure is not attributable to one cell (e.g. a
// degenerate CFL estimate).
type StepError struct {
	Kind ErrKind
	Step int
	Cell int
	Msg  string
}

func (e *StepError) Error() string {
	if e.Cell < 0 {
		return io.Sf("%s: step=%d: %s", e.Kind, e.Step, e.Msg)
	}
	return io.Sf("%s: step=%d cell=%d: %s", e.Kind, e.Step, e.Cell, e.Msg)
}

func newErr(kind ErrKind, step, cell int, format string, args ...interface{}) *StepError {
	return &StepError{Kind: kind, Step: step, Cell: cell, Msg: io.Sf(format, args...)}
}
