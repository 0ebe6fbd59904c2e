// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stepper

import (
	"github.com/cpmech/gofluid1d/grp"
	"github.com/cpmech/gofluid1d/inp"
)

// Ghost is a one-sided ghost-cell primitive state.
type Ghost struct {
	Rho float64
	U   float64
	P   float64
}

// Boundary refreshes the left/right ghost states (and, for the GRP
// stepper, ghost slopes) each time step according to the configured
// tag. It is the only place the interior solve sees values outside
// the [0,m-1] cell range.
type Boundary struct {
	bound inp.Bound

	Left, Right             Ghost
	LeftSlope, RightSlope   grp.Slopes
	frozen                  bool
	frozenLeft, frozenRight Ghost
}

// NewBoundary returns a Boundary for the given tag. The tag is assumed
// already validated by Config.PostProcess.
func NewBoundary(b inp.Bound) *Boundary {
	return &Boundary{bound: b}
}

// RefreshState updates the ghost primitive states from the current
// cell averages, used by the Lagrangian stepper as the first step of
// each time step.
func (b *Boundary) RefreshState(cs CellState, step int) error {
	m := cs.Len()
	interiorLeft := Ghost{Rho: cs.Rho[0], U: cs.U[0], P: cs.P[0]}
	interiorRight := Ghost{Rho: cs.Rho[m-1], U: cs.U[m-1], P: cs.P[m-1]}

	switch b.bound {
	case inp.BoundFrozen:
		if !b.frozen {
			b.frozenLeft, b.frozenRight = interiorLeft, interiorRight
			b.frozen = true
		}
		b.Left, b.Right = b.frozenLeft, b.frozenRight

	case inp.BoundReflective:
		b.Left = Ghost{Rho: interiorLeft.Rho, U: -interiorLeft.U, P: interiorLeft.P}
		b.Right = Ghost{Rho: interiorRight.Rho, U: -interiorRight.U, P: interiorRight.P}

	case inp.BoundFree:
		b.Left, b.Right = interiorLeft, interiorRight

	case inp.BoundPeriodic:
		b.Left = interiorRight
		b.Right = interiorLeft

	case inp.BoundReflLeftFreeRgt:
		b.Left = Ghost{Rho: interiorLeft.Rho, U: -interiorLeft.U, P: interiorLeft.P}
		b.Right = interiorRight

	default:
		return newErr(ErrConfig, step, -1, "invalid boundary tag %d", b.bound)
	}
	return nil
}

// RefreshSlopes updates the ghost slopes from the current per-cell
// slope array. The Eulerian GRP stepper calls it at the start of each
// time step and again right after the slope reconstruction; the second
// call sets the ghost slopes the interface solves use.
func (b *Boundary) RefreshSlopes(slopes []grp.Slopes, step int) error {
	m := len(slopes)
	interiorLeft := slopes[0]
	interiorRight := slopes[m-1]

	switch b.bound {
	case inp.BoundFrozen:
		// the ghost state is frozen at t=0; its slope is taken as
		// zero-gradient, consistently with "no further information
		// enters from beyond the frozen boundary".
		b.LeftSlope, b.RightSlope = grp.Slopes{}, grp.Slopes{}

	case inp.BoundReflective:
		b.LeftSlope = grp.Slopes{SRho: interiorLeft.SRho, SU: -interiorLeft.SU, SP: interiorLeft.SP}
		b.RightSlope = grp.Slopes{SRho: interiorRight.SRho, SU: -interiorRight.SU, SP: interiorRight.SP}

	case inp.BoundFree:
		b.LeftSlope, b.RightSlope = grp.Slopes{}, grp.Slopes{}

	case inp.BoundPeriodic:
		b.LeftSlope = interiorRight
		b.RightSlope = interiorLeft

	case inp.BoundReflLeftFreeRgt:
		b.LeftSlope = grp.Slopes{SRho: interiorLeft.SRho, SU: -interiorLeft.SU, SP: interiorLeft.SP}
		b.RightSlope = grp.Slopes{}

	default:
		return newErr(ErrConfig, step, -1, "invalid boundary tag %d", b.bound)
	}
	return nil
}
