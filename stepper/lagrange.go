// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stepper

import (
	"math"

	"github.com/cpmech/gosl/la"

	"github.com/cpmech/gofluid1d/inp"
	"github.com/cpmech/gofluid1d/riemann"
)

// GodunovLagrange runs the first-order Lagrangian Godunov time
// stepper. cs and msh are the caller-owned cell-average state and mesh
// (row 0 must already be a strictly positive, finite fluid state);
// both are advanced in place, so on return (success or failure) they
// hold the last valid state.
//
// It returns the per-step CPU/time summary and, on failure, a
// *StepError describing the step and cell at which the loop
// terminated; the partially-updated state at the previous step
// remains valid for output.
func GodunovLagrange(cfg inp.Config, cs CellState, msh Mesh) (*Summary, error) {

	m := cs.Len()
	mass := MassFromInitial(cs.Rho, cfg.H)
	bnd := NewBoundary(cfg.Bound)
	solve := riemann.Select(riemann.Variant(cfg.RiemannVariant))
	sum := NewSummary(cfg.NMax)

	uStar := make([]float64, m+1)
	pStar := make([]float64, m+1)
	sFace := make([]float64, m+1)

	newU := make([]float64, m)
	newE := make([]float64, m)
	newX := make([]float64, m+1)
	newRho := make([]float64, m)

	timeC := 0.0
	for k := 1; k <= cfg.NMax; k++ {
		stop := sum.start()

		// 1. boundary refresh
		if err := bnd.RefreshState(cs, k); err != nil {
			return sum, err
		}

		// 2. one Riemann solve per interface
		la.VecFill(uStar, 0)
		la.VecFill(pStar, 0)
		for j := 0; j <= m; j++ {
			L, R, err := faceStates(cfg.Gamma, cs, bnd, j, m, k)
			if err != nil {
				return sum, err
			}
			res := solve(cfg.Gamma, L, R, cfg.Eps, cfg.Itol, cfg.NewtonIter)
			if res.Failed() {
				return sum, newErr(ErrRiemannFail, k, j, "exact Riemann solve did not converge")
			}
			uStar[j], pStar[j] = res.UStar, res.PStar
			sFace[j] = math.Abs(res.UStar) + math.Max(L.C, R.C)
		}

		// 3. CFL-constrained (or fixed) time step
		var tau float64
		if cfg.FixedStep() {
			tau = cfg.Tau
		} else {
			tauMin := math.Inf(1)
			for j := 0; j < m; j++ {
				sCell := math.Max(sFace[j], sFace[j+1])
				if sCell <= 0 || cs.Rho[j] <= 0 {
					return sum, newErr(ErrCFLZero, k, j, "non-positive local wave speed/density")
				}
				tauCell := mass[j] / (cs.Rho[j] * sCell)
				if tauCell < tauMin {
					tauMin = tauCell
				}
			}
			if !math.IsInf(tauMin, 1) {
				tau = cfg.CFL * tauMin
			}
			if tau <= 0 || math.IsInf(tau, 1) {
				return sum, newErr(ErrCFLZero, k, -1, "h/S_max is non-positive")
			}
		}
		lastStep := false
		if !math.IsInf(cfg.TFinal, 1) && timeC+tau >= cfg.TFinal {
			tau = cfg.TFinal - timeC
			lastStep = true
		}

		// 4. forward-Euler Lagrangian update
		for j := 0; j < m; j++ {
			newU[j] = cs.U[j] - (tau/mass[j])*(pStar[j+1]-pStar[j])
			newE[j] = cs.E[j] - (tau/mass[j])*(pStar[j+1]*uStar[j+1]-pStar[j]*uStar[j])
		}
		for j := 0; j <= m; j++ {
			newX[j] = msh.X[j] + tau*uStar[j]
		}
		for j := 0; j < m; j++ {
			width := newX[j+1] - newX[j]
			if width <= 0 {
				return sum, newErr(ErrNonPositive, k, j, "non-positive cell width after update")
			}
			newRho[j] = mass[j] / width
			p := (cfg.Gamma - 1.0) * newRho[j] * (newE[j] - 0.5*newU[j]*newU[j])
			if !finite(newRho[j], newU[j], p, newE[j]) {
				return sum, newErr(ErrNonFinite, k, j, "non-finite fluid state after update")
			}
			if newRho[j] <= cfg.Eps || p <= cfg.Eps {
				return sum, newErr(ErrNonPositive, k, j, "rho or p fell below eps")
			}
		}

		copy(cs.U, newU)
		copy(cs.E, newE)
		copy(cs.Rho, newRho)
		cs.PressureFromEnergy(cfg.Gamma)
		copy(msh.X, newX)

		sum.BoundaryImpulse += tau * (pStar[0] - pStar[m])

		timeC += tau
		stop(timeC)

		if lastStep || timeC >= cfg.TFinal-cfg.Eps {
			break
		}
	}
	return sum, nil
}

// faceStates returns the left/right Riemann states feeding interface j
// (0..m), substituting the refreshed boundary ghost state at the two
// ends of the mesh.
func faceStates(gamma float64, cs CellState, bnd *Boundary, j, m, step int) (L, R riemann.State, err error) {
	if j == 0 {
		L = riemann.NewState(gamma, bnd.Left.Rho, bnd.Left.U, bnd.Left.P)
	} else {
		L = riemann.NewState(gamma, cs.Rho[j-1], cs.U[j-1], cs.P[j-1])
	}
	if j == m {
		R = riemann.NewState(gamma, bnd.Right.Rho, bnd.Right.U, bnd.Right.P)
	} else {
		R = riemann.NewState(gamma, cs.Rho[j], cs.U[j], cs.P[j])
	}
	if !finite(L.Rho, L.U, L.P, R.Rho, R.U, R.P) {
		return L, R, newErr(ErrNonFinite, step, j, "non-finite interface state")
	}
	return L, R, nil
}

func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
