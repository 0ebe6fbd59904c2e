// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stepper

import (
	"fmt"
	"math"

	"github.com/cpmech/gosl/la"

	"github.com/cpmech/gofluid1d/grp"
	"github.com/cpmech/gofluid1d/inp"
	"github.com/cpmech/gofluid1d/riemann"
)

// GRPEuler runs the second-order Eulerian Generalized Riemann Problem
// time stepper. cs is the caller-owned cell-average state (row 0 must
// already be a strictly positive, finite fluid state); it is advanced
// in place. The spatial mesh is fixed and is not represented here.
//
// The slope refresh at the end of a step must not be reordered before
// the flux assembly: the slopes used by step k+1 are derived from the
// interface states solved in step k, advanced to the end of that step,
// not from the updated cell averages.
func GRPEuler(cfg inp.Config, cs CellState) (*Summary, error) {

	m := cs.Len()
	h := cfg.H
	bnd := NewBoundary(cfg.Bound)
	solve := riemann.Select(riemann.Variant(cfg.RiemannVariant))
	sum := NewSummary(cfg.NMax)

	memSlopes := make([]grp.Slopes, m) // third minmod3 argument; zero at k=1
	newSlopes := make([]grp.Slopes, m)
	mid := make([]grp.Triple, m+1)
	dire := make([]grp.Triple, m+1)
	sFace := make([]float64, m+1)

	rhoU := make([]float64, m)
	rhoE := make([]float64, m)
	F1 := make([]float64, m+1)
	F2 := make([]float64, m+1)
	F3 := make([]float64, m+1)
	faceRho := make([]float64, m+1) // full-step interface state, for the next step's slope refresh
	faceU := make([]float64, m+1)
	faceP := make([]float64, m+1)

	timeC := 0.0
	for k := 1; k <= cfg.NMax; k++ {
		stop := sum.start()

		// 1. boundary refresh (state and slopes)
		if err := bnd.RefreshState(cs, k); err != nil {
			return sum, err
		}
		if err := bnd.RefreshSlopes(memSlopes, k); err != nil {
			return sum, err
		}

		// 2. slope reconstruction
		for j := 0; j < m; j++ {
			sLrho, sLu, sLp := oneSidedSlope(cs, bnd, j-1, j, h)
			sRrho, sRu, sRp := oneSidedSlope(cs, bnd, j, j+1, h)
			if k == 1 {
				newSlopes[j] = grp.Slopes{
					SRho: grp.Minmod2(sLrho, sRrho),
					SU:   grp.Minmod2(sLu, sRu),
					SP:   grp.Minmod2(sLp, sRp),
				}
			} else {
				newSlopes[j] = grp.Slopes{
					SRho: grp.Minmod3(cfg.Alpha*sLrho, cfg.Alpha*sRrho, memSlopes[j].SRho),
					SU:   grp.Minmod3(cfg.Alpha*sLu, cfg.Alpha*sRu, memSlopes[j].SU),
					SP:   grp.Minmod3(cfg.Alpha*sLp, cfg.Alpha*sRp, memSlopes[j].SP),
				}
			}
		}
		// the ghost slopes used by the interface solves come from the
		// slopes just reconstructed, so both ends of a periodic domain
		// see the same interface states
		if err := bnd.RefreshSlopes(newSlopes, k); err != nil {
			return sum, err
		}

		// 3. interface solves
		la.VecFill(sFace, 0)
		for j := 0; j <= m; j++ {
			L, sL, err := reconstructedState(cfg.Gamma, cs, bnd, newSlopes, j-1, h, +1, cfg.Eps)
			if err != nil {
				return sum, newErr(ErrNonPositive, k, j, "%v", err)
			}
			R, sR, err := reconstructedState(cfg.Gamma, cs, bnd, newSlopes, j, h, -1, cfg.Eps)
			if err != nil {
				return sum, newErr(ErrNonPositive, k, j, "%v", err)
			}
			res := grp.SolveWith(solve, cfg.Gamma, L, R, sL, sR, cfg.Eps)
			if !res.Ok {
				return sum, newErr(ErrRiemannFail, k, j, "linear GRP solve did not converge")
			}
			mid[j], dire[j] = res.Mid, res.Dire
			sFace[j] = math.Max(math.Abs(L.U)+L.C, math.Abs(R.U)+R.C)
		}

		// 4. time step
		sMax := la.VecLargest(sFace, 1)
		var tau float64
		if cfg.FixedStep() {
			tau = cfg.Tau
		} else {
			if sMax <= 0 {
				return sum, newErr(ErrCFLZero, k, -1, "h/S_max is non-positive")
			}
			tau = cfg.CFL * h / sMax
		}
		lastStep := false
		if !math.IsInf(cfg.TFinal, 1) && timeC+tau >= cfg.TFinal {
			tau = cfg.TFinal - timeC
			lastStep = true
		}

		// 5. half-step prediction and conservative fluxes
		for j := 0; j <= m; j++ {
			rhoBar := mid[j].Rho + 0.5*tau*dire[j].Rho
			uBar := mid[j].U + 0.5*tau*dire[j].U
			pBar := mid[j].P + 0.5*tau*dire[j].P
			if !finite(rhoBar, uBar, pBar) || rhoBar <= cfg.Eps || pBar <= cfg.Eps {
				return sum, newErr(ErrNonPositive, k, j, "non-positive half-step interface state")
			}
			F1[j] = rhoBar * uBar
			F2[j] = F1[j]*uBar + pBar
			F3[j] = (cfg.Gamma/(cfg.Gamma-1.0))*pBar*uBar + 0.5*F1[j]*uBar*uBar
		}

		// 6. conservative update (forward Euler on half-step fluxes)
		nu := tau / h
		for j := 0; j < m; j++ {
			rhoU[j] = cs.Rho[j] * cs.U[j]
			rhoE[j] = cs.Rho[j] * cs.E[j]
		}
		for j := 0; j < m; j++ {
			rhoNew := cs.Rho[j] - nu*(F1[j+1]-F1[j])
			rhoUNew := rhoU[j] - nu*(F2[j+1]-F2[j])
			rhoENew := rhoE[j] - nu*(F3[j+1]-F3[j])
			if !finite(rhoNew, rhoUNew, rhoENew) {
				return sum, newErr(ErrNonFinite, k, j, "non-finite conservative state after update")
			}
			if rhoNew <= cfg.Eps {
				return sum, newErr(ErrNonPositive, k, j, "rho fell below eps")
			}
			uNew := rhoUNew / rhoNew
			eNew := rhoENew / rhoNew
			pNew := (cfg.Gamma - 1.0) * (rhoENew - 0.5*rhoUNew*uNew)
			if !finite(uNew, eNew, pNew) {
				return sum, newErr(ErrNonFinite, k, j, "non-finite primitive state after update")
			}
			if pNew <= cfg.Eps {
				return sum, newErr(ErrNonPositive, k, j, "p fell below eps")
			}
			cs.Rho[j], cs.U[j], cs.E[j], cs.P[j] = rhoNew, uNew, eNew, pNew
		}

		sum.Flux.Mass += tau * (F1[0] - F1[m])
		sum.Flux.Mom += tau * (F2[0] - F2[m])
		sum.Flux.Energy += tau * (F3[0] - F3[m])

		// 7. refresh per-cell slopes from the full-step interface
		// states (the t=0⁺ interface state advanced by tau along its
		// own time derivative), not from the updated cell averages.
		for j := 0; j <= m; j++ {
			faceRho[j] = mid[j].Rho + tau*dire[j].Rho
			faceU[j] = mid[j].U + tau*dire[j].U
			faceP[j] = mid[j].P + tau*dire[j].P
		}
		for j := 0; j < m; j++ {
			memSlopes[j] = grp.Slopes{
				SRho: (faceRho[j+1] - faceRho[j]) / h,
				SU:   (faceU[j+1] - faceU[j]) / h,
				SP:   (faceP[j+1] - faceP[j]) / h,
			}
		}

		timeC += tau
		stop(timeC)

		if lastStep || timeC >= cfg.TFinal-cfg.Eps {
			break
		}
	}
	return sum, nil
}

// oneSidedSlope returns the difference quotient (V[right]-V[left])/h
// for each primitive variable, substituting the refreshed boundary
// ghost state when an index falls outside [0,m-1].
func oneSidedSlope(cs CellState, bnd *Boundary, left, right int, h float64) (sRho, sU, sP float64) {
	lg := cellOrGhost(cs, bnd, left)
	rg := cellOrGhost(cs, bnd, right)
	sRho = (rg.Rho - lg.Rho) / h
	sU = (rg.U - lg.U) / h
	sP = (rg.P - lg.P) / h
	return
}

func cellOrGhost(cs CellState, bnd *Boundary, idx int) Ghost {
	m := cs.Len()
	if idx < 0 {
		return bnd.Left
	}
	if idx >= m {
		return bnd.Right
	}
	return Ghost{Rho: cs.Rho[idx], U: cs.U[idx], P: cs.P[idx]}
}

// reconstructedState builds the one-sided state feeding an interface
// reconstructed from cell idx with its slope, displaced by ±½h.
// sign=+1 reconstructs from the left (cell idx + ½h·s), sign=-1 from
// the right (cell idx - ½h·s). idx outside [0,m-1] uses the boundary
// ghost state and slope.
func reconstructedState(gamma float64, cs CellState, bnd *Boundary, slopes []grp.Slopes, idx int, h float64, sign, eps float64) (riemann.State, grp.Slopes, error) {
	m := cs.Len()
	var base Ghost
	var sl grp.Slopes
	switch {
	case idx < 0:
		base, sl = bnd.Left, bnd.LeftSlope
	case idx >= m:
		base, sl = bnd.Right, bnd.RightSlope
	default:
		base = Ghost{Rho: cs.Rho[idx], U: cs.U[idx], P: cs.P[idx]}
		sl = slopes[idx]
	}
	rho := base.Rho + sign*0.5*h*sl.SRho
	u := base.U + sign*0.5*h*sl.SU
	p := base.P + sign*0.5*h*sl.SP
	if !finite(rho, u, p) || rho <= eps || p <= eps {
		return riemann.State{}, grp.Slopes{}, fmt.Errorf("reconstructed state is not admissible (rho=%v p=%v)", rho, p)
	}
	return riemann.NewState(gamma, rho, u, p), sl, nil
}
