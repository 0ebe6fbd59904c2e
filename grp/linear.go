// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grp

import (
	"math"

	"github.com/cpmech/gofluid1d/riemann"
)

// Slopes holds the one-sided spatial derivatives (∂ρ/∂x, ∂u/∂x,
// ∂p/∂x) feeding one side of an interface.
type Slopes struct {
	SRho float64
	SU   float64
	SP   float64
}

// Triple is a (ρ,u,p)-shaped result vector, used for both the
// instantaneous interface state (Mid) and its material time derivative
// (Dire).
type Triple struct {
	Rho float64
	U   float64
	P   float64
}

// Result is the outcome of a linear GRP solve: the instantaneous
// interface state at t=0⁺ and its time derivative along the contact.
// Ok is false when p* or ρ* fell at or below eps, surfaced as an
// explicit flag instead of relying on the caller to notice NaN.
type Result struct {
	Mid  Triple
	Dire Triple
	Ok   bool
}

// the internal Newton solve used to obtain (u*,p*) runs to a tight
// tolerance, reusing the same wave functions as the exact Riemann
// solver rather than deriving a separate scheme.
const (
	innerTol  = 1e-10
	innerIter = 50
)

// Solve is the linear GRP (Generalized Riemann Problem) solver. L, R
// are the one-sided states at the interface (already reconstructed to
// the interface from cell centres by the caller); sL, sR are their
// spatial slopes. It always uses the primary Riemann variant for the
// inner (u*,p*) solve; use SolveWith to select a variant.
func Solve(gamma float64, L, R riemann.State, sL, sR Slopes, eps float64) Result {
	return SolveWith(riemann.Solve, gamma, L, R, sL, sR, eps)
}

// SolveWith is Solve parameterised by the inner Riemann solver
// function, letting a caller honour inp.Config.RiemannVariant for the
// Eulerian GRP stepper the same way stepper.GodunovLagrange does via
// riemann.Select.
func SolveWith(solve riemann.Func, gamma float64, L, R riemann.State, sL, sR Slopes, eps float64) Result {

	rr := solve(gamma, L, R, eps, innerTol, innerIter)
	if rr.Failed() {
		return Result{}
	}
	pStar, uStar := rr.PStar, rr.UStar

	rhoStarL := starDensity(gamma, L, pStar, rr.CRW[0])
	rhoStarR := starDensity(gamma, R, pStar, rr.CRW[1])
	if !finite(rhoStarL, rhoStarR) || rhoStarL <= eps || rhoStarR <= eps {
		return Result{}
	}
	cStarL := math.Sqrt(gamma * pStar / rhoStarL)
	cStarR := math.Sqrt(gamma * pStar / rhoStarR)

	// wave-interaction (acoustic) coupling between the two sides: the
	// same linear combination that produces (u*,p*) from (u_L,p_L,
	// u_R,p_R) through the acoustic impedances applies to their time
	// derivatives, since the coupling is linear in the perturbations.
	pLt, uLt, rhoLt := particleRates(gamma, L, sL)
	pRt, uRt, rhoRt := particleRates(gamma, R, sR)
	ZL, ZR := rhoStarL*cStarL, rhoStarR*cStarR
	if ZL+ZR <= 0 || !finite(ZL, ZR) {
		return Result{}
	}
	pStarT := (ZR*pLt + ZL*pRt - ZL*ZR*(uRt-uLt)) / (ZL + ZR)
	uStarT := (ZL*uLt + ZR*uRt - (pRt - pLt)) / (ZL + ZR)

	// edge policy: the contact lies to the right of the interface when
	// u*>0, so the left-side star density (and its rate) is the one
	// seen at the interface; symmetric for u*<0.
	var rhoStar, rhoStarT float64
	var mid Triple
	mid.U, mid.P = uStar, pStar
	if uStar >= 0 {
		rhoStar = rhoStarL
		rhoStarT = starDensityRate(gamma, L, pStar, rr.CRW[0], pStarT)
	} else {
		rhoStar = rhoStarR
		rhoStarT = starDensityRate(gamma, R, pStar, rr.CRW[1], pStarT)
	}
	mid.Rho = rhoStar

	// sonic rarefaction edge case: the origin lies strictly inside a
	// rarefaction fan instead of in the genuine star region.
	if rr.CRW[0] == 1 && L.U-L.C < 0 && uStar-cStarL > 0 {
		s := sonicState(gamma, L, true)
		mid = s
		rhoStarT = starDensityRate(gamma, L, s.P, 1, pStarT)
	} else if rr.CRW[1] == 1 && uStar+cStarR < 0 && R.U+R.C > 0 {
		s := sonicState(gamma, R, false)
		mid = s
		rhoStarT = starDensityRate(gamma, R, s.P, 1, pStarT)
	}

	if !finite(mid.Rho, mid.U, mid.P, rhoStarT, uStarT, pStarT) || mid.Rho <= eps || mid.P <= eps {
		return Result{}
	}

	return Result{
		Mid:  mid,
		Dire: Triple{Rho: rhoStarT, U: uStarT, P: pStarT},
		Ok:   true,
	}
}

// particleRates evaluates the non-conservative Euler equations at a
// one-sided state using its known spatial slopes, giving the "material
// derivative at t=0" ingredient the GRP wave-interaction step couples
// across the interface.
func particleRates(gamma float64, s riemann.State, sl Slopes) (pt, ut, rhot float64) {
	pt = -s.U*sl.SP - gamma*s.P*sl.SU
	ut = -s.U*sl.SU - sl.SP/s.Rho
	rhot = -s.U*sl.SRho - s.Rho*sl.SU
	return
}

// starDensity returns ρ* on one side given the wave kind: the
// isentropic relation for a rarefaction, Rankine-Hugoniot for a shock.
func starDensity(gamma float64, s riemann.State, pStar float64, kind int) float64 {
	ratio := pStar / s.P
	if kind == 1 { // rarefaction
		return s.Rho * math.Pow(ratio, 1.0/gamma)
	}
	beta := (gamma - 1.0) / (gamma + 1.0)
	return s.Rho * (ratio + beta) / (beta*ratio + 1.0)
}

// starDensityRate differentiates starDensity with respect to time
// through p*(t), holding the upstream state fixed (it is the t=0 data,
// not itself evolving).
func starDensityRate(gamma float64, s riemann.State, pStar float64, kind int, pStarT float64) float64 {
	ratio := pStar / s.P
	if kind == 1 {
		return s.Rho * (1.0 / gamma) * math.Pow(ratio, 1.0/gamma-1.0) * (pStarT / s.P)
	}
	beta := (gamma - 1.0) / (gamma + 1.0)
	denom := beta*ratio + 1.0
	dhdx := (1.0 - beta*beta) / (denom * denom)
	return s.Rho * dhdx * (pStarT / s.P)
}

// sonicState samples the rarefaction fan exactly at x/t=0 for the
// sonic edge case, per the standard exact-Riemann-solver sampling
// formulas. left selects the left-running fan family.
func sonicState(gamma float64, s riemann.State, left bool) Triple {
	var c, u float64
	if left {
		u = (2.0 / (gamma + 1.0)) * (s.C + 0.5*(gamma-1.0)*s.U)
		c = (2.0/(gamma+1.0))*s.C + ((gamma-1.0)/(gamma+1.0))*s.U
	} else {
		u = (2.0 / (gamma + 1.0)) * (-s.C + 0.5*(gamma-1.0)*s.U)
		c = (2.0/(gamma+1.0))*s.C - ((gamma-1.0)/(gamma+1.0))*s.U
	}
	rho := s.Rho * math.Pow(c/s.C, 2.0/(gamma-1.0))
	p := s.P * math.Pow(c/s.C, 2.0*gamma/(gamma-1.0))
	return Triple{Rho: rho, U: u, P: p}
}

func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
