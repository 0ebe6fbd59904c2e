// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package riemann implements the exact solution of the Riemann problem
// for the one-dimensional Euler equations of an ideal polytropic gas.
package riemann

import "math"

// State holds a constant primitive gas state (ρ, u, p) on one side of
// an interface, together with its sound speed.
type State struct {
	Rho float64 // density
	U   float64 // velocity
	P   float64 // pressure
	C   float64 // sound speed; computed by NewState, not by the caller
}

// NewState builds a State and computes its sound speed c = √(γp/ρ).
func NewState(gamma, rho, u, p float64) State {
	return State{Rho: rho, U: u, P: p, C: math.Sqrt(gamma * p / rho)}
}

// Result holds the outcome of a Riemann solve: the star-region velocity
// and pressure, and the wave-kind flag for each non-linear wave (0 =
// shock, 1 = rarefaction). Niter<=0 signals failure: Newton did not
// converge, diverged, or the converged p* fell at or below eps.
type Result struct {
	UStar float64
	PStar float64
	CRW   [2]int // [0]=left wave, [1]=right wave
	Niter int
}

// Failed reports whether the solve did not produce a usable star state.
func (r Result) Failed() bool { return r.Niter <= 0 }

const (
	waveShock       = 0
	waveRarefaction = 1
)

// waveA returns A_K = 2/((γ+1)ρ_K)
func waveA(gamma float64, s State) float64 {
	return 2.0 / ((gamma + 1.0) * s.Rho)
}

// waveB returns B_K = p_K(γ-1)/(γ+1)
func waveB(gamma float64, s State) float64 {
	return s.P * (gamma - 1.0) / (gamma + 1.0)
}

// waveF evaluates f_K(p) and its derivative f_K'(p) for side s at
// trial pressure p, branching between the shock and rarefaction
// formulas (Toro, "Riemann Solvers and Numerical Methods for Fluid
// Dynamics", ch.4) exactly as the Newton iteration re-selects the
// branch on every call.
func waveF(gamma float64, s State, p float64) (f, df float64) {
	if p > s.P {
		// shock branch
		A, B := waveA(gamma, s), waveB(gamma, s)
		denom := p + B
		sq := math.Sqrt(A / denom)
		f = (p - s.P) * sq
		df = sq * (1.0 - 0.5*(p-s.P)/denom)
		return
	}
	// rarefaction branch
	pRat := p / s.P
	expo := (gamma - 1.0) / (2.0 * gamma)
	f = (2.0 * s.C / (gamma - 1.0)) * (math.Pow(pRat, expo) - 1.0)
	df = (1.0 / (s.Rho * s.C)) * math.Pow(pRat, -(gamma+1.0)/(2.0*gamma))
	return
}

// twoRarefactionGuess is the safeguarded initial pressure guess used by
// the primary Newton variant: the two-rarefaction approximation.
func twoRarefactionGuess(gamma float64, L, R State, eps float64) float64 {
	expo := (gamma - 1.0) / (2.0 * gamma)
	num := L.C + R.C - 0.5*(gamma-1.0)*(R.U-L.U)
	den := L.C/math.Pow(L.P, expo) + R.C/math.Pow(R.P, expo)
	if den <= 0 || num <= 0 {
		return eps
	}
	p := math.Pow(num/den, 1.0/expo)
	if p < eps {
		p = eps
	}
	return p
}

// pvrsGuess is the Primitive Variable Riemann Solver estimate used to
// initialise the "Toro" variant.
func pvrsGuess(L, R State, eps float64) float64 {
	rhoBar := 0.5 * (L.Rho + R.Rho)
	cBar := 0.5 * (L.C + R.C)
	p := 0.5*(L.P+R.P) - 0.5*(R.U-L.U)*rhoBar*cBar
	if p < eps {
		p = eps
	}
	return p
}

// newton runs the safeguarded Newton iteration shared by both Riemann
// solver variants, returning the same Result contract for each.
func newton(gamma float64, L, R State, eps, tol float64, nmax int, p0 float64) Result {
	if !finite(L.Rho, L.U, L.P, R.Rho, R.U, R.P, p0) || L.Rho <= eps || R.Rho <= eps || L.P <= eps || R.P <= eps {
		return Result{Niter: 0}
	}
	p := p0
	var it int
	for it = 1; it <= nmax; it++ {
		fL, dfL := waveF(gamma, L, p)
		fR, dfR := waveF(gamma, R, p)
		fsum := fL + fR + (R.U - L.U)
		dsum := dfL + dfR
		if dsum == 0 || !finite(fsum, dsum) {
			return Result{Niter: 0}
		}
		dp := fsum / dsum
		pNew := p - dp
		if pNew < eps {
			pNew = 0.5 * (p + eps) // safeguard: keep p strictly positive while converging
		}
		relChange := math.Abs(pNew-p) / (0.5 * (pNew + p))
		p = pNew
		if relChange < tol {
			break
		}
	}
	if it > nmax {
		return Result{Niter: 0} // no convergence within nmax iterations
	}
	if !finite(p) || p <= eps {
		return Result{Niter: 0}
	}
	fL, _ := waveF(gamma, L, p)
	fR, _ := waveF(gamma, R, p)
	u := 0.5*(L.U+R.U) + 0.5*(fR-fL)
	if !finite(u) {
		return Result{Niter: 0}
	}
	var res Result
	res.PStar = p
	res.UStar = u
	res.Niter = it
	if p-L.P > 0 {
		res.CRW[0] = waveShock
	} else {
		res.CRW[0] = waveRarefaction
	}
	if p-R.P > 0 {
		res.CRW[1] = waveShock
	} else {
		res.CRW[1] = waveRarefaction
	}
	return res
}

func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
