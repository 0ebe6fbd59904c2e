// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package riemann

// Solve is the primary exact Riemann solver. It solves
//
//	f_L(p) + f_R(p) + (u_R - u_L) = 0
//
// by safeguarded Newton iteration starting from the two-rarefaction
// pressure approximation, and returns the star velocity/pressure
// together with the wave-kind flags. A non-positive Result.Niter
// signals failure: non-convergence, divergence, or a converged p* at
// or below eps.
func Solve(gamma float64, L, R State, eps, tol float64, nmax int) Result {
	p0 := twoRarefactionGuess(gamma, L, R, eps)
	return newton(gamma, L, R, eps, tol, nmax, p0)
}
