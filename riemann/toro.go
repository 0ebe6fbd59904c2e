// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package riemann

// SolveToro is the "Toro" variant of the exact Riemann solver: same
// wave functions and Newton loop as Solve, but initialised from
// the Primitive Variable Riemann Solver (PVRS) estimate instead of the
// two-rarefaction approximation. It must be, and is, behaviourally
// interchangeable with Solve.
func SolveToro(gamma float64, L, R State, eps, tol float64, nmax int) Result {
	p0 := pvrsGuess(L, R, eps)
	return newton(gamma, L, R, eps, tol, nmax, p0)
}

// Variant names a registered Riemann solver implementation.
type Variant string

const (
	VariantPrimary Variant = "primary"
	VariantToro    Variant = "toro"
)

// Func is the shared signature of both solver variants, allowing a
// caller (the stepper packages) to select one by configuration instead
// of by call site.
type Func func(gamma float64, L, R State, eps, tol float64, nmax int) Result

// Variants holds the two interchangeable Riemann solver implementations
// keyed by Variant.
var Variants = map[Variant]Func{
	VariantPrimary: Solve,
	VariantToro:    SolveToro,
}

// Select returns the solver function for the given variant, defaulting
// to the primary Newton variant for an empty or unrecognised tag.
func Select(v Variant) Func {
	if f, ok := Variants[v]; ok {
		return f
	}
	return Solve
}
