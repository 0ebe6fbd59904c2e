// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package riemann

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// Test_exact01 checks that equal u and p on both sides returns the
// trivial star state and both waves flagged as rarefaction.
func Test_exact01(tst *testing.T) {

	chk.PrintTitle("exact01: trivial states")

	gamma := 1.4
	L := NewState(gamma, 1.0, 0.3, 1.0)
	R := NewState(gamma, 0.5, 0.3, 1.0)
	res := Solve(gamma, L, R, 1e-9, 1e-10, 50)
	if res.Failed() {
		tst.Fatalf("solve failed unexpectedly")
	}
	chk.Scalar(tst, "u*", 1e-8, res.UStar, 0.3)
	chk.Scalar(tst, "p*", 1e-8, res.PStar, 1.0)
	chk.IntAssert(res.CRW[0], waveRarefaction)
	chk.IntAssert(res.CRW[1], waveRarefaction)
}

// Test_exact02 checks that a strong shock tube has the left wave as a
// rarefaction, the right as a shock, with p_R < p* < p_L.
func Test_exact02(tst *testing.T) {

	chk.PrintTitle("exact02: sod-like strong left rarefaction / right shock")

	gamma := 1.4
	L := NewState(gamma, 1.0, 0.0, 1.0)
	R := NewState(gamma, 0.125, 0.0, 0.1)
	res := Solve(gamma, L, R, 1e-9, 1e-10, 100)
	if res.Failed() {
		tst.Fatalf("solve failed unexpectedly")
	}
	chk.IntAssert(res.CRW[0], waveRarefaction)
	chk.IntAssert(res.CRW[1], waveShock)
	if res.PStar <= R.P || res.PStar >= L.P {
		tst.Fatalf("expected p_R < p* < p_L, got p*=%g (p_L=%g p_R=%g)", res.PStar, L.P, R.P)
	}
}

// Test_exact03 checks non-finite inputs are rejected as a failure
// instead of propagating NaNs.
func Test_exact03(tst *testing.T) {

	chk.PrintTitle("exact03: non-finite input is a failure")

	gamma := 1.4
	L := NewState(gamma, 1.0, math.NaN(), 1.0)
	R := NewState(gamma, 0.125, 0.0, 0.1)
	res := Solve(gamma, L, R, 1e-9, 1e-10, 100)
	if !res.Failed() {
		tst.Fatalf("expected failure on NaN input")
	}
}

// Test_exact04 compares the primary and Toro variants on the same
// problem: both must agree on the star state within tol, confirming
// interchangeability.
func Test_exact04(tst *testing.T) {

	chk.PrintTitle("exact04: primary vs toro variant agreement")

	gamma := 1.4
	L := NewState(gamma, 1.0, -2.0, 0.4)
	R := NewState(gamma, 1.0, 2.0, 0.4)
	a := Solve(gamma, L, R, 1e-9, 1e-12, 200)
	b := SolveToro(gamma, L, R, 1e-9, 1e-12, 200)
	if a.Failed() || b.Failed() {
		tst.Fatalf("solve failed: primary=%v toro=%v", a.Failed(), b.Failed())
	}
	chk.Scalar(tst, "u* agreement", 1e-6, a.UStar, b.UStar)
	chk.Scalar(tst, "p* agreement", 1e-6, a.PStar, b.PStar)
}
