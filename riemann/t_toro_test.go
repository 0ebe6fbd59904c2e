// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package riemann

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// Test_toro01 checks the Toro (PVRS-initialised) variant alone
// reproduces a strong right-moving-shock pattern at rest.
func Test_toro01(tst *testing.T) {

	chk.PrintTitle("toro01: strong right-moving shock")

	gamma := 1.4
	L := NewState(gamma, 1.0, 0.0, 1000.0)
	R := NewState(gamma, 1.0, 0.0, 0.01)
	res := SolveToro(gamma, L, R, 1e-9, 1e-12, 200)
	if res.Failed() {
		tst.Fatalf("toro solve failed unexpectedly")
	}
	chk.IntAssert(res.CRW[0], waveRarefaction)
	chk.IntAssert(res.CRW[1], waveShock)
	if res.UStar <= 0 {
		tst.Fatalf("expected a right-moving star velocity, got %g", res.UStar)
	}
}

// Test_toro02 exercises Select and the variant table.
func Test_toro02(tst *testing.T) {

	chk.PrintTitle("toro02: variant selection table")

	if Select(VariantToro) == nil {
		tst.Fatalf("toro variant missing from table")
	}
	if Select("bogus") == nil {
		tst.Fatalf("default variant must never be nil")
	}
}
