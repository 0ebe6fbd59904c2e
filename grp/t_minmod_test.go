// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// Test_minmod01 checks minmod2(a,a)=a, minmod2(a,-b)=0 for a,b>0.
func Test_minmod01(tst *testing.T) {

	chk.PrintTitle("minmod01: two-argument cases")

	chk.Scalar(tst, "minmod2(a,a)", 1e-15, Minmod2(3.0, 3.0), 3.0)
	chk.Scalar(tst, "minmod2(a,-b)", 1e-15, Minmod2(3.0, -2.0), 0.0)
	chk.Scalar(tst, "minmod2 picks smaller magnitude", 1e-15, Minmod2(5.0, 2.0), 2.0)
	chk.Scalar(tst, "minmod2 is commutative", 1e-15, Minmod2(2.0, 5.0), Minmod2(5.0, 2.0))
}

// Test_minmod02 checks the three-argument limiter: zero unless all
// three arguments share a sign.
func Test_minmod02(tst *testing.T) {

	chk.PrintTitle("minmod02: three-argument cases")

	chk.Scalar(tst, "minmod3 all positive", 1e-15, Minmod3(4.0, 2.0, 3.0), 2.0)
	chk.Scalar(tst, "minmod3 mixed signs", 1e-15, Minmod3(4.0, -2.0, 3.0), 0.0)
	chk.Scalar(tst, "minmod3 all negative", 1e-15, Minmod3(-4.0, -2.0, -3.0), -2.0)
	chk.Scalar(tst, "minmod3 a zero kills it", 1e-15, Minmod3(0.0, 2.0, 3.0), 0.0)
}
