// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grp implements the linearized Generalized Riemann Problem
// solver and the slope-limiter utilities consumed by the Eulerian GRP
// time stepper.
package grp

import "math"

// Minmod2 is the two-argument minmod limiter: zero when the signs of
// a and b disagree, otherwise the argument of smallest magnitude,
// carrying the shared sign.
func Minmod2(a, b float64) float64 {
	if a*b <= 0 {
		return 0
	}
	if math.Abs(a) < math.Abs(b) {
		return a
	}
	return b
}

// Minmod3 is the three-argument minmod limiter: zero unless all three
// arguments share a sign, otherwise the one of smallest magnitude,
// carrying that sign.
func Minmod3(a, b, c float64) float64 {
	sa, sb, sc := sign(a), sign(b), sign(c)
	if sa == 0 || sa != sb || sa != sc {
		return 0
	}
	m := math.Abs(a)
	if math.Abs(b) < m {
		m = math.Abs(b)
	}
	if math.Abs(c) < m {
		m = math.Abs(c)
	}
	return sa * m
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
