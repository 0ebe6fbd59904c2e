// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gofluid1d/stepper"
)

// PeriodicAdvection implements a smooth density perturbation advected
// at constant velocity and pressure on a periodic domain: the exact
// solution at time t is the initial profile shifted by u·t, so the
// scheme's L¹ error against it is a direct grid-convergence probe.
type PeriodicAdvection struct {
	Gamma  float64
	Rho0   float64 // background density
	Amp    float64 // perturbation amplitude
	U, P   float64
	Length float64 // domain length (period)
}

// Init sets the defaults, overridable by prms.
func (o *PeriodicAdvection) Init(prms fun.Prms) {
	o.Gamma = 1.4
	o.Rho0, o.Amp = 1.0, 0.2
	o.U, o.P = 1.0, 1.0
	o.Length = 1.0
	for _, p := range prms {
		switch p.N {
		case "gamma":
			o.Gamma = p.V
		case "rho0":
			o.Rho0 = p.V
		case "amp":
			o.Amp = p.V
		case "u":
			o.U = p.V
		case "p":
			o.P = p.V
		case "length":
			o.Length = p.V
		}
	}
}

// rhoExact evaluates the exact density at x and time t: the initial
// sinusoidal perturbation translated rigidly at speed U on a domain of
// period Length.
func (o PeriodicAdvection) rhoExact(x, t float64) float64 {
	xi := x - o.U*t
	return o.Rho0 + o.Amp*math.Sin(2.0*math.Pi*xi/o.Length)
}

// InitialState builds the uniform mesh and cell-average state for m
// cells over one period [0,Length).
func (o PeriodicAdvection) InitialState(m int) (stepper.CellState, stepper.Mesh) {
	h := o.Length / float64(m)
	msh := stepper.NewUniformMesh(m, h, 0.0)
	cs := stepper.NewCellState(m)
	xc := utl.LinSpace(0.5*h, o.Length-0.5*h, m)
	for j := 0; j < m; j++ {
		cs.Rho[j] = o.rhoExact(xc[j], 0.0)
		cs.U[j], cs.P[j] = o.U, o.P
	}
	cs.EnergyFromPressure(o.Gamma)
	return cs, msh
}

// L1Error integrates |rho_numeric(x) - rho_exact(x,t)| from the first
// to the last cell centre (the half cells at the two ends are left
// out), using num.Trapz on a dense resampling of the piecewise-constant
// numerical field, giving a convergence-order probe independent of the
// mesh's own cell width.
func (o PeriodicAdvection) L1Error(rhoNum []float64, t float64) float64 {
	m := len(rhoNum)
	h := o.Length / float64(m)
	xc := utl.LinSpace(0.5*h, o.Length-0.5*h, m)
	diff := func(x float64) float64 {
		j := int(x / h)
		if j >= m {
			j = m - 1
		}
		if j < 0 {
			j = 0
		}
		return math.Abs(rhoNum[j] - o.rhoExact(x, t))
	}
	n := 2000
	xs := utl.LinSpace(xc[0], xc[m-1], n)
	ys := make([]float64, n)
	for i, x := range xs {
		ys[i] = diff(x)
	}
	return num.Trapz(xs, ys)
}
