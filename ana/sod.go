// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements the reference shock-tube and advection
// scenarios used to exercise and validate the solvers and steppers.
package ana

import (
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gofluid1d/stepper"
)

// Sod implements the classical Sod shock tube: a single diaphragm
// separating a high-pressure left state from a low-pressure right
// state, producing a right-moving shock, a right-moving contact and a
// left-moving rarefaction.
type Sod struct {
	Gamma        float64
	RhoL, UL, PL float64
	RhoR, UR, PR float64
	X0           float64 // diaphragm location
}

// Init sets the classical Sod values, overridable by prms.
func (o *Sod) Init(prms fun.Prms) {
	o.Gamma = 1.4
	o.RhoL, o.UL, o.PL = 1.0, 0.0, 1.0
	o.RhoR, o.UR, o.PR = 0.125, 0.0, 0.1
	o.X0 = 0.5
	for _, p := range prms {
		switch p.N {
		case "gamma":
			o.Gamma = p.V
		case "rhoL":
			o.RhoL = p.V
		case "uL":
			o.UL = p.V
		case "pL":
			o.PL = p.V
		case "rhoR":
			o.RhoR = p.V
		case "uR":
			o.UR = p.V
		case "pR":
			o.PR = p.V
		case "x0":
			o.X0 = p.V
		}
	}
}

// InitialState builds the uniform mesh and cell-average state for a
// domain [xmin,xmax] of m cells, piecewise-constant about X0.
func (o Sod) InitialState(m int, xmin, xmax float64) (stepper.CellState, stepper.Mesh) {
	h := (xmax - xmin) / float64(m)
	msh := stepper.NewUniformMesh(m, h, xmin)
	cs := stepper.NewCellState(m)
	xc := utl.LinSpace(xmin+0.5*h, xmax-0.5*h, m)
	for j := 0; j < m; j++ {
		if xc[j] < o.X0 {
			cs.Rho[j], cs.U[j], cs.P[j] = o.RhoL, o.UL, o.PL
		} else {
			cs.Rho[j], cs.U[j], cs.P[j] = o.RhoR, o.UR, o.PR
		}
	}
	cs.EnergyFromPressure(o.Gamma)
	return cs, msh
}
