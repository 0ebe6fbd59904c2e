// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gofluid1d/stepper"
)

// StrongShock implements a strong, right-moving shock driven by a
// large pressure ratio at rest, exercising the positivity safeguards
// of both steppers under an extreme jump.
type StrongShock struct {
	Gamma        float64
	RhoL, UL, PL float64
	RhoR, UR, PR float64
	X0           float64
}

// Init sets a 1e5 pressure ratio at rest, overridable by prms.
func (o *StrongShock) Init(prms fun.Prms) {
	o.Gamma = 1.4
	o.RhoL, o.UL, o.PL = 1.0, 0.0, 1000.0
	o.RhoR, o.UR, o.PR = 1.0, 0.0, 0.01
	o.X0 = 0.3
	for _, p := range prms {
		switch p.N {
		case "gamma":
			o.Gamma = p.V
		case "rhoL":
			o.RhoL = p.V
		case "pL":
			o.PL = p.V
		case "rhoR":
			o.RhoR = p.V
		case "pR":
			o.PR = p.V
		case "x0":
			o.X0 = p.V
		}
	}
}

// InitialState builds the uniform mesh and cell-average state.
func (o StrongShock) InitialState(m int, xmin, xmax float64) (stepper.CellState, stepper.Mesh) {
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
