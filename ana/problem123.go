// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gofluid1d/stepper"
)

// Problem123 implements Toro's "123 problem": two symmetric
// rarefactions moving apart from a central low-velocity state, driving
// the middle density and pressure close to vacuum and exercising the
// positivity safeguards of the solvers.
type Problem123 struct {
	Gamma        float64
	RhoL, UL, PL float64
	RhoR, UR, PR float64
	X0           float64
}

// Init sets Toro's "123 problem" values, overridable by prms.
func (o *Problem123) Init(prms fun.Prms) {
	o.Gamma = 1.4
	o.RhoL, o.UL, o.PL = 1.0, -2.0, 0.4
	o.RhoR, o.UR, o.PR = 1.0, 2.0, 0.4
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

// InitialState builds the uniform mesh and cell-average state.
func (o Problem123) InitialState(m int, xmin, xmax float64) (stepper.CellState, stepper.Mesh) {
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
