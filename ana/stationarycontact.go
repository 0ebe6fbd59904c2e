// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gofluid1d/stepper"
)

// StationaryContact implements a pure density discontinuity at
// mechanical equilibrium (u and p constant across it): the exact
// solution never moves, so any drift in p flags a scheme that fails to
// preserve a contact exactly (a classical GRP/MUSCL failure mode when
// pressure is reconstructed instead of derived).
type StationaryContact struct {
	Gamma      float64
	RhoL, RhoR float64
	U, P       float64
	X0         float64
}

// Init sets a 2:1 density jump at rest, overridable by prms.
func (o *StationaryContact) Init(prms fun.Prms) {
	o.Gamma = 1.4
	o.RhoL, o.RhoR = 1.0, 0.5
	o.U, o.P = 0.0, 1.0
	o.X0 = 0.5
	for _, p := range prms {
		switch p.N {
		case "gamma":
			o.Gamma = p.V
		case "rhoL":
			o.RhoL = p.V
		case "rhoR":
			o.RhoR = p.V
		case "u":
			o.U = p.V
		case "p":
			o.P = p.V
		case "x0":
			o.X0 = p.V
		}
	}
}

// InitialState builds the uniform mesh and cell-average state.
func (o StationaryContact) InitialState(m int, xmin, xmax float64) (stepper.CellState, stepper.Mesh) {
	h := (xmax - xmin) / float64(m)
	msh := stepper.NewUniformMesh(m, h, xmin)
	cs := stepper.NewCellState(m)
	xc := utl.LinSpace(xmin+0.5*h, xmax-0.5*h, m)
	for j := 0; j < m; j++ {
		if xc[j] < o.X0 {
			cs.Rho[j] = o.RhoL
		} else {
			cs.Rho[j] = o.RhoR
		}
		cs.U[j], cs.P[j] = o.U, o.P
	}
	cs.EnergyFromPressure(o.Gamma)
	return cs, msh
}
