// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stepper

import "github.com/cpmech/gosl/utl"

// CellState holds the per-cell primitive and derived fields at one
// time level: ρ, u, p and the specific total energy E. All
// cell-average arrays are owned by the caller; the core never resizes
// them.
type CellState struct {
	Rho []float64 // density
	U   []float64 // velocity
	P   []float64 // pressure
	E   []float64 // specific total energy
}

// NewCellState allocates a CellState for m cells.
func NewCellState(m int) CellState {
	return CellState{
		Rho: make([]float64, m),
		U:   make([]float64, m),
		P:   make([]float64, m),
		E:   make([]float64, m),
	}
}

// Len returns the number of cells.
func (c CellState) Len() int { return len(c.Rho) }

// Clone returns a deep copy of the cell state.
func (c CellState) Clone() CellState {
	out := NewCellState(c.Len())
	copy(out.Rho, c.Rho)
	copy(out.U, c.U)
	copy(out.P, c.P)
	copy(out.E, c.E)
	return out
}

// CopyFrom overwrites c in place with src's values.
func (c CellState) CopyFrom(src CellState) {
	copy(c.Rho, src.Rho)
	copy(c.U, src.U)
	copy(c.P, src.P)
	copy(c.E, src.E)
}

// EnergyFromPressure sets E[j] from the equation-of-state identity
// E = ½u² + p/((γ-1)ρ).
func (c CellState) EnergyFromPressure(gamma float64) {
	for j := range c.Rho {
		c.E[j] = 0.5*c.U[j]*c.U[j] + c.P[j]/((gamma-1.0)*c.Rho[j])
	}
}

// PressureFromEnergy sets P[j] from p = (γ-1)(ρE - ½ρu²), the
// direction the steppers use after advancing momentum and energy.
func (c CellState) PressureFromEnergy(gamma float64) {
	for j := range c.Rho {
		c.P[j] = (gamma - 1.0) * c.Rho[j] * (c.E[j] - 0.5*c.U[j]*c.U[j])
	}
}

// Mesh holds the m+1 Lagrangian interface positions; x[m] is the
// right interface. The Eulerian stepper never uses a Mesh: its
// spatial grid is fixed and need not be tracked.
type Mesh struct {
	X []float64
}

// NewUniformMesh builds the m+1 interface positions of a uniform mesh
// of m cells with width h, starting at x0.
func NewUniformMesh(m int, h, x0 float64) Mesh {
	return Mesh{X: utl.LinSpace(x0, x0+float64(m)*h, m+1)}
}

// Clone returns a deep copy of the mesh.
func (msh Mesh) Clone() Mesh {
	x := make([]float64, len(msh.X))
	copy(x, msh.X)
	return Mesh{X: x}
}

// MassFromInitial computes the Lagrangian cell masses MASS[j] =
// h·ρ0[j], constant for the lifetime of a Lagrangian run.
func MassFromInitial(rho0 []float64, h float64) []float64 {
	mass := make([]float64, len(rho0))
	for j, r := range rho0 {
		mass[j] = h * r
	}
	return mass
}
