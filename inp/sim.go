// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp implements the configuration record consumed by the
// time steppers. It is a plain value, never global state: a caller
// reads it from wherever it likes (JSON, flags, a literal) and passes
// it into the stepper entry points explicitly.
package inp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Bound is the boundary-condition tag.
type Bound int

const (
	BoundFrozen          Bound = -1  // frozen-at-initial
	BoundReflective      Bound = -2  // reflective
	BoundFree            Bound = -4  // free (zero-gradient)
	BoundPeriodic        Bound = -5  // periodic
	BoundReflLeftFreeRgt Bound = -24 // reflective left + free right
)

// RiemannVariant selects the exact Riemann solver implementation used
// by both time steppers: the primary two-rarefaction-initialised
// Newton iteration, or the PVRS-initialised "Toro" variant.
type RiemannVariant string

const (
	VariantPrimary RiemannVariant = "primary"
	VariantToro    RiemannVariant = "toro"
)

// Config holds the recognised configuration fields for a run. Unknown
// fields are ignored by the reader that builds a Config (JSON or
// otherwise); PostProcess checks that the required ones are present
// and admissible.
type Config struct {

	// required physical/numerical parameters
	Gamma  float64 `json:"gamma"`  // ratio of specific heats, > 1
	TFinal float64 `json:"tfinal"` // total physical time; may be +Inf
	Eps    float64 `json:"eps"`    // positivity / tolerance guard
	NMax   int     `json:"nmax"`   // maximum number of time steps
	CFL    float64 `json:"cfl"`    // Courant number in (0,1]
	H      float64 `json:"h"`      // initial uniform spatial cell width
	Bound  Bound   `json:"bound"`  // boundary-condition tag

	// optional / conditionally-required parameters
	Tau            float64        `json:"tau"`            // fixed time step; used only when TFinal is not finite
	Alpha          float64        `json:"alpha"`          // GRP slope-limiter compression parameter, in [1,2]
	RiemannVariant RiemannVariant `json:"riemannvariant"` // "primary" (default) or "toro"

	// convergence knobs for the exact Riemann Newton iteration
	NewtonTol  float64 `json:"newtontol"`  // relative pressure tolerance
	NewtonIter int     `json:"newtoniter"` // iteration cap

	// ambient, inert unless a caller wires an output writer; carried
	// because a named configuration record always has somewhere to
	// say where results go.
	Key    string `json:"key"`
	DirOut string `json:"dirout"`

	// derived
	Itol float64 // derived convergence tolerance; see PostProcess
}

// SetDefault fills in the defaults always assigned before a
// configuration is read from its source.
func (c *Config) SetDefault() {
	c.Gamma = 1.4
	c.Eps = 1e-9
	c.CFL = 0.45
	c.NMax = 1_000_000
	c.Bound = BoundFree
	c.Alpha = 1.5
	c.RiemannVariant = VariantPrimary
	c.NewtonTol = 1e-10
	c.NewtonIter = 100
	c.TFinal = math.Inf(1)
	c.DirOut = "/tmp/gofluid1d"
}

// PostProcess validates the record and derives Itol, returning a
// CONFIG error for a missing required field, an invalid boundary tag,
// or an out-of-range Alpha (the supported domain is pinned to [1,2];
// values outside it are rejected rather than silently clamped).
func (c *Config) PostProcess() error {
	if c.Gamma <= 1.0 {
		return chk.Err("CONFIG: gamma must be > 1, got %g", c.Gamma)
	}
	if c.H <= 0 {
		return chk.Err("CONFIG: h must be > 0, got %g", c.H)
	}
	if c.CFL <= 0 || c.CFL > 1 {
		return chk.Err("CONFIG: CFL must be in (0,1], got %g", c.CFL)
	}
	if c.Eps <= 0 {
		return chk.Err("CONFIG: eps must be > 0, got %g", c.Eps)
	}
	if !math.IsInf(c.TFinal, 1) && c.TFinal <= 0 {
		return chk.Err("CONFIG: t_final must be > 0 or +Inf, got %g", c.TFinal)
	}
	if math.IsInf(c.TFinal, 1) && c.Tau <= 0 {
		return chk.Err("CONFIG: tau must be > 0 when t_final is disabled (+Inf)")
	}
	switch c.Bound {
	case BoundFrozen, BoundReflective, BoundFree, BoundPeriodic, BoundReflLeftFreeRgt:
	default:
		return chk.Err("CONFIG: invalid boundary tag %d", c.Bound)
	}
	if c.Alpha < 1.0 || c.Alpha > 2.0 {
		return chk.Err("CONFIG: alpha must be in [1,2], got %g", c.Alpha)
	}
	if c.NMax <= 0 {
		return chk.Err("CONFIG: N_max must be > 0, got %d", c.NMax)
	}
	if c.NewtonTol <= 0 {
		c.NewtonTol = 1e-10
	}
	if c.NewtonIter <= 0 {
		c.NewtonIter = 100
	}
	// Itol is the derived Riemann Newton iteration tolerance: never
	// tighter than what eps can resolve.
	c.Itol = math.Max(10.0*c.Eps, c.NewtonTol)
	return nil
}

// FixedStep reports whether the fixed-step override is in effect: Tau
// is used as the time step length only when TFinal is disabled.
func (c Config) FixedStep() bool {
	return math.IsInf(c.TFinal, 1) && c.Tau > 0
}
