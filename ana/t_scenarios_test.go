// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"

	"github.com/cpmech/gofluid1d/inp"
	"github.com/cpmech/gofluid1d/stepper"
)

func Test_sod01(tst *testing.T) {

	// Sod shock tube, run with the Lagrangian stepper to completion
	chk.PrintTitle("sod01: shock tube")

	var sod Sod
	sod.Init(fun.Prms{})

	m := 100
	cs, msh := sod.InitialState(m, 0, 1)
	cfg := inp.Config{}
	cfg.SetDefault()
	cfg.Gamma, cfg.H, cfg.CFL, cfg.TFinal = sod.Gamma, 1.0/float64(m), 0.5, 0.15
	cfg.Bound = inp.BoundFree
	if err := cfg.PostProcess(); err != nil {
		tst.Errorf("PostProcess failed: %v", err)
		return
	}
	if _, err := stepper.GodunovLagrange(cfg, cs, msh); err != nil {
		tst.Errorf("GodunovLagrange failed: %v", err)
	}

	if chk.Verbose {
		plt.SetForEps(1.2, 455)
		plt.Plot(msh.X[:m], cs.Rho, "'b-'")
		plt.SaveD("/tmp/gofluid1d", "sod_rho.eps")
	}
}

func Test_problem12301(tst *testing.T) {

	// Toro's "123 problem", near-vacuum middle state
	chk.PrintTitle("problem12301: two rarefactions")

	var p123 Problem123
	p123.Init(fun.Prms{})

	m := 100
	cs, msh := p123.InitialState(m, 0, 1)
	cfg := inp.Config{}
	cfg.SetDefault()
	cfg.Gamma, cfg.H, cfg.CFL, cfg.TFinal = p123.Gamma, 1.0/float64(m), 0.4, 0.1
	cfg.Bound = inp.BoundFree
	if err := cfg.PostProcess(); err != nil {
		tst.Errorf("PostProcess failed: %v", err)
		return
	}
	if _, err := stepper.GodunovLagrange(cfg, cs, msh); err != nil {
		tst.Errorf("GodunovLagrange failed: %v", err)
	}
}

func Test_strongshock01(tst *testing.T) {

	// strong right-moving shock, positivity must hold throughout
	chk.PrintTitle("strongshock01: extreme pressure ratio")

	var ss StrongShock
	ss.Init(fun.Prms{})

	m := 100
	cs, msh := ss.InitialState(m, 0, 1)
	cfg := inp.Config{}
	cfg.SetDefault()
	cfg.Gamma, cfg.H, cfg.CFL, cfg.TFinal = ss.Gamma, 1.0/float64(m), 0.3, 0.012
	cfg.Bound = inp.BoundFree
	if err := cfg.PostProcess(); err != nil {
		tst.Errorf("PostProcess failed: %v", err)
		return
	}
	if _, err := stepper.GodunovLagrange(cfg, cs, msh); err != nil {
		tst.Errorf("GodunovLagrange failed: %v", err)
	}
	for j := 0; j < m; j++ {
		if cs.Rho[j] <= 0 || cs.P[j] <= 0 {
			tst.Errorf("positivity lost at cell %d", j)
		}
	}
}

func Test_stationarycontact01(tst *testing.T) {

	// a stationary contact must stay put and keep p constant
	chk.PrintTitle("stationarycontact01: density jump at rest")

	var sc StationaryContact
	sc.Init(fun.Prms{})

	m := 60
	cs, _ := sc.InitialState(m, 0, 1)
	cfg := inp.Config{}
	cfg.SetDefault()
	cfg.Gamma, cfg.H, cfg.CFL, cfg.TFinal = sc.Gamma, 1.0/float64(m), 0.4, 0.05
	cfg.Bound = inp.BoundFree
	cfg.Alpha = 1.9
	if err := cfg.PostProcess(); err != nil {
		tst.Errorf("PostProcess failed: %v", err)
		return
	}
	if _, err := stepper.GRPEuler(cfg, cs); err != nil {
		tst.Errorf("GRPEuler failed: %v", err)
		return
	}
	for j := 0; j < m; j++ {
		if diff := cs.P[j] - sc.P; diff > 1e-6 || diff < -1e-6 {
			tst.Errorf("pressure drifted at cell %d: p=%v want %v", j, cs.P[j], sc.P)
		}
	}
}

func Test_periodicadvection01(tst *testing.T) {

	// smooth periodic advection, grid convergence of the L1 error
	chk.PrintTitle("periodicadvection01: grid convergence")

	var pa PeriodicAdvection
	pa.Init(fun.Prms{})

	tfinal := 0.2
	var errs []float64
	for _, m := range []int{20, 40, 80} {
		cs, _ := pa.InitialState(m)
		cfg := inp.Config{}
		cfg.SetDefault()
		cfg.Gamma, cfg.H, cfg.CFL, cfg.TFinal = pa.Gamma, pa.Length/float64(m), 0.4, tfinal
		cfg.Bound = inp.BoundPeriodic
		cfg.Alpha = 1.8
		if err := cfg.PostProcess(); err != nil {
			tst.Errorf("PostProcess failed: %v", err)
			return
		}
		if _, err := stepper.GRPEuler(cfg, cs); err != nil {
			tst.Errorf("GRPEuler failed: %v", err)
			return
		}
		errs = append(errs, pa.L1Error(cs.Rho, tfinal))
	}

	for i := 1; i < len(errs); i++ {
		if errs[i] >= errs[i-1] {
			tst.Errorf("L1 error did not decrease under grid refinement: %v", errs)
			break
		}
	}

	if chk.Verbose {
		reduction := math.Log(errs[0] / errs[len(errs)-1])
		io.Pf("observed error reduction factor (log): %v\n", reduction)
	}
}
