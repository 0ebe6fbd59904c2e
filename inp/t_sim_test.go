// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_config01(tst *testing.T) {

	chk.PrintTitle("config01: defaults validate once h and t_final are set")

	var c Config
	c.SetDefault()
	c.H = 0.01
	c.TFinal = 0.2
	err := c.PostProcess()
	if err != nil {
		tst.Fatalf("default config should validate: %v", err)
	}
}

func Test_config02(tst *testing.T) {

	chk.PrintTitle("config02: missing h is a CONFIG error")

	var c Config
	c.SetDefault()
	err := c.PostProcess()
	if err == nil {
		tst.Fatalf("expected a CONFIG error for h=0")
	}
}

func Test_config03(tst *testing.T) {

	chk.PrintTitle("config03: bad boundary tag is a CONFIG error")

	var c Config
	c.SetDefault()
	c.H = 0.01
	c.TFinal = 0.2
	c.Bound = Bound(-3)
	err := c.PostProcess()
	if err == nil {
		tst.Fatalf("expected a CONFIG error for an unrecognised boundary tag")
	}
}

func Test_config04(tst *testing.T) {

	chk.PrintTitle("config04: alpha out of [1,2] is a CONFIG error")

	var c Config
	c.SetDefault()
	c.H = 0.01
	c.TFinal = 0.2
	c.Alpha = 3.0
	err := c.PostProcess()
	if err == nil {
		tst.Fatalf("expected a CONFIG error for alpha outside [1,2]")
	}
}

func Test_config05(tst *testing.T) {

	chk.PrintTitle("config05: fixed-step mode requires tau when t_final is +Inf")

	var c Config
	c.SetDefault()
	c.H = 0.01
	c.TFinal = math.Inf(1)
	err := c.PostProcess()
	if err == nil {
		tst.Fatalf("expected a CONFIG error for missing tau in fixed-step mode")
	}
	c.Tau = 1e-4
	err = c.PostProcess()
	if err != nil {
		tst.Fatalf("fixed-step config should validate once tau is set: %v", err)
	}
	if !c.FixedStep() {
		tst.Fatalf("expected FixedStep() to report true")
	}
}
