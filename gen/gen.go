// Copyright 2026 The Circgen Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/go-air/circgen/logic"
	"github.com/go-air/circgen/logic/aiger"
	"github.com/go-air/circgen/z"
)

// ErrConfig indicates size parameters outside the supported ranges.
var ErrConfig = errors.New("bad generator configuration")

// nand family: chance of appending the AND-then-NOT idiom after a
// gate is 1 in nandIdiomDen.
const nandIdiomDen = 4

// Config bounds the sizes of generated instances.  Sizes are drawn
// uniformly from the inclusive ranges.
type Config struct {
	MinIn    int `yaml:"min_in"`
	MaxIn    int `yaml:"max_in"`
	MinGates int `yaml:"min_gates"`
	MaxGates int `yaml:"max_gates"`
}

func (cfg Config) check() error {
	if cfg.MinIn < 1 {
		return fmt.Errorf("min inputs %d, need at least 1: %w", cfg.MinIn, ErrConfig)
	}
	if cfg.MaxIn < cfg.MinIn {
		return fmt.Errorf("input range [%d,%d]: %w", cfg.MinIn, cfg.MaxIn, ErrConfig)
	}
	if cfg.MinGates < 0 || cfg.MaxGates < cfg.MinGates {
		return fmt.Errorf("gate range [%d,%d]: %w", cfg.MinGates, cfg.MaxGates, ErrConfig)
	}
	return nil
}

func intIn(r *rand.Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

// RandC generates a random gate-list circuit for family f, drawing
// from r in a fixed order: input count, gate count, then per gate
// the operator, its operand(s) and, for the nand family, the idiom
// draw; finally the output selection.  Gates are named with prefix
// so instances from different generator calls can share a
// directory.
func RandC(r *rand.Rand, f Family, cfg Config, prefix string) (*logic.C, error) {
	if e := cfg.check(); e != nil {
		return nil, e
	}
	nIn := intIn(r, cfg.MinIn, cfg.MaxIn)
	nGates := intIn(r, cfg.MinGates, cfg.MaxGates)

	c := logic.NewC(prefix)
	sigs := make([]logic.Sig, 0, nIn+nGates)
	for i := 0; i < nIn; i++ {
		sigs = append(sigs, c.NewIn(fmt.Sprintf("x%d", i)))
	}
	d := f.Dist()
	for i := 0; i < nGates; i++ {
		op := d.Pick(r)
		g, e := randGate(r, c, op, sigs)
		if e != nil {
			return nil, e
		}
		sigs = append(sigs, g)
		if f == Nand && r.Intn(nandIdiomDen) == 0 {
			gs, e := nandIdiom(r, c, sigs)
			if e != nil {
				return nil, e
			}
			sigs = append(sigs, gs...)
		}
	}
	c.SetOutput(sigs[r.Intn(len(sigs))])
	return c, nil
}

// randGate synthesizes one gate with operands drawn uniformly,
// with repetition, from all signals registered so far.
func randGate(r *rand.Rand, c *logic.C, op logic.Op, sigs []logic.Sig) (logic.Sig, error) {
	if len(sigs) == 0 {
		return 0, logic.ErrEmptyRegistry
	}
	args := make([]logic.Sig, op.Arity())
	for i := range args {
		args[i] = sigs[r.Intn(len(sigs))]
	}
	return c.NewGate(op, args...)
}

// nandIdiom appends AND(a,b) then NOT of it, both registered
// normally.
func nandIdiom(r *rand.Rand, c *logic.C, sigs []logic.Sig) ([]logic.Sig, error) {
	g, e := randGate(r, c, logic.And, sigs)
	if e != nil {
		return nil, e
	}
	h, e := c.NewGate(logic.Not, g)
	if e != nil {
		return nil, e
	}
	return []logic.Sig{g, h}, nil
}

// RandAig generates a random single-output aig.  Draw order: input
// count, gate count, then per gate operand id a, operand id b
// (uniform over all smaller ids including the constant false 0),
// polarity of a, polarity of b; finally the output id (uniform
// over [0, M], so dead gates may be selected or left dangling) and
// its polarity.
func RandAig(r *rand.Rand, cfg Config) (*aiger.T, error) {
	if e := cfg.check(); e != nil {
		return nil, e
	}
	nIn := intIn(r, cfg.MinIn, cfg.MaxIn)
	nAnds := intIn(r, cfg.MinGates, cfg.MaxGates)

	t := aiger.Make(nIn)
	for k := 0; k < nAnds; k++ {
		gid := nIn + 1 + k
		aId := z.Id(r.Intn(gid))
		bId := z.Id(r.Intn(gid))
		a := z.MkLit(aId, r.Intn(2) == 1)
		b := z.MkLit(bId, r.Intn(2) == 1)
		if _, e := t.NewAnd(a, b); e != nil {
			return nil, e
		}
	}
	outId := z.Id(r.Intn(int(t.MaxId()) + 1))
	out := z.MkLit(outId, r.Intn(2) == 1)
	if e := t.SetOutput(out); e != nil {
		return nil, e
	}
	return t, nil
}
