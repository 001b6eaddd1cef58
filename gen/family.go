// Copyright 2026 The Circgen Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"fmt"
	"math/rand"

	"github.com/go-air/circgen/logic"
)

// Family names a preset operator weight distribution used to bias
// the structure of generated gate-list circuits.
type Family int

const (
	// Uniform draws every operator with equal probability.
	Uniform Family = iota
	// AndOr is dominated by conjunctions and disjunctions.
	AndOr
	// Xor is parity heavy.
	Xor
	// Nand favors AND/NOT and occasionally appends an
	// AND-then-NOT idiom after a gate.
	Nand
)

// Families lists all families in generation order.
var Families = [...]Family{Uniform, AndOr, Xor, Nand}

func (f Family) String() string {
	switch f {
	case Uniform:
		return "uniform"
	case AndOr:
		return "andor"
	case Xor:
		return "xor"
	case Nand:
		return "nand"
	}
	panic(fmt.Sprintf("bad family %d", int(f)))
}

// ParseFamily maps a family name to its Family.
func ParseFamily(s string) (Family, error) {
	for _, f := range Families {
		if f.String() == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown family %q", s)
}

// Dist holds one non-negative weight per operator, indexed as
// logic.Ops.  The total must be positive; an operator is drawn
// with probability weight/total.
type Dist [len(logic.Ops)]int

// Dist returns f's operator weights.
func (f Family) Dist() Dist {
	// indexed BUF, NOT, AND, OR, XOR, XNOR
	switch f {
	case Uniform:
		return Dist{1, 1, 1, 1, 1, 1}
	case AndOr:
		return Dist{1, 2, 6, 6, 1, 1}
	case Xor:
		return Dist{1, 1, 2, 2, 6, 4}
	case Nand:
		return Dist{0, 5, 9, 1, 1, 0}
	}
	panic(fmt.Sprintf("bad family %d", int(f)))
}

// Pick draws one operator from d using a single draw from r.
func (d Dist) Pick(r *rand.Rand) logic.Op {
	total := 0
	for _, w := range d {
		total += w
	}
	k := r.Intn(total)
	for i, w := range d {
		if k < w {
			return logic.Ops[i]
		}
		k -= w
	}
	panic("unreachable")
}
