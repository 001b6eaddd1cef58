// Copyright 2026 The Circgen Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import "fmt"

// Op is a gate operator.
type Op int

const (
	Buf Op = iota
	Not
	And
	Or
	Xor
	Xnor
)

// Ops lists all operators in a fixed order.
var Ops = [...]Op{Buf, Not, And, Or, Xor, Xnor}

// Arity returns the number of operands of o, 1 or 2.
func (o Op) Arity() int {
	switch o {
	case Buf, Not:
		return 1
	case And, Or, Xor, Xnor:
		return 2
	}
	panic(fmt.Sprintf("bad op %d", int(o)))
}

func (o Op) String() string {
	switch o {
	case Buf:
		return "BUF"
	case Not:
		return "NOT"
	case And:
		return "AND"
	case Or:
		return "OR"
	case Xor:
		return "XOR"
	case Xnor:
		return "XNOR"
	}
	panic(fmt.Sprintf("bad op %d", int(o)))
}

// ParseOp maps an upper-case operator name to its Op.
func ParseOp(s string) (Op, bool) {
	for _, o := range Ops {
		if o.String() == s {
			return o, true
		}
	}
	return 0, false
}
