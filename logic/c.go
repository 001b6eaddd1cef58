// Copyright 2026 The Circgen Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Errors related to circuit construction.  All of them indicate a
// violated construction invariant: callers should abort the instance
// under construction rather than retry.
var (
	ErrInvalidOperand = errors.New("operand does not reference an earlier signal")
	ErrEmptyRegistry  = errors.New("no signals to draw an operand from")
	ErrNoOutput       = errors.New("no output designated")
)

// Sig is a handle to a signal registered in a circuit.  Sigs are
// only obtainable from NewIn and NewGate, so holding one proves the
// signal was created before any gate that uses it as an operand.
type Sig int

type node struct {
	name string
	op   Op
	args [2]Sig
	in   bool
}

// Type C represents a combinational circuit as an ordered registry
// of signals: primary inputs and gates in creation order.
type C struct {
	nodes  []node
	nIn    int
	prefix string
	out    Sig
	outSet bool
}

// NewC creates a new empty circuit.  Gates are named
// "<prefix>_<k>" with k counting from 0 in creation order.
func NewC(prefix string) *C {
	return &C{nodes: make([]node, 0, 64), prefix: prefix}
}

// NewIn registers a primary input named nm and returns its handle.
func (c *C) NewIn(nm string) Sig {
	s := Sig(len(c.nodes))
	c.nodes = append(c.nodes, node{name: nm, in: true})
	c.nIn++
	return s
}

// NewGate registers a gate applying op to args and returns its
// handle.  NewGate returns ErrInvalidOperand if the number of
// operands does not match op's arity or if an operand handle does
// not reference an already registered signal.
func (c *C) NewGate(op Op, args ...Sig) (Sig, error) {
	nm := fmt.Sprintf("%s_%d", c.prefix, len(c.nodes)-c.nIn)
	return c.newGate(nm, op, args...)
}

func (c *C) newGate(nm string, op Op, args ...Sig) (Sig, error) {
	if len(args) != op.Arity() {
		return 0, fmt.Errorf("%s takes %d operands, got %d: %w", op, op.Arity(), len(args), ErrInvalidOperand)
	}
	var ns node
	ns.op = op
	ns.name = nm
	for i, a := range args {
		if a < 0 || int(a) >= len(c.nodes) {
			return 0, fmt.Errorf("operand %d of %s: %w", int(a), op, ErrInvalidOperand)
		}
		ns.args[i] = a
	}
	s := Sig(len(c.nodes))
	c.nodes = append(c.nodes, ns)
	return s, nil
}

// SetOutput designates s as the circuit output.
func (c *C) SetOutput(s Sig) {
	c.out = s
	c.outSet = true
}

// Output returns the designated output and whether one was set.
func (c *C) Output() (Sig, bool) {
	return c.out, c.outSet
}

// Len returns the number of registered signals.
func (c *C) Len() int {
	return len(c.nodes)
}

// NumIn returns the number of primary inputs.
func (c *C) NumIn() int {
	return c.nIn
}

// NumGates returns the number of gates.
func (c *C) NumGates() int {
	return len(c.nodes) - c.nIn
}

// At returns the i'th signal in creation order.
func (c *C) At(i int) Sig {
	return Sig(i)
}

// Name returns the name of s.
func (c *C) Name(s Sig) string {
	return c.nodes[s].name
}

// IsIn says whether s is a primary input.
func (c *C) IsIn(s Sig) bool {
	return c.nodes[s].in
}

// GateOp returns the operator of gate s.  s must not be an input.
func (c *C) GateOp(s Sig) Op {
	return c.nodes[s].op
}

// GateArgs returns the operands of gate s.  s must not be an input.
func (c *C) GateArgs(s Sig) []Sig {
	n := &c.nodes[s]
	return n.args[:n.op.Arity()]
}

// Write serializes c in gate-list form: one INPUT line per primary
// input in creation order, one gate line per gate in creation
// order, then a single OUTPUT line.  Write returns ErrNoOutput if
// no output was designated.
func (c *C) Write(w io.Writer) error {
	if !c.outSet {
		return ErrNoOutput
	}
	bw := bufio.NewWriter(w)
	for _, n := range c.nodes {
		if !n.in {
			continue
		}
		fmt.Fprintf(bw, "INPUT(%s)\n", n.name)
	}
	for _, n := range c.nodes {
		if n.in {
			continue
		}
		switch n.op.Arity() {
		case 1:
			fmt.Fprintf(bw, "%s = %s(%s)\n", n.name, n.op, c.nodes[n.args[0]].name)
		case 2:
			fmt.Fprintf(bw, "%s = %s(%s,%s)\n", n.name, n.op, c.nodes[n.args[0]].name, c.nodes[n.args[1]].name)
		}
	}
	fmt.Fprintf(bw, "OUTPUT(%s)\n", c.nodes[c.out].name)
	return bw.Flush()
}
