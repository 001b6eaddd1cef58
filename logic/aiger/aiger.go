// Copyright 2026 The Circgen Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/go-air/circgen/z"
)

// Errors related to construction, IO and formatting.
var (
	ErrBadHeader    = errors.New("bad header")
	ErrBadLit       = errors.New("malformed literal")
	ErrLitOOB       = errors.New("literal out of bounds")
	ErrSignedInput  = errors.New("input is negated")
	ErrSignedAnd    = errors.New("and gate def is negated")
	ErrNonMonotone  = errors.New("and gate ids not strictly increasing")
	ErrPrematureEOF = errors.New("premature EOF")
	ErrLatches      = errors.New("latches unsupported")
	ErrNumOutputs   = errors.New("exactly one output required")
	ErrNoOutput     = errors.New("no output designated")
)

// And is a single and gate: LHS is the even literal 2*id of the
// gate, A and B are its operand literals.
type And struct {
	LHS, A, B z.Lit
}

// Type T is an and-inverter graph with one output and no latches.
// Input signals take ids 1..NumIn, and gates take ids contiguously
// after; id 0 is the constant false.
type T struct {
	nIn    int
	ands   []And
	out    z.Lit
	outSet bool
}

// Make creates an aig with nIn inputs and no gates.
func Make(nIn int) *T {
	return &T{nIn: nIn, ands: make([]And, 0, 64)}
}

// NewAnd appends a gate computing a&b and returns its id.  Operand
// ids must be strictly below the new gate's id, so gates only
// reference inputs, the constant, or earlier gates.
func (t *T) NewAnd(a, b z.Lit) (z.Id, error) {
	id := z.Id(t.nIn + len(t.ands) + 1)
	if a.Id() >= id {
		return 0, fmt.Errorf("operand %s of gate %s: %w", a, id, ErrLitOOB)
	}
	if b.Id() >= id {
		return 0, fmt.Errorf("operand %s of gate %s: %w", b, id, ErrLitOOB)
	}
	t.ands = append(t.ands, And{LHS: id.Pos(), A: a, B: b})
	return id, nil
}

// SetOutput designates m as the single output.
func (t *T) SetOutput(m z.Lit) error {
	if m.Id() > t.MaxId() {
		return fmt.Errorf("output %s: %w", m, ErrLitOOB)
	}
	t.out = m
	t.outSet = true
	return nil
}

// Output returns the output literal and whether one was set.
func (t *T) Output() (z.Lit, bool) {
	return t.out, t.outSet
}

// NumIn returns the number of inputs.
func (t *T) NumIn() int {
	return t.nIn
}

// NumAnds returns the number of gates.
func (t *T) NumAnds() int {
	return len(t.ands)
}

// At returns the i'th gate.
func (t *T) At(i int) And {
	return t.ands[i]
}

// MaxId returns the maximal signal id M of the header.
func (t *T) MaxId() z.Id {
	return z.Id(t.nIn + len(t.ands))
}

// WriteAscii writes t in ASCII AIGER format: the header
// "aag M I 0 1 A", I even input literals in id order, the output
// literal, then one "lhs a b" line per gate with even, strictly
// increasing lhs.
func (t *T) WriteAscii(w io.Writer) error {
	if !t.outSet {
		return ErrNoOutput
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "aag %d %d 0 1 %d\n", t.MaxId(), t.nIn, len(t.ands))
	for i := 1; i <= t.nIn; i++ {
		fmt.Fprintf(bw, "%d\n", uint32(z.Id(i).Pos()))
	}
	fmt.Fprintf(bw, "%d\n", uint32(t.out))
	for _, a := range t.ands {
		fmt.Fprintf(bw, "%d %d %d\n", uint32(a.LHS), uint32(a.A), uint32(a.B))
	}
	return bw.Flush()
}
