// Copyright 2026 The Circgen Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-air/circgen/z"
)

// ReadAscii parses an ASCII AIGER file of the shape produced by
// WriteAscii and validates it: header counts match the body, input
// literals are the expected even literals in id order, the output
// literal is in range, and gate lines have even strictly increasing
// left hand sides whose operands reference strictly smaller ids.
func ReadAscii(r io.Reader) (*T, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	fields, e := scanLine(sc)
	if e != nil {
		return nil, e
	}
	if len(fields) != 6 || fields[0] != "aag" {
		return nil, ErrBadHeader
	}
	var m, i, l, o, a int
	for j, dst := range []*int{&m, &i, &l, &o, &a} {
		v, e := strconv.Atoi(fields[j+1])
		if e != nil || v < 0 {
			return nil, ErrBadHeader
		}
		*dst = v
	}
	if l != 0 {
		return nil, ErrLatches
	}
	if o != 1 {
		return nil, ErrNumOutputs
	}
	if m != i+a {
		return nil, fmt.Errorf("M=%d but I+A=%d: %w", m, i+a, ErrBadHeader)
	}

	t := Make(i)
	for k := 1; k <= i; k++ {
		lit, e := scanLit(sc, m)
		if e != nil {
			return nil, e
		}
		if lit != z.Id(k).Pos() {
			return nil, fmt.Errorf("input %d has literal %d: %w", k, uint32(lit), ErrSignedInput)
		}
	}
	out, e := scanLit(sc, m)
	if e != nil {
		return nil, e
	}
	for k := 0; k < a; k++ {
		fields, e := scanLine(sc)
		if e != nil {
			return nil, e
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("gate line %q: %w", strings.Join(fields, " "), ErrBadLit)
		}
		ms := make([]z.Lit, 3)
		for j, f := range fields {
			v, e := strconv.Atoi(f)
			if e != nil || v < 0 {
				return nil, fmt.Errorf("%q: %w", f, ErrBadLit)
			}
			if v > 2*m+1 {
				return nil, fmt.Errorf("literal %d with M=%d: %w", v, m, ErrLitOOB)
			}
			ms[j] = z.Lit(v)
		}
		if !ms[0].IsPos() {
			return nil, fmt.Errorf("gate %s: %w", ms[0], ErrSignedAnd)
		}
		if ms[0].Id() != z.Id(i+k+1) {
			return nil, fmt.Errorf("gate %s at position %d: %w", ms[0], k, ErrNonMonotone)
		}
		if _, e := t.NewAnd(ms[1], ms[2]); e != nil {
			return nil, e
		}
	}
	if e := t.SetOutput(out); e != nil {
		return nil, e
	}
	return t, nil
}

func scanLine(sc *bufio.Scanner) ([]string, error) {
	if !sc.Scan() {
		if e := sc.Err(); e != nil {
			return nil, e
		}
		return nil, ErrPrematureEOF
	}
	return strings.Fields(sc.Text()), nil
}

func scanLit(sc *bufio.Scanner, m int) (z.Lit, error) {
	fields, e := scanLine(sc)
	if e != nil {
		return 0, e
	}
	if len(fields) != 1 {
		return 0, ErrBadLit
	}
	v, e := strconv.Atoi(fields[0])
	if e != nil || v < 0 {
		return 0, fmt.Errorf("%q: %w", fields[0], ErrBadLit)
	}
	if v > 2*m+1 {
		return 0, fmt.Errorf("literal %d with M=%d: %w", v, m, ErrLitOOB)
	}
	return z.Lit(v), nil
}
