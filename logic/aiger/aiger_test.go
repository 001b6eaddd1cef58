// Copyright 2026 The Circgen Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/circgen/z"
)

func TestHeaderCounts(t *testing.T) {
	g := Make(6)
	for k := 0; k < 10; k++ {
		_, err := g.NewAnd(z.Id(1).Pos(), z.Id(2).Neg())
		require.NoError(t, err)
	}
	require.NoError(t, g.SetOutput(g.MaxId().Pos()))

	var buf bytes.Buffer
	require.NoError(t, g.WriteAscii(&buf))
	first, _, _ := strings.Cut(buf.String(), "\n")
	assert.Equal(t, "aag 16 6 0 1 10", first)
}

func TestNewAndBounds(t *testing.T) {
	g := Make(2)
	// first gate has id 3; operands must have smaller ids
	_, err := g.NewAnd(z.Id(3).Pos(), z.Id(1).Pos())
	require.ErrorIs(t, err, ErrLitOOB)
	_, err = g.NewAnd(z.Id(1).Pos(), z.Id(7).Neg())
	require.ErrorIs(t, err, ErrLitOOB)

	id, err := g.NewAnd(z.IdFalse.Pos(), z.Id(2).Neg())
	require.NoError(t, err)
	assert.Equal(t, z.Id(3), id)
	// second gate may reference the first
	_, err = g.NewAnd(id.Neg(), z.Id(1).Pos())
	require.NoError(t, err)
}

func TestSetOutputBounds(t *testing.T) {
	g := Make(2)
	require.ErrorIs(t, g.SetOutput(z.Id(3).Pos()), ErrLitOOB)
	require.NoError(t, g.SetOutput(z.Id(2).Neg()))
}

func TestWriteNoOutput(t *testing.T) {
	g := Make(1)
	require.ErrorIs(t, g.WriteAscii(&bytes.Buffer{}), ErrNoOutput)
}

func TestAsciiRoundTrip(t *testing.T) {
	g := Make(3)
	a, err := g.NewAnd(z.Id(1).Pos(), z.Id(2).Neg())
	require.NoError(t, err)
	b, err := g.NewAnd(a.Neg(), z.Id(3).Pos())
	require.NoError(t, err)
	_, err = g.NewAnd(b.Pos(), z.IdFalse.Neg())
	require.NoError(t, err)
	require.NoError(t, g.SetOutput(b.Neg()))

	var buf bytes.Buffer
	require.NoError(t, g.WriteAscii(&buf))

	h, err := ReadAscii(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, g.NumIn(), h.NumIn())
	assert.Equal(t, g.NumAnds(), h.NumAnds())
	hOut, ok := h.Output()
	require.True(t, ok)
	assert.Equal(t, g.out, hOut)

	var buf2 bytes.Buffer
	require.NoError(t, h.WriteAscii(&buf2))
	assert.Equal(t, buf.String(), buf2.String())
}

func TestReadAsciiRejects(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		err  error
	}{
		{"bad magic", "aig 1 1 0 1 0\n2\n2\n", ErrBadHeader},
		{"short header", "aag 1 1 0 1\n", ErrBadHeader},
		{"count mismatch", "aag 3 1 0 1 1\n2\n2\n4 2 0\n", ErrBadHeader},
		{"latches", "aag 2 1 1 1 0\n2\n2\n2\n", ErrLatches},
		{"two outputs", "aag 1 1 0 2 0\n2\n2\n2\n", ErrNumOutputs},
		{"negated input", "aag 1 1 0 1 0\n3\n2\n", ErrSignedInput},
		{"truncated", "aag 2 1 0 1 1\n2\n2\n", ErrPrematureEOF},
		{"odd lhs", "aag 2 1 0 1 1\n2\n2\n5 2 0\n", ErrSignedAnd},
		{"lhs out of order", "aag 3 1 0 1 2\n2\n2\n6 2 0\n4 2 0\n", ErrNonMonotone},
		{"operand oob", "aag 2 1 0 1 1\n2\n2\n4 4 0\n", ErrLitOOB},
		{"output oob", "aag 1 1 0 1 0\n2\n9\n", ErrLitOOB},
		{"junk literal", "aag 1 1 0 1 0\n2\nzz\n", ErrBadLit},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadAscii(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.err)
		})
	}
}
