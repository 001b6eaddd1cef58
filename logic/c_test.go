// Copyright 2026 The Circgen Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCRegistryOrder(t *testing.T) {
	c := NewC("n")
	a := c.NewIn("x0")
	b := c.NewIn("x1")
	g, err := c.NewGate(And, a, b)
	require.NoError(t, err)
	h, err := c.NewGate(Not, g)
	require.NoError(t, err)

	assert.Equal(t, 4, c.Len())
	assert.Equal(t, 2, c.NumIn())
	assert.Equal(t, 2, c.NumGates())
	assert.Equal(t, "x1", c.Name(b))
	assert.Equal(t, "n_0", c.Name(g))
	assert.Equal(t, "n_1", c.Name(h))
	assert.True(t, c.IsIn(a))
	assert.False(t, c.IsIn(g))
	assert.Equal(t, And, c.GateOp(g))
	assert.Equal(t, []Sig{a, b}, c.GateArgs(g))
	assert.Equal(t, []Sig{g}, c.GateArgs(h))
}

func TestCAcyclicByConstruction(t *testing.T) {
	c := NewC("n")
	a := c.NewIn("x0")
	g, err := c.NewGate(Buf, a)
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		g, err = c.NewGate(Xor, g, a)
		require.NoError(t, err)
	}
	// every gate's operands precede it in the registry
	for i := 0; i < c.Len(); i++ {
		s := c.At(i)
		if c.IsIn(s) {
			continue
		}
		for _, arg := range c.GateArgs(s) {
			assert.Less(t, int(arg), i)
		}
	}
}

func TestCInvalidOperand(t *testing.T) {
	c := NewC("n")
	a := c.NewIn("x0")

	_, err := c.NewGate(And, a, Sig(99))
	require.ErrorIs(t, err, ErrInvalidOperand)

	_, err = c.NewGate(Not, a, a)
	require.ErrorIs(t, err, ErrInvalidOperand)

	_, err = c.NewGate(And, a)
	require.ErrorIs(t, err, ErrInvalidOperand)
}

func TestCWriteNoOutput(t *testing.T) {
	c := NewC("n")
	c.NewIn("x0")
	err := c.Write(&bytes.Buffer{})
	require.ErrorIs(t, err, ErrNoOutput)
}

func TestCWriteExample(t *testing.T) {
	c := NewC("n")
	ins := make([]Sig, 6)
	for i, nm := range []string{"x0", "x1", "x2", "x3", "x4", "x5"} {
		ins[i] = c.NewIn(nm)
	}
	g0, err := c.NewGate(And, ins[0], ins[3])
	require.NoError(t, err)
	g1, err := c.NewGate(And, g0, ins[1])
	require.NoError(t, err)
	g2, err := c.NewGate(Not, g1)
	require.NoError(t, err)
	c.SetOutput(g2)

	var buf bytes.Buffer
	require.NoError(t, c.Write(&buf))
	want := `INPUT(x0)
INPUT(x1)
INPUT(x2)
INPUT(x3)
INPUT(x4)
INPUT(x5)
n_0 = AND(x0,x3)
n_1 = AND(n_0,x1)
n_2 = NOT(n_1)
OUTPUT(n_2)
`
	assert.Equal(t, want, buf.String())
}

func TestReadRoundTrip(t *testing.T) {
	c := NewC("g7")
	a := c.NewIn("x0")
	b := c.NewIn("x1")
	g0, _ := c.NewGate(Xnor, a, b)
	g1, _ := c.NewGate(Or, g0, g0)
	g2, _ := c.NewGate(Buf, g1)
	c.SetOutput(g2)

	var buf bytes.Buffer
	require.NoError(t, c.Write(&buf))

	d, err := Read(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	var buf2 bytes.Buffer
	require.NoError(t, d.Write(&buf2))
	assert.Equal(t, buf.String(), buf2.String())
}

func TestReadErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		err  error
	}{
		{"no output", "INPUT(x0)\n", ErrNoOutput},
		{"two outputs", "INPUT(x0)\nOUTPUT(x0)\nOUTPUT(x0)\n", ErrDupOutput},
		{"forward operand", "INPUT(x0)\na = AND(x0,b)\nb = NOT(x0)\nOUTPUT(b)\n", ErrUndefined},
		{"undefined output", "INPUT(x0)\nOUTPUT(zz)\n", ErrUndefined},
		{"bad op", "INPUT(x0)\na = NAND(x0,x0)\nOUTPUT(a)\n", ErrSyntax},
		{"garbage", "INPUT(x0)\nwat\nOUTPUT(x0)\n", ErrSyntax},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestReadSkipsCommentsAndBlanks(t *testing.T) {
	in := "# generated\n\nINPUT(x0)\n\nn_0 = NOT(x0)\nOUTPUT(n_0)\n"
	c, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 1, c.NumIn())
	assert.Equal(t, 1, c.NumGates())
}
