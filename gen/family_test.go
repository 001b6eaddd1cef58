// Copyright 2026 The Circgen Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/circgen/logic"
)

func TestFamilyNames(t *testing.T) {
	for _, f := range Families {
		g, err := ParseFamily(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, g)
	}
	_, err := ParseFamily("nand-ish")
	require.Error(t, err)
}

func TestDistPositiveTotal(t *testing.T) {
	for _, f := range Families {
		total := 0
		for _, w := range f.Dist() {
			require.GreaterOrEqual(t, w, 0)
			total += w
		}
		require.Greater(t, total, 0, f.String())
	}
}

func TestDistConvergence(t *testing.T) {
	const n = 120000
	r := rand.New(rand.NewSource(7))
	for _, f := range Families {
		d := f.Dist()
		total := 0
		for _, w := range d {
			total += w
		}
		counts := make(map[logic.Op]int, len(logic.Ops))
		for i := 0; i < n; i++ {
			counts[d.Pick(r)]++
		}
		for i, op := range logic.Ops {
			want := float64(d[i]) / float64(total)
			got := float64(counts[op]) / float64(n)
			assert.InDelta(t, want, got, 0.01, "%s %s", f, op)
		}
	}
}

func TestDistZeroWeightNeverDrawn(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	d := Nand.Dist()
	for i := 0; i < 10000; i++ {
		op := d.Pick(r)
		assert.NotEqual(t, logic.Buf, op)
		assert.NotEqual(t, logic.Xnor, op)
	}
}
