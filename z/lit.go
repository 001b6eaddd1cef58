// Copyright 2026 The Circgen Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import "fmt"

// Lit is a literal: a signal id together with a polarity,
// encoded as 2*id + polarity.
type Lit uint32

const (
	// LitFalse is the constant false literal, the positive
	// literal of IdFalse.
	LitFalse Lit = 0
	// LitTrue is the negation of LitFalse.
	LitTrue Lit = 1
)

// MkLit encodes (id, neg) as a literal.
func MkLit(i Id, neg bool) Lit {
	if neg {
		return i.Neg()
	}
	return i.Pos()
}

// Id returns the signal id of m.
func (m Lit) Id() Id {
	return Id(m >> 1)
}

// IsPos says whether m is unnegated.
func (m Lit) IsPos() bool {
	return m&1 == 0
}

// Not returns the negation of m.
func (m Lit) Not() Lit {
	return m ^ 1
}

func (m Lit) String() string {
	if m.IsPos() {
		return fmt.Sprintf("s%d", uint32(m.Id()))
	}
	return fmt.Sprintf("~s%d", uint32(m.Id()))
}
