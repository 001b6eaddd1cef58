// Copyright 2026 The Circgen Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import "fmt"

// Id is a signal identifier.  Id 0 is the constant false signal.
type Id uint32

// IdFalse is the id of the constant false signal.
const IdFalse Id = 0

// Pos returns the positive (unnegated) literal of i.
func (i Id) Pos() Lit {
	return Lit(i << 1)
}

// Neg returns the negative literal of i.
func (i Id) Neg() Lit {
	return Lit(i<<1) | 1
}

func (i Id) String() string {
	return fmt.Sprintf("s%d", uint32(i))
}
