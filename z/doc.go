// Copyright 2026 The Circgen Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package z provides signal identifiers and literals for
// circuit exchange formats.
//
// A z.Id names a signal in a circuit.  Id 0 is reserved for the
// constant false signal.  A z.Lit combines an Id with a polarity
// in a single integer, as in the AIGER format: the literal of
// id k with polarity b is 2k+b.
package z
