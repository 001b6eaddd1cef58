// Copyright 2026 The Circgen Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package logic provides named combinational circuits over a small
// fixed operator set, together with reading and writing of the
// line-oriented gate-list (.bench) format.
//
// A circuit is an append-only registry of signals.  Gates may only
// reference signals created earlier, so circuits are acyclic by
// construction.
package logic
