// Copyright 2026 The Circgen Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package gen contains random generators for combinational
// circuit benchmarks.
//
// All generators take an explicit *rand.Rand and consume draws in
// a fixed order, so a corpus is reproducible from a single seed.
package gen
