// Copyright 2026 The Circgen Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package aiger provides and-inverter graphs and ASCII AIGER
// (aag) reading and writing for single-output combinational
// circuits without latches.
package aiger
