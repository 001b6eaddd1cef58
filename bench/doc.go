// Copyright 2026 The Circgen Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package bench builds benchmark corpora of random circuits on
// disk and runs external solver commands over them.
//
// A corpus is a directory tree with one subdirectory per gate-list
// family, an aag directory, a flattened view of all gate-list
// instances, and a small fixed-size subset for quick runs.  A
// corpus is reproducible byte for byte from its seed; files are
// never mutated after creation, so regeneration requires removing
// the previous tree.
package bench
