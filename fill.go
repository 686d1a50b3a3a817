// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package cursor

import (
	"fmt"

	"github.com/dacapoday/cursor/internal/assert"
)

// HasRemaining reports whether w can accept at least one more byte.
func HasRemaining[W Writer](w W) bool {
	return w.Remaining() != 0
}

// Fill lends the writable region of w to fn and advances w by the count fn
// returns. The region must not be retained after fn returns.
//
// Fill is the single place where a write and its Advance are paired: fn
// reporting more bytes than the region holds panics with an error wrapping
// ErrAdvance, and w is left unchanged.
//
// Fill returns the number of bytes w advanced.
func Fill[W Writer](w W, fn func(p []byte) int) int {
	p := w.Writable()
	assert.Region("Fill", len(p), w.Remaining())
	n := fn(p)
	if n < 0 || n > len(p) {
		panic(fmt.Errorf("%w: wrote %d into region of %d", ErrAdvance, n, len(p)))
	}
	w.Advance(n)
	return n
}

// WritableVectored stores writable regions of w into dst and returns how
// many were stored.
//
// If w implements VectoredWriter its method is used. Otherwise only dst[0]
// is filled from w.Writable(), and nothing is touched when dst is empty or
// w has no remaining capacity.
func WritableVectored[W Writer](w W, dst [][]byte) int {
	if v, ok := any(w).(VectoredWriter); ok {
		n := v.WritableVectored(dst)
		assert.Vectors("WritableVectored", dst, n, w.Remaining())
		return n
	}
	if len(dst) == 0 || w.Remaining() == 0 {
		return 0
	}
	dst[0] = w.Writable()
	return 1
}
