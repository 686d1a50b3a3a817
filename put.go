// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package cursor

import (
	"fmt"

	"github.com/dacapoday/cursor/internal/assert"
)

// PutSlice writes p to w.
//
// PutSlice panics with an error wrapping ErrOverflow if w has less than
// len(p) bytes remaining. The check happens before anything is written.
func PutSlice[W Writer](w W, p []byte) {
	if remaining := w.Remaining(); remaining < len(p) {
		panic(errOverflow(len(p), remaining))
	}
	for len(p) > 0 {
		n := Fill(w, func(dst []byte) int {
			return copy(dst, p)
		})
		p = p[n:]
	}
}

// PutFrom moves every remaining byte of src into w, advancing both.
//
// Either side may be fragmented: each step copies the smaller of the
// source chunk and the destination region. PutFrom panics with an error
// wrapping ErrOverflow, before copying anything, if src holds more bytes
// than w can take, and with ErrEmptyChunk if src returns an empty chunk
// while bytes remain.
func PutFrom[W Writer, R Reader](w W, src R) {
	if remaining, need := w.Remaining(), src.Remaining(); remaining < need {
		panic(errOverflow(need, remaining))
	}
	for src.Remaining() > 0 {
		chunk := src.Chunk()
		if len(chunk) == 0 {
			panic(fmt.Errorf("%w: %d bytes remaining", ErrEmptyChunk, src.Remaining()))
		}
		assert.Region("PutFrom", len(chunk), src.Remaining())
		n := Fill(w, func(dst []byte) int {
			return copy(dst, chunk)
		})
		src.Advance(n)
	}
}

// PutBytes writes n copies of b to w, with the same all-or-nothing
// capacity check as PutSlice.
func PutBytes[W Writer](w W, b byte, n int) {
	if n < 0 {
		panic(fmt.Errorf("%w: negative count %d", ErrOverflow, n))
	}
	if remaining := w.Remaining(); remaining < n {
		panic(errOverflow(n, remaining))
	}
	for n > 0 {
		n -= Fill(w, func(dst []byte) int {
			dst = dst[:min(len(dst), n)]
			for i := range dst {
				dst[i] = b
			}
			return len(dst)
		})
	}
}
