// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

// Package grow provides a heap-backed write cursor that reserves capacity
// on demand.
package grow

import (
	"math"
	"slices"

	"github.com/dacapoday/cursor"
)

// MinGrow is the capacity Writable reserves when the buffer is full.
const MinGrow = 64

// Buffer is a growable write cursor.
// The slice length is the written size and the capacity is the current
// allocation; the unwritten tail [len, cap) is the writable region.
//
// Growth may move the backing array. A region returned by Writable is
// invalid after the next call to Writable, Advance or Reserve.
//
// Buffer requires no initialization:
//
//	var buf grow.Buffer
//	cursor.PutUint32(&buf, 0x01020304)
type Buffer []byte

var _ cursor.Writer = (*Buffer)(nil)

// New returns an empty Buffer with at least capacity bytes reserved.
func New(capacity int) *Buffer {
	buffer := make(Buffer, 0, capacity)
	return &buffer
}

// Remaining returns math.MaxInt minus the written length.
func (buffer *Buffer) Remaining() int {
	return math.MaxInt - len(*buffer)
}

// Writable returns the unwritten tail of the allocation. When the
// allocation is full it first reserves MinGrow bytes, so the region is
// never empty while the buffer can still grow.
func (buffer *Buffer) Writable() []byte {
	b := *buffer
	if len(b) == cap(b) {
		grow := min(MinGrow, math.MaxInt-len(b))
		if grow == 0 {
			return nil
		}
		b = slices.Grow(b, grow)
		*buffer = b
	}
	return b[len(b):cap(b)]
}

// Advance extends the written length by n. If n exceeds the unwritten
// tail, at least n bytes are reserved first; written bytes are kept.
// It panics with an error wrapping ErrAdvance if n is negative or larger
// than Remaining.
func (buffer *Buffer) Advance(n int) {
	b := *buffer
	if remaining := math.MaxInt - len(b); n < 0 || n > remaining {
		panic(errAdvance(n, remaining))
	}
	if n > cap(b)-len(b) {
		b = slices.Grow(b, n)
	}
	*buffer = b[:len(b)+n]
}

// Reserve makes room for at least n more bytes without changing the
// written length. It never shrinks the allocation.
func (buffer *Buffer) Reserve(n int) {
	*buffer = slices.Grow(*buffer, n)
}

// Bytes returns the written bytes. The slice aliases the buffer until the
// next growth.
func (buffer Buffer) Bytes() []byte {
	return buffer
}

func (buffer Buffer) Len() int { return len(buffer) }
func (buffer Buffer) Cap() int { return cap(buffer) }

// Reset discards the written bytes and keeps the allocation.
func (buffer *Buffer) Reset() {
	*buffer = (*buffer)[:0]
}
