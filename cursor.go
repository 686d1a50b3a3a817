// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

// Package cursor defines write cursors: destinations that accept bytes at a
// current position without revealing whether the storage behind them is a
// fixed region or a growable store.
//
// Implementations live in sub-packages (fixed, grow, mem). The functions of
// this package (PutSlice, PutFrom, PutUint32, ...) are built only on the
// three methods of Writer and work with any of them.
package cursor

// Writer is a write cursor over a byte destination.
//
// The *fixed.View, *grow.Buffer and *mem.Buffer types satisfy this interface.
// A Writer is exclusive write access to its destination and is not safe for
// concurrent use.
type Writer interface {
	// Remaining returns the number of bytes that can still be written
	// before the destination is exhausted. Growable stores report
	// math.MaxInt minus their length.
	Remaining() int

	// Writable returns the region at the current position that may be
	// written next. Its length is in [0, Remaining()] and it is empty
	// only when Remaining() is 0. It may be shorter than Remaining() when
	// the storage is not contiguous.
	//
	// The content of the region is unspecified. The region is invalid
	// after the next call that may grow the storage (Advance, Writable).
	Writable() []byte

	// Advance moves the position forward by n bytes, which the caller has
	// written into the region returned by Writable. Bytes not written
	// keep whatever content the storage held.
	//
	// Advance(0) is a no-op. Advance panics with an error wrapping
	// ErrAdvance if n is negative or greater than Remaining(); no
	// implementation clamps.
	Advance(n int)
}

// VectoredWriter is a Writer that can hand out several disjoint writable
// regions at once.
type VectoredWriter interface {
	Writer

	// WritableVectored stores up to len(dst) writable regions in dst, in
	// write order, and returns how many were stored. Entries past the
	// returned count are left untouched.
	WritableVectored(dst [][]byte) int
}

// Reader is the read cursor consumed by PutFrom.
type Reader interface {
	// Remaining returns the number of bytes left to read.
	Remaining() int

	// Chunk returns the readable region at the current position.
	// Its length is in [0, Remaining()] and it is empty only when
	// Remaining() is 0.
	Chunk() []byte

	// Advance consumes n bytes.
	Advance(n int)
}
