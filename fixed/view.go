// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

// Package fixed provides a write cursor over a byte region owned by the
// caller.
package fixed

import "github.com/dacapoday/cursor"

// View is a write cursor over a fixed region. Its length is the remaining
// capacity; every Advance reslices it past the written bytes. A View never
// allocates and never writes outside the region it was created from.
//
//	buf := make([]byte, 6)
//	view := fixed.View(buf)
//	cursor.PutSlice(&view, []byte("hello")) // buf[:5] == "hello", view.Remaining() == 1
type View []byte

var _ cursor.Writer = (*View)(nil)

// New returns a View over p. Capacity beyond len(p) is not reachable
// through the View.
func New(p []byte) *View {
	view := View(p[:len(p):len(p)])
	return &view
}

// Remaining returns the length of the unwritten part of the region.
func (view *View) Remaining() int {
	return len(*view)
}

// Writable returns the unwritten part of the region.
func (view *View) Writable() []byte {
	return *view
}

// Advance skips n written bytes. It panics with an error wrapping
// ErrAdvance if n is negative or larger than Remaining.
func (view *View) Advance(n int) {
	v := *view
	if n < 0 || n > len(v) {
		panic(errAdvance(n, len(v)))
	}
	*view = v[n:]
}
