// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

// Package mem provides a segmented in-memory write cursor.
package mem

import (
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/dacapoday/cursor"
)

// maxVectors bounds how many segments one WritableVectored call may
// allocate ahead of the write position.
const maxVectors = 16

// Buffer is a write cursor that stores data in equal-sized segments.
// Its writable region is the free tail of the current segment, so a large
// write is spread over several regions; WritableVectored exposes more than
// one of them at once. Written bytes never move.
//
// Buffer requires no initialization - just declare and use:
//
//	var b mem.Buffer
//	cursor.PutSlice(&b, []byte("hello"))
//
// A Buffer is not safe for concurrent use.
type Buffer struct {
	segments segments
	cur      int // first segment with free space; segments after it are empty
	size     int
	segSize  int
}

var (
	_ cursor.VectoredWriter = (*Buffer)(nil)
	_ io.ReaderAt           = (*Buffer)(nil)
	_ io.WriterTo           = (*Buffer)(nil)
)

// New returns an empty Buffer configured by opt.
// If opt implements SegmentSize, that size is used for every segment;
// otherwise DefaultSegmentSize applies.
func New(opt any) (*Buffer, error) {
	buffer := new(Buffer)
	if o, ok := opt.(SegmentSize); ok {
		size := o.SegmentSize()
		if size < MinSegmentSize || size > MaxSegmentSize {
			return nil, fmt.Errorf("%d is %w", size, ErrInvalidSegmentSize)
		}
		buffer.segSize = size
	}
	return buffer, nil
}

func (buffer *Buffer) segmentSize() int {
	if buffer.segSize == 0 {
		return DefaultSegmentSize
	}
	return buffer.segSize
}

// Size returns the number of bytes written.
func (buffer *Buffer) Size() int64 {
	return int64(buffer.size)
}

// Remaining returns math.MaxInt minus the written size.
func (buffer *Buffer) Remaining() int {
	return math.MaxInt - buffer.size
}

// Writable returns the free tail of the current segment, allocating a
// segment when every existing one is full.
func (buffer *Buffer) Writable() []byte {
	if buffer.size == math.MaxInt {
		return nil
	}
	return buffer.segments.free(buffer.at(buffer.cur))
}

// WritableVectored stores the free tail of the current segment in dst[0]
// and whole free segments in the following entries, allocating up to a
// small bound of segments ahead. It returns the number of entries stored.
func (buffer *Buffer) WritableVectored(dst [][]byte) int {
	if len(dst) == 0 || buffer.size == math.MaxInt {
		return 0
	}
	n := min(len(dst), maxVectors)
	for i := 0; i < n; i++ {
		dst[i] = buffer.segments.free(buffer.at(buffer.cur + i))
	}
	return n
}

// Advance marks n bytes after the write position as written, moving
// through as many segments as needed and allocating the missing ones.
// It panics with an error wrapping ErrAdvance if n is negative or larger
// than Remaining.
func (buffer *Buffer) Advance(n int) {
	if remaining := buffer.Remaining(); n < 0 || n > remaining {
		panic(errAdvance(n, remaining))
	}
	buffer.size += n
	for n > 0 {
		idx := buffer.at(buffer.cur)
		c := buffer.segments.extend(idx, n)
		n -= c
		if buffer.segments.full(idx) {
			buffer.cur++
		}
	}
}

// at returns idx after making sure segment idx exists.
func (buffer *Buffer) at(idx int) int {
	for len(buffer.segments) <= idx {
		buffer.segments = append(buffer.segments, make([]byte, 0, buffer.segmentSize()))
	}
	return idx
}

// Reset discards all data and releases the segments.
func (buffer *Buffer) Reset() {
	buffer.segments = nil
	buffer.cur = 0
	buffer.size = 0
}

// Bytes returns a copy of the written data.
func (buffer *Buffer) Bytes() []byte {
	data := make([]byte, 0, buffer.size)
	for _, seg := range buffer.segments[:buffer.written()] {
		data = append(data, seg...)
	}
	return data
}

// WriteTo writes the written data to w, segment by segment.
// It implements io.WriterTo interface.
func (buffer *Buffer) WriteTo(w io.Writer) (n int64, err error) {
	for _, seg := range buffer.segments[:buffer.written()] {
		c, err := w.Write(seg)
		n += int64(c)
		if err != nil {
			return n, err
		}
	}
	return
}

// ReadAt reads len(p) bytes of written data starting at offset off.
// It implements io.ReaderAt interface.
func (buffer *Buffer) ReadAt(p []byte, off int64) (n int, err error) {
	if off < 0 {
		return 0, io.ErrUnexpectedEOF
	}
	if len(p) == 0 {
		return 0, nil
	}
	if off >= int64(buffer.size) {
		return 0, io.EOF
	}
	size := int64(buffer.segmentSize())
	idx := int(off / size)
	data := buffer.segments[idx][off%size:]
	for {
		c := copy(p, data)
		n += c
		if c == len(p) {
			return n, nil
		}
		p = p[c:]
		idx++
		if idx == buffer.written() {
			return n, io.EOF
		}
		data = buffer.segments[idx]
	}
}

// Reader returns a read cursor over the data written so far. Later writes
// to the buffer are not visible through it.
func (buffer *Buffer) Reader() *Reader {
	return &Reader{
		segments: slices.Clone(buffer.segments[:buffer.written()]),
		rem:      buffer.size,
	}
}

// written returns the number of segments holding data.
func (buffer *Buffer) written() int {
	if buffer.cur < len(buffer.segments) && len(buffer.segments[buffer.cur]) > 0 {
		return buffer.cur + 1
	}
	return min(buffer.cur, len(buffer.segments))
}

type segments [][]byte

func (s segments) free(idx int) []byte {
	seg := s[idx]
	return seg[len(seg):cap(seg)]
}

func (s segments) full(idx int) bool {
	return len(s[idx]) == cap(s[idx])
}

// extend marks up to n free bytes of segment idx as written and returns
// how many were taken.
func (s segments) extend(idx, n int) int {
	seg := s[idx]
	c := min(n, cap(seg)-len(seg))
	s[idx] = seg[:len(seg)+c]
	return c
}

// Reader is a read cursor over the segments of a Buffer.
// Its chunks follow the segment boundaries.
type Reader struct {
	segments segments
	off      int
	rem      int
}

var (
	_ cursor.Reader = (*Reader)(nil)
	_ io.Reader     = (*Reader)(nil)
)

func (r *Reader) Remaining() int {
	return r.rem
}

// Chunk returns the unread part of the current segment.
func (r *Reader) Chunk() []byte {
	for len(r.segments) > 0 && r.off == len(r.segments[0]) {
		r.segments = r.segments[1:]
		r.off = 0
	}
	if len(r.segments) == 0 {
		return nil
	}
	return r.segments[0][r.off:]
}

// Advance consumes n bytes. It panics with an error wrapping ErrAdvance if
// n is negative or larger than Remaining.
func (r *Reader) Advance(n int) {
	if n < 0 || n > r.rem {
		panic(errAdvance(n, r.rem))
	}
	r.rem -= n
	for n > 0 {
		seg := r.segments[0]
		c := min(n, len(seg)-r.off)
		r.off += c
		n -= c
		if r.off == len(seg) {
			r.segments = r.segments[1:]
			r.off = 0
		}
	}
}

// Read copies unread data into p and consumes it.
// It implements io.Reader interface.
func (r *Reader) Read(p []byte) (n int, err error) {
	if r.rem == 0 {
		return 0, io.EOF
	}
	n = copy(p, r.Chunk())
	r.Advance(n)
	return n, nil
}
