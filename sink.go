// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package cursor

import "io"

// Sink exposes a Writer as an io.Writer.
//
// Writes never partially succeed: a write that does not fit returns
// ErrOverflow and leaves the cursor unchanged. This differs from PutSlice
// and the encoders, which panic on the same condition; a Sink reports it
// as an ordinary error so it can be handed to io.Copy, fmt.Fprintf and
// other io.Writer consumers.
type Sink[W Writer] struct {
	w W
}

var (
	_ io.Writer       = (*Sink[Writer])(nil)
	_ io.ByteWriter   = (*Sink[Writer])(nil)
	_ io.StringWriter = (*Sink[Writer])(nil)
	_ io.ReaderFrom   = (*Sink[Writer])(nil)
)

// NewSink returns a Sink writing into w.
func NewSink[W Writer](w W) *Sink[W] {
	return &Sink[W]{w: w}
}

// Cursor returns the wrapped cursor.
func (sink *Sink[W]) Cursor() W {
	return sink.w
}

// Write writes p into the cursor and returns len(p), or 0 and ErrOverflow
// if p does not fit.
func (sink *Sink[W]) Write(p []byte) (n int, err error) {
	if len(p) > sink.w.Remaining() {
		return 0, ErrOverflow
	}
	PutSlice(sink.w, p)
	return len(p), nil
}

func (sink *Sink[W]) WriteByte(c byte) error {
	if sink.w.Remaining() == 0 {
		return ErrOverflow
	}
	PutUint8(sink.w, c)
	return nil
}

func (sink *Sink[W]) WriteString(s string) (n int, err error) {
	if len(s) > sink.w.Remaining() {
		return 0, ErrOverflow
	}
	n = len(s)
	for len(s) > 0 {
		c := Fill(sink.w, func(dst []byte) int {
			return copy(dst, s)
		})
		s = s[c:]
	}
	return
}

// ReadFrom reads from r straight into the writable regions of the cursor
// until io.EOF, which is not returned as an error.
//
// If the cursor is exhausted while r still has data, ReadFrom returns
// ErrOverflow. To tell that apart from EOF it reads one more byte: when r
// implements io.ByteScanner the byte is unread and stays in r, otherwise
// the byte is consumed from r and lost. Wrap r in a bufio.Reader to keep it.
func (sink *Sink[W]) ReadFrom(r io.Reader) (n int64, err error) {
	for {
		if sink.w.Remaining() == 0 {
			more, err := hasMore(r)
			if err != nil {
				return n, err
			}
			if more {
				return n, ErrOverflow
			}
			return n, nil
		}
		var rerr error
		c := Fill(sink.w, func(dst []byte) int {
			var c int
			c, rerr = r.Read(dst)
			return c
		})
		n += int64(c)
		if rerr == io.EOF {
			return n, nil
		}
		if rerr != nil {
			return n, rerr
		}
	}
}

// hasMore reports whether r has at least one more byte, unreading it when
// r allows.
func hasMore(r io.Reader) (bool, error) {
	if s, ok := r.(io.ByteScanner); ok {
		_, err := s.ReadByte()
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return true, s.UnreadByte()
	}
	var probe [1]byte
	for {
		c, err := r.Read(probe[:])
		if c > 0 {
			return true, nil
		}
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, err
		}
	}
}
