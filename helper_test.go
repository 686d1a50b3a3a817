package cursor_test

import (
	"fmt"
)

// catch runs fn and returns the error it panicked with, if any.
func catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			var ok bool
			if err, ok = r.(error); !ok {
				err = fmt.Errorf("%v", r)
			}
		}
	}()
	fn()
	return nil
}

// chunkReader is a read cursor that hands out at most size bytes per chunk.
type chunkReader struct {
	data []byte
	size int
}

func (r *chunkReader) Remaining() int { return len(r.data) }

func (r *chunkReader) Chunk() []byte {
	return r.data[:min(r.size, len(r.data))]
}

func (r *chunkReader) Advance(n int) { r.data = r.data[n:] }

// sequence returns n bytes counting up from 0.
func sequence(n int) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = byte(i)
	}
	return p
}
