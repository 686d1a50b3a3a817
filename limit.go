package cursor

// Limited forwards to a wrapped Writer but accepts at most a fixed number
// of further bytes.
//
// While a Limited is in use it is the only path through which the wrapped
// cursor should be advanced.
type Limited[W Writer] struct {
	w W
	n int
}

var _ VectoredWriter = (*Limited[Writer])(nil)

// Limit wraps w so that at most n more bytes can be written through it.
// A negative n is treated as 0.
func Limit[W Writer](w W, n int) *Limited[W] {
	return &Limited[W]{w: w, n: max(n, 0)}
}

// Unwrap returns the wrapped cursor.
func (l *Limited[W]) Unwrap() W {
	return l.w
}

// Limit returns how many bytes may still pass through l.
func (l *Limited[W]) Limit() int {
	return l.n
}

func (l *Limited[W]) Remaining() int {
	return min(l.w.Remaining(), l.n)
}

func (l *Limited[W]) Writable() []byte {
	if l.n == 0 {
		return nil
	}
	p := l.w.Writable()
	if len(p) > l.n {
		p = p[:l.n]
	}
	return p
}

func (l *Limited[W]) Advance(n int) {
	if remaining := l.Remaining(); n < 0 || n > remaining {
		panic(errAdvance(n, remaining))
	}
	l.w.Advance(n)
	l.n -= n
}

// WritableVectored forwards to the wrapped cursor and trims the regions to
// the limit. Regions are requested one more at a time until they cover the
// limit, so the wrapped cursor is never asked for space past it. Entries of
// dst past the returned count are left untouched.
func (l *Limited[W]) WritableVectored(dst [][]byte) int {
	if l.n == 0 || len(dst) == 0 {
		return 0
	}
	scratch := make([][]byte, len(dst))
	count := 0
	for k := 1; k <= len(dst); k++ {
		count = WritableVectored(l.w, scratch[:k])
		total := 0
		for _, p := range scratch[:count] {
			total += len(p)
		}
		if total >= l.n || count < k {
			break
		}
	}
	left := l.n
	for i, p := range scratch[:count] {
		if len(p) >= left {
			dst[i] = p[:left]
			return i + 1
		}
		dst[i] = p
		left -= len(p)
	}
	return count
}
