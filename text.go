package cursor

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// PutText writes s into w encoded with enc, such as
// charmap.Windows1252. A nil enc writes s as UTF-8.
//
// The whole string is encoded before anything is written, so an
// unrepresentable rune or a capacity violation returns an error with w
// unchanged. PutText returns the number of encoded bytes written.
func PutText[W Writer](w W, s string, enc encoding.Encoding) (n int, err error) {
	if enc != nil {
		s, _, err = transform.String(enc.NewEncoder(), s)
		if err != nil {
			return 0, fmt.Errorf("encode text: %w", err)
		}
	}
	if remaining := w.Remaining(); len(s) > remaining {
		return 0, errOverflow(len(s), remaining)
	}
	return NewSink(w).WriteString(s)
}
