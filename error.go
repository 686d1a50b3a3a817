package cursor

import (
	"errors"
	"fmt"
)

var (
	ErrOverflow           = errors.New("buffer overflow")
	ErrAdvance            = errors.New("advance out of range")
	ErrWidth              = errors.New("invalid byte width")
	ErrEmptyChunk         = errors.New("empty chunk")
	ErrInvalidSegmentSize = errors.New("invalid segment size")
)

func errOverflow(need, remaining int) error {
	return fmt.Errorf("%w: need %d, remaining %d", ErrOverflow, need, remaining)
}

func errAdvance(n, remaining int) error {
	return fmt.Errorf("%w: advance %d, remaining %d", ErrAdvance, n, remaining)
}
