package mem

// SegmentSize sets the size of each segment a Buffer allocates.
type SegmentSize interface {
	SegmentSize() int
}

// Segment is an option that implements SegmentSize.
type Segment int

func (s Segment) SegmentSize() int { return int(s) }

const (
	DefaultSegmentSize = 32 * 1024
	MinSegmentSize     = 16
	MaxSegmentSize     = 1 << 30
)
