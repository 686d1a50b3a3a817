package grow

import (
	"math"
	"testing"

	"github.com/dacapoday/cursor"
	"github.com/stretchr/testify/require"
)

func catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = r.(error)
		}
	}()
	fn()
	return
}

func TestBufferRemaining(t *testing.T) {
	var buf Buffer
	require.Equal(t, math.MaxInt, buf.Remaining())

	cursor.PutSlice(&buf, []byte("abc"))
	require.Equal(t, math.MaxInt-3, buf.Remaining())
	require.Equal(t, 3, buf.Len())
}

func TestBufferWritableGrowsWhenFull(t *testing.T) {
	var buf Buffer
	p := buf.Writable()
	require.GreaterOrEqual(t, len(p), MinGrow)
	require.Equal(t, 0, buf.Len())

	// peeking again does not grow further
	capacity := buf.Cap()
	require.Len(t, buf.Writable(), capacity)
	require.Equal(t, capacity, buf.Cap())
}

func TestBufferWritableIsTail(t *testing.T) {
	buf := New(16)
	cursor.PutSlice(buf, []byte("0123456789"))

	p := buf.Writable()
	require.Len(t, p, buf.Cap()-10)

	copy(p, "ab")
	buf.Advance(2)
	require.Equal(t, []byte("0123456789ab"), buf.Bytes())
}

func TestBufferAdvanceBeyondSlack(t *testing.T) {
	buf := New(4)
	copy(buf.Writable(), "abcd")
	buf.Advance(4)

	buf.Advance(100)
	require.Equal(t, 104, buf.Len())
	require.GreaterOrEqual(t, buf.Cap(), 104)
	require.Equal(t, []byte("abcd"), buf.Bytes()[:4])
}

func TestBufferAdvanceOutOfRange(t *testing.T) {
	var buf Buffer
	cursor.PutUint8(&buf, 1)

	require.ErrorIs(t, catch(func() { buf.Advance(-1) }), ErrAdvance)
	require.ErrorIs(t, catch(func() { buf.Advance(math.MaxInt) }), ErrAdvance)
	require.Equal(t, 1, buf.Len())

	require.NoError(t, catch(func() { buf.Advance(0) }))
	require.Equal(t, 1, buf.Len())
}

func TestBufferGrowthKeepsBytes(t *testing.T) {
	var buf Buffer
	var want []byte
	for i := 0; i < 1000; i++ {
		cursor.PutUint8(&buf, byte(i))
		want = append(want, byte(i))
	}
	require.Equal(t, want, buf.Bytes())
}

func TestBufferReserveAndReset(t *testing.T) {
	var buf Buffer
	cursor.PutSlice(&buf, []byte("hello"))

	buf.Reserve(1000)
	require.GreaterOrEqual(t, buf.Cap(), 1005)
	require.Equal(t, []byte("hello"), buf.Bytes())

	capacity := buf.Cap()
	buf.Reserve(1)
	require.Equal(t, capacity, buf.Cap())

	buf.Reset()
	require.Equal(t, 0, buf.Len())
	require.Equal(t, capacity, buf.Cap())
}
