package cursor_test

import (
	"bytes"
	"testing"

	"github.com/dacapoday/cursor"
	"github.com/dacapoday/cursor/fixed"
	"github.com/dacapoday/cursor/grow"
	"github.com/dacapoday/cursor/mem"
	"github.com/stretchr/testify/require"
)

func TestPutSliceFixedFits(t *testing.T) {
	buf := make([]byte, 6)
	view := fixed.View(buf)

	cursor.PutSlice(&view, []byte("hello"))

	require.Equal(t, 1, view.Remaining())
	require.Equal(t, []byte("hello"), buf[:5])
}

func TestPutSliceFixedOverflow(t *testing.T) {
	buf := []byte("abcde")
	view := fixed.View(buf)

	err := catch(func() { cursor.PutSlice(&view, []byte("hello world")) })
	require.ErrorIs(t, err, cursor.ErrOverflow)
	require.Equal(t, 5, view.Remaining())
	require.Equal(t, []byte("abcde"), buf)
}

func TestPutSliceRemainingDecreases(t *testing.T) {
	buf := make([]byte, 32)
	view := fixed.View(buf)

	var written []byte
	for _, s := range [][]byte{[]byte("a"), nil, []byte("bcd"), sequence(20)} {
		before := view.Remaining()
		cursor.PutSlice(&view, s)
		require.Equal(t, before-len(s), view.Remaining())
		written = append(written, s...)
	}
	require.Equal(t, written, buf[:len(written)])
}

func TestPutSliceGrowOneByOne(t *testing.T) {
	data := sequence(1000)

	var single grow.Buffer
	for i := range data {
		cursor.PutSlice(&single, data[i:i+1])
	}

	var bulk grow.Buffer
	cursor.PutSlice(&bulk, data)

	require.Equal(t, data, single.Bytes())
	require.Equal(t, data, bulk.Bytes())
}

func TestPutSliceFragmentedDestination(t *testing.T) {
	buf, err := mem.New(mem.Segment(16))
	require.NoError(t, err)

	data := sequence(100)
	cursor.PutSlice(buf, data[:7])
	cursor.PutSlice(buf, data[7:])

	require.EqualValues(t, 100, buf.Size())
	require.Equal(t, data, buf.Bytes())
}

func TestPutFromFragmentedSource(t *testing.T) {
	data := sequence(50)
	src := &chunkReader{data: data, size: 3}

	buf := make([]byte, 64)
	view := fixed.View(buf)
	cursor.PutFrom(&view, src)

	require.Equal(t, 0, src.Remaining())
	require.Equal(t, 14, view.Remaining())
	require.Equal(t, data, buf[:50])
}

func TestPutFromBothSidesFragmented(t *testing.T) {
	data := sequence(200)

	src, err := mem.New(mem.Segment(24))
	require.NoError(t, err)
	cursor.PutSlice(src, data)

	dst, err := mem.New(mem.Segment(17))
	require.NoError(t, err)
	cursor.PutUint8(dst, 0xff)

	r := src.Reader()
	cursor.PutFrom(dst, r)

	require.Equal(t, 0, r.Remaining())
	require.Equal(t, append([]byte{0xff}, data...), dst.Bytes())
}

func TestPutFromOverflow(t *testing.T) {
	src := &chunkReader{data: []byte("hello world"), size: 4}
	buf := []byte("12345")
	view := fixed.View(buf)

	err := catch(func() { cursor.PutFrom(&view, src) })
	require.ErrorIs(t, err, cursor.ErrOverflow)
	require.Equal(t, 11, src.Remaining())
	require.Equal(t, 5, view.Remaining())
	require.Equal(t, []byte("12345"), buf)
}

func TestPutFromEmptySource(t *testing.T) {
	view := fixed.View(nil)
	cursor.PutFrom(&view, &chunkReader{size: 1})
	require.Equal(t, 0, view.Remaining())
}

func TestPutBytes(t *testing.T) {
	buf, err := mem.New(mem.Segment(16))
	require.NoError(t, err)

	cursor.PutBytes(buf, 'x', 40)
	require.Equal(t, bytes.Repeat([]byte("x"), 40), buf.Bytes())

	view := fixed.View(make([]byte, 3))
	err = catch(func() { cursor.PutBytes(&view, 'x', 4) })
	require.ErrorIs(t, err, cursor.ErrOverflow)
	require.Equal(t, 3, view.Remaining())

	err = catch(func() { cursor.PutBytes(&view, 'x', -1) })
	require.ErrorIs(t, err, cursor.ErrOverflow)
}

func TestPutFromEmptyChunk(t *testing.T) {
	src := &chunkReader{data: []byte("abc"), size: 0}
	buf := []byte("-----")
	view := fixed.View(buf)

	err := catch(func() { cursor.PutFrom(&view, src) })
	require.ErrorIs(t, err, cursor.ErrEmptyChunk)
	require.Equal(t, 3, src.Remaining())
	require.Equal(t, 5, view.Remaining())
	require.Equal(t, []byte("-----"), buf)
}
