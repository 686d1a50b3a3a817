// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package cursor

import (
	"encoding/binary"
	"fmt"
	"math"

	"golang.org/x/sys/cpu"
)

// nativeEndian is the byte order of the running CPU.
var nativeEndian binary.AppendByteOrder = func() binary.AppendByteOrder {
	if cpu.IsBigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}()

// Uint128 is an unsigned 128-bit integer split into two 64-bit halves.
type Uint128 struct {
	Hi, Lo uint64
}

// Int128 is a two's complement signed 128-bit integer split into halves.
type Int128 struct {
	Hi int64
	Lo uint64
}

// Uint128Of zero-extends v.
func Uint128Of(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// Int128Of sign-extends v.
func Int128Of(v int64) Int128 {
	return Int128{Hi: v >> 63, Lo: uint64(v)}
}

func PutUint8[W Writer](w W, v uint8) {
	b := [1]byte{v}
	PutSlice(w, b[:])
}

func PutInt8[W Writer](w W, v int8) {
	PutUint8(w, uint8(v))
}

// PutUint16 writes v in big-endian byte order.
func PutUint16[W Writer](w W, v uint16) {
	var b [2]byte
	PutSlice(w, binary.BigEndian.AppendUint16(b[:0], v))
}

// PutUint16LE writes v in little-endian byte order.
func PutUint16LE[W Writer](w W, v uint16) {
	var b [2]byte
	PutSlice(w, binary.LittleEndian.AppendUint16(b[:0], v))
}

// PutUint16NE writes v in the byte order of the running CPU.
func PutUint16NE[W Writer](w W, v uint16) {
	var b [2]byte
	PutSlice(w, nativeEndian.AppendUint16(b[:0], v))
}

func PutInt16[W Writer](w W, v int16)   { PutUint16(w, uint16(v)) }
func PutInt16LE[W Writer](w W, v int16) { PutUint16LE(w, uint16(v)) }
func PutInt16NE[W Writer](w W, v int16) { PutUint16NE(w, uint16(v)) }

// PutUint32 writes v in big-endian byte order.
func PutUint32[W Writer](w W, v uint32) {
	var b [4]byte
	PutSlice(w, binary.BigEndian.AppendUint32(b[:0], v))
}

// PutUint32LE writes v in little-endian byte order.
func PutUint32LE[W Writer](w W, v uint32) {
	var b [4]byte
	PutSlice(w, binary.LittleEndian.AppendUint32(b[:0], v))
}

// PutUint32NE writes v in the byte order of the running CPU.
func PutUint32NE[W Writer](w W, v uint32) {
	var b [4]byte
	PutSlice(w, nativeEndian.AppendUint32(b[:0], v))
}

func PutInt32[W Writer](w W, v int32)   { PutUint32(w, uint32(v)) }
func PutInt32LE[W Writer](w W, v int32) { PutUint32LE(w, uint32(v)) }
func PutInt32NE[W Writer](w W, v int32) { PutUint32NE(w, uint32(v)) }

// PutUint64 writes v in big-endian byte order.
func PutUint64[W Writer](w W, v uint64) {
	var b [8]byte
	PutSlice(w, binary.BigEndian.AppendUint64(b[:0], v))
}

// PutUint64LE writes v in little-endian byte order.
func PutUint64LE[W Writer](w W, v uint64) {
	var b [8]byte
	PutSlice(w, binary.LittleEndian.AppendUint64(b[:0], v))
}

// PutUint64NE writes v in the byte order of the running CPU.
func PutUint64NE[W Writer](w W, v uint64) {
	var b [8]byte
	PutSlice(w, nativeEndian.AppendUint64(b[:0], v))
}

func PutInt64[W Writer](w W, v int64)   { PutUint64(w, uint64(v)) }
func PutInt64LE[W Writer](w W, v int64) { PutUint64LE(w, uint64(v)) }
func PutInt64NE[W Writer](w W, v int64) { PutUint64NE(w, uint64(v)) }

// PutUint128 writes v big-endian: Hi then Lo, each big-endian.
func PutUint128[W Writer](w W, v Uint128) {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], v.Hi)
	binary.BigEndian.PutUint64(b[8:], v.Lo)
	PutSlice(w, b[:])
}

// PutUint128LE writes v little-endian: Lo then Hi, each little-endian.
func PutUint128LE[W Writer](w W, v Uint128) {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[:8], v.Lo)
	binary.LittleEndian.PutUint64(b[8:], v.Hi)
	PutSlice(w, b[:])
}

func PutUint128NE[W Writer](w W, v Uint128) {
	if cpu.IsBigEndian {
		PutUint128(w, v)
	} else {
		PutUint128LE(w, v)
	}
}

func PutInt128[W Writer](w W, v Int128)   { PutUint128(w, Uint128{uint64(v.Hi), v.Lo}) }
func PutInt128LE[W Writer](w W, v Int128) { PutUint128LE(w, Uint128{uint64(v.Hi), v.Lo}) }
func PutInt128NE[W Writer](w W, v Int128) { PutUint128NE(w, Uint128{uint64(v.Hi), v.Lo}) }

// PutFloat32 writes the IEEE-754 bits of v big-endian. NaN payloads are
// written as they are.
func PutFloat32[W Writer](w W, v float32)   { PutUint32(w, math.Float32bits(v)) }
func PutFloat32LE[W Writer](w W, v float32) { PutUint32LE(w, math.Float32bits(v)) }
func PutFloat32NE[W Writer](w W, v float32) { PutUint32NE(w, math.Float32bits(v)) }

// PutFloat64 writes the IEEE-754 bits of v big-endian. NaN payloads are
// written as they are.
func PutFloat64[W Writer](w W, v float64)   { PutUint64(w, math.Float64bits(v)) }
func PutFloat64LE[W Writer](w W, v float64) { PutUint64LE(w, math.Float64bits(v)) }
func PutFloat64NE[W Writer](w W, v float64) { PutUint64NE(w, math.Float64bits(v)) }

// PutUint writes the low nbytes bytes of v in big-endian byte order.
// Higher bytes of v are dropped. nbytes must be in [0, 8]; otherwise
// PutUint panics with an error wrapping ErrWidth.
//
//	PutUint(w, 0x010203, 3) // writes 01 02 03
func PutUint[W Writer](w W, v uint64, nbytes int) {
	checkWidth(nbytes)
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	PutSlice(w, b[8-nbytes:])
}

// PutUintLE writes the low nbytes bytes of v in little-endian byte order.
func PutUintLE[W Writer](w W, v uint64, nbytes int) {
	checkWidth(nbytes)
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	PutSlice(w, b[:nbytes])
}

// PutInt writes the low nbytes bytes of the two's complement form of v in
// big-endian byte order.
func PutInt[W Writer](w W, v int64, nbytes int) {
	PutUint(w, uint64(v), nbytes)
}

// PutIntLE writes the low nbytes bytes of the two's complement form of v
// in little-endian byte order.
func PutIntLE[W Writer](w W, v int64, nbytes int) {
	PutUintLE(w, uint64(v), nbytes)
}

func checkWidth(nbytes int) {
	if nbytes < 0 || nbytes > 8 {
		panic(fmt.Errorf("%w: %d not in [0, 8]", ErrWidth, nbytes))
	}
}
