// Package lane implements byte-parallel arithmetic over a 16-byte vector.
// A Vec models one 128-bit register and every operation works on all 16
// byte lanes at once, so the cube algebra above it is written as vector
// operations. Builds with GOEXPERIMENT=simd on amd64 run them on
// simd/archsimd; every other build uses SWAR (SIMD within a register)
// tricks on two uint64 words.
package lane

import "encoding/binary"

// Vec is a 16-byte vector. Byte 0 is the lowest lane.
type Vec [16]byte

const (
	hiBits  = 0x8080808080808080
	loBits  = 0x0101010101010101
	low7    = 0x7f7f7f7f7f7f7f7f
	gather8 = 0x0102040810204080
)

// FromWords builds a vector from its low and high 64-bit halves
// (little-endian byte order).
func FromWords(lo, hi uint64) Vec {
	var v Vec
	binary.LittleEndian.PutUint64(v[0:8], lo)
	binary.LittleEndian.PutUint64(v[8:16], hi)
	return v
}

// Words returns the low and high 64-bit halves of v.
func (v Vec) Words() (lo, hi uint64) {
	return binary.LittleEndian.Uint64(v[0:8]), binary.LittleEndian.Uint64(v[8:16])
}

// Identity returns the vector whose byte i equals i.
func Identity() Vec {
	return FromWords(0x0706050403020100, 0x0f0e0d0c0b0a0908)
}

// Splat broadcasts b to every byte.
func Splat(b byte) Vec {
	w := uint64(b) * loBits
	return FromWords(w, w)
}

// Splat32 broadcasts x to every 32-bit element.
func Splat32(x uint32) Vec {
	w := uint64(x) | uint64(x)<<32
	return FromWords(w, w)
}

// Splat64 broadcasts x to both 64-bit elements.
func Splat64(x uint64) Vec {
	return FromWords(x, x)
}

// AddWrap adds o to v bytewise and folds each byte back below carry:
// min(v+o, v+o-carry). The result stays exact as long as v+o < 2*carry.
func AddWrap(v, o, carry Vec) Vec {
	s := Add(v, o)
	return MinU8(s, Sub(s, carry))
}

// SubWrap is the subtracting counterpart of AddWrap:
// min(v-o, v-o+carry).
func SubWrap(v, o, carry Vec) Vec {
	d := Sub(v, o)
	return MinU8(d, Add(d, carry))
}

func moveMask8(x uint64) uint8 {
	return uint8(((x & hiBits) >> 7) * gather8 >> 56)
}
