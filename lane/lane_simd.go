//go:build goexperiment.simd && amd64

package lane

import "simd/archsimd"

var (
	signBit   = archsimd.BroadcastUint8x16(0x80)
	topIndex  = archsimd.BroadcastUint8x16(0x0f)
	identityV = archsimd.LoadUint8x16(&[16]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15})
)

func load(v Vec) archsimd.Uint8x16 {
	return archsimd.LoadUint8x16((*[16]uint8)(&v))
}

func store(x archsimd.Uint8x16) Vec {
	var v Vec
	x.Store((*[16]uint8)(&v))
	return v
}

func maskVec(m archsimd.Mask8x16) Vec {
	return store(m.ToInt8x16().AsUint8x16())
}

func And(a, b Vec) Vec {
	return store(load(a).And(load(b)))
}

func Or(a, b Vec) Vec {
	return store(load(a).Or(load(b)))
}

func Xor(a, b Vec) Vec {
	return store(load(a).Xor(load(b)))
}

// Add adds bytewise, wrapping mod 256 in each lane.
func Add(a, b Vec) Vec {
	return store(load(a).Add(load(b)))
}

// Sub subtracts bytewise, wrapping mod 256 in each lane.
func Sub(a, b Vec) Vec {
	return store(load(a).Sub(load(b)))
}

// MinU8 returns the bytewise unsigned minimum.
func MinU8(a, b Vec) Vec {
	return store(load(a).Min(load(b)))
}

// CmpEq sets a byte to 0xff where a and b are equal, else 0.
func CmpEq(a, b Vec) Vec {
	return maskVec(load(a).Equal(load(b)))
}

// CmpGt sets a byte to 0xff where a > b (unsigned).
func CmpGt(a, b Vec) Vec {
	return maskVec(load(a).Greater(load(b)))
}

// MoveMask gathers the top bit of every byte into a 16-bit mask.
func MoveMask(v Vec) uint16 {
	return load(v).And(signBit).Equal(signBit).ToBits()
}

// Shuffle selects bytes of v by idx: byte i of the result is v[idx[i]&0x0f],
// or 0 when idx[i] has its top bit set.
func Shuffle(v, idx Vec) Vec {
	return store(load(v).PermuteOrZero(load(idx).AsInt8x16()))
}

// inRange turns byte indices into PermuteOrZero selectors: indices above 15
// get their sign bit set so they pick zero.
func inRange(idx archsimd.Uint8x16) archsimd.Int8x16 {
	out := idx.Greater(topIndex).ToInt8x16().AsUint8x16().And(signBit)
	return idx.Or(out).AsInt8x16()
}

// ShiftLeftBytes moves every byte n lanes up, shifting in zeros.
func ShiftLeftBytes(v Vec, n int) Vec {
	switch {
	case n <= 0:
		return v
	case n >= 16:
		return Vec{}
	}
	idx := identityV.Sub(archsimd.BroadcastUint8x16(uint8(n)))
	return store(load(v).PermuteOrZero(inRange(idx)))
}

// AlignRight concatenates hi:lo into 32 bytes, shifts right by n bytes and
// keeps the low 16. AlignRight(v, v, n) rotates v down by n lanes.
func AlignRight(hi, lo Vec, n int) Vec {
	switch {
	case n <= 0:
		return lo
	case n >= 32:
		return Vec{}
	}
	idx := identityV.Add(archsimd.BroadcastUint8x16(uint8(n)))
	fromLo := load(lo).PermuteOrZero(inRange(idx))
	fromHi := load(hi).PermuteOrZero(inRange(idx.Sub(archsimd.BroadcastUint8x16(16))))
	return store(fromLo.Or(fromHi))
}
