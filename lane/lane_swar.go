//go:build !(goexperiment.simd && amd64)

package lane

func And(a, b Vec) Vec {
	alo, ahi := a.Words()
	blo, bhi := b.Words()
	return FromWords(alo&blo, ahi&bhi)
}

func Or(a, b Vec) Vec {
	alo, ahi := a.Words()
	blo, bhi := b.Words()
	return FromWords(alo|blo, ahi|bhi)
}

func Xor(a, b Vec) Vec {
	alo, ahi := a.Words()
	blo, bhi := b.Words()
	return FromWords(alo^blo, ahi^bhi)
}

// Add adds bytewise, wrapping mod 256 in each lane.
func Add(a, b Vec) Vec {
	alo, ahi := a.Words()
	blo, bhi := b.Words()
	return FromWords(addBytes(alo, blo), addBytes(ahi, bhi))
}

// Sub subtracts bytewise, wrapping mod 256 in each lane.
func Sub(a, b Vec) Vec {
	alo, ahi := a.Words()
	blo, bhi := b.Words()
	return FromWords(subBytes(alo, blo), subBytes(ahi, bhi))
}

// MinU8 returns the bytewise unsigned minimum.
func MinU8(a, b Vec) Vec {
	alo, ahi := a.Words()
	blo, bhi := b.Words()
	return FromWords(minBytes(alo, blo), minBytes(ahi, bhi))
}

// CmpEq sets a byte to 0xff where a and b are equal, else 0.
func CmpEq(a, b Vec) Vec {
	alo, ahi := a.Words()
	blo, bhi := b.Words()
	return FromWords(eqMask(alo, blo), eqMask(ahi, bhi))
}

// CmpGt sets a byte to 0xff where a > b. The comparison is unsigned; every
// byte the cube stores is below 0x80, where signed and unsigned agree.
func CmpGt(a, b Vec) Vec {
	alo, ahi := a.Words()
	blo, bhi := b.Words()
	return FromWords(ltMask(blo, alo), ltMask(bhi, ahi))
}

// MoveMask gathers the top bit of every byte into a 16-bit mask.
func MoveMask(v Vec) uint16 {
	lo, hi := v.Words()
	return uint16(moveMask8(lo)) | uint16(moveMask8(hi))<<8
}

// Shuffle selects bytes of v by idx: byte i of the result is v[idx[i]&0x0f],
// or 0 when idx[i] has its top bit set.
func Shuffle(v, idx Vec) Vec {
	var r Vec
	for i, x := range idx {
		if x&0x80 == 0 {
			r[i] = v[x&0x0f]
		}
	}
	return r
}

// ShiftLeftBytes moves every byte n lanes up, shifting in zeros.
func ShiftLeftBytes(v Vec, n int) Vec {
	lo, hi := v.Words()
	switch {
	case n <= 0:
		return v
	case n >= 16:
		return Vec{}
	case n >= 8:
		return FromWords(0, lo<<(8*(n-8)))
	}
	s := uint(8 * n)
	return FromWords(lo<<s, hi<<s|lo>>(64-s))
}

// AlignRight concatenates hi:lo into 32 bytes, shifts right by n bytes and
// keeps the low 16. AlignRight(v, v, n) rotates v down by n lanes.
func AlignRight(hi, lo Vec, n int) Vec {
	var r Vec
	for i := range r {
		j := i + n
		switch {
		case j < 16:
			r[i] = lo[j]
		case j < 32:
			r[i] = hi[j-16]
		}
	}
	return r
}

func addBytes(x, y uint64) uint64 {
	return ((x &^ hiBits) + (y &^ hiBits)) ^ ((x ^ y) & hiBits)
}

func subBytes(x, y uint64) uint64 {
	return ((x | hiBits) - (y &^ hiBits)) ^ ((x ^ ^y) & hiBits)
}

// ltMask returns 0xff in every byte where x < y (unsigned). The top bit of
// each lane is the borrow out of the bytewise x-y.
func ltMask(x, y uint64) uint64 {
	d := subBytes(x, y)
	borrow := ((^x & y) | (^(x ^ y) & d)) & hiBits
	return (borrow >> 7) * 0xff
}

func minBytes(x, y uint64) uint64 {
	m := ltMask(x, y)
	return x&m | y&^m
}

// eqMask is exact: no false positives from borrow propagation.
func eqMask(x, y uint64) uint64 {
	z := x ^ y
	zero := ^(((z & low7) + low7) | z) & hiBits
	return (zero >> 7) * 0xff
}
