package lane

// Lane-level helpers shared by the edge and corner halves of a cube.

// Equals reports whether every byte of a and b matches.
func Equals(a, b Vec) bool {
	return MoveMask(CmpEq(a, b)) == 0xffff
}

// Less orders vectors lexicographically starting from the highest byte:
// a < b when the highest differing byte of a is smaller.
func Less(a, b Vec) bool {
	gt := MoveMask(CmpGt(a, b))
	lt := MoveMask(CmpGt(b, a))
	return gt < lt
}

// Bitmask collects bit `bit` (0..7) of every byte into a 16-bit mask.
func Bitmask(v Vec, bit uint) uint16 {
	lo, hi := v.Words()
	s := 7 - bit&7
	// Shifting the whole word moves bit `bit` of each byte to its top bit;
	// spill from the byte below only lands in lower bit positions.
	return uint16(moveMask8(lo<<s)) | uint16(moveMask8(hi<<s))<<8
}

// ComposeEdges composes two edge lanes: permute a by b, then xor in b's
// flip bits.
func ComposeEdges(a, b Vec) Vec {
	perm := Shuffle(a, b)
	ori := And(b, Splat(0xf0))
	return Xor(perm, ori)
}

// XorEdgeOrient flips the orientation bit (0x10) of every edge slot whose
// bit is set in the low 12 bits of eo.
func XorEdgeOrient(v Vec, eo uint32) Vec {
	// Bytes 0..7 see the low byte of eo, bytes 8..11 the next one, and the
	// padding bytes see zero.
	sel := Shuffle(Splat32(eo), FromWords(0, 0xffffffff01010101))
	sel = Or(sel, Splat64(^uint64(0x8040201008040201)))
	sel = CmpEq(sel, Splat(0xff))
	sel = And(sel, Splat(0x10))
	return Xor(v, sel)
}

// cornerPlace holds the base-3 place value of each corner slot. Slot 0 is
// implied by the others, so it carries no weight.
var cornerPlace = [8]uint32{0, 1, 3, 9, 27, 81, 243, 729}

// CornerOrient ranks the orientations of corner slots 1..7 of a corner lane
// as a base-3 number in [0, 2187).
func CornerOrient(v Vec) uint32 {
	lo, _ := v.Words()
	ori := (lo & 0x3030303030303030) >> 4
	var r uint32
	for i := 1; i < 8; i++ {
		r += uint32(ori>>(8*i)&3) * cornerPlace[i]
	}
	return r
}
