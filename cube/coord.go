package cube

import (
	"math/bits"

	"github.com/domino14/cubalt/lane"
)

// Coordinates: dense integer indices for parts of the cube state, used by a
// search to address pruning tables.

// EdgeOrient is a 12-bit mask of edge flips, edge slot i in bit i.
type EdgeOrient uint32

// CornerOrient is the base-3 number formed by the twists of corner slots
// 1..7 (slot i has place value 3^(i-1)). Slot 0 is implied because all
// eight twists sum to 0 mod 3.
type CornerOrient uint32

// EdgePerm is the lexicographic rank of the edge permutation.
type EdgePerm uint32

// CornerPerm is the lexicographic rank of the corner permutation.
type CornerPerm uint32

const (
	NumCornerOrient = 2187      // 3^7
	NumEdgePerm     = 479001600 // 12!
	NumCornerPerm   = 40320     // 8!
)

// Multiply-high reciprocals of 3^k, valid for every rank below 3^7:
// n/3^k == n*pow3Reciprocal[k] >> pow3Shift[k]. The 3^0 place is n itself.
var (
	pow3Reciprocal = [7]uint32{0, 21846, 7282, 38837, 12946, 4316, 1439}
	pow3Shift      = [7]uint{0, 16, 16, 20, 20, 20, 20}
)

// div3 is exact for n < 2^15.
func div3(n uint32) uint32 {
	return n * 21846 >> 16
}

// lastTwist picks the slot-0 twist from the sum s of the other seven:
// lastTwist>>s&3 == (3 - s%3) % 3 for every s in 0..14.
const lastTwist = 0x4924924924924924

// UnrankCornerOrient decodes a CornerOrient rank into the orientation bits
// of the corner word (twist in bits 4..5 of each byte, corner indices zero).
// The domain is 0 through 2186 (NumCornerOrient-1); 2186 twists slots 1..7
// twice each. Ranks at or above NumCornerOrient give an unspecified result.
func UnrankCornerOrient(co CornerOrient) uint64 {
	n := uint32(co)
	if debugAssertions {
		assertf(n < NumCornerOrient, "corner orientation rank %d out of range", n)
	}
	var w uint64
	var sum uint
	for k := 0; k < 7; k++ {
		q := n
		if k > 0 {
			q = n * pow3Reciprocal[k] >> pow3Shift[k]
		}
		digit := q - 3*div3(q)
		sum += uint(digit)
		w |= uint64(digit) << (8 * (k + 1))
	}
	w |= lastTwist >> sum & 3
	return w << 4
}

// SetCornerOrient replaces the twists of c with those encoded by co,
// keeping the corner permutation.
func (c *Cube) SetCornerOrient(co CornerOrient) {
	lo, hi := c.cv.Words()
	lo = lo&0x0f0f0f0f0f0f0f0f | UnrankCornerOrient(co)
	c.cv = lane.FromWords(lo, hi)
}

// edgeFactorial[i] is (11-i)!.
var edgeFactorial = [11]uint32{
	39916800, 3628800, 362880, 40320, 5040, 720, 120, 24, 6, 2, 1,
}

// cornerFactorial[i] is (7-i)!.
var cornerFactorial = [7]uint32{5040, 720, 120, 24, 6, 2, 1}

// SetEdgePerm sets the edge permutation to rank ep (0..NumEdgePerm-1) and
// clears every edge flip.
func (c *Cube) SetEdgePerm(ep EdgePerm) {
	edges := c.EdgesMut()
	n := uint32(ep)
	// The unused identities, one per nibble, lowest first.
	table := uint64(0xba9876543210)

	// The first digit needs no modulus.
	shift := uint(n / edgeFactorial[0] * 4)
	edges[0] = Edge(table >> shift & 0xf)
	table = removeNibble(table, shift)

	for i := 1; i < NumEdges-1; i++ {
		shift = uint(n / edgeFactorial[i] % uint32(NumEdges-i) * 4)
		edges[i] = Edge(table >> shift & 0xf)
		table = removeNibble(table, shift)
	}
	edges[NumEdges-1] = Edge(table)
}

// SetCornerPerm sets the corner permutation to rank cp (0..NumCornerPerm-1)
// and clears every corner twist.
func (c *Cube) SetCornerPerm(cp CornerPerm) {
	corners := c.CornersMut()
	n := uint32(cp)
	table := uint64(0x76543210)

	shift := uint(n / cornerFactorial[0] * 4)
	corners[0] = Corner(table >> shift & 0xf)
	table = removeNibble(table, shift)

	for i := 1; i < NumCorners-1; i++ {
		shift = uint(n / cornerFactorial[i] % uint32(NumCorners-i) * 4)
		corners[i] = Corner(table >> shift & 0xf)
		table = removeNibble(table, shift)
	}
	corners[NumCorners-1] = Corner(table)
}

// removeNibble drops the nibble at shift and moves every higher nibble down.
func removeNibble(table uint64, shift uint) uint64 {
	return table ^ (table^table>>4)&(^uint64(0)<<shift)
}

// EdgePerm ranks the edge permutation, ignoring flips. It inverts
// SetEdgePerm.
func (c Cube) EdgePerm() EdgePerm {
	var rank uint32
	var seen uint16
	for i, e := range c.Edges() {
		idx := uint(e.Index())
		smaller := idx - uint(bits.OnesCount16(seen&(1<<idx-1)))
		seen |= 1 << idx
		if i < NumEdges-1 {
			rank += uint32(smaller) * edgeFactorial[i]
		}
	}
	return EdgePerm(rank)
}

// CornerPerm ranks the corner permutation, ignoring twists. It inverts
// SetCornerPerm.
func (c Cube) CornerPerm() CornerPerm {
	var rank uint32
	var seen uint8
	for i, k := range c.Corners() {
		idx := uint(k.Index())
		smaller := idx - uint(bits.OnesCount8(seen&(1<<idx-1)))
		seen |= 1 << idx
		if i < NumCorners-1 {
			rank += uint32(smaller) * cornerFactorial[i]
		}
	}
	return CornerPerm(rank)
}
