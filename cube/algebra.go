package cube

import (
	"math/bits"

	"github.com/domino14/cubalt/lane"
)

var (
	hiNibble = lane.Splat(0xf0)
	loNibble = lane.Splat(0x0f)

	// Composition wraps flips at 2*0x10 and twists at 3*0x10.
	edgeCarry   = lane.Splat(0x20)
	cornerCarry = lane.Splat(0x30)

	// Inversion doubles orientations first: a doubled flip wraps at 0x10,
	// a doubled twist at 0x30.
	edgeNegCarry   = lane.Splat(0x10)
	cornerNegCarry = lane.Splat(0x30)

	// invertSeed pre-fills the filler bytes that the candidate search in
	// Invert never visits.
	invertSeed = lane.FromWords(0, edgeFillerHigh)
)

// Compose returns the cube reached by applying c and then o. Slot i of the
// result holds c's entry at o's index for slot i, with o's orientation added
// (flips mod 2, twists mod 3).
func (c Cube) Compose(o Cube) Cube {
	return composePerhapsMirror(c, o, false)
}

// ComposeMirror is Compose for a left operand that is orientation-reversing
// (a mirror symmetry, or any product with an odd number of them): o's twists
// are subtracted instead of added.
func (c Cube) ComposeMirror(o Cube) Cube {
	return composePerhapsMirror(c, o, true)
}

// ComposeAs picks Compose or ComposeMirror.
func (c Cube) ComposeAs(o Cube, mirror bool) Cube {
	return composePerhapsMirror(c, o, mirror)
}

func composePerhapsMirror(a, b Cube, mirror bool) Cube {
	// Permute edges and corners.
	ep := lane.Shuffle(a.ev, b.ev)
	cp := lane.Shuffle(a.cv, b.cv)

	// Compose edge and corner orientations.
	eo := lane.And(b.ev, hiNibble)
	co := lane.And(b.cv, hiNibble)
	if mirror {
		ep = lane.SubWrap(ep, eo, edgeCarry)
		cp = lane.SubWrap(cp, co, cornerCarry)
	} else {
		ep = lane.AddWrap(ep, eo, edgeCarry)
		cp = lane.AddWrap(cp, co, cornerCarry)
	}
	return fromLanes(ep, cp)
}

// Apply turns a face.
func (c Cube) Apply(m Move) Cube {
	return c.Compose(Moves[m])
}

// Invert returns the group inverse of c.
func (c Cube) Invert() Cube {
	return fromLanes(
		invertLane(c.ev, edgeNegCarry),
		invertLane(c.cv, cornerNegCarry),
	)
}

func invertLane(v, negCarry lane.Vec) lane.Vec {
	// Split into permutation and orientation.
	perm := lane.And(v, loNibble)
	ori := lane.Xor(v, perm)

	// Brute force the inverse permutation: for candidate i, the lane that
	// equals perm[i] gets i. Every lane is tested at once.
	inv := invertSeed
	id := lane.Identity()
	for i := byte(0); i < NumEdges; i++ {
		trial := lane.Splat(i)
		hit := lane.CmpEq(id, lane.Shuffle(perm, trial))
		inv = lane.Or(inv, lane.And(trial, hit))
	}

	// Negate orientations: -x == 2x mod 3, and for flips 2x folds back to x.
	ori = lane.Add(ori, ori)
	ori = lane.MinU8(ori, lane.Sub(ori, negCarry))

	// Orientation belongs to the destination slot of the inverse.
	ori = lane.Shuffle(ori, inv)
	return lane.Or(inv, ori)
}

// The rotations by 5, 6 and 7 compare bytes 0..6 against the top of the
// lane in reversed order. Per byte the number of reversed tests is odd for
// bytes 0..4 and 6, which is 0x5f in each lane.
const parityCorrection = 0x5f005f

// Parity reports whether the combined edge+corner permutation is odd.
func (c Cube) Parity() bool {
	mask := uint32(laneInversions(c.ev)) | uint32(laneInversions(c.cv))<<16
	return bits.OnesCount32(mask^parityCorrection)&1 != 0
}

// laneInversions xors together comparisons of every byte against the bytes
// 1, 2, 3, 4 and 8 lanes below it and against rotations by 5, 6 and 7, which
// between them reach every pair of real slots once. Filler sorts above every
// real entry, so pairs involving it never count. The top bit of byte i
// collects the parity of the tests ending at i.
func laneInversions(v lane.Vec) uint16 {
	v = lane.And(v, loNibble)

	a := lane.ShiftLeftBytes(v, 1)
	b := lane.ShiftLeftBytes(v, 2)
	c := lane.ShiftLeftBytes(v, 3)
	d := lane.ShiftLeftBytes(v, 4)
	e := lane.ShiftLeftBytes(v, 8)
	f := lane.AlignRight(v, v, 11) // rotate up 5
	g := lane.AlignRight(v, v, 10) // rotate up 6
	h := lane.AlignRight(v, v, 9)  // rotate up 7

	a = lane.Xor(lane.CmpGt(a, v), lane.CmpGt(b, v))
	c = lane.Xor(lane.CmpGt(c, v), lane.CmpGt(d, v))
	e = lane.Xor(lane.CmpGt(e, v), lane.CmpGt(f, v))

	p := lane.Xor(lane.Xor(a, c), e)
	p = lane.Xor(p, lane.CmpGt(g, v))
	p = lane.Xor(p, lane.CmpGt(h, v))
	return lane.MoveMask(p)
}

// XorEdgeOrient flips the edges selected by the low 12 bits of eo.
func (c Cube) XorEdgeOrient(eo EdgeOrient) Cube {
	return fromLanes(lane.XorEdgeOrient(c.ev, uint32(eo)), c.cv)
}

// EdgeOrient returns the 12 flip bits, edge slot i in bit i.
func (c Cube) EdgeOrient() EdgeOrient {
	return EdgeOrient(c.EdgeBitmask(4))
}

// CornerOrient ranks the corner twists; see UnrankCornerOrient.
func (c Cube) CornerOrient() CornerOrient {
	r := lane.CornerOrient(c.cv)
	if debugAssertions {
		assertf(r < NumCornerOrient, "corner orientation rank %d out of range", r)
	}
	return CornerOrient(r)
}

// CornerOrientRaw packs the twist of corner slot i into bits 2i..2i+1.
func (c Cube) CornerOrientRaw() uint16 {
	w := c.Corners64() >> 4 & 0x0303030303030303
	w = (w | w>>6) & 0x000f000f000f000f
	w = (w | w>>12) & 0x000000ff000000ff
	w = (w | w>>24) & 0xffff
	return uint16(w)
}
