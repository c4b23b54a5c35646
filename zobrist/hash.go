package zobrist

import (
	"lukechampine.com/frand"

	"github.com/domino14/cubalt/cube"
)

const bignum = 1<<63 - 2

// Zobrist hashes cube states for transposition tables.
// https://en.wikipedia.org/wiki/Zobrist_hashing
//
// Every (slot, entry) pair gets a random key. An edge entry is index*2+flip
// and a corner entry is index*3+twist, so a state's key is the xor of 20
// table lookups and a face turn only touches the slots it moves.
type Zobrist struct {
	edgeTable   [cube.NumEdges][2 * cube.NumEdges]uint64
	cornerTable [cube.NumCorners][3 * cube.NumCorners]uint64
}

func (z *Zobrist) Initialize() {
	for i := range z.edgeTable {
		for j := range z.edgeTable[i] {
			z.edgeTable[i][j] = frand.Uint64n(bignum) + 1
		}
	}
	for i := range z.cornerTable {
		for j := range z.cornerTable[i] {
			z.cornerTable[i][j] = frand.Uint64n(bignum) + 1
		}
	}
}

func edgeEntry(e cube.Edge) int     { return e.Index()*2 + e.Orientation() }
func cornerEntry(c cube.Corner) int { return c.Index()*3 + c.Orientation() }

// https://stackoverflow.com/a/12996028/1737333
func hashUint64(x uint64) uint64 {
	x = (x ^ (x >> 30)) * uint64(0xbf58476d1ce4e5b9)
	x = (x ^ (x >> 27)) * uint64(0x94d049bb133111eb)
	x = x ^ (x >> 31)
	return x
}

func (z *Zobrist) Hash(c cube.Cube) uint64 {
	key := uint64(0)
	for i, e := range c.Edges() {
		key ^= z.edgeTable[i][edgeEntry(e)]
	}
	for i, k := range c.Corners() {
		key ^= z.cornerTable[i][cornerEntry(k)]
	}
	return key
}

// HashWithDepth mixes a remaining search depth into the state key, for
// tables that must tell apart visits of one state at different depths.
func (z *Zobrist) HashWithDepth(c cube.Cube, depth int) uint64 {
	return z.Hash(c) ^ hashUint64(uint64(depth))
}

// AddMove updates key, the hash of before, for the face turn m. It returns
// the new key and the resulting state. Slots the turn leaves alone are not
// rehashed.
func (z *Zobrist) AddMove(key uint64, before cube.Cube, m cube.Move) (uint64, cube.Cube) {
	after := before.Apply(m)
	oldEdges, newEdges := before.Edges(), after.Edges()
	for i := range oldEdges {
		if oldEdges[i] != newEdges[i] {
			key ^= z.edgeTable[i][edgeEntry(oldEdges[i])]
			key ^= z.edgeTable[i][edgeEntry(newEdges[i])]
		}
	}
	oldCorners, newCorners := before.Corners(), after.Corners()
	for i := range oldCorners {
		if oldCorners[i] != newCorners[i] {
			key ^= z.cornerTable[i][cornerEntry(oldCorners[i])]
			key ^= z.cornerTable[i][cornerEntry(newCorners[i])]
		}
	}
	return key, after
}
