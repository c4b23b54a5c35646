// Package cube is the state and group-algebra kernel of a 3x3x3 cube solver.
// A Cube is a packed permutation+orientation record for all 20 pieces, laid
// out so that composition, inversion and parity run as byte-parallel
// vector arithmetic (see package lane).
package cube

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/cespare/xxhash"

	"github.com/domino14/cubalt/lane"
)

const (
	NumEdges   = 12
	NumCorners = 8
)

// Cube is the packed cube representation.
//
// Edge lane (16 bytes):
//
//	4 U-face edges, 4 D-face edges, 4 E-slice edges, 4 filler
//
// Corner lane (16 bytes):
//
//	4 U-face corners, 4 D-face corners, 8 filler
//
// Edge values (8 bits):
//
//	---OEEEE
//	- = unused (zero)
//	O = orientation
//	E = edge index (0..11)
//
// Corner values (8 bits):
//
//	--OO-CCC
//	- = unused (zero)
//	O = orientation (0..2)
//	C = corner index (0..7)
//
// Filler bytes always hold their own lane position (0x0c..0x0f for edges,
// 0x08..0x0f for corners), so the byte shuffle used by Compose maps filler
// onto itself and whole-lane comparisons stay exact.
//
// Cube is a value type and is comparable with ==.
type Cube struct {
	ev lane.Vec
	cv lane.Vec
}

const (
	edgeFillerHigh   = 0x0f0e0d0c00000000
	cornerFillerHigh = 0x0f0e0d0c0b0a0908
)

// Edge is a single edge entry.
type Edge uint8

// NewEdge packs an edge index (0..11) and flip (0..1).
func NewEdge(index, orientation int) Edge {
	return Edge(orientation&1)<<4 | Edge(index&0x0f)
}

func (e Edge) Index() int       { return int(e & 0x0f) }
func (e Edge) Orientation() int { return int(e>>4) & 1 }

// Corner is a single corner entry.
type Corner uint8

// NewCorner packs a corner index (0..7) and twist (0..2).
func NewCorner(index, orientation int) Corner {
	return Corner(orientation&3)<<4 | Corner(index&0x07)
}

func (c Corner) Index() int       { return int(c & 0x07) }
func (c Corner) Orientation() int { return int(c>>4) & 3 }

// Identity returns the solved cube.
func Identity() Cube {
	return Cube{ev: lane.Identity(), cv: lane.Identity()}
}

// New builds a cube from three literals: the 8 corner bytes, edges 8..11
// (low 32 bits of edgesHigh) and edges 0..7. Everything else is forced to
// filler.
func New(corners, edgesHigh, edgesLow uint64) Cube {
	return Cube{
		ev: lane.FromWords(edgesLow, edgeFillerHigh|edgesHigh&0xffffffff),
		cv: lane.FromWords(corners, cornerFillerHigh),
	}
}

func fromLanes(ev, cv lane.Vec) Cube {
	return Cube{ev: ev, cv: cv}
}

// EdgesLow returns edges 0..7 as a little-endian word.
func (c Cube) EdgesLow() uint64 {
	lo, _ := c.ev.Words()
	return lo
}

// EdgesHigh returns edges 8..11 in the low 32 bits of a word.
func (c Cube) EdgesHigh() uint64 {
	_, hi := c.ev.Words()
	return hi & 0xffffffff
}

// Corners64 returns the 8 corner bytes as a little-endian word.
func (c Cube) Corners64() uint64 {
	lo, _ := c.cv.Words()
	return lo
}

// Edges returns a copy of the 12 edge slots.
func (c Cube) Edges() [NumEdges]Edge {
	return *c.EdgesMut()
}

// EdgesMut aliases the edge slots of c for in-place writes.
func (c *Cube) EdgesMut() *[NumEdges]Edge {
	return (*[NumEdges]Edge)(unsafe.Pointer(&c.ev))
}

// Corners returns a copy of the 8 corner slots.
func (c Cube) Corners() [NumCorners]Corner {
	return *c.CornersMut()
}

// CornersMut aliases the corner slots of c for in-place writes.
func (c *Cube) CornersMut() *[NumCorners]Corner {
	return (*[NumCorners]Corner)(unsafe.Pointer(&c.cv))
}

// EdgeLane and CornerLane expose the raw vectors.
func (c Cube) EdgeLane() lane.Vec   { return c.ev }
func (c Cube) CornerLane() lane.Vec { return c.cv }

// Equals compares all 32 bytes, filler included.
func (c Cube) Equals(o Cube) bool {
	return lane.Equals(c.ev, o.ev) && lane.Equals(c.cv, o.cv)
}

// Less is a total order over cubes: the highest differing byte decides,
// with the corner lane above the edge lane.
func (c Cube) Less(o Cube) bool {
	if !lane.Equals(c.cv, o.cv) {
		return lane.Less(c.cv, o.cv)
	}
	return lane.Less(c.ev, o.ev)
}

// EdgeBitmask gathers bit `bit` of each edge slot into bits 0..11.
func (c Cube) EdgeBitmask(bit uint) uint16 {
	return lane.Bitmask(c.ev, bit) & 0x0fff
}

// CornerBitmask gathers bit `bit` of each corner slot into bits 0..7.
func (c Cube) CornerBitmask(bit uint) uint8 {
	return uint8(lane.Bitmask(c.cv, bit))
}

// Bytes returns the 32 packed bytes, edge lane first.
func (c Cube) Bytes() []byte {
	b := make([]byte, 0, 32)
	b = append(b, c.ev[:]...)
	return append(b, c.cv[:]...)
}

// Hash fingerprints the packed state.
func (c Cube) Hash() uint64 {
	return xxhash.Sum64(c.Bytes())
}

func (c Cube) String() string {
	var sb strings.Builder
	sb.WriteString("edges:")
	for _, e := range c.Edges() {
		fmt.Fprintf(&sb, " %d", e.Index())
		if e.Orientation() != 0 {
			sb.WriteByte('+')
		}
	}
	sb.WriteString(" | corners:")
	for _, k := range c.Corners() {
		fmt.Fprintf(&sb, " %d", k.Index())
		for i := 0; i < k.Orientation(); i++ {
			sb.WriteByte('+')
		}
	}
	return sb.String()
}
