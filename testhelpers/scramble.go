package testhelpers

import (
	"lukechampine.com/frand"

	"github.com/domino14/cubalt/config"
	"github.com/domino14/cubalt/cube"
)

// DefaultConfig is shared by tests; treat it as read-only.
var DefaultConfig = config.DefaultConfig()

// RandomMoves returns n random face turns, never turning the same face
// twice in a row.
func RandomMoves(n int) []cube.Move {
	moves := make([]cube.Move, 0, n)
	last := -1
	for len(moves) < n {
		m := cube.Move(frand.Intn(cube.NumMoves))
		if m.Face() == last {
			continue
		}
		last = m.Face()
		moves = append(moves, m)
	}
	return moves
}

// Scramble applies n random face turns to the solved cube.
func Scramble(n int) cube.Cube {
	return ApplyMoves(cube.Identity(), RandomMoves(n))
}

func ApplyMoves(c cube.Cube, moves []cube.Move) cube.Cube {
	for _, m := range moves {
		c = c.Apply(m)
	}
	return c
}

// RandomPermutations returns a state with independently random edge and
// corner permutations and no twists or flips. About half of these are not
// reachable by face turns, which makes them useful for parity checks.
func RandomPermutations() cube.Cube {
	c := cube.Identity()
	c.SetEdgePerm(cube.EdgePerm(frand.Uint64n(cube.NumEdgePerm)))
	c.SetCornerPerm(cube.CornerPerm(frand.Uint64n(cube.NumCornerPerm)))
	return c
}

// RandomSym picks one of the 48 symmetries.
func RandomSym() cube.Sym {
	return cube.Sym(frand.Intn(cube.NumSyms))
}
