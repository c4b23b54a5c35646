package zobrist

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/cubalt/cube"
	"github.com/domino14/cubalt/testhelpers"
)

func TestPlayAndUnplay(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize()

	c := testhelpers.Scramble(25)
	h := z.Hash(c)
	// play and unplay a move. The final hash should be the same as the beginning hash.
	h1, c1 := z.AddMove(h, c, cube.R)
	h2, c2 := z.AddMove(h1, c1, cube.RPrime)
	is.Equal(c2, c)
	is.Equal(h, h2)
	is.True(h1 != h2) // extremely unlikely to collide, but this is not technically always true.
}

func TestIncrementalMatchesFull(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize()

	c := cube.Identity()
	h := z.Hash(c)
	for _, m := range testhelpers.RandomMoves(200) {
		h, c = z.AddMove(h, c, m)
		is.Equal(h, z.Hash(c))
	}
}

func TestTranspositions(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize()

	// U and D commute, so both orders reach the same state and key.
	c := testhelpers.Scramble(15)
	h := z.Hash(c)
	h1, c1 := z.AddMove(h, c, cube.U)
	h1, c1 = z.AddMove(h1, c1, cube.D)
	h2, c2 := z.AddMove(h, c, cube.D)
	h2, c2 = z.AddMove(h2, c2, cube.U)
	is.Equal(c1, c2)
	is.Equal(h1, h2)

	is.True(z.HashWithDepth(c, 3) != z.HashWithDepth(c, 4))
	is.Equal(z.HashWithDepth(c, 3), z.HashWithDepth(c, 3))
}
