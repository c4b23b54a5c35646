package verify

import (
	"fmt"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/domino14/cubalt/cube"
)

// tableChecks run once; they cover the static tables exhaustively.
var tableChecks = []struct {
	name string
	run  func(c *Check)
}{
	{"move-inverses", checkMoveInverses},
	{"move-powers", checkMovePowers},
	{"symmetry-inverse", checkSymInverse},
	{"symmetry-closure", checkSymClosure},
	{"move-conjugation", checkMoveConjugation},
	{"move-sym6", checkMoveSym6},
	{"corner-orient-table", checkCornerOrientTable},
	{"corner-perm-bijection", checkCornerPermBijection},
	{"edge-perm-bounds", checkEdgePermBounds},
}

func (c *Check) expect(ok bool, format string, args ...any) {
	c.Runs++
	if ok {
		return
	}
	c.Failures++
	if c.Example == "" {
		c.Example = fmt.Sprintf(format, args...)
	}
}

func checkMoveInverses(c *Check) {
	id := cube.Identity()
	for m := cube.Move(0); m < cube.NumMoves; m++ {
		c.expect(id.Apply(m).Apply(m.Inverse()) == id, "%s then %s", m, m.Inverse())
	}
	u := id
	for i := 0; i < 4; i++ {
		u = u.Apply(cube.U)
	}
	c.expect(u == id, "U^4")
}

func checkMovePowers(c *Check) {
	for face := 0; face < 6; face++ {
		q := cube.Move(face * 3)
		c.expect(cube.Moves[q].Compose(cube.Moves[q]) == cube.Moves[q+1], "%s twice", q)
		c.expect(cube.Moves[q+1].Compose(cube.Moves[q]) == cube.Moves[q+2], "%s then %s", q+1, q)
	}
}

func checkSymInverse(c *Check) {
	for s := cube.Sym(0); s < cube.NumSyms; s++ {
		p := cube.Symmetries[s].ComposeAs(cube.Symmetries[cube.SymInverse[s]], s.Mirror())
		c.expect(p == cube.Identity(), "sym %d times its inverse %d", s, cube.SymInverse[s])
	}
}

func checkSymClosure(c *Check) {
	index := make(map[cube.Cube]cube.Sym, cube.NumSyms)
	for i, s := range cube.Symmetries {
		index[s] = cube.Sym(i)
	}
	c.expect(len(index) == cube.NumSyms, "symmetries are not distinct")
	for a := cube.Sym(0); a < cube.NumSyms; a++ {
		for b := cube.Sym(0); b < cube.NumSyms; b++ {
			p := cube.Symmetries[a].ComposeAs(cube.Symmetries[b], a.Mirror())
			s, ok := index[p]
			c.expect(ok && s.Mirror() == (a.Mirror() != b.Mirror()), "sym %d times sym %d", a, b)
		}
	}
}

func checkMoveConjugation(c *Check) {
	for s := cube.Sym(0); s < cube.NumSyms; s++ {
		for m := cube.Move(0); m < cube.NumMoves; m++ {
			n := cube.ConjugateMove(m, s)
			c.expect(cube.Conjugate(cube.Moves[m], s) == cube.Moves[n], "%s under sym %d", m, s)
		}
	}
}

func checkMoveSym6(c *Check) {
	for m := cube.Move(0); m < cube.NumMoves; m++ {
		for k, s := range cube.MoveSymSubgroup {
			n := cube.MoveSym6[m][k]
			c.expect(cube.Conjugate(cube.Moves[m], s) == cube.Moves[n], "%s under sym %d", m, s)
		}
	}
}

func checkCornerOrientTable(c *Check) {
	for r := cube.CornerOrient(0); r < cube.NumCornerOrient; r++ {
		d := cube.Identity()
		d.SetCornerOrient(r)
		c.expect(d.CornerOrient() == r && d.CornerPerm() == 0, "corner orientation %d", r)
	}
}

// checkCornerPermBijection enumerates every corner permutation
// independently of the ranking code and checks that ranks are distinct and
// invert SetCornerPerm.
func checkCornerPermBijection(c *Check) {
	seen := make(map[cube.CornerPerm]bool, cube.NumCornerPerm)
	gen := combin.NewPermutationGenerator(cube.NumCorners, cube.NumCorners)
	perm := make([]int, cube.NumCorners)
	for gen.Next() {
		gen.Permutation(perm)
		d := cube.Identity()
		corners := d.CornersMut()
		for i, p := range perm {
			corners[i] = cube.NewCorner(p, 0)
		}
		r := d.CornerPerm()
		e := cube.Identity()
		e.SetCornerPerm(r)
		c.expect(r < cube.NumCornerPerm && !seen[r] && e == d, "corner permutation %v", perm)
		seen[r] = true
	}
	c.expect(len(seen) == combin.NumPermutations(cube.NumCorners, cube.NumCorners),
		"%d distinct corner ranks", len(seen))
}

func checkEdgePermBounds(c *Check) {
	c.expect(cube.NumEdgePerm == combin.NumPermutations(cube.NumEdges, cube.NumEdges), "12!")
	d := cube.Identity()
	d.SetEdgePerm(0)
	c.expect(d == cube.Identity(), "rank 0")
	d.SetEdgePerm(cube.NumEdgePerm - 1)
	edges := d.Edges()
	for i, e := range edges {
		c.expect(e.Index() == cube.NumEdges-1-i, "rank %d slot %d", cube.NumEdgePerm-1, i)
	}
	c.expect(d.EdgePerm() == cube.NumEdgePerm-1, "rank %d", cube.NumEdgePerm-1)
}
