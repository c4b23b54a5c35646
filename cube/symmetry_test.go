package cube

import (
	"testing"

	"github.com/matryer/is"
	"github.com/samber/lo"
	"lukechampine.com/frand"
)

func TestSymInverse(t *testing.T) {
	is := is.New(t)
	for s := Sym(0); s < NumSyms; s++ {
		inv := SymInverse[s]
		is.Equal(Symmetries[s].ComposeAs(Symmetries[inv], s.Mirror()), Identity())
		is.Equal(SymInverse[inv], s)
		is.Equal(inv.Mirror(), s.Mirror())
		is.Equal(s.Inverse(), inv)
	}
}

func TestSymmetryClosure(t *testing.T) {
	is := is.New(t)
	for a := Sym(0); a < NumSyms; a++ {
		row := make([]Sym, 0, NumSyms)
		for b := Sym(0); b < NumSyms; b++ {
			p := SymProduct(a, b)
			is.Equal(Symmetries[a].ComposeAs(Symmetries[b], a.Mirror()), Symmetries[p])
			is.Equal(p.Mirror(), a.Mirror() != b.Mirror())
			row = append(row, p)
		}
		// Each row of a group table is a permutation.
		is.Equal(len(lo.Uniq(row)), NumSyms)
		is.Equal(SymProduct(a, SymInverse[a]), Sym(0))
	}
}

func TestSymmetryGenerators(t *testing.T) {
	is := is.New(t)
	is.Equal(SymURF3.ComposeAs(SymURF3Inv, false), Identity())
	is.Equal(SymURF3.Compose(SymURF3).Compose(SymURF3), Identity())
	is.Equal(SymF2.Compose(SymF2), Identity())
	is.Equal(SymLR2.ComposeMirror(SymLR2), Identity())
	u4 := SymU4
	for i := 1; i < 4; i++ {
		is.True(u4 != Identity())
		u4 = u4.Compose(SymU4)
	}
	is.Equal(u4, Identity())

	// Symmetries[i] is URF3^urf3 U4^u4 F2^f2 LR2^lr2.
	for i := Sym(0); i < NumSyms; i++ {
		c := Identity()
		for k := 0; k < int(i>>4); k++ {
			c = c.Compose(SymURF3)
		}
		for k := 0; k < int(i>>2&3); k++ {
			c = c.Compose(SymU4)
		}
		if i>>1&1 == 1 {
			c = c.Compose(SymF2)
		}
		if i&1 == 1 {
			c = c.Compose(SymLR2)
		}
		is.Equal(c, Symmetries[i])
	}
}

func TestConjugateMoves(t *testing.T) {
	is := is.New(t)
	for s := Sym(0); s < NumSyms; s++ {
		seen := make(map[Move]bool)
		for m := Move(0); m < NumMoves; m++ {
			n := ConjugateMove(m, s)
			is.Equal(Conjugate(Moves[m], s), Moves[n])
			// Reflections turn clockwise into counter-clockwise.
			if s.Mirror() {
				is.Equal(n.Power(), 4-m.Power())
			} else {
				is.Equal(n.Power(), m.Power())
			}
			seen[n] = true
		}
		is.Equal(len(seen), NumMoves)
	}
}

func TestMoveSym6(t *testing.T) {
	is := is.New(t)
	for m := Move(0); m < NumMoves; m++ {
		for k, s := range MoveSymSubgroup {
			is.Equal(MoveSym6[m][k], ConjugateMove(m, s))
			is.Equal(Conjugate(Moves[m], s), Moves[MoveSym6[m][k]])
		}
	}
	// The subgroup is closed.
	for _, a := range MoveSymSubgroup {
		for _, b := range MoveSymSubgroup {
			is.True(lo.Contains(MoveSymSubgroup[:], SymProduct(a, b)))
		}
	}
}

func TestConjugateHomomorphism(t *testing.T) {
	is := is.New(t)
	for n := 0; n < 300; n++ {
		a, b := scramble(20), scramble(20)
		s, u := Sym(frand.Intn(NumSyms)), Sym(frand.Intn(NumSyms))
		is.Equal(Conjugate(a.Compose(b), s), Conjugate(a, s).Compose(Conjugate(b, s)))
		is.Equal(Conjugate(a.Invert(), s), Conjugate(a, s).Invert())
		is.Equal(Conjugate(Conjugate(a, u), s), Conjugate(a, SymProduct(s, u)))
		is.Equal(Conjugate(Conjugate(a, s), SymInverse[s]), a)
	}
	for s := Sym(0); s < NumSyms; s++ {
		is.Equal(Conjugate(Identity(), s), Identity())
	}
}

func TestSymmetryRepresentative(t *testing.T) {
	is := is.New(t)
	rep, s := Identity().SymmetryRepresentative()
	is.Equal(rep, Identity())
	is.Equal(s, Sym(0))

	for n := 0; n < 100; n++ {
		c := scramble(20)
		rep, s := c.SymmetryRepresentative()
		is.Equal(Conjugate(c, s), rep)
		is.True(!c.Less(rep))
		for u := Sym(0); u < NumSyms; u++ {
			other, _ := Conjugate(c, u).SymmetryRepresentative()
			is.Equal(other, rep)
		}
	}
}
