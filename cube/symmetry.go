package cube

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Sym indexes the 48 whole-cube symmetries. Index bits are
// lr2 + 2*f2 + 4*u4 + 16*urf3, and Symmetries[i] is
// URF3^urf3 * U4^u4 * F2^f2 * LR2^lr2, composed left to right.
type Sym uint8

const NumSyms = 48

// Mirror reports whether s reverses orientation (it contains the left-right
// reflection).
func (s Sym) Mirror() bool { return s&1 == 1 }

// Inverse returns the symmetry that undoes s.
func (s Sym) Inverse() Sym { return SymInverse[s] }

// Symmetries holds the 48 symmetry states.
var Symmetries = [NumSyms]Cube{
	New(0x0706050403020100, 0x0b0a0908, 0x0706050403020100),
	New(0x0607040502030001, 0x0a0b0809, 0x0704050603000102),
	New(0x0203000106070405, 0x0a0b0809, 0x0300010207040506),
	New(0x0302010007060504, 0x0b0a0908, 0x0302010007060504),
	New(0x0605040702010003, 0x1a19181b, 0x0605040702010003),
	New(0x0506070401020300, 0x191a1b18, 0x0607040502030001),
	New(0x0102030005060704, 0x191a1b18, 0x0203000106070405),
	New(0x0201000306050407, 0x1a19181b, 0x0201000306050407),
	New(0x0504070601000302, 0x09080b0a, 0x0504070601000302),
	New(0x0405060700010203, 0x08090a0b, 0x0506070401020300),
	New(0x0001020304050607, 0x08090a0b, 0x0102030005060704),
	New(0x0100030205040706, 0x09080b0a, 0x0100030205040706),
	New(0x0407060500030201, 0x181b1a19, 0x0407060500030201),
	New(0x0704050603000102, 0x1b18191a, 0x0405060700010203),
	New(0x0300010207040506, 0x1b18191a, 0x0001020304050607),
	New(0x0003020104070605, 0x181b1a19, 0x0003020104070605),
	New(0x1226172321152410, 0x12161410, 0x0a170b1309150811),
	New(0x2612231715211024, 0x16121014, 0x0a130b1709110815),
	New(0x1521102426122317, 0x16121014, 0x091108150a130b17),
	New(0x2115241012261723, 0x12161410, 0x091508110a170b13),
	New(0x2617231215241021, 0x06040002, 0x170b130a15081109),
	New(0x1726122324152110, 0x04060200, 0x170a130b15091108),
	New(0x2415211017261223, 0x04060200, 0x15091108170a130b),
	New(0x1524102126172312, 0x06040002, 0x15081109170b130a),
	New(0x1723122624102115, 0x14101216, 0x0b130a1708110915),
	New(0x2317261210241521, 0x10141612, 0x0b170a1308150911),
	New(0x1024152123172612, 0x10141612, 0x081509110b170a13),
	New(0x2410211517231226, 0x14101216, 0x081109150b130a17),
	New(0x2312261710211524, 0x00020604, 0x130a170b11091508),
	New(0x1223172621102415, 0x02000406, 0x130b170a11081509),
	New(0x2110241512231726, 0x02000406, 0x11081509130b170a),
	New(0x1021152423122617, 0x00020604, 0x11091508130a170b),
	New(0x2516221114271320, 0x05070301, 0x161a1219141b1018),
	New(0x1625112227142013, 0x07050103, 0x1619121a1418101b),
	New(0x2714201316251122, 0x07050103, 0x1418101b1619121a),
	New(0x1427132025162211, 0x05070301, 0x141b1018161a1219),
	New(0x1622112527132014, 0x17131115, 0x1a1219161b101814),
	New(0x2216251113271420, 0x13171511, 0x1a1619121b141810),
	New(0x1327142022162511, 0x13171511, 0x1b1418101a161912),
	New(0x2713201416221125, 0x17131115, 0x1b1018141a121916),
	New(0x2211251613201427, 0x03010507, 0x1219161a1018141b),
	New(0x1122162520132714, 0x01030705, 0x121a1619101b1418),
	New(0x2013271411221625, 0x01030705, 0x101b1418121a1619),
	New(0x1320142722112516, 0x03010507, 0x1018141b1219161a),
	New(0x1125162220142713, 0x11151713, 0x19161a1218141b10),
	New(0x2511221614201327, 0x15111317, 0x19121a1618101b14),
	New(0x1420132725112216, 0x15111317, 0x18101b1419121a16),
	New(0x2014271311251622, 0x11151713, 0x18141b1019161a12),
}

// The four generators of the symmetry group.
var (
	SymURF3    = Symmetries[16] // 120 degrees about the URF-DBL diagonal
	SymURF3Inv = Symmetries[32]
	SymU4      = Symmetries[4] // 90 degrees about the U-D axis
	SymF2      = Symmetries[2] // 180 degrees about the F-B axis
	SymLR2     = Symmetries[1] // reflection through the plane between L and R
)

// SymInverse[s] is the index of the group inverse of Symmetries[s].
var SymInverse = [NumSyms]Sym{
	0, 1, 2, 3, 12, 5, 6, 15, 8, 9, 10, 11, 4, 13, 14, 7,
	32, 35, 42, 41, 20, 21, 28, 29, 34, 33, 40, 43, 22, 23, 30, 31,
	16, 25, 24, 17, 38, 37, 36, 39, 26, 19, 18, 27, 44, 47, 46, 45,
}

// Conjugate returns S * c * S^-1 for S = Symmetries[s]: c seen from the
// viewpoint of the symmetry. Conjugating a move yields a move.
func Conjugate(c Cube, s Sym) Cube {
	m := s.Mirror()
	return Symmetries[s].ComposeAs(c, m).ComposeAs(Symmetries[SymInverse[s]], m)
}

var (
	symProductOnce sync.Once
	symProduct     [NumSyms][NumSyms]Sym

	conjMoveOnce sync.Once
	conjMove     [NumSyms][NumMoves]Move
)

// SymProduct returns the index of Symmetries[a] composed with
// Symmetries[b].
func SymProduct(a, b Sym) Sym {
	symProductOnce.Do(buildSymProduct)
	return symProduct[a][b]
}

func buildSymProduct() {
	for a := Sym(0); a < NumSyms; a++ {
		for b := Sym(0); b < NumSyms; b++ {
			p := Symmetries[a].ComposeAs(Symmetries[b], a.Mirror())
			s, ok := findSym(p)
			if !ok {
				panic("symmetry table is not closed")
			}
			symProduct[a][b] = s
		}
	}
	log.Debug().Int("entries", NumSyms*NumSyms).Msg("built symmetry product table")
}

func findSym(c Cube) (Sym, bool) {
	for i := range Symmetries {
		if Symmetries[i] == c {
			return Sym(i), true
		}
	}
	return 0, false
}

// ConjugateMove returns the move equal to Conjugate(Moves[m], s).
func ConjugateMove(m Move, s Sym) Move {
	conjMoveOnce.Do(buildConjMove)
	return conjMove[s][m]
}

func buildConjMove() {
	for s := Sym(0); s < NumSyms; s++ {
		for m := Move(0); m < NumMoves; m++ {
			c := Conjugate(Moves[m], s)
			found := false
			for n := Move(0); n < NumMoves; n++ {
				if Moves[n] == c {
					conjMove[s][m] = n
					found = true
					break
				}
			}
			if !found {
				panic("conjugate of " + m.String() + " is not a move")
			}
		}
	}
	log.Debug().Int("entries", NumSyms*NumMoves).Msg("built move conjugation table")
}

// MoveSymSubgroup is the 6-element subgroup generated by the URF rotation
// and the reflection that fixes U and swaps R with F.
var MoveSymSubgroup = [6]Sym{0, 16, 32, 5, 21, 37}

// MoveSym6[m][k] is ConjugateMove(m, MoveSymSubgroup[k]).
var MoveSym6 = [NumMoves][6]Move{
	{0, 6, 3, 2, 8, 5},
	{1, 7, 4, 1, 7, 4},
	{2, 8, 5, 0, 6, 3},
	{3, 0, 6, 8, 5, 2},
	{4, 1, 7, 7, 4, 1},
	{5, 2, 8, 6, 3, 0},
	{6, 3, 0, 5, 2, 8},
	{7, 4, 1, 4, 1, 7},
	{8, 5, 2, 3, 0, 6},
	{9, 15, 12, 11, 17, 14},
	{10, 16, 13, 10, 16, 13},
	{11, 17, 14, 9, 15, 12},
	{12, 9, 15, 17, 14, 11},
	{13, 10, 16, 16, 13, 10},
	{14, 11, 17, 15, 12, 9},
	{15, 12, 9, 14, 11, 17},
	{16, 13, 10, 13, 10, 16},
	{17, 14, 11, 12, 9, 15},
}

// SymmetryRepresentative returns the smallest of the 48 conjugates of c
// under Less, together with the symmetry that produces it. Ties go to the
// lowest symmetry index.
func (c Cube) SymmetryRepresentative() (Cube, Sym) {
	best, bestSym := c, Sym(0)
	for s := Sym(1); s < NumSyms; s++ {
		if d := Conjugate(c, s); d.Less(best) {
			best, bestSym = d, s
		}
	}
	return best, bestSym
}
