package verify

import (
	"fmt"

	"github.com/domino14/cubalt/cube"
	"github.com/domino14/cubalt/testhelpers"
)

// sample is one batch of random inputs shared by every property.
type sample struct {
	a, b, c cube.Cube
	// p and q have arbitrary permutations, odd ones included.
	p, q cube.Cube
	s, u cube.Sym
}

func newSample(scrambleLength int) sample {
	return sample{
		a: testhelpers.Scramble(scrambleLength),
		b: testhelpers.Scramble(scrambleLength),
		c: testhelpers.Scramble(scrambleLength),
		p: testhelpers.RandomPermutations(),
		q: testhelpers.RandomPermutations(),
		s: testhelpers.RandomSym(),
		u: testhelpers.RandomSym(),
	}
}

func (s sample) String() string {
	return fmt.Sprintf("a=[%s] b=[%s] s=%d u=%d", s.a, s.b, s.s, s.u)
}

type property struct {
	name  string
	check func(s sample) bool
}

var sampleProperties = []property{
	{"identity", func(s sample) bool {
		id := cube.Identity()
		return s.a.Compose(id) == s.a && id.Compose(s.a) == s.a
	}},
	{"inverse", func(s sample) bool {
		id := cube.Identity()
		return s.a.Compose(s.a.Invert()) == id && s.a.Invert().Compose(s.a) == id
	}},
	{"double-inverse", func(s sample) bool {
		return s.a.Invert().Invert() == s.a
	}},
	{"associativity", func(s sample) bool {
		return s.a.Compose(s.b).Compose(s.c) == s.a.Compose(s.b.Compose(s.c))
	}},
	{"parity-homomorphism", func(s sample) bool {
		return s.p.Compose(s.q).Parity() == (s.p.Parity() != s.q.Parity()) &&
			!s.a.Parity()
	}},
	{"orientation-sums", func(s sample) bool {
		twist := 0
		for _, k := range s.a.Corners() {
			twist += k.Orientation()
		}
		flips := 0
		for _, e := range s.a.Edges() {
			flips += e.Orientation()
		}
		return twist%3 == 0 && flips%2 == 0
	}},
	{"corner-orient-roundtrip", func(s sample) bool {
		d := s.a
		d.SetCornerOrient(s.a.CornerOrient())
		return d == s.a
	}},
	{"edge-perm-roundtrip", func(s sample) bool {
		d := cube.Identity()
		d.SetEdgePerm(s.a.EdgePerm())
		return d.XorEdgeOrient(s.a.EdgeOrient()).EdgeLane() == s.a.EdgeLane()
	}},
	{"corner-perm-roundtrip", func(s sample) bool {
		d := cube.Identity()
		d.SetCornerPerm(s.a.CornerPerm())
		d.SetCornerOrient(s.a.CornerOrient())
		return d.CornerLane() == s.a.CornerLane()
	}},
	{"conjugation-homomorphism", func(s sample) bool {
		lhs := cube.Conjugate(s.a.Compose(s.b), s.s)
		rhs := cube.Conjugate(s.a, s.s).Compose(cube.Conjugate(s.b, s.s))
		nested := cube.Conjugate(cube.Conjugate(s.a, s.u), s.s)
		return lhs == rhs && nested == cube.Conjugate(s.a, cube.SymProduct(s.s, s.u))
	}},
	{"symmetry-class", func(s sample) bool {
		r1, _ := s.a.SymmetryRepresentative()
		r2, _ := cube.Conjugate(s.a, s.s).SymmetryRepresentative()
		return r1 == r2
	}},
}
