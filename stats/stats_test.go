package stats

import (
	"testing"

	"github.com/matryer/is"
	"lukechampine.com/frand"
)

func TestRunningStat(t *testing.T) {
	is := is.New(t)
	type tc struct {
		scores []int
		mean   float64
		stdev  float64
	}
	cases := []tc{
		{[]int{10, 12, 23, 23, 16, 23, 21, 16}, 18, 5.2372293656638},
		{[]int{14, 35, 71, 124, 10, 24, 55, 33, 87, 19}, 47.2, 36.937785531891},
		{[]int{1}, 1, 0},
		{[]int{}, 0, 0},
		{[]int{1, 1}, 1, 0},
	}
	for _, c := range cases {
		s := &Statistic{}
		for _, score := range c.scores {
			s.Push(float64(score))
		}
		is.True(FuzzyEqual(s.Mean(), c.mean))
		is.True(FuzzyEqual(s.Stdev(), c.stdev))
		is.Equal(s.Count(), len(c.scores))
	}
}

func TestMerge(t *testing.T) {
	is := is.New(t)
	scores := []float64{14, 35, 71, 124, 10, 24, 55, 33, 87, 19}
	for split := 0; split <= len(scores); split++ {
		var a, b Statistic
		for _, v := range scores[:split] {
			a.Push(v)
		}
		for _, v := range scores[split:] {
			b.Push(v)
		}
		a.Merge(b)
		is.Equal(a.Count(), len(scores))
		is.True(FuzzyEqual(a.Mean(), 47.2))
		is.True(FuzzyEqual(a.Stdev(), 36.937785531891))
	}
}

func TestUniformMoments(t *testing.T) {
	is := is.New(t)
	mean, stdev := UniformMoments(3)
	is.True(FuzzyEqual(mean, 1))
	is.True(FuzzyEqual(stdev, 0.816496580927726))

	var s Statistic
	for i := 0; i < 20000; i++ {
		s.Push(float64(frand.Intn(2187)))
	}
	mean, stdev = UniformMoments(2187)
	is.True(s.MeanWithin(mean, stdev, 99.999))
	is.True(!s.MeanWithin(mean+100, stdev, 99.999))
	is.True(!(&Statistic{}).MeanWithin(0, 1, 95))
}

func TestZVal(t *testing.T) {
	is := is.New(t)
	is.True(FuzzyEqual(ZVal(95), 1.959963984540054))
	is.True(ZVal(99) > ZVal(95))
}
