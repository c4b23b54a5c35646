package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	Epsilon = 1e-6
)

func FuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Statistic is a running mean and variance (Welford's algorithm). Partial
// statistics from separate goroutines combine with Merge.
type Statistic struct {
	n    int
	mean float64
	m2   float64
}

func (s *Statistic) Push(val float64) {
	s.n++
	delta := val - s.mean
	s.mean += delta / float64(s.n)
	s.m2 += delta * (val - s.mean)
}

// Merge folds o into s (Chan et al. pairwise update).
func (s *Statistic) Merge(o Statistic) {
	if o.n == 0 {
		return
	}
	if s.n == 0 {
		*s = o
		return
	}
	n := s.n + o.n
	delta := o.mean - s.mean
	s.mean += delta * float64(o.n) / float64(n)
	s.m2 += o.m2 + delta*delta*float64(s.n)*float64(o.n)/float64(n)
	s.n = n
}

func (s *Statistic) Count() int { return s.n }

func (s *Statistic) Mean() float64 {
	return s.mean
}

func (s *Statistic) Variance() float64 {
	if s.n <= 1 {
		return 0.0
	}
	return s.m2 / float64(s.n-1)
}

func (s *Statistic) Stdev() float64 {
	return math.Sqrt(s.Variance())
}

// UniformMoments returns the mean and standard deviation of a value drawn
// uniformly from the integers 0..n-1.
func UniformMoments(n int) (mean, stdev float64) {
	f := float64(n)
	return (f - 1) / 2, math.Sqrt((f*f - 1) / 12)
}

// MeanWithin reports whether the sample mean is consistent with a
// population of the given mean and standard deviation at the given
// confidence (0..100 percent).
func (s *Statistic) MeanWithin(mean, stdev, confidenceInterval float64) bool {
	if s.n == 0 {
		return false
	}
	margin := ZVal(confidenceInterval) * stdev / math.Sqrt(float64(s.n))
	return math.Abs(s.mean-mean) <= margin
}

var standardNormal = distuv.Normal{Mu: 0, Sigma: 1}

// ZVal returns the two-tailed z-value for a confidence interval given in
// percent.
func ZVal(confidenceInterval float64) float64 {
	return standardNormal.Quantile((1 + confidenceInterval/100) / 2)
}
