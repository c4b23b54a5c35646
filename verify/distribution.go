package verify

import (
	"fmt"
	"io"

	"github.com/aybabtme/uniplot/histogram"

	"github.com/domino14/cubalt/cube"
	"github.com/domino14/cubalt/stats"
)

// Scrambles of a reasonable length should spread every coordinate close to
// uniformly over its range. These figures are informational: short
// scrambles legitimately fail them.
const coordinateConfidence = 99.9

const histogramWidth = 40

// Distribution summarizes one coordinate over the sampled scrambles.
type Distribution struct {
	Name         string  `yaml:"name"`
	Mean         float64 `yaml:"mean"`
	Stdev        float64 `yaml:"stdev"`
	UniformMean  float64 `yaml:"uniform_mean"`
	UniformStdev float64 `yaml:"uniform_stdev"`
	LooksUniform bool    `yaml:"looks_uniform"`

	// Histogram is only filled when histogram bins are configured.
	Histogram histogram.Histogram `yaml:"-"`
}

var coordinates = []struct {
	name string
	size int
	of   func(c cube.Cube) int
}{
	{"corner-orient", cube.NumCornerOrient, func(c cube.Cube) int { return int(c.CornerOrient()) }},
	{"corner-perm", cube.NumCornerPerm, func(c cube.Cube) int { return int(c.CornerPerm()) }},
	{"edge-perm", cube.NumEdgePerm, func(c cube.Cube) int { return int(c.EdgePerm()) }},
	{"edge-flips", 1 << cube.NumEdges, func(c cube.Cube) int { return int(c.EdgeOrient()) }},
}

// coordinateSamples is one worker's view of the coordinates. values stays
// nil unless histograms were asked for.
type coordinateSamples struct {
	stats  []stats.Statistic
	values [][]float64
}

func newCoordinateSamples(keepValues bool) *coordinateSamples {
	cs := &coordinateSamples{stats: make([]stats.Statistic, len(coordinates))}
	if keepValues {
		cs.values = make([][]float64, len(coordinates))
	}
	return cs
}

func (cs *coordinateSamples) push(c cube.Cube) {
	for i, coord := range coordinates {
		x := float64(coord.of(c))
		cs.stats[i].Push(x)
		if cs.values != nil {
			cs.values[i] = append(cs.values[i], x)
		}
	}
}

// summarize merges the workers' samples. bins <= 0 skips the histograms.
func summarize(parts []*coordinateSamples, bins int) []Distribution {
	out := make([]Distribution, len(coordinates))
	for i, coord := range coordinates {
		var total stats.Statistic
		var values []float64
		for _, p := range parts {
			if p == nil {
				continue
			}
			total.Merge(p.stats[i])
			if p.values != nil {
				values = append(values, p.values[i]...)
			}
		}
		mean, stdev := stats.UniformMoments(coord.size)
		out[i] = Distribution{
			Name:         coord.name,
			Mean:         total.Mean(),
			Stdev:        total.Stdev(),
			UniformMean:  mean,
			UniformStdev: stdev,
			LooksUniform: total.MeanWithin(mean, stdev, coordinateConfidence),
		}
		if bins > 0 {
			out[i].Histogram = histogram.Hist(bins, values)
		}
	}
	return out
}

// FprintHistograms draws the coordinate histograms to w. Coordinates
// without a histogram are skipped.
func (r *Report) FprintHistograms(w io.Writer) error {
	for _, d := range r.Coordinates {
		if len(d.Histogram.Buckets) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s (%d samples)\n", d.Name, d.Histogram.Count); err != nil {
			return err
		}
		if err := histogram.Fprint(w, d.Histogram, histogram.Linear(histogramWidth)); err != nil {
			return err
		}
	}
	return nil
}
