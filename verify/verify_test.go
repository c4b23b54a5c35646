package verify

import (
	"bytes"
	"context"
	"testing"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/matryer/is"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/cubalt/config"
	"github.com/domino14/cubalt/testhelpers"
)

func testConfig(t *testing.T, args ...string) *config.Config {
	cfg := &config.Config{}
	if err := cfg.Load(args); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestRunPasses(t *testing.T) {
	is := is.New(t)
	cfg := testConfig(t, "--samples", "203", "--workers", "4", "--scramble-length", "20")
	report, err := Run(context.Background(), cfg)
	is.NoErr(err)
	is.True(report.Passed())
	is.Equal(len(report.Failed()), 0)
	is.Equal(len(report.Checks), len(tableChecks)+len(sampleProperties))

	for _, p := range sampleProperties {
		c, ok := report.Check(p.name)
		is.True(ok)
		is.Equal(c.Runs, 203)
	}
	c, ok := report.Check("corner-orient-table")
	is.True(ok)
	is.Equal(c.Runs, 2187)
	c, ok = report.Check("move-sym6")
	is.True(ok)
	is.Equal(c.Runs, 18*6)
}

func TestRunMoreWorkersThanSamples(t *testing.T) {
	is := is.New(t)
	cfg := testConfig(t, "--samples", "3", "--workers", "8", "--seed-tables=false")
	report, err := Run(context.Background(), cfg)
	is.NoErr(err)
	c, _ := report.Check("associativity")
	is.Equal(c.Runs, 3)
}

func TestRunCancelled(t *testing.T) {
	cfg := testConfig(t, "--samples", "100000", "--workers", "2")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, cfg)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTallyKeepsFirstExample(t *testing.T) {
	is := is.New(t)
	a, b := newTally(), newTally()
	a.record(0, true, nil)
	a.record(0, false, func() string { return "first" })
	a.record(0, false, func() string { return "second" })
	b.record(0, false, func() string { return "other" })
	merged := mergeTallies([]tally{a, b})
	is.Equal(merged[0].Runs, 4)
	is.Equal(merged[0].Failures, 3)
	is.Equal(merged[0].Example, "first")

	r := &Report{Checks: merged}
	is.Equal(r.Failures(), 3)
	is.Equal(len(r.Failed()), 1)
	is.True(!r.Passed())
}

func TestCoordinateDistributions(t *testing.T) {
	is := is.New(t)
	// Unscrambled samples sit at rank 0 for every coordinate.
	cfg := testConfig(t, "--samples", "50", "--workers", "2", "--scramble-length", "0")
	report, err := Run(context.Background(), cfg)
	is.NoErr(err)
	is.True(report.Passed())
	is.Equal(len(report.Coordinates), len(coordinates))
	for _, d := range report.Coordinates {
		is.Equal(d.Mean, 0.0)
		is.Equal(d.Stdev, 0.0)
		is.True(d.UniformMean > 0)
		is.True(!d.LooksUniform)
	}
	is.Equal(report.Coordinates[0].Name, "corner-orient")
	is.Equal(report.Coordinates[0].UniformMean, 1093.0)
}

func TestRunWithDefaults(t *testing.T) {
	is := is.New(t)
	cfg := testhelpers.DefaultConfig
	report, err := Run(context.Background(), cfg)
	is.NoErr(err)
	is.True(report.Passed())
	is.Equal(report.Samples, cfg.GetInt(config.ConfigSamples))
	is.Equal(report.Workers, cfg.GetInt(config.ConfigWorkers))
	c, _ := report.Check("associativity")
	is.Equal(c.Runs, cfg.GetInt(config.ConfigSamples))

	// Histograms are off by default.
	var buf bytes.Buffer
	is.NoErr(report.FprintHistograms(&buf))
	is.Equal(buf.Len(), 0)
	for _, d := range report.Coordinates {
		is.Equal(len(d.Histogram.Buckets), 0)
	}
}

func TestCoordinateHistograms(t *testing.T) {
	is := is.New(t)
	cfg := testConfig(t, "--samples", "300", "--workers", "3", "--histogram-bins", "8")
	report, err := Run(context.Background(), cfg)
	is.NoErr(err)
	for _, d := range report.Coordinates {
		is.Equal(d.Histogram.Count, 300)
		is.Equal(len(d.Histogram.Buckets), 8)
		is.Equal(lo.SumBy(d.Histogram.Buckets, func(b histogram.Bucket) int { return b.Count }), 300)
	}

	var buf bytes.Buffer
	is.NoErr(report.FprintHistograms(&buf))
	for _, coord := range coordinates {
		assert.Contains(t, buf.String(), coord.name+" (300 samples)")
	}
}

func TestCoordinateHistogramOfSolvedStates(t *testing.T) {
	is := is.New(t)
	cfg := testConfig(t, "--samples", "20", "--workers", "2", "--scramble-length", "0", "--histogram-bins", "5")
	report, err := Run(context.Background(), cfg)
	is.NoErr(err)
	// Every sample has rank 0, so all of them land in a single bucket.
	for _, d := range report.Coordinates {
		is.Equal(len(d.Histogram.Buckets), 1)
		is.Equal(d.Histogram.Buckets[0].Count, 20)
		is.Equal(d.Histogram.Buckets[0].Min, 0.0)
	}
}
