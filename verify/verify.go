// Package verify self-checks the cube algebra and its tables: group laws,
// parity, coordinate round trips and symmetry conjugation on random states,
// plus exhaustive checks of the static tables.
package verify

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/cubalt/config"
	"github.com/domino14/cubalt/cube"
)

// Run checks every table once and every sample property against
// cfg's sample count of random states, spread over cfg's workers.
func Run(ctx context.Context, cfg *config.Config) (*Report, error) {
	workers := cfg.GetInt(config.ConfigWorkers)
	samples := cfg.GetInt(config.ConfigSamples)
	length := cfg.GetInt(config.ConfigScrambleLength)
	bins := cfg.GetInt(config.ConfigHistogramBins)
	if workers < 1 {
		return nil, fmt.Errorf("need at least one worker, got %d", workers)
	}
	start := time.Now()

	if cfg.GetBool(config.ConfigSeedTables) {
		// Build the lazy tables up front so workers don't queue on them.
		cube.SymProduct(0, 0)
		cube.ConjugateMove(cube.U, 0)
	}

	report := &Report{
		Samples:        samples,
		ScrambleLength: length,
		Workers:        workers,
	}
	for _, tc := range tableChecks {
		c := Check{Name: tc.name}
		tc.run(&c)
		log.Debug().Str("check", c.Name).Int("runs", c.Runs).Int("failures", c.Failures).Msg("table check")
		report.Checks = append(report.Checks, c)
	}

	tallies := make([]tally, workers)
	coords := make([]*coordinateSamples, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		n := samples / workers
		if w < samples%workers {
			n++
		}
		g.Go(func() error {
			t := newTally()
			st := newCoordinateSamples(bins > 0)
			for i := 0; i < n; i++ {
				if i%256 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				s := newSample(length)
				for p, prop := range sampleProperties {
					t.record(p, prop.check(s), s.String)
				}
				st.push(s.a)
			}
			tallies[w], coords[w] = t, st
			log.Debug().Int("worker", w).Int("samples", n).Msg("worker finished")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("verification stopped: %w", err)
	}
	report.Checks = append(report.Checks, mergeTallies(tallies)...)
	report.Coordinates = summarize(coords, bins)
	report.Elapsed = time.Since(start).Round(time.Millisecond).String()

	log.Info().Int("checks", len(report.Checks)).Int("failures", report.Failures()).
		Str("elapsed", report.Elapsed).Msg("verification done")
	return report, nil
}
