package verify

import (
	"github.com/samber/lo"
)

// Check is the outcome of one named property.
type Check struct {
	Name     string `yaml:"name"`
	Runs     int    `yaml:"runs"`
	Failures int    `yaml:"failures"`
	// Example describes the first failing input, if any.
	Example string `yaml:"example,omitempty"`
}

// Report is what Run returns.
type Report struct {
	Samples        int     `yaml:"samples"`
	ScrambleLength int     `yaml:"scramble_length"`
	Workers        int     `yaml:"workers"`
	Elapsed        string  `yaml:"elapsed"`
	Checks         []Check `yaml:"checks"`

	Coordinates []Distribution `yaml:"coordinates"`
}

// Failures counts failed runs over every check.
func (r *Report) Failures() int {
	return lo.SumBy(r.Checks, func(c Check) int { return c.Failures })
}

// Failed lists the checks with at least one failure.
func (r *Report) Failed() []Check {
	return lo.Filter(r.Checks, func(c Check, _ int) bool { return c.Failures > 0 })
}

func (r *Report) Passed() bool {
	return r.Failures() == 0
}

// Check looks a check up by name.
func (r *Report) Check(name string) (Check, bool) {
	return lo.Find(r.Checks, func(c Check) bool { return c.Name == name })
}

// tally accumulates one worker's results, one entry per sample property.
type tally []Check

func newTally() tally {
	return lo.Map(sampleProperties, func(p property, _ int) Check {
		return Check{Name: p.name}
	})
}

func (t tally) record(i int, ok bool, example func() string) {
	t[i].Runs++
	if ok {
		return
	}
	t[i].Failures++
	if t[i].Example == "" {
		t[i].Example = example()
	}
}

// mergeTallies sums per-worker tallies into one list of checks.
func mergeTallies(ts []tally) []Check {
	merged := newTally()
	for _, t := range ts {
		for i, c := range t {
			merged[i].Runs += c.Runs
			merged[i].Failures += c.Failures
			if merged[i].Example == "" {
				merged[i].Example = c.Example
			}
		}
	}
	return merged
}
