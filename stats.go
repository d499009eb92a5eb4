package main

import (
	"errors"
	"fmt"

	"github.com/aclements/go-moremath/stats"
)

// statNames fixes the order the statistics appear in the summary table.
var statNames = []string{"median", "mean", "stdev", "minimum", "maximum"}

var errTooFewSamples = errors.New("standard deviation needs at least two samples")

// Summary holds the descriptive statistics of one series of timing samples.
type Summary struct {
	Median  float64
	Mean    float64
	Stdev   float64
	Minimum float64
	Maximum float64
}

// values returns the statistics in statNames order.
func (s Summary) values() []float64 {
	return []float64{s.Median, s.Mean, s.Stdev, s.Minimum, s.Maximum}
}

type columnSummary struct {
	name  string
	stats Summary
}

// summarize reduces a series of samples to its Summary. The standard
// deviation is the sample standard deviation, so at least two samples are
// required. The input slice is left untouched.
func summarize(samples []float64) (Summary, error) {
	if len(samples) < 2 {
		return Summary{}, fmt.Errorf("%w, got %d", errTooFewSamples, len(samples))
	}
	sample := stats.Sample{Xs: append([]float64(nil), samples...)}
	sample.Sort()
	return Summary{
		Median:  sample.Quantile(0.5),
		Mean:    sample.Mean(),
		Stdev:   sample.StdDev(),
		Minimum: sample.Quantile(0),
		Maximum: sample.Quantile(1),
	}, nil
}

// summarizeColumns summarizes every column, preserving column order.
func summarizeColumns(cols []column) ([]columnSummary, error) {
	summaries := make([]columnSummary, 0, len(cols))
	for _, col := range cols {
		s, err := summarize(col.samples)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", col.name, err)
		}
		summaries = append(summaries, columnSummary{name: col.name, stats: s})
	}
	return summaries, nil
}
