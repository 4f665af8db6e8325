// Package history summarizes how layer timings vary across recorded runs.
package history

import (
	"errors"
	"fmt"
	"slices"

	"github.com/ALEYI17/InfraSight_layerprof/internal/analysis"
	"github.com/ALEYI17/InfraSight_layerprof/internal/dataset"
	"golang.org/x/perf/benchmath"
)

// TotalLabel names the summary of the per-run total time.
const TotalLabel = "TOTAL"

var ErrNoRuns = errors.New("no runs to summarize")

// LayerSummary is the spread of one layer across runs. Share is the layer's
// fraction of its own run's total; it is unset for the TOTAL entry.
type LayerSummary struct {
	Label  string
	Runs   int
	Millis benchmath.Summary
	Share  benchmath.Summary
}

// Summarize returns one entry per layer, in dataset order, followed by the
// TOTAL entry. Every run must list the same layers in the same order.
func Summarize(runs []dataset.Dataset, confidence float64) ([]LayerSummary, error) {
	if len(runs) == 0 {
		return nil, ErrNoRuns
	}

	labels := runs[0].Labels()
	millis := make([][]float64, len(labels))
	shares := make([][]float64, len(labels))
	totals := make([]float64, 0, len(runs))

	for _, run := range runs {
		if !slices.Equal(run.Labels(), labels) {
			return nil, fmt.Errorf("run %s: layers differ from run %s", run.Name, runs[0].Name)
		}

		percents, err := analysis.Percentages(run)
		if err != nil {
			return nil, err
		}

		for i, m := range run.Measurements {
			millis[i] = append(millis[i], m.Millis)
			shares[i] = append(shares[i], percents[i])
		}
		totals = append(totals, run.TotalTime)
	}

	assumption := benchmath.AssumeNothing
	summaries := make([]LayerSummary, 0, len(labels)+1)
	for i, label := range labels {
		summaries = append(summaries, LayerSummary{
			Label:  label,
			Runs:   len(runs),
			Millis: assumption.Summary(benchmath.NewSample(millis[i], &benchmath.DefaultThresholds), confidence),
			Share:  assumption.Summary(benchmath.NewSample(shares[i], &benchmath.DefaultThresholds), confidence),
		})
	}
	summaries = append(summaries, LayerSummary{
		Label:  TotalLabel,
		Runs:   len(runs),
		Millis: assumption.Summary(benchmath.NewSample(totals, &benchmath.DefaultThresholds), confidence),
	})

	return summaries, nil
}
