package analysis

import (
	"errors"
	"fmt"

	"github.com/ALEYI17/InfraSight_layerprof/internal/dataset"
)

var ErrDivisionByZero = errors.New("total time is zero")

// Percentages returns each measurement's share of the dataset total, in input order.
// Shares are fractions, not scaled by 100.
func Percentages(d dataset.Dataset) ([]float64, error) {
	if d.TotalTime == 0 {
		return nil, fmt.Errorf("dataset %s: %w", d.Name, ErrDivisionByZero)
	}

	out := make([]float64, len(d.Measurements))
	for i, m := range d.Measurements {
		out[i] = m.Millis / d.TotalTime
	}
	return out, nil
}
