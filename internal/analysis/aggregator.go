package analysis

import (
	"fmt"
	"sync"

	"github.com/ALEYI17/InfraSight_layerprof/internal/dataset"
	"github.com/ALEYI17/InfraSight_layerprof/pkg/types"
)

type PercentMap map[types.LayerType]float64

type TypeAggregator struct {
	totals map[types.LayerType]float64
	mu     sync.Mutex
}

var _ types.Layer_collectors = (*TypeAggregator)(nil)

func NewTypeAggregator() *TypeAggregator {
	totals := make(map[types.LayerType]float64, len(types.LayerTypes))
	for _, lt := range types.LayerTypes {
		totals[lt] = 0
	}
	return &TypeAggregator{totals: totals}
}

func (ta *TypeAggregator) Update(lt types.LayerType, value float64) {
	ta.mu.Lock()
	defer ta.mu.Unlock()

	ta.totals[lt] += value
}

// Flush returns a copy of the accumulated totals; the aggregator keeps its state.
func (ta *TypeAggregator) Flush() map[types.LayerType]float64 {
	ta.mu.Lock()
	defer ta.mu.Unlock()

	out := make(map[types.LayerType]float64, len(ta.totals))
	for lt, v := range ta.totals {
		out[lt] = v
	}
	return out
}

// Collect feeds measurement shares into c in input order.
func Collect(c types.Layer_collectors, ms []dataset.Measurement, percents []float64) error {
	if len(ms) != len(percents) {
		return fmt.Errorf("%d measurements for %d percentages", len(ms), len(percents))
	}

	for i, m := range ms {
		if !m.Type.Valid() {
			return fmt.Errorf("%s: %w: %s", m.Label(), dataset.ErrUnknownLayerType, m.Type)
		}
		c.Update(m.Type, percents[i])
	}
	return nil
}

func Aggregate(ms []dataset.Measurement, percents []float64) (PercentMap, error) {
	agg := NewTypeAggregator()
	if err := Collect(agg, ms, percents); err != nil {
		return nil, err
	}
	return PercentMap(agg.Flush()), nil
}
