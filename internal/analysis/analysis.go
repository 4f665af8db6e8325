package analysis

import (
	"github.com/ALEYI17/InfraSight_layerprof/internal/dataset"
	"github.com/ALEYI17/InfraSight_layerprof/pkg/logutil"
	"github.com/ALEYI17/InfraSight_layerprof/pkg/types"
	"go.uber.org/zap"
)

// Result holds everything the report needs for one dataset.
type Result struct {
	Dataset      dataset.Dataset
	Percents     []float64
	ByType       PercentMap
	Speedups     SpeedupMap
	Acceleration float64
	Target       types.LayerType
}

func Analyze(d dataset.Dataset, factor float64) (*Result, error) {
	logger := logutil.GetLogger()

	percents, err := Percentages(d)
	if err != nil {
		return nil, err
	}

	byType, err := Aggregate(d.Measurements, percents)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Dataset:      d,
		Percents:     percents,
		ByType:       byType,
		Speedups:     Speedups(byType, factor),
		Acceleration: factor,
		Target:       OptimizationTarget(byType),
	}

	logger.Info("Analyzed dataset",
		zap.String("dataset", d.Name),
		zap.Int("layers", len(d.Measurements)),
		zap.Float64("total_ms", d.TotalTime),
		zap.String("target", res.Target.String()),
		zap.Float64("target_share", byType[res.Target]),
		zap.Float64("target_speedup", res.Speedups[res.Target]))

	return res, nil
}
