package analysis

import "github.com/ALEYI17/InfraSight_layerprof/pkg/types"

// DefaultAcceleration is how much faster an optimized layer type is assumed to run.
const DefaultAcceleration = 4.0

type SpeedupMap map[types.LayerType]float64

// Speedup is Amdahl's Law: the fraction p of the run gets factor times
// faster while the remaining 1-p is unchanged.
func Speedup(p, factor float64) float64 {
	return 1 / ((1 - p) + p/factor)
}

func Speedups(pm PercentMap, factor float64) SpeedupMap {
	out := make(SpeedupMap, len(pm))
	for lt, p := range pm {
		out[lt] = Speedup(p, factor)
	}
	return out
}
