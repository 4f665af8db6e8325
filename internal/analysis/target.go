package analysis

import "github.com/ALEYI17/InfraSight_layerprof/pkg/types"

// OptimizationTarget returns the layer type with the largest aggregate share.
// Ties go to the type that comes first in types.LayerTypes.
func OptimizationTarget(pm PercentMap) types.LayerType {
	best := types.LayerTypes[0]
	for _, lt := range types.LayerTypes[1:] {
		if pm[lt] > pm[best] {
			best = lt
		}
	}
	return best
}
