package dataset

import (
	"errors"
	"fmt"

	"github.com/ALEYI17/InfraSight_layerprof/pkg/types"
)

var ErrUnknownDataset = errors.New("unknown dataset")

// Dataset is one recorded inference run. TotalTime is authored next to the
// measurements and is never recomputed from them.
type Dataset struct {
	Name         string
	Measurements []Measurement
	TotalTime    float64
}

func (d Dataset) Labels() []string {
	labels := make([]string, len(d.Measurements))
	for i, m := range d.Measurements {
		labels[i] = m.Label()
	}
	return labels
}

// FromLabels builds a Dataset from parallel label and time slices.
func FromLabels(name string, labels []string, millis []float64, total float64) (Dataset, error) {
	if len(labels) != len(millis) {
		return Dataset{}, fmt.Errorf("dataset %s: %d labels for %d times", name, len(labels), len(millis))
	}

	ms := make([]Measurement, 0, len(labels))
	for i, label := range labels {
		m, err := NewMeasurement(label, millis[i])
		if err != nil {
			return Dataset{}, fmt.Errorf("dataset %s: %w", name, err)
		}
		ms = append(ms, m)
	}

	return Dataset{Name: name, Measurements: ms, TotalTime: total}, nil
}

func layers(conv, relu, pool [3]float64, fc, softmax float64) []Measurement {
	var ms []Measurement
	for i, stage := range []string{"L1", "L2", "L3"} {
		ms = append(ms,
			Measurement{Type: types.LAYER_CONV, Instance: stage, Millis: conv[i]},
			Measurement{Type: types.LAYER_RELU, Instance: stage, Millis: relu[i]},
			Measurement{Type: types.LAYER_POOL, Instance: stage, Millis: pool[i]},
		)
	}
	return append(ms,
		Measurement{Type: types.LAYER_FC, Instance: "L1", Millis: fc},
		Measurement{Type: types.LAYER_SOFTMAX, Instance: "L1", Millis: softmax},
	)
}

// Baseline is the run the report is generated from.
func Baseline() Dataset {
	return Dataset{
		Name: "baseline",
		Measurements: layers(
			[3]float64{3420.643, 3549.732, 982.790},
			[3]float64{37.688, 26.207, 0.950},
			[3]float64{93.438, 29.309, 7.467},
			6.636,
			0.832,
		),
		TotalTime: 8155.692,
	}
}

func revision2() Dataset {
	return Dataset{
		Name: "revision2",
		Measurements: layers(
			[3]float64{3393.842, 1352.251, 350.123},
			[3]float64{80.353, 15.664, 2.901},
			[3]float64{248.324, 55.850, 13.701},
			8.922,
			1.150,
		),
		TotalTime: 5523.081,
	}
}

func revision3() Dataset {
	return Dataset{
		Name: "revision3",
		Measurements: layers(
			[3]float64{2394.059, 998.259, 256.852},
			[3]float64{22.884, 6.347, 1.411},
			[3]float64{81.863, 19.392, 3.342},
			8.509,
			1.008,
		),
		TotalTime: 3793.926,
	}
}

// Archive returns every recorded run, oldest first.
func Archive() []Dataset {
	return []Dataset{Baseline(), revision2(), revision3()}
}

func Lookup(name string) (Dataset, error) {
	for _, d := range Archive() {
		if d.Name == name {
			return d, nil
		}
	}
	return Dataset{}, fmt.Errorf("%w: %s", ErrUnknownDataset, name)
}
