package dataset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ALEYI17/InfraSight_layerprof/pkg/types"
)

var (
	ErrInvalidLabel     = errors.New("label has no type prefix delimiter")
	ErrUnknownLayerType = errors.New("unknown layer type")
)

// Measurement is the elapsed time of one layer instance, in milliseconds.
type Measurement struct {
	Type     types.LayerType
	Instance string
	Millis   float64
}

func (m Measurement) Label() string {
	return string(m.Type) + "_" + m.Instance
}

// NewMeasurement builds a Measurement from a "<TYPE>_<INSTANCE>" label.
// The type is everything before the first underscore.
func NewMeasurement(label string, millis float64) (Measurement, error) {
	prefix, instance, ok := strings.Cut(label, "_")
	if !ok {
		return Measurement{}, fmt.Errorf("%q: %w", label, ErrInvalidLabel)
	}

	lt := types.LayerType(prefix)
	if !lt.Valid() {
		return Measurement{}, fmt.Errorf("%q: %w: %s", label, ErrUnknownLayerType, prefix)
	}

	return Measurement{Type: lt, Instance: instance, Millis: millis}, nil
}
