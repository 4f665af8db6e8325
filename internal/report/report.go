package report

import (
	"bytes"
	"fmt"

	"github.com/ALEYI17/InfraSight_layerprof/internal/analysis"
	"github.com/ALEYI17/InfraSight_layerprof/pkg/types"
)

// Render builds the full three-question report for res.
func Render(res *analysis.Result) []byte {
	var buf bytes.Buffer

	buf.WriteString("\nQUESTION 1\n\n")
	for i, m := range res.Dataset.Measurements {
		fmt.Fprintf(&buf, "%-15s: %-10s ms / %-10s\n",
			m.Label(), formatMillis(m.Millis), formatPercent(res.Percents[i]))
	}

	buf.WriteString("\nQUESTION 2\n\n")
	for _, lt := range types.LayerTypes {
		fmt.Fprintf(&buf, "%-15s: %-10s\n", lt, formatPercent(res.ByType[lt]))
	}

	buf.WriteString("\nQUESTION 3\n\n")
	for _, lt := range types.LayerTypes {
		fmt.Fprintf(&buf, "%-15s: %3.2fx\n", lt, res.Speedups[lt])
	}

	fmt.Fprintf(&buf, "\nLayer we should optimize: %s\n", res.Target)

	return buf.Bytes()
}
