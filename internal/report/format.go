package report

import (
	"fmt"
	"strconv"
	"strings"
)

// formatMillis prints the shortest decimal that reads back as v,
// keeping a ".0" on whole numbers (5 prints as "5.0").
func formatMillis(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// formatPercent prints a fraction as a percentage with two decimals.
func formatPercent(p float64) string {
	return fmt.Sprintf("%.2f%%", p*100)
}
