package renderer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/slidesmith/slidesmith/internal/domain/entities"
)

// BackgroundCSS computes the CSS linear-gradient value for a layered
// background. Layers are walked in order, each occupying a two-stop color
// band from the running offset to the running offset plus its proportion.
// Proportions are taken as written: nothing checks that they sum to 100%,
// so under- or over-specified layers produce a gradient with gaps or
// overlap.
//
// The orientation mapping is fixed: horizontal flows top to bottom and
// vertical flows left to right. This matches the established output
// format and is pinned by tests.
func BackgroundCSS(bg entities.Background) string {
	if len(bg.Layers) == 0 {
		return ""
	}

	direction := "to bottom"
	if bg.Orientation == entities.OrientationVertical {
		direction = "to right"
	}

	stops := make([]string, 0, len(bg.Layers)*2)
	offset := 0.0
	for _, layer := range bg.Layers {
		proportion := parsePercentage(layer.Proportion)
		stops = append(stops,
			layer.Color+" "+formatPercentage(offset),
			layer.Color+" "+formatPercentage(offset+proportion),
		)
		offset += proportion
	}

	return fmt.Sprintf("linear-gradient(%s, %s)", direction, strings.Join(stops, ", "))
}

// parsePercentage reads a CSS percentage string like "30%". Malformed
// values count as zero, collapsing the layer to an empty band.
func parsePercentage(s string) float64 {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// formatPercentage renders a number as a CSS percentage without trailing
// zeros.
func formatPercentage(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
