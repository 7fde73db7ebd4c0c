package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline block characters representing 8 vertical levels (lowest to highest).
const sparklineBlocks = "▁▂▃▄▅▆▇█"

var sparklineBlockRunes = []rune(sparklineBlocks)

// RenderSparkline creates a sparkline visualization from a slice of float64
// values, rendered in the given color. The width parameter determines how
// many of the most recent data points to display. Values are mapped to 8
// vertical levels based on the min/max range of the visible window.
func RenderSparkline(data []float64, width int, color lipgloss.Color) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}

	// Use only the most recent 'width' data points
	if len(data) > width {
		data = data[len(data)-width:]
	}

	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	var sb strings.Builder
	sb.Grow(len(data) * 4) // UTF-8 block chars are up to 3 bytes + some buffer

	numLevels := len(sparklineBlockRunes)
	valueRange := maxVal - minVal

	for _, v := range data {
		var level int
		if valueRange == 0 {
			// All values are the same, use middle level
			level = numLevels / 2
		} else {
			normalized := (v - minVal) / valueRange
			level = int(normalized * float64(numLevels-1))
			if level < 0 {
				level = 0
			} else if level >= numLevels {
				level = numLevels - 1
			}
		}
		sb.WriteRune(sparklineBlockRunes[level])
	}

	return lipgloss.NewStyle().Foreground(color).Render(sb.String())
}

// RenderUptimeBar renders one block per check: a filled block for a passing
// check, a ground-level block for a failing one. Values are expected to be
// 0 or 1, oldest first.
func RenderUptimeBar(ups []float64, width int) string {
	if len(ups) == 0 || width <= 0 {
		return ""
	}

	if len(ups) > width {
		ups = ups[len(ups)-width:]
	}

	upStyle := lipgloss.NewStyle().Foreground(ColorSuccess)
	downStyle := lipgloss.NewStyle().Foreground(ColorError)

	var sb strings.Builder
	for _, v := range ups {
		if v > 0 {
			sb.WriteString(upStyle.Render("█"))
		} else {
			sb.WriteString(downStyle.Render("▁"))
		}
	}
	return sb.String()
}
