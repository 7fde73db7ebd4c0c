package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderSparkline_EmptyData(t *testing.T) {
	result := RenderSparkline([]float64{}, 10, ColorNeonCyan)
	assert.Empty(t, result, "empty data should return empty string")
}

func TestRenderSparkline_NilData(t *testing.T) {
	result := RenderSparkline(nil, 10, ColorNeonCyan)
	assert.Empty(t, result, "nil data should return empty string")
}

func TestRenderSparkline_ZeroWidth(t *testing.T) {
	result := RenderSparkline([]float64{0.1, 0.2, 0.3}, 0, ColorNeonCyan)
	assert.Empty(t, result, "zero width should return empty string")
}

func TestRenderSparkline_SingleValue(t *testing.T) {
	result := RenderSparkline([]float64{0.5}, 10, ColorNeonCyan)
	assert.NotEmpty(t, result, "single value should produce output")
	assert.True(t, containsBlockChar(result), "should contain a block character")
}

func TestRenderSparkline_IncreasingValues(t *testing.T) {
	data := []float64{0.1, 0.2, 0.3, 0.4, 0.5}
	result := RenderSparkline(data, 10, ColorNeonCyan)

	stripped := stripANSI(result)
	assert.Equal(t, 5, len([]rune(stripped)), "should have one block per data point")
}

func TestRenderSparkline_MixedBoundaries(t *testing.T) {
	data := []float64{0, 0.5, 1.0}
	result := RenderSparkline(data, 10, ColorNeonCyan)

	runes := []rune(stripANSI(result))
	assert.Equal(t, '▁', runes[0], "minimum should map to lowest block")
	assert.Equal(t, '█', runes[2], "maximum should map to highest block")
}

func TestRenderSparkline_WidthTruncation(t *testing.T) {
	// Data has 10 points, but we only want to show 5
	data := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0}
	result := RenderSparkline(data, 5, ColorNeonCyan)

	stripped := stripANSI(result)
	assert.Equal(t, 5, len([]rune(stripped)), "should show only last 5 data points")
}

func TestRenderSparkline_DataShorterThanWidth(t *testing.T) {
	data := []float64{0.25, 0.5, 0.75}
	result := RenderSparkline(data, 10, ColorNeonCyan)

	stripped := stripANSI(result)
	assert.Equal(t, 3, len([]rune(stripped)), "should show all 3 data points")
}

func TestRenderSparkline_AllSameValues(t *testing.T) {
	result := RenderSparkline([]float64{0.3, 0.3, 0.3, 0.3}, 10, ColorNeonCyan)
	assert.NotEmpty(t, result, "same values should produce output")
}

func TestRenderUptimeBar(t *testing.T) {
	result := RenderUptimeBar([]float64{1, 1, 0, 1}, 10)

	stripped := stripANSI(result)
	assert.Equal(t, "██▁█", stripped)
}

func TestRenderUptimeBar_Empty(t *testing.T) {
	assert.Empty(t, RenderUptimeBar(nil, 10))
	assert.Empty(t, RenderUptimeBar([]float64{1, 0}, 0))
}

func TestRenderUptimeBar_WidthTruncation(t *testing.T) {
	result := RenderUptimeBar([]float64{0, 0, 1, 1, 1}, 3)

	stripped := stripANSI(result)
	assert.Equal(t, "███", stripped, "should keep only the most recent checks")
}

func TestSparklineBlocksConstant(t *testing.T) {
	// Verify the blocks are in ascending order (visual height)
	expected := "▁▂▃▄▅▆▇█"
	assert.Equal(t, expected, sparklineBlocks, "sparkline blocks should be in ascending order")
}

// Helper functions

func containsBlockChar(s string) bool {
	blocks := "▁▂▃▄▅▆▇█"
	for _, r := range s {
		if strings.ContainsRune(blocks, r) {
			return true
		}
	}
	return false
}

func stripANSI(s string) string {
	// Simple ANSI stripper for testing
	var result strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\033' {
			inEscape = true
			continue
		}
		if inEscape {
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}
