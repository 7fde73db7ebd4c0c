package dashboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rolandbouwer/appdash/internal/ui"
)

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		name   string
		val    float64
		minVal float64
		maxVal float64
		want   float64
	}{
		{"middle value", 0.5, 0, 1, 0.5},
		{"min value", 0, 0, 1, 0},
		{"max value", 1, 0, 1, 1},
		{"degenerate range", 0.3, 0.3, 0.3, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeValue(tt.val, tt.minVal, tt.maxVal))
		})
	}
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 0, clampInt(-5, 10))
	assert.Equal(t, 5, clampInt(5, 10))
	assert.Equal(t, 10, clampInt(15, 10))
}

func TestRenderBrailleSparkline_Empty(t *testing.T) {
	assert.Empty(t, RenderBrailleSparkline(nil, 10, 2, ui.ColorNeonCyan))
	assert.Empty(t, RenderBrailleSparkline([]float64{0.1}, 0, 2, ui.ColorNeonCyan))
	assert.Empty(t, RenderBrailleSparkline([]float64{0.1}, 10, 0, ui.ColorNeonCyan))
}

func TestRenderBrailleSparkline_Dimensions(t *testing.T) {
	data := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}
	out := RenderBrailleSparkline(data, 10, 2, ui.ColorNeonCyan)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2, "one output line per graph row")
	for _, line := range lines {
		assert.Equal(t, 10, len([]rune(stripAnsi(line))), "each row should span the full width")
	}
}

func TestRenderBrailleSparkline_UsesBrailleRange(t *testing.T) {
	data := []float64{0.1, 0.9, 0.3, 0.7}
	out := stripAnsi(RenderBrailleSparkline(data, 4, 2, ui.ColorNeonCyan))

	for _, r := range out {
		if r == '\n' {
			continue
		}
		assert.True(t, r >= '⠀' && r <= '⣿', "expected braille rune, got %q", r)
	}
}

func TestResampleData(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, resampleData(nil, 10))
		assert.Nil(t, resampleData([]float64{1}, 0))
	})

	t.Run("short data passes through", func(t *testing.T) {
		data := []float64{0.1, 0.2}
		assert.Equal(t, data, resampleData(data, 10))
	})

	t.Run("downsampling preserves peaks", func(t *testing.T) {
		// A spike buried mid-bucket must survive
		data := []float64{0.1, 0.1, 5.0, 0.1, 0.1, 0.1, 0.1, 0.1}
		out := resampleData(data, 4)

		assert.Len(t, out, 4)
		found := false
		for _, v := range out {
			if v == 5.0 {
				found = true
			}
		}
		assert.True(t, found, "peak should survive downsampling")
	})
}
