package ui

import (
	"bytes"
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestColorConstants(t *testing.T) {
	// Test that color constants are valid hex colors
	colors := []lipgloss.Color{
		ColorNeonPink,
		ColorNeonCyan,
		ColorNeonPurple,
		ColorNeonGreen,
		ColorNeonOrange,
		ColorNeonAmber,
		ColorDeepVoid,
		ColorDarkSurface,
		ColorGlassBorder,
		ColorSuccess,
		ColorError,
		ColorWarning,
		ColorInfo,
		ColorPrimary,
		ColorSecondary,
		ColorMuted,
	}

	for _, color := range colors {
		colorStr := string(color)
		assert.NotEmpty(t, colorStr, "color should not be empty")
		assert.True(t, colorStr[0] == '#', "color should start with #: %s", colorStr)
		assert.Len(t, colorStr, 7, "color should be 7 chars (#RRGGBB): %s", colorStr)
	}
}

func TestGradientColors(t *testing.T) {
	assert.NotEmpty(t, GradientColors)
	assert.Len(t, GradientColors, 4)

	for i, color := range GradientColors {
		colorStr := string(color)
		assert.NotEmpty(t, colorStr, "gradient color %d should not be empty", i)
		assert.True(t, colorStr[0] == '#', "gradient color should start with #")
	}
}

func TestSemanticColorsAreUnique(t *testing.T) {
	semanticColors := []lipgloss.Color{
		ColorSuccess,
		ColorError,
		ColorWarning,
		ColorInfo,
	}

	seen := make(map[string]bool)
	for _, c := range semanticColors {
		colorStr := string(c)
		assert.False(t, seen[colorStr], "semantic colors should be unique, found duplicate: %s", colorStr)
		seen[colorStr] = true
	}
}

func TestStylesAreFunctional(t *testing.T) {
	styles := []struct {
		name  string
		style lipgloss.Style
	}{
		{"Success", SuccessStyle()},
		{"Error", ErrorStyle()},
		{"Warning", WarningStyle()},
		{"Info", InfoStyle()},
		{"Muted", MutedStyle()},
	}

	for _, tt := range styles {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				result := tt.style.Render("test text")
				assert.Contains(t, result, "test text")
			})
		})
	}
}

func TestSymbolsAreUnique(t *testing.T) {
	symbols := []string{
		SymbolUp,
		SymbolDown,
		SymbolUnknown,
		SymbolRefresh,
		SymbolWarning,
	}

	seen := make(map[string]bool)
	for _, s := range symbols {
		assert.NotEmpty(t, s)
		assert.False(t, seen[s], "symbols should be unique, found duplicate: %s", s)
		seen[s] = true
	}
}

func TestPrintWarning(t *testing.T) {
	// Capture stderr
	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	PrintWarning("test warning message")

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)
	output := buf.String()

	assert.Contains(t, output, "test warning message")
	assert.Contains(t, output, SymbolWarning)
}

func TestDisableColors(t *testing.T) {
	assert.NotPanics(t, func() {
		DisableColors()
	})

	// After DisableColors, styles should still work but produce plain text
	style := SuccessStyle()
	rendered := style.Render("test")
	assert.Contains(t, rendered, "test")
}
