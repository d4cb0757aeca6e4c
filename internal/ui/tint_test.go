package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlendHexEndpoints(t *testing.T) {
	require.Equal(t, "#000000", blendHex("#000000", "#FFFFFF", 0))
	require.Equal(t, "#FFFFFF", blendHex("#000000", "#FFFFFF", 1))
	require.Equal(t, "#7F7F7F", blendHex("#000000", "#FFFFFF", 0.5))
}

func TestBlendHexClampsAlpha(t *testing.T) {
	require.Equal(t, "#102030", blendHex("#102030", "#FFFFFF", -2))
	require.Equal(t, "#FFFFFF", blendHex("#102030", "#FFFFFF", 5))
}

func TestBlendHexMalformedFallsBack(t *testing.T) {
	require.Equal(t, "red", blendHex("red", "#FFFFFF", 0.5))
	require.Equal(t, "#102030", blendHex("#102030", "nope", 0.5))
}

func TestScaleHex(t *testing.T) {
	require.Equal(t, "#7F4010", scaleHex("#FF8020", 0.5))
	require.Equal(t, "#000000", scaleHex("#FF8020", 0))
	require.Equal(t, "#FF8020", scaleHex("#FF8020", 1))
}

func TestPaletteTintShiftsWarm(t *testing.T) {
	plain := NewPalette(0, 1)
	warm := NewPalette(0.5, 1)
	require.NotEqual(t, plain.Text, warm.Text)

	// Full brightness, no tint leaves the base colors untouched.
	require.Equal(t, baseWhite, string(plain.Text))
}
