package ui

import (
	"fmt"
	"strconv"
)

// warmTarget is the amber the night shift blends toward.
const warmTarget = "#FF9329"

// blendHex mixes base toward over by alpha (0 keeps base, 1 yields over).
// Inputs are "#RRGGBB"; malformed values fall back to base.
func blendHex(base, over string, alpha float64) string {
	br, bg, bb, ok1 := splitHex(base)
	or, og, ob, ok2 := splitHex(over)
	if !ok1 || !ok2 {
		return base
	}
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	mix := func(a, b int) int {
		return int(float64(a)*(1-alpha) + float64(b)*alpha)
	}
	return fmt.Sprintf("#%02X%02X%02X", mix(br, or), mix(bg, og), mix(bb, ob))
}

// scaleHex multiplies each channel by factor, clamped to 0..1.
func scaleHex(hex string, factor float64) string {
	r, g, b, ok := splitHex(hex)
	if !ok {
		return hex
	}
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	scale := func(c int) int { return int(float64(c) * factor) }
	return fmt.Sprintf("#%02X%02X%02X", scale(r), scale(g), scale(b))
}

func splitHex(hex string) (r, g, b int, ok bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, false
	}
	rv, err1 := strconv.ParseInt(hex[1:3], 16, 32)
	gv, err2 := strconv.ParseInt(hex[3:5], 16, 32)
	bv, err3 := strconv.ParseInt(hex[5:7], 16, 32)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, false
	}
	return int(rv), int(gv), int(bv), true
}
