package ui

import "github.com/charmbracelet/lipgloss"

// Base palette, before night tint and idle dim are applied
const (
	baseWhite    = "#E8F0F8"
	baseBlue     = "#6FB7FF"
	baseCyan     = "#39D0D8"
	baseMid      = "#7A8C9E"
	baseFaint    = "#3A4754"
	baseBarBG    = "#101820"
	baseBorder   = "#2E4A66"
	baseBorderHi = "#6FB7FF"
	baseWarn     = "#FFB454"
	baseDanger   = "#FF5C57"
)

// Palette holds the frame's effective colors. It is rebuilt whenever the
// night shift tint or idle dim level changes, so every widget picks up the
// overlay without tracking it individually.
type Palette struct {
	Text     lipgloss.Color
	Bright   lipgloss.Color
	Accent   lipgloss.Color
	Mid      lipgloss.Color
	Faint    lipgloss.Color
	BarBG    lipgloss.Color
	Border   lipgloss.Color
	BorderHi lipgloss.Color
	Warn     lipgloss.Color
	Danger   lipgloss.Color
}

// NewPalette derives the effective palette. warmth is the night shift
// overlay opacity (0 = off), level the brightness factor (1 = full,
// lowered while dimmed).
func NewPalette(warmth, level float64) Palette {
	c := func(hex string) lipgloss.Color {
		return lipgloss.Color(scaleHex(blendHex(hex, warmTarget, warmth), level))
	}
	return Palette{
		Text:     c(baseWhite),
		Bright:   c(baseBlue),
		Accent:   c(baseCyan),
		Mid:      c(baseMid),
		Faint:    c(baseFaint),
		BarBG:    c(baseBarBG),
		Border:   c(baseBorder),
		BorderHi: c(baseBorderHi),
		Warn:     c(baseWarn),
		Danger:   c(baseDanger),
	}
}

// Style builders

func (p Palette) Bar() lipgloss.Style {
	return lipgloss.NewStyle().Background(p.BarBG).Foreground(p.Text).Padding(0, 1)
}

func (p Palette) BarKey() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Bright).Bold(true)
}

func (p Palette) BarLabel() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Mid)
}

func (p Palette) Title() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Bright).Bold(true).Padding(0, 1)
}

func (p Palette) Panel() lipgloss.Style {
	return lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Border)
}

func (p Palette) PanelActive() lipgloss.Style {
	return lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.BorderHi)
}

func (p Palette) Clock() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Text).Bold(true)
}

func (p Palette) ClockSuffix() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Mid)
}

func (p Palette) Countdown() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Accent).Bold(true)
}

func (p Palette) CountdownUrgent() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Warn).Bold(true)
}

func (p Palette) CountdownCritical() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Danger).Bold(true)
}

func (p Palette) Help() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Faint)
}

func (p Palette) CursorRow() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.BarBG).Background(p.Bright).Bold(true)
}

func (p Palette) Ticker() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Mid).Italic(true)
}

func (p Palette) Banner() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.BarBG).Background(p.Warn).Bold(true).Padding(0, 1)
}
