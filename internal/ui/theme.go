// Package ui implements the chiptop terminal interface: a live chip map of
// one miner with the analysis overlays. Layout comes from internal/heatmap so
// the drawn grid always matches what the analysis engine scored.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"chipscope/internal/heatmap"
)

// WhatsMiner brand palette plus the temperature bands used by the firmware UI.
var (
	brandOrange = lipgloss.Color("#F7931A")

	bandCoolBg     = lipgloss.Color("#164E32")
	bandWarmBg     = lipgloss.Color("#714B0B")
	bandHotBg      = lipgloss.Color("#7C2D12")
	bandCriticalBg = lipgloss.Color("#7F1D1D")
	errorBg        = lipgloss.Color("#991B1B")

	textPrimary = lipgloss.Color("#F2F2F2")
	textMuted   = lipgloss.Color("#8A8A8A")
)

// Styles is the resolved style set for one render pass.
type Styles struct {
	Header    lipgloss.Style
	SlotTitle lipgloss.Style
	Status    lipgloss.Style
	Muted     lipgloss.Style
	Help      lipgloss.Style

	cellBase lipgloss.Style
	gap      lipgloss.Style
}

// NewStyles builds the default style set.
func NewStyles() Styles {
	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(brandOrange),
		SlotTitle: lipgloss.NewStyle().Foreground(brandOrange),
		Status:    lipgloss.NewStyle().Foreground(textPrimary),
		Muted:     lipgloss.NewStyle().Foreground(textMuted),
		Help:      lipgloss.NewStyle().Foreground(textMuted),
		cellBase:  lipgloss.NewStyle().Foreground(textPrimary).Padding(0, 1),
		gap:       lipgloss.NewStyle().Padding(0, 1),
	}
}

// bandBackground maps a temperature band to its cell background.
func bandBackground(band heatmap.Band) lipgloss.Color {
	switch band {
	case heatmap.BandCritical:
		return bandCriticalBg
	case heatmap.BandHot:
		return bandHotBg
	case heatmap.BandWarm:
		return bandWarmBg
	default:
		return bandCoolBg
	}
}

// Cell renders one chip cell. Coloring follows the selected mode:
// temperature bands, error counts, or CRC counts (error/CRC cells go red only
// when nonzero). Chips flagged by the analysis are rendered bold.
func (s Styles) Cell(cell *heatmap.Cell, mode ColorMode, flagged bool, text string) string {
	if cell == nil {
		return s.gap.Render(text)
	}

	bg := bandBackground(cell.Band)
	switch mode {
	case ColorErrors:
		if cell.Chip.Errors > 0 {
			bg = errorBg
		} else {
			bg = bandCoolBg
		}
	case ColorCRC:
		if cell.Chip.CRC > 0 {
			bg = errorBg
		} else {
			bg = bandCoolBg
		}
	}

	style := s.cellBase.Background(bg)
	if flagged {
		style = style.Bold(true).Foreground(brandOrange)
	}
	return style.Render(text)
}
