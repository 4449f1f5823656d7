// Package heatmap turns a slot's linear chip sequence into the visual grid of
// the physical board. Both the HTTP API and the terminal UI render from this
// package, so the drawn layout always agrees with the topology the analysis
// engine scored: the section split comes from internal/topology and is never
// recomputed here.
package heatmap

import (
	"chipscope/internal/analysis"
	"chipscope/internal/miner"
	"chipscope/internal/topology"
)

// Band buckets a chip temperature for coloring.
type Band string

const (
	BandCool     Band = "cool"
	BandWarm     Band = "warm"
	BandHot      Band = "hot"
	BandCritical Band = "critical"
)

// BandForTemp classifies a chip temperature. Thresholds match the firmware
// UI conventions: warm at 60, hot at 70, critical at 80.
func BandForTemp(temp int) Band {
	switch {
	case temp >= 80:
		return BandCritical
	case temp >= 70:
		return BandHot
	case temp >= 60:
		return BandWarm
	default:
		return BandCool
	}
}

// Cell is one drawable chip. Nil cells in a grid are ragged-tail gaps where
// the last domain has fewer chips.
type Cell struct {
	ChipIndex int                   `json:"chip_index"`
	Chip      miner.Chip            `json:"chip"`
	Analysis  analysis.ChipAnalysis `json:"analysis"`
	Band      Band                  `json:"band"`
}

// Grid is the render-ready layout of one slot. Rows run top to bottom within
// each section; columns run left to right as drawn:
//
//	Top:    [D_bottom][D_bottom+1]...[D_max]   (intake at the right edge)
//	Bottom: [D_bottom-1]...[D1][D0]            (intake at the right edge)
//
// which reproduces the physical snake: both intakes sit on the right, and the
// two exhaust-side domains meet at the left seam.
type Grid struct {
	SlotID         int       `json:"slot_id"`
	ChipsPerDomain int       `json:"chips_per_domain"`
	NumDomains     int       `json:"num_domains"`
	BottomDomains  int       `json:"bottom_domains"`
	TopDomains     int       `json:"top_domains"`
	Top            [][]*Cell `json:"top"`
	Bottom         [][]*Cell `json:"bottom"`
}

// Build lays out one slot. analyses may be nil; cells then carry zero scores.
func Build(slot miner.Slot, chipsPerDomain int, analyses []analysis.ChipAnalysis) Grid {
	layout := topology.NewLayout(len(slot.Chips), chipsPerDomain)
	g := Grid{
		SlotID:         slot.ID,
		ChipsPerDomain: layout.ChipsPerDomain,
		NumDomains:     layout.NumDomains,
		BottomDomains:  layout.BottomDomains,
		TopDomains:     layout.TopDomains,
	}
	if !layout.Valid() {
		return g
	}

	if layout.TopDomains > 0 {
		g.Top = section(slot, layout, analyses, layout.BottomDomains, layout.NumDomains, false)
	}
	g.Bottom = section(slot, layout, analyses, 0, layout.BottomDomains, true)
	return g
}

// section renders domains [start, end) as chipsPerDomain rows. reversed draws
// the highest domain leftmost so D0 lands on the right edge.
func section(slot miner.Slot, layout topology.Layout, analyses []analysis.ChipAnalysis, start, end int, reversed bool) [][]*Cell {
	count := end - start
	rows := make([][]*Cell, layout.ChipsPerDomain)
	for row := 0; row < layout.ChipsPerDomain; row++ {
		cells := make([]*Cell, count)
		for i := 0; i < count; i++ {
			domain := start + i
			if reversed {
				domain = end - 1 - i
			}
			idx := layout.ChipIndex(domain, row)
			if idx < 0 {
				continue
			}
			cell := &Cell{
				ChipIndex: idx,
				Chip:      slot.Chips[idx],
				Band:      BandForTemp(slot.Chips[idx].Temp),
			}
			if idx < len(analyses) {
				cell.Analysis = analyses[idx]
			}
			cells[i] = cell
		}
		rows[row] = cells
	}
	return rows
}
