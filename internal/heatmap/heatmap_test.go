package heatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chipscope/internal/analysis"
	"chipscope/internal/miner"
)

func testSlot(temps ...int) miner.Slot {
	chips := make([]miner.Chip, len(temps))
	for i, temp := range temps {
		chips[i] = miner.Chip{ID: i, Temp: temp}
	}
	return miner.Slot{ID: 1, Chips: chips}
}

func TestBandForTemp(t *testing.T) {
	assert.Equal(t, BandCool, BandForTemp(0))
	assert.Equal(t, BandCool, BandForTemp(59))
	assert.Equal(t, BandWarm, BandForTemp(60))
	assert.Equal(t, BandWarm, BandForTemp(69))
	assert.Equal(t, BandHot, BandForTemp(70))
	assert.Equal(t, BandHot, BandForTemp(79))
	assert.Equal(t, BandCritical, BandForTemp(80))
	assert.Equal(t, BandCritical, BandForTemp(120))
}

func TestBuildLayout(t *testing.T) {
	// 12 chips at 3 per domain: D0,D1 bottom and D2,D3 top.
	slot := testSlot(50, 51, 52, 53, 54, 55, 56, 57, 58, 59, 60, 61)
	g := Build(slot, 3, nil)

	assert.Equal(t, 1, g.SlotID)
	assert.Equal(t, 4, g.NumDomains)
	assert.Equal(t, 2, g.BottomDomains)
	assert.Equal(t, 2, g.TopDomains)
	require.Len(t, g.Top, 3)
	require.Len(t, g.Bottom, 3)

	// Top section draws domains left to right: D2 then D3.
	require.Len(t, g.Top[0], 2)
	assert.Equal(t, 6, g.Top[0][0].ChipIndex)
	assert.Equal(t, 9, g.Top[0][1].ChipIndex)
	assert.Equal(t, 7, g.Top[1][0].ChipIndex)

	// Bottom section is reversed so D0 sits at the right edge, under the
	// top-section intake side.
	require.Len(t, g.Bottom[0], 2)
	assert.Equal(t, 3, g.Bottom[0][0].ChipIndex)
	assert.Equal(t, 0, g.Bottom[0][1].ChipIndex)
	assert.Equal(t, 5, g.Bottom[2][0].ChipIndex)
	assert.Equal(t, 2, g.Bottom[2][1].ChipIndex)
}

func TestBuildCarriesChipAndBand(t *testing.T) {
	slot := testSlot(55, 65, 75, 85, 50, 50)
	g := Build(slot, 3, nil)

	// Chips 0..2 are D0 (bottom, drawn rightmost); chips 3..5 are D1 (top).
	cell := g.Bottom[2][0]
	require.NotNil(t, cell)
	assert.Equal(t, 2, cell.ChipIndex)
	assert.Equal(t, 75, cell.Chip.Temp)
	assert.Equal(t, BandHot, cell.Band)

	assert.Equal(t, BandCool, g.Bottom[0][0].Band)
	assert.Equal(t, BandWarm, g.Bottom[1][0].Band)
	assert.Equal(t, BandCritical, g.Top[0][0].Band)
}

func TestBuildAttachesAnalyses(t *testing.T) {
	slot := testSlot(50, 90, 50)
	scores := []analysis.ChipAnalysis{
		{}, {Gradient: 40, NonceDeficit: 12.5}, {},
	}
	g := Build(slot, 3, scores)

	cell := g.Bottom[1][0]
	require.NotNil(t, cell)
	assert.Equal(t, 1, cell.ChipIndex)
	assert.InDelta(t, 40.0, cell.Analysis.Gradient, 1e-9)
	assert.InDelta(t, 12.5, cell.Analysis.NonceDeficit, 1e-9)
}

func TestBuildRaggedTailLeavesGaps(t *testing.T) {
	// 10 chips at 3 per domain: D3 (top section) holds only chip 9.
	slot := testSlot(50, 50, 50, 50, 50, 50, 50, 50, 50, 50)
	g := Build(slot, 3, nil)

	require.Equal(t, 4, g.NumDomains)
	require.Len(t, g.Top, 3)

	// D3 is the rightmost top column; only row 0 exists.
	require.NotNil(t, g.Top[0][1])
	assert.Equal(t, 9, g.Top[0][1].ChipIndex)
	assert.Nil(t, g.Top[1][1])
	assert.Nil(t, g.Top[2][1])
}

func TestBuildShortAnalysesTolerated(t *testing.T) {
	slot := testSlot(50, 50, 50, 50, 50, 50)
	g := Build(slot, 3, []analysis.ChipAnalysis{{Gradient: 5}})

	require.NotNil(t, g.Bottom[0][0])
	assert.InDelta(t, 5.0, g.Bottom[0][0].Analysis.Gradient, 1e-9)
	// Positions past the analysis slice carry zero scores.
	assert.Zero(t, g.Top[0][0].Analysis.Gradient)
}

func TestBuildInvalidLayout(t *testing.T) {
	g := Build(miner.Slot{ID: 2}, 3, nil)
	assert.Equal(t, 2, g.SlotID)
	assert.Empty(t, g.Top)
	assert.Empty(t, g.Bottom)

	g = Build(testSlot(50, 50), 0, nil)
	assert.Empty(t, g.Bottom)
}
