package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chipscope/internal/miner"
)

// slotFromTemps builds a slot with the given chip temperatures and a uniform
// nonce count so only the thermal scores vary.
func slotFromTemps(id int, temps ...int) miner.Slot {
	chips := make([]miner.Chip, len(temps))
	for i, temp := range temps {
		chips[i] = miner.Chip{ID: i, Temp: temp, Nonce: 1000}
	}
	return miner.Slot{ID: id, Chips: chips}
}

// slotFromNonces builds a slot with uniform temperatures and the given nonce
// counts so only the deficit score varies.
func slotFromNonces(id int, nonces ...int64) miner.Slot {
	chips := make([]miner.Chip, len(nonces))
	for i, nonce := range nonces {
		chips[i] = miner.Chip{ID: i, Temp: 55, Nonce: nonce}
	}
	return miner.Slot{ID: id, Chips: chips}
}

func TestAnalyzeSlotsEmpty(t *testing.T) {
	assert.Nil(t, AnalyzeSlots(nil, 3))
	assert.Nil(t, AnalyzeSlots([]miner.Slot{}, 3))
}

func TestAnalyzeSlotsInvalidLayoutDegradesToZero(t *testing.T) {
	slots := []miner.Slot{slotFromTemps(0, 50, 60, 70)}
	out := AnalyzeSlots(slots, 0)
	require.Len(t, out, 1)
	require.Len(t, out[0], 3)
	for _, r := range out[0] {
		assert.Zero(t, r.Gradient)
		assert.Zero(t, r.CrossSlotZScore)
		assert.Zero(t, r.NonceDeficit)
	}
}

func TestUniformBoardScoresZero(t *testing.T) {
	slots := []miner.Slot{
		slotFromTemps(0, 55, 55, 55, 55, 55, 55),
		slotFromTemps(1, 55, 55, 55, 55, 55, 55),
		slotFromTemps(2, 55, 55, 55, 55, 55, 55),
	}
	out := AnalyzeSlots(slots, 3)
	require.Len(t, out, 3)
	for _, slot := range out {
		require.Len(t, slot, 6)
		for _, r := range slot {
			assert.Zero(t, r.Gradient)
			assert.Zero(t, r.CrossSlotZScore)
			assert.Zero(t, r.NonceDeficit)
		}
	}
}

func TestGradientBottomSectionAirflow(t *testing.T) {
	// One chip per domain: six domains, D0-D2 bottom, D3-D5 top. The bottom
	// intake (chip 0) has no upstream; chips 1 and 2 each run 10 degrees
	// hotter than their upstream neighbor.
	slots := []miner.Slot{slotFromTemps(0, 50, 60, 70, 50, 50, 50)}
	out := AnalyzeSlots(slots, 1)
	require.Len(t, out[0], 6)

	assert.InDelta(t, 0, out[0][0].Gradient, 1e-9)
	assert.InDelta(t, 10, out[0][1].Gradient, 1e-9)
	assert.InDelta(t, 10, out[0][2].Gradient, 1e-9)
	assert.InDelta(t, 0, out[0][3].Gradient, 1e-9)
	assert.InDelta(t, 0, out[0][4].Gradient, 1e-9)
	assert.InDelta(t, 0, out[0][5].Gradient, 1e-9)
}

func TestGradientTopSectionAirflow(t *testing.T) {
	// Top-section airflow runs from the highest domain downward: chip 3 is
	// compared against chip 4, chip 4 against chip 5, and chip 5 is the top
	// intake with no upstream.
	slots := []miner.Slot{slotFromTemps(0, 50, 50, 50, 80, 60, 50)}
	out := AnalyzeSlots(slots, 1)

	assert.InDelta(t, 20, out[0][3].Gradient, 1e-9)
	assert.InDelta(t, 10, out[0][4].Gradient, 1e-9)
	assert.InDelta(t, 0, out[0][5].Gradient, 1e-9)
}

func TestGradientColdSpotsIgnored(t *testing.T) {
	slots := []miner.Slot{slotFromTemps(0, 70, 60, 40, 70, 70, 70)}
	out := AnalyzeSlots(slots, 1)
	// Chip 2 runs 20 degrees colder than its upstream neighbor: not flagged.
	assert.Zero(t, out[0][2].Gradient)
}

func TestGradientSeamDomainsNotCrossCompared(t *testing.T) {
	// Chips 2 (last bottom domain) and 3 (first top domain) are both hot and
	// physically adjacent at the seam. If the seam were compared they would
	// mask each other; instead each is scored against its own cool upstream.
	slots := []miner.Slot{slotFromTemps(0, 50, 50, 90, 90, 50, 50)}
	out := AnalyzeSlots(slots, 1)

	assert.Greater(t, out[0][2].Gradient, 30.0)
	assert.Greater(t, out[0][3].Gradient, 30.0)
}

func TestGradientUsesRowNeighbors(t *testing.T) {
	// Two domains of three: D1 is the single top-section domain and therefore
	// the top intake, so chip 4 is averaged against its row neighbors only.
	slots := []miner.Slot{slotFromTemps(0, 50, 50, 50, 60, 80, 60)}
	out := AnalyzeSlots(slots, 3)

	// mean(60, 60) = 60 -> gradient 20
	assert.InDelta(t, 20.0, out[0][4].Gradient, 1e-9)

	// Four domains of two rows: chip 3 (D1, row 1, bottom section) averages
	// its upstream chip 1 with its row neighbor chip 2.
	slots = []miner.Slot{slotFromTemps(1, 50, 50, 60, 90, 50, 50, 50, 50)}
	out = AnalyzeSlots(slots, 2)
	assert.InDelta(t, 90-(50+60)/2.0, out[0][3].Gradient, 1e-9)
}

func TestCrossSlotOutlier(t *testing.T) {
	slots := []miner.Slot{
		slotFromTemps(0, 90, 50, 50),
		slotFromTemps(1, 50, 50, 50),
		slotFromTemps(2, 50, 50, 50),
	}
	out := AnalyzeSlots(slots, 3)

	assert.Greater(t, out[0][0].CrossSlotZScore, 1.0)
	assert.Zero(t, out[1][0].CrossSlotZScore)
	assert.Zero(t, out[2][0].CrossSlotZScore)
}

func TestCrossSlotCoolerChipIgnored(t *testing.T) {
	slots := []miner.Slot{
		slotFromTemps(0, 50, 50, 50),
		slotFromTemps(1, 90, 50, 50),
		slotFromTemps(2, 90, 50, 50),
	}
	out := AnalyzeSlots(slots, 3)
	// Slot 0 chip 0 sits below the cross-slot mean: one-sided score is zero.
	assert.Zero(t, out[0][0].CrossSlotZScore)
}

func TestCrossSlotNearUniformUsesRawDeviation(t *testing.T) {
	// Population std of {51, 50, 50} is ~0.47, under the uniformity cutoff.
	// The raw deviation (~0.67) is reported instead of deviation/std (~1.41),
	// so a trivially warmer chip in a uniform fleet is not flagged as extreme.
	slots := []miner.Slot{
		slotFromTemps(0, 51, 50, 50),
		slotFromTemps(1, 50, 50, 50),
		slotFromTemps(2, 50, 50, 50),
	}
	out := AnalyzeSlots(slots, 3)

	z := out[0][0].CrossSlotZScore
	assert.InDelta(t, 1.0/3.0*2, z, 1e-9)
	assert.Less(t, z, 1.0)
}

func TestCrossSlotSingleSlotScoresZero(t *testing.T) {
	// One slot means every position has a single sample: the chip is its own
	// mean and can never deviate from it.
	slots := []miner.Slot{slotFromTemps(0, 90, 50, 70)}
	out := AnalyzeSlots(slots, 3)
	for _, r := range out[0] {
		assert.Zero(t, r.CrossSlotZScore)
	}
}

func TestCrossSlotRaggedPositionsShrinkSample(t *testing.T) {
	// The second slot is short two chips; positions 4 and 5 have a single
	// sample and therefore score zero, while shared positions still compare.
	slots := []miner.Slot{
		slotFromTemps(0, 90, 50, 50, 50, 80, 80),
		slotFromTemps(1, 50, 50, 50, 50),
	}
	out := AnalyzeSlots(slots, 3)

	require.Len(t, out[0], 6)
	require.Len(t, out[1], 4)
	assert.Greater(t, out[0][0].CrossSlotZScore, 0.0)
	assert.Zero(t, out[0][4].CrossSlotZScore)
	assert.Zero(t, out[0][5].CrossSlotZScore)
}

func TestNonceDeficitUnderperformer(t *testing.T) {
	slots := []miner.Slot{slotFromNonces(0, 1000, 500, 1000)}
	out := AnalyzeSlots(slots, 3)

	// avg = 833.33; (833.33 - 500) / 833.33 = 40%
	assert.InDelta(t, 40.0, out[0][1].NonceDeficit, 1e-6)
	assert.Zero(t, out[0][0].NonceDeficit)
	assert.Zero(t, out[0][2].NonceDeficit)
}

func TestNonceDeficitDeadChip(t *testing.T) {
	slots := []miner.Slot{slotFromNonces(0, 1000, 0, 1000)}
	out := AnalyzeSlots(slots, 3)
	assert.InDelta(t, 100.0, out[0][1].NonceDeficit, 1e-9)
}

func TestNonceDeficitOverperformerScoresZero(t *testing.T) {
	slots := []miner.Slot{slotFromNonces(0, 1000, 5000, 1000)}
	out := AnalyzeSlots(slots, 3)
	assert.Zero(t, out[0][1].NonceDeficit)
}

func TestNonceDeficitZeroAverage(t *testing.T) {
	slots := []miner.Slot{slotFromNonces(0, 0, 0, 0)}
	out := AnalyzeSlots(slots, 3)
	for _, r := range out[0] {
		assert.Zero(t, r.NonceDeficit)
	}
}

func TestAnalyzeSlotsIdempotent(t *testing.T) {
	slots := []miner.Slot{
		slotFromTemps(0, 90, 50, 50, 70, 55, 62),
		slotFromTemps(1, 50, 52, 50, 50, 80, 50),
		slotFromNonces(2, 1000, 500, 0, 1200, 900, 1000),
	}
	first := AnalyzeSlots(slots, 3)
	second := AnalyzeSlots(slots, 3)
	assert.Equal(t, first, second)
}

func TestAnalyzeSlotsOutputAligned(t *testing.T) {
	slots := []miner.Slot{
		slotFromTemps(0, 50, 50, 50, 50),
		slotFromTemps(1, 50, 50),
	}
	out := AnalyzeSlots(slots, 3)
	require.Len(t, out, 2)
	assert.Len(t, out[0], 4)
	assert.Len(t, out[1], 2)
}
