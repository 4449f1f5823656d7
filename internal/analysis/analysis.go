// Package analysis flags thermally and performance anomalous chips. It runs
// three independent scores over a snapshot of slots:
//
//   - Gradient: local hotspot detection against airflow-upstream neighbors.
//   - CrossSlotZScore: one-sided deviation versus the same flat position on
//     every other slot.
//   - NonceDeficit: percentage shortfall of valid shares below the slot
//     average.
//
// The engine is pure arithmetic over the current snapshot: no I/O, no
// retained state, and no fallible paths. Every edge case (empty slots, zero
// chips-per-domain, zero average nonce, missing neighbors or samples)
// degrades to a zero-valued record instead of an error, so "no data" never
// interrupts a caller that only wants to paint a grid.
package analysis

import (
	"math"

	"chipscope/internal/miner"
	"chipscope/internal/topology"
)

// ChipAnalysis is the per-chip result record. Output slices are index-aligned
// with the input chips; all fields are >= 0.
type ChipAnalysis struct {
	// Gradient is how many degrees hotter the chip is than the mean of its
	// upstream/row neighbors. Zero when the chip is at or below that mean;
	// cold spots are not flagged.
	Gradient float64 `json:"gradient"`
	// CrossSlotZScore is the one-sided standardized deviation of the chip's
	// temperature versus the same flat index on all slots.
	CrossSlotZScore float64 `json:"cross_slot_zscore"`
	// NonceDeficit is the percentage below the slot-average nonce count, in
	// [0,100]. Zero for chips at or above average.
	NonceDeficit float64 `json:"nonce_deficit"`
}

// positionStats is the cross-slot aggregate for one flat chip index.
type positionStats struct {
	mean float64
	std  float64
}

// AnalyzeSlots scores every chip on every slot. The returned outer slice is
// parallel to slots; each inner slice is parallel to that slot's chips.
// chipsPerDomain must be the same physical value for all slots or the
// cross-slot comparison is meaningless; it is the caller's job (board-spec
// lookup or inference) to supply it.
func AnalyzeSlots(slots []miner.Slot, chipsPerDomain int) [][]ChipAnalysis {
	if len(slots) == 0 {
		return nil
	}

	// Phase one: aggregate temperatures by flat position across all slots.
	// Slots with fewer chips contribute no sample at the indices they lack;
	// absence shrinks the sample set rather than biasing it toward zero.
	maxChips := 0
	for _, s := range slots {
		if len(s.Chips) > maxChips {
			maxChips = len(s.Chips)
		}
	}
	stats := make([]positionStats, maxChips)
	temps := make([]float64, 0, len(slots))
	for pos := 0; pos < maxChips; pos++ {
		temps = temps[:0]
		for _, s := range slots {
			if pos < len(s.Chips) {
				temps = append(temps, float64(s.Chips[pos].Temp))
			}
		}
		stats[pos] = meanStd(temps)
	}

	// Phase two: score each slot independently against the shared table.
	out := make([][]ChipAnalysis, len(slots))
	for i, s := range slots {
		out[i] = analyzeSlot(s, chipsPerDomain, stats)
	}
	return out
}

// analyzeSlot scores one slot using the pre-built cross-slot table.
func analyzeSlot(slot miner.Slot, chipsPerDomain int, stats []positionStats) []ChipAnalysis {
	chips := slot.Chips
	results := make([]ChipAnalysis, len(chips))

	layout := topology.NewLayout(len(chips), chipsPerDomain)
	if !layout.Valid() {
		return results
	}

	avgNonce := slotAvgNonce(chips)

	for idx, chip := range chips {
		var r ChipAnalysis

		neighbors := layout.UpstreamNeighbors(idx)
		r.Gradient = hotGradient(chip.Temp, chips, neighbors)

		if idx < len(stats) {
			r.CrossSlotZScore = hotZScore(chip.Temp, stats[idx])
		}

		r.NonceDeficit = nonceDeficit(chip.Nonce, avgNonce)

		results[idx] = r
	}
	return results
}

// hotGradient returns how much hotter the chip runs than the mean of its
// neighbor temperatures, floored at zero. No neighbors means no basis for
// comparison.
func hotGradient(temp int, chips []miner.Chip, neighbors []int) float64 {
	if len(neighbors) == 0 {
		return 0
	}
	sum := 0.0
	for _, n := range neighbors {
		sum += float64(chips[n].Temp)
	}
	g := float64(temp) - sum/float64(len(neighbors))
	if g < 0 {
		return 0
	}
	return g
}

// uniformStdCutoff guards the z-score against division by a near-zero spread.
// Below it the fleet is effectively uniform and the raw deviation is reported
// instead, capped so a uniform fleet never produces an extreme score.
const (
	uniformStdCutoff = 0.5
	uniformScoreCap  = 3.0
)

// hotZScore is the one-sided standardized deviation versus the cross-slot
// distribution at the chip's position. Chips at or below the mean score zero.
func hotZScore(temp int, ps positionStats) float64 {
	deviation := float64(temp) - ps.mean
	if deviation <= 0 {
		return 0
	}
	if ps.std < uniformStdCutoff {
		return math.Min(deviation, uniformScoreCap)
	}
	return deviation / ps.std
}

// meanStd computes the population mean and standard deviation (divide by N).
// Empty input yields (0, 0); a single sample has zero spread.
func meanStd(samples []float64) positionStats {
	if len(samples) == 0 {
		return positionStats{}
	}
	n := float64(len(samples))
	sum := 0.0
	for _, v := range samples {
		sum += v
	}
	mean := sum / n
	if len(samples) == 1 {
		return positionStats{mean: mean}
	}
	variance := 0.0
	for _, v := range samples {
		d := v - mean
		variance += d * d
	}
	variance /= n
	return positionStats{mean: mean, std: math.Sqrt(variance)}
}

// slotAvgNonce averages the valid-share counts across a slot. Summation is
// int64 to match the firmware counters; division is floating point.
func slotAvgNonce(chips []miner.Chip) float64 {
	if len(chips) == 0 {
		return 0
	}
	var total int64
	for _, c := range chips {
		total += c.Nonce
	}
	return float64(total) / float64(len(chips))
}

// nonceDeficit is the chip's shortfall below the slot average as a percentage
// in [0,100]. A dead chip against a healthy average approaches 100.
func nonceDeficit(nonce int64, avg float64) float64 {
	if avg <= 0 {
		return 0
	}
	n := float64(nonce)
	if n >= avg {
		return 0
	}
	return (avg - n) / avg * 100
}
