package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chipscope/internal/analysis"
	"chipscope/internal/fleet"
	"chipscope/internal/miner"
)

func TestObserveSnapshot(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry(reg)

	snap := &fleet.Snapshot{
		ID: "snap-1",
		Miners: []fleet.MinerSnapshot{
			{
				MinerID: "rack1-01",
				Data: miner.Data{Slots: []miner.Slot{{
					ID:        0,
					Temp:      68.5,
					NonceRate: 3182,
					Chips: []miner.Chip{
						{ID: 0, Temp: 75, Nonce: 1000},
						{ID: 1, Temp: 71, Nonce: 900},
					},
				}}},
				Analyses: [][]analysis.ChipAnalysis{{
					{Gradient: 4, CrossSlotZScore: 1.5, NonceDeficit: 0},
					{Gradient: 0, CrossSlotZScore: 0, NonceDeficit: 5.26},
				}},
			},
			{MinerID: "rack1-02", Err: "connection refused"},
		},
	}

	m.ObserveSnapshot(snap)

	temp := m.ChipTemperature.WithLabelValues("rack1-01", "0", "0")
	assert.InDelta(t, 75, testutil.ToFloat64(temp), 1e-9)

	gradient := m.ChipGradient.WithLabelValues("rack1-01", "0", "0")
	assert.InDelta(t, 4, testutil.ToFloat64(gradient), 1e-9)

	deficit := m.ChipDeficit.WithLabelValues("rack1-01", "0", "1")
	assert.InDelta(t, 5.26, testutil.ToFloat64(deficit), 1e-9)

	slotTemp := m.SlotTemperature.WithLabelValues("rack1-01", "0")
	assert.InDelta(t, 68.5, testutil.ToFloat64(slotTemp), 1e-9)

	failures := m.PollFailures.WithLabelValues("rack1-02")
	assert.InDelta(t, 1, testutil.ToFloat64(failures), 1e-9)
}

func TestObserveSnapshotWithoutAnalyses(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry())

	snap := &fleet.Snapshot{Miners: []fleet.MinerSnapshot{{
		MinerID: "rack1-01",
		Data: miner.Data{Slots: []miner.Slot{{
			ID:    0,
			Chips: []miner.Chip{{ID: 0, Temp: 60}},
		}}},
	}}}

	require.NotPanics(t, func() { m.ObserveSnapshot(snap) })
	temp := m.ChipTemperature.WithLabelValues("rack1-01", "0", "0")
	assert.InDelta(t, 60, testutil.ToFloat64(temp), 1e-9)
}

func TestObservePoll(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry())

	m.ObservePoll(250 * time.Millisecond)
	m.ObservePoll(100 * time.Millisecond)

	assert.InDelta(t, 2, testutil.ToFloat64(m.PollsTotal), 1e-9)
}
