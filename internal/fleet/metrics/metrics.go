// Package metrics exports the fleet's chip readings and analysis scores to
// Prometheus so alerting and dashboards live outside the daemon.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"chipscope/internal/fleet"
)

// Metrics holds all Prometheus metrics for the fleet poller.
type Metrics struct {
	ChipTemperature *prometheus.GaugeVec
	ChipGradient    *prometheus.GaugeVec
	ChipZScore      *prometheus.GaugeVec
	ChipDeficit     *prometheus.GaugeVec
	SlotTemperature *prometheus.GaugeVec
	SlotNonceRate   *prometheus.GaugeVec

	PollsTotal   prometheus.Counter
	PollFailures *prometheus.CounterVec
	PollDuration prometheus.Histogram
}

// New creates all metrics on the default Prometheus registry.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates and registers all metrics on reg.
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	chipLabels := []string{"miner", "slot", "chip"}
	slotLabels := []string{"miner", "slot"}
	return &Metrics{
		ChipTemperature: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "chipscope_chip_temperature_celsius",
			Help: "Last reported temperature per chip",
		}, chipLabels),
		ChipGradient: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "chipscope_chip_gradient_celsius",
			Help: "Degrees hotter than airflow-upstream neighbors (0 = not a hotspot)",
		}, chipLabels),
		ChipZScore: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "chipscope_chip_cross_slot_zscore",
			Help: "One-sided z-score versus the same position on sibling boards",
		}, chipLabels),
		ChipDeficit: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "chipscope_chip_nonce_deficit_percent",
			Help: "Percentage below the board-average valid nonce count",
		}, chipLabels),
		SlotTemperature: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "chipscope_slot_temperature_celsius",
			Help: "Board-level temperature",
		}, slotLabels),
		SlotNonceRate: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "chipscope_slot_nonce_rate",
			Help: "Board-level valid nonce rate per second",
		}, slotLabels),
		PollsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "chipscope_polls_total",
			Help: "Completed fleet poll cycles",
		}),
		PollFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "chipscope_poll_failures_total",
			Help: "Per-miner fetch failures",
		}, []string{"miner"}),
		PollDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "chipscope_poll_duration_seconds",
			Help:    "Wall time of a full fleet poll cycle",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// ObservePoll records one completed poll cycle.
func (m *Metrics) ObservePoll(d time.Duration) {
	m.PollsTotal.Inc()
	m.PollDuration.Observe(d.Seconds())
}

// ObserveSnapshot refreshes the per-chip and per-slot gauges from a completed
// poll cycle.
func (m *Metrics) ObserveSnapshot(snap *fleet.Snapshot) {
	for _, ms := range snap.Miners {
		if ms.Err != "" {
			m.PollFailures.WithLabelValues(ms.MinerID).Inc()
			continue
		}
		for si, slot := range ms.Data.Slots {
			slotLabel := strconv.Itoa(slot.ID)
			m.SlotTemperature.WithLabelValues(ms.MinerID, slotLabel).Set(slot.Temp)
			m.SlotNonceRate.WithLabelValues(ms.MinerID, slotLabel).Set(float64(slot.NonceRate))

			for ci, chip := range slot.Chips {
				chipLabel := strconv.Itoa(chip.ID)
				m.ChipTemperature.WithLabelValues(ms.MinerID, slotLabel, chipLabel).Set(float64(chip.Temp))
				if si < len(ms.Analyses) && ci < len(ms.Analyses[si]) {
					a := ms.Analyses[si][ci]
					m.ChipGradient.WithLabelValues(ms.MinerID, slotLabel, chipLabel).Set(a.Gradient)
					m.ChipZScore.WithLabelValues(ms.MinerID, slotLabel, chipLabel).Set(a.CrossSlotZScore)
					m.ChipDeficit.WithLabelValues(ms.MinerID, slotLabel, chipLabel).Set(a.NonceDeficit)
				}
			}
		}
	}
}
