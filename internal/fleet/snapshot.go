// Package fleet polls every configured miner, runs the chip analysis over the
// scraped readings, and publishes the combined result as the current fleet
// snapshot.
package fleet

import (
	"time"

	"chipscope/internal/analysis"
	"chipscope/internal/miner"
)

// MinerSnapshot is one unit's contribution to a fleet snapshot. Either Data
// and Analyses are populated, or Err explains why the unit was skipped this
// cycle; a failing miner never aborts the poll.
type MinerSnapshot struct {
	MinerID        string                    `json:"miner_id"`
	Host           string                    `json:"host"`
	Model          string                    `json:"model,omitempty"`
	ChipsPerDomain int                       `json:"chips_per_domain"`
	Data           miner.Data                `json:"data"`
	Analyses       [][]analysis.ChipAnalysis `json:"analyses"`
	Err            string                    `json:"error,omitempty"`
}

// Snapshot is the latest reading of the whole fleet. Snapshots are immutable
// once published; a new poll cycle replaces the previous snapshot wholesale.
type Snapshot struct {
	ID      string          `json:"id"`
	TakenAt time.Time       `json:"taken_at"`
	Miners  []MinerSnapshot `json:"miners"`
}

// Miner returns the snapshot entry for a miner ID, or nil.
func (s *Snapshot) Miner(id string) *MinerSnapshot {
	for i := range s.Miners {
		if s.Miners[i].MinerID == id {
			return &s.Miners[i]
		}
	}
	return nil
}
