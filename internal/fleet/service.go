package fleet

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"chipscope/internal/analysis"
	"chipscope/internal/boardspec"
	"chipscope/internal/miner"
	"chipscope/internal/platform/config"
	"chipscope/internal/topology"
	"chipscope/pkg/platform/circuit"
)

// Fetcher scrapes one miner. Satisfied by *miner.Client; tests substitute a
// fake.
type Fetcher interface {
	Fetch(ctx context.Context, host, user, pass string) (miner.Data, error)
	FetchSystemInfo(ctx context.Context, host string) (miner.SystemInfo, error)
}

// SnapshotSink receives completed snapshots. Satisfied by store.SnapshotStore.
type SnapshotSink interface {
	Put(ctx context.Context, snap *Snapshot) error
}

// SnapshotObserver receives completed snapshots for metrics export.
type SnapshotObserver interface {
	ObserveSnapshot(snap *Snapshot)
	ObservePoll(d time.Duration)
}

// Service runs the poll cycle: fetch every configured miner, analyze, and
// publish one fleet snapshot.
type Service struct {
	fetcher       Fetcher
	sink          SnapshotSink
	observer      SnapshotObserver
	logger        *slog.Logger
	miners        []config.Miner
	breakers      map[string]*minerBreaker
	fetchTimeout  time.Duration
	maxConcurrent int
	tracer        trace.Tracer
}

// breakerFailureThreshold consecutive fetch failures open a miner's circuit;
// while open, every probeEvery-th cycle lets one probe through so a repaired
// unit comes back on its own.
const (
	breakerFailureThreshold = 3
	probeEvery              = 5
)

// errCircuitOpen is the snapshot entry message for skipped miners.
const errCircuitOpen = "skipped: miner circuit open"

// minerBreaker pairs a circuit breaker with the skip counter that admits
// periodic probes while the circuit is open.
type minerBreaker struct {
	*circuit.Breaker

	mu      sync.Mutex
	skipped int
}

// allow reports whether this cycle should attempt the fetch.
func (b *minerBreaker) allow() bool {
	if !b.IsOpen() {
		return true
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.skipped++
	if b.skipped >= probeEvery {
		b.skipped = 0
		return true
	}
	return false
}

// NewService wires a fleet poller. observer may be nil (no metrics export).
func NewService(
	fetcher Fetcher,
	sink SnapshotSink,
	observer SnapshotObserver,
	logger *slog.Logger,
	cfg config.Config,
) *Service {
	maxConcurrent := cfg.MaxConcurrent
	if maxConcurrent <= 0 {
		// errgroup treats a zero limit as "admit nothing".
		maxConcurrent = 1
	}
	fetchTimeout := cfg.FetchTimeout
	if fetchTimeout <= 0 {
		fetchTimeout = 30 * time.Second
	}
	breakers := make(map[string]*minerBreaker, len(cfg.Miners))
	for _, mc := range cfg.Miners {
		breakers[mc.ID] = &minerBreaker{
			Breaker: circuit.New(mc.ID, circuit.WithFailureThreshold(breakerFailureThreshold)),
		}
	}
	return &Service{
		fetcher:       fetcher,
		sink:          sink,
		observer:      observer,
		logger:        logger,
		miners:        cfg.Miners,
		breakers:      breakers,
		fetchTimeout:  fetchTimeout,
		maxConcurrent: maxConcurrent,
		tracer:        otel.Tracer("chipscope/fleet"),
	}
}

// Run polls immediately and then on every tick until ctx is done.
func (s *Service) Run(ctx context.Context, interval time.Duration) {
	if _, err := s.PollOnce(ctx); err != nil {
		s.logger.Error("initial poll failed", "error", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.PollOnce(ctx); err != nil {
				s.logger.Error("poll failed", "error", err)
			}
		}
	}
}

// PollOnce fetches all miners concurrently and publishes one snapshot.
// Per-miner failures degrade that miner to an error entry; only a snapshot
// store failure is reported as an error.
func (s *Service) PollOnce(ctx context.Context) (*Snapshot, error) {
	ctx, span := s.tracer.Start(ctx, "fleet.poll")
	defer span.End()
	start := time.Now()

	results := make([]MinerSnapshot, len(s.miners))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)
	for i, mc := range s.miners {
		i, mc := i, mc
		g.Go(func() error {
			results[i] = s.pollMiner(gctx, mc)
			return nil
		})
	}
	// Workers only record results; the group never returns an error.
	_ = g.Wait()

	snap := &Snapshot{
		ID:      uuid.NewString(),
		TakenAt: time.Now().UTC(),
		Miners:  results,
	}

	if s.observer != nil {
		s.observer.ObserveSnapshot(snap)
		s.observer.ObservePoll(time.Since(start))
	}
	if err := s.sink.Put(ctx, snap); err != nil {
		return nil, err
	}

	s.logger.Info("poll complete",
		"snapshot_id", snap.ID,
		"miners", len(results),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return snap, nil
}

func (s *Service) pollMiner(ctx context.Context, mc config.Miner) MinerSnapshot {
	ctx, span := s.tracer.Start(ctx, "fleet.fetch",
		trace.WithAttributes(attribute.String("miner.id", mc.ID)))
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	ms := MinerSnapshot{MinerID: mc.ID, Host: mc.Host, Model: mc.Model}

	breaker := s.breakers[mc.ID]
	if breaker != nil && !breaker.allow() {
		ms.Err = errCircuitOpen
		return ms
	}

	data, err := s.fetcher.Fetch(ctx, mc.Host, mc.User, mc.Pass)
	if err != nil {
		s.logger.Warn("miner fetch failed", "miner", mc.ID, "error", err)
		if breaker != nil {
			if _, change := breaker.RecordFailure(); change.Opened {
				s.logger.Warn("miner circuit opened", "miner", mc.ID)
			}
		}
		ms.Err = err.Error()
		return ms
	}
	if breaker != nil {
		if _, change := breaker.RecordSuccess(); change.Closed {
			s.logger.Info("miner circuit closed", "miner", mc.ID)
		}
	}

	if ms.Model == "" {
		// Model drives the board-spec lookup; absence just means we infer
		// geometry from the chip count instead.
		if info, err := s.fetcher.FetchSystemInfo(ctx, mc.Host); err == nil {
			ms.Model = info.Model
		}
	}

	ms.Data = data
	ms.ChipsPerDomain = resolveChipsPerDomain(ms.Model, data)
	ms.Analyses = analysis.AnalyzeSlots(data.Slots, ms.ChipsPerDomain)
	return ms
}

// resolveChipsPerDomain prefers the hardware table and falls back to
// inference from the first board's chip count.
func resolveChipsPerDomain(model string, data miner.Data) int {
	if spec := boardspec.Lookup(model); spec != nil {
		return spec.ChipsPerDomain
	}
	if len(data.Slots) > 0 {
		return topology.InferChipsPerDomain(len(data.Slots[0].Chips))
	}
	return 3
}
