// Package httptransport is the thin HTTP layer over the fleet snapshot. It
// delegates to the store and poller without embedding analysis logic so
// transport concerns stay isolated.
package httptransport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"chipscope/internal/fleet"
	"chipscope/internal/heatmap"
	dErrors "chipscope/pkg/domain-errors"
	"chipscope/pkg/platform/httputil"
	"chipscope/pkg/platform/sentinel"
)

// SnapshotSource reads the latest fleet snapshot.
type SnapshotSource interface {
	Latest(ctx context.Context) (*fleet.Snapshot, error)
	Health(ctx context.Context) error
}

// Poller triggers an immediate fleet poll.
type Poller interface {
	PollOnce(ctx context.Context) (*fleet.Snapshot, error)
}

// Handler serves the fleet API.
type Handler struct {
	logger *slog.Logger
	source SnapshotSource
	poller Poller
}

// NewHandler creates the fleet API handler.
func NewHandler(source SnapshotSource, poller Poller, logger *slog.Logger) *Handler {
	return &Handler{
		logger: logger,
		source: source,
		poller: poller,
	}
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.source.Health(r.Context()); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnavailable, "snapshot store unreachable"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := h.latest(r.Context(), w)
	if snap == nil || err != nil {
		return
	}
	httputil.WriteJSON(w, http.StatusOK, snap)
}

func (h *Handler) handleMiner(w http.ResponseWriter, r *http.Request) {
	snap, err := h.latest(r.Context(), w)
	if snap == nil || err != nil {
		return
	}
	ms := snap.Miner(chi.URLParam(r, "id"))
	if ms == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "unknown miner id"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ms)
}

// minerHeatmap is the render-ready response: one grid per slot, laid out by
// the same topology module the analysis used.
type minerHeatmap struct {
	MinerID        string         `json:"miner_id"`
	Model          string         `json:"model,omitempty"`
	ChipsPerDomain int            `json:"chips_per_domain"`
	Slots          []heatmap.Grid `json:"slots"`
}

func (h *Handler) handleMinerHeatmap(w http.ResponseWriter, r *http.Request) {
	snap, err := h.latest(r.Context(), w)
	if snap == nil || err != nil {
		return
	}
	ms := snap.Miner(chi.URLParam(r, "id"))
	if ms == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "unknown miner id"))
		return
	}
	if ms.Err != "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnavailable, "miner did not respond in the last poll"))
		return
	}

	resp := minerHeatmap{
		MinerID:        ms.MinerID,
		Model:          ms.Model,
		ChipsPerDomain: ms.ChipsPerDomain,
		Slots:          make([]heatmap.Grid, 0, len(ms.Data.Slots)),
	}
	for i, slot := range ms.Data.Slots {
		if i < len(ms.Analyses) {
			resp.Slots = append(resp.Slots, heatmap.Build(slot, ms.ChipsPerDomain, ms.Analyses[i]))
		} else {
			resp.Slots = append(resp.Slots, heatmap.Build(slot, ms.ChipsPerDomain, nil))
		}
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) handlePoll(w http.ResponseWriter, r *http.Request) {
	snap, err := h.poller.PollOnce(r.Context())
	if err != nil {
		h.logger.Error("manual poll failed", "error", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusAccepted, map[string]string{
		"snapshot_id": snap.ID,
	})
}

// latest fetches the current snapshot and writes the error response itself
// when there is none yet.
func (h *Handler) latest(ctx context.Context, w http.ResponseWriter) (*fleet.Snapshot, error) {
	snap, err := h.source.Latest(ctx)
	if errors.Is(err, sentinel.ErrNotFound) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "no snapshot yet"))
		return nil, err
	}
	if err != nil {
		h.logger.Error("load snapshot", "error", err)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "load snapshot"))
		return nil, err
	}
	return snap, nil
}
