package service

import (
	"context"
	"fmt"
	"time"

	"printer_sync/internal/logger"
	"printer_sync/internal/models"
	"printer_sync/internal/repository"
	"printer_sync/internal/state"

	"github.com/google/uuid"
)

const recorderBuffer = 16

// RecorderService persists every state change and turns transitions
// (status, job, filament, link) into history events.
type RecorderService struct {
	store     *state.Store
	stateRepo repository.StateRepo
	eventRepo repository.EventRepo
	log       *logger.Logger
}

func NewRecorderService(store *state.Store, stateRepo repository.StateRepo, eventRepo repository.EventRepo, log *logger.Logger) *RecorderService {
	if log == nil {
		log = logger.Nop()
	}
	return &RecorderService{
		store:     store,
		stateRepo: stateRepo,
		eventRepo: eventRepo,
		log:       log,
	}
}

// Run consumes state notifications until ctx is canceled. The snapshot
// persisted by a previous run is the baseline, so transitions across a
// restart are recorded as well.
func (s *RecorderService) Run(ctx context.Context) {
	updates, cancel := s.store.Subscribe(recorderBuffer)
	defer cancel()

	prev := s.baseline(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case st, ok := <-updates:
			if !ok {
				return
			}
			s.record(ctx, prev, st)
			prev = st
		}
	}
}

func (s *RecorderService) baseline(ctx context.Context) models.PrinterState {
	persisted, found, err := s.stateRepo.Load(ctx)
	if err != nil {
		s.log.Warnw("recorder_load_baseline_failed", "err", err)
	}
	if err != nil || !found {
		return s.store.Snapshot()
	}
	return persisted
}

func (s *RecorderService) record(ctx context.Context, prev, next models.PrinterState) {
	if err := s.stateRepo.Save(ctx, next); err != nil {
		s.log.Errorw("recorder_save_state_failed", "err", err)
	}
	for _, ev := range diffEvents(prev, next, next.UpdatedAt) {
		if err := s.eventRepo.Append(ctx, ev); err != nil {
			s.log.Errorw("recorder_append_event_failed", "err", err, "type", ev.Type)
			continue
		}
		s.log.Infow("printer_event", "type", ev.Type, "description", ev.Description)
	}
}

// diffEvents lists the transitions between two snapshots.
func diffEvents(prev, next models.PrinterState, at time.Time) []models.PrinterEvent {
	if at.IsZero() {
		at = time.Now()
	}
	var out []models.PrinterEvent
	add := func(typ, desc string, meta map[string]any) {
		out = append(out, models.PrinterEvent{
			EventID:     uuid.NewString(),
			OccurredAt:  at.UTC(),
			Type:        typ,
			Description: desc,
			Metadata:    meta,
		})
	}

	if prev.Status != next.Status {
		add(models.EventStatusChange,
			fmt.Sprintf("Status changed from %s to %s", prev.Status, next.Status),
			map[string]any{"from": prev.Status, "to": next.Status})
	}

	if from, to := prev.Job.FilenameOrEmpty(), next.Job.FilenameOrEmpty(); from != to {
		desc := "Job unloaded"
		if to != "" {
			desc = "Job loaded: " + to
		}
		add(models.EventJobChange, desc, map[string]any{"from": from, "to": to})
	}

	switch {
	case prev.Sensor.Filament && !next.Sensor.Filament:
		add(models.EventFilamentRunout, "Filament runout detected",
			map[string]any{"status": next.Status, "completion": next.Progress.Completion})
	case !prev.Sensor.Filament && next.Sensor.Filament:
		add(models.EventFilamentRestored, "Filament present", nil)
	}

	switch {
	case prev.Link.Connected && !next.Link.Connected:
		add(models.EventLinkLost, "Backend unreachable",
			map[string]any{"error": next.Link.LastError})
	case !prev.Link.Connected && next.Link.Connected:
		add(models.EventLinkRestored, "Backend reachable", nil)
	}

	return out
}
