package service

import (
	"context"

	"printer_sync/internal/models"
	"printer_sync/internal/state"
)

type MonitoringService struct {
	store *state.Store
}

func NewMonitoringService(store *state.Store) *MonitoringService {
	return &MonitoringService{store: store}
}

// GetState returns the current snapshot. It never blocks on the backend.
func (s *MonitoringService) GetState(ctx context.Context) (models.PrinterState, error) {
	if err := ctx.Err(); err != nil {
		return models.PrinterState{}, err
	}
	return s.store.Snapshot(), nil
}

// Watch subscribes to state changes; call the returned func to stop.
func (s *MonitoringService) Watch(buffer int) (<-chan models.PrinterState, func()) {
	return s.store.Subscribe(buffer)
}
