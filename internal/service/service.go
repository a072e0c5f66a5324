package service

import (
	"context"

	"printer_sync/internal/logger"
	"printer_sync/internal/models"
	"printer_sync/internal/repository"
	"printer_sync/internal/state"
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Monitoring exposes the synchronized printer state to readers.
type Monitoring interface {
	GetState(ctx context.Context) (models.PrinterState, error)
	Watch(buffer int) (<-chan models.PrinterState, func())
}

// EventLog exposes the recorded printer history.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.PrinterEvent, error)
}

// Poller drives the fetch-reconcile loop. Stop it by canceling ctx.
type Poller interface {
	Start(ctx context.Context) bool
	Done() <-chan struct{}
}

// Recorder persists state changes until ctx is canceled.
type Recorder interface {
	Run(ctx context.Context)
}

type Service struct {
	Monitoring
	EventLog
	Poller
	Recorder
	Authorization
}

// NewService wires the synchronization engine and the services around it.
// store is the session-wide State Model shared by all of them.
func NewService(repos *repository.Repository, store *state.Store, fetcher StatusFetcher, opts Options, log *logger.Logger) *Service {
	return &Service{
		Monitoring:    NewMonitoringService(store),
		EventLog:      NewEventLogService(repos.EventRepo),
		Poller:        NewPollerService(fetcher, store, opts.PollInterval, log),
		Recorder:      NewRecorderService(store, repos.StateRepo, repos.EventRepo, log),
		Authorization: NewAuthService(repos.Auth, opts.SigningKey, opts.TokenTTL),
	}
}
