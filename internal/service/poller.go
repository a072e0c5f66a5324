package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"printer_sync/internal/logger"
	"printer_sync/internal/models"
	"printer_sync/internal/state"
	"printer_sync/internal/transport"
)

// DefaultPollInterval is the delay between the end of one cycle and the
// start of the next.
const DefaultPollInterval = 2 * time.Second

// StatusFetcher is the read side of the backend client.
type StatusFetcher interface {
	FetchStatus(ctx context.Context) (transport.Payload, error)
	FetchSensor(ctx context.Context) (transport.Payload, error)
}

// PollerService keeps the Store in sync with the backend.
type PollerService struct {
	fetcher    StatusFetcher
	store      *state.Store
	reconciler *Reconciler
	log        *logger.Logger
	interval   time.Duration
	now        func() time.Time

	mu      sync.Mutex
	started bool
	done    chan struct{}
}

// NewPollerService returns an idle poller. interval <= 0 means DefaultPollInterval.
func NewPollerService(fetcher StatusFetcher, store *state.Store, interval time.Duration, log *logger.Logger) *PollerService {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if log == nil {
		log = logger.Nop()
	}
	return &PollerService{
		fetcher:    fetcher,
		store:      store,
		reconciler: NewReconciler(),
		log:        log,
		interval:   interval,
		now:        time.Now,
		done:       make(chan struct{}),
	}
}

// Start launches the polling loop, which runs until ctx is canceled.
// Only the first call starts a loop; later calls return false.
func (p *PollerService) Start(ctx context.Context) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		p.log.Debugw("poller_already_running")
		return false
	}
	p.started = true

	p.log.Infow("poller_started", "interval", p.interval)
	go p.run(ctx)
	return true
}

// Done is closed once the loop has exited.
func (p *PollerService) Done() <-chan struct{} {
	return p.done
}

func (p *PollerService) run(ctx context.Context) {
	defer close(p.done)

	// First cycle fires immediately; each following one is scheduled only
	// after the previous cycle returned, so requests never overlap.
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			p.log.Infow("poller_stopped")
			return
		case <-timer.C:
			p.cycle(ctx)
			timer.Reset(p.interval)
		}
	}
}

func (p *PollerService) cycle(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Errorw("poll_cycle_panic", "panic", fmt.Sprint(r))
		}
	}()

	status, statusErr := p.fetcher.FetchStatus(ctx)
	sensor, sensorErr := p.fetcher.FetchSensor(ctx)
	if ctx.Err() != nil {
		return
	}

	if statusErr != nil {
		p.log.Warnw("status_fetch_failed", "err", statusErr)
	}
	if sensorErr != nil {
		p.log.Debugw("sensor_fetch_failed", "err", sensorErr)
	}

	now := p.now().UTC()
	p.store.Apply(func(st *models.PrinterState) {
		if statusErr == nil {
			p.reconciler.ApplyStatus(st, status)
		}
		p.reconciler.ApplySensor(st, sensor, sensorErr)
		updateLink(&st.Link, statusErr, now)
	})
}

func updateLink(l *models.Link, err error, now time.Time) {
	if err != nil {
		l.Connected = false
		l.LastError = err.Error()
		l.ConsecutiveFailures++
		return
	}
	l.Connected = true
	l.LastError = ""
	l.LastSeen = now
	l.ConsecutiveFailures = 0
}
