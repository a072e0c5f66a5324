package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"printer_sync/internal/models"
	"printer_sync/internal/repository"
)

type EventLogService struct {
	eventRepo repository.EventRepo
}

func NewEventLogService(eventRepo repository.EventRepo) *EventLogService {
	return &EventLogService{eventRepo: eventRepo}
}

var (
	ErrInvalidTimeRange = errors.New("invalid time range: From must be <= To")
	ErrUnknownEventType = errors.New("unknown event type")
)

var knownEventTypes = map[string]struct{}{
	models.EventStatusChange:     {},
	models.EventJobChange:        {},
	models.EventFilamentRunout:   {},
	models.EventFilamentRestored: {},
	models.EventLinkLost:         {},
	models.EventLinkRestored:     {},
}

func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

func normalizeEventType(s string) string {
	return strings.TrimSpace(strings.ToUpper(s))
}

// normalizeFilter converts bounds to UTC, canonicalizes the type and
// rejects inverted ranges and unknown types.
func normalizeFilter(f LogFilter) (LogFilter, error) {
	out := LogFilter{
		From: normalizeToUTC(f.From),
		To:   normalizeToUTC(f.To),
		Type: normalizeEventType(f.Type),
	}
	if !out.From.IsZero() && !out.To.IsZero() && out.From.After(out.To) {
		return LogFilter{}, ErrInvalidTimeRange
	}
	if out.Type != "" {
		if _, ok := knownEventTypes[out.Type]; !ok {
			return LogFilter{}, fmt.Errorf("%w: %q", ErrUnknownEventType, out.Type)
		}
	}
	return out, nil
}

// List returns recorded events matching f, oldest first.
func (s *EventLogService) List(ctx context.Context, f LogFilter) ([]models.PrinterEvent, error) {
	nf, err := normalizeFilter(f)
	if err != nil {
		return nil, err
	}
	return s.eventRepo.List(ctx, nf.From, nf.To, nf.Type)
}
