package models

import "time"

// Event types recorded while observing the printer.
const (
	EventStatusChange     = "STATUS_CHANGE"
	EventJobChange        = "JOB_CHANGE"
	EventFilamentRunout   = "FILAMENT_RUNOUT"
	EventFilamentRestored = "FILAMENT_RESTORED"
	EventLinkLost         = "LINK_LOST"
	EventLinkRestored     = "LINK_RESTORED"
)

// PrinterEvent is a single history entry.
type PrinterEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Metadata    any       `json:"metadata,omitempty"`
}
