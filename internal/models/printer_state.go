package models

import "time"

// Printer status values reported by the backend. The set is open: any other
// string the backend sends is stored as-is.
const (
	StatusOffline           = "Offline"
	StatusOperational       = "Operational"
	StatusPrinting          = "Printing"
	StatusPaused            = "Paused"
	StatusPausing           = "Pausing"
	StatusClosed            = "Closed"
	StatusError             = "Error"
	StatusDetectingBaudrate = "Detecting baudrate"
)

// Temperature is a heater reading in °C.
type Temperature struct {
	Current float64 `json:"current"`
	Target  float64 `json:"target"`
}

// Job describes the file loaded for printing. Nil fields mean "no job".
type Job struct {
	Filename      *string  `json:"filename,omitempty"`
	EstimatedTime *float64 `json:"estimatedTime,omitempty"` // seconds
}

// Progress of the current print.
type Progress struct {
	Completion    float64 `json:"completion"`    // 0-100
	PrintTime     float64 `json:"printTime"`     // seconds elapsed
	PrintTimeLeft float64 `json:"printTimeLeft"` // seconds remaining
}

// Sensor holds filament runout sensor readings.
type Sensor struct {
	Filament bool `json:"filament"` // true = filament present
}

// Link reports how fresh the synchronized data is.
type Link struct {
	Connected           bool      `json:"connected"`
	LastSeen            time.Time `json:"lastSeen"`
	LastError           string    `json:"lastError,omitempty"`
	ConsecutiveFailures int       `json:"consecutiveFailures"`
}

// PrinterState is the canonical local snapshot of the remote printer.
type PrinterState struct {
	Status    string      `json:"status"`
	Nozzle    Temperature `json:"nozzle"`
	Bed       Temperature `json:"bed"`
	IsLightOn bool        `json:"isLightOn"`
	Sensor    Sensor      `json:"sensor"`
	Job       Job         `json:"job"`
	Progress  Progress    `json:"progress"`
	Link      Link        `json:"link"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// DefaultPrinterState returns the state used before the first successful sync.
func DefaultPrinterState() PrinterState {
	return PrinterState{
		Status: StatusOffline,
		Sensor: Sensor{Filament: true},
	}
}

// Clone returns a copy that shares no pointers with s.
func (s PrinterState) Clone() PrinterState {
	out := s
	if s.Job.Filename != nil {
		name := *s.Job.Filename
		out.Job.Filename = &name
	}
	if s.Job.EstimatedTime != nil {
		est := *s.Job.EstimatedTime
		out.Job.EstimatedTime = &est
	}
	return out
}

// Equal compares two snapshots by value, ignoring UpdatedAt.
func (s PrinterState) Equal(o PrinterState) bool {
	return s.Status == o.Status &&
		s.Nozzle == o.Nozzle &&
		s.Bed == o.Bed &&
		s.IsLightOn == o.IsLightOn &&
		s.Sensor == o.Sensor &&
		s.Job.Equal(o.Job) &&
		s.Progress == o.Progress &&
		s.Link.Equal(o.Link)
}

// Equal compares two jobs by value.
func (j Job) Equal(o Job) bool {
	return equalPtr(j.Filename, o.Filename) && equalPtr(j.EstimatedTime, o.EstimatedTime)
}

// Equal compares two links by value.
func (l Link) Equal(o Link) bool {
	return l.Connected == o.Connected &&
		l.LastSeen.Equal(o.LastSeen) &&
		l.LastError == o.LastError &&
		l.ConsecutiveFailures == o.ConsecutiveFailures
}

// FilenameOrEmpty returns the job file name, or "" when no job is loaded.
func (j Job) FilenameOrEmpty() string {
	if j.Filename == nil {
		return ""
	}
	return *j.Filename
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
