package service

import "time"

// LogFilter narrows the event history by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "" or one of the models.Event* types
}

// Options carries the tunables NewService needs beyond its collaborators.
type Options struct {
	PollInterval time.Duration
	SigningKey   string
	TokenTTL     time.Duration
}
