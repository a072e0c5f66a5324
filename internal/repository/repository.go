package repository

import (
	"context"
	"database/sql"
	"time"

	"printer_sync/internal/models"
)

type Authorization interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// StateRepo persists the last observed printer snapshot.
type StateRepo interface {
	Save(ctx context.Context, s models.PrinterState) error
	// Load returns found=false when nothing has been saved yet.
	Load(ctx context.Context) (s models.PrinterState, found bool, err error)
}

type EventRepo interface {
	Append(ctx context.Context, e models.PrinterEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.PrinterEvent, error)
}

type Repository struct {
	StateRepo StateRepo
	EventRepo EventRepo
	Auth      Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		StateRepo: NewStateSQLite(db),
		EventRepo: NewEventSQLite(db),
		Auth:      NewUserRepository(db),
	}
}
