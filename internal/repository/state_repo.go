package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"printer_sync/internal/models"
)

type StateSQLite struct {
	db *sql.DB
}

func NewStateSQLite(db *sql.DB) *StateSQLite {
	return &StateSQLite{db: db}
}

var _ StateRepo = (*StateSQLite)(nil)

const (
	printerStateRowID = 1

	upsertStateSQL = `
		INSERT INTO printer_state (id, status, nozzle_c, nozzle_target_c, bed_c, bed_target_c,
			light_on, filament, job_file, job_estimated_s, completion, print_time_s, print_time_left_s,
			link_connected, link_last_seen, link_error, link_failures, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			status=excluded.status,
			nozzle_c=excluded.nozzle_c,
			nozzle_target_c=excluded.nozzle_target_c,
			bed_c=excluded.bed_c,
			bed_target_c=excluded.bed_target_c,
			light_on=excluded.light_on,
			filament=excluded.filament,
			job_file=excluded.job_file,
			job_estimated_s=excluded.job_estimated_s,
			completion=excluded.completion,
			print_time_s=excluded.print_time_s,
			print_time_left_s=excluded.print_time_left_s,
			link_connected=excluded.link_connected,
			link_last_seen=excluded.link_last_seen,
			link_error=excluded.link_error,
			link_failures=excluded.link_failures,
			updated_at=excluded.updated_at
	`

	selectStateSQL = `
		SELECT status, nozzle_c, nozzle_target_c, bed_c, bed_target_c,
			light_on, filament, job_file, job_estimated_s, completion, print_time_s, print_time_left_s,
			link_connected, link_last_seen, link_error, link_failures, updated_at
		FROM printer_state WHERE id=?
	`
)

func nullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

func nullFloat(p *float64) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *p, Valid: true}
}

func nullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

// Save upserts the single printer_state row. A zero UpdatedAt is stamped with now.
func (r *StateSQLite) Save(ctx context.Context, s models.PrinterState) error {
	updated := s.UpdatedAt
	if updated.IsZero() {
		updated = time.Now()
	}

	_, err := r.db.ExecContext(ctx, upsertStateSQL,
		printerStateRowID,
		s.Status,
		s.Nozzle.Current,
		s.Nozzle.Target,
		s.Bed.Current,
		s.Bed.Target,
		s.IsLightOn,
		s.Sensor.Filament,
		nullString(s.Job.Filename),
		nullFloat(s.Job.EstimatedTime),
		s.Progress.Completion,
		s.Progress.PrintTime,
		s.Progress.PrintTimeLeft,
		s.Link.Connected,
		nullTime(s.Link.LastSeen),
		s.Link.LastError,
		s.Link.ConsecutiveFailures,
		updated.UTC(),
	)
	if err != nil {
		return fmt.Errorf("save printer state: %w", err)
	}
	return nil
}

// Load reads the printer_state row.
func (r *StateSQLite) Load(ctx context.Context) (models.PrinterState, bool, error) {
	var (
		s        models.PrinterState
		jobFile  sql.NullString
		jobEst   sql.NullFloat64
		lastSeen sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, selectStateSQL, printerStateRowID).Scan(
		&s.Status,
		&s.Nozzle.Current,
		&s.Nozzle.Target,
		&s.Bed.Current,
		&s.Bed.Target,
		&s.IsLightOn,
		&s.Sensor.Filament,
		&jobFile,
		&jobEst,
		&s.Progress.Completion,
		&s.Progress.PrintTime,
		&s.Progress.PrintTimeLeft,
		&s.Link.Connected,
		&lastSeen,
		&s.Link.LastError,
		&s.Link.ConsecutiveFailures,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PrinterState{}, false, nil
		}
		return models.PrinterState{}, false, fmt.Errorf("load printer state: %w", err)
	}

	if jobFile.Valid {
		s.Job.Filename = &jobFile.String
	}
	if jobEst.Valid {
		s.Job.EstimatedTime = &jobEst.Float64
	}
	if lastSeen.Valid {
		s.Link.LastSeen = lastSeen.Time.UTC()
	}
	s.UpdatedAt = s.UpdatedAt.UTC()

	return s, true, nil
}
