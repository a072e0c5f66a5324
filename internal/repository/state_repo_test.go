package repository_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"printer_sync/internal/models"
	"printer_sync/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
)

var stateColumns = []string{
	"status", "nozzle_c", "nozzle_target_c", "bed_c", "bed_target_c",
	"light_on", "filament", "job_file", "job_estimated_s", "completion", "print_time_s", "print_time_left_s",
	"link_connected", "link_last_seen", "link_error", "link_failures", "updated_at",
}

func newStateRepo(t *testing.T) (*repository.StateSQLite, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
		_ = db.Close()
	})
	return repository.NewStateSQLite(db), mock
}

func TestStateSQLite_Save_NoJobWritesNulls(t *testing.T) {
	repo, mock := newStateRepo(t)

	state := models.PrinterState{
		Status: models.StatusOperational,
		Nozzle: models.Temperature{Current: 25, Target: 0},
		Bed:    models.Temperature{Current: 24, Target: 0},
		Sensor: models.Sensor{Filament: true},
		Link:   models.Link{LastError: "connection refused", ConsecutiveFailures: 3},
		// UpdatedAt is zero
	}

	isUTCRecent := sqlmockArgumentFunc(func(v driver.Value) bool {
		tm, ok := v.(time.Time)
		if !ok || tm.Location() != time.UTC {
			return false
		}
		now := time.Now().UTC()
		return tm.After(now.Add(-5*time.Second)) && tm.Before(now.Add(5*time.Second))
	})

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO printer_state")).
		WithArgs(
			1,
			models.StatusOperational,
			25.0, 0.0, 24.0, 0.0,
			false, // light
			true,  // filament
			nil,   // job_file
			nil,   // job_estimated_s
			0.0, 0.0, 0.0,
			false,
			nil, // link_last_seen
			"connection refused",
			3,
			isUTCRecent,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Save(context.Background(), state); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
}

func TestStateSQLite_Save_JobAndTimesInUTC(t *testing.T) {
	repo, mock := newStateRepo(t)

	locTokyo := time.FixedZone("JST", 9*3600)
	updated := time.Date(2023, 10, 5, 12, 34, 56, 0, locTokyo)
	seen := time.Date(2023, 10, 5, 12, 34, 50, 0, locTokyo)
	name := "vase.gcode"
	est := 7200.0

	state := models.PrinterState{
		Status:    models.StatusPrinting,
		Nozzle:    models.Temperature{Current: 210, Target: 215},
		Bed:       models.Temperature{Current: 60, Target: 60},
		IsLightOn: true,
		Sensor:    models.Sensor{Filament: false},
		Job:       models.Job{Filename: &name, EstimatedTime: &est},
		Progress:  models.Progress{Completion: 42, PrintTime: 300, PrintTimeLeft: 6900},
		Link:      models.Link{Connected: true, LastSeen: seen},
		UpdatedAt: updated,
	}

	exactUTC := func(want time.Time) sqlmockArgumentFunc {
		return func(v driver.Value) bool {
			tm, ok := v.(time.Time)
			return ok && tm.Equal(want) && tm.Location() == time.UTC
		}
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO printer_state")).
		WithArgs(
			1,
			models.StatusPrinting,
			210.0, 215.0, 60.0, 60.0,
			true,
			false,
			"vase.gcode",
			7200.0,
			42.0, 300.0, 6900.0,
			true,
			exactUTC(seen.UTC()),
			"",
			0,
			exactUTC(updated.UTC()),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Save(context.Background(), state); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
}

func TestStateSQLite_Save_ExecErrorIsPropagated(t *testing.T) {
	repo, mock := newStateRepo(t)

	mock.ExpectExec("INSERT INTO printer_state").WillReturnError(errors.New("db down"))

	err := repo.Save(context.Background(), models.DefaultPrinterState())
	if err == nil {
		t.Fatalf("Save() expected error, got nil")
	}
}

func TestStateSQLite_Load_NoRows(t *testing.T) {
	repo, mock := newStateRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT status, nozzle_c")).
		WithArgs(1).
		WillReturnError(sql.ErrNoRows)

	got, found, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if found {
		t.Fatalf("expected found=false")
	}
	if got.Status != "" {
		t.Fatalf("expected zero state, got %+v", got)
	}
}

func TestStateSQLite_Load_HappyPath(t *testing.T) {
	repo, mock := newStateRepo(t)

	updated := time.Date(2024, 3, 1, 8, 0, 0, 0, time.FixedZone("X", -3*3600))
	seen := time.Date(2024, 3, 1, 10, 59, 58, 0, time.UTC)

	rows := sqlmock.NewRows(stateColumns).AddRow(
		"Printing", 210.0, 215.0, 60.0, 60.0,
		true, false, "cube.gcode", 3600.0, 10.0, 360.0, 3240.0,
		true, seen, "", 0, updated,
	)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT status, nozzle_c")).
		WithArgs(1).
		WillReturnRows(rows)

	got, found, err := repo.Load(context.Background())
	if err != nil || !found {
		t.Fatalf("Load() found=%v err=%v", found, err)
	}
	if got.Status != "Printing" || got.Nozzle.Current != 210 || got.Bed.Target != 60 {
		t.Errorf("unexpected temps/status: %+v", got)
	}
	if !got.IsLightOn || got.Sensor.Filament {
		t.Errorf("unexpected flags: light=%v filament=%v", got.IsLightOn, got.Sensor.Filament)
	}
	if got.Job.FilenameOrEmpty() != "cube.gcode" || got.Job.EstimatedTime == nil || *got.Job.EstimatedTime != 3600 {
		t.Errorf("unexpected job: %+v", got.Job)
	}
	if got.Progress.Completion != 10 || got.Progress.PrintTimeLeft != 3240 {
		t.Errorf("unexpected progress: %+v", got.Progress)
	}
	if !got.Link.LastSeen.Equal(seen) {
		t.Errorf("LastSeen: want %v, got %v", seen, got.Link.LastSeen)
	}
	if got.UpdatedAt.Location() != time.UTC || !got.UpdatedAt.Equal(updated) {
		t.Errorf("UpdatedAt must be the same instant in UTC, got %v", got.UpdatedAt)
	}
}

func TestStateSQLite_Load_NullJob(t *testing.T) {
	repo, mock := newStateRepo(t)

	rows := sqlmock.NewRows(stateColumns).AddRow(
		"Operational", 0.0, 0.0, 0.0, 0.0,
		false, true, nil, nil, 0.0, 0.0, 0.0,
		false, nil, "timeout", 2, time.Now(),
	)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT status, nozzle_c")).
		WithArgs(1).
		WillReturnRows(rows)

	got, found, err := repo.Load(context.Background())
	if err != nil || !found {
		t.Fatalf("Load() found=%v err=%v", found, err)
	}
	if got.Job.Filename != nil || got.Job.EstimatedTime != nil {
		t.Errorf("expected no job, got %+v", got.Job)
	}
	if !got.Link.LastSeen.IsZero() || got.Link.ConsecutiveFailures != 2 {
		t.Errorf("unexpected link: %+v", got.Link)
	}
}

func TestStateSQLite_Load_QueryErrorIsWrapped(t *testing.T) {
	repo, mock := newStateRepo(t)

	boom := errors.New("disk I/O error")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT status, nozzle_c")).
		WithArgs(1).
		WillReturnError(boom)

	_, _, err := repo.Load(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped %v, got %v", boom, err)
	}
}

type sqlmockArgumentFunc func(v driver.Value) bool

func (f sqlmockArgumentFunc) Match(v driver.Value) bool {
	return f(v)
}
