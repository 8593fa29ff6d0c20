package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/marinerh/personnel-backend/internal/domain/leave"
	"github.com/marinerh/personnel-backend/internal/pkg/database"
)

type leaveRecordRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRecordRepository(db *database.DB) leave.RecordRepository {
	return &leaveRecordRepositoryImpl{db: db}
}

const leaveRecordColumns = `id, employee_id, type, start_date, end_date, duration_days, status, created_at, updated_at`

func scanLeaveRecord(row pgx.Row) (leave.Record, error) {
	var rec leave.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Type, &rec.StartDate, &rec.EndDate,
		&rec.DurationDays, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// Create implements leave.RecordRepository.
func (l *leaveRecordRepositoryImpl) Create(ctx context.Context, record leave.Record) (leave.Record, error) {
	q := database.QuerierFrom(ctx, l.db)

	query := `
		INSERT INTO leave_records (id, employee_id, type, start_date, end_date, duration_days, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + leaveRecordColumns

	created, err := scanLeaveRecord(q.QueryRow(ctx, query,
		uuid.NewString(), record.EmployeeID, record.Type, record.StartDate,
		record.EndDate, record.DurationDays, record.Status,
	))
	if err != nil {
		return leave.Record{}, err
	}
	return created, nil
}

// GetByID implements leave.RecordRepository.
func (l *leaveRecordRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Record, error) {
	q := database.QuerierFrom(ctx, l.db)

	query := `SELECT ` + leaveRecordColumns + ` FROM leave_records WHERE id = $1`

	rec, err := scanLeaveRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Record{}, leave.ErrRecordNotFound
		}
		return leave.Record{}, err
	}
	return rec, nil
}

// ListByEmployee implements leave.RecordRepository.
func (l *leaveRecordRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Record, error) {
	q := database.QuerierFrom(ctx, l.db)

	query := `SELECT ` + leaveRecordColumns + ` FROM leave_records WHERE employee_id = $1 ORDER BY start_date DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []leave.Record
	for rows.Next() {
		rec, err := scanLeaveRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Update implements leave.RecordRepository.
func (l *leaveRecordRepositoryImpl) Update(ctx context.Context, record leave.Record) error {
	q := database.QuerierFrom(ctx, l.db)

	query := `
		UPDATE leave_records
		SET type = $1, start_date = $2, end_date = $3, duration_days = $4, status = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		record.Type, record.StartDate, record.EndDate, record.DurationDays, record.Status, record.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrRecordNotFound
		}
		return err
	}
	return nil
}

// UpdateStatus implements leave.RecordRepository.
func (l *leaveRecordRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.Status) error {
	q := database.QuerierFrom(ctx, l.db)

	query := `UPDATE leave_records SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING id`

	var updatedID string
	if err := q.QueryRow(ctx, query, status, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrRecordNotFound
		}
		return err
	}
	return nil
}

// Delete implements leave.RecordRepository.
func (l *leaveRecordRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := database.QuerierFrom(ctx, l.db)

	var deletedID string
	err := q.QueryRow(ctx, `DELETE FROM leave_records WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrRecordNotFound
		}
		return err
	}
	return nil
}

// ListUnfinished implements leave.RecordRepository. It returns records whose
// stored status could still change as of the given day: anything not yet
// completed, plus completed records whose end date is in the future (a
// backdated edit can reopen those).
func (l *leaveRecordRepositoryImpl) ListUnfinished(ctx context.Context, asOf time.Time) ([]leave.Record, error) {
	q := database.QuerierFrom(ctx, l.db)

	query := `
		SELECT ` + leaveRecordColumns + `
		FROM leave_records
		WHERE status <> $1 OR end_date IS NULL OR end_date >= $2
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, leave.StatusCompleted, asOf)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []leave.Record
	for rows.Next() {
		rec, err := scanLeaveRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
