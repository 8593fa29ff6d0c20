package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/marinerh/personnel-backend/internal/domain/absence"
	"github.com/marinerh/personnel-backend/internal/pkg/database"
)

type absenceRepositoryImpl struct {
	db *database.DB
}

func NewAbsenceRepository(db *database.DB) absence.RecordRepository {
	return &absenceRepositoryImpl{db: db}
}

const absenceColumns = `id, employee_id, start_date, end_date, reference_start, reference_end, duration_days, created_at, updated_at`

func scanAbsence(row pgx.Row) (absence.Record, error) {
	var rec absence.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.StartDate, &rec.EndDate,
		&rec.ReferenceStart, &rec.ReferenceEnd, &rec.DurationDays,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// Create implements absence.RecordRepository.
func (a *absenceRepositoryImpl) Create(ctx context.Context, record absence.Record) (absence.Record, error) {
	q := database.QuerierFrom(ctx, a.db)

	query := `
		INSERT INTO absence_records (id, employee_id, start_date, end_date, reference_start, reference_end, duration_days)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + absenceColumns

	created, err := scanAbsence(q.QueryRow(ctx, query,
		uuid.NewString(), record.EmployeeID, record.StartDate, record.EndDate,
		record.ReferenceStart, record.ReferenceEnd, record.DurationDays,
	))
	if err != nil {
		return absence.Record{}, err
	}
	return created, nil
}

// GetByID implements absence.RecordRepository.
func (a *absenceRepositoryImpl) GetByID(ctx context.Context, id string) (absence.Record, error) {
	q := database.QuerierFrom(ctx, a.db)

	query := `SELECT ` + absenceColumns + ` FROM absence_records WHERE id = $1`

	rec, err := scanAbsence(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absence.Record{}, absence.ErrRecordNotFound
		}
		return absence.Record{}, err
	}
	return rec, nil
}

// ListByEmployee implements absence.RecordRepository.
func (a *absenceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]absence.Record, error) {
	q := database.QuerierFrom(ctx, a.db)

	query := `SELECT ` + absenceColumns + ` FROM absence_records WHERE employee_id = $1 ORDER BY start_date DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []absence.Record
	for rows.Next() {
		rec, err := scanAbsence(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Update implements absence.RecordRepository.
func (a *absenceRepositoryImpl) Update(ctx context.Context, record absence.Record) error {
	q := database.QuerierFrom(ctx, a.db)

	query := `
		UPDATE absence_records
		SET start_date = $1, end_date = $2, reference_start = $3, reference_end = $4, duration_days = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		record.StartDate, record.EndDate, record.ReferenceStart, record.ReferenceEnd, record.DurationDays, record.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absence.ErrRecordNotFound
		}
		return err
	}
	return nil
}

// Delete implements absence.RecordRepository.
func (a *absenceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := database.QuerierFrom(ctx, a.db)

	var deletedID string
	err := q.QueryRow(ctx, `DELETE FROM absence_records WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absence.ErrRecordNotFound
		}
		return err
	}
	return nil
}
