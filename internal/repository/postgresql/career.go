package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/marinerh/personnel-backend/internal/domain/career"
	"github.com/marinerh/personnel-backend/internal/pkg/database"
)

// careerRecordRepositoryImpl serves both career tracks. The grade_records
// and function_records tables share one shape; only the table name differs,
// so one implementation is instantiated twice.
type careerRecordRepositoryImpl struct {
	db    *database.DB
	table string
}

func NewGradeRecordRepository(db *database.DB) career.RecordRepository {
	return &careerRecordRepositoryImpl{db: db, table: "grade_records"}
}

func NewFunctionRecordRepository(db *database.DB) career.RecordRepository {
	return &careerRecordRepositoryImpl{db: db, table: "function_records"}
}

const careerColumns = `id, employee_id, rank, obtained_date, end_date, reference, created_at, updated_at`

func scanCareerRecord(row pgx.Row) (career.Record, error) {
	var rec career.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Rank, &rec.ObtainedDate, &rec.EndDate,
		&rec.Reference, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// Create implements career.RecordRepository.
func (c *careerRecordRepositoryImpl) Create(ctx context.Context, record career.Record) (career.Record, error) {
	q := database.QuerierFrom(ctx, c.db)

	query := fmt.Sprintf(`
		INSERT INTO %s (id, employee_id, rank, obtained_date, end_date, reference)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s`, c.table, careerColumns)

	created, err := scanCareerRecord(q.QueryRow(ctx, query,
		uuid.NewString(), record.EmployeeID, record.Rank, record.ObtainedDate, record.EndDate, record.Reference,
	))
	if err != nil {
		return career.Record{}, err
	}
	return created, nil
}

// GetByID implements career.RecordRepository.
func (c *careerRecordRepositoryImpl) GetByID(ctx context.Context, id string) (career.Record, error) {
	q := database.QuerierFrom(ctx, c.db)

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, careerColumns, c.table)

	rec, err := scanCareerRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return career.Record{}, career.ErrRecordNotFound
		}
		return career.Record{}, err
	}
	return rec, nil
}

// ListByEmployee implements career.RecordRepository. Newest step first.
func (c *careerRecordRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]career.Record, error) {
	q := database.QuerierFrom(ctx, c.db)

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE employee_id = $1 ORDER BY obtained_date DESC`, careerColumns, c.table)

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []career.Record
	for rows.Next() {
		rec, err := scanCareerRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Update implements career.RecordRepository.
func (c *careerRecordRepositoryImpl) Update(ctx context.Context, record career.Record) error {
	q := database.QuerierFrom(ctx, c.db)

	query := fmt.Sprintf(`
		UPDATE %s
		SET rank = $1, obtained_date = $2, end_date = $3, reference = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id`, c.table)

	var updatedID string
	err := q.QueryRow(ctx, query,
		record.Rank, record.ObtainedDate, record.EndDate, record.Reference, record.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return career.ErrRecordNotFound
		}
		return err
	}
	return nil
}

// UpdateEndDate implements career.RecordRepository.
func (c *careerRecordRepositoryImpl) UpdateEndDate(ctx context.Context, id string, endDate time.Time) error {
	q := database.QuerierFrom(ctx, c.db)

	query := fmt.Sprintf(`UPDATE %s SET end_date = $1, updated_at = NOW() WHERE id = $2 RETURNING id`, c.table)

	var updatedID string
	if err := q.QueryRow(ctx, query, endDate, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return career.ErrRecordNotFound
		}
		return err
	}
	return nil
}

// Delete implements career.RecordRepository.
func (c *careerRecordRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := database.QuerierFrom(ctx, c.db)

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 RETURNING id`, c.table)

	var deletedID string
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return career.ErrRecordNotFound
		}
		return err
	}
	return nil
}
