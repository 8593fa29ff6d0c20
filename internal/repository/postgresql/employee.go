package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/marinerh/personnel-backend/internal/domain/employee"
	"github.com/marinerh/personnel-backend/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, matricule, full_name_fr, full_name_ar, gender, status, unit_id,
		hire_date, base_pay, locale, created_at, updated_at, deleted_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.Matricule, &emp.FullNameFr, &emp.FullNameAr, &emp.Gender,
		&emp.Status, &emp.UnitID, &emp.HireDate, &emp.BasePay, &emp.Locale,
		&emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := database.QuerierFrom(ctx, e.db)

	query := `
		INSERT INTO employees (id, matricule, full_name_fr, full_name_ar, gender, status, unit_id, hire_date, base_pay, locale)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		uuid.NewString(), emp.Matricule, emp.FullNameFr, emp.FullNameAr, emp.Gender,
		emp.Status, emp.UnitID, emp.HireDate, emp.BasePay, emp.Locale,
	))
	if err != nil {
		return employee.Employee{}, err
	}
	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := database.QuerierFrom(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1 AND deleted_at IS NULL`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

// GetByMatricule implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByMatricule(ctx context.Context, matricule string) (employee.Employee, error) {
	q := database.QuerierFrom(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE matricule = $1 AND deleted_at IS NULL`

	emp, err := scanEmployee(q.QueryRow(ctx, query, matricule))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, int64, error) {
	q := database.QuerierFrom(ctx, e.db)

	conditions := []string{"deleted_at IS NULL"}
	args := []interface{}{}
	argPos := 1

	if filter.UnitID != nil {
		conditions = append(conditions, fmt.Sprintf("unit_id = $%d", argPos))
		args = append(args, *filter.UnitID)
		argPos++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(matricule ILIKE $%d OR full_name_fr ILIKE $%d OR full_name_ar ILIKE $%d)", argPos, argPos, argPos))
		args = append(args, "%"+*filter.Search+"%")
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM employees WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE ` + where + ` ORDER BY matricule`
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1)
		offset := 0
		if filter.Page > 1 {
			offset = (filter.Page - 1) * filter.Limit
		}
		args = append(args, filter.Limit, offset)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, emp)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// ListIDs implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListIDs(ctx context.Context) ([]string, error) {
	q := database.QuerierFrom(ctx, e.db)

	rows, err := q.Query(ctx, `SELECT id FROM employees WHERE deleted_at IS NULL`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := database.QuerierFrom(ctx, e.db)

	setClauses := []string{}
	args := []interface{}{}
	argPos := 1

	addSet := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if req.FullNameFr != nil {
		addSet("full_name_fr", *req.FullNameFr)
	}
	if req.FullNameAr != nil {
		addSet("full_name_ar", *req.FullNameAr)
	}
	if req.Gender != nil {
		addSet("gender", *req.Gender)
	}
	if req.UnitID != nil {
		addSet("unit_id", *req.UnitID)
	}
	if req.HireDate != nil {
		addSet("hire_date", *req.HireDate)
	}
	if req.BasePay != nil {
		addSet("base_pay", *req.BasePay)
	}
	if req.Locale != nil {
		addSet("locale", *req.Locale)
	}

	if len(setClauses) == 0 {
		return nil
	}
	setClauses = append(setClauses, "updated_at = NOW()")

	query := fmt.Sprintf(`UPDATE employees SET %s WHERE id = $%d AND deleted_at IS NULL RETURNING id`,
		strings.Join(setClauses, ", "), argPos)
	args = append(args, req.ID)

	var updatedID string
	if err := q.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return err
	}
	return nil
}

// UpdateStatus implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) UpdateStatus(ctx context.Context, id string, status employee.Status) error {
	q := database.QuerierFrom(ctx, e.db)

	query := `UPDATE employees SET status = $1, updated_at = NOW() WHERE id = $2 AND deleted_at IS NULL RETURNING id`

	var updatedID string
	if err := q.QueryRow(ctx, query, status, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return err
	}
	return nil
}

// SoftDelete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := database.QuerierFrom(ctx, e.db)

	query := `UPDATE employees SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL RETURNING id`

	var deletedID string
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return err
	}
	return nil
}
