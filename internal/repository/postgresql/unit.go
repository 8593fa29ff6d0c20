package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/marinerh/personnel-backend/internal/domain/unit"
	"github.com/marinerh/personnel-backend/internal/pkg/database"
)

type unitRepositoryImpl struct {
	db *database.DB
}

func NewUnitRepository(db *database.DB) unit.UnitRepository {
	return &unitRepositoryImpl{db: db}
}

const unitColumns = `id, parent_id, code, name_fr, name_ar, created_at, updated_at`

func scanUnit(row pgx.Row) (unit.Unit, error) {
	var u unit.Unit
	err := row.Scan(&u.ID, &u.ParentID, &u.Code, &u.NameFr, &u.NameAr, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// Create implements unit.UnitRepository.
func (r *unitRepositoryImpl) Create(ctx context.Context, u unit.Unit) (unit.Unit, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `
		INSERT INTO units (id, parent_id, code, name_fr, name_ar)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + unitColumns

	created, err := scanUnit(q.QueryRow(ctx, query, uuid.NewString(), u.ParentID, u.Code, u.NameFr, u.NameAr))
	if err != nil {
		return unit.Unit{}, err
	}
	return created, nil
}

// GetByID implements unit.UnitRepository.
func (r *unitRepositoryImpl) GetByID(ctx context.Context, id string) (unit.Unit, error) {
	q := database.QuerierFrom(ctx, r.db)

	u, err := scanUnit(q.QueryRow(ctx, `SELECT `+unitColumns+` FROM units WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return unit.Unit{}, unit.ErrUnitNotFound
		}
		return unit.Unit{}, err
	}
	return u, nil
}

// List implements unit.UnitRepository.
func (r *unitRepositoryImpl) List(ctx context.Context) ([]unit.Unit, error) {
	q := database.QuerierFrom(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+unitColumns+` FROM units ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []unit.Unit
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, rows.Err()
}

// Update implements unit.UnitRepository.
func (r *unitRepositoryImpl) Update(ctx context.Context, req unit.UpdateUnitRequest) error {
	q := database.QuerierFrom(ctx, r.db)

	setClauses := []string{}
	args := []interface{}{}
	argPos := 1

	addSet := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if req.ParentID != nil {
		addSet("parent_id", *req.ParentID)
	}
	if req.Code != nil {
		addSet("code", *req.Code)
	}
	if req.NameFr != nil {
		addSet("name_fr", *req.NameFr)
	}
	if req.NameAr != nil {
		addSet("name_ar", *req.NameAr)
	}

	if len(setClauses) == 0 {
		return nil
	}
	setClauses = append(setClauses, "updated_at = NOW()")

	query := fmt.Sprintf(`UPDATE units SET %s WHERE id = $%d RETURNING id`, strings.Join(setClauses, ", "), argPos)
	args = append(args, req.ID)

	var updatedID string
	if err := q.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return unit.ErrUnitNotFound
		}
		return err
	}
	return nil
}

// Delete implements unit.UnitRepository.
func (r *unitRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := database.QuerierFrom(ctx, r.db)

	var deletedID string
	if err := q.QueryRow(ctx, `DELETE FROM units WHERE id = $1 RETURNING id`, id).Scan(&deletedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return unit.ErrUnitNotFound
		}
		return err
	}
	return nil
}
