package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/marinerh/personnel-backend/internal/domain/employee"
	"github.com/marinerh/personnel-backend/internal/domain/leave"
	"github.com/marinerh/personnel-backend/internal/pkg/database"
)

type leaveTypeRepositoryImpl struct {
	db *database.DB
}

func NewLeaveTypeRepository(db *database.DB) leave.TypeRepository {
	return &leaveTypeRepositoryImpl{db: db}
}

// GetByCode implements leave.TypeRepository.
func (l *leaveTypeRepositoryImpl) GetByCode(ctx context.Context, code leave.Type) (leave.TypeInfo, error) {
	q := database.QuerierFrom(ctx, l.db)

	query := `
		SELECT code, label_fr, label_ar, quota_days, color, female_only
		FROM leave_types
		WHERE code = $1
	`

	var info leave.TypeInfo
	err := q.QueryRow(ctx, query, code).Scan(
		&info.Code, &info.LabelFr, &info.LabelAr, &info.QuotaDays, &info.Color, &info.FemaleOnly,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.TypeInfo{}, leave.ErrTypeNotFound
		}
		return leave.TypeInfo{}, err
	}
	return info, nil
}

// ForGender implements leave.TypeRepository. Female-only types are hidden
// from male employees' catalogs.
func (l *leaveTypeRepositoryImpl) ForGender(ctx context.Context, gender employee.Gender) ([]leave.TypeInfo, error) {
	q := database.QuerierFrom(ctx, l.db)

	query := `
		SELECT code, label_fr, label_ar, quota_days, color, female_only
		FROM leave_types
		WHERE NOT female_only OR $1 = $2
		ORDER BY code
	`

	rows, err := q.Query(ctx, query, gender, employee.Female)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []leave.TypeInfo
	for rows.Next() {
		var info leave.TypeInfo
		err := rows.Scan(&info.Code, &info.LabelFr, &info.LabelAr, &info.QuotaDays, &info.Color, &info.FemaleOnly)
		if err != nil {
			return nil, err
		}
		types = append(types, info)
	}
	return types, rows.Err()
}
