package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/marinerh/personnel-backend/internal/domain/bank"
	"github.com/marinerh/personnel-backend/internal/pkg/database"
)

type bankIdentityRepositoryImpl struct {
	db *database.DB
}

func NewBankIdentityRepository(db *database.DB) bank.IdentityRepository {
	return &bankIdentityRepositoryImpl{db: db}
}

const bankIdentityColumns = `id, employee_id, bank_name, agency_name, rib, created_at, updated_at`

func scanBankIdentity(row pgx.Row) (bank.Identity, error) {
	var identity bank.Identity
	err := row.Scan(
		&identity.ID, &identity.EmployeeID, &identity.BankName, &identity.AgencyName,
		&identity.RIB, &identity.CreatedAt, &identity.UpdatedAt,
	)
	return identity, err
}

// Create implements bank.IdentityRepository.
func (b *bankIdentityRepositoryImpl) Create(ctx context.Context, identity bank.Identity) (bank.Identity, error) {
	q := database.QuerierFrom(ctx, b.db)

	query := `
		INSERT INTO bank_identities (id, employee_id, bank_name, agency_name, rib)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + bankIdentityColumns

	created, err := scanBankIdentity(q.QueryRow(ctx, query,
		uuid.NewString(), identity.EmployeeID, identity.BankName, identity.AgencyName, identity.RIB,
	))
	if err != nil {
		return bank.Identity{}, err
	}
	return created, nil
}

// GetByID implements bank.IdentityRepository.
func (b *bankIdentityRepositoryImpl) GetByID(ctx context.Context, id string) (bank.Identity, error) {
	q := database.QuerierFrom(ctx, b.db)

	identity, err := scanBankIdentity(q.QueryRow(ctx, `SELECT `+bankIdentityColumns+` FROM bank_identities WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return bank.Identity{}, bank.ErrIdentityNotFound
		}
		return bank.Identity{}, err
	}
	return identity, nil
}

// ListByEmployee implements bank.IdentityRepository. Most recent first, so
// the first row is the active identity.
func (b *bankIdentityRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]bank.Identity, error) {
	q := database.QuerierFrom(ctx, b.db)

	query := `SELECT ` + bankIdentityColumns + ` FROM bank_identities WHERE employee_id = $1 ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var identities []bank.Identity
	for rows.Next() {
		identity, err := scanBankIdentity(rows)
		if err != nil {
			return nil, err
		}
		identities = append(identities, identity)
	}
	return identities, rows.Err()
}

// Update implements bank.IdentityRepository.
func (b *bankIdentityRepositoryImpl) Update(ctx context.Context, req bank.UpdateIdentityRequest) error {
	q := database.QuerierFrom(ctx, b.db)

	setClauses := []string{}
	args := []interface{}{}
	argPos := 1

	addSet := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if req.BankName != nil {
		addSet("bank_name", *req.BankName)
	}
	if req.AgencyName != nil {
		addSet("agency_name", *req.AgencyName)
	}
	if req.RIB != nil {
		addSet("rib", *req.RIB)
	}

	if len(setClauses) == 0 {
		return nil
	}
	setClauses = append(setClauses, "updated_at = NOW()")

	query := fmt.Sprintf(`UPDATE bank_identities SET %s WHERE id = $%d RETURNING id`, strings.Join(setClauses, ", "), argPos)
	args = append(args, req.ID)

	var updatedID string
	if err := q.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return bank.ErrIdentityNotFound
		}
		return err
	}
	return nil
}

// Delete implements bank.IdentityRepository.
func (b *bankIdentityRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := database.QuerierFrom(ctx, b.db)

	var deletedID string
	if err := q.QueryRow(ctx, `DELETE FROM bank_identities WHERE id = $1 RETURNING id`, id).Scan(&deletedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return bank.ErrIdentityNotFound
		}
		return err
	}
	return nil
}
