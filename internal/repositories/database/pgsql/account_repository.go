package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/compta_maroc/internal/apperrors"
	"github.com/SscSPs/compta_maroc/internal/core/domain"
	portsrepo "github.com/SscSPs/compta_maroc/internal/core/ports/repositories"
	"github.com/SscSPs/compta_maroc/internal/models"
	"github.com/SscSPs/compta_maroc/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const accountColumns = `account_code, account_name, account_type, category, parent_code, pcmn_code, description, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for chart of accounts data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.ChartOfAccountsRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.ChartOfAccountsRepositoryFacade
var _ portsrepo.ChartOfAccountsRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (models.ChartOfAccounts, error) {
	var m models.ChartOfAccounts
	err := row.Scan(
		&m.AccountCode,
		&m.AccountName,
		&m.AccountType,
		&m.Category,
		&m.ParentCode,
		&m.PCMNCode,
		&m.Description,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.ChartOfAccountsEntry) error {
	m := mapping.ToModelAccount(account)

	query := `
		INSERT INTO chart_of_accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountCode,
		m.AccountName,
		m.AccountType,
		m.Category,
		m.ParentCode,
		m.PCMNCode,
		m.Description,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return fmt.Errorf("%w: account with code %s already exists", apperrors.ErrDuplicate, m.AccountCode)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: parent account of %s does not exist", apperrors.ErrInvalidInput, m.AccountCode)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountCode, err)
	}
	return nil
}

// FindAccountByCode retrieves an account by its code.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, accountCode string) (*domain.ChartOfAccountsEntry, error) {
	query := `SELECT ` + accountColumns + ` FROM chart_of_accounts WHERE account_code = $1;`

	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by code %s: %w", accountCode, err)
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}

// ListAccounts retrieves a page of accounts ordered by code.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.ChartOfAccountsEntry, error) {
	query := `SELECT ` + accountColumns + ` FROM chart_of_accounts ORDER BY account_code LIMIT $1 OFFSET $2;`
	return r.queryAccounts(ctx, query, limit, offset)
}

// ListAllAccounts retrieves the whole chart.
func (r *PgxAccountRepository) ListAllAccounts(ctx context.Context) ([]domain.ChartOfAccountsEntry, error) {
	query := `SELECT ` + accountColumns + ` FROM chart_of_accounts ORDER BY account_code;`
	return r.queryAccounts(ctx, query)
}

func (r *PgxAccountRepository) queryAccounts(ctx context.Context, query string, args ...any) ([]domain.ChartOfAccountsEntry, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]models.ChartOfAccounts, 0)
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return mapping.ToDomainAccountSlice(accounts), nil
}

// FindAccountTypes returns the type of every requested code that exists.
func (r *PgxAccountRepository) FindAccountTypes(ctx context.Context, accountCodes []string) (map[string]domain.AccountType, error) {
	types := make(map[string]domain.AccountType, len(accountCodes))
	if len(accountCodes) == 0 {
		return types, nil
	}

	rows, err := r.Pool.Query(ctx, `SELECT account_code, account_type FROM chart_of_accounts WHERE account_code = ANY($1);`, accountCodes)
	if err != nil {
		return nil, fmt.Errorf("failed to query account types: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var code, accountType string
		if err := rows.Scan(&code, &accountType); err != nil {
			return nil, fmt.Errorf("failed to scan account type row: %w", err)
		}
		types[code] = domain.AccountType(accountType)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account type rows: %w", err)
	}
	return types, nil
}
