package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/dre_backoffice/internal/apperrors"
	"github.com/SscSPs/dre_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/dre_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/dre_backoffice/internal/models"
	"github.com/SscSPs/dre_backoffice/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxGroupRepository struct {
	BaseRepository
}

func newPgxGroupRepository(pool *pgxpool.Pool) portsrepo.GroupRepositoryFacade {
	return &PgxGroupRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.GroupRepositoryFacade = (*PgxGroupRepository)(nil)

var FULL_GROUP_SELECT_QUERY = `
SELECT
	g.group_id, g.code, g.name, g.kind, g.display_order, g.is_active,
	g.created_at, g.created_by, g.last_updated_at, g.last_updated_by
FROM dre_groups g
`

func (r *PgxGroupRepository) FindGroupByID(ctx context.Context, groupID string) (*domain.Group, error) {
	rows, err := r.db(ctx).Query(ctx, FULL_GROUP_SELECT_QUERY+`WHERE g.group_id = $1`, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to query group %s: %w", groupID, err)
	}
	m, err := collectOne[models.Group](rows, "group")
	if err != nil {
		return nil, err
	}
	g := mapping.ToDomainGroup(*m)
	return &g, nil
}

func (r *PgxGroupRepository) ListGroups(ctx context.Context) ([]domain.Group, error) {
	rows, err := r.db(ctx).Query(ctx, FULL_GROUP_SELECT_QUERY+`ORDER BY g.display_order, g.code`)
	if err != nil {
		return nil, fmt.Errorf("failed to query groups: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Group])
	if err != nil {
		return nil, fmt.Errorf("failed to collect group rows: %w", err)
	}
	return mapping.ToDomainGroupSlice(ms), nil
}

func (r *PgxGroupRepository) UpdateGroup(ctx context.Context, group domain.Group) error {
	m := mapping.ToModelGroup(group)
	cmdTag, err := r.db(ctx).Exec(ctx, `
		UPDATE dre_groups
		SET name = $2, kind = $3, display_order = $4, is_active = $5, last_updated_at = $6, last_updated_by = $7
		WHERE group_id = $1`,
		m.GroupID, m.Name, m.Kind, m.DisplayOrder, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return mapWriteError(err, "group "+m.Code)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

var FULL_ACCOUNT_SELECT_QUERY = `
SELECT
	a.account_id, a.workplace_id, a.group_id, a.code, a.name, a.legacy_name, a.display_order, a.is_active,
	a.created_at, a.created_by, a.last_updated_at, a.last_updated_by
FROM dre_accounts a
`

// getAccounts runs FULL_ACCOUNT_SELECT_QUERY with the given filter.
func (r *PgxAccountRepository) getAccounts(ctx context.Context, filterQuery string, args ...any) ([]domain.Account, error) {
	rows, err := r.db(ctx).Query(ctx, FULL_ACCOUNT_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, fmt.Errorf("failed to collect account rows: %w", err)
	}
	return mapping.ToDomainAccountSlice(ms), nil
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, workplaceID string, accountID string) (*domain.Account, error) {
	accounts, err := r.getAccounts(ctx, `WHERE a.workplace_id = $1 AND a.account_id = $2`, workplaceID, accountID)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &accounts[0], nil
}

func (r *PgxAccountRepository) FindAccountByLegacyName(ctx context.Context, workplaceID string, legacyName string) (*domain.Account, error) {
	accounts, err := r.getAccounts(ctx, `
		WHERE a.workplace_id = $1 AND a.legacy_name = $2
		ORDER BY a.is_active DESC, a.account_id
		LIMIT 1`, workplaceID, legacyName)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &accounts[0], nil
}

func (r *PgxAccountRepository) ListAccounts(ctx context.Context, workplaceID string, filter domain.AccountFilter) ([]domain.Account, error) {
	var kind *string
	if filter.Kind != nil {
		k := string(*filter.Kind)
		kind = &k
	}
	return r.getAccounts(ctx, `
		JOIN dre_groups g ON g.group_id = a.group_id
		WHERE a.workplace_id = $1 AND a.is_active = TRUE
			AND ($2::text IS NULL OR a.group_id = $2)
			AND ($3::text IS NULL OR g.kind = $3)
		ORDER BY g.display_order, a.display_order, a.name`, workplaceID, filter.GroupID, kind)
}

func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	_, err := r.db(ctx).Exec(ctx, `
		INSERT INTO dre_accounts (
			account_id, workplace_id, group_id, code, name, legacy_name, display_order, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		m.AccountID, m.WorkplaceID, m.GroupID, m.Code, m.Name, m.LegacyName, m.DisplayOrder, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("account %q", m.Name))
	}
	return nil
}

func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	cmdTag, err := r.db(ctx).Exec(ctx, `
		UPDATE dre_accounts
		SET group_id = $3, code = $4, name = $5, legacy_name = $6, display_order = $7, is_active = $8,
			last_updated_at = $9, last_updated_by = $10
		WHERE workplace_id = $1 AND account_id = $2`,
		m.WorkplaceID, m.AccountID, m.GroupID, m.Code, m.Name, m.LegacyName, m.DisplayOrder, m.IsActive,
		m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("account %q", m.Name))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAccountRepository) DeactivateAccount(ctx context.Context, workplaceID string, accountID string, userID string, now time.Time) error {
	cmdTag, err := r.db(ctx).Exec(ctx, `
		UPDATE dre_accounts
		SET is_active = FALSE, last_updated_at = $3, last_updated_by = $4
		WHERE workplace_id = $1 AND account_id = $2 AND is_active = TRUE`,
		workplaceID, accountID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate account %s: %w", accountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Distinguish a missing account from one that is already inactive.
		if _, findErr := r.FindAccountByID(ctx, workplaceID, accountID); findErr != nil {
			return findErr
		}
		return fmt.Errorf("%w: account %s is already inactive", apperrors.ErrValidation, accountID)
	}
	return nil
}
