package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/dre_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/dre_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/dre_backoffice/internal/models"
	"github.com/SscSPs/dre_backoffice/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

func (r *PgxLedgerRepository) SaveLedgerEntry(ctx context.Context, entry domain.LedgerEntry) error {
	m := mapping.ToModelLedgerEntry(entry)
	// Share-lock the account's group so a concurrent kind change waits for this posting.
	if _, err := r.db(ctx).Exec(ctx, `
		SELECT 1 FROM dre_groups g
		JOIN dre_accounts a ON a.group_id = g.group_id
		WHERE a.account_id = $1
		FOR SHARE OF g`, m.AccountID); err != nil {
		return fmt.Errorf("failed to lock group of account %s: %w", m.AccountID, err)
	}
	_, err := r.db(ctx).Exec(ctx, `
		INSERT INTO ledger_entries (
			entry_id, workplace_id, account_id, rule_id, event_id, trigger_type,
			amount, posting_date, description, created_at, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		m.EntryID, m.WorkplaceID, m.AccountID, m.RuleID, m.EventID, m.Trigger,
		m.Amount, m.PostingDate, m.Description, m.CreatedAt, m.CreatedBy)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("ledger entry for event %s and rule %s", m.EventID, m.RuleID))
	}
	return nil
}

func (r *PgxLedgerRepository) ListEntriesByEvent(ctx context.Context, workplaceID string, eventID string) ([]domain.LedgerEntry, error) {
	rows, err := r.db(ctx).Query(ctx, `
		SELECT entry_id, workplace_id, account_id, rule_id, event_id, trigger_type,
			amount, posting_date, description, created_at, created_by
		FROM ledger_entries
		WHERE workplace_id = $1 AND event_id = $2
		ORDER BY created_at, entry_id`, workplaceID, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries for event %s: %w", eventID, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.LedgerEntry])
	if err != nil {
		return nil, fmt.Errorf("failed to collect ledger entry rows: %w", err)
	}
	return mapping.ToDomainLedgerEntrySlice(ms), nil
}

// GroupHasEntries locks the group row before counting, so inside a transaction
// no posting against the group can commit until that transaction ends.
func (r *PgxLedgerRepository) GroupHasEntries(ctx context.Context, groupID string) (bool, error) {
	if _, err := r.db(ctx).Exec(ctx, `SELECT 1 FROM dre_groups WHERE group_id = $1 FOR UPDATE`, groupID); err != nil {
		return false, fmt.Errorf("failed to lock group %s: %w", groupID, err)
	}
	var exists bool
	err := r.db(ctx).QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM ledger_entries e
			JOIN dre_accounts a ON a.account_id = e.account_id
			WHERE a.group_id = $1
		)`, groupID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check entries for group %s: %w", groupID, err)
	}
	return exists, nil
}
