package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/dre_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/dre_backoffice/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetAccountTotals sums ledger amounts per account for the period. Accounts
// are joined regardless of is_active so history survives deactivation.
func (r *reportingRepository) GetAccountTotals(ctx context.Context, workplaceID string, start, end time.Time) ([]domain.AccountTotal, error) {
	query := `
		SELECT
			a.account_id,
			a.name AS account_name,
			a.display_order AS account_display_order,
			g.group_id,
			g.name AS group_name,
			g.code AS group_code,
			g.kind AS group_kind,
			g.display_order AS group_display_order,
			SUM(e.amount) AS total
		FROM ledger_entries e
		JOIN dre_accounts a ON a.account_id = e.account_id
		JOIN dre_groups g ON g.group_id = a.group_id
		WHERE e.workplace_id = $1
			AND e.posting_date BETWEEN $2::date AND $3::date
		GROUP BY a.account_id, a.name, a.display_order, g.group_id, g.name, g.code, g.kind, g.display_order
	`

	rows, err := r.db(ctx).Query(ctx, query, workplaceID, start, end)
	if err != nil {
		return nil, fmt.Errorf("error querying account totals: %w", err)
	}
	defer rows.Close()

	result := []domain.AccountTotal{}
	for rows.Next() {
		var row domain.AccountTotal
		var kind string

		if err := rows.Scan(
			&row.AccountID,
			&row.AccountName,
			&row.AccountDisplayOrder,
			&row.GroupID,
			&row.GroupName,
			&row.GroupCode,
			&kind,
			&row.GroupDisplayOrder,
			&row.Total,
		); err != nil {
			return nil, fmt.Errorf("error scanning account total row: %w", err)
		}

		row.GroupKind = domain.GroupKind(kind)
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account total rows: %w", err)
	}

	return result, nil
}
