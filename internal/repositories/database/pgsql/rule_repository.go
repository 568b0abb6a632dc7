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

type PgxTaxRateRepository struct {
	BaseRepository
}

func newPgxTaxRateRepository(pool *pgxpool.Pool) portsrepo.TaxRateRepositoryFacade {
	return &PgxTaxRateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TaxRateRepositoryFacade = (*PgxTaxRateRepository)(nil)

var FULL_TAX_RATE_SELECT_QUERY = `
SELECT
	t.tax_rate_id, t.workplace_id, t.sigla, t.name, t.percentage, t.is_active,
	t.created_at, t.created_by, t.last_updated_at, t.last_updated_by
FROM tax_rates t
`

func (r *PgxTaxRateRepository) FindTaxRateByID(ctx context.Context, workplaceID string, taxRateID string) (*domain.TaxRate, error) {
	rows, err := r.db(ctx).Query(ctx, FULL_TAX_RATE_SELECT_QUERY+`WHERE t.workplace_id = $1 AND t.tax_rate_id = $2`, workplaceID, taxRateID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tax rate %s: %w", taxRateID, err)
	}
	m, err := collectOne[models.TaxRate](rows, "tax rate")
	if err != nil {
		return nil, err
	}
	rate := mapping.ToDomainTaxRate(*m)
	return &rate, nil
}

func (r *PgxTaxRateRepository) ListTaxRates(ctx context.Context, workplaceID string) ([]domain.TaxRate, error) {
	rows, err := r.db(ctx).Query(ctx, FULL_TAX_RATE_SELECT_QUERY+`WHERE t.workplace_id = $1 AND t.is_active = TRUE ORDER BY t.sigla`, workplaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tax rates: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.TaxRate])
	if err != nil {
		return nil, fmt.Errorf("failed to collect tax rate rows: %w", err)
	}
	return mapping.ToDomainTaxRateSlice(ms), nil
}

func (r *PgxTaxRateRepository) SaveTaxRate(ctx context.Context, rate domain.TaxRate) error {
	m := mapping.ToModelTaxRate(rate)
	_, err := r.db(ctx).Exec(ctx, `
		INSERT INTO tax_rates (
			tax_rate_id, workplace_id, sigla, name, percentage, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		m.TaxRateID, m.WorkplaceID, m.Sigla, m.Name, m.Percentage, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return mapWriteError(err, "tax rate "+m.Sigla)
	}
	return nil
}

func (r *PgxTaxRateRepository) UpdateTaxRate(ctx context.Context, rate domain.TaxRate) error {
	m := mapping.ToModelTaxRate(rate)
	cmdTag, err := r.db(ctx).Exec(ctx, `
		UPDATE tax_rates
		SET sigla = $3, name = $4, percentage = $5, is_active = $6, last_updated_at = $7, last_updated_by = $8
		WHERE workplace_id = $1 AND tax_rate_id = $2`,
		m.WorkplaceID, m.TaxRateID, m.Sigla, m.Name, m.Percentage, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return mapWriteError(err, "tax rate "+m.Sigla)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTaxRateRepository) DeactivateTaxRate(ctx context.Context, workplaceID string, taxRateID string, userID string, now time.Time) error {
	cmdTag, err := r.db(ctx).Exec(ctx, `
		UPDATE tax_rates
		SET is_active = FALSE, last_updated_at = $3, last_updated_by = $4
		WHERE workplace_id = $1 AND tax_rate_id = $2 AND is_active = TRUE`,
		workplaceID, taxRateID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate tax rate %s: %w", taxRateID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		if _, findErr := r.FindTaxRateByID(ctx, workplaceID, taxRateID); findErr != nil {
			return findErr
		}
		return fmt.Errorf("%w: tax rate %s is already inactive", apperrors.ErrValidation, taxRateID)
	}
	return nil
}

type PgxRuleRepository struct {
	BaseRepository
}

func newPgxRuleRepository(pool *pgxpool.Pool) portsrepo.RuleRepositoryFacade {
	return &PgxRuleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RuleRepositoryFacade = (*PgxRuleRepository)(nil)

var FULL_RULE_SELECT_QUERY = `
SELECT
	r.rule_id, r.workplace_id, r.account_id, r.tax_rate_id, r.name, r.trigger_type,
	r.sale_subtype, r.source_field, r.percentage, r.is_active,
	r.created_at, r.created_by, r.last_updated_at, r.last_updated_by
FROM posting_rules r
`

func (r *PgxRuleRepository) getRules(ctx context.Context, filterQuery string, args ...any) ([]domain.Rule, error) {
	rows, err := r.db(ctx).Query(ctx, FULL_RULE_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query rules: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Rule])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rule rows: %w", err)
	}
	return mapping.ToDomainRuleSlice(ms), nil
}

func (r *PgxRuleRepository) FindRuleByID(ctx context.Context, workplaceID string, ruleID string) (*domain.Rule, error) {
	rules, err := r.getRules(ctx, `WHERE r.workplace_id = $1 AND r.rule_id = $2`, workplaceID, ruleID)
	if err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &rules[0], nil
}

func (r *PgxRuleRepository) ListRules(ctx context.Context, workplaceID string) ([]domain.Rule, error) {
	return r.getRules(ctx, `WHERE r.workplace_id = $1 ORDER BY r.name, r.rule_id`, workplaceID)
}

func (r *PgxRuleRepository) FindMatchingRules(ctx context.Context, workplaceID string, trigger domain.Trigger, subtype *domain.SaleSubtype) ([]domain.Rule, error) {
	var sub *string
	if subtype != nil {
		s := string(*subtype)
		sub = &s
	}
	return r.getRules(ctx, `
		WHERE r.workplace_id = $1 AND r.is_active = TRUE AND r.trigger_type = $2
			AND (r.sale_subtype IS NULL OR r.sale_subtype = $3::text)
		ORDER BY r.name, r.rule_id`, workplaceID, string(trigger), sub)
}

func (r *PgxRuleRepository) SaveRule(ctx context.Context, rule domain.Rule) error {
	m := mapping.ToModelRule(rule)
	_, err := r.db(ctx).Exec(ctx, `
		INSERT INTO posting_rules (
			rule_id, workplace_id, account_id, tax_rate_id, name, trigger_type,
			sale_subtype, source_field, percentage, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		m.RuleID, m.WorkplaceID, m.AccountID, m.TaxRateID, m.Name, m.Trigger,
		m.SaleSubtype, m.SourceField, m.Percentage, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("rule %q", m.Name))
	}
	return nil
}

func (r *PgxRuleRepository) UpdateRule(ctx context.Context, rule domain.Rule) error {
	m := mapping.ToModelRule(rule)
	cmdTag, err := r.db(ctx).Exec(ctx, `
		UPDATE posting_rules
		SET account_id = $3, tax_rate_id = $4, name = $5, trigger_type = $6, sale_subtype = $7,
			source_field = $8, percentage = $9, is_active = $10, last_updated_at = $11, last_updated_by = $12
		WHERE workplace_id = $1 AND rule_id = $2`,
		m.WorkplaceID, m.RuleID, m.AccountID, m.TaxRateID, m.Name, m.Trigger, m.SaleSubtype,
		m.SourceField, m.Percentage, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("rule %q", m.Name))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxRuleRepository) DeactivateRule(ctx context.Context, workplaceID string, ruleID string, userID string, now time.Time) error {
	cmdTag, err := r.db(ctx).Exec(ctx, `
		UPDATE posting_rules
		SET is_active = FALSE, last_updated_at = $3, last_updated_by = $4
		WHERE workplace_id = $1 AND rule_id = $2 AND is_active = TRUE`,
		workplaceID, ruleID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate rule %s: %w", ruleID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		if _, findErr := r.FindRuleByID(ctx, workplaceID, ruleID); findErr != nil {
			return findErr
		}
		return fmt.Errorf("%w: rule %s is already inactive", apperrors.ErrValidation, ruleID)
	}
	return nil
}
