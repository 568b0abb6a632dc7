package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/dre_backoffice/internal/apperrors"
	"github.com/SscSPs/dre_backoffice/internal/core/domain"
)

func (s *Store) FindTaxRateByID(ctx context.Context, workplaceID string, taxRateID string) (*domain.TaxRate, error) {
	var (
		r  domain.TaxRate
		ok bool
	)
	s.read(ctx, func(st *state) { r, ok = st.taxRates[taxRateID] })
	if !ok || r.WorkplaceID != workplaceID {
		return nil, apperrors.ErrNotFound
	}
	return &r, nil
}

func (s *Store) ListTaxRates(ctx context.Context, workplaceID string) ([]domain.TaxRate, error) {
	rates := []domain.TaxRate{}
	s.read(ctx, func(st *state) {
		for _, r := range st.taxRates {
			if r.WorkplaceID == workplaceID && r.IsActive {
				rates = append(rates, r)
			}
		}
	})
	sort.Slice(rates, func(i, j int) bool { return rates[i].Sigla < rates[j].Sigla })
	return rates, nil
}

func siglaTaken(st *state, rate domain.TaxRate) bool {
	for _, other := range st.taxRates {
		if other.TaxRateID != rate.TaxRateID && other.WorkplaceID == rate.WorkplaceID && other.Sigla == rate.Sigla {
			return true
		}
	}
	return false
}

func (s *Store) SaveTaxRate(ctx context.Context, rate domain.TaxRate) error {
	return s.write(ctx, func(st *state) error {
		if _, ok := st.taxRates[rate.TaxRateID]; ok || siglaTaken(st, rate) {
			return fmt.Errorf("%w: tax rate %s already exists", apperrors.ErrDuplicate, rate.Sigla)
		}
		st.taxRates[rate.TaxRateID] = rate
		return nil
	})
}

func (s *Store) UpdateTaxRate(ctx context.Context, rate domain.TaxRate) error {
	return s.write(ctx, func(st *state) error {
		current, ok := st.taxRates[rate.TaxRateID]
		if !ok || current.WorkplaceID != rate.WorkplaceID {
			return apperrors.ErrNotFound
		}
		if siglaTaken(st, rate) {
			return fmt.Errorf("%w: tax rate %s already exists", apperrors.ErrDuplicate, rate.Sigla)
		}
		rate.CreatedAt = current.CreatedAt
		rate.CreatedBy = current.CreatedBy
		st.taxRates[rate.TaxRateID] = rate
		return nil
	})
}

func (s *Store) DeactivateTaxRate(ctx context.Context, workplaceID string, taxRateID string, userID string, now time.Time) error {
	return s.write(ctx, func(st *state) error {
		r, ok := st.taxRates[taxRateID]
		if !ok || r.WorkplaceID != workplaceID {
			return apperrors.ErrNotFound
		}
		if !r.IsActive {
			return fmt.Errorf("%w: tax rate %s is already inactive", apperrors.ErrValidation, r.Sigla)
		}
		r.IsActive = false
		r.LastUpdatedAt = now
		r.LastUpdatedBy = userID
		st.taxRates[taxRateID] = r
		return nil
	})
}

func (s *Store) FindRuleByID(ctx context.Context, workplaceID string, ruleID string) (*domain.Rule, error) {
	var (
		r  domain.Rule
		ok bool
	)
	s.read(ctx, func(st *state) { r, ok = st.rules[ruleID] })
	if !ok || r.WorkplaceID != workplaceID {
		return nil, apperrors.ErrNotFound
	}
	return &r, nil
}

func (s *Store) ListRules(ctx context.Context, workplaceID string) ([]domain.Rule, error) {
	return s.filterRules(ctx, func(r domain.Rule) bool { return r.WorkplaceID == workplaceID }), nil
}

func (s *Store) FindMatchingRules(ctx context.Context, workplaceID string, trigger domain.Trigger, subtype *domain.SaleSubtype) ([]domain.Rule, error) {
	return s.filterRules(ctx, func(r domain.Rule) bool {
		return r.WorkplaceID == workplaceID && r.IsActive && r.Trigger == trigger && r.MatchesSubtype(subtype)
	}), nil
}

func (s *Store) filterRules(ctx context.Context, keep func(domain.Rule) bool) []domain.Rule {
	rules := []domain.Rule{}
	s.read(ctx, func(st *state) {
		for _, r := range st.rules {
			if keep(r) {
				rules = append(rules, r)
			}
		}
	})
	sort.Slice(rules, func(i, j int) bool {
		if rules[i].Name != rules[j].Name {
			return rules[i].Name < rules[j].Name
		}
		return rules[i].RuleID < rules[j].RuleID
	})
	return rules
}

// checkRuleRefs mirrors the foreign keys of the rules table.
func checkRuleRefs(st *state, rule domain.Rule) error {
	if a, ok := st.accounts[rule.AccountID]; !ok || a.WorkplaceID != rule.WorkplaceID {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, rule.AccountID)
	}
	if rule.TaxRateID != nil {
		if r, ok := st.taxRates[*rule.TaxRateID]; !ok || r.WorkplaceID != rule.WorkplaceID {
			return fmt.Errorf("%w: tax rate %s", apperrors.ErrNotFound, *rule.TaxRateID)
		}
	}
	for _, other := range st.rules {
		if other.RuleID != rule.RuleID && other.WorkplaceID == rule.WorkplaceID && other.Name == rule.Name {
			return fmt.Errorf("%w: rule %q already exists", apperrors.ErrDuplicate, rule.Name)
		}
	}
	return nil
}

func (s *Store) SaveRule(ctx context.Context, rule domain.Rule) error {
	return s.write(ctx, func(st *state) error {
		if _, ok := st.rules[rule.RuleID]; ok {
			return fmt.Errorf("%w: rule with ID %s already exists", apperrors.ErrDuplicate, rule.RuleID)
		}
		if err := checkRuleRefs(st, rule); err != nil {
			return err
		}
		st.rules[rule.RuleID] = rule
		return nil
	})
}

func (s *Store) UpdateRule(ctx context.Context, rule domain.Rule) error {
	return s.write(ctx, func(st *state) error {
		current, ok := st.rules[rule.RuleID]
		if !ok || current.WorkplaceID != rule.WorkplaceID {
			return apperrors.ErrNotFound
		}
		if err := checkRuleRefs(st, rule); err != nil {
			return err
		}
		rule.CreatedAt = current.CreatedAt
		rule.CreatedBy = current.CreatedBy
		st.rules[rule.RuleID] = rule
		return nil
	})
}

func (s *Store) DeactivateRule(ctx context.Context, workplaceID string, ruleID string, userID string, now time.Time) error {
	return s.write(ctx, func(st *state) error {
		r, ok := st.rules[ruleID]
		if !ok || r.WorkplaceID != workplaceID {
			return apperrors.ErrNotFound
		}
		if !r.IsActive {
			return fmt.Errorf("%w: rule %q is already inactive", apperrors.ErrValidation, r.Name)
		}
		r.IsActive = false
		r.LastUpdatedAt = now
		r.LastUpdatedBy = userID
		st.rules[ruleID] = r
		return nil
	})
}
