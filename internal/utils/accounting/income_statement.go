package accounting

import (
	"fmt"
	"sort"

	"github.com/SscSPs/dre_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BuildIncomeStatement rolls per-account totals up into the DRE tree.
//
// Rows for the same account are merged. Groups are ordered by display order
// then code, accounts by display order, name and ID, and Lines repeats the
// accounts in that same order. An empty input yields zeroed totals.
func BuildIncomeStatement(workplaceID string, rows []domain.AccountTotal, period domain.Period) (*domain.IncomeStatement, error) {
	byAccount := make(map[string]*domain.AccountTotal, len(rows))
	for _, row := range rows {
		if !row.GroupKind.IsValid() {
			return nil, fmt.Errorf("unknown group kind '%s' for account %s", row.GroupKind, row.AccountID)
		}
		if existing, ok := byAccount[row.AccountID]; ok {
			existing.Total = existing.Total.Add(row.Total)
			continue
		}
		r := row
		byAccount[row.AccountID] = &r
	}

	byGroup := make(map[string]*domain.GroupStatement)
	for _, acc := range byAccount {
		g, ok := byGroup[acc.GroupID]
		if !ok {
			g = &domain.GroupStatement{
				GroupID:      acc.GroupID,
				Code:         acc.GroupCode,
				Name:         acc.GroupName,
				Kind:         acc.GroupKind,
				DisplayOrder: acc.GroupDisplayOrder,
				Subtotal:     decimal.Zero,
			}
			byGroup[acc.GroupID] = g
		}
		g.Accounts = append(g.Accounts, *acc)
		g.Subtotal = g.Subtotal.Add(acc.Total)
	}

	groups := make([]domain.GroupStatement, 0, len(byGroup))
	for _, g := range byGroup {
		sortAccountTotals(g.Accounts)
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].DisplayOrder != groups[j].DisplayOrder {
			return groups[i].DisplayOrder < groups[j].DisplayOrder
		}
		return groups[i].Code < groups[j].Code
	})

	lines := make([]domain.AccountTotal, 0, len(byAccount))
	for _, g := range groups {
		lines = append(lines, g.Accounts...)
	}

	totals, err := ComputeTotals(groups)
	if err != nil {
		return nil, err
	}

	return &domain.IncomeStatement{
		WorkplaceID: workplaceID,
		Period:      period,
		Groups:      groups,
		Lines:       lines,
		Totals:      totals,
	}, nil
}

// ComputeTotals applies the fixed DRE formulas to group subtotals.
// Stored amounts are magnitudes; the formulas decide what is subtracted.
func ComputeTotals(groups []domain.GroupStatement) (domain.StatementTotals, error) {
	sums := map[domain.GroupKind]decimal.Decimal{
		domain.KindRevenue:   decimal.Zero,
		domain.KindDeduction: decimal.Zero,
		domain.KindCost:      decimal.Zero,
		domain.KindExpense:   decimal.Zero,
	}
	for _, g := range groups {
		current, ok := sums[g.Kind]
		if !ok {
			return domain.StatementTotals{}, fmt.Errorf("unknown group kind '%s' for group %s", g.Kind, g.Code)
		}
		sums[g.Kind] = current.Add(g.Subtotal)
	}

	t := domain.StatementTotals{
		GrossRevenue: sums[domain.KindRevenue],
		Deductions:   sums[domain.KindDeduction],
		Costs:        sums[domain.KindCost],
		Expenses:     sums[domain.KindExpense],
	}
	t.NetRevenue = t.GrossRevenue.Sub(t.Deductions)
	t.GrossProfit = t.NetRevenue.Sub(t.Costs)
	t.OperatingProfit = t.GrossProfit.Sub(t.Expenses)
	return t, nil
}

func sortAccountTotals(accounts []domain.AccountTotal) {
	sort.Slice(accounts, func(i, j int) bool {
		a, b := accounts[i], accounts[j]
		if a.AccountDisplayOrder != b.AccountDisplayOrder {
			return a.AccountDisplayOrder < b.AccountDisplayOrder
		}
		if a.AccountName != b.AccountName {
			return a.AccountName < b.AccountName
		}
		return a.AccountID < b.AccountID
	})
}
