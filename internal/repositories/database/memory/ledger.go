package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/dre_backoffice/internal/apperrors"
	"github.com/SscSPs/dre_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

func (s *Store) SaveLedgerEntry(ctx context.Context, entry domain.LedgerEntry) error {
	return s.write(ctx, func(st *state) error {
		if a, ok := st.accounts[entry.AccountID]; !ok || a.WorkplaceID != entry.WorkplaceID {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, entry.AccountID)
		}
		if _, ok := st.rules[entry.RuleID]; !ok {
			return fmt.Errorf("%w: rule %s", apperrors.ErrNotFound, entry.RuleID)
		}
		for _, e := range st.entries {
			if e.EntryID == entry.EntryID ||
				(e.WorkplaceID == entry.WorkplaceID && e.EventID == entry.EventID && e.RuleID == entry.RuleID) {
				return fmt.Errorf("%w: entry for event %s and rule %s already exists", apperrors.ErrDuplicate, entry.EventID, entry.RuleID)
			}
		}
		st.entries = append(st.entries, entry)
		return nil
	})
}

func (s *Store) ListEntriesByEvent(ctx context.Context, workplaceID string, eventID string) ([]domain.LedgerEntry, error) {
	entries := []domain.LedgerEntry{}
	s.read(ctx, func(st *state) {
		for _, e := range st.entries {
			if e.WorkplaceID == workplaceID && e.EventID == eventID {
				entries = append(entries, e)
			}
		}
	})
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].CreatedAt.Before(entries[j].CreatedAt) })
	return entries, nil
}

func (s *Store) GroupHasEntries(ctx context.Context, groupID string) (bool, error) {
	found := false
	s.read(ctx, func(st *state) {
		for _, e := range st.entries {
			if st.accounts[e.AccountID].GroupID == groupID {
				found = true
				return
			}
		}
	})
	return found, nil
}

func (s *Store) GetAccountTotals(ctx context.Context, workplaceID string, start, end time.Time) ([]domain.AccountTotal, error) {
	totals := map[string]*domain.AccountTotal{}
	s.read(ctx, func(st *state) {
		for _, e := range st.entries {
			if e.WorkplaceID != workplaceID || e.PostingDate.Before(start) || e.PostingDate.After(end) {
				continue
			}
			t, ok := totals[e.AccountID]
			if !ok {
				a := st.accounts[e.AccountID]
				g := st.groups[a.GroupID]
				t = &domain.AccountTotal{
					AccountID:           a.AccountID,
					AccountName:         a.Name,
					AccountDisplayOrder: a.DisplayOrder,
					GroupID:             g.GroupID,
					GroupName:           g.Name,
					GroupCode:           g.Code,
					GroupKind:           g.Kind,
					GroupDisplayOrder:   g.DisplayOrder,
					Total:               decimal.Zero,
				}
				totals[e.AccountID] = t
			}
			t.Total = t.Total.Add(e.Amount)
		}
	})

	rows := make([]domain.AccountTotal, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, *t)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].AccountID < rows[j].AccountID })
	return rows, nil
}
