package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/dre_backoffice/internal/apperrors"
	"github.com/SscSPs/dre_backoffice/internal/core/domain"
)

func (s *Store) FindGroupByID(ctx context.Context, groupID string) (*domain.Group, error) {
	var (
		g  domain.Group
		ok bool
	)
	s.read(ctx, func(st *state) { g, ok = st.groups[groupID] })
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &g, nil
}

func (s *Store) ListGroups(ctx context.Context) ([]domain.Group, error) {
	groups := []domain.Group{}
	s.read(ctx, func(st *state) {
		for _, g := range st.groups {
			groups = append(groups, g)
		}
	})
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].DisplayOrder != groups[j].DisplayOrder {
			return groups[i].DisplayOrder < groups[j].DisplayOrder
		}
		return groups[i].Code < groups[j].Code
	})
	return groups, nil
}

func (s *Store) UpdateGroup(ctx context.Context, group domain.Group) error {
	return s.write(ctx, func(st *state) error {
		current, ok := st.groups[group.GroupID]
		if !ok {
			return apperrors.ErrNotFound
		}
		current.Name = group.Name
		current.Kind = group.Kind
		current.DisplayOrder = group.DisplayOrder
		current.IsActive = group.IsActive
		current.LastUpdatedAt = group.LastUpdatedAt
		current.LastUpdatedBy = group.LastUpdatedBy
		st.groups[group.GroupID] = current
		return nil
	})
}

func (s *Store) FindAccountByID(ctx context.Context, workplaceID string, accountID string) (*domain.Account, error) {
	var (
		a  domain.Account
		ok bool
	)
	s.read(ctx, func(st *state) { a, ok = st.accounts[accountID] })
	if !ok || a.WorkplaceID != workplaceID {
		return nil, apperrors.ErrNotFound
	}
	return &a, nil
}

func (s *Store) FindAccountByLegacyName(ctx context.Context, workplaceID string, legacyName string) (*domain.Account, error) {
	var found *domain.Account
	s.read(ctx, func(st *state) {
		for _, a := range st.accounts {
			if a.WorkplaceID != workplaceID || a.LegacyName != legacyName {
				continue
			}
			if found == nil || (a.IsActive && !found.IsActive) ||
				(a.IsActive == found.IsActive && a.AccountID < found.AccountID) {
				acc := a
				found = &acc
			}
		}
	})
	if found == nil {
		return nil, apperrors.ErrNotFound
	}
	return found, nil
}

func (s *Store) ListAccounts(ctx context.Context, workplaceID string, filter domain.AccountFilter) ([]domain.Account, error) {
	accounts := []domain.Account{}
	groupOrder := map[string]int{}
	s.read(ctx, func(st *state) {
		for _, a := range st.accounts {
			if a.WorkplaceID != workplaceID || !a.IsActive {
				continue
			}
			if filter.GroupID != nil && a.GroupID != *filter.GroupID {
				continue
			}
			g := st.groups[a.GroupID]
			if filter.Kind != nil && g.Kind != *filter.Kind {
				continue
			}
			groupOrder[a.GroupID] = g.DisplayOrder
			accounts = append(accounts, a)
		}
	})
	sort.Slice(accounts, func(i, j int) bool {
		a, b := accounts[i], accounts[j]
		if groupOrder[a.GroupID] != groupOrder[b.GroupID] {
			return groupOrder[a.GroupID] < groupOrder[b.GroupID]
		}
		if a.DisplayOrder != b.DisplayOrder {
			return a.DisplayOrder < b.DisplayOrder
		}
		return a.Name < b.Name
	})
	return accounts, nil
}

// activeNameTaken mirrors the partial unique index on active accounts.
func activeNameTaken(st *state, a domain.Account) bool {
	if !a.IsActive {
		return false
	}
	for _, other := range st.accounts {
		if other.AccountID != a.AccountID && other.IsActive &&
			other.WorkplaceID == a.WorkplaceID && other.GroupID == a.GroupID && other.Name == a.Name {
			return true
		}
	}
	return false
}

func (s *Store) SaveAccount(ctx context.Context, account domain.Account) error {
	return s.write(ctx, func(st *state) error {
		if _, ok := st.accounts[account.AccountID]; ok {
			return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, account.AccountID)
		}
		if _, ok := st.groups[account.GroupID]; !ok {
			return fmt.Errorf("%w: group %s", apperrors.ErrNotFound, account.GroupID)
		}
		if activeNameTaken(st, account) {
			return fmt.Errorf("%w: account %q already exists in this group", apperrors.ErrDuplicate, account.Name)
		}
		st.accounts[account.AccountID] = account
		return nil
	})
}

func (s *Store) UpdateAccount(ctx context.Context, account domain.Account) error {
	return s.write(ctx, func(st *state) error {
		current, ok := st.accounts[account.AccountID]
		if !ok || current.WorkplaceID != account.WorkplaceID {
			return apperrors.ErrNotFound
		}
		if _, ok := st.groups[account.GroupID]; !ok {
			return fmt.Errorf("%w: group %s", apperrors.ErrNotFound, account.GroupID)
		}
		if activeNameTaken(st, account) {
			return fmt.Errorf("%w: account %q already exists in this group", apperrors.ErrDuplicate, account.Name)
		}
		account.CreatedAt = current.CreatedAt
		account.CreatedBy = current.CreatedBy
		st.accounts[account.AccountID] = account
		return nil
	})
}

func (s *Store) DeactivateAccount(ctx context.Context, workplaceID string, accountID string, userID string, now time.Time) error {
	return s.write(ctx, func(st *state) error {
		a, ok := st.accounts[accountID]
		if !ok || a.WorkplaceID != workplaceID {
			return apperrors.ErrNotFound
		}
		if !a.IsActive {
			return fmt.Errorf("%w: account %s is already inactive", apperrors.ErrValidation, accountID)
		}
		a.IsActive = false
		a.LastUpdatedAt = now
		a.LastUpdatedBy = userID
		st.accounts[accountID] = a
		return nil
	})
}
