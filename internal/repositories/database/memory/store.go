package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/dre_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/dre_backoffice/internal/core/ports/repositories"
)

// state is one consistent snapshot of every table.
type state struct {
	groups   map[string]domain.Group
	accounts map[string]domain.Account
	taxRates map[string]domain.TaxRate
	rules    map[string]domain.Rule
	entries  []domain.LedgerEntry
}

func (st *state) clone() *state {
	c := &state{
		groups:   make(map[string]domain.Group, len(st.groups)),
		accounts: make(map[string]domain.Account, len(st.accounts)),
		taxRates: make(map[string]domain.TaxRate, len(st.taxRates)),
		rules:    make(map[string]domain.Rule, len(st.rules)),
		entries:  make([]domain.LedgerEntry, len(st.entries)),
	}
	for k, v := range st.groups {
		c.groups[k] = v
	}
	for k, v := range st.accounts {
		c.accounts[k] = v
	}
	for k, v := range st.taxRates {
		c.taxRates[k] = v
	}
	for k, v := range st.rules {
		c.rules[k] = v
	}
	copy(c.entries, st.entries)
	return c
}

// Store keeps every repository in process memory. Writes are staged on a
// private copy of the data and published on commit, so a failed unit of work
// leaves nothing behind.
type Store struct {
	mu   sync.RWMutex
	data *state

	// txMu serializes writers; readers only need mu.
	txMu sync.Mutex
}

type txKey struct{}

// New returns a store seeded with the default DRE groups.
func New() *Store {
	st := &state{
		groups:   make(map[string]domain.Group),
		accounts: make(map[string]domain.Account),
		taxRates: make(map[string]domain.TaxRate),
		rules:    make(map[string]domain.Rule),
		entries:  make([]domain.LedgerEntry, 0),
	}
	for _, g := range domain.DefaultGroups() {
		st.groups[g.GroupID] = g
	}
	return &Store{data: st}
}

// NewRepositoryProvider exposes the store through the repository ports.
func NewRepositoryProvider(s *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:     s,
		GroupRepo:     s,
		AccountRepo:   s,
		TaxRateRepo:   s,
		RuleRepo:      s,
		LedgerRepo:    s,
		ReportingRepo: s,
	}
}

var (
	_ portsrepo.TransactionManager      = (*Store)(nil)
	_ portsrepo.GroupRepositoryFacade   = (*Store)(nil)
	_ portsrepo.AccountRepositoryFacade = (*Store)(nil)
	_ portsrepo.TaxRateRepositoryFacade = (*Store)(nil)
	_ portsrepo.RuleRepositoryFacade    = (*Store)(nil)
	_ portsrepo.LedgerRepositoryFacade  = (*Store)(nil)
	_ portsrepo.ReportingRepository     = (*Store)(nil)
)

// RunInTx runs fn against a staged copy of the data. The copy replaces the
// live data only if fn succeeds.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*state); ok {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	staged := s.data.clone()
	s.mu.RUnlock()

	if err := fn(context.WithValue(ctx, txKey{}, staged)); err != nil {
		return err
	}

	s.mu.Lock()
	s.data = staged
	s.mu.Unlock()
	return nil
}

// read calls fn with the data visible to ctx.
func (s *Store) read(ctx context.Context, fn func(st *state)) {
	if st, ok := ctx.Value(txKey{}).(*state); ok {
		fn(st)
		return
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.data)
}

// write applies fn inside the caller's transaction, or in one of its own.
func (s *Store) write(ctx context.Context, fn func(st *state) error) error {
	return s.RunInTx(ctx, func(txCtx context.Context) error {
		return fn(txCtx.Value(txKey{}).(*state))
	})
}
