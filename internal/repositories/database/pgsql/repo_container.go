package pgsql

import (
	portsrepo "github.com/SscSPs/dre_backoffice/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:     &BaseRepository{Pool: dbPool},
		GroupRepo:     newPgxGroupRepository(dbPool),
		AccountRepo:   newPgxAccountRepository(dbPool),
		TaxRateRepo:   newPgxTaxRateRepository(dbPool),
		RuleRepo:      newPgxRuleRepository(dbPool),
		LedgerRepo:    newPgxLedgerRepository(dbPool),
		ReportingRepo: newReportingRepository(dbPool),
	}
}
