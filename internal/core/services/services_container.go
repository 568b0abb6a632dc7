package services

import (
	portsrepo "github.com/SscSPs/dre_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/dre_backoffice/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// authorizer may be nil, in which case workplace membership is not enforced.
func NewServiceContainer(repos portsrepo.RepositoryProvider, authorizer portssvc.WorkplaceAuthorizerSvc) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Chart = NewChartService(
		repos.TxManager,
		repos.GroupRepo,
		repos.AccountRepo,
		repos.LedgerRepo,
		WithChartWorkplaceAuthorizer(authorizer),
	)
	container.TaxRate = NewTaxRateService(repos.TaxRateRepo, WithTaxRateWorkplaceAuthorizer(authorizer))
	container.Rule = NewRuleService(
		repos.RuleRepo,
		repos.AccountRepo,
		repos.TaxRateRepo,
		WithRuleWorkplaceAuthorizer(authorizer),
	)
	container.Posting = NewPostingService(
		repos.TxManager,
		repos.RuleRepo,
		repos.AccountRepo,
		repos.TaxRateRepo,
		repos.LedgerRepo,
		WithPostingWorkplaceAuthorizer(authorizer),
	)
	container.Reporting = NewReportingService(repos.ReportingRepo, WithReportingWorkplaceAuthorizer(authorizer))

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ChartSvcFacade   = (*chartService)(nil)
	_ portssvc.TaxRateSvcFacade = (*taxRateService)(nil)
	_ portssvc.RuleSvcFacade    = (*ruleService)(nil)
	_ portssvc.PostingSvcFacade = (*postingService)(nil)
	_ portssvc.ReportingService = (*reportingService)(nil)
)
