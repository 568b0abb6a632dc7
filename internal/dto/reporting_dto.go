package dto

import (
	"github.com/SscSPs/dre_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of report dates and posting dates.
const DateLayout = "2006-01-02"

// IncomeStatementParams defines the query parameters of the income statement.
type IncomeStatementParams struct {
	StartDate string `form:"startDate" binding:"required"`
	EndDate   string `form:"endDate" binding:"required"`
}

// PeriodResponse is the closed period a report covers.
type PeriodResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// IncomeStatementLineResponse is one per-account line of the income statement.
type IncomeStatementLineResponse struct {
	AccountID   string           `json:"accountId"`
	AccountName string           `json:"accountName"`
	GroupID     string           `json:"groupId"`
	GroupName   string           `json:"groupName"`
	GroupCode   string           `json:"groupCode"`
	GroupKind   domain.GroupKind `json:"groupKind"`
	Total       decimal.Decimal  `json:"total" swaggertype:"string"`
}

// GroupStatementResponse is one group node of the statement tree.
type GroupStatementResponse struct {
	GroupID  string                        `json:"groupId"`
	Code     string                        `json:"code"`
	Name     string                        `json:"name"`
	Kind     domain.GroupKind              `json:"kind"`
	Accounts []IncomeStatementLineResponse `json:"accounts"`
	Subtotal decimal.Decimal               `json:"subtotal" swaggertype:"string"`
}

// StatementTotalsResponse holds the derived totals.
type StatementTotalsResponse struct {
	GrossRevenue    decimal.Decimal `json:"grossRevenue" swaggertype:"string"`
	Deductions      decimal.Decimal `json:"deductions" swaggertype:"string"`
	NetRevenue      decimal.Decimal `json:"netRevenue" swaggertype:"string"`
	Costs           decimal.Decimal `json:"costs" swaggertype:"string"`
	GrossProfit     decimal.Decimal `json:"grossProfit" swaggertype:"string"`
	Expenses        decimal.Decimal `json:"expenses" swaggertype:"string"`
	OperatingProfit decimal.Decimal `json:"operatingProfit" swaggertype:"string"`
}

// IncomeStatementResponse represents the DRE report response
type IncomeStatementResponse struct {
	WorkplaceID string                        `json:"workplaceId"`
	Period      PeriodResponse                `json:"period"`
	Lines       []IncomeStatementLineResponse `json:"lines"`
	Groups      []GroupStatementResponse      `json:"groups"`
	Totals      StatementTotalsResponse       `json:"totals"`
}

func toIncomeStatementLine(a domain.AccountTotal) IncomeStatementLineResponse {
	return IncomeStatementLineResponse{
		AccountID:   a.AccountID,
		AccountName: a.AccountName,
		GroupID:     a.GroupID,
		GroupName:   a.GroupName,
		GroupCode:   a.GroupCode,
		GroupKind:   a.GroupKind,
		Total:       a.Total,
	}
}

// ToIncomeStatementResponse converts a domain income statement to a DTO response
func ToIncomeStatementResponse(s *domain.IncomeStatement) IncomeStatementResponse {
	response := IncomeStatementResponse{
		WorkplaceID: s.WorkplaceID,
		Period: PeriodResponse{
			Start: s.Period.Start.Format(DateLayout),
			End:   s.Period.End.Format(DateLayout),
		},
		Lines:  make([]IncomeStatementLineResponse, len(s.Lines)),
		Groups: make([]GroupStatementResponse, len(s.Groups)),
		Totals: StatementTotalsResponse{
			GrossRevenue:    s.Totals.GrossRevenue,
			Deductions:      s.Totals.Deductions,
			NetRevenue:      s.Totals.NetRevenue,
			Costs:           s.Totals.Costs,
			GrossProfit:     s.Totals.GrossProfit,
			Expenses:        s.Totals.Expenses,
			OperatingProfit: s.Totals.OperatingProfit,
		},
	}

	for i, line := range s.Lines {
		response.Lines[i] = toIncomeStatementLine(line)
	}

	for i, g := range s.Groups {
		accounts := make([]IncomeStatementLineResponse, len(g.Accounts))
		for j, a := range g.Accounts {
			accounts[j] = toIncomeStatementLine(a)
		}
		response.Groups[i] = GroupStatementResponse{
			GroupID:  g.GroupID,
			Code:     g.Code,
			Name:     g.Name,
			Kind:     g.Kind,
			Accounts: accounts,
			Subtotal: g.Subtotal,
		}
	}

	return response
}
