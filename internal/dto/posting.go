package dto

import (
	"time"

	"github.com/SscSPs/dre_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PostEventRequest carries a business event to the posting engine.
// Only the amounts present in the request are exposed to rules; totalAmount is mandatory.
type PostEventRequest struct {
	EventID          string              `json:"eventID" binding:"required,max=100"`
	Trigger          domain.Trigger      `json:"trigger" binding:"required,oneof=SALE_CONFIRMED SALE_INVOICED SALE_CANCELLED EXPENSE_RECORDED PURCHASE_RECEIVED"`
	SaleSubtype      *domain.SaleSubtype `json:"saleSubtype" binding:"omitempty,oneof=DIRECT CONDITIONAL GIFT BARTER"`
	OccurredAt       *time.Time          `json:"occurredAt"` // Defaults to now
	Description      string              `json:"description" binding:"max=255"`
	TotalAmount      *decimal.Decimal    `json:"totalAmount" swaggertype:"string" example:"1000.00"`
	FreightAmount    *decimal.Decimal    `json:"freightAmount,omitempty" swaggertype:"string"`
	CommissionAmount *decimal.Decimal    `json:"commissionAmount,omitempty" swaggertype:"string"`
	DiscountAmount   *decimal.Decimal    `json:"discountAmount,omitempty" swaggertype:"string"`
	CostAmount       *decimal.Decimal    `json:"costAmount,omitempty" swaggertype:"string"`
}

// ToBusinessEvent converts the request into the domain event for a workplace.
func (r PostEventRequest) ToBusinessEvent(workplaceID string, now time.Time) domain.BusinessEvent {
	occurredAt := now
	if r.OccurredAt != nil {
		occurredAt = *r.OccurredAt
	}

	amounts := make(map[domain.SourceField]decimal.Decimal, 5)
	for field, v := range map[domain.SourceField]*decimal.Decimal{
		domain.FieldTotalAmount:      r.TotalAmount,
		domain.FieldFreightAmount:    r.FreightAmount,
		domain.FieldCommissionAmount: r.CommissionAmount,
		domain.FieldDiscountAmount:   r.DiscountAmount,
		domain.FieldCostAmount:       r.CostAmount,
	} {
		if v != nil {
			amounts[field] = *v
		}
	}

	return domain.BusinessEvent{
		WorkplaceID: workplaceID,
		EventID:     r.EventID,
		Trigger:     r.Trigger,
		SaleSubtype: r.SaleSubtype,
		OccurredAt:  occurredAt,
		Amounts:     amounts,
		Description: r.Description,
	}
}

// LedgerEntryResponse defines the data returned for a ledger entry.
type LedgerEntryResponse struct {
	EntryID     string          `json:"entryID"`
	AccountID   string          `json:"accountID"`
	RuleID      string          `json:"ruleID"`
	EventID     string          `json:"eventID"`
	Trigger     domain.Trigger  `json:"trigger"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string"`
	PostingDate string          `json:"postingDate"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
	CreatedBy   string          `json:"createdBy"`
}

// PostingResultResponse is returned after an event has been posted.
type PostingResultResponse struct {
	EventID string                `json:"eventID"`
	Trigger domain.Trigger        `json:"trigger"`
	Entries []LedgerEntryResponse `json:"entries"`
}

// ListLedgerEntriesResponse wraps the entries of one event.
type ListLedgerEntriesResponse struct {
	Entries []LedgerEntryResponse `json:"entries"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to LedgerEntryResponse DTO
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:     e.EntryID,
		AccountID:   e.AccountID,
		RuleID:      e.RuleID,
		EventID:     e.EventID,
		Trigger:     e.Trigger,
		Amount:      e.Amount,
		PostingDate: e.PostingDate.Format(DateLayout),
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		CreatedBy:   e.CreatedBy,
	}
}

func toLedgerEntryResponses(entries []domain.LedgerEntry) []LedgerEntryResponse {
	res := make([]LedgerEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToLedgerEntryResponse(&entries[i])
	}
	return res
}

// ToPostingResultResponse converts a domain.PostingResult to its DTO
func ToPostingResultResponse(r *domain.PostingResult) PostingResultResponse {
	return PostingResultResponse{
		EventID: r.EventID,
		Trigger: r.Trigger,
		Entries: toLedgerEntryResponses(r.Entries),
	}
}

// ToListLedgerEntriesResponse converts a slice of entries to ListLedgerEntriesResponse
func ToListLedgerEntriesResponse(entries []domain.LedgerEntry) ListLedgerEntriesResponse {
	return ListLedgerEntriesResponse{Entries: toLedgerEntryResponses(entries)}
}
