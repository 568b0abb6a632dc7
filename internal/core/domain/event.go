package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/dre_backoffice/internal/apperrors"
	"github.com/shopspring/decimal"
)

// BusinessEvent is what the originating business action (confirming a sale,
// issuing an invoice, recording an expense) hands to the posting engine.
type BusinessEvent struct {
	WorkplaceID string
	EventID     string // Reference to the originating record, e.g. the sale ID
	Trigger     Trigger
	SaleSubtype *SaleSubtype
	OccurredAt  time.Time // Becomes the posting date (day granularity)
	Amounts     map[SourceField]decimal.Decimal
	Description string
}

// Amount returns the value of a source field and whether the event carries it.
func (e BusinessEvent) Amount(field SourceField) (decimal.Decimal, bool) {
	v, ok := e.Amounts[field]
	return v, ok
}

// Validate checks the event envelope. Negative amounts are allowed: they are
// how offsetting adjustments are expressed.
func (e BusinessEvent) Validate() error {
	if e.WorkplaceID == "" {
		return fmt.Errorf("%w: workplace ID is required", apperrors.ErrValidation)
	}
	if e.EventID == "" {
		return fmt.Errorf("%w: event ID is required", apperrors.ErrValidation)
	}
	if !e.Trigger.IsValid() {
		return fmt.Errorf("%w: unknown trigger type %q", apperrors.ErrValidation, e.Trigger)
	}
	if e.SaleSubtype != nil && !e.SaleSubtype.IsValid() {
		return fmt.Errorf("%w: unknown sale subtype %q", apperrors.ErrValidation, *e.SaleSubtype)
	}
	if _, ok := e.Amounts[FieldTotalAmount]; !ok {
		return fmt.Errorf("%w: %s is required", apperrors.ErrValidation, FieldTotalAmount)
	}
	for field := range e.Amounts {
		if !field.IsValid() {
			return fmt.Errorf("%w: unknown source field %q", apperrors.ErrValidation, field)
		}
	}
	return nil
}
