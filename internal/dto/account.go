package dto

import (
	"time"

	"github.com/SscSPs/dre_backoffice/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new chart account.
type CreateAccountRequest struct {
	GroupID      string `json:"groupID" binding:"required"`
	Code         string `json:"code" binding:"max=50"`        // Optional external code
	Name         string `json:"name" binding:"required,max=150"`
	LegacyName   string `json:"legacyName" binding:"max=150"` // Optional, migration lookups only
	DisplayOrder int    `json:"displayOrder" binding:"gte=0"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	GroupID      *string `json:"groupID" binding:"omitempty,min=1"`
	Code         *string `json:"code" binding:"omitempty,max=50"`
	Name         *string `json:"name" binding:"omitempty,min=1,max=150"`
	LegacyName   *string `json:"legacyName" binding:"omitempty,max=150"`
	DisplayOrder *int    `json:"displayOrder" binding:"omitempty,gte=0"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	GroupID string `form:"groupID"`
	Kind    string `form:"kind" binding:"omitempty,oneof=REVENUE DEDUCTION COST EXPENSE"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID     string    `json:"accountID"`
	WorkplaceID   string    `json:"workplaceID"`
	GroupID       string    `json:"groupID"`
	Code          string    `json:"code,omitempty"`
	Name          string    `json:"name"`
	LegacyName    string    `json:"legacyName,omitempty"`
	DisplayOrder  int       `json:"displayOrder"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		WorkplaceID:   acc.WorkplaceID,
		GroupID:       acc.GroupID,
		Code:          acc.Code,
		Name:          acc.Name,
		LegacyName:    acc.LegacyName,
		DisplayOrder:  acc.DisplayOrder,
		IsActive:      acc.IsActive,
		CreatedAt:     acc.CreatedAt,
		CreatedBy:     acc.CreatedBy,
		LastUpdatedAt: acc.LastUpdatedAt,
		LastUpdatedBy: acc.LastUpdatedBy,
	}
}

// ToListAccountsResponse converts a slice of domain.Account to ListAccountsResponse
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	res := ListAccountsResponse{Accounts: make([]AccountResponse, len(accounts))}
	for i := range accounts {
		res.Accounts[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
