package dto

import (
	"github.com/SscSPs/dre_backoffice/internal/core/domain"
)

// UpdateGroupRequest defines the data allowed for updating a seeded DRE group.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateGroupRequest struct {
	Name         *string           `json:"name" binding:"omitempty,min=1,max=100"`
	Kind         *domain.GroupKind `json:"kind" binding:"omitempty,oneof=REVENUE DEDUCTION COST EXPENSE"`
	DisplayOrder *int              `json:"displayOrder" binding:"omitempty,gte=0"`
	IsActive     *bool             `json:"isActive"`
}

// GroupResponse defines the data returned for a group.
type GroupResponse struct {
	GroupID      string           `json:"groupID"`
	Code         string           `json:"code"`
	Name         string           `json:"name"`
	Kind         domain.GroupKind `json:"kind"`
	DisplayOrder int              `json:"displayOrder"`
	IsActive     bool             `json:"isActive"`
}

// ListGroupsResponse wraps the list of groups.
type ListGroupsResponse struct {
	Groups []GroupResponse `json:"groups"`
}

// ToGroupResponse converts a domain.Group to GroupResponse DTO
func ToGroupResponse(g *domain.Group) GroupResponse {
	return GroupResponse{
		GroupID:      g.GroupID,
		Code:         g.Code,
		Name:         g.Name,
		Kind:         g.Kind,
		DisplayOrder: g.DisplayOrder,
		IsActive:     g.IsActive,
	}
}

// ToListGroupsResponse converts a slice of domain.Group to ListGroupsResponse
func ToListGroupsResponse(groups []domain.Group) ListGroupsResponse {
	res := ListGroupsResponse{Groups: make([]GroupResponse, len(groups))}
	for i := range groups {
		res.Groups[i] = ToGroupResponse(&groups[i])
	}
	return res
}
