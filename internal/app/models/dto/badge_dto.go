package dto

// CreateBadgeRequest represents a new catalog badge
type CreateBadgeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon" binding:"required"`
	Color       string `json:"color" binding:"required"`
}

// UpdateBadgeRequest represents an edit to a catalog badge
type UpdateBadgeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon" binding:"required"`
	Color       string `json:"color" binding:"required"`
}
