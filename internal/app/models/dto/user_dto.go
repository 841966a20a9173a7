package dto

import "github.com/AnhTuano/CNTTK23M/internal/app/models"

// ContactInfo represents a user's contact details
type ContactInfo struct {
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// SocialLinks represents a user's social profile links
type SocialLinks struct {
	Facebook string `json:"facebook,omitempty"`
	Github   string `json:"github,omitempty"`
}

// UserResponse represents a class member profile. The posts,
// documents and comments counters are derived from the member's
// authored content at read time.
type UserResponse struct {
	ID                 int64          `json:"id"`
	Name               string         `json:"name"`
	Avatar             string         `json:"avatar,omitempty"`
	CoverImage         string         `json:"coverImage,omitempty"`
	Role               models.Role    `json:"role"`
	Bio                string         `json:"bio,omitempty"`
	Major              string         `json:"major,omitempty"`
	JoinDate           string         `json:"joinDate,omitempty"`
	Birthday           string         `json:"birthday,omitempty"`
	Contact            ContactInfo    `json:"contact"`
	Socials            SocialLinks    `json:"socials"`
	Stats              UserStats      `json:"stats"`
	Badges             []models.Badge `json:"badges"`
	Locked             bool           `json:"locked"`
	MustChangePassword bool           `json:"mustChangePassword"`
}

// UserStats represents a member's contribution counters
type UserStats struct {
	Posts     int `json:"posts"`
	Documents int `json:"documents"`
	Comments  int `json:"comments"`
	Points    int `json:"points"`
}

// UpdateProfileRequest represents a self-service profile update
type UpdateProfileRequest struct {
	Name       string      `json:"name" binding:"required"`
	Avatar     string      `json:"avatar"`
	CoverImage string      `json:"coverImage"`
	Bio        string      `json:"bio"`
	Major      string      `json:"major"`
	Birthday   string      `json:"birthday"`
	Contact    ContactInfo `json:"contact"`
	Socials    SocialLinks `json:"socials"`
}

// CreateUserRequest represents an administrative account creation
type CreateUserRequest struct {
	Name     string      `json:"name" binding:"required"`
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=8"`
	Role     models.Role `json:"role" binding:"required"`
}

// UpdateRoleRequest represents an administrative role change
type UpdateRoleRequest struct {
	Role models.Role `json:"role" binding:"required"`
}

// SetLockedRequest represents an account lock or unlock
type SetLockedRequest struct {
	Locked bool `json:"locked"`
}
