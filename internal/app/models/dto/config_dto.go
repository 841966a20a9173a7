package dto

import "github.com/AnhTuano/CNTTK23M/internal/app/models"

// UpdateConfigRequest represents a site configuration update
type UpdateConfigRequest struct {
	ClassName         string              `json:"className" binding:"required"`
	Slogan            string              `json:"slogan"`
	CoverImage        string              `json:"coverImage"`
	WebsiteName       string              `json:"websiteName" binding:"required"`
	WebsiteTitle      string              `json:"websiteTitle"`
	IsMaintenanceMode bool                `json:"isMaintenanceMode"`
	AllowedPostRoles  []models.Role       `json:"allowedPostRoles"`
	Banner            models.BannerConfig `json:"banner"`
}
