package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AnhTuano/CNTTK23M/internal/app/models"
	"github.com/AnhTuano/CNTTK23M/internal/app/models/dto"
	"github.com/AnhTuano/CNTTK23M/internal/app/repositories"
)

// Maintenance blocks non-admin traffic while maintenance mode is on.
// It runs after JWTAuth, so the role is already in the context.
func Maintenance(configRepo *repositories.ConfigRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !configRepo.Get().IsMaintenanceMode {
			c.Next()
			return
		}
		if CurrentRole(c) == models.RoleAdmin {
			c.Next()
			return
		}
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeMaintenanceMode, "Site is under maintenance").
			WithSeverity(dto.ErrorSeverityWarning)
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, dto.NewErrorResponse(errorDetail))
	}
}
