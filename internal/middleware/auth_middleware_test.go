package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AnhTuano/CNTTK23M/internal/app/models"
	"github.com/AnhTuano/CNTTK23M/internal/app/repositories"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/auth"
)

func newAuthTestRouter(t *testing.T) (*gin.Engine, *repositories.UserRepository, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repositories.NewStore()
	userRepo := repositories.NewUserRepository(store)
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})

	router := gin.New()
	m := NewAuthMiddleware(jwtService, userRepo)
	authed := router.Group("/api/v1", m.JWTAuth())
	authed.PUT("/auth/password", func(c *gin.Context) { c.Status(http.StatusOK) })
	authed.GET("/posts", func(c *gin.Context) { c.Status(http.StatusOK) })

	return router, userRepo, jwtService
}

func doRequest(router *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuthRejectsMissingAndBadTokens(t *testing.T) {
	router, _, _ := newAuthTestRouter(t)

	if rec := doRequest(router, http.MethodGet, "/api/v1/posts", ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if rec := doRequest(router, http.MethodGet, "/api/v1/posts", "not-a-jwt"); rec.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestJWTAuthBlocksLockedAccounts(t *testing.T) {
	router, userRepo, jwtService := newAuthTestRouter(t)

	user := &models.User{
		Name:    "Hoàng Văn Em",
		Role:    models.RoleThanhVien,
		Contact: models.Contact{Email: "em@example.com"},
		Locked:  true,
	}
	userRepo.Create(user)
	token, _, _, err := jwtService.GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}

	if rec := doRequest(router, http.MethodGet, "/api/v1/posts", token); rec.Code != http.StatusForbidden {
		t.Errorf("locked account: status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestJWTAuthForcedPasswordChange(t *testing.T) {
	router, userRepo, jwtService := newAuthTestRouter(t)

	user := &models.User{
		Name:               "Vũ Thị Giang",
		Role:               models.RoleThanhVien,
		Contact:            models.Contact{Email: "giang@example.com"},
		MustChangePassword: true,
	}
	userRepo.Create(user)
	token, _, _, err := jwtService.GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}

	// Everything except the password change endpoint is shut off
	if rec := doRequest(router, http.MethodGet, "/api/v1/posts", token); rec.Code != http.StatusForbidden {
		t.Errorf("gated endpoint: status = %d, want %d", rec.Code, http.StatusForbidden)
	}
	if rec := doRequest(router, http.MethodPut, "/api/v1/auth/password", token); rec.Code != http.StatusOK {
		t.Errorf("password change: status = %d, want %d", rec.Code, http.StatusOK)
	}

	// Once the flag clears the member is back to normal
	user.MustChangePassword = false
	if err := userRepo.Update(user); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if rec := doRequest(router, http.MethodGet, "/api/v1/posts", token); rec.Code != http.StatusOK {
		t.Errorf("after change: status = %d, want %d", rec.Code, http.StatusOK)
	}
}
