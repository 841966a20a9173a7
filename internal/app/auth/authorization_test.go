package auth

import (
	"testing"

	"github.com/AnhTuano/CNTTK23M/internal/app/models"
)

func TestRolePermissionMatrix(t *testing.T) {
	tests := []struct {
		role             models.Role
		admin            bool
		bypassModeration bool
		manageDocuments  bool
		manageMemories   bool
		manageContent    bool
	}{
		{models.RoleAdmin, true, true, true, true, true},
		{models.RoleLopTruong, false, true, false, false, true},
		{models.RoleBiThu, false, true, false, false, true},
		{models.RoleLopPhoHocTap, false, false, true, false, false},
		{models.RoleLopPhoDoiSong, false, false, false, true, false},
		{models.RolePhoBiThu, false, false, false, false, false},
		{models.RoleThanhVien, false, false, false, false, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			if got := IsAdmin(tt.role); got != tt.admin {
				t.Errorf("IsAdmin = %v, want %v", got, tt.admin)
			}
			if got := CanBypassModeration(tt.role); got != tt.bypassModeration {
				t.Errorf("CanBypassModeration = %v, want %v", got, tt.bypassModeration)
			}
			if got := CanManageDocuments(tt.role); got != tt.manageDocuments {
				t.Errorf("CanManageDocuments = %v, want %v", got, tt.manageDocuments)
			}
			if got := CanManageMemories(tt.role); got != tt.manageMemories {
				t.Errorf("CanManageMemories = %v, want %v", got, tt.manageMemories)
			}
			if got := CanManageContent(tt.role); got != tt.manageContent {
				t.Errorf("CanManageContent = %v, want %v", got, tt.manageContent)
			}
		})
	}
}

func TestCanPostFollowsConfig(t *testing.T) {
	cfg := &models.WebsiteConfig{AllowedPostRoles: []models.Role{models.RoleLopTruong}}

	if !CanPost(models.RoleLopTruong, cfg) {
		t.Error("listed role should be allowed to post")
	}
	if CanPost(models.RoleThanhVien, cfg) {
		t.Error("unlisted role should not be allowed to post")
	}
	// Admin posts even when absent from the list
	if !CanPost(models.RoleAdmin, cfg) {
		t.Error("admin must always be allowed to post")
	}
}
