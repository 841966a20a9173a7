package models

// BannerType is the severity of the global announcement banner
type BannerType string

const (
	BannerInfo     BannerType = "info"
	BannerWarning  BannerType = "warning"
	BannerCritical BannerType = "critical"
)

// IsValid reports whether t is a known banner type
func (t BannerType) IsValid() bool {
	switch t {
	case BannerInfo, BannerWarning, BannerCritical:
		return true
	}
	return false
}

// BannerConfig is a dismissible global announcement
type BannerConfig struct {
	Text     string     `json:"text"`
	Type     BannerType `json:"type"`
	IsActive bool       `json:"isActive"`
}

// WebsiteConfig is the singleton site configuration. Admin is always an
// implicit member of AllowedPostRoles and cannot be removed from it.
type WebsiteConfig struct {
	ClassName         string       `json:"className"`
	Slogan            string       `json:"slogan"`
	CoverImage        string       `json:"coverImage"`
	WebsiteName       string       `json:"websiteName"`
	WebsiteTitle      string       `json:"websiteTitle"`
	IsMaintenanceMode bool         `json:"isMaintenanceMode"`
	AllowedPostRoles  []Role       `json:"allowedPostRoles"`
	Banner            BannerConfig `json:"banner"`
}

// CanRolePost reports whether the role may create posts
func (c *WebsiteConfig) CanRolePost(r Role) bool {
	if r == RoleAdmin {
		return true
	}
	for _, allowed := range c.AllowedPostRoles {
		if r == allowed {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the config
func (c *WebsiteConfig) Clone() *WebsiteConfig {
	if c == nil {
		return nil
	}
	cp := *c
	cp.AllowedPostRoles = append([]Role(nil), c.AllowedPostRoles...)
	return &cp
}
