package repositories

import (
	"github.com/AnhTuano/CNTTK23M/internal/app/models"
)

// ConfigRepository handles store operations for the site configuration
type ConfigRepository struct {
	store *Store
}

// NewConfigRepository creates a new ConfigRepository
func NewConfigRepository(store *Store) *ConfigRepository {
	return &ConfigRepository{store: store}
}

// Get returns the current site configuration
func (r *ConfigRepository) Get() models.WebsiteConfig {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return *r.store.config.Clone()
}

// Set replaces the site configuration
func (r *ConfigRepository) Set(cfg models.WebsiteConfig) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.config = *cfg.Clone()
}
