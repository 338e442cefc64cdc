package memory

import (
	"context"
	"oficina_insufilm/internal/domain/entities"
	"oficina_insufilm/internal/usecase/interfaces"
	"sync"
)

type SettingsRepository struct {
	mu       sync.RWMutex
	settings *entities.AppSettings
}

var _ interfaces.ISettingsRepository = (*SettingsRepository)(nil)

func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{}
}

func (r *SettingsRepository) Get(_ context.Context) (entities.AppSettings, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.settings == nil {
		return entities.AppSettings{}, false, nil
	}
	return *r.settings, true, nil
}

func (r *SettingsRepository) Put(_ context.Context, s entities.AppSettings) (entities.AppSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = &s
	return s, nil
}
