package usecase

import (
	"context"
	"log"
	"oficina_insufilm/internal/domain/entities"
	"oficina_insufilm/internal/usecase/interfaces"
	"strings"
)

// ISettingsUseCase reads and writes the shop settings document.

type ISettingsUseCase interface {
	Get(ctx context.Context) (entities.AppSettings, error)
	Update(ctx context.Context, s entities.AppSettings) (entities.AppSettings, error)
}

type SettingsUseCase struct {
	repo interfaces.ISettingsRepository
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.ISettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get returns the stored settings, or the defaults when nothing was saved.
func (u *SettingsUseCase) Get(ctx context.Context) (entities.AppSettings, error) {
	s, found, err := u.repo.Get(ctx)
	if err != nil {
		return entities.AppSettings{}, err
	}
	if !found {
		return entities.DefaultSettings(), nil
	}
	return s, nil
}

func (u *SettingsUseCase) Update(ctx context.Context, s entities.AppSettings) (entities.AppSettings, error) {
	s.Shop.Name = strings.TrimSpace(s.Shop.Name)
	if s.Shop.Name == "" {
		return entities.AppSettings{}, entities.NewValidationError("shop.name", "must not be empty")
	}
	s.Shop.CNPJ = strings.TrimSpace(s.Shop.CNPJ)
	s.Shop.Address = strings.TrimSpace(s.Shop.Address)

	saved, err := u.repo.Put(ctx, s)
	if err != nil {
		log.Printf("[settings][usecase] update failed err=%v", err)
		return entities.AppSettings{}, err
	}
	log.Printf("[settings][usecase] settings updated shop=%q", saved.Shop.Name)
	return saved, nil
}
