package service

import (
	"context"

	"github.com/alexanderramin/semainier/internal/domain"
	"github.com/alexanderramin/semainier/internal/repository"
)

type settingsService struct {
	settings repository.SettingsRepo
}

func NewSettingsService(settings repository.SettingsRepo) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) Get(ctx context.Context) (*domain.Settings, error) {
	return s.settings.Get(ctx)
}

func (s *settingsService) Update(ctx context.Context, in domain.SettingsInput) (*domain.Settings, domain.ValidationErrors, error) {
	candidate, verrs := in.Validate()
	if len(verrs) > 0 {
		return nil, verrs, nil
	}
	if err := s.settings.Update(ctx, candidate); err != nil {
		return nil, nil, err
	}
	return candidate, nil, nil
}
