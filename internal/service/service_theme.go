package service

import (
	"context"
	"fmt"

	"github.com/ashabalin/themeboard/internal/logger"
	"github.com/ashabalin/themeboard/internal/store"
	"github.com/ashabalin/themeboard/models"
)

// themeService is the concrete implementation of ThemeService.
type themeService struct {
	themeRepository store.ThemeRepository

	logger *logger.Logger
}

// NewThemeService constructs a ThemeService.
func NewThemeService(themeRepository store.ThemeRepository, logger *logger.Logger) ThemeService {
	return &themeService{
		themeRepository: themeRepository,
		logger:          logger,
	}
}

func (t *themeService) GetAllThemes(ctx context.Context) ([]models.Theme, error) {
	themes, err := t.themeRepository.GetAllThemes(ctx)
	if err != nil {
		return nil, fmt.Errorf("themes lookup failed: %w", err)
	}

	return themes, nil
}
