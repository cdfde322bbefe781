package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashabalin/themeboard/internal/logger"
	"github.com/ashabalin/themeboard/models"
)

type mockThemeRepository struct {
	getAllThemesFn func(ctx context.Context) ([]models.Theme, error)
}

func (m *mockThemeRepository) GetAllThemes(ctx context.Context) ([]models.Theme, error) {
	return m.getAllThemesFn(ctx)
}

// TestGetAllThemes_Success verifies that the catalogue is returned as stored.
func TestGetAllThemes_Success(t *testing.T) {
	repo := &mockThemeRepository{
		getAllThemesFn: func(ctx context.Context) ([]models.Theme, error) {
			return []models.Theme{
				{ID: 1, Name: "General"},
				{ID: 2, Name: "Technology"},
			}, nil
		},
	}
	svc := NewThemeService(repo, logger.Nop())

	themes, err := svc.GetAllThemes(context.Background())
	require.NoError(t, err)
	require.Len(t, themes, 2)
	assert.Equal(t, "General", themes[0].Name)
}

// TestGetAllThemes_StorageFailure verifies that repository errors are wrapped
// and surfaced.
func TestGetAllThemes_StorageFailure(t *testing.T) {
	repo := &mockThemeRepository{
		getAllThemesFn: func(ctx context.Context) ([]models.Theme, error) {
			return nil, assert.AnError
		},
	}
	svc := NewThemeService(repo, logger.Nop())

	themes, err := svc.GetAllThemes(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, themes)
}
