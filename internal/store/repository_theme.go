package store

import (
	"context"
	"fmt"

	"github.com/ashabalin/themeboard/internal/logger"
	"github.com/ashabalin/themeboard/models"
)

// themeRepository is the PostgreSQL-backed implementation of
// [ThemeRepository].
type themeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewThemeRepository constructs a [ThemeRepository] backed by the provided
// database connection and logger.
func NewThemeRepository(db *DB, logger *logger.Logger) ThemeRepository {
	logger.Debug().Msg("creating theme repository")
	return &themeRepository{
		db:     db,
		logger: logger,
	}
}

func (r *themeRepository) GetAllThemes(ctx context.Context) ([]models.Theme, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllThemes)
	if err != nil {
		log.Err(err).Str("func", "*themeRepository.GetAllThemes").Msg("error: themes query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	themes := make([]models.Theme, 0)
	for rows.Next() {
		var theme models.Theme
		if err := rows.Scan(&theme.ID, &theme.Name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		themes = append(themes, theme)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return themes, nil
}
