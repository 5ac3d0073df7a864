package repository

import (
	"time"

	"github.com/user/cinego/internal/model"
	"gorm.io/gorm"
)

type SeriesRepository struct {
	db *gorm.DB
}

func NewSeriesRepository(db *gorm.DB) *SeriesRepository {
	return &SeriesRepository{db: db}
}

// Upsert creates or refreshes a series keyed by tmdb_id.
func (r *SeriesRepository) Upsert(series *model.Series) error {
	return r.db.Exec(`
		INSERT INTO series (tmdb_id, title, year, genre, rating, poster, description, seasons, trailer_url, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (tmdb_id) DO UPDATE SET
			title = EXCLUDED.title,
			year = EXCLUDED.year,
			genre = EXCLUDED.genre,
			rating = EXCLUDED.rating,
			poster = EXCLUDED.poster,
			description = EXCLUDED.description,
			seasons = EXCLUDED.seasons,
			trailer_url = CASE WHEN EXCLUDED.trailer_url <> '' THEN EXCLUDED.trailer_url ELSE series.trailer_url END,
			updated_at = EXCLUDED.updated_at
	`, series.TMDBID, series.Title, series.Year, series.Genre, series.Rating,
		series.Poster, series.Description, series.Seasons, series.TrailerURL, time.Now()).Error
}

// ListAll returns every series ordered by rating.
func (r *SeriesRepository) ListAll() ([]model.Series, error) {
	var series []model.Series
	err := r.db.Order("rating DESC").Find(&series).Error
	return series, err
}

// Count returns the series catalog size.
func (r *SeriesRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Series{}).Count(&count).Error
	return count, err
}
