package repository

import (
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/user/cinego/internal/model"
	"gorm.io/gorm"
)

type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// QueryTitles returns titles ranked by rating then view count. An empty
// genre list means no genre filter. The trailing id sort keeps ties
// deterministic across calls.
func (r *MovieRepository) QueryTitles(genres []string, limit int) ([]model.Movie, error) {
	var movies []model.Movie
	q := r.db.Model(&model.Movie{})
	if len(genres) > 0 {
		q = q.Where("genre = ANY(?)", pq.Array(genres))
	}
	err := q.Order("rating DESC").
		Order("view_count DESC").
		Order("id ASC").
		Limit(limit).
		Find(&movies).Error
	return movies, err
}

// FindByID looks up a movie by internal id, nil when absent.
func (r *MovieRepository) FindByID(id int) (*model.Movie, error) {
	var movie model.Movie
	err := r.db.First(&movie, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &movie, nil
}

// FindByTMDBID looks up a movie by its external id, nil when absent.
func (r *MovieRepository) FindByTMDBID(tmdbID int) (*model.Movie, error) {
	var movie model.Movie
	err := r.db.Where("tmdb_id = ?", tmdbID).First(&movie).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &movie, nil
}

// Upsert creates or refreshes a movie keyed by tmdb_id. View counts only
// move forward: the ingest seed never lowers a count already accumulated
// through detail and watch hits.
func (r *MovieRepository) Upsert(movie *model.Movie) error {
	return r.db.Exec(`
		INSERT INTO movies (tmdb_id, title, year, genre, rating, poster, description,
		                    is_trending, view_count, video_url, trailer_url, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (tmdb_id) DO UPDATE SET
			title = EXCLUDED.title,
			year = EXCLUDED.year,
			genre = EXCLUDED.genre,
			rating = EXCLUDED.rating,
			poster = EXCLUDED.poster,
			description = EXCLUDED.description,
			is_trending = EXCLUDED.is_trending,
			view_count = GREATEST(movies.view_count, EXCLUDED.view_count),
			video_url = EXCLUDED.video_url,
			trailer_url = CASE WHEN EXCLUDED.trailer_url <> '' THEN EXCLUDED.trailer_url ELSE movies.trailer_url END,
			updated_at = EXCLUDED.updated_at
	`, movie.TMDBID, movie.Title, movie.Year, movie.Genre, movie.Rating, movie.Poster,
		movie.Description, movie.IsTrending, movie.ViewCount, movie.VideoURL,
		movie.TrailerURL, time.Now()).Error
}

// IncrementView bumps the view counter atomically at the storage layer.
func (r *MovieRepository) IncrementView(id int) error {
	return r.db.Model(&model.Movie{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

// ListTrending returns trending movies by popularity.
func (r *MovieRepository) ListTrending(limit int) ([]model.Movie, error) {
	var movies []model.Movie
	err := r.db.Where("is_trending = ?", true).
		Order("view_count DESC").
		Limit(limit).
		Find(&movies).Error
	return movies, err
}

// ListLatest returns the most recently ingested movies.
func (r *MovieRepository) ListLatest(limit int) ([]model.Movie, error) {
	var movies []model.Movie
	err := r.db.Order("id DESC").Limit(limit).Find(&movies).Error
	return movies, err
}

// ListAll returns the catalog ordered by rating.
func (r *MovieRepository) ListAll() ([]model.Movie, error) {
	var movies []model.Movie
	err := r.db.Order("rating DESC").Order("view_count DESC").Find(&movies).Error
	return movies, err
}

// ListByGenre returns same-genre movies excluding one id, for the
// "more like this" rail on the watch page.
func (r *MovieRepository) ListByGenre(genre string, excludeID, limit int) ([]model.Movie, error) {
	var movies []model.Movie
	err := r.db.Where("genre = ? AND id <> ?", genre, excludeID).
		Order("rating DESC").
		Limit(limit).
		Find(&movies).Error
	return movies, err
}

// Count returns the catalog size.
func (r *MovieRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Movie{}).Count(&count).Error
	return count, err
}
