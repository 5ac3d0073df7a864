package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/user/cinego/internal/model"
	"github.com/user/cinego/internal/utils"
)

// DefaultRecommendLimit caps a recommendation reply.
const DefaultRecommendLimit = 3

// CatalogSource is the read side of the catalog the recommender needs.
type CatalogSource interface {
	QueryTitles(genres []string, limit int) ([]model.Movie, error)
}

// Recommender selects ranked titles for a genre or mood.
type Recommender struct {
	catalog CatalogSource
	cache   *utils.QueryCache[[]model.Movie]
}

// NewRecommender wires the recommender onto a catalog source.
func NewRecommender(catalog CatalogSource) *Recommender {
	return &Recommender{
		catalog: catalog,
		cache:   utils.NewQueryCache[[]model.Movie](256, time.Minute),
	}
}

// Recommend returns up to limit titles ranked by rating then popularity.
// Selection: an explicit genre filters to that genre alone; otherwise a
// known mood filters to its mapped genre set; otherwise the whole catalog
// competes. An empty result is a valid outcome, not an error.
func (r *Recommender) Recommend(genre, mood string, limit int) ([]model.Movie, error) {
	if limit <= 0 {
		limit = DefaultRecommendLimit
	}

	var genres []string
	switch {
	case genre != "":
		genres = []string{genre}
	case mood != "":
		genres = GenresForMood(mood)
	}

	key := fmt.Sprintf("%s|%d", strings.Join(genres, ","), limit)
	if cached, ok := r.cache.Get(key); ok {
		return cached, nil
	}

	movies, err := r.catalog.QueryTitles(genres, limit)
	if err != nil {
		return nil, fmt.Errorf("query titles: %w", err)
	}

	r.cache.Set(key, movies)
	return movies, nil
}
