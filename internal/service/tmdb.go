package service

import (
	"fmt"
	"log"
	"time"

	"github.com/user/cinego/internal/config"
	"github.com/user/cinego/internal/model"
	"github.com/user/cinego/internal/repository"
	"github.com/user/cinego/internal/utils"
	"golang.org/x/sync/singleflight"
)

const (
	tmdbBaseURL  = "https://api.themoviedb.org/3"
	tmdbImageURL = "https://image.tmdb.org/t/p/w500"
)

// tmdbGenreNames maps common TMDB genre ids to catalog labels. Unknown
// ids fall back to Drama.
var tmdbGenreNames = map[int]string{
	28: "Action", 12: "Adventure", 16: "Animation", 35: "Comedy",
	80: "Crime", 99: "Documentary", 18: "Drama", 10751: "Family",
	14: "Fantasy", 36: "History", 27: "Horror", 10402: "Music",
	9648: "Mystery", 10749: "Romance", 878: "Sci-Fi", 10770: "TV Movie",
	53: "Thriller", 10752: "War", 37: "Western",
}

// TMDBService imports catalog metadata from the TMDB API.
type TMDBService struct {
	movieRepo  *repository.MovieRepository
	seriesRepo *repository.SeriesRepository
	config     *config.Config
	client     *utils.HTTPClient
	group      singleflight.Group
}

// NewTMDBService wires the import client onto the catalog repositories.
func NewTMDBService(movieRepo *repository.MovieRepository, seriesRepo *repository.SeriesRepository, cfg *config.Config) *TMDBService {
	return &TMDBService{
		movieRepo:  movieRepo,
		seriesRepo: seriesRepo,
		config:     cfg,
		client: utils.NewHTTPClient(30*time.Second, map[string]string{
			"Authorization": "Bearer " + cfg.TMDBToken,
		}),
	}
}

type tmdbMovie struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Name         string  `json:"name"` // series
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"` // series
	GenreIDs     []int   `json:"genre_ids"`
	VoteAverage  float64 `json:"vote_average"`
	Popularity   float64 `json:"popularity"`
	PosterPath   string  `json:"poster_path"`
	Overview     string  `json:"overview"`
}

type tmdbListResponse struct {
	Results []tmdbMovie `json:"results"`
}

type tmdbVideosResponse struct {
	Results []struct {
		Site string `json:"site"`
		Type string `json:"type"`
		Key  string `json:"key"`
	} `json:"results"`
}

// SyncCatalog imports trending, top-rated, now-playing and upcoming
// movies plus popular series. Concurrent triggers collapse into one
// fetch via singleflight.
func (s *TMDBService) SyncCatalog(limit int) error {
	_, err, _ := s.group.Do("sync-catalog", func() (interface{}, error) {
		return nil, s.syncCatalogInternal(limit)
	})
	return err
}

func (s *TMDBService) syncCatalogInternal(limit int) error {
	movieLists := []struct {
		name string
		url  string
	}{
		{"trending", fmt.Sprintf("%s/trending/movie/week?page=1", tmdbBaseURL)},
		{"top rated", fmt.Sprintf("%s/movie/top_rated?page=1", tmdbBaseURL)},
		{"now playing", fmt.Sprintf("%s/movie/now_playing?page=1", tmdbBaseURL)},
		{"upcoming", fmt.Sprintf("%s/movie/upcoming?page=1", tmdbBaseURL)},
	}

	for _, list := range movieLists {
		var resp tmdbListResponse
		if err := s.client.GetJSON(list.url, &resp); err != nil {
			return fmt.Errorf("fetch %s movies: %w", list.name, err)
		}

		count := 0
		for _, item := range resp.Results {
			if count >= limit {
				break
			}
			// Skip poster-less entries, they render poorly.
			if item.PosterPath == "" {
				continue
			}
			movie := s.toMovie(item)
			if err := s.movieRepo.Upsert(movie); err != nil {
				return fmt.Errorf("upsert movie %d: %w", item.ID, err)
			}
			count++
		}
		log.Printf("[TMDB] imported %d %s movies", count, list.name)
	}

	var seriesResp tmdbListResponse
	seriesURL := fmt.Sprintf("%s/tv/popular?page=1", tmdbBaseURL)
	if err := s.client.GetJSON(seriesURL, &seriesResp); err != nil {
		return fmt.Errorf("fetch popular series: %w", err)
	}
	count := 0
	for _, item := range seriesResp.Results {
		if count >= limit {
			break
		}
		if item.PosterPath == "" {
			continue
		}
		if err := s.seriesRepo.Upsert(s.toSeries(item)); err != nil {
			return fmt.Errorf("upsert series %d: %w", item.ID, err)
		}
		count++
	}
	log.Printf("[TMDB] imported %d popular series", count)

	return nil
}

// FetchTrailer returns the best available YouTube embed for a movie,
// preferring Trailer over Teaser over any other clip. Empty string when
// nothing is available.
func (s *TMDBService) FetchTrailer(tmdbID int) (string, error) {
	url := fmt.Sprintf("%s/movie/%d/videos", tmdbBaseURL, tmdbID)
	var resp tmdbVideosResponse
	if err := s.client.GetJSON(url, &resp); err != nil {
		return "", fmt.Errorf("fetch videos for %d: %w", tmdbID, err)
	}

	for _, wanted := range []string{"Trailer", "Teaser"} {
		for _, v := range resp.Results {
			if v.Site == "YouTube" && v.Type == wanted {
				return "https://www.youtube.com/embed/" + v.Key, nil
			}
		}
	}
	for _, v := range resp.Results {
		if v.Site == "YouTube" {
			return "https://www.youtube.com/embed/" + v.Key, nil
		}
	}
	return "", nil
}

// SyncTrailerAsync fills in a movie's trailer in the background.
func (s *TMDBService) SyncTrailerAsync(movieID, tmdbID int) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[TMDB] trailer fetch panicked (tmdb_id %d): %v", tmdbID, r)
			}
		}()

		trailer, err := s.FetchTrailer(tmdbID)
		if err != nil || trailer == "" {
			if err != nil {
				log.Printf("[TMDB] trailer fetch failed (tmdb_id %d): %v", tmdbID, err)
			}
			return
		}

		movie, err := s.movieRepo.FindByID(movieID)
		if err != nil || movie == nil {
			return
		}
		movie.TrailerURL = trailer
		if err := s.movieRepo.Upsert(movie); err != nil {
			log.Printf("[TMDB] trailer save failed (tmdb_id %d): %v", tmdbID, err)
		}
	}()
}

func (s *TMDBService) toMovie(item tmdbMovie) *model.Movie {
	return &model.Movie{
		TMDBID:      item.ID,
		Title:       item.Title,
		Year:        yearOf(item.ReleaseDate),
		Genre:       primaryGenre(item.GenreIDs),
		Rating:      item.VoteAverage,
		Poster:      posterURL(item.PosterPath),
		Description: item.Overview,
		IsTrending:  item.Popularity > s.config.TrendingThreshold,
		ViewCount:   int(item.Popularity * 10),
	}
}

func (s *TMDBService) toSeries(item tmdbMovie) *model.Series {
	return &model.Series{
		TMDBID:      item.ID,
		Title:       item.Name,
		Year:        yearOf(item.FirstAirDate),
		Genre:       primaryGenre(item.GenreIDs),
		Rating:      item.VoteAverage,
		Poster:      posterURL(item.PosterPath),
		Description: item.Overview,
		// Season counts need a per-series detail fetch; default to 1.
		Seasons: 1,
	}
}

func primaryGenre(genreIDs []int) string {
	if len(genreIDs) == 0 {
		return "Drama"
	}
	if name, ok := tmdbGenreNames[genreIDs[0]]; ok {
		return name
	}
	return "Drama"
}

func yearOf(date string) int {
	if len(date) < 4 {
		return 0
	}
	var year int
	if _, err := fmt.Sscanf(date[:4], "%d", &year); err != nil {
		return 0
	}
	return year
}

func posterURL(path string) string {
	if path == "" {
		return ""
	}
	return tmdbImageURL + path
}
