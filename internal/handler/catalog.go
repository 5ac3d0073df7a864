package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/user/cinego/internal/model"
	"github.com/user/cinego/internal/utils"
)

// homeCacheKey caches the assembled home payload, which is the hottest
// read in the app.
const homeCacheKey = "home:v1"

type homePayload struct {
	Trending []model.Movie  `json:"trending"`
	Latest   []model.Movie  `json:"latest"`
	Movies   []model.Movie  `json:"movies"`
	Series   []model.Series `json:"series"`
}

// Home returns trending, latest and full catalog rails.
func (h *Handler) Home(c *gin.Context) {
	if cached, ok := utils.CacheGet(homeCacheKey); ok {
		utils.Success(c, cached)
		return
	}

	trending, err := h.Repos.Movie.ListTrending(10)
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}
	latest, err := h.Repos.Movie.ListLatest(10)
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}
	movies, err := h.Repos.Movie.ListAll()
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}
	series, err := h.Repos.Series.ListAll()
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}

	payload := homePayload{
		Trending: trending,
		Latest:   latest,
		Movies:   movies,
		Series:   series,
	}
	utils.CacheSet(homeCacheKey, payload, 2*time.Minute)
	utils.Success(c, payload)
}

// Movies lists the movie catalog ordered by rating.
func (h *Handler) Movies(c *gin.Context) {
	movies, err := h.Repos.Movie.ListAll()
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}
	utils.Success(c, movies)
}

// Series lists the series catalog ordered by rating.
func (h *Handler) Series(c *gin.Context) {
	series, err := h.Repos.Series.ListAll()
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}
	utils.Success(c, series)
}

// MovieDetail returns one movie and counts the visit.
func (h *Handler) MovieDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "invalid movie id")
		return
	}

	movie, err := h.Repos.Movie.FindByID(id)
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}
	if movie == nil {
		utils.NotFound(c, "movie not found")
		return
	}

	if err := h.Repos.Movie.IncrementView(id); err != nil {
		utils.InternalServerError(c, "")
		return
	}
	movie.ViewCount++

	// Backfill the trailer lazily on first visit.
	if movie.TrailerURL == "" && h.Config.TMDBToken != "" {
		h.Catalog.SyncTrailerAsync(movie.ID, movie.TMDBID)
	}

	utils.Success(c, movie)
}

// WatchMovie returns the player payload plus a same-genre rail, and
// counts the visit.
func (h *Handler) WatchMovie(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "invalid movie id")
		return
	}

	movie, err := h.Repos.Movie.FindByID(id)
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}
	if movie == nil {
		utils.NotFound(c, "movie not found")
		return
	}

	if err := h.Repos.Movie.IncrementView(id); err != nil {
		utils.InternalServerError(c, "")
		return
	}
	movie.ViewCount++

	recommended, err := h.Repos.Movie.ListByGenre(movie.Genre, movie.ID, 6)
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}

	utils.Success(c, gin.H{
		"movie":       movie,
		"recommended": recommended,
	})
}
