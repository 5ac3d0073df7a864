package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/user/cinego/internal/utils"
)

// AdminStats returns catalog and user counts.
func (h *Handler) AdminStats(c *gin.Context) {
	movieCount, _ := h.Repos.Movie.Count()
	seriesCount, _ := h.Repos.Series.Count()
	userCount, _ := h.Repos.User.Count()

	utils.Success(c, gin.H{
		"movies": movieCount,
		"series": seriesCount,
		"users":  userCount,
	})
}

// AdminUsers lists all user accounts.
func (h *Handler) AdminUsers(c *gin.Context) {
	users, err := h.Repos.User.ListAll()
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}
	utils.Success(c, users)
}

// AdminSyncCatalog pulls fresh titles from TMDB. Catalog lists change
// after a sync, so the home cache is dropped.
func (h *Handler) AdminSyncCatalog(c *gin.Context) {
	if h.Config.TMDBToken == "" {
		utils.BadRequest(c, "TMDB_TOKEN is not configured")
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 || limit > 100 {
		limit = 20
	}

	if err := h.Catalog.SyncCatalog(limit); err != nil {
		utils.InternalServerError(c, "catalog sync failed")
		return
	}

	utils.CacheDelete(homeCacheKey)
	utils.SuccessWithMessage(c, "catalog synced", nil)
}
