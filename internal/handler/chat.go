package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/user/cinego/internal/middleware"
	"github.com/user/cinego/internal/service"
	"github.com/user/cinego/internal/utils"
)

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Chat runs one CineBot turn for the authenticated user.
func (h *Handler) Chat(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "message is required")
		return
	}

	reply, err := h.Bot.HandleChatTurn(userID, req.Message)
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			utils.BadRequest(c, "message is empty")
			return
		}
		utils.InternalServerError(c, "")
		return
	}

	utils.Success(c, reply)
}

// ChatHistory returns the user's recent exchanges, oldest first.
func (h *Handler) ChatHistory(c *gin.Context) {
	userID := middleware.GetUserID(c)

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 || limit > 200 {
		limit = 50
	}

	messages, err := h.Bot.History(userID, limit)
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}

	utils.Success(c, messages)
}

type watchTimeRequest struct {
	MovieID int `json:"movie_id" binding:"required"`
	Minutes int `json:"minutes" binding:"min=0"`
}

// RecordWatchTime adds minutes to today's ledger and reports the total
// with any advisory.
func (h *Handler) RecordWatchTime(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req watchTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "movie_id and non-negative minutes are required")
		return
	}

	result, err := h.Bot.RecordWatchTime(userID, req.MovieID, req.Minutes)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			utils.NotFound(c, "movie not found")
		case errors.Is(err, service.ErrInvalidMinutes):
			utils.BadRequest(c, "minutes must not be negative")
		default:
			utils.InternalServerError(c, "")
		}
		return
	}

	utils.Success(c, result)
}
