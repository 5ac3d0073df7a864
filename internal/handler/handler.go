package handler

import (
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/user/cinego/internal/config"
	"github.com/user/cinego/internal/middleware"
	"github.com/user/cinego/internal/model"
	"github.com/user/cinego/internal/repository"
	"github.com/user/cinego/internal/service"
	"github.com/user/cinego/internal/utils"
)

// Handler HTTP handlers
type Handler struct {
	Repos   *repository.Repositories
	Config  *config.Config
	Bot     *service.BotService
	Catalog *service.TMDBService
}

// NewHandler wires the service layer behind the HTTP surface.
func NewHandler(repos *repository.Repositories, cfg *config.Config) *Handler {
	recommender := service.NewRecommender(repos.Movie)
	monitor := service.NewWatchTimeMonitor(repos.WatchTime, repos.Movie)
	bot := service.NewBotService(repos.Chat, recommender, monitor)
	catalog := service.NewTMDBService(repos.Movie, repos.Series, cfg)

	return &Handler{
		Repos:   repos,
		Config:  cfg,
		Bot:     bot,
		Catalog: catalog,
	}
}

type registerRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates an account and signs the user in.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "email and a password of at least 6 characters are required")
		return
	}

	if req.Password != req.ConfirmPassword {
		utils.BadRequest(c, "passwords do not match")
		return
	}

	existing, err := h.Repos.User.FindByEmail(req.Email)
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}
	if existing != nil {
		utils.BadRequest(c, "that email is already registered")
		return
	}

	// Default the username to the part before the @.
	username := req.Email
	if parts := strings.Split(req.Email, "@"); len(parts) > 0 {
		username = parts[0]
	}

	user, err := h.Repos.User.Create(req.Email, username, req.Password)
	if err != nil {
		utils.InternalServerError(c, "registration failed")
		return
	}

	if err := h.signIn(c, user); err != nil {
		utils.InternalServerError(c, "sign-in failed")
		return
	}

	utils.Success(c, gin.H{"user": user})
}

// Login authenticates and issues the session and token cookie.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "email and password are required")
		return
	}

	user, err := h.Repos.User.FindByEmail(req.Email)
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}
	if user == nil || !h.Repos.User.CheckPassword(user, req.Password) {
		utils.Unauthorized(c, "invalid email or password")
		return
	}

	if err := h.signIn(c, user); err != nil {
		utils.InternalServerError(c, "sign-in failed")
		return
	}

	utils.Success(c, gin.H{"user": user})
}

// Logout clears the token cookie and the session.
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)

	session := sessions.Default(c)
	session.Clear()
	session.Save()

	utils.SuccessWithMessage(c, "logged out", nil)
}

// signIn sets the JWT cookie and stores the session user.
func (h *Handler) signIn(c *gin.Context, user *model.User) error {
	token, err := middleware.GenerateToken(user.ID, user.Email, user.Role, h.Config.AppSecret, h.Config.JWTExpiry)
	if err != nil {
		return err
	}
	c.SetCookie("token", token, int(h.Config.JWTExpiry.Seconds()), "/", "", false, true)

	session := sessions.Default(c)
	session.Set("userinfo", model.SessionUser{
		ID:       user.ID,
		Email:    user.Email,
		Username: user.Username,
		Role:     user.Role,
	})
	return session.Save()
}

// ==================== account settings ====================

type updateUsernameRequest struct {
	Username string `json:"username" binding:"required,min=2,max=20"`
}

// UpdateUsername changes the display name.
func (h *Handler) UpdateUsername(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req updateUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "username must be 2-20 characters")
		return
	}

	username := strings.TrimSpace(req.Username)
	if err := h.Repos.User.UpdateUsername(userID, username); err != nil {
		utils.InternalServerError(c, "username update failed")
		return
	}

	h.refreshSessionUser(c, func(su *model.SessionUser) { su.Username = username })
	utils.SuccessWithMessage(c, "username updated", nil)
}

type updateEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// UpdateEmail changes the login email.
func (h *Handler) UpdateEmail(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req updateEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "a valid email address is required")
		return
	}

	existing, err := h.Repos.User.FindByEmail(req.Email)
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}
	if existing != nil && existing.ID != userID {
		utils.BadRequest(c, "that email is already in use")
		return
	}

	if err := h.Repos.User.UpdateEmail(userID, req.Email); err != nil {
		utils.InternalServerError(c, "email update failed")
		return
	}

	h.refreshSessionUser(c, func(su *model.SessionUser) { su.Email = req.Email })
	utils.SuccessWithMessage(c, "email updated", nil)
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// UpdatePassword verifies the current password and replaces it.
func (h *Handler) UpdatePassword(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req updatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "current password and a new password of at least 6 characters are required")
		return
	}

	if req.NewPassword != req.ConfirmPassword {
		utils.BadRequest(c, "new passwords do not match")
		return
	}

	user, err := h.Repos.User.FindByID(userID)
	if err != nil || user == nil {
		utils.Unauthorized(c, "")
		return
	}

	if !h.Repos.User.CheckPassword(user, req.CurrentPassword) {
		utils.BadRequest(c, "current password is incorrect")
		return
	}

	if err := h.Repos.User.UpdatePassword(userID, req.NewPassword); err != nil {
		utils.InternalServerError(c, "password update failed")
		return
	}

	utils.SuccessWithMessage(c, "password updated", nil)
}

// refreshSessionUser patches the session copy of the user after settings
// changes.
func (h *Handler) refreshSessionUser(c *gin.Context, patch func(*model.SessionUser)) {
	session := sessions.Default(c)
	if userinfo := session.Get("userinfo"); userinfo != nil {
		if su, ok := userinfo.(model.SessionUser); ok {
			patch(&su)
			session.Set("userinfo", su)
			session.Save()
		}
	}
}

// Profile returns the authenticated user's record.
func (h *Handler) Profile(c *gin.Context) {
	userID := middleware.GetUserID(c)

	user, err := h.Repos.User.FindByID(userID)
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}
	if user == nil {
		utils.NotFound(c, "user not found")
		return
	}

	chatCount, _ := h.Repos.Chat.CountByUser(userID)
	today := time.Now().Format(model.WatchDateLayout)
	todayMinutes, _ := h.Repos.WatchTime.SumForDay(userID, today)

	utils.Success(c, gin.H{
		"user":          user,
		"chat_count":    chatCount,
		"today_minutes": todayMinutes,
	})
}
