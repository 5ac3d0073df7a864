package repository

import (
	"time"

	"github.com/user/cinego/internal/model"
	"gorm.io/gorm"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// Append records one side of an exchange. Messages are never updated.
func (r *ChatRepository) Append(userID int, message string, isBot bool, at time.Time) error {
	msg := &model.ChatMessage{
		UserID:    userID,
		Message:   message,
		IsBot:     isBot,
		CreatedAt: at,
	}
	return r.db.Create(msg).Error
}

// Recent returns the user's last messages in chronological order. The
// query fetches newest-first for the limit, then reverses for display.
func (r *ChatRepository) Recent(userID, limit int) ([]model.ChatMessage, error) {
	var messages []model.ChatMessage
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// CountByUser returns how many messages a user has exchanged.
func (r *ChatRepository) CountByUser(userID int) (int, error) {
	var count int64
	err := r.db.Model(&model.ChatMessage{}).Where("user_id = ?", userID).Count(&count).Error
	return int(count), err
}

// DeleteBefore removes messages older than the cutoff. Used by the
// retention sweeper.
func (r *ChatRepository) DeleteBefore(cutoff time.Time) (int64, error) {
	result := r.db.Where("created_at < ?", cutoff).Delete(&model.ChatMessage{})
	return result.RowsAffected, result.Error
}
