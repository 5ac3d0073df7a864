package model

import (
	"time"
)

// User account record
type User struct {
	ID           int       `json:"id" db:"id"`
	Email        string    `json:"email" db:"email" gorm:"unique"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// SessionUser is the subset of User stored in the cookie session.
type SessionUser struct {
	ID       int
	Email    string
	Username string
	Role     string
}

// ChatMessage is one side of a CineBot exchange. Append-only.
type ChatMessage struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"user_id" db:"user_id" gorm:"index"`
	Message   string    `json:"message" db:"message"`
	IsBot     bool      `json:"is_bot" db:"is_bot"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"index"`
}

// WatchTimeEntry accumulates minutes watched per user, movie and day.
// At most one row exists per (user_id, movie_id, date); minutes are
// always added, never overwritten.
type WatchTimeEntry struct {
	ID             int    `json:"id" db:"id"`
	UserID         int    `json:"user_id" db:"user_id" gorm:"uniqueIndex:idx_watch_time_day"`
	MovieID        int    `json:"movie_id" db:"movie_id" gorm:"uniqueIndex:idx_watch_time_day"`
	Date           string `json:"date" db:"date" gorm:"uniqueIndex:idx_watch_time_day"` // YYYY-MM-DD
	MinutesWatched int    `json:"minutes_watched" db:"minutes_watched"`
}

// WatchDateLayout is the ledger's day key format.
const WatchDateLayout = "2006-01-02"
