package model

import (
	"time"
)

// Movie catalog record (TMDB metadata)
type Movie struct {
	ID          int       `json:"id" db:"id"`
	TMDBID      int       `json:"tmdb_id" db:"tmdb_id" gorm:"column:tmdb_id;unique"`
	Title       string    `json:"title" db:"title"`
	Year        int       `json:"year" db:"year"` // 0 when unknown
	Genre       string    `json:"genre" db:"genre" gorm:"index"`
	Rating      float64   `json:"rating" db:"rating" gorm:"index"`
	Poster      string    `json:"poster" db:"poster"`
	Description string    `json:"description" db:"description"`
	IsTrending  bool      `json:"is_trending" db:"is_trending"`
	ViewCount   int       `json:"view_count" db:"view_count"`
	VideoURL    string    `json:"video_url" db:"video_url"`
	TrailerURL  string    `json:"trailer_url" db:"trailer_url"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at" gorm:"index"`
}

// Series catalog record
type Series struct {
	ID          int       `json:"id" db:"id"`
	TMDBID      int       `json:"tmdb_id" db:"tmdb_id" gorm:"column:tmdb_id;unique"`
	Title       string    `json:"title" db:"title"`
	Year        int       `json:"year" db:"year"`
	Genre       string    `json:"genre" db:"genre" gorm:"index"`
	Rating      float64   `json:"rating" db:"rating" gorm:"index"`
	Poster      string    `json:"poster" db:"poster"`
	Description string    `json:"description" db:"description"`
	Seasons     int       `json:"seasons" db:"seasons"`
	TrailerURL  string    `json:"trailer_url" db:"trailer_url"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
