package repository

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the Postgres connection and configures the pool.
func InitDB(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("access connection pool: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	return db, nil
}

// Repositories bundles all store collaborators.
type Repositories struct {
	DB        *gorm.DB
	User      *UserRepository
	Movie     *MovieRepository
	Series    *SeriesRepository
	WatchTime *WatchTimeRepository
	Chat      *ChatRepository
}

// NewRepositories wires every repository onto one connection.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		DB:        db,
		User:      NewUserRepository(db),
		Movie:     NewMovieRepository(db),
		Series:    NewSeriesRepository(db),
		WatchTime: NewWatchTimeRepository(db),
		Chat:      NewChatRepository(db),
	}
}
