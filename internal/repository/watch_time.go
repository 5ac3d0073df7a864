package repository

import (
	"github.com/user/cinego/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WatchTimeRepository struct {
	db *gorm.DB
}

func NewWatchTimeRepository(db *gorm.DB) *WatchTimeRepository {
	return &WatchTimeRepository{db: db}
}

// UpsertAdd finds or creates the (user, movie, day) ledger row and adds
// minutes to its accumulator. The conflict clause makes the add atomic,
// so racing requests from the same user cannot lose increments.
func (r *WatchTimeRepository) UpsertAdd(userID, movieID int, date string, minutes int) error {
	entry := &model.WatchTimeEntry{
		UserID:         userID,
		MovieID:        movieID,
		Date:           date,
		MinutesWatched: minutes,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "movie_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"minutes_watched": gorm.Expr("watch_time_entries.minutes_watched + EXCLUDED.minutes_watched"),
		}),
	}).Create(entry).Error
}

// SumForDay totals a user's minutes across all titles for one day.
func (r *WatchTimeRepository) SumForDay(userID int, date string) (int, error) {
	var total int
	err := r.db.Model(&model.WatchTimeEntry{}).
		Select("COALESCE(SUM(minutes_watched), 0)").
		Where("user_id = ? AND date = ?", userID, date).
		Scan(&total).Error
	return total, err
}

// ListForDay returns a user's per-title ledger rows for one day.
func (r *WatchTimeRepository) ListForDay(userID int, date string) ([]model.WatchTimeEntry, error) {
	var entries []model.WatchTimeEntry
	err := r.db.Where("user_id = ? AND date = ?", userID, date).
		Order("movie_id ASC").
		Find(&entries).Error
	return entries, err
}

// DeleteBefore removes ledger rows older than the given day. Used by the
// retention sweeper.
func (r *WatchTimeRepository) DeleteBefore(date string) (int64, error) {
	result := r.db.Where("date < ?", date).Delete(&model.WatchTimeEntry{})
	return result.RowsAffected, result.Error
}
