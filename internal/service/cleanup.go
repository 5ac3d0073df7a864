package service

import (
	"log"
	"time"

	"github.com/user/cinego/internal/model"
	"github.com/user/cinego/internal/repository"
)

// CleanupService prunes aged chat history and watch-time ledger rows.
type CleanupService struct {
	repos         *repository.Repositories
	retentionDays int
}

// NewCleanupService builds the sweeper with a retention horizon in days.
func NewCleanupService(repos *repository.Repositories, retentionDays int) *CleanupService {
	return &CleanupService{repos: repos, retentionDays: retentionDays}
}

// Start runs one sweep immediately and then once per day.
func (s *CleanupService) Start() {
	ticker := time.NewTicker(24 * time.Hour)

	go s.runCleanup()

	go func() {
		for range ticker.C {
			s.runCleanup()
		}
	}()
}

func (s *CleanupService) runCleanup() {
	log.Println("[CleanupService] pruning expired data...")

	cutoff := time.Now().AddDate(0, 0, -s.retentionDays)

	affected, err := s.repos.Chat.DeleteBefore(cutoff)
	if err != nil {
		log.Printf("[CleanupService] chat history prune failed: %v", err)
	} else if affected > 0 {
		log.Printf("[CleanupService] pruned %d chat messages older than %d days", affected, s.retentionDays)
	}

	cutoffDate := cutoff.Format(model.WatchDateLayout)
	affected, err = s.repos.WatchTime.DeleteBefore(cutoffDate)
	if err != nil {
		log.Printf("[CleanupService] watch-time prune failed: %v", err)
	} else if affected > 0 {
		log.Printf("[CleanupService] pruned %d watch-time entries older than %d days", affected, s.retentionDays)
	}
}
