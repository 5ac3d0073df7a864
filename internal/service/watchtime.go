package service

import (
	"fmt"
	"time"

	"github.com/user/cinego/internal/model"
)

// advisoryWindow is how long a band stays active past its threshold.
// 150 minutes falls between the 120 and 180 bands and yields no advisory;
// that gap is a product decision carried over as-is.
const advisoryWindow = 30

// advisoryBands must be ordered by strictly increasing threshold.
var advisoryBands = []struct {
	threshold int
	message   string
}{
	{120, "You've watched over 2 hours today. Maybe stretch your legs a bit?"},
	{180, "3 hours of watching today. Time for a real break!"},
	{240, "4 hours today! Your eyes deserve some rest."},
	{300, "5 hours of screen time today. Please step away for a while!"},
}

// WatchLedger is the store behind the watch-time monitor.
type WatchLedger interface {
	UpsertAdd(userID, movieID int, date string, minutes int) error
	SumForDay(userID int, date string) (int, error)
}

// TitleChecker verifies a movie id before the ledger accepts minutes.
type TitleChecker interface {
	FindByID(id int) (*model.Movie, error)
}

// WatchTimeMonitor accumulates daily minutes and raises banded advisories.
type WatchTimeMonitor struct {
	ledger WatchLedger
	titles TitleChecker
	now    func() time.Time
}

// NewWatchTimeMonitor wires the monitor onto its stores. The clock is
// injectable for tests.
func NewWatchTimeMonitor(ledger WatchLedger, titles TitleChecker) *WatchTimeMonitor {
	return &WatchTimeMonitor{
		ledger: ledger,
		titles: titles,
		now:    time.Now,
	}
}

// RecordWatch adds minutes to today's (user, movie) ledger entry.
func (m *WatchTimeMonitor) RecordWatch(userID, movieID, minutes int) error {
	if minutes < 0 {
		return ErrInvalidMinutes
	}

	movie, err := m.titles.FindByID(movieID)
	if err != nil {
		return fmt.Errorf("look up movie %d: %w", movieID, err)
	}
	if movie == nil {
		return ErrNotFound
	}

	date := m.now().Format(model.WatchDateLayout)
	if err := m.ledger.UpsertAdd(userID, movieID, date, minutes); err != nil {
		return fmt.Errorf("record watch time: %w", err)
	}
	return nil
}

// TodayTotal sums the user's minutes across all titles for today.
func (m *WatchTimeMonitor) TodayTotal(userID int) (int, error) {
	date := m.now().Format(model.WatchDateLayout)
	total, err := m.ledger.SumForDay(userID, date)
	if err != nil {
		return 0, fmt.Errorf("sum watch time: %w", err)
	}
	return total, nil
}

// AdvisoryFor bands a cumulative total into an advisory message. A band
// fires only while threshold <= minutes < threshold+30; outside every
// window it returns the empty string.
func AdvisoryFor(totalMinutes int) string {
	for i := len(advisoryBands) - 1; i >= 0; i-- {
		band := advisoryBands[i]
		if totalMinutes >= band.threshold && totalMinutes < band.threshold+advisoryWindow {
			return band.message
		}
	}
	return ""
}
