package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/user/cinego/internal/model"
)

// fakeCatalog is an in-memory CatalogSource/TitleChecker with the same
// ranking contract as the movie repository.
type fakeCatalog struct {
	movies []model.Movie
	err    error
}

func (f *fakeCatalog) QueryTitles(genres []string, limit int) ([]model.Movie, error) {
	if f.err != nil {
		return nil, f.err
	}

	allowed := make(map[string]bool, len(genres))
	for _, g := range genres {
		allowed[g] = true
	}

	var out []model.Movie
	for _, m := range f.movies {
		if len(genres) == 0 || allowed[m.Genre] {
			out = append(out, m)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].ViewCount > out[j].ViewCount
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeCatalog) FindByID(id int) (*model.Movie, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.movies {
		if f.movies[i].ID == id {
			return &f.movies[i], nil
		}
	}
	return nil, nil
}

// fakeLedger is an in-memory WatchLedger keyed the same way as the
// watch_time_entries table.
type fakeLedger struct {
	minutes map[string]int
	err     error
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{minutes: make(map[string]int)}
}

func (f *fakeLedger) key(userID, movieID int, date string) string {
	return fmt.Sprintf("%d|%d|%s", userID, movieID, date)
}

func (f *fakeLedger) UpsertAdd(userID, movieID int, date string, minutes int) error {
	if f.err != nil {
		return f.err
	}
	f.minutes[f.key(userID, movieID, date)] += minutes
	return nil
}

func (f *fakeLedger) SumForDay(userID int, date string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	total := 0
	prefix := fmt.Sprintf("%d|", userID)
	for k, v := range f.minutes {
		if len(k) > len(prefix) && k[:len(prefix)] == prefix && k[len(k)-len(date):] == date {
			total += v
		}
	}
	return total, nil
}

// fakeChatLog is an in-memory ChatLog preserving append order.
type fakeChatLog struct {
	messages []model.ChatMessage
	err      error
}

func (f *fakeChatLog) Append(userID int, message string, isBot bool, at time.Time) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, model.ChatMessage{
		ID:        len(f.messages) + 1,
		UserID:    userID,
		Message:   message,
		IsBot:     isBot,
		CreatedAt: at,
	})
	return nil
}

func (f *fakeChatLog) Recent(userID, limit int) ([]model.ChatMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.ChatMessage
	for _, m := range f.messages {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func testMovies() []model.Movie {
	return []model.Movie{
		{ID: 1, Title: "Neon Dreams", Year: 2024, Genre: "Sci-Fi", Rating: 9.0, ViewCount: 2100, Description: "Futuristic adventure"},
		{ID: 2, Title: "Dark Matter", Year: 2024, Genre: "Sci-Fi", Rating: 8.9, ViewCount: 2350, Description: "Space odyssey"},
		{ID: 3, Title: "The Last Stand", Year: 2023, Genre: "Action", Rating: 8.5, ViewCount: 1250, Description: "An epic action thriller"},
		{ID: 4, Title: "Velocity", Year: 2024, Genre: "Action", Rating: 8.3, ViewCount: 1560, Description: "High-speed action"},
		{ID: 5, Title: "The Forgotten", Year: 2023, Genre: "Horror", Rating: 7.5, ViewCount: 650, Description: "Supernatural horror"},
		{ID: 6, Title: "Whispers", Year: 2024, Genre: "Horror", Rating: 7.4, ViewCount: 620, Description: "Haunting tale"},
		{ID: 7, Title: "Crimson Hall", Year: 2022, Genre: "Horror", Rating: 7.4, ViewCount: 900, Description: "Gothic scares"},
		{ID: 8, Title: "Grave Hollow", Year: 2021, Genre: "Horror", Rating: 6.9, ViewCount: 300, Description: "Small-town dread"},
		{ID: 9, Title: "Haunted Pines", Year: 2020, Genre: "Horror", Rating: 6.1, ViewCount: 150, Description: "Forest horror"},
		{ID: 10, Title: "Family Ties", Year: 2024, Genre: "Comedy", Rating: 7.9, ViewCount: 890, Description: "Family comedy"},
	}
}
