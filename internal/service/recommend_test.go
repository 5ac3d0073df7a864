package service

import (
	"errors"
	"testing"
)

func TestRecommendByGenre(t *testing.T) {
	r := NewRecommender(&fakeCatalog{movies: testMovies()})

	// Five Horror titles exist, limit caps the result at three.
	movies, err := r.Recommend("Horror", "", 3)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(movies) != 3 {
		t.Fatalf("expected 3 results, got %d", len(movies))
	}

	// Ranked rating desc, then views desc: The Forgotten (7.5),
	// then Crimson Hall over Whispers (both 7.4, 900 > 620 views).
	want := []string{"The Forgotten", "Crimson Hall", "Whispers"}
	for i, title := range want {
		if movies[i].Title != title {
			t.Errorf("rank %d: got %q, want %q", i+1, movies[i].Title, title)
		}
	}
}

func TestRecommendDeterministic(t *testing.T) {
	r := NewRecommender(&fakeCatalog{movies: testMovies()})

	first, err := r.Recommend("Horror", "", 3)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := r.Recommend("Horror", "", 3)
		if err != nil {
			t.Fatalf("Recommend failed: %v", err)
		}
		if len(again) != len(first) {
			t.Fatalf("result length changed between calls")
		}
		for j := range again {
			if again[j].ID != first[j].ID {
				t.Fatalf("call %d rank %d changed: %d != %d", i, j, again[j].ID, first[j].ID)
			}
		}
	}
}

func TestRecommendByMood(t *testing.T) {
	r := NewRecommender(&fakeCatalog{movies: testMovies()})

	// "excited" maps to Action, Thriller, Sci-Fi; the Sci-Fi titles
	// outrank the Action ones.
	movies, err := r.Recommend("", "excited", 3)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(movies) != 3 {
		t.Fatalf("expected 3 results, got %d", len(movies))
	}
	if movies[0].Title != "Neon Dreams" || movies[1].Title != "Dark Matter" {
		t.Errorf("Sci-Fi titles should rank first, got %q, %q", movies[0].Title, movies[1].Title)
	}
	if movies[2].Genre != "Action" {
		t.Errorf("third pick should be Action, got %s", movies[2].Genre)
	}
}

func TestRecommendGenreBeatsMood(t *testing.T) {
	r := NewRecommender(&fakeCatalog{movies: testMovies()})

	movies, err := r.Recommend("Comedy", "scared", 3)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	for _, m := range movies {
		if m.Genre != "Comedy" {
			t.Errorf("explicit genre should override mood, got %s", m.Genre)
		}
	}
}

func TestRecommendUnfiltered(t *testing.T) {
	r := NewRecommender(&fakeCatalog{movies: testMovies()})

	movies, err := r.Recommend("", "", 3)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(movies) != 3 {
		t.Fatalf("expected 3 results, got %d", len(movies))
	}
	// Whole catalog competes: highest rated overall wins.
	if movies[0].Title != "Neon Dreams" {
		t.Errorf("expected Neon Dreams first, got %q", movies[0].Title)
	}
}

func TestRecommendNoMatches(t *testing.T) {
	r := NewRecommender(&fakeCatalog{movies: testMovies()})

	movies, err := r.Recommend("Unobtainium", "", 3)
	if err != nil {
		t.Fatalf("no matches must not be an error: %v", err)
	}
	if len(movies) != 0 {
		t.Errorf("expected empty result, got %d titles", len(movies))
	}
}

func TestRecommendStoreError(t *testing.T) {
	storeErr := errors.New("connection refused")
	r := NewRecommender(&fakeCatalog{err: storeErr})

	_, err := r.Recommend("Horror", "", 3)
	if !errors.Is(err, storeErr) {
		t.Errorf("store failure must propagate, got %v", err)
	}
}

func TestRecommendDefaultLimit(t *testing.T) {
	r := NewRecommender(&fakeCatalog{movies: testMovies()})

	movies, err := r.Recommend("", "", 0)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(movies) != DefaultRecommendLimit {
		t.Errorf("zero limit should fall back to %d, got %d", DefaultRecommendLimit, len(movies))
	}
}
