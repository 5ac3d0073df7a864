package service

import (
	"testing"
)

func TestExtractGenre(t *testing.T) {
	cases := []struct {
		message string
		want    string
	}{
		{"recommend a horror movie", "Horror"},
		{"something funny please", "Comedy"},
		{"I want an ACTION film", "Action"},
		{"a good science fiction story", "Sci-Fi"},
		{"nothing in particular", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := ExtractGenre(tc.message); got != tc.want {
			t.Errorf("ExtractGenre(%q) = %q, want %q", tc.message, got, tc.want)
		}
	}
}

func TestExtractGenreTableOrderTieBreak(t *testing.T) {
	// "sci-fi" is declared before "scifi", so it wins when both appear.
	got := ExtractGenre("I want a sci-fi or scifi movie")
	if got != "Sci-Fi" {
		t.Fatalf("got %q, want Sci-Fi", got)
	}

	// "action" is declared before "thriller"; declaration order, not
	// message order, is the tie-break.
	got = ExtractGenre("a thriller with action")
	if got != "Action" {
		t.Errorf("declaration order should win: got %q, want Action", got)
	}
}

func TestExtractMood(t *testing.T) {
	cases := []struct {
		message string
		want    string
	}{
		{"I'm feeling sad today", "sad"},
		{"so excited right now", "excited"},
		{"I am BORED", "bored"},
		{"just a normal day", ""},
	}
	for _, tc := range cases {
		if got := ExtractMood(tc.message); got != tc.want {
			t.Errorf("ExtractMood(%q) = %q, want %q", tc.message, got, tc.want)
		}
	}
}

func TestGenresForMood(t *testing.T) {
	genres := GenresForMood("happy")
	if len(genres) == 0 || genres[0] != "Comedy" {
		t.Errorf("happy should prefer Comedy first, got %v", genres)
	}

	if got := GenresForMood("unmapped"); got != nil {
		t.Errorf("unknown mood should map to nil, got %v", got)
	}
}

func TestMoodTableOrderTieBreak(t *testing.T) {
	// "happy" is declared before "sad".
	if got := ExtractMood("happy then sad"); got != "happy" {
		t.Errorf("declaration order should win: got %q, want happy", got)
	}
}
