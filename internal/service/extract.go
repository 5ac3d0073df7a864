package service

import (
	"strings"
)

// genreKeywords maps free-text tokens to canonical genre labels. Declared
// order is the tie-break: the first key found in the message wins, so
// "sci-fi" beats "scifi" when both appear. The labels mirror the TMDB
// genre set used by the catalog import.
var genreKeywords = []struct {
	keyword string
	genre   string
}{
	{"action", "Action"},
	{"adventure", "Adventure"},
	{"animation", "Animation"},
	{"animated", "Animation"},
	{"comedy", "Comedy"},
	{"funny", "Comedy"},
	{"crime", "Crime"},
	{"documentary", "Documentary"},
	{"drama", "Drama"},
	{"family", "Family"},
	{"fantasy", "Fantasy"},
	{"history", "History"},
	{"historical", "History"},
	{"horror", "Horror"},
	{"music", "Music"},
	{"musical", "Music"},
	{"mystery", "Mystery"},
	{"romance", "Romance"},
	{"romantic", "Romance"},
	{"sci-fi", "Sci-Fi"},
	{"scifi", "Sci-Fi"},
	{"science fiction", "Sci-Fi"},
	{"thriller", "Thriller"},
	{"war", "War"},
	{"western", "Western"},
}

// moodGenres maps a mood token to its preferred genres, most preferred
// first. Static configuration, never mutated after process start.
var moodGenres = []struct {
	mood   string
	genres []string
}{
	{"happy", []string{"Comedy", "Adventure", "Family"}},
	{"sad", []string{"Drama", "Romance"}},
	{"excited", []string{"Action", "Thriller", "Sci-Fi"}},
	{"scared", []string{"Horror", "Thriller", "Mystery"}},
	{"bored", []string{"Action", "Comedy", "Adventure"}},
	{"relaxed", []string{"Family", "Animation", "Romance"}},
	{"romantic", []string{"Romance", "Drama"}},
	{"curious", []string{"Documentary", "Mystery", "Sci-Fi"}},
	{"nostalgic", []string{"History", "Drama", "Music"}},
}

// ExtractGenre pulls the first genre keyword out of the message, empty
// string when none is present.
func ExtractGenre(message string) string {
	lower := strings.ToLower(message)
	for _, entry := range genreKeywords {
		if matchesAny(lower, []string{entry.keyword}) {
			return entry.genre
		}
	}
	return ""
}

// ExtractMood pulls the first mood keyword out of the message, empty
// string when none is present.
func ExtractMood(message string) string {
	lower := strings.ToLower(message)
	for _, entry := range moodGenres {
		if containsWord(lower, entry.mood) {
			return entry.mood
		}
	}
	return ""
}

// GenresForMood returns the genre list mapped to a mood, nil for an
// unknown mood.
func GenresForMood(mood string) []string {
	for _, entry := range moodGenres {
		if entry.mood == mood {
			return entry.genres
		}
	}
	return nil
}
