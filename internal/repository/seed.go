package repository

import (
	"fmt"
	"log"

	"github.com/user/cinego/internal/model"
)

// sampleMovies is the starter catalog used when the database is empty,
// so the app is browsable before the first TMDB sync. Synthetic
// tmdb_ids keep them out of the way of real imports.
var sampleMovies = []model.Movie{
	{TMDBID: 900001, Title: "The Last Stand", Year: 2023, Genre: "Action", Rating: 8.5, Description: "An epic action thriller", IsTrending: true, ViewCount: 1250},
	{TMDBID: 900002, Title: "Midnight Echo", Year: 2024, Genre: "Drama", Rating: 7.8, Description: "A gripping drama", IsTrending: true, ViewCount: 980},
	{TMDBID: 900003, Title: "Shadow Protocol", Year: 2023, Genre: "Thriller", Rating: 8.2, Description: "High-stakes espionage", IsTrending: true, ViewCount: 1411},
	{TMDBID: 900004, Title: "Neon Dreams", Year: 2024, Genre: "Sci-Fi", Rating: 9.0, Description: "Futuristic adventure", IsTrending: true, ViewCount: 2100},
	{TMDBID: 900005, Title: "The Forgotten", Year: 2023, Genre: "Horror", Rating: 7.5, Description: "Supernatural horror", ViewCount: 650},
	{TMDBID: 900006, Title: "Ocean Rise", Year: 2024, Genre: "Adventure", Rating: 8.7, Description: "Maritime epic", IsTrending: true, ViewCount: 1800},
	{TMDBID: 900007, Title: "Silent Hills", Year: 2023, Genre: "Mystery", Rating: 7.9, Description: "Mystery thriller", ViewCount: 720},
	{TMDBID: 900008, Title: "Velocity", Year: 2024, Genre: "Action", Rating: 8.3, Description: "High-speed action", IsTrending: true, ViewCount: 1560},
	{TMDBID: 900009, Title: "Eternal Spring", Year: 2023, Genre: "Romance", Rating: 7.6, Description: "Love story", ViewCount: 890},
	{TMDBID: 900010, Title: "Dark Matter", Year: 2024, Genre: "Sci-Fi", Rating: 8.9, Description: "Space odyssey", IsTrending: true, ViewCount: 2350},
	{TMDBID: 900011, Title: "The Heist", Year: 2023, Genre: "Crime", Rating: 8.1, Description: "Master thieves", ViewCount: 1100},
	{TMDBID: 900012, Title: "Phoenix Rising", Year: 2024, Genre: "Fantasy", Rating: 8.6, Description: "Mythical journey", IsTrending: true, ViewCount: 1920},
	{TMDBID: 900013, Title: "Red Zone", Year: 2023, Genre: "War", Rating: 7.7, Description: "War drama", ViewCount: 780},
	{TMDBID: 900014, Title: "Whispers", Year: 2024, Genre: "Horror", Rating: 7.4, Description: "Haunting tale", ViewCount: 620},
	{TMDBID: 900015, Title: "Code Black", Year: 2023, Genre: "Thriller", Rating: 8.4, Description: "Cyber thriller", IsTrending: true, ViewCount: 1650},
}

var sampleSeries = []model.Series{
	{TMDBID: 900101, Title: "Breaking Boundaries", Year: 2023, Genre: "Drama", Rating: 9.1, Description: "Award-winning series", Seasons: 3},
	{TMDBID: 900102, Title: "Cosmic Wars", Year: 2024, Genre: "Sci-Fi", Rating: 8.8, Description: "Epic space saga", Seasons: 2},
	{TMDBID: 900103, Title: "The Detective", Year: 2023, Genre: "Crime", Rating: 8.5, Description: "Crime investigation", Seasons: 4},
	{TMDBID: 900104, Title: "Lost Kingdom", Year: 2024, Genre: "Fantasy", Rating: 8.9, Description: "Fantasy adventure", Seasons: 2},
	{TMDBID: 900105, Title: "Night Shift", Year: 2023, Genre: "Thriller", Rating: 8.2, Description: "Medical thriller", Seasons: 3},
	{TMDBID: 900106, Title: "Family Ties", Year: 2024, Genre: "Comedy", Rating: 7.9, Description: "Family comedy", Seasons: 5},
}

// SeedCatalog inserts the starter catalog when the movie table is empty.
func SeedCatalog(repos *Repositories) error {
	count, err := repos.Movie.Count()
	if err != nil {
		return fmt.Errorf("count movies: %w", err)
	}
	if count > 0 {
		return nil
	}

	log.Println("[seed] catalog is empty, inserting starter titles")

	for i := range sampleMovies {
		if err := repos.Movie.Upsert(&sampleMovies[i]); err != nil {
			return fmt.Errorf("seed movie %q: %w", sampleMovies[i].Title, err)
		}
	}
	for i := range sampleSeries {
		if err := repos.Series.Upsert(&sampleSeries[i]); err != nil {
			return fmt.Errorf("seed series %q: %w", sampleSeries[i].Title, err)
		}
	}

	log.Printf("[seed] inserted %d movies and %d series", len(sampleMovies), len(sampleSeries))
	return nil
}
