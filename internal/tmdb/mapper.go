package tmdb

import (
	"strconv"

	"github.com/mmcdole/flick/internal/domain"
)

// MapPage converts a listing envelope to a domain page. requested is used
// when the response omits its page number.
func MapPage(resp ListResponse, requested int) domain.Page {
	items := make([]domain.Item, 0, len(resp.Results))
	for _, r := range resp.Results {
		items = append(items, mapResult(r))
	}

	page := resp.Page
	if page == 0 {
		page = requested
	}
	return domain.Page{
		Items:      items,
		Page:       page,
		TotalPages: resp.TotalPages,
	}
}

func mapResult(r MovieResult) domain.Item {
	return domain.Item{
		ID:           r.ID,
		Title:        r.Title,
		ReleaseDate:  r.ReleaseDate,
		Year:         parseYear(r.ReleaseDate),
		Rating:       r.VoteAverage,
		PosterPath:   r.PosterPath,
		BackdropPath: r.BackdropPath,
		GenreIDs:     r.GenreIDs,
		Overview:     r.Overview,
	}
}

// MapDetails converts a detail payload to a fully populated item
func MapDetails(d MovieDetails) *domain.Item {
	item := &domain.Item{
		ID:           d.ID,
		Title:        d.Title,
		ReleaseDate:  d.ReleaseDate,
		Year:         parseYear(d.ReleaseDate),
		Rating:       d.VoteAverage,
		PosterPath:   d.PosterPath,
		BackdropPath: d.BackdropPath,
		Overview:     d.Overview,
		Runtime:      d.Runtime,
		Tagline:      d.Tagline,
		Revenue:      d.Revenue,
	}
	for _, g := range d.Genres {
		item.GenreIDs = append(item.GenreIDs, g.ID)
		item.Genres = append(item.Genres, g.Name)
	}
	return item
}

// MapGenres converts the genre list
func MapGenres(resp GenreListResponse) []domain.Genre {
	genres := make([]domain.Genre, 0, len(resp.Genres))
	for _, g := range resp.Genres {
		genres = append(genres, domain.Genre{ID: g.ID, Name: g.Name})
	}
	return genres
}

// parseYear extracts the year from a YYYY-MM-DD date, 0 if absent
func parseYear(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}
