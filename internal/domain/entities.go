package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Category identifies a browse tab. The first three map to remote listings;
// CategoryFavorites is backed by the local favorites list.
type Category string

const (
	CategoryPopular    Category = "popular"
	CategoryTopRated   Category = "top_rated"
	CategoryNowPlaying Category = "now_playing"
	CategoryFavorites  Category = "favorites"
)

// BrowseCategories returns the remote listing categories in tab order
func BrowseCategories() []Category {
	return []Category{CategoryPopular, CategoryTopRated, CategoryNowPlaying}
}

// Label returns the display label for the category
func (c Category) Label() string {
	switch c {
	case CategoryPopular:
		return "Popular"
	case CategoryTopRated:
		return "Top Rated"
	case CategoryNowPlaying:
		return "Now Playing"
	case CategoryFavorites:
		return "Favorites"
	default:
		return string(c)
	}
}

// IsRemote returns true if the category is served by the content API
func (c Category) IsRemote() bool {
	switch c {
	case CategoryPopular, CategoryTopRated, CategoryNowPlaying:
		return true
	default:
		return false
	}
}

// ParseCategory converts a config/CLI string to a Category
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case CategoryPopular, CategoryTopRated, CategoryNowPlaying, CategoryFavorites:
		return c, nil
	default:
		return "", fmt.Errorf("unknown category: %q", s)
	}
}

// Genre is a content genre as reported by the genre list endpoint
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Item is a normalized movie record. List endpoints fill the summary
// fields; the detail endpoint fills the extended ones as well.
type Item struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	ReleaseDate  string  `json:"release_date,omitempty"` // YYYY-MM-DD
	Year         int     `json:"year,omitempty"`         // 0 if unknown
	Rating       float64 `json:"rating,omitempty"`       // 0-10, 0 if unknown
	PosterPath   string  `json:"poster_path,omitempty"`
	BackdropPath string  `json:"backdrop_path,omitempty"`
	GenreIDs     []int   `json:"genre_ids,omitempty"`

	// Detail-only fields
	Overview string   `json:"overview,omitempty"`
	Runtime  int      `json:"runtime,omitempty"` // minutes
	Genres   []string `json:"genres,omitempty"`
	Tagline  string   `json:"tagline,omitempty"`
	Revenue  int64    `json:"revenue,omitempty"`
}

// Key returns the dedup key used by the favorites list
func (i Item) Key() string { return strconv.Itoa(i.ID) }

// PosterURL joins the poster path onto an image base URL
func (i Item) PosterURL(base string) string {
	if i.PosterPath == "" {
		return ""
	}
	return strings.TrimRight(base, "/") + i.PosterPath
}

// BackdropURL joins the backdrop path onto an image base URL
func (i Item) BackdropURL(base string) string {
	if i.BackdropPath == "" {
		return ""
	}
	return strings.TrimRight(base, "/") + i.BackdropPath
}

// FormattedYear returns the release year or "N/A"
func (i Item) FormattedYear() string {
	if i.Year > 0 {
		return strconv.Itoa(i.Year)
	}
	return "N/A"
}

// FormattedRating returns the rating with one decimal or "N/A"
func (i Item) FormattedRating() string {
	if i.Rating > 0 {
		return fmt.Sprintf("%.1f", i.Rating)
	}
	return "N/A"
}

// FormattedRuntime returns the runtime as "N min" or "N/A"
func (i Item) FormattedRuntime() string {
	if i.Runtime > 0 {
		return fmt.Sprintf("%d min", i.Runtime)
	}
	return "N/A"
}

// Facets are the discover filter dimensions. Zero means "no constraint"
// for every scalar facet.
type Facets struct {
	Genres    []int
	YearFrom  int
	YearTo    int
	MinRating float64
}

// IsZero returns true if no facet is set
func (f Facets) IsZero() bool {
	return len(f.Genres) == 0 && f.YearFrom == 0 && f.YearTo == 0 && f.MinRating == 0
}

// Page is one normalized page of list results
type Page struct {
	Items      []Item
	Page       int
	TotalPages int
}

// Empty returns true if the page carries no items
func (p Page) Empty() bool { return len(p.Items) == 0 }
