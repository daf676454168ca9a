package browse

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/mmcdole/flick/internal/domain"
)

// YearBound selects which end of the year range SetYearBound edits
type YearBound int

const (
	YearFrom YearBound = iota
	YearTo
)

// MaxRating is the upper bound of the rating facet
const MaxRating = 10.0

// FilterState holds the staged facets and whether a discover request has
// been issued for them.
type FilterState struct {
	Available []domain.Genre
	Selected  []int
	YearFrom  int
	YearTo    int
	MinRating float64
	Applied   bool

	// snapshot of the facets the current discover listing was built from
	applied domain.Facets
}

// Facets returns the staged facet values
func (f *FilterState) Facets() domain.Facets {
	return domain.Facets{
		Genres:    slices.Clone(f.Selected),
		YearFrom:  f.YearFrom,
		YearTo:    f.YearTo,
		MinRating: f.MinRating,
	}
}

// CanApply is false while every facet is at its default
func (f *FilterState) CanApply() bool {
	return !f.Facets().IsZero()
}

// IsSelected reports whether genre id is staged
func (f *FilterState) IsSelected(id int) bool {
	return slices.Contains(f.Selected, id)
}

func (f *FilterState) toggleGenre(id int) {
	if i := slices.Index(f.Selected, id); i >= 0 {
		f.Selected = slices.Delete(f.Selected, i, i+1)
		return
	}
	f.Selected = append(f.Selected, id)
}

func (f *FilterState) setYear(bound YearBound, year int) {
	if year < 0 {
		year = 0
	}
	switch bound {
	case YearFrom:
		f.YearFrom = year
	case YearTo:
		f.YearTo = year
	}
}

func (f *FilterState) setMinRating(v float64) {
	f.MinRating = SnapRating(v)
}

// SnapRating clamps v to [0, 10] and rounds it to the nearest half point
func SnapRating(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > MaxRating {
		return MaxRating
	}
	return math.Round(v*2) / 2
}

// apply marks the staged facets as issued and returns the snapshot
func (f *FilterState) apply() domain.Facets {
	f.Applied = true
	f.applied = f.Facets()
	return f.applied
}

// clearSelection drops the genre selection and the applied flag; a filter
// never survives a category switch.
func (f *FilterState) clearSelection() {
	f.Selected = nil
	f.Applied = false
	f.applied = domain.Facets{}
}

func (f *FilterState) reset() {
	f.clearSelection()
	f.YearFrom = 0
	f.YearTo = 0
	f.MinRating = 0
}

// Summary describes the facets the current discover listing was built
// from, e.g. "Genres: Action, Drama • Year: 2000 - ? • Rating: ≥ 7.0".
// Facets staged since the last apply are not included. It is empty unless
// filters have been applied.
func (f *FilterState) Summary() string {
	a := f.applied
	if !f.Applied || a.IsZero() {
		return ""
	}

	var parts []string
	if len(a.Genres) > 0 {
		names := make([]string, 0, len(a.Genres))
		for _, id := range a.Genres {
			names = append(names, f.genreName(id))
		}
		parts = append(parts, "Genres: "+strings.Join(names, ", "))
	}
	if a.YearFrom > 0 || a.YearTo > 0 {
		parts = append(parts, fmt.Sprintf("Year: %s - %s", yearOrUnknown(a.YearFrom), yearOrUnknown(a.YearTo)))
	}
	if a.MinRating > 0 {
		parts = append(parts, fmt.Sprintf("Rating: ≥ %.1f", a.MinRating))
	}
	return strings.Join(parts, " • ")
}

func (f *FilterState) genreName(id int) string {
	for _, g := range f.Available {
		if g.ID == id {
			return g.Name
		}
	}
	return fmt.Sprintf("#%d", id)
}

func yearOrUnknown(y int) string {
	if y <= 0 {
		return "?"
	}
	return fmt.Sprint(y)
}
