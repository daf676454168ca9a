package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/flick/internal/browse"
	"github.com/mmcdole/flick/internal/tui/styles"
)

// filterPanel edits the discover facets. Rows are the genres followed by
// year from, year to and the rating floor.
type filterPanel struct {
	cursor   int
	yearFrom textinput.Model
	yearTo   textinput.Model
}

const fixedFilterRows = 3

func newFilterPanel(theme styles.Theme) filterPanel {
	return filterPanel{
		yearFrom: newYearInput(theme, "from"),
		yearTo:   newYearInput(theme, "to"),
	}
}

func newYearInput(theme styles.Theme, placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 4
	ti.Width = 6
	ti.Prompt = ""
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Palette.Text)
	ti.PlaceholderStyle = theme.Dim
	ti.Validate = func(s string) error {
		if _, err := strconv.Atoi(s); s != "" && err != nil {
			return fmt.Errorf("year must be numeric")
		}
		return nil
	}
	return ti
}

func (p *filterPanel) restyle(theme styles.Theme) {
	from, to := p.yearFrom.Value(), p.yearTo.Value()
	p.yearFrom = newYearInput(theme, "from")
	p.yearTo = newYearInput(theme, "to")
	p.yearFrom.SetValue(from)
	p.yearTo.SetValue(to)
}

func (p *filterPanel) clear() {
	p.cursor = 0
}

func (p *filterPanel) reset() {
	p.cursor = 0
	p.yearFrom.SetValue("")
	p.yearTo.SetValue("")
}

func (m *Model) filterHeight() int {
	if m.focus != focusFilters {
		return 0
	}
	return 9
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	genres := m.vm.Filter.Available
	rows := len(genres) + fixedFilterRows
	row := m.filters.cursor
	yearRow := row == len(genres) || row == len(genres)+1
	ratingRow := row == len(genres)+2

	switch {
	case msg.Type == tea.KeyEsc || key.Matches(msg, Keys.Filters):
		m.focus = focusList
		return nil

	case key.Matches(msg, Keys.Up) && !(yearRow && msg.Type == tea.KeyRunes):
		m.filters.cursor = max(row-1, 0)
		return nil

	case key.Matches(msg, Keys.Down) && !(yearRow && msg.Type == tea.KeyRunes):
		m.filters.cursor = min(row+1, rows-1)
		return nil

	case key.Matches(msg, Keys.Apply) && !(yearRow && msg.Type == tea.KeyRunes):
		cmd := m.Session.ApplyFilters()
		if cmd != nil {
			m.focus = focusList
			m.cursor = 0
		}
		return cmd

	case key.Matches(msg, Keys.Reset) && !yearRow:
		m.filters.reset()
		m.cursor = 0
		return m.Session.ResetFilters()
	}

	switch {
	case row < len(genres):
		if key.Matches(msg, Keys.ToggleGenre) {
			return m.Session.ToggleGenre(genres[row].ID)
		}

	case yearRow:
		input, bound := &m.filters.yearFrom, browse.YearFrom
		if row == len(genres)+1 {
			input, bound = &m.filters.yearTo, browse.YearTo
		}
		input.Focus()
		var cmd tea.Cmd
		*input, cmd = input.Update(msg)
		input.Blur()
		year, _ := strconv.Atoi(input.Value())
		m.Session.SetYearBound(bound, year)
		return cmd

	case ratingRow:
		switch {
		case key.Matches(msg, Keys.RatingDown):
			return m.Session.SetMinRating(m.vm.Filter.MinRating - 0.5)
		case key.Matches(msg, Keys.RatingUp):
			return m.Session.SetMinRating(m.vm.Filter.MinRating + 0.5)
		}
	}
	return nil
}

// renderFilters draws the panel. Genres are laid out in one wrapped line
// with the cursor row highlighted.
func (m *Model) renderFilters() string {
	t := m.Theme
	f := m.vm.Filter
	genres := f.Available

	var chips []string
	for i, g := range genres {
		mark := "[ ]"
		if f.IsSelected(g.ID) {
			mark = "[x]"
		}
		chip := mark + " " + g.Name
		switch {
		case i == m.filters.cursor:
			chip = t.SelectedItem.Render(chip)
		case f.IsSelected(g.ID):
			chip = t.Accent.Render(chip)
		default:
			chip = t.Dim.Render(chip)
		}
		chips = append(chips, chip)
	}
	if len(genres) == 0 {
		chips = append(chips, t.Dim.Render("genres unavailable"))
	}

	row := func(i int, label, value string) string {
		text := fmt.Sprintf("%-10s %s", label, value)
		if i == m.filters.cursor {
			return t.SelectedItem.Render(text)
		}
		return t.NormalItem.Render(text)
	}

	rating := "any"
	if f.MinRating > 0 {
		rating = fmt.Sprintf("≥ %.1f", f.MinRating)
	}

	width := max(m.Width-4, 20)
	lines := []string{
		lipgloss.NewStyle().Width(width).Render(strings.Join(chips, "  ")),
		row(len(genres), "Year from", m.filters.yearFrom.View()),
		row(len(genres)+1, "Year to", m.filters.yearTo.View()),
		row(len(genres)+2, "Rating", rating+t.Dim.Render("  (-/+)")),
	}

	hint := "enter apply • r reset • esc close"
	if !f.CanApply() {
		hint = "select a facet to apply • esc close"
	}
	lines = append(lines, t.Dim.Render(hint))

	return t.Panel.Width(width).Render(strings.Join(lines, "\n"))
}
