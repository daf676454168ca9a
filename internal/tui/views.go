package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mmcdole/flick/internal/browse"
	"github.com/mmcdole/flick/internal/domain"
	"github.com/sahilm/fuzzy"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const maxSuggestions = 5

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}
	if m.vm.DetailOpen {
		return m.renderDetailModal()
	}

	sections := []string{
		m.renderHeader(),
		"",
		m.renderSearch(),
		m.renderStatus(),
	}
	if s := m.renderSuggestions(); s != "" {
		sections = append(sections, s)
	}
	if m.focus == focusFilters {
		sections = append(sections, m.renderFilters())
	} else {
		sections = append(sections, m.renderFilterSummary())
	}
	sections = append(sections, m.renderCount(), m.renderList(), "", m.renderFooter())

	return strings.Join(sections, "\n")
}

func (m Model) renderHeader() string {
	t := m.Theme
	parts := []string{t.Title.Render("flick") + "  "}
	for _, c := range tabs {
		label := tabLabel(c, m.vm.FavoritesCount)
		if c == m.vm.Category {
			parts = append(parts, t.ActiveTab.Render(label))
		} else {
			parts = append(parts, t.InactiveTab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// tabLabel returns the tab caption, with the favorites count appended
func tabLabel(c domain.Category, favorites int) string {
	if c == domain.CategoryFavorites && favorites > 0 {
		return fmt.Sprintf("%s (%d)", c.Label(), favorites)
	}
	return c.Label()
}

func (m Model) renderSearch() string {
	line := m.search.View()
	switch {
	case m.vm.Mode == browse.ModeSearch && m.vm.Loading:
		line += " " + m.spinner.View()
	case m.vm.Typing:
		line += " " + m.Theme.Dim.Render("…")
	}
	return line
}

// renderStatus shows the error, hint or empty notice, in that order
func (m Model) renderStatus() string {
	t := m.Theme
	switch {
	case m.vm.Error != "":
		return t.Error.Render(m.vm.Error)
	case m.vm.Hint != "":
		return t.Dim.Render(m.vm.Hint)
	case m.vm.Notice != "" && !m.vm.Loading:
		return t.Subtitle.Render(m.vm.Notice)
	}
	return ""
}

func (m Model) renderSuggestions() string {
	if m.focus != focusSearch {
		return ""
	}
	suggestions := m.suggestions()
	if len(suggestions) == 0 {
		return ""
	}

	t := m.Theme
	lines := []string{t.Dim.Render("Recent searches")}
	for i, s := range suggestions {
		if i == m.histCursor {
			lines = append(lines, t.SelectedItem.Render(s))
		} else {
			lines = append(lines, t.NormalItem.Render(s))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderFilterSummary() string {
	if m.vm.FilterSummary == "" {
		if m.vm.Category.IsRemote() {
			return m.Theme.Dim.Render("F to filter by genre, year or rating")
		}
		return ""
	}
	return m.Theme.Badge.Render("Filters") + " " + m.Theme.Subtitle.Render(m.vm.FilterSummary)
}

func (m Model) renderCount() string {
	t := m.Theme
	n := len(m.vm.Items)
	var line string
	switch {
	case n == 1:
		line = "Found 1 movie"
	case n > 1:
		line = fmt.Sprintf("Found %d movies", n)
	}
	if m.vm.Loading {
		line = strings.TrimSpace(line + " " + m.spinner.View() + " Loading...")
	} else if m.vm.HasMore && n > 0 {
		line += t.Dim.Render("  (m for more)")
	}
	return t.Subtitle.Render(line)
}

func (m Model) renderList() string {
	t := m.Theme
	items := m.vm.Items
	h := m.listHeight()
	width := max(m.Width-2, 20)

	end := min(m.offset+h, len(items))
	var lines []string
	for i := m.offset; i < end; i++ {
		item := items[i]

		rating := t.Star.Render("★ " + item.FormattedRating())
		title := fmt.Sprintf("%s (%s)", item.Title, item.FormattedYear())
		fav := "  "
		if m.vm.FavoriteIDs[item.ID] {
			fav = t.Error.Render(" ♥")
		}
		titleWidth := max(width-lipgloss.Width(rating)-lipgloss.Width(fav)-4, 5)
		title = ansi.Truncate(title, titleWidth, "…")

		style := t.NormalItem
		if i == m.cursor && m.focus == focusList {
			style = t.SelectedItem
		}
		row := rating + "  " + style.Render(title) + fav
		lines = append(lines, row)
	}

	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	var bindings []key.Binding
	switch m.focus {
	case focusSearch:
		bindings = []key.Binding{Keys.Enter, Keys.ClearSearch, Keys.Escape}
	case focusFilters:
		bindings = []key.Binding{Keys.ToggleGenre, Keys.RatingUp, Keys.Apply, Keys.Reset, Keys.Escape}
	default:
		bindings = []key.Binding{Keys.Search, Keys.NextTab, Keys.Enter, Keys.Favorite, Keys.Filters, Keys.Help, Keys.Quit}
	}
	return m.renderBindings(bindings, " • ")
}

func (m Model) renderBindings(bindings []key.Binding, sep string) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, m.Theme.HelpKey.Render(h.Key)+" "+m.Theme.HelpDesc.Render(h.Desc))
	}
	return strings.Join(parts, sep)
}

func (m Model) renderHelp() string {
	groups := Keys.HelpBindings()
	columns := make([]string, 0, len(groups))
	for _, g := range groups {
		col := m.renderBindings(g, "\n")
		columns = append(columns, lipgloss.NewStyle().PaddingRight(3).Render(col))
	}

	body := m.Theme.ModalTitle.Render("Keys") + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center,
		m.Theme.Modal.Render(body))
}

func (m Model) renderDetailModal() string {
	t := m.Theme
	title := "Details"
	fav := ""
	if d := m.vm.Detail; d != nil {
		title = d.Title
		if m.vm.FavoriteIDs[d.ID] {
			fav = t.Error.Render(" ♥")
		}
	}

	footer := t.HelpKey.Render("esc") + " " + t.HelpDesc.Render("close") + " • " +
		t.HelpKey.Render("f") + " " + t.HelpDesc.Render("favorite") + " • " +
		t.HelpKey.Render("j/k") + " " + t.HelpDesc.Render("scroll")
	if m.vm.DetailLoading {
		footer = m.spinner.View() + " " + footer
	}

	body := t.ModalTitle.Render(title+fav) + "\n" + m.detail.View() + "\n" + footer
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center,
		t.Modal.Width(m.detail.Width+4).Render(body))
}

// renderDetail returns the detail body rendered through glamour. The raw
// markdown is returned if rendering fails.
func (m *Model) renderDetail(vm browse.ViewModel) string {
	md := DetailMarkdown(vm, m.ImageBase)
	r, err := m.glamourRenderer()
	if err != nil {
		m.logger.Warn("failed to create markdown renderer", "error", err)
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		m.logger.Warn("failed to render details", "error", err)
		return md
	}
	return out
}

// DetailMarkdown formats the detail view as markdown
func DetailMarkdown(vm browse.ViewModel, imageBase string) string {
	item := vm.Detail
	if item == nil {
		return ""
	}

	var b strings.Builder
	if item.Tagline != "" {
		fmt.Fprintf(&b, "_%s_\n\n", item.Tagline)
	}

	release := item.ReleaseDate
	if release == "" {
		release = "N/A"
	}
	rating := "N/A"
	if item.Rating > 0 {
		rating = item.FormattedRating() + " / 10"
	}
	genres := "N/A"
	if len(item.Genres) > 0 {
		genres = strings.Join(item.Genres, ", ")
	}

	fmt.Fprintf(&b, "- **Release date:** %s\n", release)
	fmt.Fprintf(&b, "- **Rating:** %s\n", rating)
	fmt.Fprintf(&b, "- **Runtime:** %s\n", item.FormattedRuntime())
	fmt.Fprintf(&b, "- **Genres:** %s\n", genres)
	fmt.Fprintf(&b, "- **Revenue:** %s\n\n", FormatRevenue(item.Revenue))

	overview := item.Overview
	switch {
	case vm.DetailError != "":
		fmt.Fprintf(&b, "**%s**\n\n", vm.DetailError)
	case vm.DetailLoading && overview == "":
		b.WriteString("_Loading details..._\n\n")
	}
	if !vm.DetailLoading || overview != "" {
		if overview == "" {
			overview = "No overview available"
		}
		b.WriteString("## Overview\n\n" + overview + "\n\n")
	}

	if u := item.BackdropURL(imageBase); u != "" {
		fmt.Fprintf(&b, "Backdrop: %s\n", u)
	} else if u := item.PosterURL(imageBase); u != "" {
		fmt.Fprintf(&b, "Poster: %s\n", u)
	}
	return b.String()
}

// FormatRevenue formats a box office figure with thousands separators
func FormatRevenue(revenue int64) string {
	if revenue <= 0 {
		return "N/A"
	}
	return message.NewPrinter(language.English).Sprintf("$%d", revenue)
}

// HistorySuggestions returns the history entries matching query, best
// match first. An empty query returns the whole history.
func HistorySuggestions(query string, history []string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return history[:min(len(history), maxSuggestions)]
	}

	lower := make([]string, len(history))
	for i, h := range history {
		lower[i] = strings.ToLower(h)
	}
	matches := fuzzy.Find(strings.ToLower(query), lower)

	out := make([]string, 0, len(matches))
	for _, match := range matches {
		out = append(out, history[match.Index])
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}
