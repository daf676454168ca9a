package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/flick/internal/domain"
	"github.com/mmcdole/flick/internal/tui/styles"
	"golang.org/x/term"
)

// isTerminal reports whether w is an interactive terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printItems writes one line per item. Piped output is tab separated
// (id, title, year, rating) so it can be cut or sorted.
func printItems(w io.Writer, items []domain.Item, styled bool) {
	if !styled {
		for _, it := range items {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", it.ID, it.Title, it.FormattedYear(), it.FormattedRating())
		}
		return
	}

	t := styles.ByName(styles.ThemeDark)
	idStyle := t.Dim.Width(8)
	for _, it := range items {
		fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top,
			idStyle.Render(fmt.Sprint(it.ID)),
			t.Star.Render("★ "+it.FormattedRating()),
			"  ",
			t.Title.Render(it.Title),
			" ",
			t.Subtitle.Render("("+it.FormattedYear()+")"),
		))
	}
}

// printPageFooter reports the result count and paging on terminals
func printPageFooter(w io.Writer, p domain.Page, styled bool) {
	if !styled {
		return
	}
	t := styles.ByName(styles.ThemeDark)
	if p.Empty() {
		fmt.Fprintln(w, t.Dim.Render("No movie found"))
		return
	}
	fmt.Fprintln(w, t.Dim.Render(fmt.Sprintf("Found %d movies • page %d of %d", len(p.Items), p.Page, max(p.TotalPages, 1))))
}
