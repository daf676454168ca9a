package styles

import "github.com/charmbracelet/lipgloss"

// Theme names accepted by ByName
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Palette is the set of colors a theme is built from
type Palette struct {
	Accent  lipgloss.Color
	Surface lipgloss.Color
	Raised  lipgloss.Color
	Dim     lipgloss.Color
	Muted   lipgloss.Color
	Text    lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Star    lipgloss.Color
}

var (
	darkPalette = Palette{
		Accent:  lipgloss.Color("#E5A00D"),
		Surface: lipgloss.Color("#1F2937"),
		Raised:  lipgloss.Color("#374151"),
		Dim:     lipgloss.Color("#6B7280"),
		Muted:   lipgloss.Color("#9CA3AF"),
		Text:    lipgloss.Color("#F9FAFB"),
		Success: lipgloss.Color("#10B981"),
		Error:   lipgloss.Color("#EF4444"),
		Star:    lipgloss.Color("#FBBF24"),
	}

	lightPalette = Palette{
		Accent:  lipgloss.Color("#B45309"),
		Surface: lipgloss.Color("#F9FAFB"),
		Raised:  lipgloss.Color("#E5E7EB"),
		Dim:     lipgloss.Color("#9CA3AF"),
		Muted:   lipgloss.Color("#4B5563"),
		Text:    lipgloss.Color("#111827"),
		Success: lipgloss.Color("#047857"),
		Error:   lipgloss.Color("#B91C1C"),
		Star:    lipgloss.Color("#D97706"),
	}
)

// Theme holds every style the UI renders with
type Theme struct {
	Name    string
	Palette Palette

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Dim      lipgloss.Style
	Accent   lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Star     lipgloss.Style

	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style

	SelectedItem lipgloss.Style
	NormalItem   lipgloss.Style

	Badge    lipgloss.Style
	DimBadge lipgloss.Style

	Panel      lipgloss.Style
	Modal      lipgloss.Style
	ModalTitle lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// ByName returns the named theme, falling back to dark
func ByName(name string) Theme {
	if name == ThemeLight {
		return build(ThemeLight, lightPalette)
	}
	return build(ThemeDark, darkPalette)
}

// Toggle returns the other theme
func (t Theme) Toggle() Theme {
	if t.Name == ThemeLight {
		return ByName(ThemeDark)
	}
	return ByName(ThemeLight)
}

// Glamour returns the glamour standard style matching the theme
func (t Theme) Glamour() string {
	if t.Name == ThemeLight {
		return "light"
	}
	return "dark"
}

func build(name string, p Palette) Theme {
	return Theme{
		Name:    name,
		Palette: p,

		Title:    lipgloss.NewStyle().Foreground(p.Text).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(p.Muted),
		Dim:      lipgloss.NewStyle().Foreground(p.Dim),
		Accent:   lipgloss.NewStyle().Foreground(p.Accent),
		Error:    lipgloss.NewStyle().Foreground(p.Error),
		Success:  lipgloss.NewStyle().Foreground(p.Success),
		Star:     lipgloss.NewStyle().Foreground(p.Star),

		ActiveTab: lipgloss.NewStyle().
			Foreground(p.Surface).
			Background(p.Accent).
			Bold(true).
			Padding(0, 1),
		InactiveTab: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 1),

		SelectedItem: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Raised).
			Padding(0, 1),
		NormalItem: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 1),

		Badge: lipgloss.NewStyle().
			Foreground(p.Surface).
			Background(p.Accent).
			Padding(0, 1),
		DimBadge: lipgloss.NewStyle().
			Foreground(p.Muted).
			Background(p.Raised).
			Padding(0, 1),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Dim).
			Padding(0, 1),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(true).
			MarginBottom(1),

		HelpKey:  lipgloss.NewStyle().Foreground(p.Accent),
		HelpDesc: lipgloss.NewStyle().Foreground(p.Dim),
	}
}
