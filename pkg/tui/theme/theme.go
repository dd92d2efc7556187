package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Grid    GridTheme
	Tile    TileTheme
	Detail  DetailTheme
	Form    FormTheme
	Status  StatusTheme
	Overlay OverlayTheme
}

// GridTheme styles the tabular view.
type GridTheme struct {
	Header   lipgloss.Style
	Row      lipgloss.Style
	Selected lipgloss.Style
	Flag     lipgloss.Style
	Empty    lipgloss.Style
}

// TileTheme styles the card view.
type TileTheme struct {
	Frame    lipgloss.Style
	Selected lipgloss.Style
	Name     lipgloss.Style
	Email    lipgloss.Style
	Hint     lipgloss.Style
	Flag     lipgloss.Style
}

// DetailTheme styles the single-record panel.
type DetailTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
	Flag  lipgloss.Style
}

// FormTheme styles the add/edit form.
type FormTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Label lipgloss.Style
	Error lipgloss.Style
}

// StatusTheme styles the bottom status/help bar.
type StatusTheme struct {
	Bar    lipgloss.Style
	Help   lipgloss.Style
	Search lipgloss.Style
	Error  lipgloss.Style
}

// OverlayTheme styles the loading and failure overlays.
type OverlayTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
	Error lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	flag := lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)

	return Theme{
		Grid: GridTheme{
			Header:   lipgloss.NewStyle().Bold(true).Underline(true),
			Row:      lipgloss.NewStyle(),
			Selected: lipgloss.NewStyle().Reverse(true),
			Flag:     flag,
			Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		},
		Tile: TileTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Selected: lipgloss.NewStyle().
				Border(lipgloss.DoubleBorder()).
				Padding(0, 1),
			Name:  lipgloss.NewStyle().Bold(true),
			Email: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Hint:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
			Flag:  flag,
		},
		Detail: DetailTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Label: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Value: lipgloss.NewStyle(),
			Flag:  flag,
		},
		Form: FormTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Label: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Error: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
		Status: StatusTheme{
			Bar:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Search: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		},
		Overlay: OverlayTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.DoubleBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
			Error: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
	}
}
