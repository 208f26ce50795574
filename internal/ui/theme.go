package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tbranch/foreman/internal/workorder"
)

// Theme defines the color palette for the console.
type Theme struct {
	Name string

	Background string
	Surface    string

	SelectionBg   string
	SelectionText string

	Text   string
	Muted  string
	Accent string

	Success string
	Warning string
	Danger  string
	Info    string

	StatusColors   map[workorder.Status]string
	PriorityColors map[workorder.Priority]string
}

var themes = []Theme{
	{
		Name:          "Dracula",
		Background:    "#282a36",
		Surface:       "#343746",
		SelectionBg:   "#44475a",
		SelectionText: "#f8f8f2",
		Text:          "#f8f8f2",
		Muted:         "#6272a4",
		Accent:        "#bd93f9",
		Success:       "#50fa7b",
		Warning:       "#f1fa8c",
		Danger:        "#ff5555",
		Info:          "#8be9fd",
		StatusColors: map[workorder.Status]string{
			workorder.StatusOpen:       "#8be9fd",
			workorder.StatusInProgress: "#50fa7b",
			workorder.StatusOnHold:     "#f1fa8c",
			workorder.StatusCompleted:  "#6272a4",
			workorder.StatusCancelled:  "#ff5555",
		},
		PriorityColors: map[workorder.Priority]string{
			workorder.PriorityLow:      "#6272a4",
			workorder.PriorityMedium:   "#f8f8f2",
			workorder.PriorityHigh:     "#ffb86c",
			workorder.PriorityCritical: "#ff5555",
		},
	},
	{
		Name:          "Slate",
		Background:    "#1e293b",
		Surface:       "#283548",
		SelectionBg:   "#334155",
		SelectionText: "#f1f5f9",
		Text:          "#e2e8f0",
		Muted:         "#64748b",
		Accent:        "#38bdf8",
		Success:       "#4ade80",
		Warning:       "#facc15",
		Danger:        "#f87171",
		Info:          "#60a5fa",
		StatusColors: map[workorder.Status]string{
			workorder.StatusOpen:       "#60a5fa",
			workorder.StatusInProgress: "#4ade80",
			workorder.StatusOnHold:     "#facc15",
			workorder.StatusCompleted:  "#64748b",
			workorder.StatusCancelled:  "#f87171",
		},
		PriorityColors: map[workorder.Priority]string{
			workorder.PriorityLow:      "#64748b",
			workorder.PriorityMedium:   "#e2e8f0",
			workorder.PriorityHigh:     "#fb923c",
			workorder.PriorityCritical: "#f87171",
		},
	},
}

// GetTheme returns the named theme, defaulting to the first one.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme returns the name following the given one, wrapping around.
func NextTheme(name string) string {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}

// Styles contains pre-built lipgloss styles for a theme.
type Styles struct {
	Header    lipgloss.Style
	Title     lipgloss.Style
	MutedText lipgloss.Style
	Accent    lipgloss.Style

	TableHeader lipgloss.Style
	Row         lipgloss.Style
	SelectedRow lipgloss.Style

	Footer lipgloss.Style

	ToastInfo    lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style

	SourceAPI  lipgloss.Style
	SourceMock lipgloss.Style

	ModalBorder lipgloss.Style
	FieldLabel  lipgloss.Style
	FieldFocus  lipgloss.Style

	statusColors   map[workorder.Status]string
	priorityColors map[workorder.Priority]string
}

// Styles returns lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		Accent: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		TableHeader: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Bold(true),

		Row: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		SelectedRow: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		ToastInfo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		ToastWarning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),

		ToastError: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		SourceAPI: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)),

		SourceMock: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),

		ModalBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Accent)).
			Padding(1, 2),

		FieldLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FieldFocus: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		statusColors:   t.StatusColors,
		priorityColors: t.PriorityColors,
	}
}

// StatusStyle returns the text style for a work-order status.
func (s Styles) StatusStyle(status workorder.Status) lipgloss.Style {
	if color, ok := s.statusColors[status]; ok {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	return s.Row
}

// PriorityStyle returns the text style for a work-order priority.
func (s Styles) PriorityStyle(priority workorder.Priority) lipgloss.Style {
	if color, ok := s.priorityColors[priority]; ok {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	return s.Row
}
