package bubble_adapter

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/minivi/config"
	"github.com/ionut-t/minivi/core"
)

type Theme struct {
	IdleModeStyle          lipgloss.Style
	EditModeStyle          lipgloss.Style
	CommandModeStyle       lipgloss.Style
	StatusLineStyle        lipgloss.Style
	TitleStyle             lipgloss.Style
	ErrorStyle             lipgloss.Style
	LineNumberStyle        lipgloss.Style
	CurrentLineNumberStyle lipgloss.Style
	CursorStyle            lipgloss.Style
}

var DefaultTheme = NewTheme(config.DefaultThemeSettings())

// NewTheme builds the styles from configured colours. Empty colours fall
// back to the defaults.
func NewTheme(colors config.ThemeSettings) Theme {
	colors = config.NormaliseTheme(colors)
	white := lipgloss.Color("255")

	return Theme{
		IdleModeStyle:          lipgloss.NewStyle().Background(lipgloss.Color(colors.Idle)).Foreground(white),
		EditModeStyle:          lipgloss.NewStyle().Background(lipgloss.Color(colors.Edit)).Foreground(white),
		CommandModeStyle:       lipgloss.NewStyle().Background(lipgloss.Color(colors.Command)).Foreground(white),
		StatusLineStyle:        lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(white),
		TitleStyle:             lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Title)).Align(lipgloss.Center),
		ErrorStyle:             lipgloss.NewStyle().Background(lipgloss.Color(colors.Error)).Foreground(white),
		LineNumberStyle:        lipgloss.NewStyle().Foreground(lipgloss.Color(colors.LineNumber)).Align(lipgloss.Right),
		CurrentLineNumberStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Align(lipgloss.Right),
		CursorStyle:            lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Command)),
	}
}

// modeStyle picks the footer style for the current mode
func (t Theme) modeStyle(mode core.EditorMode) lipgloss.Style {
	switch mode.(type) {
	case core.EditMode:
		return t.EditModeStyle
	case core.CommandMode:
		return t.CommandModeStyle
	default:
		return t.IdleModeStyle
	}
}
