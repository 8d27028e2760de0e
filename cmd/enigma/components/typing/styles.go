package typing

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle(). // nolint: gochecknoglobals
			Bold(true).
			Foreground(lipgloss.Color("#FFD75F")).
			MarginLeft(2).
			MarginTop(1)

	windowStyle = lipgloss.NewStyle(). // nolint: gochecknoglobals
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#666666")).
			Padding(0, 1).
			Align(lipgloss.Center)

	selectedWindowStyle = windowStyle. // nolint: gochecknoglobals
				BorderForeground(lipgloss.Color("#00FFFF"))

	advancedWindowStyle = windowStyle. // nolint: gochecknoglobals
				BorderForeground(lipgloss.Color("#FFD75F"))

	reflectorStyle = lipgloss.NewStyle(). // nolint: gochecknoglobals
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#888888")).
			Padding(0, 1)

	lampStyle = lipgloss.NewStyle(). // nolint: gochecknoglobals
			Foreground(lipgloss.Color("#555555")).
			Padding(0, 1)

	litLampStyle = lampStyle. // nolint: gochecknoglobals
			Bold(true).
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#FFD75F"))

	tapeStyle = lipgloss.NewStyle(). // nolint: gochecknoglobals
			MarginLeft(2)

	labelStyle = lipgloss.NewStyle(). // nolint: gochecknoglobals
			Foreground(lipgloss.Color("#888888"))

	contentStyle = lipgloss.NewStyle(). // nolint: gochecknoglobals
			MarginLeft(2).
			MarginTop(1)

	helpStyle = lipgloss.NewStyle(). // nolint: gochecknoglobals
			MarginTop(1).
			MarginLeft(2)
)
