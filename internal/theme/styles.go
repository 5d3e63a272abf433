package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0, 0, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorSpinner)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(16)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Folder browser styles
var (
	CurrentPathLabelStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle)

	CurrentPathStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)

	CursorStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	DirectoryStyle = lipgloss.NewStyle().
			Foreground(ColorDirectory)

	EntryErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Italic(true)

	ParentStyle = lipgloss.NewStyle().
			Foreground(ColorParent)

	ScrollHintStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SelectedRowStyle = lipgloss.NewStyle().
				Background(ColorSelected)
)
