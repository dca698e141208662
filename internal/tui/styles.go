package tui

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220"))

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("180")).
			Italic(true)

	// Deck and slots
	FaceDownStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("94"))
	CursorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	EmptySlotStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	PositionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("180")).Width(20)
	CardNameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Bold(true)
	ReversedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("167"))
	MeaningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))

	InterpretationStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("136")).
				Padding(1, 2)

	// Gallery filter tabs
	ActiveTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("220")).Padding(0, 1)
	InactiveTabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)

	NoticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	HelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)
