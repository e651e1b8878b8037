package viewer

import "github.com/charmbracelet/lipgloss"

const (
	closedMarker = "▸"
	openMarker   = "▾"
	leafMarker   = "·"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	footerStyle = lipgloss.NewStyle().Faint(true)
	rootStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	fieldStyle  = lipgloss.NewStyle()
	typeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	cursorStyle = lipgloss.NewStyle().Reverse(true)
)
