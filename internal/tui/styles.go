package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("99")
	successColor = lipgloss.Color("42")
	warningColor = lipgloss.Color("226")
	errorColor   = lipgloss.Color("196")
	mutedColor   = lipgloss.Color("245")
	accentColor  = lipgloss.Color("212")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).MarginBottom(1)
	labelStyle = lipgloss.NewStyle().Foreground(mutedColor)

	inputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			PaddingLeft(1).
			PaddingRight(1)
	invalidInputStyle = inputStyle.BorderForeground(errorColor)
	customInputStyle  = inputStyle.BorderForeground(warningColor)

	errorStyle   = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(warningColor)
	statusStyle  = lipgloss.NewStyle().Foreground(successColor).MarginTop(1)
	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	summaryStyle = lipgloss.NewStyle().MarginTop(1)

	popupStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1).
			MarginTop(1)
	popupTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)

	cursorStyle   = lipgloss.NewStyle().Foreground(accentColor).Bold(true).Reverse(true)
	selectedStyle = lipgloss.NewStyle().Foreground(successColor).Bold(true)
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	buttonStyle   = lipgloss.NewStyle().Foreground(primaryColor).Bold(true)
)
