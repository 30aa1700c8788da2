package ui

import "github.com/charmbracelet/lipgloss"

const (
	Secondary = lipgloss.Color("#888")

	Green = lipgloss.Color("#00a352")
)
